// Package seed provides database seeding utilities for development and
// testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"lendhub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	ItemsPerUser int
	NumRequests  int
	NumBookings  int
	ShouldClean  bool
}

var itemKinds = []string{
	"Drill", "Ladder", "Pressure Washer", "Chainsaw", "Tile Cutter",
	"Projector", "Party Tent", "Camping Stove", "Kayak", "Bike Rack",
	"Carpet Cleaner", "Hedge Trimmer", "Sewing Machine", "Telescope",
	"Snowboard", "Roof Box", "Generator", "Air Compressor",
}

// Seed populates the database with demo marketplace data.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users, %d items each, %d requests, %d bookings...",
		opts.NumUsers, opts.ItemsPerUser, opts.NumRequests, opts.NumBookings)

	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := seedUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	requests, err := seedRequests(db, users, opts.NumRequests)
	if err != nil {
		return fmt.Errorf("seeding requests: %w", err)
	}

	items, err := seedItems(db, users, requests, opts.ItemsPerUser)
	if err != nil {
		return fmt.Errorf("seeding items: %w", err)
	}

	if err := seedBookings(db, users, items, opts.NumBookings); err != nil {
		return fmt.Errorf("seeding bookings: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	for _, table := range []string{"comments", "bookings", "items", "requests", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB, n int) ([]models.User, error) {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		user := models.User{
			Name:  gofakeit.Name(),
			Email: fmt.Sprintf("%s.%d@%s", gofakeit.Username(), i, gofakeit.DomainName()),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func seedRequests(db *gorm.DB, users []models.User, n int) ([]models.Request, error) {
	requests := make([]models.Request, 0, n)
	for i := 0; i < n; i++ {
		requester := users[rand.Intn(len(users))]
		request := models.Request{
			Description: fmt.Sprintf("Looking for a %s for %s", randomItemKind(), gofakeit.HackerPhrase()),
			RequesterID: requester.ID,
			Created:     time.Now().Add(-time.Duration(rand.Intn(720)) * time.Hour),
		}
		if err := db.Create(&request).Error; err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func seedItems(db *gorm.DB, users []models.User, requests []models.Request, perUser int) ([]models.Item, error) {
	var items []models.Item
	for _, user := range users {
		for i := 0; i < perUser; i++ {
			item := models.Item{
				Name:        randomItemKind(),
				Description: gofakeit.ProductDescription(),
				Available:   rand.Intn(10) > 1,
				OwnerID:     user.ID,
			}
			// Some items answer an open request from somebody else
			if len(requests) > 0 && rand.Intn(4) == 0 {
				r := requests[rand.Intn(len(requests))]
				if r.RequesterID != user.ID {
					item.RequestID = &r.ID
				}
			}
			if err := db.Create(&item).Error; err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
	return items, nil
}

func seedBookings(db *gorm.DB, users []models.User, items []models.Item, n int) error {
	if len(items) == 0 || len(users) < 2 {
		return nil
	}

	for i := 0; i < n; i++ {
		item := items[rand.Intn(len(items))]

		booker := users[rand.Intn(len(users))]
		if booker.ID == item.OwnerID || !item.Available {
			continue
		}

		booking := models.Booking{
			ItemID:   item.ID,
			BookerID: booker.ID,
		}

		// A mix of finished, running and upcoming bookings with all
		// three statuses, so every listing state has data.
		switch rand.Intn(4) {
		case 0: // finished, approved
			booking.Start = time.Now().Add(-time.Duration(48+rand.Intn(240)) * time.Hour)
			booking.End = booking.Start.Add(24 * time.Hour)
			booking.Status = models.StatusApproved
		case 1: // running now
			booking.Start = time.Now().Add(-12 * time.Hour)
			booking.End = time.Now().Add(12 * time.Hour)
			booking.Status = models.StatusApproved
		case 2: // upcoming, still waiting
			booking.Start = time.Now().Add(time.Duration(24+rand.Intn(240)) * time.Hour)
			booking.End = booking.Start.Add(48 * time.Hour)
			booking.Status = models.StatusWaiting
		default: // turned down
			booking.Start = time.Now().Add(time.Duration(24+rand.Intn(240)) * time.Hour)
			booking.End = booking.Start.Add(24 * time.Hour)
			booking.Status = models.StatusRejected
		}

		if err := db.Create(&booking).Error; err != nil {
			return err
		}

		// Finished approved bookings earn a review comment
		if booking.Status == models.StatusApproved && booking.End.Before(time.Now()) && rand.Intn(2) == 0 {
			comment := models.Comment{
				Text:     gofakeit.Comment(),
				ItemID:   item.ID,
				AuthorID: booker.ID,
			}
			if err := db.Create(&comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func randomItemKind() string {
	return itemKinds[rand.Intn(len(itemKinds))]
}
