package service

import (
	"context"
	"time"

	"lendhub/internal/models"
	"lendhub/internal/repository"
)

// Function-field stubs for the repository interfaces. Unset methods
// panic via the embedded nil interface, which keeps each test honest
// about what it touches.

type stubUserRepo struct {
	repository.UserRepository
	getByID func(id uint) (*models.User, error)
	create  func(u *models.User) error
	update  func(u *models.User) error
	deleteF func(id uint) error
	list    func() ([]models.User, error)
}

func (s *stubUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	return s.getByID(id)
}
func (s *stubUserRepo) Create(_ context.Context, u *models.User) error { return s.create(u) }
func (s *stubUserRepo) Update(_ context.Context, u *models.User) error { return s.update(u) }
func (s *stubUserRepo) Delete(_ context.Context, id uint) error        { return s.deleteF(id) }
func (s *stubUserRepo) List(_ context.Context) ([]models.User, error)  { return s.list() }

type stubItemRepo struct {
	repository.ItemRepository
	getByID     func(id uint) (*models.Item, error)
	create      func(i *models.Item) error
	update      func(i *models.Item) error
	search      func(text string, limit, offset int) ([]models.Item, error)
	listByOwner func(ownerID uint, limit, offset int) ([]models.Item, error)
}

func (s *stubItemRepo) GetByID(_ context.Context, id uint) (*models.Item, error) {
	return s.getByID(id)
}
func (s *stubItemRepo) Create(_ context.Context, i *models.Item) error { return s.create(i) }
func (s *stubItemRepo) Update(_ context.Context, i *models.Item) error { return s.update(i) }
func (s *stubItemRepo) Search(_ context.Context, text string, limit, offset int) ([]models.Item, error) {
	return s.search(text, limit, offset)
}
func (s *stubItemRepo) ListByOwner(_ context.Context, ownerID uint, limit, offset int) ([]models.Item, error) {
	return s.listByOwner(ownerID, limit, offset)
}

type stubBookingRepo struct {
	repository.BookingRepository
	getByID             func(id uint) (*models.Booking, error)
	create              func(b *models.Booking) error
	update              func(b *models.Booking) error
	finished            func(itemID, bookerID uint, now time.Time) ([]models.Booking, error)
	lastAndNext         func(itemID uint, now time.Time) (*models.Booking, *models.Booking, error)
	approvedByItemOwner func(ownerID uint) ([]models.Booking, error)
	listByBooker        func(bookerID uint, state models.BookingState, limit, offset int) ([]models.Booking, error)
}

func (s *stubBookingRepo) GetByID(_ context.Context, id uint) (*models.Booking, error) {
	return s.getByID(id)
}
func (s *stubBookingRepo) Create(_ context.Context, b *models.Booking) error { return s.create(b) }
func (s *stubBookingRepo) Update(_ context.Context, b *models.Booking) error { return s.update(b) }
func (s *stubBookingRepo) FinishedByItemAndBooker(_ context.Context, itemID, bookerID uint, now time.Time) ([]models.Booking, error) {
	return s.finished(itemID, bookerID, now)
}
func (s *stubBookingRepo) LastAndNext(_ context.Context, itemID uint, now time.Time) (*models.Booking, *models.Booking, error) {
	return s.lastAndNext(itemID, now)
}
func (s *stubBookingRepo) ApprovedByItemOwner(_ context.Context, ownerID uint) ([]models.Booking, error) {
	return s.approvedByItemOwner(ownerID)
}
func (s *stubBookingRepo) ListByBooker(_ context.Context, bookerID uint, state models.BookingState, limit, offset int) ([]models.Booking, error) {
	return s.listByBooker(bookerID, state, limit, offset)
}

type stubRequestRepo struct {
	repository.RequestRepository
	getByID func(id uint) (*models.Request, error)
	create  func(r *models.Request) error
}

func (s *stubRequestRepo) GetByID(_ context.Context, id uint) (*models.Request, error) {
	return s.getByID(id)
}
func (s *stubRequestRepo) Create(_ context.Context, r *models.Request) error { return s.create(r) }

type stubCommentRepo struct {
	repository.CommentRepository
	create     func(c *models.Comment) error
	listByItem func(itemID uint) ([]models.Comment, error)
}

func (s *stubCommentRepo) Create(_ context.Context, c *models.Comment) error { return s.create(c) }
func (s *stubCommentRepo) ListByItem(_ context.Context, itemID uint) ([]models.Comment, error) {
	return s.listByItem(itemID)
}

func userByID(users ...models.User) func(id uint) (*models.User, error) {
	return func(id uint) (*models.User, error) {
		for i := range users {
			if users[i].ID == id {
				return &users[i], nil
			}
		}
		return nil, models.NewNotFoundError("user", id)
	}
}

func itemByID(items ...models.Item) func(id uint) (*models.Item, error) {
	return func(id uint) (*models.Item, error) {
		for i := range items {
			if items[i].ID == id {
				return &items[i], nil
			}
		}
		return nil, models.NewNotFoundError("item", id)
	}
}
