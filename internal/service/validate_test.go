package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		from, size *int
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{name: "no paging", from: nil, size: nil, wantLimit: 0, wantOffset: 0},
		{name: "first page", from: intPtr(0), size: intPtr(10), wantLimit: 10, wantOffset: 0},
		{name: "offset snaps to page boundary", from: intPtr(7), size: intPtr(3), wantLimit: 3, wantOffset: 6},
		{name: "exact page start", from: intPtr(20), size: intPtr(10), wantLimit: 10, wantOffset: 20},
		{name: "negative from", from: intPtr(-1), size: intPtr(10), wantErr: true},
		{name: "zero size", from: intPtr(0), size: intPtr(0), wantErr: true},
		{name: "from without size", from: intPtr(5), size: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset, err := pageWindow(tt.from, tt.size)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
