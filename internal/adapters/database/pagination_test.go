package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		total          int64
		wantNumber     int
		wantTotalPages int
	}{
		{"empty result still has one page", 1, 0, 1, 1},
		{"zero page clamps to first", 0, 25, 1, 3},
		{"negative page clamps to first", -3, 5, 1, 1},
		{"middle page untouched", 2, 25, 2, 3},
		{"beyond last clamps to last", 5, 25, 3, 3},
		{"exact multiple has no ghost page", 2, 10, 1, 1},
		{"one over the multiple adds a page", 2, 11, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, totalPages := clampPage(tt.page, tt.total, pageSize)
			assert.Equal(t, tt.wantNumber, number)
			assert.Equal(t, tt.wantTotalPages, totalPages)
		})
	}
}
