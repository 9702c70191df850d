package location

import (
	"github.com/gofrs/uuid"

	"postboard/internal/core/base"
)

// Location is an optional attribute of a post.
type Location struct {
	ID   uuid.UUID `gorm:"primary_key;type:char(36)"`
	Name string    `gorm:"type:varchar(256);not null"`
	base.Published
}
