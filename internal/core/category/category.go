package category

import (
	"github.com/gofrs/uuid"

	"postboard/internal/core/base"
)

// Category groups posts. The slug is the external identifier used in feed
// URLs; an unpublished category hides every post under it.
type Category struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title       string    `gorm:"type:varchar(256);not null"`
	Description string    `gorm:"type:text;not null"`
	Slug        string    `gorm:"type:varchar(64);unique;not null"`
	base.Published
}
