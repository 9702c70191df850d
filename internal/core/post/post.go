package post

import (
	"time"

	"github.com/gofrs/uuid"

	"postboard/internal/core/base"
	"postboard/internal/core/category"
	"postboard/internal/core/location"
	"postboard/internal/core/user"
)

// Post is the central entity. PubDate may be set in the future for delayed
// publication. Deleting the category or location detaches the post, deleting
// the author removes it.
type Post struct {
	ID         uuid.UUID          `gorm:"primary_key;type:char(36)"`
	Title      string             `gorm:"type:varchar(256);not null"`
	Text       string             `gorm:"type:text;not null"`
	PubDate    time.Time          `gorm:"not null;index"`
	Image      *string            `gorm:"type:varchar(512)"`
	ViewCount  int64              `gorm:"not null;default:0"`
	AuthorID   uuid.UUID          `gorm:"type:char(36);not null;index"`
	Author     user.User          `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	LocationID *uuid.UUID         `gorm:"type:char(36)"`
	Location   *location.Location `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL"`
	CategoryID *uuid.UUID         `gorm:"type:char(36)"`
	Category   *category.Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	base.Published

	// CommentCount is filled by listing queries, it is not a column.
	CommentCount int64 `gorm:"-:migration;->"`
}
