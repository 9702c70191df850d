package comment

import (
	"github.com/gofrs/uuid"

	"postboard/internal/core/base"
	"postboard/internal/core/post"
	"postboard/internal/core/user"
)

// Comment belongs to a post and dies with it. Deleting the author keeps the
// comment but detaches it.
type Comment struct {
	ID       uuid.UUID  `gorm:"primary_key;type:char(36)"`
	Text     string     `gorm:"type:varchar(4096);not null"`
	AuthorID *uuid.UUID `gorm:"type:char(36);index"`
	Author   *user.User `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	PostID   uuid.UUID  `gorm:"type:char(36);not null;index"`
	Post     post.Post  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	base.Created
}
