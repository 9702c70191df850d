package base

import "time"

// Created carries the creation timestamp shared by every entity.
type Created struct {
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

// Published adds the visibility flag carried by Category, Location and Post.
// Services set IsPublished explicitly on create, the column has no default.
type Published struct {
	Created
	IsPublished bool `gorm:"not null;index"`
}
