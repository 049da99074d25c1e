package models

import "gorm.io/gorm"

// Review is one user review of a game. Reviews are append-only: there are
// no update or delete operations anywhere in the API.
//
// GameID is the catalog's integer id. It is the canonical representation;
// conversion from path parameters happens once, at the HTTP boundary.
type Review struct {
	gorm.Model
	GameID       int64  `gorm:"not null;index"`
	UserID       uint   `gorm:"not null"`
	AuthorHandle string `gorm:"size:255;not null;index"`
	Text         string `gorm:"not null"`

	User User `gorm:"foreignKey:UserID"`
}
