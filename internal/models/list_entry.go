package models

import "time"

// ListEntry is one game-id membership in one of a user's lists.
// The composite primary key (UserID, Label, GameID) gives each list
// set semantics: re-adding an existing id is a no-op at the database level.
type ListEntry struct {
	UserID    uint   `gorm:"primaryKey;autoIncrement:false"`
	Label     string `gorm:"primaryKey;size:32"`
	GameID    int64  `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
