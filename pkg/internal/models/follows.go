package models

import "time"

// Follow is a directed edge: UserID reads what AuthorID writes.
// Uniqueness lives on the pair, one row per relationship.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_follow_pair"`
	User      Account   `json:"user" gorm:"constraint:OnDelete:CASCADE"`
	AuthorID  uint      `json:"author_id" gorm:"uniqueIndex:idx_follow_pair"`
	Author    Account   `json:"author" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}
