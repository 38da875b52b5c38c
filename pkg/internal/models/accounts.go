package models

import "time"

type Account struct {
	BaseModel

	Name   string `json:"name" gorm:"uniqueIndex" validate:"required,alphanum,lowercase"`
	Nick   string `json:"nick"`
	Email  string `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	Avatar string `json:"avatar"`

	Password string `json:"-"`

	Posts    []Post    `json:"posts" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// Session is a logged-in browser session. The token travels as a cookie and
// every row carries its own deadline, swept by the scheduler.
type Session struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"uniqueIndex"`
	AccountID uint      `json:"account_id"`
	Account   Account   `json:"account" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
	ExpiredAt time.Time `json:"expired_at"`
}
