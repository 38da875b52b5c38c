package models

type Post struct {
	BaseModel

	Text       string `json:"text" validate:"required"`
	Attachment string `json:"attachment"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group"`

	Comments []Comment `json:"comments" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
