package models

type Comment struct {
	BaseModel

	Text string `json:"text" validate:"required"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	PostID uint `json:"post_id"`
	Post   Post `json:"post"`
}
