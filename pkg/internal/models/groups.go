package models

type Group struct {
	BaseModel

	Slug        string `json:"slug" gorm:"uniqueIndex" validate:"required,lowercase"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`

	Posts []Post `json:"posts" gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
}
