package services

import (
	"github.com/inkstone/inkwell/pkg/internal/database"
	"github.com/inkstone/inkwell/pkg/internal/models"
)

func ListComment(post models.Post) ([]models.Comment, error) {
	var comments []models.Comment
	if err := database.C.
		Preload("Author").
		Where("post_id = ?", post.ID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func CountComment(post models.Post) (int64, error) {
	var count int64
	err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", post.ID).
		Count(&count).Error
	return count, err
}

func NewComment(user models.Account, post models.Post, text string) (models.Comment, error) {
	comment := models.Comment{
		Text:     text,
		AuthorID: user.ID,
		PostID:   post.ID,
	}

	if err := database.C.Save(&comment).Error; err != nil {
		return comment, err
	}

	comment.Author = user

	return comment, nil
}
