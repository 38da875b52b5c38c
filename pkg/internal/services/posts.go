package services

import (
	"github.com/inkstone/inkwell/pkg/internal/database"
	"github.com/inkstone/inkwell/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func FilterPostWithGroup(tx *gorm.DB, group models.Group) *gorm.DB {
	return tx.Where("group_id = ?", group.ID)
}

func FilterPostWithAuthor(tx *gorm.DB, authorId uint) *gorm.DB {
	return tx.Where("author_id = ?", authorId)
}

// FilterPostWithFollowed narrows the posts down to the authors the user follows.
func FilterPostWithFollowed(tx *gorm.DB, userId uint) *gorm.DB {
	var follows []models.Follow
	database.C.Where("user_id = ?", userId).Find(&follows)

	return tx.Where("author_id IN ?", lo.Map(follows, func(item models.Follow, index int) uint {
		return item.AuthorID
	}))
}

func GetPost(id uint) (models.Post, error) {
	var item models.Post
	if err := database.C.
		Preload("Author").Preload("Group").
		Where("id = ?", id).First(&item).Error; err != nil {
		return item, err
	}
	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int) ([]models.Post, error) {
	var items []models.Post
	if err := tx.
		Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").
		Limit(take).Offset(offset).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func NewPost(user models.Account, text string, groupId *uint, attachment string) (models.Post, error) {
	item := models.Post{
		Text:       text,
		Attachment: attachment,
		AuthorID:   user.ID,
		GroupID:    groupId,
	}

	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	item.Author = user

	return item, nil
}

// EditPost rewrites the mutable fields; the creation timestamp stays as-is.
func EditPost(item models.Post, text string, groupId *uint, attachment string) (models.Post, error) {
	item.Text = text
	item.GroupID = groupId
	item.Attachment = attachment

	err := database.C.Model(&models.Post{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"text":       text,
			"group_id":   groupId,
			"attachment": attachment,
		}).Error

	return item, err
}

func DeletePost(item models.Post) error {
	return database.C.Delete(&item).Error
}
