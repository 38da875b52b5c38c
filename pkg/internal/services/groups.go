package services

import (
	"strings"

	"github.com/inkstone/inkwell/pkg/internal/database"
	"github.com/inkstone/inkwell/pkg/internal/models"
)

func ListGroup(take int, offset int) ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Offset(offset).Limit(take).Find(&groups).Error

	return groups, err
}

func GetGroup(slug string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{Slug: slug}).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func GetGroupWithID(id uint) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{
		BaseModel: models.BaseModel{ID: id},
	}).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func NewGroup(slug, title, description string) (models.Group, error) {
	group := models.Group{
		Slug:        strings.ToLower(slug),
		Title:       title,
		Description: description,
	}

	err := database.C.Save(&group).Error

	return group, err
}

func EditGroup(group models.Group, slug, title, description string) (models.Group, error) {
	group.Slug = strings.ToLower(slug)
	group.Title = title
	group.Description = description

	err := database.C.Save(&group).Error

	return group, err
}

// DeleteGroup keeps the posts of the group, only the reference is cleared.
func DeleteGroup(group models.Group) error {
	if err := database.C.Model(&models.Post{}).
		Where("group_id = ?", group.ID).
		Update("group_id", nil).Error; err != nil {
		return err
	}
	return database.C.Delete(&group).Error
}
