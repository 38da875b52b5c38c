package services

import (
	"errors"
	"fmt"

	"github.com/inkstone/inkwell/pkg/internal/database"
	"github.com/inkstone/inkwell/pkg/internal/models"
	"gorm.io/gorm"
)

func GetFollow(userId, authorId uint) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("user_id = ? AND author_id = ?", userId, authorId).
		First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow relationship: %v", err)
	}
	return &follow, nil
}

func IsFollowing(userId, authorId uint) bool {
	follow, err := GetFollow(userId, authorId)
	return err == nil && follow != nil
}

// FollowAuthor is an upsert on the (user, author) pair; following twice keeps
// a single row. Following yourself is silently skipped. The returned flag
// tells whether a new relationship appeared.
func FollowAuthor(user models.Account, author models.Account) (bool, error) {
	if user.ID == author.ID {
		return false, nil
	}

	follow, err := GetFollow(user.ID, author.ID)
	if err != nil {
		return false, err
	} else if follow != nil {
		return false, nil
	}

	relation := models.Follow{
		UserID:   user.ID,
		AuthorID: author.ID,
	}

	if err := database.C.Save(&relation).Error; err != nil {
		return false, fmt.Errorf("unable to create follow relationship: %v", err)
	}

	return true, nil
}

// UnfollowAuthor deletes the relationship if there is one; unfollowing an
// author who was never followed is a no-op.
func UnfollowAuthor(user models.Account, author models.Account) error {
	follow, err := GetFollow(user.ID, author.ID)
	if err != nil {
		return err
	} else if follow == nil {
		return nil
	}

	return database.C.Delete(follow).Error
}
