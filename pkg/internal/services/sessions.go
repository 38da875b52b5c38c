package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inkstone/inkwell/pkg/internal/database"
	"github.com/inkstone/inkwell/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

func NewSession(account models.Account) (models.Session, error) {
	lifetime := viper.GetDuration("security.session_lifetime")
	if lifetime <= 0 {
		lifetime = 30 * 24 * time.Hour
	}

	session := models.Session{
		Token:     uuid.NewString(),
		AccountID: account.ID,
		ExpiredAt: time.Now().Add(lifetime),
	}

	err := database.C.Save(&session).Error

	return session, err
}

func GetSessionAccount(token string) (models.Account, error) {
	var session models.Session
	if err := database.C.Preload("Account").
		Where("token = ?", token).First(&session).Error; err != nil {
		return models.Account{}, fmt.Errorf("unable to find session: %v", err)
	}

	if session.ExpiredAt.Before(time.Now()) {
		database.C.Delete(&session)
		return models.Account{}, fmt.Errorf("session expired")
	}

	return session.Account, nil
}

func DeleteSession(token string) error {
	if err := database.C.Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// DoAutoDatabaseCleanup drops the sessions that passed their deadline.
// Scheduled in main on an hourly basis.
func DoAutoDatabaseCleanup() {
	deadline := time.Now()
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up expired sessions...")

	tx := database.C.Unscoped().
		Where("expired_at < ?", deadline).
		Delete(&models.Session{})
	if tx.Error != nil {
		log.Error().Err(tx.Error).Msg("An error occurred when running auto cleanup...")
		return
	}

	log.Debug().Int64("affected", tx.RowsAffected).Msg("Auto cleanup finished.")
}
