package database

import (
	"github.com/inkstone/inkwell/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Session{},
	&models.Group{},
	&models.Post{},
	&models.Comment{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Follow{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
