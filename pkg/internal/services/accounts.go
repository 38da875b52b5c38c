package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inkstone/inkwell/pkg/internal/database"
	"github.com/inkstone/inkwell/pkg/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetAccount(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where(models.Account{Name: name}).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where(models.Account{
		BaseModel: models.BaseModel{ID: id},
	}).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func NewAccount(name, nick, email, password string) (models.Account, error) {
	name = strings.ToLower(name)

	var account models.Account
	if err := database.C.Where("name = ? OR email = ?", name, email).First(&account).Error; err == nil {
		return account, fmt.Errorf("account with the same name or email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return account, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account, fmt.Errorf("unable to hash password: %v", err)
	}

	account = models.Account{
		Name:     name,
		Nick:     nick,
		Email:    email,
		Password: string(hash),
	}

	err = database.C.Save(&account).Error

	return account, err
}

func AuthenticateAccount(name, password string) (models.Account, error) {
	account, err := GetAccount(strings.ToLower(name))
	if err != nil {
		return account, fmt.Errorf("unable to find account: %v", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return account, fmt.Errorf("invalid credentials")
	}

	return account, nil
}
