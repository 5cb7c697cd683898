package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the owner of all other resources. Every transaction, budget
// category and salary belongs to exactly one user.
type User struct {
	DefaultModel
	Email          string `json:"email" gorm:"uniqueIndex"`
	DisplayName    string `json:"displayName"`
	PasswordDigest string `json:"-"` // bcrypt digest, never serialized
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.DisplayName = strings.TrimSpace(u.DisplayName)

	if u.Email == "" {
		return ErrEmailEmpty
	}

	return nil
}

// UserByEmail returns the user registered with the email address.
func UserByEmail(email string) (User, error) {
	var user User
	err := DB.Where(&User{Email: strings.ToLower(strings.TrimSpace(email))}).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}

	return user, nil
}

// UserByID returns the user with the ID.
func UserByID(id uuid.UUID) (User, error) {
	var user User
	err := DB.First(&user, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}

	return user, nil
}
