package database

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// ErrEmailTaken is returned when a registration reuses an existing email.
var ErrEmailTaken = errors.New("email already registered")

// CreateUser registers a new user together with their credential in a single
// transaction. The email is case-normalized before the uniqueness checks so
// the same address cannot be registered twice with different casing.
func (c *Client) CreateUser(ctx context.Context, name, email, passwordHash string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user := User{
		Name:  name,
		Email: email,
	}
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Credential{}).Where("username = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}
		if err := tx.Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		cred := Credential{
			UserID:       user.ID,
			Username:     email,
			PasswordHash: passwordHash,
		}
		return tx.Create(&cred).Error
	})
	if err != nil {
		if !errors.Is(err, ErrEmailTaken) {
			log.Error("failed to create user", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID returns the user with the given id.
func (c *Client) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get user by id", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

// GetCredentialByUsername looks up a credential by its case-normalized login
// identifier, preloading the owning user.
func (c *Client) GetCredentialByUsername(ctx context.Context, username string) (*Credential, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	var cred Credential
	if err := c.db.WithContext(ctx).Preload("User").Where("username = ?", username).First(&cred).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get credential by username", "error", err)
		}
		return nil, err
	}
	return &cred, nil
}

// ListUsers returns all users ordered by id ascending. The ordering is part
// of the reporting contract: report rows must come out in a stable order.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		log.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user, their credential and every activity record they
// own in one transaction, so a mid-sequence failure leaves nothing half-deleted.
func (c *Client) DeleteUser(ctx context.Context, userID uint) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteActivities(tx, userID); err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&Credential{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&User{}, userID).Error
	})
	if err != nil {
		log.Error("failed to delete user", "user_id", userID, "error", err)
	}
	return err
}

// DeleteUserActivities removes all footprints, quiz results and feedback of a
// user in one transaction, keeping the account itself.
func (c *Client) DeleteUserActivities(ctx context.Context, userID uint) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteActivities(tx, userID)
	})
	if err != nil {
		log.Error("failed to delete user activities", "user_id", userID, "error", err)
	}
	return err
}

func deleteActivities(tx *gorm.DB, userID uint) error {
	if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&Footprint{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&QuizResult{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&Feedback{}).Error
}
