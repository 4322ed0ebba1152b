package service

import (
	"errors"

	"findme/internal/models"
	"findme/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create registers a new user. The username/email pre-check and the insert run
// in one transaction; a concurrent insert slipping between them still comes
// back as ErrUserConflict via the unique indexes.
func (s *UserService) Create(username, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Username: username, Email: email, PasswordHash: string(hash)}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		existing, err := users.GetByUsernameOrEmail(username, email)
		if err == nil && existing != nil {
			return ErrUserConflict
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := users.Create(u); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrUserConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Update replaces username, email and password wholesale.
func (s *UserService) Update(id uint, username, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	var u *models.User
	err = s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		u, err = users.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		other, err := users.GetConflicting(username, email, id)
		if err == nil && other != nil {
			return ErrUserConflict
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		u.Username = username
		u.Email = email
		u.PasswordHash = string(hash)
		if err := users.Update(u); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrUserConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}
