package repository

import (
	"findme/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	err := r.db.First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByUsernameOrEmail returns the first user holding either value.
func (r *UserRepository) GetByUsernameOrEmail(username, email string) (*models.User, error) {
	var u models.User
	err := r.db.Where("username = ? OR email = ?", username, email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetConflicting returns a user other than excludeID holding the username or email.
func (r *UserRepository) GetConflicting(username, email string, excludeID uint) (*models.User, error) {
	var u models.User
	err := r.db.Where("(username = ? OR email = ?) AND id <> ?", username, email, excludeID).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(u *models.User) error {
	return r.db.Save(u).Error
}

func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}
