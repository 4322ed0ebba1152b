package repository

import (
	"findme/internal/models"

	"gorm.io/gorm"
)

type ShareRepository struct {
	db *gorm.DB
}

func NewShareRepository(db *gorm.DB) *ShareRepository {
	return &ShareRepository{db: db}
}

func (r *ShareRepository) GetByPair(followerID, followingID uint) (*models.LocationShare, error) {
	var share models.LocationShare
	err := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).First(&share).Error
	if err != nil {
		return nil, err
	}
	return &share, nil
}

func (r *ShareRepository) Create(share *models.LocationShare) error {
	return r.db.Create(share).Error
}

func (r *ShareRepository) Update(share *models.LocationShare) error {
	return r.db.Save(share).Error
}

func (r *ShareRepository) List() ([]models.LocationShare, error) {
	var shares []models.LocationShare
	err := r.db.Order("id").Find(&shares).Error
	return shares, err
}
