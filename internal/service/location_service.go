package service

import (
	"errors"
	"time"

	"findme/internal/models"
	"findme/internal/repository"

	"gorm.io/gorm"
)

type LocationService struct {
	db *gorm.DB
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{db: db}
}

// Upsert writes the user's current position: insert on first report,
// overwrite plus timestamp refresh after that. At most one row per user.
func (s *LocationService) Upsert(userID uint, latitude, longitude float64) (*models.UserLocation, error) {
	var loc *models.UserLocation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		if _, err := users.GetByID(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		locations := repository.NewLocationRepository(tx)
		existing, err := locations.GetByUserID(userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil {
			loc = existing
		} else {
			loc = &models.UserLocation{UserID: userID}
		}
		loc.Latitude = latitude
		loc.Longitude = longitude
		loc.UpdatedAt = time.Now().UTC()
		return locations.Save(loc)
	})
	if err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *LocationService) Get(userID uint) (*models.UserLocation, error) {
	loc, err := repository.NewLocationRepository(s.db).GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return loc, nil
}
