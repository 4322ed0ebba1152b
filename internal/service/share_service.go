package service

import (
	"errors"

	"findme/internal/models"
	"findme/internal/repository"

	"gorm.io/gorm"
)

type ShareService struct {
	db *gorm.DB
}

func NewShareService(db *gorm.DB) *ShareService {
	return &ShareService{db: db}
}

// Upsert creates or updates the directed follower -> following share.
//
// On an existing pair the request must carry is_approved; a bare re-request
// is a conflict. On a new pair whatever tri-state was supplied is stored
// (nil = pending). The returned bool reports whether a row was created.
func (s *ShareService) Upsert(followerID, followingID uint, isApproved *bool) (*models.LocationShare, bool, error) {
	if followerID == followingID {
		return nil, false, ErrSelfShare
	}
	var share *models.LocationShare
	var created bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		for _, id := range []uint{followerID, followingID} {
			if _, err := users.GetByID(id); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrShareUserNotFound
				}
				return err
			}
		}
		shares := repository.NewShareRepository(tx)
		existing, err := shares.GetByPair(followerID, followingID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil {
			if isApproved == nil {
				return ErrShareExists
			}
			existing.IsApproved = isApproved
			share = existing
			return shares.Update(existing)
		}
		share = &models.LocationShare{
			FollowerID:  followerID,
			FollowingID: followingID,
			IsApproved:  isApproved,
		}
		if err := shares.Create(share); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost a race against a concurrent identical request.
				return ErrShareExists
			}
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return share, created, nil
}
