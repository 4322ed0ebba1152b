package models

import "time"

// LocationShare is a directed follower -> following edge. IsApproved is
// tri-state: nil = pending, true = approved, false = denied.
type LocationShare struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;index:idx_follower_following,unique" json:"follower_id"`
	FollowingID uint      `gorm:"not null;index:idx_follower_following,unique" json:"following_id"`
	IsApproved  *bool     `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  User `gorm:"foreignKey:FollowerID" json:"-"`
	Following User `gorm:"foreignKey:FollowingID" json:"-"`
}

func (LocationShare) TableName() string {
	return "location_share"
}
