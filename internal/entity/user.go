package entity

import (
	"time"

	"github.com/freelancedao/backend/pkg/enum"
)

// UserType mirrors the on-chain registration type. Zero means
// invalid/unselected and is never registered as a label.
type UserType uint8

var (
	UserTypeClient     = enum.New(UserType(1), "Client")
	UserTypeFreelancer = enum.New(UserType(2), "Freelancer")
	UserTypeBoth       = enum.New(UserType(3), "Both")
)

type UserProfile struct {
	Address          string    `json:"address"`
	UserType         UserType  `json:"user_type"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Bio              string    `json:"bio"`
	Skills           []string  `json:"skills"`
	ProfileImageHash string    `json:"profile_image_hash"`
	RegisteredAt     time.Time `json:"registered_at"`
}

type Rating struct {
	Score     uint8     `json:"score"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}
