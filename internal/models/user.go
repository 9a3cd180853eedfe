package model

import (
	"time"
)

type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	TotalPoints int       `json:"totalPoints"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// ClaimHistory est une trace d'audit : écrite à chaque claim, jamais relue par l'API
type ClaimHistory struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	PointsClaimed int       `json:"pointsClaimed"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}
