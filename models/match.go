package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	TeamA = "A"
	TeamB = "B"
)

type Match struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TeamA          string             `bson:"team_a" json:"team_a"`
	TeamB          string             `bson:"team_b" json:"team_b"`
	CupsPerSide    int                `bson:"cups_per_side" json:"cups_per_side"`
	CupsRemainingA int                `bson:"cups_remaining_a" json:"cups_remaining_a"`
	CupsRemainingB int                `bson:"cups_remaining_b" json:"cups_remaining_b"`
	Status         string             `bson:"status" json:"status"`
	Winner         string             `bson:"winner,omitempty" json:"winner,omitempty"`
	Events         []HitEvent         `bson:"events" json:"events"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// HitEvent is embedded in a match document, never stored on its own.
type HitEvent struct {
	Team      string    `bson:"team" json:"team"`
	Shooter   string    `bson:"shooter,omitempty" json:"shooter,omitempty"`
	Cups      int       `bson:"cups" json:"cups"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
