package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Hackathon struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name,omitempty" json:"name"`

	StartTime time.Time `bson:"startTime,omitempty" json:"startTime"`
	EndTime   time.Time `bson:"endTime,omitempty" json:"endTime"`

	// At most one hackathon is active at a time; the transport layer resolves
	// it once per request and passes it down explicitly.
	Active bool `bson:"active" json:"active"`
}
