package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type Prize struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name,omitempty" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Provider    string             `bson:"provider,omitempty" json:"provider,omitempty"`

	HackathonID primitive.ObjectID `bson:"hackathonId,omitempty" json:"hackathonId"`

	WinnerProjectID primitive.ObjectID `bson:"winnerProjectId,omitempty" json:"winnerProjectId,omitempty"`
}
