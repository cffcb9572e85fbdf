package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name,omitempty" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	RepoURL     string             `bson:"repoUrl,omitempty" json:"repoUrl,omitempty"`

	TeamID primitive.ObjectID `bson:"teamId,omitempty" json:"teamId"`
	Team   *Team              `bson:"team,omitempty" json:"team,omitempty"`

	HackathonID primitive.ObjectID `bson:"hackathonId,omitempty" json:"hackathonId"`

	// Prize entries are a set: entering the same prize twice collapses.
	PrizeIDs []primitive.ObjectID `bson:"prizeIds,omitempty" json:"prizeIds,omitempty"`
	Prizes   []*Prize             `bson:"prizes,omitempty" json:"prizes,omitempty"`
}
