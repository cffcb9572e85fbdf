package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type Team struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name,omitempty" json:"name"`

	// Членство хранится на документе пользователя, members собирается через $lookup.
	Members []*User `bson:"members,omitempty" json:"members,omitempty"`
}
