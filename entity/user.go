package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slices"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name,omitempty" json:"name"`
	Email string             `bson:"email,omitempty" json:"email"`

	Role            string `bson:"role,omitempty" json:"role"`
	AdmissionStatus string `bson:"admissionStatus,omitempty" json:"admissionStatus"`
	AccessLevel     string `bson:"accessLevel,omitempty" json:"accessLevel"`

	TeamID primitive.ObjectID `bson:"teamId,omitempty" json:"teamId,omitempty"`
	Team   *Team              `bson:"team,omitempty" json:"team,omitempty"`

	CheckInItemIDs []primitive.ObjectID `bson:"checkInItemIds,omitempty" json:"checkInItemIds,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) HasTeam() bool {
	return !u.TeamID.IsZero()
}

func (u *User) HasCheckedIn(itemID primitive.ObjectID) bool {
	return slices.Contains(u.CheckInItemIDs, itemID)
}
