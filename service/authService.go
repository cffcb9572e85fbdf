package service

import "go.mongodb.org/mongo-driver/bson/primitive"

type Operation string

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpList   Operation = "list"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Resource is the authorization view of a target: which team owns it and
// whether reading it is open to every authenticated user. A zero value
// describes an admin-only resource.
type Resource struct {
	OwnerTeamID   primitive.ObjectID
	PublicListing bool
}

type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// Authorize applies the ownership rules in order; the first matching rule
// wins:
//
//  1. admins may do anything in scope;
//  2. public listings are readable by any authenticated caller;
//  3. the owning team may act on its own resources;
//  4. everything else is denied.
//
// It is a pure decision with no side effects. Callers resolve the identity
// fresh on every request, so a team switch takes effect immediately.
func (s *AuthService) Authorize(caller *Identity, op Operation, resource Resource) error {
	if caller.IsAdmin() {
		return nil
	}

	if resource.PublicListing && (op == OpRead || op == OpList) {
		return nil
	}

	if !resource.OwnerTeamID.IsZero() && caller.TeamID == resource.OwnerTeamID {
		return nil
	}

	return ErrNotOwner
}
