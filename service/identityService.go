package service

import (
	"github.com/hackdesk/hackdesk/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Identity is the caller's view the authorizer works with: role, access level
// and current team. A zero TeamID means the user belongs to no team.
type Identity struct {
	UserID      primitive.ObjectID
	Role        string
	AccessLevel string
	TeamID      primitive.ObjectID
}

func (i *Identity) IsAdmin() bool {
	return i.Role == entity.RoleAdmin
}

func (i *Identity) HasTeam() bool {
	return !i.TeamID.IsZero()
}

type IdentityUserRepository interface {
	FindOneByID(ID primitive.ObjectID) (*entity.User, error)
}

type IdentityService struct {
	userRepository IdentityUserRepository
}

func NewIdentityService(userRepository IdentityUserRepository) *IdentityService {
	return &IdentityService{
		userRepository: userRepository,
	}
}

// Resolve reads the user's current role and team membership. The result is
// valid for a single request only: membership can change between calls, so
// callers must not cache it.
func (s *IdentityService) Resolve(userID primitive.ObjectID) (*Identity, error) {
	user, err := s.userRepository.FindOneByID(userID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	return &Identity{
		UserID:      user.ID,
		Role:        user.Role,
		AccessLevel: user.AccessLevel,
		TeamID:      user.TeamID,
	}, nil
}
