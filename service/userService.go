package service

import (
	"github.com/hackdesk/hackdesk/entity"
	"github.com/hackdesk/hackdesk/util"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	FindAll() ([]*entity.User, error)
	FindOneByID(ID primitive.ObjectID) (*entity.User, error)
	FindManyByAdmissionStatus(status string) ([]*entity.User, error)
	UpdateOne(user entity.User) (*entity.User, error)
	DeleteOneByID(ID primitive.ObjectID) error
}

type UserService struct {
	userRepository UserRepository
	authService    *AuthService
}

func NewUserService(userRepository UserRepository, authService *AuthService) *UserService {
	return &UserService{
		userRepository: userRepository,
		authService:    authService,
	}
}

// FindOne returns a user's profile. Participants may read themselves and
// their teammates; everything else is admin territory.
func (s *UserService) FindOne(caller *Identity, ID primitive.ObjectID) (*entity.User, error) {
	user, err := s.userRepository.FindOneByID(ID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if ID != caller.UserID {
		if err := s.authService.Authorize(caller, OpRead, Resource{OwnerTeamID: user.TeamID}); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// FindMany lists users, optionally by admission status; admin only.
func (s *UserService) FindMany(caller *Identity, status string) ([]*entity.User, error) {
	if err := s.authService.Authorize(caller, OpList, Resource{}); err != nil {
		return nil, err
	}

	var users []*entity.User
	var err error
	if status == "" {
		users, err = s.userRepository.FindAll()
	} else {
		users, err = s.userRepository.FindManyByAdmissionStatus(status)
	}
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []*entity.User{}, nil
		}
		return nil, err
	}
	return users, nil
}

// UpdateProfile edits name and email. Role, admission status, team and
// check-ins are managed by their own operations and survive the update.
func (s *UserService) UpdateProfile(caller *Identity, user entity.User) (*entity.User, error) {
	existing, err := s.userRepository.FindOneByID(user.ID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if user.ID != caller.UserID {
		if err := s.authService.Authorize(caller, OpUpdate, Resource{}); err != nil {
			return nil, err
		}
	}

	existing.Name = util.CleanName(user.Name)
	existing.Email = user.Email

	updated, err := s.userRepository.UpdateOne(*existing)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a user account; admin only.
func (s *UserService) Delete(caller *Identity, ID primitive.ObjectID) error {
	if err := s.authService.Authorize(caller, OpDelete, Resource{}); err != nil {
		return err
	}

	if _, err := s.userRepository.FindOneByID(ID); err != nil {
		return translateNotFound(err)
	}

	return s.userRepository.DeleteOneByID(ID)
}
