package service

import (
	"github.com/hackdesk/hackdesk/entity"
	"github.com/hackdesk/hackdesk/util"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TeamRepository interface {
	FindAll() ([]*entity.Team, error)
	FindOneByID(ID primitive.ObjectID) (*entity.Team, error)
	FindOneByMemberID(userID primitive.ObjectID) (*entity.Team, error)
	UpdateOne(team entity.Team) (*entity.Team, error)
	DeleteOneByID(ID primitive.ObjectID) error
}

type TeamUserRepository interface {
	FindManyByTeamID(teamID primitive.ObjectID) ([]*entity.User, error)
	SetTeam(userID, teamID primitive.ObjectID) (*entity.User, error)
	UnsetTeam(userID primitive.ObjectID) (*entity.User, error)
}

type TeamService struct {
	teamRepository TeamRepository
	userRepository TeamUserRepository
	authService    *AuthService
}

func NewTeamService(teamRepository TeamRepository, userRepository TeamUserRepository, authService *AuthService) *TeamService {
	return &TeamService{
		teamRepository: teamRepository,
		userRepository: userRepository,
		authService:    authService,
	}
}

func (s *TeamService) FindAll() ([]*entity.Team, error) {
	teams, err := s.teamRepository.FindAll()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []*entity.Team{}, nil
		}
		return nil, err
	}
	return teams, nil
}

// FindMyTeam resolves through the caller's identity, never through a team id
// supplied with the request.
func (s *TeamService) FindMyTeam(caller *Identity) (*entity.Team, error) {
	if !caller.HasTeam() {
		return nil, ErrNoTeam
	}

	team, err := s.teamRepository.FindOneByMemberID(caller.UserID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return team, nil
}

func (s *TeamService) FindOne(caller *Identity, ID primitive.ObjectID) (*entity.Team, error) {
	if err := s.authService.Authorize(caller, OpRead, Resource{OwnerTeamID: ID}); err != nil {
		return nil, err
	}

	team, err := s.teamRepository.FindOneByID(ID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return team, nil
}

// Create makes a new team and joins the creator to it. A user on a team
// already cannot create another one: membership is at most one team at a
// time.
func (s *TeamService) Create(caller *Identity, team entity.Team) (*entity.Team, error) {
	if !caller.IsAdmin() && caller.HasTeam() {
		return nil, ErrInvalid
	}

	team.ID = primitive.NilObjectID
	team.Name = util.CleanName(team.Name)
	if team.Name == "" {
		return nil, ErrInvalid
	}

	created, err := s.teamRepository.UpdateOne(team)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() {
		if _, err := s.userRepository.SetTeam(caller.UserID, created.ID); err != nil {
			return nil, translateNotFound(err)
		}
	}

	return created, nil
}

func (s *TeamService) Join(caller *Identity, teamID primitive.ObjectID) (*entity.User, error) {
	if caller.HasTeam() {
		return nil, ErrInvalid
	}

	if _, err := s.teamRepository.FindOneByID(teamID); err != nil {
		return nil, translateNotFound(err)
	}

	user, err := s.userRepository.SetTeam(caller.UserID, teamID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return user, nil
}

// Delete disbands a team. Every member is detached first so no user is left
// pointing at a dead team.
func (s *TeamService) Delete(caller *Identity, teamID primitive.ObjectID) error {
	if _, err := s.teamRepository.FindOneByID(teamID); err != nil {
		return translateNotFound(err)
	}

	if err := s.authService.Authorize(caller, OpDelete, Resource{OwnerTeamID: teamID}); err != nil {
		return err
	}

	members, err := s.userRepository.FindManyByTeamID(teamID)
	if err != nil && err != mongo.ErrNoDocuments {
		return err
	}
	for _, member := range members {
		if _, err := s.userRepository.UnsetTeam(member.ID); err != nil {
			return err
		}
	}

	return s.teamRepository.DeleteOneByID(teamID)
}

func (s *TeamService) Leave(caller *Identity) (*entity.User, error) {
	if !caller.HasTeam() {
		return nil, ErrNoTeam
	}

	user, err := s.userRepository.UnsetTeam(caller.UserID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return user, nil
}
