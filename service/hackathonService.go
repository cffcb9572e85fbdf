package service

import (
	"github.com/hackdesk/hackdesk/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type HackathonRepository interface {
	FindAll() ([]*entity.Hackathon, error)
	FindOneByID(ID primitive.ObjectID) (*entity.Hackathon, error)
	FindOneActive() (*entity.Hackathon, error)
	UpdateOne(hackathon entity.Hackathon) (*entity.Hackathon, error)
}

type HackathonService struct {
	hackathonRepository HackathonRepository
	authService         *AuthService
}

func NewHackathonService(hackathonRepository HackathonRepository, authService *AuthService) *HackathonService {
	return &HackathonService{
		hackathonRepository: hackathonRepository,
		authService:         authService,
	}
}

func (s *HackathonService) FindAll() ([]*entity.Hackathon, error) {
	hackathons, err := s.hackathonRepository.FindAll()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []*entity.Hackathon{}, nil
		}
		return nil, err
	}
	return hackathons, nil
}

func (s *HackathonService) FindOne(ID primitive.ObjectID) (*entity.Hackathon, error) {
	hackathon, err := s.hackathonRepository.FindOneByID(ID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return hackathon, nil
}

// FindActive returns the hackathon the transport layer passes down to
// creation paths. There is no ambient current event inside the services.
func (s *HackathonService) FindActive() (*entity.Hackathon, error) {
	hackathon, err := s.hackathonRepository.FindOneActive()
	if err != nil {
		return nil, translateNotFound(err)
	}
	return hackathon, nil
}

// Save creates or edits a hackathon; admin only.
func (s *HackathonService) Save(caller *Identity, hackathon entity.Hackathon) (*entity.Hackathon, error) {
	if err := s.authService.Authorize(caller, OpUpdate, Resource{}); err != nil {
		return nil, err
	}

	return s.hackathonRepository.UpdateOne(hackathon)
}
