package service

import (
	"github.com/hackdesk/hackdesk/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slices"
)

type PrizeRepository interface {
	FindAll() ([]*entity.Prize, error)
	FindOneByID(ID primitive.ObjectID) (*entity.Prize, error)
	FindManyByHackathonID(hackathonID primitive.ObjectID) ([]*entity.Prize, error)
	UpdateOne(prize entity.Prize) (*entity.Prize, error)
	SetWinner(prizeID, projectID primitive.ObjectID) (*entity.Prize, error)
	DeleteOneByID(ID primitive.ObjectID) error
}

type PrizeProjectRepository interface {
	FindOneByID(ID primitive.ObjectID) (*entity.Project, error)
}

type PrizeService struct {
	prizeRepository   PrizeRepository
	projectRepository PrizeProjectRepository
	authService       *AuthService
}

func NewPrizeService(prizeRepository PrizeRepository, projectRepository PrizeProjectRepository, authService *AuthService) *PrizeService {
	return &PrizeService{
		prizeRepository:   prizeRepository,
		projectRepository: projectRepository,
		authService:       authService,
	}
}

func (s *PrizeService) FindAll() ([]*entity.Prize, error) {
	prizes, err := s.prizeRepository.FindAll()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []*entity.Prize{}, nil
		}
		return nil, err
	}
	return prizes, nil
}

func (s *PrizeService) FindManyByHackathonID(hackathonID primitive.ObjectID) ([]*entity.Prize, error) {
	prizes, err := s.prizeRepository.FindManyByHackathonID(hackathonID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []*entity.Prize{}, nil
		}
		return nil, err
	}
	return prizes, nil
}

func (s *PrizeService) FindOne(ID primitive.ObjectID) (*entity.Prize, error) {
	prize, err := s.prizeRepository.FindOneByID(ID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return prize, nil
}

// Save creates or edits a prize; admin only.
func (s *PrizeService) Save(caller *Identity, prize entity.Prize) (*entity.Prize, error) {
	if err := s.authService.Authorize(caller, OpUpdate, Resource{}); err != nil {
		return nil, err
	}

	return s.prizeRepository.UpdateOne(prize)
}

// SetWinner marks a project as the prize winner. The project must actually be
// entered into the prize.
func (s *PrizeService) SetWinner(caller *Identity, prizeID, projectID primitive.ObjectID) (*entity.Prize, error) {
	if err := s.authService.Authorize(caller, OpUpdate, Resource{}); err != nil {
		return nil, err
	}

	if _, err := s.prizeRepository.FindOneByID(prizeID); err != nil {
		return nil, translateNotFound(err)
	}

	project, err := s.projectRepository.FindOneByID(projectID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if !slices.Contains(project.PrizeIDs, prizeID) {
		return nil, ErrInvalid
	}

	return s.prizeRepository.SetWinner(prizeID, projectID)
}

func (s *PrizeService) Delete(caller *Identity, ID primitive.ObjectID) error {
	if err := s.authService.Authorize(caller, OpDelete, Resource{}); err != nil {
		return err
	}

	return s.prizeRepository.DeleteOneByID(ID)
}
