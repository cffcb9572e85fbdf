package service

import (
	"github.com/hackdesk/hackdesk/entity"
	"github.com/hackdesk/hackdesk/util"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProjectRepository interface {
	InsertOne(project entity.Project) (*entity.Project, error)
	FindAll() ([]*entity.Project, error)
	FindOneByID(ID primitive.ObjectID) (*entity.Project, error)
	FindOneByTeamIDAndHackathonID(teamID, hackathonID primitive.ObjectID) (*entity.Project, error)
	FindManyByHackathonID(hackathonID primitive.ObjectID) ([]*entity.Project, error)
	FindManyByPrizeID(prizeID primitive.ObjectID) ([]*entity.Project, error)
	UpdateOne(project entity.Project) (*entity.Project, error)
	AddPrize(projectID, prizeID primitive.ObjectID) (*entity.Project, error)
	DeleteOneByID(ID primitive.ObjectID) error
}

type ProjectPrizeRepository interface {
	FindOneByID(ID primitive.ObjectID) (*entity.Prize, error)
}

type ProjectService struct {
	projectRepository ProjectRepository
	prizeRepository   ProjectPrizeRepository
	authService       *AuthService
}

func NewProjectService(projectRepository ProjectRepository, prizeRepository ProjectPrizeRepository, authService *AuthService) *ProjectService {
	return &ProjectService{
		projectRepository: projectRepository,
		prizeRepository:   prizeRepository,
		authService:       authService,
	}
}

// Create makes the team's project for the given hackathon. A participant
// always creates for their own team; the team id on the passed project is
// honored for admins only, so a forged id cannot move the project to another
// team. At most one project may exist per (team, hackathon).
func (s *ProjectService) Create(caller *Identity, hackathonID primitive.ObjectID, project entity.Project) (*entity.Project, error) {
	teamID := caller.TeamID
	if caller.IsAdmin() && !project.TeamID.IsZero() {
		teamID = project.TeamID
	}
	if teamID.IsZero() {
		return nil, ErrNoTeam
	}

	existing, err := s.projectRepository.FindOneByTeamIDAndHackathonID(teamID, hackathonID)
	if err == nil && existing != nil {
		return nil, ErrDuplicateProject
	}

	project.Name = util.CleanName(project.Name)
	project.TeamID = teamID
	project.HackathonID = hackathonID

	created, err := s.projectRepository.InsertOne(project)
	if err != nil {
		// Concurrent creates race past the pre-check; the unique
		// (teamId, hackathonId) index rejects the loser.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateProject
		}
		return nil, err
	}

	return created, nil
}

func (s *ProjectService) FindAll() ([]*entity.Project, error) {
	projects, err := s.projectRepository.FindAll()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []*entity.Project{}, nil
		}
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) FindManyByHackathonID(hackathonID primitive.ObjectID) ([]*entity.Project, error) {
	projects, err := s.projectRepository.FindManyByHackathonID(hackathonID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []*entity.Project{}, nil
		}
		return nil, err
	}
	return projects, nil
}

// FindManyByPrizeID lists the projects entered into a prize.
func (s *ProjectService) FindManyByPrizeID(prizeID primitive.ObjectID) ([]*entity.Project, error) {
	projects, err := s.projectRepository.FindManyByPrizeID(prizeID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []*entity.Project{}, nil
		}
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) FindOneByID(ID primitive.ObjectID) (*entity.Project, error) {
	project, err := s.projectRepository.FindOneByID(ID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return project, nil
}

// FindMyProject resolves through the caller's own team only, never through a
// team id supplied with the request.
func (s *ProjectService) FindMyProject(caller *Identity, hackathonID primitive.ObjectID) (*entity.Project, error) {
	if !caller.HasTeam() {
		return nil, ErrNoTeam
	}

	project, err := s.projectRepository.FindOneByTeamIDAndHackathonID(caller.TeamID, hackathonID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return project, nil
}

// Update edits the project's own attributes. Team, hackathon and prize
// entries are not editable through this path.
func (s *ProjectService) Update(caller *Identity, project entity.Project) (*entity.Project, error) {
	existing, err := s.projectRepository.FindOneByID(project.ID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if err := s.authService.Authorize(caller, OpUpdate, Resource{OwnerTeamID: existing.TeamID}); err != nil {
		return nil, err
	}

	project.Name = util.CleanName(project.Name)
	project.TeamID = existing.TeamID
	project.HackathonID = existing.HackathonID
	project.PrizeIDs = existing.PrizeIDs

	updated, err := s.projectRepository.UpdateOne(project)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return updated, nil
}

// EnterPrize enters the project into a prize. The entry set collapses
// duplicates, so re-entering an already-entered prize succeeds unchanged.
func (s *ProjectService) EnterPrize(caller *Identity, projectID, prizeID primitive.ObjectID) (*entity.Project, error) {
	project, err := s.projectRepository.FindOneByID(projectID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if err := s.authService.Authorize(caller, OpUpdate, Resource{OwnerTeamID: project.TeamID}); err != nil {
		return nil, err
	}

	if _, err := s.prizeRepository.FindOneByID(prizeID); err != nil {
		return nil, translateNotFound(err)
	}

	updated, err := s.projectRepository.AddPrize(projectID, prizeID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return updated, nil
}

func (s *ProjectService) Delete(caller *Identity, projectID primitive.ObjectID) error {
	project, err := s.projectRepository.FindOneByID(projectID)
	if err != nil {
		return translateNotFound(err)
	}

	if err := s.authService.Authorize(caller, OpDelete, Resource{OwnerTeamID: project.TeamID}); err != nil {
		return err
	}

	return s.projectRepository.DeleteOneByID(projectID)
}
