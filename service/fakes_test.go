package service

import (
	"time"

	"github.com/hackdesk/hackdesk/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserRepository struct {
	users map[primitive.ObjectID]*entity.User
}

func newFakeUserRepository(users ...*entity.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: map[primitive.ObjectID]*entity.User{}}
	for _, user := range users {
		if user.ID.IsZero() {
			user.ID = primitive.NewObjectID()
		}
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepository) FindOneByID(ID primitive.ObjectID) (*entity.User, error) {
	user, ok := f.users[ID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepository) FindAll() ([]*entity.User, error) {
	if len(f.users) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	var users []*entity.User
	for _, user := range f.users {
		clone := *user
		users = append(users, &clone)
	}
	return users, nil
}

func (f *fakeUserRepository) FindManyByAdmissionStatus(status string) ([]*entity.User, error) {
	var users []*entity.User
	for _, user := range f.users {
		if user.AdmissionStatus == status {
			clone := *user
			users = append(users, &clone)
		}
	}
	if len(users) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return users, nil
}

func (f *fakeUserRepository) FindManyByTeamID(teamID primitive.ObjectID) ([]*entity.User, error) {
	var users []*entity.User
	for _, user := range f.users {
		if user.TeamID == teamID {
			clone := *user
			users = append(users, &clone)
		}
	}
	if len(users) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return users, nil
}

func (f *fakeUserRepository) UpdateOne(user entity.User) (*entity.User, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	clone := user
	f.users[user.ID] = &clone
	result := user
	return &result, nil
}

func (f *fakeUserRepository) UpdateAdmissionStatus(ID primitive.ObjectID, status string) (*entity.User, error) {
	user, ok := f.users[ID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	user.AdmissionStatus = status
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepository) AddCheckInItem(userID, itemID primitive.ObjectID) (*entity.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if !user.HasCheckedIn(itemID) {
		user.CheckInItemIDs = append(user.CheckInItemIDs, itemID)
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepository) DeleteOneByID(ID primitive.ObjectID) error {
	delete(f.users, ID)
	return nil
}

func (f *fakeUserRepository) SetTeam(userID, teamID primitive.ObjectID) (*entity.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	user.TeamID = teamID
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepository) UnsetTeam(userID primitive.ObjectID) (*entity.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	user.TeamID = primitive.NilObjectID
	clone := *user
	return &clone, nil
}

type fakeTeamRepository struct {
	teams map[primitive.ObjectID]*entity.Team
	users *fakeUserRepository
}

func newFakeTeamRepository(users *fakeUserRepository, teams ...*entity.Team) *fakeTeamRepository {
	repo := &fakeTeamRepository{teams: map[primitive.ObjectID]*entity.Team{}, users: users}
	for _, team := range teams {
		if team.ID.IsZero() {
			team.ID = primitive.NewObjectID()
		}
		repo.teams[team.ID] = team
	}
	return repo
}

func (f *fakeTeamRepository) FindAll() ([]*entity.Team, error) {
	if len(f.teams) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	var teams []*entity.Team
	for _, team := range f.teams {
		clone := *team
		teams = append(teams, &clone)
	}
	return teams, nil
}

func (f *fakeTeamRepository) FindOneByID(ID primitive.ObjectID) (*entity.Team, error) {
	team, ok := f.teams[ID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *team
	return &clone, nil
}

func (f *fakeTeamRepository) FindOneByMemberID(userID primitive.ObjectID) (*entity.Team, error) {
	user, ok := f.users.users[userID]
	if !ok || user.TeamID.IsZero() {
		return nil, mongo.ErrNoDocuments
	}
	return f.FindOneByID(user.TeamID)
}

func (f *fakeTeamRepository) UpdateOne(team entity.Team) (*entity.Team, error) {
	if team.ID.IsZero() {
		team.ID = primitive.NewObjectID()
	}
	clone := team
	f.teams[team.ID] = &clone
	result := team
	return &result, nil
}

func (f *fakeTeamRepository) DeleteOneByID(ID primitive.ObjectID) error {
	delete(f.teams, ID)
	return nil
}

func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}
}

type fakeProjectRepository struct {
	projects map[primitive.ObjectID]*entity.Project
}

func newFakeProjectRepository(projects ...*entity.Project) *fakeProjectRepository {
	repo := &fakeProjectRepository{projects: map[primitive.ObjectID]*entity.Project{}}
	for _, project := range projects {
		if project.ID.IsZero() {
			project.ID = primitive.NewObjectID()
		}
		repo.projects[project.ID] = project
	}
	return repo
}

// InsertOne enforces the unique (teamId, hackathonId) index the way the real
// collection does.
func (f *fakeProjectRepository) InsertOne(project entity.Project) (*entity.Project, error) {
	for _, existing := range f.projects {
		if existing.TeamID == project.TeamID && existing.HackathonID == project.HackathonID {
			return nil, duplicateKeyError()
		}
	}
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	clone := project
	f.projects[project.ID] = &clone
	result := project
	return &result, nil
}

func (f *fakeProjectRepository) FindAll() ([]*entity.Project, error) {
	if len(f.projects) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	var projects []*entity.Project
	for _, project := range f.projects {
		clone := *project
		projects = append(projects, &clone)
	}
	return projects, nil
}

func (f *fakeProjectRepository) FindOneByID(ID primitive.ObjectID) (*entity.Project, error) {
	project, ok := f.projects[ID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *project
	return &clone, nil
}

func (f *fakeProjectRepository) FindOneByTeamIDAndHackathonID(teamID, hackathonID primitive.ObjectID) (*entity.Project, error) {
	for _, project := range f.projects {
		if project.TeamID == teamID && project.HackathonID == hackathonID {
			clone := *project
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProjectRepository) FindManyByHackathonID(hackathonID primitive.ObjectID) ([]*entity.Project, error) {
	var projects []*entity.Project
	for _, project := range f.projects {
		if project.HackathonID == hackathonID {
			clone := *project
			projects = append(projects, &clone)
		}
	}
	if len(projects) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return projects, nil
}

func (f *fakeProjectRepository) FindManyByPrizeID(prizeID primitive.ObjectID) ([]*entity.Project, error) {
	var projects []*entity.Project
	for _, project := range f.projects {
		for _, id := range project.PrizeIDs {
			if id == prizeID {
				clone := *project
				projects = append(projects, &clone)
			}
		}
	}
	if len(projects) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return projects, nil
}

func (f *fakeProjectRepository) UpdateOne(project entity.Project) (*entity.Project, error) {
	if _, ok := f.projects[project.ID]; !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := project
	f.projects[project.ID] = &clone
	result := project
	return &result, nil
}

func (f *fakeProjectRepository) AddPrize(projectID, prizeID primitive.ObjectID) (*entity.Project, error) {
	project, ok := f.projects[projectID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	entered := false
	for _, id := range project.PrizeIDs {
		if id == prizeID {
			entered = true
		}
	}
	if !entered {
		project.PrizeIDs = append(project.PrizeIDs, prizeID)
	}
	clone := *project
	return &clone, nil
}

func (f *fakeProjectRepository) DeleteOneByID(ID primitive.ObjectID) error {
	delete(f.projects, ID)
	return nil
}

// stalePreCheckProjectRepository simulates two concurrent creates: the
// pre-check read misses while the insert hits the unique index.
type stalePreCheckProjectRepository struct {
	*fakeProjectRepository
}

func (f *stalePreCheckProjectRepository) FindOneByTeamIDAndHackathonID(teamID, hackathonID primitive.ObjectID) (*entity.Project, error) {
	return nil, mongo.ErrNoDocuments
}

type fakePrizeRepository struct {
	prizes map[primitive.ObjectID]*entity.Prize
}

func newFakePrizeRepository(prizes ...*entity.Prize) *fakePrizeRepository {
	repo := &fakePrizeRepository{prizes: map[primitive.ObjectID]*entity.Prize{}}
	for _, prize := range prizes {
		if prize.ID.IsZero() {
			prize.ID = primitive.NewObjectID()
		}
		repo.prizes[prize.ID] = prize
	}
	return repo
}

func (f *fakePrizeRepository) FindAll() ([]*entity.Prize, error) {
	if len(f.prizes) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	var prizes []*entity.Prize
	for _, prize := range f.prizes {
		clone := *prize
		prizes = append(prizes, &clone)
	}
	return prizes, nil
}

func (f *fakePrizeRepository) FindOneByID(ID primitive.ObjectID) (*entity.Prize, error) {
	prize, ok := f.prizes[ID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *prize
	return &clone, nil
}

func (f *fakePrizeRepository) FindManyByHackathonID(hackathonID primitive.ObjectID) ([]*entity.Prize, error) {
	var prizes []*entity.Prize
	for _, prize := range f.prizes {
		if prize.HackathonID == hackathonID {
			clone := *prize
			prizes = append(prizes, &clone)
		}
	}
	if len(prizes) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return prizes, nil
}

func (f *fakePrizeRepository) UpdateOne(prize entity.Prize) (*entity.Prize, error) {
	if prize.ID.IsZero() {
		prize.ID = primitive.NewObjectID()
	}
	clone := prize
	f.prizes[prize.ID] = &clone
	result := prize
	return &result, nil
}

func (f *fakePrizeRepository) SetWinner(prizeID, projectID primitive.ObjectID) (*entity.Prize, error) {
	prize, ok := f.prizes[prizeID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	prize.WinnerProjectID = projectID
	clone := *prize
	return &clone, nil
}

func (f *fakePrizeRepository) DeleteOneByID(ID primitive.ObjectID) error {
	delete(f.prizes, ID)
	return nil
}

type fakeCheckInItemRepository struct {
	items map[primitive.ObjectID]*entity.CheckInItem
}

func newFakeCheckInItemRepository(items ...*entity.CheckInItem) *fakeCheckInItemRepository {
	repo := &fakeCheckInItemRepository{items: map[primitive.ObjectID]*entity.CheckInItem{}}
	for _, item := range items {
		if item.ID.IsZero() {
			item.ID = primitive.NewObjectID()
		}
		repo.items[item.ID] = item
	}
	return repo
}

func (f *fakeCheckInItemRepository) FindAll() ([]*entity.CheckInItem, error) {
	if len(f.items) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	var items []*entity.CheckInItem
	for _, item := range f.items {
		clone := *item
		items = append(items, &clone)
	}
	return items, nil
}

func (f *fakeCheckInItemRepository) FindOneByID(ID primitive.ObjectID) (*entity.CheckInItem, error) {
	item, ok := f.items[ID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *item
	return &clone, nil
}

func (f *fakeCheckInItemRepository) FindManyBetweenDates(fromUTC, toUTC time.Time) ([]*entity.CheckInItem, error) {
	var items []*entity.CheckInItem
	for _, item := range f.items {
		if !item.StartTime.Before(fromUTC) && !item.StartTime.After(toUTC) {
			clone := *item
			items = append(items, &clone)
		}
	}
	if len(items) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return items, nil
}

func (f *fakeCheckInItemRepository) UpdateOne(item entity.CheckInItem) (*entity.CheckInItem, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	clone := item
	f.items[item.ID] = &clone
	result := item
	return &result, nil
}

func (f *fakeCheckInItemRepository) DeleteOneByID(ID primitive.ObjectID) error {
	delete(f.items, ID)
	return nil
}
