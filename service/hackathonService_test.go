package service

import (
	"testing"

	"github.com/hackdesk/hackdesk/entity"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeHackathonRepository struct {
	hackathons map[primitive.ObjectID]*entity.Hackathon
}

func newFakeHackathonRepository(hackathons ...*entity.Hackathon) *fakeHackathonRepository {
	repo := &fakeHackathonRepository{hackathons: map[primitive.ObjectID]*entity.Hackathon{}}
	for _, hackathon := range hackathons {
		if hackathon.ID.IsZero() {
			hackathon.ID = primitive.NewObjectID()
		}
		repo.hackathons[hackathon.ID] = hackathon
	}
	return repo
}

func (f *fakeHackathonRepository) FindAll() ([]*entity.Hackathon, error) {
	if len(f.hackathons) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	var hackathons []*entity.Hackathon
	for _, hackathon := range f.hackathons {
		clone := *hackathon
		hackathons = append(hackathons, &clone)
	}
	return hackathons, nil
}

func (f *fakeHackathonRepository) FindOneByID(ID primitive.ObjectID) (*entity.Hackathon, error) {
	hackathon, ok := f.hackathons[ID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *hackathon
	return &clone, nil
}

func (f *fakeHackathonRepository) FindOneActive() (*entity.Hackathon, error) {
	for _, hackathon := range f.hackathons {
		if hackathon.Active {
			clone := *hackathon
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeHackathonRepository) UpdateOne(hackathon entity.Hackathon) (*entity.Hackathon, error) {
	if hackathon.ID.IsZero() {
		hackathon.ID = primitive.NewObjectID()
	}
	clone := hackathon
	f.hackathons[hackathon.ID] = &clone
	result := hackathon
	return &result, nil
}

func TestFindActiveHackathon(t *testing.T) {
	active := &entity.Hackathon{Name: "Spring Hack", Active: true}
	past := &entity.Hackathon{Name: "Winter Hack"}
	hackathonService := NewHackathonService(newFakeHackathonRepository(active, past), NewAuthService())

	found, err := hackathonService.FindActive()
	assert.NoError(t, err)
	assert.Equal(t, "Spring Hack", found.Name)
}

func TestFindActiveHackathonNone(t *testing.T) {
	hackathonService := NewHackathonService(newFakeHackathonRepository(), NewAuthService())

	_, err := hackathonService.FindActive()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveHackathonRequiresAdmin(t *testing.T) {
	hackathonService := NewHackathonService(newFakeHackathonRepository(), NewAuthService())

	_, err := hackathonService.Save(participant(primitive.NewObjectID()), entity.Hackathon{Name: "Spring Hack"})
	assert.ErrorIs(t, err, ErrNotOwner)

	saved, err := hackathonService.Save(admin(), entity.Hackathon{Name: "Spring Hack"})
	assert.NoError(t, err)
	assert.False(t, saved.ID.IsZero())
}
