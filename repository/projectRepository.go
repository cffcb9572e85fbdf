package repository

import (
	"context"
	"os"

	"github.com/hackdesk/hackdesk/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProjectRepository struct {
	mongoClient *mongo.Client
}

func NewProjectRepository(mongoClient *mongo.Client) *ProjectRepository {
	return &ProjectRepository{
		mongoClient: mongoClient,
	}
}

// InsertOne is a plain insert, not an upsert: the unique (teamId, hackathonId)
// index must be able to reject a concurrent duplicate. The raw duplicate-key
// error is returned for the service layer to translate.
func (r *ProjectRepository) InsertOne(project entity.Project) (*entity.Project, error) {
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}

	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("projects")

	project.Team = nil
	project.Prizes = nil
	_, err := collection.InsertOne(context.TODO(), project)
	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) FindAll() ([]*entity.Project, error) {
	return r.find(bson.M{"_id": bson.M{"$ne": ""}})
}

func (r *ProjectRepository) FindOneByID(ID primitive.ObjectID) (*entity.Project, error) {
	projects, err := r.find(bson.M{"_id": ID})
	if err != nil {
		return nil, err
	}

	return projects[0], nil
}

func (r *ProjectRepository) FindOneByTeamIDAndHackathonID(teamID, hackathonID primitive.ObjectID) (*entity.Project, error) {
	projects, err := r.find(bson.M{
		"teamId":      teamID,
		"hackathonId": hackathonID,
	})
	if err != nil {
		return nil, err
	}

	return projects[0], nil
}

func (r *ProjectRepository) FindManyByHackathonID(hackathonID primitive.ObjectID) ([]*entity.Project, error) {
	return r.find(bson.M{"hackathonId": hackathonID})
}

func (r *ProjectRepository) FindManyByPrizeID(prizeID primitive.ObjectID) ([]*entity.Project, error) {
	return r.find(bson.M{"prizeIds": prizeID})
}

func (r *ProjectRepository) find(m bson.M) ([]*entity.Project, error) {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("projects")

	pipeline := bson.A{
		bson.M{
			"$match": m,
		},
		bson.M{
			"$lookup": bson.M{
				"from":         "teams",
				"localField":   "teamId",
				"foreignField": "_id",
				"as":           "team",
			},
		},
		bson.M{
			"$unwind": bson.M{
				"path":                       "$team",
				"preserveNullAndEmptyArrays": true,
			},
		},
		bson.M{
			"$lookup": bson.M{
				"from":         "prizes",
				"localField":   "prizeIds",
				"foreignField": "_id",
				"as":           "prizes",
			},
		},
		bson.M{
			"$sort": bson.M{
				"name": 1,
			},
		},
	}

	cur, err := collection.Aggregate(context.TODO(), pipeline)
	if err != nil {
		return nil, err
	}

	var projects []*entity.Project
	err = cur.All(context.TODO(), &projects)
	if err != nil {
		return nil, err
	}

	if len(projects) == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return projects, nil
}

func (r *ProjectRepository) UpdateOne(project entity.Project) (*entity.Project, error) {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("projects")

	filter := bson.M{"_id": project.ID}

	project.Team = nil
	project.Prizes = nil
	update := bson.M{
		"$set": project,
	}

	after := options.After
	opts := options.FindOneAndUpdateOptions{
		ReturnDocument: &after,
	}

	result := collection.FindOneAndUpdate(context.TODO(), filter, update, &opts)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var newProject *entity.Project
	err := result.Decode(&newProject)
	return newProject, err
}

// AddPrize enters the project into a prize. $addToSet makes re-entry a no-op.
func (r *ProjectRepository) AddPrize(projectID, prizeID primitive.ObjectID) (*entity.Project, error) {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("projects")

	after := options.After
	opts := options.FindOneAndUpdateOptions{
		ReturnDocument: &after,
	}

	result := collection.FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": projectID},
		bson.M{"$addToSet": bson.M{"prizeIds": prizeID}},
		&opts,
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var project *entity.Project
	err := result.Decode(&project)
	return project, err
}

func (r *ProjectRepository) DeleteOneByID(ID primitive.ObjectID) error {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("projects")

	_, err := collection.DeleteOne(context.TODO(), bson.M{"_id": ID})
	return err
}
