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

type TeamRepository struct {
	mongoClient *mongo.Client
}

func NewTeamRepository(mongoClient *mongo.Client) *TeamRepository {
	return &TeamRepository{
		mongoClient: mongoClient,
	}
}

func (r *TeamRepository) FindAll() ([]*entity.Team, error) {
	return r.find(bson.M{"_id": bson.M{"$ne": ""}})
}

func (r *TeamRepository) FindOneByID(ID primitive.ObjectID) (*entity.Team, error) {
	teams, err := r.find(bson.M{"_id": ID})
	if err != nil {
		return nil, err
	}

	return teams[0], nil
}

// FindOneByMemberID resolves the team through the member's user document, so
// the result always reflects current membership.
func (r *TeamRepository) FindOneByMemberID(userID primitive.ObjectID) (*entity.Team, error) {
	teams, err := r.find(bson.M{"members._id": userID})
	if err != nil {
		return nil, err
	}

	return teams[0], nil
}

func (r *TeamRepository) find(m bson.M) ([]*entity.Team, error) {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("teams")

	pipeline := bson.A{
		bson.M{
			"$lookup": bson.M{
				"from":         "users",
				"localField":   "_id",
				"foreignField": "teamId",
				"as":           "members",
			},
		},
		bson.M{
			"$match": m,
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

	var teams []*entity.Team
	err = cur.All(context.TODO(), &teams)
	if err != nil {
		return nil, err
	}

	if len(teams) == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return teams, nil
}

func (r *TeamRepository) UpdateOne(team entity.Team) (*entity.Team, error) {
	if team.ID.IsZero() {
		team.ID = primitive.NewObjectID()
	}

	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("teams")

	filter := bson.M{"_id": team.ID}

	team.Members = nil
	update := bson.M{
		"$set": team,
	}

	after := options.After
	upsert := true
	opts := options.FindOneAndUpdateOptions{
		ReturnDocument: &after,
		Upsert:         &upsert,
	}

	result := collection.FindOneAndUpdate(context.TODO(), filter, update, &opts)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var newTeam *entity.Team
	err := result.Decode(&newTeam)
	return newTeam, err
}

func (r *TeamRepository) DeleteOneByID(ID primitive.ObjectID) error {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("teams")

	_, err := collection.DeleteOne(context.TODO(), bson.M{"_id": ID})
	return err
}
