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

type HackathonRepository struct {
	mongoClient *mongo.Client
}

func NewHackathonRepository(mongoClient *mongo.Client) *HackathonRepository {
	return &HackathonRepository{
		mongoClient: mongoClient,
	}
}

func (r *HackathonRepository) FindAll() ([]*entity.Hackathon, error) {
	return r.find(bson.M{"_id": bson.M{"$ne": ""}})
}

func (r *HackathonRepository) FindOneByID(ID primitive.ObjectID) (*entity.Hackathon, error) {
	hackathons, err := r.find(bson.M{"_id": ID})
	if err != nil {
		return nil, err
	}

	return hackathons[0], nil
}

func (r *HackathonRepository) FindOneActive() (*entity.Hackathon, error) {
	hackathons, err := r.find(bson.M{"active": true})
	if err != nil {
		return nil, err
	}

	return hackathons[0], nil
}

func (r *HackathonRepository) find(m bson.M) ([]*entity.Hackathon, error) {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("hackathons")

	cur, err := collection.Find(context.TODO(), m, options.Find().SetSort(bson.M{"startTime": -1}))
	if err != nil {
		return nil, err
	}

	var hackathons []*entity.Hackathon
	err = cur.All(context.TODO(), &hackathons)
	if err != nil {
		return nil, err
	}

	if len(hackathons) == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return hackathons, nil
}

func (r *HackathonRepository) UpdateOne(hackathon entity.Hackathon) (*entity.Hackathon, error) {
	if hackathon.ID.IsZero() {
		hackathon.ID = primitive.NewObjectID()
	}

	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("hackathons")

	filter := bson.M{"_id": hackathon.ID}

	update := bson.M{
		"$set": hackathon,
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

	var newHackathon *entity.Hackathon
	err := result.Decode(&newHackathon)
	return newHackathon, err
}
