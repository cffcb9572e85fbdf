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

type PrizeRepository struct {
	mongoClient *mongo.Client
}

func NewPrizeRepository(mongoClient *mongo.Client) *PrizeRepository {
	return &PrizeRepository{
		mongoClient: mongoClient,
	}
}

func (r *PrizeRepository) FindAll() ([]*entity.Prize, error) {
	return r.find(bson.M{"_id": bson.M{"$ne": ""}})
}

func (r *PrizeRepository) FindOneByID(ID primitive.ObjectID) (*entity.Prize, error) {
	prizes, err := r.find(bson.M{"_id": ID})
	if err != nil {
		return nil, err
	}

	return prizes[0], nil
}

func (r *PrizeRepository) FindManyByHackathonID(hackathonID primitive.ObjectID) ([]*entity.Prize, error) {
	return r.find(bson.M{"hackathonId": hackathonID})
}

func (r *PrizeRepository) find(m bson.M) ([]*entity.Prize, error) {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("prizes")

	cur, err := collection.Find(context.TODO(), m, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}

	var prizes []*entity.Prize
	err = cur.All(context.TODO(), &prizes)
	if err != nil {
		return nil, err
	}

	if len(prizes) == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return prizes, nil
}

func (r *PrizeRepository) UpdateOne(prize entity.Prize) (*entity.Prize, error) {
	if prize.ID.IsZero() {
		prize.ID = primitive.NewObjectID()
	}

	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("prizes")

	filter := bson.M{"_id": prize.ID}

	update := bson.M{
		"$set": prize,
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

	var newPrize *entity.Prize
	err := result.Decode(&newPrize)
	return newPrize, err
}

func (r *PrizeRepository) SetWinner(prizeID, projectID primitive.ObjectID) (*entity.Prize, error) {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("prizes")

	after := options.After
	opts := options.FindOneAndUpdateOptions{
		ReturnDocument: &after,
	}

	result := collection.FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": prizeID},
		bson.M{"$set": bson.M{"winnerProjectId": projectID}},
		&opts,
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var prize *entity.Prize
	err := result.Decode(&prize)
	return prize, err
}

func (r *PrizeRepository) DeleteOneByID(ID primitive.ObjectID) error {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("prizes")

	_, err := collection.DeleteOne(context.TODO(), bson.M{"_id": ID})
	return err
}
