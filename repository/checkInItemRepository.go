package repository

import (
	"context"
	"os"
	"time"

	"github.com/hackdesk/hackdesk/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CheckInItemRepository struct {
	mongoClient *mongo.Client
}

func NewCheckInItemRepository(mongoClient *mongo.Client) *CheckInItemRepository {
	return &CheckInItemRepository{
		mongoClient: mongoClient,
	}
}

func (r *CheckInItemRepository) FindAll() ([]*entity.CheckInItem, error) {
	return r.find(bson.M{"_id": bson.M{"$ne": ""}})
}

func (r *CheckInItemRepository) FindOneByID(ID primitive.ObjectID) (*entity.CheckInItem, error) {
	items, err := r.find(bson.M{"_id": ID})
	if err != nil {
		return nil, err
	}

	return items[0], nil
}

func (r *CheckInItemRepository) FindManyByHackathonID(hackathonID primitive.ObjectID) ([]*entity.CheckInItem, error) {
	return r.find(bson.M{"hackathonId": hackathonID})
}

func (r *CheckInItemRepository) FindManyBetweenDates(fromUTC, toUTC time.Time) ([]*entity.CheckInItem, error) {
	return r.find(bson.M{
		"startTime": bson.M{
			"$gte": fromUTC,
			"$lte": toUTC,
		},
	})
}

func (r *CheckInItemRepository) find(m bson.M) ([]*entity.CheckInItem, error) {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("checkInItems")

	cur, err := collection.Find(context.TODO(), m, options.Find().SetSort(bson.M{"startTime": 1}))
	if err != nil {
		return nil, err
	}

	var items []*entity.CheckInItem
	err = cur.All(context.TODO(), &items)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return items, nil
}

func (r *CheckInItemRepository) UpdateOne(item entity.CheckInItem) (*entity.CheckInItem, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}

	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("checkInItems")

	filter := bson.M{"_id": item.ID}

	update := bson.M{
		"$set": item,
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

	var newItem *entity.CheckInItem
	err := result.Decode(&newItem)
	return newItem, err
}

func (r *CheckInItemRepository) DeleteOneByID(ID primitive.ObjectID) error {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("checkInItems")

	_, err := collection.DeleteOne(context.TODO(), bson.M{"_id": ID})
	return err
}
