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

type UserRepository struct {
	mongoClient *mongo.Client
}

func NewUserRepository(mongoClient *mongo.Client) *UserRepository {
	return &UserRepository{
		mongoClient: mongoClient,
	}
}

func (r *UserRepository) FindAll() ([]*entity.User, error) {
	return r.find(bson.M{"_id": bson.M{"$ne": ""}})
}

func (r *UserRepository) FindOneByID(ID primitive.ObjectID) (*entity.User, error) {
	users, err := r.find(bson.M{"_id": ID})
	if err != nil {
		return nil, err
	}

	return users[0], nil
}

func (r *UserRepository) FindOneByEmail(email string) (*entity.User, error) {
	users, err := r.find(bson.M{"email": email})
	if err != nil {
		return nil, err
	}

	return users[0], nil
}

func (r *UserRepository) FindManyByTeamID(teamID primitive.ObjectID) ([]*entity.User, error) {
	return r.find(bson.M{"teamId": teamID})
}

func (r *UserRepository) FindManyByAdmissionStatus(status string) ([]*entity.User, error) {
	return r.find(bson.M{"admissionStatus": status})
}

func (r *UserRepository) find(m bson.M) ([]*entity.User, error) {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("users")

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
			"$sort": bson.M{
				"name": 1,
			},
		},
	}

	cur, err := collection.Aggregate(context.TODO(), pipeline)
	if err != nil {
		return nil, err
	}

	var users []*entity.User
	err = cur.All(context.TODO(), &users)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return users, nil
}

func (r *UserRepository) UpdateOne(user entity.User) (*entity.User, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("users")

	filter := bson.M{"_id": user.ID}

	user.Team = nil
	update := bson.M{
		"$set": user,
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

	var newUser *entity.User
	err := result.Decode(&newUser)
	return newUser, err
}

func (r *UserRepository) UpdateAdmissionStatus(ID primitive.ObjectID, status string) (*entity.User, error) {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("users")

	after := options.After
	opts := options.FindOneAndUpdateOptions{
		ReturnDocument: &after,
	}

	result := collection.FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": ID},
		bson.M{"$set": bson.M{"admissionStatus": status}},
		&opts,
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user *entity.User
	err := result.Decode(&user)
	return user, err
}

// AddCheckInItem records a check-in as a set insertion: checking in twice for
// the same item leaves the document unchanged.
func (r *UserRepository) AddCheckInItem(userID, itemID primitive.ObjectID) (*entity.User, error) {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("users")

	after := options.After
	opts := options.FindOneAndUpdateOptions{
		ReturnDocument: &after,
	}

	result := collection.FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"checkInItemIds": itemID}},
		&opts,
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user *entity.User
	err := result.Decode(&user)
	return user, err
}

func (r *UserRepository) SetTeam(userID, teamID primitive.ObjectID) (*entity.User, error) {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("users")

	after := options.After
	opts := options.FindOneAndUpdateOptions{
		ReturnDocument: &after,
	}

	result := collection.FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"teamId": teamID}},
		&opts,
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user *entity.User
	err := result.Decode(&user)
	return user, err
}

func (r *UserRepository) UnsetTeam(userID primitive.ObjectID) (*entity.User, error) {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("users")

	after := options.After
	opts := options.FindOneAndUpdateOptions{
		ReturnDocument: &after,
	}

	result := collection.FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": userID},
		bson.M{"$unset": bson.M{"teamId": ""}},
		&opts,
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user *entity.User
	err := result.Decode(&user)
	return user, err
}

func (r *UserRepository) DeleteOneByID(ID primitive.ObjectID) error {
	collection := r.mongoClient.Database(os.Getenv("HACKDESK_MONGODB_NAME")).Collection("users")

	_, err := collection.DeleteOne(context.TODO(), bson.M{"_id": ID})
	return err
}
