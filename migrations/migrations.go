package migrations

import (
	"context"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. The unique
// (teamId, hackathonId) index on projects is load-bearing: concurrent project
// creation races past the service-level pre-check and must be rejected here.
func EnsureIndexes(client *mongo.Client) error {
	db := client.Database(os.Getenv("HACKDESK_MONGODB_NAME"))

	_, err := db.Collection("projects").Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys: bson.D{
			{Key: "teamId", Value: 1},
			{Key: "hackathonId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("users").Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("users").Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys: bson.D{{Key: "teamId", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("checkInItems").Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys: bson.D{{Key: "startTime", Value: 1}},
	})
	return err
}
