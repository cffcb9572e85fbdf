package main

import (
	"context"
	"os"
	"time"

	"github.com/hackdesk/hackdesk/entity"
	"github.com/hackdesk/hackdesk/migrations"
	"github.com/hackdesk/hackdesk/repository"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Seeds a fresh database with an organizer account, an active hackathon and a
// couple of check-in items, so the API is usable right after first boot.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("HACKDESK_MONGODB_URI")))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer mongoClient.Disconnect(ctx)

	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}

	if err := migrations.EnsureIndexes(mongoClient); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	userRepository := repository.NewUserRepository(mongoClient)
	hackathonRepository := repository.NewHackathonRepository(mongoClient)
	checkInItemRepository := repository.NewCheckInItemRepository(mongoClient)

	adminEmail := os.Getenv("HACKDESK_ADMIN_EMAIL")
	admin, err := userRepository.FindOneByEmail(adminEmail)
	if err == mongo.ErrNoDocuments {
		admin, err = userRepository.UpdateOne(entity.User{
			Name:            "Organizer",
			Email:           adminEmail,
			Role:            entity.RoleAdmin,
			AdmissionStatus: entity.AdmissionAdmitted,
			AccessLevel:     entity.AccessOrganizer,
		})
	}
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}
	log.Info().Str("id", admin.ID.Hex()).Msg("seeded admin")

	start := time.Now().Truncate(time.Hour)
	hackathon, err := hackathonRepository.UpdateOne(entity.Hackathon{
		Name:      "Hackdesk Demo Hack",
		StartTime: start,
		EndTime:   start.Add(36 * time.Hour),
		Active:    true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed hackathon failed")
	}
	log.Info().Str("id", hackathon.ID.Hex()).Msg("seeded hackathon")

	items := []entity.CheckInItem{
		{
			Name:              "Registration",
			StartTime:         start,
			EndTime:           start.Add(4 * time.Hour),
			Points:            10,
			AccessLevel:       entity.AccessGeneral,
			EnableSelfCheckIn: false,
			HackathonID:       hackathon.ID,
		},
		{
			Name:              "Midnight Snack",
			StartTime:         start.Add(14 * time.Hour),
			EndTime:           start.Add(16 * time.Hour),
			Points:            5,
			AccessLevel:       entity.AccessGeneral,
			EnableSelfCheckIn: true,
			HackathonID:       hackathon.ID,
		},
		{
			Name:              "Volunteer Briefing",
			StartTime:         start.Add(2 * time.Hour),
			EndTime:           start.Add(3 * time.Hour),
			Points:            0,
			AccessLevel:       entity.AccessVolunteer,
			EnableSelfCheckIn: true,
			HackathonID:       hackathon.ID,
		},
	}
	for _, item := range items {
		saved, err := checkInItemRepository.UpdateOne(item)
		if err != nil {
			log.Fatal().Err(err).Str("name", item.Name).Msg("seed item failed")
		}
		log.Info().Str("id", saved.ID.Hex()).Str("name", saved.Name).Msg("seeded check-in item")
	}
}
