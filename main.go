package main

import (
	"context"
	"os"
	"time"

	"github.com/flowchartsman/retry"
	"github.com/gin-gonic/gin"
	"github.com/hackdesk/hackdesk/controller"
	"github.com/hackdesk/hackdesk/helpers"
	"github.com/hackdesk/hackdesk/migrations"
	"github.com/hackdesk/hackdesk/repository"
	"github.com/hackdesk/hackdesk/service"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file")
	}

	if os.Getenv("HACKDESK_PRETTY_LOGS") != "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("HACKDESK_MONGODB_URI")))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer mongoClient.Disconnect(ctx)

	retrier := retry.NewRetrier(5, 100*time.Millisecond, time.Second)
	err = retrier.Run(func() error {
		return mongoClient.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}

	err = migrations.EnsureIndexes(mongoClient)
	if err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	userRepository := repository.NewUserRepository(mongoClient)
	teamRepository := repository.NewTeamRepository(mongoClient)
	projectRepository := repository.NewProjectRepository(mongoClient)
	prizeRepository := repository.NewPrizeRepository(mongoClient)
	checkInItemRepository := repository.NewCheckInItemRepository(mongoClient)
	hackathonRepository := repository.NewHackathonRepository(mongoClient)

	authService := service.NewAuthService()
	identityService := service.NewIdentityService(userRepository)
	userService := service.NewUserService(userRepository, authService)
	teamService := service.NewTeamService(teamRepository, userRepository, authService)
	projectService := service.NewProjectService(projectRepository, prizeRepository, authService)
	prizeService := service.NewPrizeService(prizeRepository, projectRepository, authService)
	checkInService := service.NewCheckInService(checkInItemRepository, userRepository, authService)
	hackathonService := service.NewHackathonService(hackathonRepository, authService)
	admissionService := service.NewAdmissionService(userRepository, os.Getenv("HACKDESK_ADMISSION_STRICT") == "")

	userController := &controller.UserController{
		UserService:      userService,
		AdmissionService: admissionService,
		CheckInService:   checkInService,
		AuthService:      authService,
	}
	teamController := &controller.TeamController{
		TeamService: teamService,
	}
	projectController := &controller.ProjectController{
		ProjectService:   projectService,
		HackathonService: hackathonService,
	}
	prizeController := &controller.PrizeController{
		PrizeService: prizeService,
	}
	hackathonController := &controller.HackathonController{
		HackathonService: hackathonService,
	}
	checkInController := &controller.CheckInController{
		CheckInService: checkInService,
		UserService:    userService,
		TeamService:    teamService,
		ProjectService: projectService,
		PrizeService:   prizeService,
	}

	r := gin.New()
	r.Use(gin.Recovery(), helpers.RequestLogger())

	api := r.Group("/api", controller.Auth(identityService))

	api.GET("/me", userController.GetMe)
	api.GET("/users", userController.ListUsers)
	api.GET("/users/search", userController.SearchUsers)
	api.GET("/users/:id", userController.GetUser)
	api.PUT("/users/:id", userController.UpdateProfile)
	api.DELETE("/users/:id", userController.DeleteUser)
	api.POST("/users/:id/admit", userController.Admit)
	api.POST("/users/:id/reject", userController.Reject)

	api.GET("/teams/my", teamController.GetMyTeam)
	api.GET("/teams/:id", teamController.GetTeam)
	api.POST("/teams", teamController.CreateTeam)
	api.POST("/teams/:id/join", teamController.JoinTeam)
	api.DELETE("/teams/:id", teamController.DeleteTeam)
	api.POST("/teams/leave", teamController.LeaveTeam)

	api.GET("/projects", projectController.ListProjects)
	api.GET("/projects/my", projectController.GetMyProject)
	api.POST("/projects", projectController.CreateProject)
	api.PUT("/projects/:id", projectController.UpdateProject)
	api.DELETE("/projects/:id", projectController.DeleteProject)
	api.POST("/projects/:id/prizes/:prizeId", projectController.EnterPrize)

	api.GET("/prizes", prizeController.ListPrizes)
	api.GET("/prizes/:id", prizeController.GetPrize)
	api.POST("/prizes", prizeController.SavePrize)
	api.PUT("/prizes/:id", prizeController.SavePrize)
	api.DELETE("/prizes/:id", prizeController.DeletePrize)
	api.POST("/prizes/:id/winner/:projectId", prizeController.SetWinner)
	api.GET("/prizes/:id/projects", projectController.ListPrizeEntrants)

	api.GET("/hackathons", hackathonController.ListHackathons)
	api.GET("/hackathons/active", hackathonController.GetActiveHackathon)
	api.GET("/hackathons/:id", hackathonController.GetHackathon)
	api.POST("/hackathons", hackathonController.SaveHackathon)
	api.PUT("/hackathons/:id", hackathonController.SaveHackathon)

	api.GET("/checkin/items", checkInController.ListItems)
	api.POST("/checkin/items", checkInController.SaveItem)
	api.PUT("/checkin/items/:id", checkInController.SaveItem)
	api.DELETE("/checkin/items/:id", checkInController.DeleteItem)
	api.POST("/checkin/items/:id", checkInController.SelfCheckIn)
	api.POST("/checkin/items/:id/users/:userId", checkInController.CheckInUser)
	api.GET("/checkin/stats", checkInController.Stats)

	err = r.Run(":" + os.Getenv("PORT"))
	if err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
