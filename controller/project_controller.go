package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackdesk/hackdesk/entity"
	"github.com/hackdesk/hackdesk/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectController struct {
	ProjectService   *service.ProjectService
	HackathonService *service.HackathonService
}

// hackathonID resolves the hackathon once per request: an explicit
// ?hackathonId= wins, otherwise the active hackathon. Services only ever see
// the explicit id.
func (c *ProjectController) hackathonID(ctx *gin.Context) (primitive.ObjectID, error) {
	if hex := ctx.Query("hackathonId"); hex != "" {
		return primitive.ObjectIDFromHex(hex)
	}

	hackathon, err := c.HackathonService.FindActive()
	if err != nil {
		return primitive.NilObjectID, err
	}
	return hackathon.ID, nil
}

// ListProjects is a public listing: any authenticated user may browse.
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	hackathonID, err := c.hackathonID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	projects, err := c.ProjectService.FindManyByHackathonID(hackathonID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// ListPrizeEntrants lists the projects entered into a prize.
func (c *ProjectController) ListPrizeEntrants(ctx *gin.Context) {
	prizeID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projects, err := c.ProjectService.FindManyByPrizeID(prizeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func (c *ProjectController) GetMyProject(ctx *gin.Context) {
	hackathonID, err := c.hackathonID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	project, err := c.ProjectService.FindMyProject(identity(ctx), hackathonID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (c *ProjectController) CreateProject(ctx *gin.Context) {
	hackathonID, err := c.hackathonID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var project entity.Project
	if err := ctx.ShouldBindJSON(&project); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := c.ProjectService.Create(identity(ctx), hackathonID, project)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	projectID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project entity.Project
	if err := ctx.ShouldBindJSON(&project); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	project.ID = projectID

	updated, err := c.ProjectService.Update(identity(ctx), project)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	projectID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.ProjectService.Delete(identity(ctx), projectID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *ProjectController) EnterPrize(ctx *gin.Context) {
	projectID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prizeID, err := primitive.ObjectIDFromHex(ctx.Param("prizeId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := c.ProjectService.EnterPrize(identity(ctx), projectID, prizeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}
