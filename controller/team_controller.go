package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackdesk/hackdesk/entity"
	"github.com/hackdesk/hackdesk/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamController struct {
	TeamService *service.TeamService
}

// GetMyTeam resolves the team from the authenticated identity. A team id in
// the query or path is ignored on purpose.
func (c *TeamController) GetMyTeam(ctx *gin.Context) {
	team, err := c.TeamService.FindMyTeam(identity(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, team)
}

func (c *TeamController) GetTeam(ctx *gin.Context) {
	teamID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := c.TeamService.FindOne(identity(ctx), teamID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, team)
}

func (c *TeamController) CreateTeam(ctx *gin.Context) {
	var team entity.Team
	if err := ctx.ShouldBindJSON(&team); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := c.TeamService.Create(identity(ctx), team)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func (c *TeamController) JoinTeam(ctx *gin.Context) {
	teamID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.TeamService.Join(identity(ctx), teamID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (c *TeamController) DeleteTeam(ctx *gin.Context) {
	teamID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.TeamService.Delete(identity(ctx), teamID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *TeamController) LeaveTeam(ctx *gin.Context) {
	user, err := c.TeamService.Leave(identity(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
