package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackdesk/hackdesk/entity"
	"github.com/hackdesk/hackdesk/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HackathonController struct {
	HackathonService *service.HackathonService
}

// ListHackathons is a public listing.
func (c *HackathonController) ListHackathons(ctx *gin.Context) {
	hackathons, err := c.HackathonService.FindAll()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, hackathons)
}

func (c *HackathonController) GetHackathon(ctx *gin.Context) {
	hackathonID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hackathon, err := c.HackathonService.FindOne(hackathonID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, hackathon)
}

func (c *HackathonController) GetActiveHackathon(ctx *gin.Context) {
	hackathon, err := c.HackathonService.FindActive()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, hackathon)
}

func (c *HackathonController) SaveHackathon(ctx *gin.Context) {
	var hackathon entity.Hackathon
	if err := ctx.ShouldBindJSON(&hackathon); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if hex := ctx.Param("id"); hex != "" {
		hackathonID, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		hackathon.ID = hackathonID
	}

	saved, err := c.HackathonService.Save(identity(ctx), hackathon)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, saved)
}
