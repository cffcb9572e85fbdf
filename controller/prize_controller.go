package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackdesk/hackdesk/entity"
	"github.com/hackdesk/hackdesk/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PrizeController struct {
	PrizeService *service.PrizeService
}

// ListPrizes is a public listing.
func (c *PrizeController) ListPrizes(ctx *gin.Context) {
	if hex := ctx.Query("hackathonId"); hex != "" {
		hackathonID, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		prizes, err := c.PrizeService.FindManyByHackathonID(hackathonID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, prizes)
		return
	}

	prizes, err := c.PrizeService.FindAll()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, prizes)
}

func (c *PrizeController) GetPrize(ctx *gin.Context) {
	prizeID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prize, err := c.PrizeService.FindOne(prizeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, prize)
}

func (c *PrizeController) SavePrize(ctx *gin.Context) {
	var prize entity.Prize
	if err := ctx.ShouldBindJSON(&prize); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if hex := ctx.Param("id"); hex != "" {
		prizeID, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		prize.ID = prizeID
	}

	saved, err := c.PrizeService.Save(identity(ctx), prize)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, saved)
}

func (c *PrizeController) SetWinner(ctx *gin.Context) {
	prizeID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projectID, err := primitive.ObjectIDFromHex(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prize, err := c.PrizeService.SetWinner(identity(ctx), prizeID, projectID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, prize)
}

func (c *PrizeController) DeletePrize(ctx *gin.Context) {
	prizeID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.PrizeService.Delete(identity(ctx), prizeID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
