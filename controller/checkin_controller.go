package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hackdesk/hackdesk/entity"
	"github.com/hackdesk/hackdesk/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type CheckInController struct {
	CheckInService *service.CheckInService
	UserService    *service.UserService
	TeamService    *service.TeamService
	ProjectService *service.ProjectService
	PrizeService   *service.PrizeService
}

type listItemsQuery struct {
	From string `schema:"from"`
	To   string `schema:"to"`
	Lang string `schema:"lang"`
}

type checkInItemView struct {
	*entity.CheckInItem
	Alias string `json:"alias"`
}

func (c *CheckInController) ListItems(ctx *gin.Context) {
	var query listItemsQuery
	if err := decoder.Decode(&query, ctx.Request.URL.Query()); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var items []*entity.CheckInItem
	var err error
	if query.From != "" && query.To != "" {
		var from, to time.Time
		from, err = time.Parse(time.RFC3339, query.From)
		if err == nil {
			to, err = time.Parse(time.RFC3339, query.To)
		}
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		items, err = c.CheckInService.FindItemsBetweenDates(from, to)
	} else {
		items, err = c.CheckInService.FindItems()
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	views := make([]checkInItemView, 0, len(items))
	for _, item := range items {
		views = append(views, checkInItemView{
			CheckInItem: item,
			Alias:       item.Alias(query.Lang),
		})
	}

	ctx.JSON(http.StatusOK, views)
}

func (c *CheckInController) SaveItem(ctx *gin.Context) {
	var item entity.CheckInItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if hex := ctx.Param("id"); hex != "" {
		itemID, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item.ID = itemID
	}

	saved, err := c.CheckInService.SaveItem(identity(ctx), item)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, saved)
}

func (c *CheckInController) DeleteItem(ctx *gin.Context) {
	itemID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.CheckInService.DeleteItem(identity(ctx), itemID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SelfCheckIn checks the caller in to an item.
func (c *CheckInController) SelfCheckIn(ctx *gin.Context) {
	caller := identity(ctx)

	itemID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.CheckInService.CheckIn(caller, caller.UserID, itemID, time.Now())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// CheckInUser checks a named user in at the desk; admin only.
func (c *CheckInController) CheckInUser(ctx *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	itemID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.CheckInService.CheckIn(identity(ctx), userID, itemID, time.Now())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// Stats fans out the dashboard reads concurrently; admin only.
func (c *CheckInController) Stats(ctx *gin.Context) {
	caller := identity(ctx)

	var users []*entity.User
	var teams []*entity.Team
	var projects []*entity.Project
	var prizes []*entity.Prize
	var items []*entity.CheckInItem

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		users, err = c.UserService.FindMany(caller, "")
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = c.TeamService.FindAll()
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = c.ProjectService.FindAll()
		return err
	})
	g.Go(func() error {
		var err error
		prizes, err = c.PrizeService.FindAll()
		return err
	})
	g.Go(func() error {
		var err error
		items, err = c.CheckInService.FindItems()
		return err
	})
	if err := g.Wait(); err != nil {
		respondError(ctx, err)
		return
	}

	admissions := map[string]int{}
	for _, user := range users {
		admissions[user.AdmissionStatus]++
	}

	checkIns := make(map[string]int, len(items))
	for _, item := range items {
		var count int
		for _, user := range users {
			if user.HasCheckedIn(item.ID) {
				count++
			}
		}
		checkIns[item.ID.Hex()] = count
	}

	ctx.JSON(http.StatusOK, gin.H{
		"users":      len(users),
		"admissions": admissions,
		"teams":      len(teams),
		"projects":   len(projects),
		"prizes":     len(prizes),
		"checkIns":   checkIns,
	})
}
