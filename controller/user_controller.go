package controller

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
	"github.com/hackdesk/hackdesk/entity"
	"github.com/hackdesk/hackdesk/service"
	"github.com/hbollon/go-edlib"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var decoder = schema.NewDecoder()

type UserController struct {
	UserService      *service.UserService
	AdmissionService *service.AdmissionService
	CheckInService   *service.CheckInService
	AuthService      *service.AuthService
}

func (c *UserController) GetMe(ctx *gin.Context) {
	caller := identity(ctx)

	user, err := c.UserService.FindOne(caller, caller.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	points, err := c.CheckInService.TotalPoints(user)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":   user,
		"points": points,
	})
}

func (c *UserController) GetUser(ctx *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.UserService.FindOne(identity(ctx), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

type listUsersQuery struct {
	Status string `schema:"status"`
}

func (c *UserController) ListUsers(ctx *gin.Context) {
	var query listUsersQuery
	if err := decoder.Decode(&query, ctx.Request.URL.Query()); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, err := c.UserService.FindMany(identity(ctx), query.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

type searchUsersQuery struct {
	Q string `schema:"q"`
}

type userMatch struct {
	User       *entity.User `json:"user"`
	Similarity float32      `json:"similarity"`
}

// SearchUsers is the check-in desk search: matches a typed or scanned name
// against registered users by Levenshtein similarity.
func (c *UserController) SearchUsers(ctx *gin.Context) {
	var query searchUsersQuery
	if err := decoder.Decode(&query, ctx.Request.URL.Query()); err != nil || query.Q == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	users, err := c.UserService.FindMany(identity(ctx), "")
	if err != nil {
		respondError(ctx, err)
		return
	}

	var matches []userMatch
	for _, user := range users {
		similarity, err := edlib.StringsSimilarity(query.Q, user.Name, edlib.Levenshtein)
		if err == nil && similarity > 0.5 {
			matches = append(matches, userMatch{User: user, Similarity: similarity})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	ctx.JSON(http.StatusOK, matches)
}

func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user entity.User
	if err := ctx.ShouldBindJSON(&user); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user.ID = userID

	updated, err := c.UserService.UpdateProfile(identity(ctx), user)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func (c *UserController) DeleteUser(ctx *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.UserService.Delete(identity(ctx), userID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Admit and Reject are admin decisions; the authorizer gates them before the
// admission engine runs.
func (c *UserController) Admit(ctx *gin.Context) {
	c.decide(ctx, c.AdmissionService.Admit)
}

func (c *UserController) Reject(ctx *gin.Context) {
	c.decide(ctx, c.AdmissionService.Reject)
}

func (c *UserController) decide(ctx *gin.Context, decision func(primitive.ObjectID) (*entity.User, error)) {
	userID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.AuthService.Authorize(identity(ctx), service.OpUpdate, service.Resource{}); err != nil {
		respondError(ctx, err)
		return
	}

	user, err := decision(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
