package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackdesk/hackdesk/service"
	"github.com/rs/zerolog/log"
)

// respondError maps service failure kinds to status codes. Unknown errors are
// logged and returned as 500 without leaking internals.
func respondError(ctx *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNotOwner),
		errors.Is(err, service.ErrOutOfWindow),
		errors.Is(err, service.ErrSelfCheckInDisabled),
		errors.Is(err, service.ErrInsufficientAccess):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrDuplicateProject):
		status = http.StatusConflict
	case errors.Is(err, service.ErrNoTeam), errors.Is(err, service.ErrInvalid):
		status = http.StatusBadRequest
	default:
		log.Error().Err(err).Str("url", ctx.Request.URL.String()).Msg("request failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	ctx.JSON(status, gin.H{"error": err.Error()})
}
