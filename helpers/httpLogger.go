package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequestLogger logs every handled request with zerolog: warn for client
// errors, error for server errors.
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		status := ctx.Writer.Status()

		event := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		}

		event.
			Str("method", ctx.Request.Method).
			Str("url", ctx.Request.URL.String()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
