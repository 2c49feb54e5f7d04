// Package server exposes batch formatting over HTTP.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/toma4423/dtpsupport"
	"github.com/toma4423/dtpsupport/internal/config"
	"github.com/toma4423/dtpsupport/internal/report"
)

// NewRouter builds the gin engine with all endpoints wired. base supplies
// the defaults a request may override per call.
func NewRouter(base *config.Config, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(requestLogger(log), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})

	v1 := r.Group("/v1")
	{
		v1.POST("/format", formatHandler(base))
		v1.GET("/formats", formatsHandler())
	}

	return r
}

// requestLogger emits one structured line per request after it finishes.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

// formatRequest is the body of POST /v1/format. Every setting is
// optional; absent fields fall back to the server configuration.
// Pointers distinguish "not sent" from an explicit zero.
type formatRequest struct {
	Names             []string `json:"names" binding:"required,min=1"`
	Surnames          []string `json:"surnames"`
	Width             *int     `json:"width"`
	Alignment         string   `json:"alignment"`
	Match             string   `json:"match"`
	Fallback          string   `json:"fallback"`
	Join              *string  `json:"join"`
	Spread            *bool    `json:"spread"`
	KeepFullSurname   *bool    `json:"keep_full_surname"`
	DisableRuleTables *bool    `json:"disable_rule_tables"`
	ReportBlankRows   *bool    `json:"report_blank_rows"`
}

// config merges the request over the server defaults.
func (req formatRequest) config(base config.Config) config.Config {
	cfg := base
	if req.Width != nil {
		cfg.Width = *req.Width
	}
	if req.Alignment != "" {
		cfg.Alignment = req.Alignment
	}
	if req.Match != "" {
		cfg.Match = req.Match
	}
	if req.Fallback != "" {
		cfg.Fallback = req.Fallback
	}
	if req.Join != nil {
		cfg.Join = *req.Join
	}
	if req.Spread != nil {
		cfg.Spread = *req.Spread
	}
	if req.KeepFullSurname != nil {
		cfg.KeepFullSurname = *req.KeepFullSurname
	}
	if req.DisableRuleTables != nil {
		cfg.DisableRuleTables = *req.DisableRuleTables
	}
	if req.ReportBlankRows != nil {
		cfg.ReportBlankRows = *req.ReportBlankRows
	}
	return cfg
}

// formatResponse is the body of a successful POST /v1/format.
type formatResponse struct {
	JobID string `json:"job_id"`
	report.Report
}

func formatHandler(base *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req formatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, "invalid request body", err)
			return
		}

		cfg := req.config(*base)
		if cfg.Width < 1 {
			writeError(c, http.StatusBadRequest, "invalid formatting settings",
				errors.New("width must be at least 1"))
			return
		}

		batch, err := cfg.Batch(dtpsupport.Dictionary(req.Surnames))
		if err != nil {
			handleBatchError(c, err)
			return
		}

		rows, diags := batch.Run(req.Names)
		rep := report.New(report.BatchSettings(batch), len(req.Names), rows, diags)

		c.JSON(http.StatusOK, formatResponse{
			JobID:  uuid.NewString(),
			Report: *rep,
		})
	}
}

// formatsHandler lists the report formats the CLI understands, so UIs can
// populate a picker.
func formatsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"formats": report.Formats()})
	}
}

// handleBatchError maps configuration errors onto HTTP statuses.
func handleBatchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dtpsupport.ErrUnknownAlignment),
		errors.Is(err, dtpsupport.ErrUnknownPolicy):
		writeError(c, http.StatusBadRequest, "invalid formatting settings", err)
	default:
		writeError(c, http.StatusInternalServerError, "internal error", err)
	}
}

// writeError builds the shared error response body.
func writeError(c *gin.Context, status int, message string, err error) {
	c.JSON(status, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}
