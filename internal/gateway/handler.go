package gateway

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sleepstars/groqgate/internal/config"
	"github.com/sleepstars/groqgate/internal/models"
	"github.com/sleepstars/groqgate/internal/provider"
)

// Handler translates inbound HTTP JSON into upstream completion calls.
type Handler struct {
	cfg      *config.Config
	upstream provider.CompletionClient
	version  string
	started  time.Time
}

// NewHandler creates a new Handler.
func NewHandler(cfg *config.Config, upstream provider.CompletionClient, version string) *Handler {
	return &Handler{
		cfg:      cfg,
		upstream: upstream,
		version:  version,
		started:  time.Now(),
	}
}

// Router builds the gin engine with all gateway routes registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware())

	r.GET("/health", h.Health)
	r.POST("/chat", h.Chat)
	r.GET("/models", h.Models)

	return r
}

// Health handles GET /health. It never touches the upstream.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Version:   h.version,
		UptimeS:   time.Since(h.started).Seconds(),
		Timestamp: time.Now(),
	})
}

// Chat handles POST /chat: validate, one upstream call, respond.
func (h *Handler) Chat(c *gin.Context) {
	requestID := c.GetString("request_id")
	start := time.Now()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"event":      "parse_error",
		}).Warn("Failed to parse request body")

		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: models.ErrorDetail{
			Type:    "invalid_request",
			Message: "failed to parse request body: " + err.Error(),
		}})
		return
	}

	if err := req.Validate(h.cfg.MaxTokens); err != nil {
		log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"event":      "validation_failed",
		}).Warn("Request validation failed")

		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: models.ErrorDetail{
			Type:    "validation_error",
			Message: err.Error(),
		}})
		return
	}

	temperature := h.cfg.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	maxTokens := h.cfg.MaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}

	completion, err := h.upstream.Complete(c.Request.Context(), req.Message, temperature, maxTokens)
	if err != nil {
		log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"event":      "upstream_error",
		}).Error("Upstream call failed")

		// Generic message only: upstream detail stays in the logs.
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: models.ErrorDetail{
			Type:    "upstream_error",
			Message: "AI response failed",
		}})
		return
	}

	resp := models.ChatResponse{
		Reply:          completion.Reply,
		Model:          completion.Model,
		TokensUsed:     completion.TokensUsed,
		ResponseTimeMs: time.Since(start).Milliseconds(),
		Timestamp:      time.Now(),
	}

	log.WithFields(log.Fields{
		"request_id":  requestID,
		"model":       resp.Model,
		"tokens_used": resp.TokensUsed,
		"latency_ms":  resp.ResponseTimeMs,
		"event":       "success",
	}).Info("Chat request successful")

	c.JSON(http.StatusOK, resp)
}

// Models handles GET /models. The list is static configuration, not a
// dynamic catalog; the configured model comes first.
func (h *Handler) Models(c *gin.Context) {
	c.JSON(http.StatusOK, models.ModelsResponse{
		Models:       []string{h.cfg.Model},
		CurrentModel: h.cfg.Model,
	})
}
