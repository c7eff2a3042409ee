// Package wa exposes the inbound webhook for the messaging channel.
package wa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/dimasprtm/wa-reminder/internal/api/dto"
	"github.com/dimasprtm/wa-reminder/internal/api/respond"
	"github.com/dimasprtm/wa-reminder/internal/config"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/wa/mocks.go -package=mocks
type inboundService interface {
	HandleInbound(ctx context.Context, strategy retry.Strategy, from, text string) string
}

// Reply is the webhook response the channel automation turns into an
// outbound message.
type Reply struct {
	Action string `json:"action"`
	To     string `json:"to"`
	Body   string `json:"body"`
}

// Handler handles the inbound message webhook.
type Handler struct {
	service   inboundService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s inboundService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Inbound handles POST requests carrying one received message. It always
// answers with a reply payload; processing problems degrade to an apology
// for the sender instead of an error status.
func (h *Handler) Inbound(c *ginext.Context) {
	var req dto.InboundRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode inbound payload")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate inbound payload")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	body := h.service.HandleInbound(c.Request.Context(), h.cfg.Retry, req.From, req.Text)

	respond.OK(c.Writer, Reply{Action: "reply", To: req.From, Body: body})
}
