package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/dimasprtm/wa-reminder/internal/api/dto"
	"github.com/dimasprtm/wa-reminder/internal/api/respond"
	"github.com/dimasprtm/wa-reminder/internal/config"
	"github.com/dimasprtm/wa-reminder/internal/middlewares"
	"github.com/dimasprtm/wa-reminder/internal/model"
	"github.com/dimasprtm/wa-reminder/internal/recurrence"
	reminderrepo "github.com/dimasprtm/wa-reminder/internal/repository/reminder"
	remindersvc "github.com/dimasprtm/wa-reminder/internal/service/reminder"
)

// reminderService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminder/mocks.go -package=mocks
type reminderService interface {
	CreateReminder(ctx context.Context, strategy retry.Strategy, ownerID uuid.UUID, in remindersvc.CreateInput) (model.Reminder, error)
	UpdateReminder(ctx context.Context, strategy retry.Strategy, ownerID, id uuid.UUID, in remindersvc.UpdateInput) (model.Reminder, error)
	CancelReminder(ctx context.Context, strategy retry.Strategy, ownerID, id uuid.UUID) error
	GetReminder(ctx context.Context, ownerID, id uuid.UUID) (model.Reminder, error)
	GetReminderStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error)
	ListReminders(ctx context.Context, ownerID uuid.UUID, f reminderrepo.Filter) ([]model.Reminder, error)
	GetActiveReminders(ctx context.Context, ownerID uuid.UUID) ([]model.Reminder, error)
	CancelByIDs(ctx context.Context, strategy retry.Strategy, ownerID uuid.UUID, ids []uuid.UUID) ([]remindersvc.Cancelled, error)
	CancelByKeyword(ctx context.Context, strategy retry.Strategy, ownerID uuid.UUID, keyword string) ([]remindersvc.Cancelled, error)
	CancelAll(ctx context.Context, strategy retry.Strategy, ownerID uuid.UUID) ([]remindersvc.Cancelled, error)
	CancelRecurring(ctx context.Context, strategy retry.Strategy, ownerID uuid.UUID) ([]remindersvc.Cancelled, error)
}

// Handler handles HTTP requests related to reminders.
type Handler struct {
	service   reminderService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s reminderService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Create handles POST requests to create a new reminder.
func (h *Handler) Create(c *ginext.Context) {
	ownerID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	var req dto.CreateRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	in := remindersvc.CreateInput{
		Title:          req.Title,
		DueText:        req.DueAt,
		Repeat:         model.Repeat(req.Repeat),
		RepeatInterval: req.RepeatInterval,
	}
	if req.RepeatUnit != nil {
		unit := model.RepeatUnit(*req.RepeatUnit)
		in.RepeatUnit = &unit
	}
	if req.RecipientID != nil {
		id, err := uuid.Parse(*req.RecipientID)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid recipient_id"))
			return
		}
		in.RecipientID = &id
	}

	rem, err := h.service.CreateReminder(c.Request.Context(), h.cfg.Retry, ownerID, in)
	if err != nil {
		h.fail(c, err, "failed to create reminder")
		return
	}

	respond.Created(c.Writer, rem)
}

// Get handles GET requests for a single reminder.
func (h *Handler) Get(c *ginext.Context) {
	ownerID, id, ok := h.ownedID(c)
	if !ok {
		return
	}

	rem, err := h.service.GetReminder(c.Request.Context(), ownerID, id)
	if err != nil {
		h.fail(c, err, "failed to get reminder")
		return
	}

	respond.OK(c.Writer, rem)
}

// GetStatus handles GET requests for a reminder's status only. The status
// read is served cache-aside.
func (h *Handler) GetStatus(c *ginext.Context) {
	_, id, ok := h.ownedID(c)
	if !ok {
		return
	}

	status, err := h.service.GetReminderStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		h.fail(c, err, "failed to get reminder status")
		return
	}

	respond.OK(c.Writer, status)
}

// List handles GET requests for the caller's reminders, with optional
// status, time-window and pagination query parameters.
func (h *Handler) List(c *ginext.Context) {
	ownerID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	f, err := parseFilter(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	reminders, err := h.service.ListReminders(c.Request.Context(), ownerID, f)
	if err != nil {
		h.fail(c, err, "failed to list reminders")
		return
	}

	respond.OK(c.Writer, reminders)
}

// GetActive handles GET requests for the caller's scheduled reminders,
// ordered by due time.
func (h *Handler) GetActive(c *ginext.Context) {
	ownerID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	reminders, err := h.service.GetActiveReminders(c.Request.Context(), ownerID)
	if err != nil {
		h.fail(c, err, "failed to list active reminders")
		return
	}

	respond.OK(c.Writer, reminders)
}

// Update handles PUT requests to partially update a reminder.
func (h *Handler) Update(c *ginext.Context) {
	ownerID, id, ok := h.ownedID(c)
	if !ok {
		return
	}

	var req dto.UpdateRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	in := remindersvc.UpdateInput{
		Title:          req.Title,
		DueText:        req.DueAt,
		RepeatInterval: req.RepeatInterval,
	}
	if req.Repeat != nil {
		repeat := model.Repeat(*req.Repeat)
		in.Repeat = &repeat
	}
	if req.RepeatUnit != nil {
		unit := model.RepeatUnit(*req.RepeatUnit)
		in.RepeatUnit = &unit
	}
	if req.Status != nil {
		status := model.Status(*req.Status)
		in.Status = &status
	}

	rem, err := h.service.UpdateReminder(c.Request.Context(), h.cfg.Retry, ownerID, id, in)
	if err != nil {
		h.fail(c, err, "failed to update reminder")
		return
	}

	respond.OK(c.Writer, rem)
}

// Cancel handles DELETE requests for a single reminder. Cancelling an
// already-cancelled reminder succeeds.
func (h *Handler) Cancel(c *ginext.Context) {
	ownerID, id, ok := h.ownedID(c)
	if !ok {
		return
	}

	if err := h.service.CancelReminder(c.Request.Context(), h.cfg.Retry, ownerID, id); err != nil {
		h.fail(c, err, "failed to cancel reminder")
		return
	}

	respond.OK(c.Writer, "reminder cancelled")
}

// CancelByIDs handles POST requests cancelling a batch of reminders by ID.
func (h *Handler) CancelByIDs(c *ginext.Context) {
	ownerID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	var req dto.CancelByIDsRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id %q", raw))
			return
		}
		ids = append(ids, id)
	}

	cancelled, err := h.service.CancelByIDs(c.Request.Context(), h.cfg.Retry, ownerID, ids)
	if err != nil {
		h.fail(c, err, "failed to cancel reminders")
		return
	}

	respond.OK(c.Writer, cancelled)
}

// CancelByKeyword handles POST requests cancelling reminders whose title
// contains a keyword.
func (h *Handler) CancelByKeyword(c *ginext.Context) {
	ownerID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	var req dto.CancelByKeywordRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	cancelled, err := h.service.CancelByKeyword(c.Request.Context(), h.cfg.Retry, ownerID, req.Keyword)
	if err != nil {
		h.fail(c, err, "failed to cancel reminders")
		return
	}

	respond.OK(c.Writer, cancelled)
}

// CancelAll handles POST requests cancelling every scheduled reminder the
// caller owns.
func (h *Handler) CancelAll(c *ginext.Context) {
	ownerID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	cancelled, err := h.service.CancelAll(c.Request.Context(), h.cfg.Retry, ownerID)
	if err != nil {
		h.fail(c, err, "failed to cancel reminders")
		return
	}

	respond.OK(c.Writer, cancelled)
}

// CancelRecurring handles POST requests cancelling every scheduled
// recurring reminder the caller owns.
func (h *Handler) CancelRecurring(c *ginext.Context) {
	ownerID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	cancelled, err := h.service.CancelRecurring(c.Request.Context(), h.cfg.Retry, ownerID)
	if err != nil {
		h.fail(c, err, "failed to cancel reminders")
		return
	}

	respond.OK(c.Writer, cancelled)
}

// ownedID extracts the caller and the :id path parameter, writing the error
// response itself when either is missing.
func (h *Handler) ownedID(c *ginext.Context) (uuid.UUID, uuid.UUID, bool) {
	ownerID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return uuid.Nil, uuid.Nil, false
	}

	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		zlog.Logger.Warn().Str("id", idStr).Msg("invalid reminder id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, uuid.Nil, false
	}

	return ownerID, id, true
}

// fail maps service errors onto HTTP status codes.
func (h *Handler) fail(c *ginext.Context, err error, msg string) {
	switch {
	case errors.Is(err, reminderrepo.ErrReminderNotFound):
		zlog.Logger.Warn().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("reminder not found"))
	case errors.Is(err, remindersvc.ErrNotOwner),
		errors.Is(err, remindersvc.ErrNotFriend):
		zlog.Logger.Warn().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusForbidden, err)
	case errors.Is(err, remindersvc.ErrTitleRequired),
		errors.Is(err, remindersvc.ErrDueAtRequired),
		errors.Is(err, remindersvc.ErrDueAtPast),
		errors.Is(err, remindersvc.ErrSelfRecipient),
		errors.Is(err, remindersvc.ErrAlreadySent),
		errors.Is(err, remindersvc.ErrNotScheduled),
		errors.Is(err, remindersvc.ErrInvalidStatus),
		errors.Is(err, recurrence.ErrInvalidRepeat),
		errors.Is(err, recurrence.ErrInvalidInterval),
		errors.Is(err, recurrence.ErrInvalidUnit),
		errors.Is(err, recurrence.ErrUnexpectedSpec):
		zlog.Logger.Warn().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusBadRequest, err)
	default:
		zlog.Logger.Error().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

func parseFilter(c *ginext.Context) (reminderrepo.Filter, error) {
	var f reminderrepo.Filter

	if status := c.Query("status"); status != "" {
		switch model.Status(status) {
		case model.StatusScheduled, model.StatusSent, model.StatusCancelled:
			f.Status = model.Status(status)
		default:
			return f, fmt.Errorf("invalid status %q", status)
		}
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return f, fmt.Errorf("invalid from: %w", err)
		}
		f.From = t
	}

	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return f, fmt.Errorf("invalid to: %w", err)
		}
		f.To = t
	}

	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return f, fmt.Errorf("invalid limit")
		}
		f.Limit = n
	}

	if offset := c.Query("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil || n < 0 {
			return f, fmt.Errorf("invalid offset")
		}
		f.Offset = n
	}

	return f, nil
}
