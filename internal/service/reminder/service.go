package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/dimasprtm/wa-reminder/internal/model"
	"github.com/dimasprtm/wa-reminder/internal/nlu"
	"github.com/dimasprtm/wa-reminder/internal/recipient"
	"github.com/dimasprtm/wa-reminder/internal/recurrence"
	reminderrepo "github.com/dimasprtm/wa-reminder/internal/repository/reminder"
	"github.com/dimasprtm/wa-reminder/internal/timeres"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrDueAtRequired = errors.New("due time is required")
	ErrDueAtPast     = errors.New("due time must be in the future")
	ErrSelfRecipient = errors.New("recipient must differ from the owner")
	ErrNotFriend     = errors.New("recipient is not an accepted friend")
	ErrNotOwner      = errors.New("not the reminder owner")
	ErrAlreadySent   = errors.New("reminder already sent")
	ErrNotScheduled  = errors.New("reminder is no longer scheduled")
	ErrInvalidStatus = errors.New("status can only be changed to cancelled")
)

type reminderRepo interface {
	CreateReminder(ctx context.Context, rem model.Reminder) (uuid.UUID, error)
	GetReminderByID(ctx context.Context, id uuid.UUID) (model.Reminder, error)
	GetReminderStatusByID(ctx context.Context, id uuid.UUID) (model.Status, error)
	UpdateReminder(ctx context.Context, rem model.Reminder) error
	MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, f reminderrepo.Filter) ([]model.Reminder, error)
	ListScheduledByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Reminder, error)
	FindScheduled(ctx context.Context, ownerID uuid.UUID, c reminderrepo.Criteria) ([]model.Reminder, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	GetByPhone(ctx context.Context, phone string) (model.User, error)
}

type friendRepo interface {
	IsAccepted(ctx context.Context, ownerID, otherID uuid.UUID) (bool, error)
}

type jobScheduler interface {
	Arm(rem model.Reminder)
	Cancel(id uuid.UUID)
}

type recipientResolver interface {
	Resolve(ctx context.Context, owner model.User, hints recipient.Hints) model.User
}

type nluClient interface {
	Extract(ctx context.Context, message string) (nlu.Extraction, error)
	GenerateReply(ctx context.Context, mode string, vars map[string]interface{}) (string, error)
}

type cache interface {
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// CreateInput is a validated-on-entry creation request.
type CreateInput struct {
	Title          string
	DueText        string
	Repeat         model.Repeat
	RepeatInterval *int
	RepeatUnit     *model.RepeatUnit
	RecipientID    *uuid.UUID
}

// UpdateInput carries the partial fields of an update request. Status may
// only transition to cancelled.
type UpdateInput struct {
	Title          *string
	DueText        *string
	Repeat         *model.Repeat
	RepeatInterval *int
	RepeatUnit     *model.RepeatUnit
	Status         *model.Status
}

// Cancelled describes one reminder affected by a bulk cancellation.
type Cancelled struct {
	ID     uuid.UUID    `json:"id"`
	Title  string       `json:"title"`
	Repeat model.Repeat `json:"repeat"`
}

// Service implements the reminder lifecycle: validation, the status state
// machine, cancellation ordering and the inbound natural-language flow.
type Service struct {
	repo    reminderRepo
	users   userRepo
	friends friendRepo
	sched   jobScheduler
	recips  recipientResolver
	nlu     nluClient
	cache   cache
	times   *timeres.Resolver
	loc     *time.Location
}

// NewService creates the reminder service.
func NewService(
	repo reminderRepo,
	users userRepo,
	friends friendRepo,
	sched jobScheduler,
	recips recipientResolver,
	nlu nluClient,
	cache cache,
	times *timeres.Resolver,
	loc *time.Location,
) *Service {
	return &Service{
		repo:    repo,
		users:   users,
		friends: friends,
		sched:   sched,
		recips:  recips,
		nlu:     nlu,
		cache:   cache,
		times:   times,
		loc:     loc,
	}
}

// CreateReminder validates the request, persists the reminder and arms its
// timer.
func (s *Service) CreateReminder(ctx context.Context, strategy retry.Strategy, ownerID uuid.UUID, in CreateInput) (model.Reminder, error) {
	if in.Title == "" {
		return model.Reminder{}, ErrTitleRequired
	}

	dueAt, err := s.resolveDue(in.DueText)
	if err != nil {
		return model.Reminder{}, err
	}

	repeat := in.Repeat
	if repeat == "" {
		repeat = model.RepeatNone
	}
	if err := recurrence.Validate(repeat, in.RepeatInterval, in.RepeatUnit); err != nil {
		return model.Reminder{}, err
	}

	if in.RecipientID != nil {
		if *in.RecipientID == ownerID {
			return model.Reminder{}, ErrSelfRecipient
		}

		ok, err := s.friends.IsAccepted(ctx, ownerID, *in.RecipientID)
		if err != nil {
			return model.Reminder{}, fmt.Errorf("check relation: %w", err)
		}
		if !ok {
			return model.Reminder{}, ErrNotFriend
		}
	}

	rem := model.Reminder{
		OwnerID:        ownerID,
		RecipientID:    in.RecipientID,
		Title:          in.Title,
		DueAt:          dueAt,
		Repeat:         repeat,
		RepeatInterval: in.RepeatInterval,
		RepeatUnit:     in.RepeatUnit,
		Status:         model.StatusScheduled,
	}

	return s.persistAndArm(ctx, strategy, rem)
}

// UpdateReminder applies a partial update. Changing the due time replaces
// the live timer; a cancel-only transition follows the cancellation
// ordering (status first, then disarm).
func (s *Service) UpdateReminder(ctx context.Context, strategy retry.Strategy, ownerID, id uuid.UUID, in UpdateInput) (model.Reminder, error) {
	rem, err := s.repo.GetReminderByID(ctx, id)
	if err != nil {
		return model.Reminder{}, err
	}
	if rem.OwnerID != ownerID {
		return model.Reminder{}, ErrNotOwner
	}

	if in.Status != nil {
		return s.applyStatusTransition(ctx, strategy, rem, *in.Status)
	}

	if rem.Status.Terminal() {
		if rem.Status == model.StatusSent {
			return model.Reminder{}, ErrAlreadySent
		}
		return model.Reminder{}, ErrNotScheduled
	}

	if in.Title != nil {
		if *in.Title == "" {
			return model.Reminder{}, ErrTitleRequired
		}
		rem.Title = *in.Title
	}

	if in.DueText != nil {
		dueAt, err := s.resolveDue(*in.DueText)
		if err != nil {
			return model.Reminder{}, err
		}
		rem.DueAt = dueAt
	}

	if in.Repeat != nil || in.RepeatInterval != nil || in.RepeatUnit != nil {
		if in.Repeat != nil {
			rem.Repeat = *in.Repeat
		}
		if in.RepeatInterval != nil {
			rem.RepeatInterval = in.RepeatInterval
		}
		if in.RepeatUnit != nil {
			rem.RepeatUnit = in.RepeatUnit
		}
		if rem.Repeat != model.RepeatCustom {
			rem.RepeatInterval = nil
			rem.RepeatUnit = nil
		}
		if err := recurrence.Validate(rem.Repeat, rem.RepeatInterval, rem.RepeatUnit); err != nil {
			return model.Reminder{}, err
		}
	}

	if err := s.repo.UpdateReminder(ctx, rem); err != nil {
		return model.Reminder{}, err
	}

	// Arm replaces any existing timer, so a due-time change never leaves
	// the old timer live.
	s.sched.Arm(rem)

	return rem, nil
}

// CancelReminder soft-deletes a reminder. Cancelling an already-terminal
// reminder is a no-op success.
func (s *Service) CancelReminder(ctx context.Context, strategy retry.Strategy, ownerID, id uuid.UUID) error {
	rem, err := s.repo.GetReminderByID(ctx, id)
	if err != nil {
		return err
	}
	if rem.OwnerID != ownerID {
		return ErrNotOwner
	}

	s.cancelOne(ctx, strategy, id)
	return nil
}

// ListReminders returns the owner's reminders matching the filter.
func (s *Service) ListReminders(ctx context.Context, ownerID uuid.UUID, f reminderrepo.Filter) ([]model.Reminder, error) {
	return s.repo.ListByOwner(ctx, ownerID, f)
}

// GetActiveReminders returns the owner's scheduled reminders ordered by due
// time.
func (s *Service) GetActiveReminders(ctx context.Context, ownerID uuid.UUID) ([]model.Reminder, error) {
	return s.repo.ListScheduledByOwner(ctx, ownerID)
}

// GetReminder returns a single owned reminder.
func (s *Service) GetReminder(ctx context.Context, ownerID, id uuid.UUID) (model.Reminder, error) {
	rem, err := s.repo.GetReminderByID(ctx, id)
	if err != nil {
		return model.Reminder{}, err
	}
	if rem.OwnerID != ownerID {
		return model.Reminder{}, ErrNotOwner
	}

	return rem, nil
}

// GetReminderStatusByID returns a reminder's status, cache-aside. The cache
// is authoritative enough for read endpoints and the delivery worker's
// cancelled check; the fire handler itself always reads the store.
func (s *Service) GetReminderStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Printf("failed to get reminder status from cache %s: %v", id, err)
	}

	if err != nil || status == "" {
		fresh, err := s.repo.GetReminderStatusByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get reminder status: %w", err)
		}

		s.cacheStatus(ctx, strategy, id, fresh)
		return fresh, nil
	}

	return model.Status(status), nil
}

// CancelByIDs cancels the owner's scheduled reminders among the given IDs.
// Unknown or already-terminal IDs are skipped, not errors.
func (s *Service) CancelByIDs(ctx context.Context, strategy retry.Strategy, ownerID uuid.UUID, ids []uuid.UUID) ([]Cancelled, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.cancelWhere(ctx, strategy, ownerID, reminderrepo.Criteria{IDs: ids})
}

// CancelByKeyword cancels the owner's scheduled reminders whose title
// contains the keyword, case-insensitively.
func (s *Service) CancelByKeyword(ctx context.Context, strategy retry.Strategy, ownerID uuid.UUID, keyword string) ([]Cancelled, error) {
	return s.cancelWhere(ctx, strategy, ownerID, reminderrepo.Criteria{Keyword: keyword})
}

// CancelAll cancels every scheduled reminder owned by the caller.
func (s *Service) CancelAll(ctx context.Context, strategy retry.Strategy, ownerID uuid.UUID) ([]Cancelled, error) {
	return s.cancelWhere(ctx, strategy, ownerID, reminderrepo.Criteria{})
}

// CancelRecurring cancels every scheduled recurring reminder owned by the
// caller.
func (s *Service) CancelRecurring(ctx context.Context, strategy retry.Strategy, ownerID uuid.UUID) ([]Cancelled, error) {
	return s.cancelWhere(ctx, strategy, ownerID, reminderrepo.Criteria{RecurringOnly: true})
}

func (s *Service) applyStatusTransition(ctx context.Context, strategy retry.Strategy, rem model.Reminder, status model.Status) (model.Reminder, error) {
	if status != model.StatusCancelled {
		return model.Reminder{}, ErrInvalidStatus
	}

	switch rem.Status {
	case model.StatusSent:
		return model.Reminder{}, ErrAlreadySent
	case model.StatusCancelled:
		// Idempotent: already cancelled is success.
		return rem, nil
	}

	s.cancelOne(ctx, strategy, rem.ID)
	rem.Status = model.StatusCancelled
	return rem, nil
}

// cancelOne persists the cancelled status before disarming the timer, so a
// concurrently firing timer sees the authoritative status and skips
// delivery.
func (s *Service) cancelOne(ctx context.Context, strategy retry.Strategy, id uuid.UUID) bool {
	changed, err := s.repo.MarkCancelled(ctx, id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("reminder_id", id.String()).Msg("failed to cancel reminder")
		return false
	}

	if changed {
		s.cacheStatus(ctx, strategy, id, model.StatusCancelled)
	}

	s.sched.Cancel(id)
	return changed
}

func (s *Service) cancelWhere(ctx context.Context, strategy retry.Strategy, ownerID uuid.UUID, c reminderrepo.Criteria) ([]Cancelled, error) {
	reminders, err := s.repo.FindScheduled(ctx, ownerID, c)
	if err != nil {
		return nil, fmt.Errorf("find reminders: %w", err)
	}

	var cancelled []Cancelled
	for _, rem := range reminders {
		if !s.cancelOne(ctx, strategy, rem.ID) {
			continue
		}

		cancelled = append(cancelled, Cancelled{
			ID:     rem.ID,
			Title:  rem.Title,
			Repeat: rem.Repeat,
		})
	}

	return cancelled, nil
}

// resolveDue turns a due-time expression into a UTC instant. Absolute
// datetimes are validated strictly; anything else goes through the
// always-future resolution pipeline.
func (s *Service) resolveDue(text string) (time.Time, error) {
	if text == "" {
		return time.Time{}, ErrDueAtRequired
	}

	now := time.Now()
	if dueAt, ok := s.times.ParseAbsolute(text); ok {
		if !dueAt.After(now) {
			return time.Time{}, ErrDueAtPast
		}
		return dueAt, nil
	}

	return s.times.Resolve(text, "", now), nil
}

func (s *Service) persistAndArm(ctx context.Context, strategy retry.Strategy, rem model.Reminder) (model.Reminder, error) {
	id, err := s.repo.CreateReminder(ctx, rem)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("create reminder: %w", err)
	}
	rem.ID = id

	s.cacheStatus(ctx, strategy, id, rem.Status)
	s.sched.Arm(rem)

	return rem, nil
}

func (s *Service) cacheStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status model.Status) {
	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), string(status)); err != nil {
		zlog.Logger.Printf("failed to cache reminder %s: %v", id, err)
	}
}
