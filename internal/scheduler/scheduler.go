// Package scheduler owns the process-wide job table mapping reminder IDs to
// live timers. It arms, cancels and re-arms one-shot timers, dispatches
// delivery jobs at fire time and applies the recurrence policy afterwards.
//
// Exactly one live timer exists per reminder ID: arming replaces any
// existing timer, and a generation table makes callbacks from replaced or
// cancelled timers no-ops. Both tables are pruned when a timer fires or is
// cancelled, so the job table only ever holds live entries.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/dimasprtm/wa-reminder/internal/model"
	"github.com/dimasprtm/wa-reminder/internal/recurrence"
)

// opTimeout bounds the store/dispatch round trips of a single fire.
const opTimeout = 15 * time.Second

// Delivery is the job handed to the dispatcher at fire time.
type Delivery struct {
	ReminderID uuid.UUID `json:"reminder_id"`
	To         string    `json:"to"`
	Text       string    `json:"text"`
}

// Store is the persisted reminder state the scheduler consults and updates.
type Store interface {
	GetReminderByID(ctx context.Context, id uuid.UUID) (model.Reminder, error)
	ListScheduled(ctx context.Context) ([]model.Reminder, error)
	UpdateDueAt(ctx context.Context, id uuid.UUID, dueAt time.Time) error
	MarkSent(ctx context.Context, id uuid.UUID) error
}

// Users resolves delivery target identities.
type Users interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

// Dispatcher hands a delivery job to the outbound transport. It must be
// fire-and-forget from the scheduler's perspective.
type Dispatcher interface {
	Dispatch(ctx context.Context, d Delivery) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// Scheduler is the process-wide job table. Construct one per process and
// share it by reference.
type Scheduler struct {
	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
	gen    map[uuid.UUID]uint64
	seq    uint64

	store      Store
	users      Users
	dispatcher Dispatcher
	cache      cache
	strategy   retry.Strategy
}

// New creates a scheduler with an empty job table.
func New(store Store, users Users, dispatcher Dispatcher, cache cache, strategy retry.Strategy) *Scheduler {
	return &Scheduler{
		timers:     make(map[uuid.UUID]*time.Timer),
		gen:        make(map[uuid.UUID]uint64),
		store:      store,
		users:      users,
		dispatcher: dispatcher,
		cache:      cache,
		strategy:   strategy,
	}
}

// Arm schedules a timer for the reminder's due instant. It is a no-op for
// reminders that are not scheduled or whose due instant is not strictly in
// the future. Re-arming an already-armed ID replaces its timer; two live
// timers for one ID cannot exist.
func (s *Scheduler) Arm(rem model.Reminder) {
	if rem.Status != model.StatusScheduled || !rem.DueAt.After(time.Now()) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[rem.ID]; ok {
		t.Stop()
	}

	// Generations come from a process-wide sequence, never per ID: a pruned
	// and re-armed ID gets a value no stale callback can hold.
	s.seq++
	id, gen := rem.ID, s.seq
	s.gen[id] = gen

	s.timers[id] = time.AfterFunc(time.Until(rem.DueAt), func() {
		s.fire(id, gen)
	})
}

// Cancel disarms the reminder's timer, if any. Idempotent: cancelling an ID
// with no live timer is a no-op. The persisted status is the caller's
// responsibility and must be written before Cancel so that a concurrent
// fire sees the authoritative status.
func (s *Scheduler) Cancel(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[id]
	if !ok {
		return
	}

	// Dropping the gen entry invalidates a callback that already fired:
	// its captured sequence value no longer matches anything.
	t.Stop()
	delete(s.timers, id)
	delete(s.gen, id)
}

// Stop disarms every live timer. Called once on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = make(map[uuid.UUID]*time.Timer)
	s.gen = make(map[uuid.UUID]uint64)
}

// Restore re-arms every scheduled reminder from the store. Reminders whose
// due instant elapsed while the process was down are not stalled: a one-off
// is delivered immediately and marked sent, a recurring reminder is advanced
// through the recurrence policy until its due instant is in the future.
func (s *Scheduler) Restore(ctx context.Context) error {
	reminders, err := s.store.ListScheduled(ctx)
	if err != nil {
		return fmt.Errorf("load scheduled reminders: %w", err)
	}

	now := time.Now().UTC()
	restored, overdue := 0, 0

	for _, rem := range reminders {
		if rem.DueAt.After(now) {
			s.Arm(rem)
			restored++
			continue
		}

		overdue++
		if !rem.Recurring() {
			s.deliver(ctx, rem)
			s.finishOneOff(ctx, rem.ID)
			continue
		}

		next, err := s.advancePastDue(rem, now)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("reminder_id", rem.ID.String()).Msg("failed to advance overdue reminder")
			continue
		}

		if err := s.store.UpdateDueAt(ctx, rem.ID, next); err != nil {
			zlog.Logger.Error().Err(err).Str("reminder_id", rem.ID.String()).Msg("failed to persist advanced due_at")
			continue
		}

		rem.DueAt = next
		s.Arm(rem)
		restored++
	}

	zlog.Logger.Printf("scheduler restored: %d armed, %d overdue", restored, overdue)
	return nil
}

// fire is the timer callback. It re-reads the persisted status and aborts
// without delivering when the reminder is no longer scheduled: a cancel
// whose status write happened before always wins.
func (s *Scheduler) fire(id uuid.UUID, gen uint64) {
	s.mu.Lock()
	if s.gen[id] != gen {
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)
	delete(s.gen, id)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rem, err := s.store.GetReminderByID(ctx, id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("reminder_id", id.String()).Msg("failed to load reminder at fire time")
		return
	}

	if rem.Status != model.StatusScheduled {
		zlog.Logger.Printf("reminder %s is %s, skipping delivery", id, rem.Status)
		return
	}

	// A dispatch failure is logged and never blocks recurrence: the next
	// occurrence is still scheduled.
	s.deliver(ctx, rem)

	if !rem.Recurring() {
		s.finishOneOff(ctx, id)
		return
	}

	next, err := recurrence.Next(rem.DueAt, rem.Repeat, rem.RepeatInterval, rem.RepeatUnit)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("reminder_id", id.String()).Msg("invalid repeat spec at fire time")
		return
	}

	if err := s.store.UpdateDueAt(ctx, id, next); err != nil {
		zlog.Logger.Error().Err(err).Str("reminder_id", id.String()).Msg("failed to persist next occurrence")
		return
	}

	rem.DueAt = next
	s.Arm(rem)
}

func (s *Scheduler) deliver(ctx context.Context, rem model.Reminder) {
	targetID := rem.OwnerID
	if rem.RecipientID != nil {
		targetID = *rem.RecipientID
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("reminder_id", rem.ID.String()).Msg("failed to resolve delivery target")
		return
	}

	text := rem.FormattedMessage
	if text == "" {
		text = fmt.Sprintf("⏰ Reminder: %s", rem.Title)
	}

	err = s.dispatcher.Dispatch(ctx, Delivery{
		ReminderID: rem.ID,
		To:         target.Phone,
		Text:       text,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("reminder_id", rem.ID.String()).Msg("failed to dispatch delivery")
	}
}

func (s *Scheduler) finishOneOff(ctx context.Context, id uuid.UUID) {
	if err := s.store.MarkSent(ctx, id); err != nil {
		zlog.Logger.Error().Err(err).Str("reminder_id", id.String()).Msg("failed to mark reminder sent")
		return
	}

	if s.cache == nil {
		return
	}
	if err := s.cache.SetWithRetry(ctx, s.strategy, id.String(), string(model.StatusSent)); err != nil {
		zlog.Logger.Printf("failed to cache status for %s: %v", id, err)
	}
}

func (s *Scheduler) advancePastDue(rem model.Reminder, now time.Time) (time.Time, error) {
	next := rem.DueAt
	for !next.After(now) {
		var err error
		next, err = recurrence.Next(next, rem.Repeat, rem.RepeatInterval, rem.RepeatUnit)
		if err != nil {
			return time.Time{}, err
		}
	}
	return next, nil
}

// Armed reports whether a live timer exists for the given ID.
func (s *Scheduler) Armed(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[id]
	return ok
}

// Jobs returns the number of live timers in the job table.
func (s *Scheduler) Jobs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Generations returns the number of generation entries in the job table.
func (s *Scheduler) Generations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.gen)
}
