package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/dimasprtm/wa-reminder/internal/mocks/scheduler"
	"github.com/dimasprtm/wa-reminder/internal/model"
	"github.com/dimasprtm/wa-reminder/internal/scheduler"
)

type fixture struct {
	sched      *scheduler.Scheduler
	store      *mocks.MockStore
	users      *mocks.MockUsers
	dispatcher *mocks.MockDispatcher
	cache      *mocks.Mockcache
}

func setup(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		store:      mocks.NewMockStore(ctrl),
		users:      mocks.NewMockUsers(ctrl),
		dispatcher: mocks.NewMockDispatcher(ctrl),
		cache:      mocks.NewMockcache(ctrl),
	}
	f.sched = scheduler.New(f.store, f.users, f.dispatcher, f.cache, retry.Strategy{})
	t.Cleanup(f.sched.Stop)
	return f
}

func scheduled(due time.Time) model.Reminder {
	return model.Reminder{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Title:   "drink water",
		DueAt:   due,
		Repeat:  model.RepeatNone,
		Status:  model.StatusScheduled,
	}
}

func TestArm_IgnoresPastDue(t *testing.T) {
	f := setup(t)

	rem := scheduled(time.Now().Add(-time.Minute))
	f.sched.Arm(rem)

	assert.False(t, f.sched.Armed(rem.ID))
}

func TestArm_IgnoresNonScheduled(t *testing.T) {
	f := setup(t)

	rem := scheduled(time.Now().Add(time.Hour))
	rem.Status = model.StatusCancelled
	f.sched.Arm(rem)

	assert.False(t, f.sched.Armed(rem.ID))
}

func TestArm_IsIdempotentPerID(t *testing.T) {
	f := setup(t)

	rem := scheduled(time.Now().Add(time.Hour))
	f.sched.Arm(rem)
	f.sched.Arm(rem)

	assert.True(t, f.sched.Armed(rem.ID))
	assert.Equal(t, 1, f.sched.Jobs())
}

func TestCancel_WithoutTimerIsNoOp(t *testing.T) {
	f := setup(t)

	f.sched.Cancel(uuid.New())
	assert.Equal(t, 0, f.sched.Jobs())
}

func TestCancel_DisarmsTimer(t *testing.T) {
	f := setup(t)

	rem := scheduled(time.Now().Add(time.Hour))
	f.sched.Arm(rem)
	f.sched.Cancel(rem.ID)

	assert.False(t, f.sched.Armed(rem.ID))
}

func TestCancel_PrunesJobTable(t *testing.T) {
	f := setup(t)

	rem := scheduled(time.Now().Add(time.Hour))
	f.sched.Arm(rem)
	require.Equal(t, 1, f.sched.Generations())

	f.sched.Cancel(rem.ID)
	f.sched.Cancel(rem.ID)
	f.sched.Cancel(uuid.New())

	assert.Equal(t, 0, f.sched.Jobs())
	assert.Equal(t, 0, f.sched.Generations())
}

func TestFire_OneOffDeliversAndMarksSent(t *testing.T) {
	f := setup(t)

	owner := model.User{ID: uuid.New(), Name: "Owner", Phone: "+628111"}
	rem := scheduled(time.Now().Add(30 * time.Millisecond))
	rem.OwnerID = owner.ID

	done := make(chan struct{})

	f.store.EXPECT().GetReminderByID(gomock.Any(), rem.ID).Return(rem, nil)
	f.users.EXPECT().GetByID(gomock.Any(), owner.ID).Return(owner, nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), scheduler.Delivery{
		ReminderID: rem.ID,
		To:         owner.Phone,
		Text:       "⏰ Reminder: drink water",
	}).Return(nil)
	f.store.EXPECT().MarkSent(gomock.Any(), rem.ID).Return(nil)
	f.cache.EXPECT().SetWithRetry(gomock.Any(), retry.Strategy{}, rem.ID.String(), "sent").DoAndReturn(
		func(_ context.Context, _ retry.Strategy, _ string, _ interface{}) error {
			close(done)
			return nil
		},
	)

	f.sched.Arm(rem)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}

	assert.False(t, f.sched.Armed(rem.ID))
	assert.Equal(t, 0, f.sched.Generations())
}

func TestFire_UsesFormattedMessageAndRecipient(t *testing.T) {
	f := setup(t)

	recipient := model.User{ID: uuid.New(), Name: "Budi", Phone: "+628222"}
	rem := scheduled(time.Now().Add(30 * time.Millisecond))
	rem.RecipientID = &recipient.ID
	rem.FormattedMessage = "Hay Budi 👋, waktunya drink water!"

	done := make(chan struct{})

	f.store.EXPECT().GetReminderByID(gomock.Any(), rem.ID).Return(rem, nil)
	f.users.EXPECT().GetByID(gomock.Any(), recipient.ID).Return(recipient, nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), scheduler.Delivery{
		ReminderID: rem.ID,
		To:         recipient.Phone,
		Text:       rem.FormattedMessage,
	}).Return(nil)
	f.store.EXPECT().MarkSent(gomock.Any(), rem.ID).Return(nil)
	f.cache.EXPECT().SetWithRetry(gomock.Any(), retry.Strategy{}, rem.ID.String(), "sent").DoAndReturn(
		func(_ context.Context, _ retry.Strategy, _ string, _ interface{}) error {
			close(done)
			return nil
		},
	)

	f.sched.Arm(rem)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestFire_CancelledStatusSkipsDelivery(t *testing.T) {
	f := setup(t)

	rem := scheduled(time.Now().Add(30 * time.Millisecond))

	checked := make(chan struct{})

	// The status write happened before the fire: no dispatch, no state
	// transition.
	cancelled := rem
	cancelled.Status = model.StatusCancelled
	f.store.EXPECT().GetReminderByID(gomock.Any(), rem.ID).DoAndReturn(
		func(context.Context, uuid.UUID) (model.Reminder, error) {
			defer close(checked)
			return cancelled, nil
		},
	)

	f.sched.Arm(rem)

	select {
	case <-checked:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}

	// Give a stray dispatch a chance to surface before the controller check.
	time.Sleep(50 * time.Millisecond)
}

func TestFire_RecurringAdvancesAndReArms(t *testing.T) {
	f := setup(t)

	owner := model.User{ID: uuid.New(), Phone: "+628111"}
	rem := scheduled(time.Now().Add(30 * time.Millisecond))
	rem.OwnerID = owner.ID
	rem.Repeat = model.RepeatDaily

	rearmed := make(chan struct{})

	f.store.EXPECT().GetReminderByID(gomock.Any(), rem.ID).Return(rem, nil)
	f.users.EXPECT().GetByID(gomock.Any(), owner.ID).Return(owner, nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)
	f.store.EXPECT().UpdateDueAt(gomock.Any(), rem.ID, rem.DueAt.Add(24*time.Hour)).DoAndReturn(
		func(context.Context, uuid.UUID, time.Time) error {
			defer close(rearmed)
			return nil
		},
	)

	f.sched.Arm(rem)

	select {
	case <-rearmed:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}

	require.Eventually(t, func() bool { return f.sched.Armed(rem.ID) }, time.Second, 10*time.Millisecond)
}

func TestFire_DispatchFailureStillReArms(t *testing.T) {
	f := setup(t)

	owner := model.User{ID: uuid.New(), Phone: "+628111"}
	rem := scheduled(time.Now().Add(30 * time.Millisecond))
	rem.OwnerID = owner.ID
	rem.Repeat = model.RepeatDaily

	rearmed := make(chan struct{})

	f.store.EXPECT().GetReminderByID(gomock.Any(), rem.ID).Return(rem, nil)
	f.users.EXPECT().GetByID(gomock.Any(), owner.ID).Return(owner, nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(assert.AnError)
	f.store.EXPECT().UpdateDueAt(gomock.Any(), rem.ID, rem.DueAt.Add(24*time.Hour)).DoAndReturn(
		func(context.Context, uuid.UUID, time.Time) error {
			defer close(rearmed)
			return nil
		},
	)

	f.sched.Arm(rem)

	select {
	case <-rearmed:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestRestore_ArmsFutureReminders(t *testing.T) {
	f := setup(t)

	first := scheduled(time.Now().Add(time.Hour))
	second := scheduled(time.Now().Add(2 * time.Hour))

	f.store.EXPECT().ListScheduled(gomock.Any()).Return([]model.Reminder{first, second}, nil)

	require.NoError(t, f.sched.Restore(context.Background()))
	assert.True(t, f.sched.Armed(first.ID))
	assert.True(t, f.sched.Armed(second.ID))
}

func TestRestore_OverdueOneOffDeliversImmediately(t *testing.T) {
	f := setup(t)

	owner := model.User{ID: uuid.New(), Phone: "+628111"}
	rem := scheduled(time.Now().Add(-time.Hour))
	rem.OwnerID = owner.ID

	f.store.EXPECT().ListScheduled(gomock.Any()).Return([]model.Reminder{rem}, nil)
	f.users.EXPECT().GetByID(gomock.Any(), owner.ID).Return(owner, nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)
	f.store.EXPECT().MarkSent(gomock.Any(), rem.ID).Return(nil)
	f.cache.EXPECT().SetWithRetry(gomock.Any(), retry.Strategy{}, rem.ID.String(), "sent").Return(nil)

	require.NoError(t, f.sched.Restore(context.Background()))
	assert.False(t, f.sched.Armed(rem.ID))
}

func TestRestore_OverdueRecurringAdvancesToFuture(t *testing.T) {
	f := setup(t)

	rem := scheduled(time.Now().Add(-50 * time.Hour))
	rem.Repeat = model.RepeatDaily

	var persisted atomic.Value

	f.store.EXPECT().ListScheduled(gomock.Any()).Return([]model.Reminder{rem}, nil)
	f.store.EXPECT().UpdateDueAt(gomock.Any(), rem.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, dueAt time.Time) error {
			persisted.Store(dueAt)
			return nil
		},
	)

	require.NoError(t, f.sched.Restore(context.Background()))

	assert.True(t, f.sched.Armed(rem.ID))
	dueAt, ok := persisted.Load().(time.Time)
	require.True(t, ok)
	assert.True(t, dueAt.After(time.Now()))
	// Advanced in whole 24h steps from the original due instant.
	assert.Equal(t, time.Duration(0), dueAt.Sub(rem.DueAt)%(24*time.Hour))
}
