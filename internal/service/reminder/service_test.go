package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wbfredis "github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/dimasprtm/wa-reminder/internal/mocks/service/reminder"
	"github.com/dimasprtm/wa-reminder/internal/model"
	"github.com/dimasprtm/wa-reminder/internal/recurrence"
	reminderrepo "github.com/dimasprtm/wa-reminder/internal/repository/reminder"
	"github.com/dimasprtm/wa-reminder/internal/timeres"
)

type fixture struct {
	repo    *mocks.MockreminderRepo
	users   *mocks.MockuserRepo
	friends *mocks.MockfriendRepo
	sched   *mocks.MockjobScheduler
	recips  *mocks.MockrecipientResolver
	nlu     *mocks.MocknluClient
	cache   *mocks.Mockcache
	svc     *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:    mocks.NewMockreminderRepo(ctrl),
		users:   mocks.NewMockuserRepo(ctrl),
		friends: mocks.NewMockfriendRepo(ctrl),
		sched:   mocks.NewMockjobScheduler(ctrl),
		recips:  mocks.NewMockrecipientResolver(ctrl),
		nlu:     mocks.NewMocknluClient(ctrl),
		cache:   mocks.NewMockcache(ctrl),
	}

	// Status caching is best effort everywhere, so tests do not assert on it.
	f.cache.EXPECT().
		SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	f.svc = NewService(f.repo, f.users, f.friends, f.sched, f.recips, f.nlu, f.cache, timeres.New(time.UTC), time.UTC)
	return f
}

var testStrategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}

// The production wiring hands the wbf redis client straight to NewService.
var _ cache = (*wbfredis.Client)(nil)

func futureAbsolute() string {
	return time.Now().UTC().Add(2 * time.Hour).Truncate(time.Minute).Format("2006-01-02 15:04")
}

func TestCreateReminder_OneOff(t *testing.T) {
	f := newFixture(t)

	ownerID := uuid.New()
	id := uuid.New()

	f.repo.EXPECT().
		CreateReminder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rem model.Reminder) (uuid.UUID, error) {
			assert.Equal(t, ownerID, rem.OwnerID)
			assert.Equal(t, "Call mom", rem.Title)
			assert.Equal(t, model.RepeatNone, rem.Repeat)
			assert.Equal(t, model.StatusScheduled, rem.Status)
			assert.True(t, rem.DueAt.After(time.Now()))
			return id, nil
		})
	f.sched.EXPECT().Arm(gomock.Any())

	rem, err := f.svc.CreateReminder(context.Background(), testStrategy, ownerID, CreateInput{
		Title:   "Call mom",
		DueText: futureAbsolute(),
	})
	require.NoError(t, err)
	assert.Equal(t, id, rem.ID)
}

func TestCreateReminder_FreeTextDue(t *testing.T) {
	f := newFixture(t)

	ownerID := uuid.New()

	var captured model.Reminder
	f.repo.EXPECT().
		CreateReminder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rem model.Reminder) (uuid.UUID, error) {
			captured = rem
			return uuid.New(), nil
		})
	f.sched.EXPECT().Arm(gomock.Any())

	_, err := f.svc.CreateReminder(context.Background(), testStrategy, ownerID, CreateInput{
		Title:   "Drink water",
		DueText: "in 5 minutes",
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), captured.DueAt, 5*time.Second)
}

func TestCreateReminder_Invalid(t *testing.T) {
	f := newFixture(t)

	ownerID := uuid.New()

	_, err := f.svc.CreateReminder(context.Background(), testStrategy, ownerID, CreateInput{DueText: futureAbsolute()})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = f.svc.CreateReminder(context.Background(), testStrategy, ownerID, CreateInput{Title: "x"})
	assert.ErrorIs(t, err, ErrDueAtRequired)

	_, err = f.svc.CreateReminder(context.Background(), testStrategy, ownerID, CreateInput{
		Title:   "x",
		DueText: "2020-01-01 10:00",
	})
	assert.ErrorIs(t, err, ErrDueAtPast)

	interval := 3
	_, err = f.svc.CreateReminder(context.Background(), testStrategy, ownerID, CreateInput{
		Title:          "x",
		DueText:        futureAbsolute(),
		Repeat:         model.RepeatCustom,
		RepeatInterval: &interval,
	})
	assert.ErrorIs(t, err, recurrence.ErrInvalidUnit)
}

func TestCreateReminder_RecipientChecks(t *testing.T) {
	f := newFixture(t)

	ownerID := uuid.New()
	friendID := uuid.New()

	self := ownerID
	_, err := f.svc.CreateReminder(context.Background(), testStrategy, ownerID, CreateInput{
		Title:       "x",
		DueText:     futureAbsolute(),
		RecipientID: &self,
	})
	assert.ErrorIs(t, err, ErrSelfRecipient)

	f.friends.EXPECT().IsAccepted(gomock.Any(), ownerID, friendID).Return(false, nil)
	_, err = f.svc.CreateReminder(context.Background(), testStrategy, ownerID, CreateInput{
		Title:       "x",
		DueText:     futureAbsolute(),
		RecipientID: &friendID,
	})
	assert.ErrorIs(t, err, ErrNotFriend)

	f.friends.EXPECT().IsAccepted(gomock.Any(), ownerID, friendID).Return(true, nil)
	f.repo.EXPECT().CreateReminder(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	f.sched.EXPECT().Arm(gomock.Any())
	rem, err := f.svc.CreateReminder(context.Background(), testStrategy, ownerID, CreateInput{
		Title:       "x",
		DueText:     futureAbsolute(),
		RecipientID: &friendID,
	})
	require.NoError(t, err)
	require.NotNil(t, rem.RecipientID)
	assert.Equal(t, friendID, *rem.RecipientID)
}

func TestUpdateReminder_DueChangeRearms(t *testing.T) {
	f := newFixture(t)

	ownerID := uuid.New()
	id := uuid.New()
	existing := model.Reminder{
		ID:      id,
		OwnerID: ownerID,
		Title:   "Standup",
		DueAt:   time.Now().Add(time.Hour).UTC(),
		Repeat:  model.RepeatNone,
		Status:  model.StatusScheduled,
	}

	f.repo.EXPECT().GetReminderByID(gomock.Any(), id).Return(existing, nil)
	f.repo.EXPECT().UpdateReminder(gomock.Any(), gomock.Any()).Return(nil)
	f.sched.EXPECT().Arm(gomock.Any()).Do(func(rem model.Reminder) {
		assert.Equal(t, id, rem.ID)
	})

	due := futureAbsolute()
	rem, err := f.svc.UpdateReminder(context.Background(), testStrategy, ownerID, id, UpdateInput{DueText: &due})
	require.NoError(t, err)
	assert.Equal(t, model.StatusScheduled, rem.Status)
}

func TestUpdateReminder_NotOwner(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()
	f.repo.EXPECT().GetReminderByID(gomock.Any(), id).Return(model.Reminder{
		ID:      id,
		OwnerID: uuid.New(),
		Status:  model.StatusScheduled,
	}, nil)

	_, err := f.svc.UpdateReminder(context.Background(), testStrategy, uuid.New(), id, UpdateInput{})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateReminder_CancelTransition(t *testing.T) {
	f := newFixture(t)

	ownerID := uuid.New()
	id := uuid.New()

	f.repo.EXPECT().GetReminderByID(gomock.Any(), id).Return(model.Reminder{
		ID:      id,
		OwnerID: ownerID,
		Status:  model.StatusScheduled,
	}, nil)

	gomock.InOrder(
		f.repo.EXPECT().MarkCancelled(gomock.Any(), id).Return(true, nil),
		f.sched.EXPECT().Cancel(id),
	)

	cancelled := model.StatusCancelled
	rem, err := f.svc.UpdateReminder(context.Background(), testStrategy, ownerID, id, UpdateInput{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, rem.Status)
}

func TestUpdateReminder_TerminalStates(t *testing.T) {
	f := newFixture(t)

	ownerID := uuid.New()
	id := uuid.New()
	cancelled := model.StatusCancelled
	sent := model.StatusSent

	f.repo.EXPECT().GetReminderByID(gomock.Any(), id).Return(model.Reminder{
		ID: id, OwnerID: ownerID, Status: model.StatusSent,
	}, nil)
	_, err := f.svc.UpdateReminder(context.Background(), testStrategy, ownerID, id, UpdateInput{Status: &cancelled})
	assert.ErrorIs(t, err, ErrAlreadySent)

	// Cancelling an already-cancelled reminder is a no-op success.
	f.repo.EXPECT().GetReminderByID(gomock.Any(), id).Return(model.Reminder{
		ID: id, OwnerID: ownerID, Status: model.StatusCancelled,
	}, nil)
	rem, err := f.svc.UpdateReminder(context.Background(), testStrategy, ownerID, id, UpdateInput{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, rem.Status)

	f.repo.EXPECT().GetReminderByID(gomock.Any(), id).Return(model.Reminder{
		ID: id, OwnerID: ownerID, Status: model.StatusScheduled,
	}, nil)
	_, err = f.svc.UpdateReminder(context.Background(), testStrategy, ownerID, id, UpdateInput{Status: &sent})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	title := "new title"
	f.repo.EXPECT().GetReminderByID(gomock.Any(), id).Return(model.Reminder{
		ID: id, OwnerID: ownerID, Status: model.StatusSent,
	}, nil)
	_, err = f.svc.UpdateReminder(context.Background(), testStrategy, ownerID, id, UpdateInput{Title: &title})
	assert.ErrorIs(t, err, ErrAlreadySent)
}

func TestCancelReminder_Idempotent(t *testing.T) {
	f := newFixture(t)

	ownerID := uuid.New()
	id := uuid.New()

	f.repo.EXPECT().GetReminderByID(gomock.Any(), id).Return(model.Reminder{
		ID: id, OwnerID: ownerID, Status: model.StatusCancelled,
	}, nil).Times(2)
	f.repo.EXPECT().MarkCancelled(gomock.Any(), id).Return(false, nil).Times(2)
	f.sched.EXPECT().Cancel(id).Times(2)

	require.NoError(t, f.svc.CancelReminder(context.Background(), testStrategy, ownerID, id))
	require.NoError(t, f.svc.CancelReminder(context.Background(), testStrategy, ownerID, id))
}

func TestCancelByKeyword(t *testing.T) {
	f := newFixture(t)

	ownerID := uuid.New()
	a := model.Reminder{ID: uuid.New(), Title: "Meeting prep", Repeat: model.RepeatNone}
	b := model.Reminder{ID: uuid.New(), Title: "Weekly meeting", Repeat: model.RepeatWeekly}

	f.repo.EXPECT().
		FindScheduled(gomock.Any(), ownerID, reminderrepo.Criteria{Keyword: "meeting"}).
		Return([]model.Reminder{a, b}, nil)
	f.repo.EXPECT().MarkCancelled(gomock.Any(), a.ID).Return(true, nil)
	f.repo.EXPECT().MarkCancelled(gomock.Any(), b.ID).Return(false, nil)
	f.sched.EXPECT().Cancel(a.ID)
	f.sched.EXPECT().Cancel(b.ID)

	cancelled, err := f.svc.CancelByKeyword(context.Background(), testStrategy, ownerID, "meeting")
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, a.ID, cancelled[0].ID)
	assert.Equal(t, "Meeting prep", cancelled[0].Title)
}

func TestCancelByIDs_Empty(t *testing.T) {
	f := newFixture(t)

	cancelled, err := f.svc.CancelByIDs(context.Background(), testStrategy, uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, cancelled)
}

func TestGetReminderStatusByID_CacheAside(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()

	f.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), id.String()).Return("sent", nil)
	status, err := f.svc.GetReminderStatusByID(context.Background(), testStrategy, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSent, status)

	f.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), id.String()).Return("", redis.Nil)
	f.repo.EXPECT().GetReminderStatusByID(gomock.Any(), id).Return(model.StatusScheduled, nil)
	status, err = f.svc.GetReminderStatusByID(context.Background(), testStrategy, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusScheduled, status)
}
