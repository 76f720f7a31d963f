package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	"github.com/valle1212i/Glow-SessionService/internal/infra/sessionstore"
	"github.com/valle1212i/Glow-SessionService/internal/integrations/carttracker"
	"github.com/valle1212i/Glow-SessionService/pkg/retry"
)

type fakeTracker struct {
	registerErr   error
	completeErr   error
	registrations []*carttracker.Registration
	completed     []string
}

func (f *fakeTracker) Register(_ context.Context, _ string, reg *carttracker.Registration) error {
	f.registrations = append(f.registrations, reg)
	return f.registerErr
}

func (f *fakeTracker) Complete(_ context.Context, _, sessionID string) error {
	f.completed = append(f.completed, sessionID)
	return f.completeErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSession() *domain.CheckoutSession {
	return &domain.CheckoutSession{
		SessionID:     "cs_1",
		CheckoutURL:   "https://pay.example.com/cs_1",
		AmountTotal:   24900,
		Currency:      "sek",
		CustomerEmail: "anna@example.com",
		CreatedAt:     time.Now(),
		Status:        domain.SessionPending,
	}
}

func newTestService(tracker *fakeTracker) (*Service, *sessionstore.MemoryStore) {
	store := sessionstore.NewMemoryStore()
	svc := New(store, tracker, nopLogger{})
	svc.retryPolicy = retry.Policy{MaxAttempts: 2, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}
	return svc, store
}

func TestRegister_SavesAndTracks(t *testing.T) {
	tracker := &fakeTracker{}
	svc, store := newTestService(tracker)

	require.NoError(t, svc.Register(context.Background(), "glow-studio", testSession()))

	saved, err := store.Get(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionPending, saved.Status)

	require.Len(t, tracker.registrations, 1)
	reg := tracker.registrations[0]
	assert.Equal(t, "cs_1", reg.SessionID)
	assert.Equal(t, "glow-studio", reg.Tenant)
	assert.Equal(t, int64(24900), reg.AmountTotal)
}

func TestRegister_TrackerFailureRetriedAndReported(t *testing.T) {
	tracker := &fakeTracker{registerErr: errors.New("tracker down")}
	svc, store := newTestService(tracker)

	err := svc.Register(context.Background(), "glow-studio", testSession())
	require.Error(t, err)

	// Повторы согласно политике
	assert.Len(t, tracker.registrations, 2)

	// Сессия при этом сохранена
	_, getErr := store.Get(context.Background(), "cs_1")
	assert.NoError(t, getErr)
}

func TestComplete_MarksAndNotifies(t *testing.T) {
	tracker := &fakeTracker{}
	svc, store := newTestService(tracker)
	require.NoError(t, store.Save(context.Background(), testSession()))

	session, err := svc.Complete(context.Background(), "glow-studio", "cs_1")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, session.Status)
	assert.Equal(t, []string{"cs_1"}, tracker.completed)
}

func TestComplete_TrackerFailureDoesNotFail(t *testing.T) {
	tracker := &fakeTracker{completeErr: errors.New("tracker down")}
	svc, store := newTestService(tracker)
	require.NoError(t, store.Save(context.Background(), testSession()))

	session, err := svc.Complete(context.Background(), "glow-studio", "cs_1")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, session.Status)
}

func TestComplete_UnknownSession(t *testing.T) {
	svc, _ := newTestService(&fakeTracker{})

	_, err := svc.Complete(context.Background(), "glow-studio", "cs_missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGet(t *testing.T) {
	svc, store := newTestService(&fakeTracker{})
	require.NoError(t, store.Save(context.Background(), testSession()))

	session, err := svc.Get(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.Equal(t, "cs_1", session.SessionID)

	_, err = svc.Get(context.Background(), "cs_missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
