package catalogcache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valle1212i/Glow-SessionService/internal/integrations/bookingservice"
)

type fakeOptionsClient struct {
	services  []bookingservice.Service
	providers []bookingservice.Provider
	err       error
	calls     atomic.Int32
}

func (f *fakeOptionsClient) ListServices(_ context.Context, _ string) ([]bookingservice.Service, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.services, nil
}

func (f *fakeOptionsClient) ListProviders(_ context.Context, _ string) ([]bookingservice.Provider, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.providers, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testClient() *fakeOptionsClient {
	return &fakeOptionsClient{
		services: []bookingservice.Service{
			{ID: "svc-1", Name: "Klippning", DurationMinutes: 30},
			{ID: "svc-2", Name: "Färgning", DurationMinutes: 90},
		},
		providers: []bookingservice.Provider{
			{ID: "prov-1", Name: "Maria"},
		},
	}
}

func newTestService(client BookingOptionsClient) *Service {
	return New(client, "glow-studio", time.Minute, nopLogger{})
}

func TestSnapshot_NotLoaded(t *testing.T) {
	svc := newTestService(testClient())

	_, err := svc.Snapshot()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestRefresh_PublishesSnapshot(t *testing.T) {
	svc := newTestService(testClient())

	require.NoError(t, svc.Refresh(context.Background()))

	snap, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Services, 2)
	assert.Len(t, snap.Providers, 1)
	assert.False(t, snap.UpdatedAt.IsZero())
}

func TestRefresh_UnchangedIDSetsKeepSnapshot(t *testing.T) {
	// Повторный опрос с тем же набором идентификаторов
	// не публикует новый снимок
	svc := newTestService(testClient())

	require.NoError(t, svc.Refresh(context.Background()))
	first, err := svc.Snapshot()
	require.NoError(t, err)

	require.NoError(t, svc.Refresh(context.Background()))
	second, err := svc.Snapshot()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestRefresh_ChangedIDSetPublishes(t *testing.T) {
	client := testClient()
	svc := newTestService(client)

	require.NoError(t, svc.Refresh(context.Background()))
	first, _ := svc.Snapshot()

	client.services = append(client.services, bookingservice.Service{ID: "svc-3", Name: "Styling", DurationMinutes: 45})
	require.NoError(t, svc.Refresh(context.Background()))

	second, err := svc.Snapshot()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Len(t, second.Services, 3)
}

func TestRefresh_FailureKeepsPreviousSnapshot(t *testing.T) {
	client := testClient()
	svc := newTestService(client)

	require.NoError(t, svc.Refresh(context.Background()))

	client.err = errors.New("portal down")
	require.Error(t, svc.Refresh(context.Background()))

	snap, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Services, 2)
}

func TestServiceByID(t *testing.T) {
	svc := newTestService(testClient())
	require.NoError(t, svc.Refresh(context.Background()))

	found, err := svc.ServiceByID("svc-2")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 90, found.DurationMinutes)

	missing, err := svc.ServiceByID("svc-unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestKick_CoalescesPendingRequests(t *testing.T) {
	svc := newTestService(testClient())

	// Два Kick подряд без работающего цикла не блокируют вызывающего
	svc.Kick()
	svc.Kick()

	select {
	case <-svc.kick:
	default:
		t.Fatal("expected a pending kick")
	}

	select {
	case <-svc.kick:
		t.Fatal("expected kicks to be coalesced into one")
	default:
	}
}

func TestStartStop(t *testing.T) {
	client := testClient()
	svc := New(client, "glow-studio", 10*time.Millisecond, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.Start(ctx)

	// Ждем хотя бы одного фонового обновления после начальной загрузки
	require.Eventually(t, func() bool {
		return client.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	svc.Stop()

	_, err := svc.Snapshot()
	assert.NoError(t, err)
}
