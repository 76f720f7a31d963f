package resolve_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	bookingClient "github.com/valle1212i/Glow-SessionService/internal/integrations/bookingservice"
	settingsClient "github.com/valle1212i/Glow-SessionService/internal/integrations/settingsservice"
	"github.com/valle1212i/Glow-SessionService/pkg/ptr"
)

// --- Фейки для контрактов ---

type fakeAvailabilityClient struct {
	availability *bookingClient.ProviderAvailability
	err          error
	calls        int
}

func (f *fakeAvailabilityClient) GetProviderAvailability(_ context.Context, _, _ string, _ time.Time, _ int) (*bookingClient.ProviderAvailability, error) {
	f.calls++
	return f.availability, f.err
}

type fakeSettingsClient struct {
	settings *settingsClient.BookingSettings
	err      error
	calls    int
}

func (f *fakeSettingsClient) GetSettings(_ context.Context, _ string) (*settingsClient.BookingSettings, error) {
	f.calls++
	return f.settings, f.err
}

type fakeBookingsClient struct {
	bookings []bookingClient.Booking
	err      error
}

func (f *fakeBookingsClient) ListBookings(_ context.Context, _ string, _, _ time.Time, _ string) ([]bookingClient.Booking, error) {
	return f.bookings, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Вспомогательные конструкторы ---

func mondaySettings(start, end string, stepMinutes int) *settingsClient.BookingSettings {
	return &settingsClient.BookingSettings{
		OpeningHours: map[string]settingsClient.DaySchedule{
			"monday": {IsOpen: true, StartTime: ptr.Ptr(start), EndTime: ptr.Ptr(end)},
		},
		CalendarBehavior: &settingsClient.CalendarBehavior{
			StartTime:           "08:00",
			EndTime:             "18:00",
			SlotIntervalMinutes: stepMinutes,
		},
	}
}

func newTestUseCase(avail *fakeAvailabilityClient, settings *fakeSettingsClient, bookings *fakeBookingsClient, now time.Time) *UseCase {
	uc := NewUseCase(avail, settings, bookings, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

// Понедельник в будущем относительно now в тестах
var (
	testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
)

func testRequest(durationMinutes int) *Request {
	return &Request{
		Tenant:     "glow-studio",
		ProviderID: "prov-1",
		Service:    domain.Service{ID: "svc-1", Name: "Klippning", DurationMinutes: durationMinutes},
		Date:       testDate,
	}
}

func fallbackClients(settings *settingsClient.BookingSettings) (*fakeAvailabilityClient, *fakeSettingsClient, *fakeBookingsClient) {
	return &fakeAvailabilityClient{err: bookingClient.ErrAvailabilityNotSupported},
		&fakeSettingsClient{settings: settings},
		&fakeBookingsClient{}
}

// --- Тесты ---

func TestExecute_ClosingBoundaryExcludesExactFit(t *testing.T) {
	// Окно 09:00-10:00, услуга 30 минут: слот 09:30-10:00 заканчивается
	// ровно во время закрытия и не предлагается
	avail, settings, bookings := fallbackClients(mondaySettings("09:00", "10:00", 30))
	uc := newTestUseCase(avail, settings, bookings, testNow)

	resp, err := uc.Execute(context.Background(), testRequest(30))
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "09:30", resp.Slots[0].EndTime.String())
	assert.False(t, resp.FullyBooked)
	assert.True(t, resp.UsingFallbackHours)
}

func TestExecute_AdjacentBookingKeepsSlot(t *testing.T) {
	// Бронирование 10:00-10:30 не задевает слот 09:30-10:00:
	// интервалы полуоткрытые, касание границ - не пересечение
	avail, settings, _ := fallbackClients(mondaySettings("09:00", "12:00", 30))
	bookings := &fakeBookingsClient{bookings: []bookingClient.Booking{
		{
			ID:         "b-1",
			ProviderID: "prov-1",
			Start:      time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
			End:        time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC),
			Status:     "confirmed",
		},
	}}
	uc := newTestUseCase(avail, settings, bookings, testNow)

	resp, err := uc.Execute(context.Background(), testRequest(30))
	require.NoError(t, err)

	starts := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		starts[i] = s.StartTime.String()
	}
	assert.Contains(t, starts, "09:30")
	assert.NotContains(t, starts, "10:00")
}

func TestExecute_CanceledBookingFreesSlot(t *testing.T) {
	avail, settings, _ := fallbackClients(mondaySettings("09:00", "11:00", 30))
	bookings := &fakeBookingsClient{bookings: []bookingClient.Booking{
		{
			ID:         "b-1",
			ProviderID: "prov-1",
			Start:      time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC),
			End:        time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC),
			Status:     "canceled",
		},
	}}
	uc := newTestUseCase(avail, settings, bookings, testNow)

	resp, err := uc.Execute(context.Background(), testRequest(30))
	require.NoError(t, err)

	starts := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		starts[i] = s.StartTime.String()
	}
	assert.Contains(t, starts, "09:00")
}

func TestExecute_ClosedDayReturnsErrClosed(t *testing.T) {
	settings := &settingsClient.BookingSettings{
		OpeningHours: map[string]settingsClient.DaySchedule{
			"monday": {IsOpen: false},
		},
		CalendarBehavior: &settingsClient.CalendarBehavior{StartTime: "08:00", EndTime: "18:00"},
	}
	avail, settingsFake, bookings := fallbackClients(settings)
	uc := newTestUseCase(avail, settingsFake, bookings, testNow)

	_, err := uc.Execute(context.Background(), testRequest(30))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestExecute_ProviderEndpointClosedShortCircuits(t *testing.T) {
	// Явное "закрыто" от provider endpoint не уходит в локальную генерацию
	avail := &fakeAvailabilityClient{availability: &bookingClient.ProviderAvailability{IsOpen: false}}
	settings := &fakeSettingsClient{settings: mondaySettings("09:00", "18:00", 30)}
	uc := newTestUseCase(avail, settings, &fakeBookingsClient{}, testNow)

	_, err := uc.Execute(context.Background(), testRequest(30))
	assert.ErrorIs(t, err, ErrClosed)
	assert.Zero(t, settings.calls)
}

func TestExecute_ProviderEndpointSlotsUsedDirectly(t *testing.T) {
	avail := &fakeAvailabilityClient{availability: &bookingClient.ProviderAvailability{
		IsOpen:            true,
		UsingGeneralHours: true,
		Slots:             []string{"10:00", "10:30"},
	}}
	settings := &fakeSettingsClient{settings: mondaySettings("09:00", "18:00", 30)}
	uc := newTestUseCase(avail, settings, &fakeBookingsClient{}, testNow)

	resp, err := uc.Execute(context.Background(), testRequest(30))
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "10:30", resp.Slots[0].EndTime.String())
	assert.True(t, resp.UsingFallbackHours)
	assert.Zero(t, settings.calls)
}

func TestExecute_ProviderEndpointFailureFallsBack(t *testing.T) {
	avail := &fakeAvailabilityClient{err: errors.New("portal down")}
	settings := &fakeSettingsClient{settings: mondaySettings("09:00", "11:00", 30)}
	uc := newTestUseCase(avail, settings, &fakeBookingsClient{}, testNow)

	resp, err := uc.Execute(context.Background(), testRequest(30))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Slots)
	assert.Equal(t, 1, settings.calls)
}

func TestExecute_BookingsFetchFailureFailsOpen(t *testing.T) {
	// Сбой списка бронирований трактуется как пустой день:
	// слоты отдаются все, а не ни одного
	avail, settings, _ := fallbackClients(mondaySettings("09:00", "11:00", 30))
	bookings := &fakeBookingsClient{err: errors.New("bookings service down")}
	uc := newTestUseCase(avail, settings, bookings, testNow)

	resp, err := uc.Execute(context.Background(), testRequest(30))
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 3) // 09:00, 09:30, 10:00
}

func TestExecute_FullyBookedDistinctFromClosed(t *testing.T) {
	avail, settings, _ := fallbackClients(mondaySettings("09:00", "10:00", 30))
	bookings := &fakeBookingsClient{bookings: []bookingClient.Booking{
		{
			ID:         "b-1",
			ProviderID: "prov-1",
			Start:      time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC),
			End:        time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC),
			Status:     "confirmed",
		},
	}}
	uc := newTestUseCase(avail, settings, bookings, testNow)

	resp, err := uc.Execute(context.Background(), testRequest(30))
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.True(t, resp.FullyBooked)
}

func TestExecute_SettingsNotFoundReturnsNotConfigured(t *testing.T) {
	avail := &fakeAvailabilityClient{err: bookingClient.ErrAvailabilityNotSupported}
	settings := &fakeSettingsClient{err: settingsClient.ErrSettingsNotFound}
	uc := newTestUseCase(avail, settings, &fakeBookingsClient{}, testNow)

	_, err := uc.Execute(context.Background(), testRequest(30))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestExecute_NoDayRecordFallsBackToCalendarWindow(t *testing.T) {
	settings := &settingsClient.BookingSettings{
		OpeningHours: map[string]settingsClient.DaySchedule{},
		CalendarBehavior: &settingsClient.CalendarBehavior{
			StartTime:           "10:00",
			EndTime:             "12:00",
			SlotIntervalMinutes: 60,
		},
	}
	avail, settingsFake, bookings := fallbackClients(settings)
	uc := newTestUseCase(avail, settingsFake, bookings, testNow)

	resp, err := uc.Execute(context.Background(), testRequest(60))
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime.String())
}

func TestExecute_NoHoursAtAllReturnsNotConfigured(t *testing.T) {
	settings := &settingsClient.BookingSettings{
		OpeningHours: map[string]settingsClient.DaySchedule{},
	}
	avail, settingsFake, bookings := fallbackClients(settings)
	uc := newTestUseCase(avail, settingsFake, bookings, testNow)

	_, err := uc.Execute(context.Background(), testRequest(30))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestExecute_PastDateYieldsNoSlots(t *testing.T) {
	avail, settings, bookings := fallbackClients(mondaySettings("09:00", "18:00", 30))
	// now на неделю позже запрашиваемой даты
	uc := newTestUseCase(avail, settings, bookings, testDate.AddDate(0, 0, 7))

	resp, err := uc.Execute(context.Background(), testRequest(30))
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.True(t, resp.FullyBooked)
}

func TestExecute_SameDayMinimumNoticeFilters(t *testing.T) {
	settings := mondaySettings("09:00", "18:00", 60)
	settings.MinBookingNoticeMinutes = 120
	avail, settingsFake, bookings := fallbackClients(settings)

	// Сегодня 10:30: с уведомлением 120 минут доступно только с 12:30,
	// первый подходящий старт - 13:00
	now := time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC)
	uc := newTestUseCase(avail, settingsFake, bookings, now)

	resp, err := uc.Execute(context.Background(), testRequest(60))
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "13:00", resp.Slots[0].StartTime.String())
}

func TestExecute_InvalidInput(t *testing.T) {
	avail, settings, bookings := fallbackClients(mondaySettings("09:00", "18:00", 30))
	uc := newTestUseCase(avail, settings, bookings, testNow)

	req := testRequest(30)
	req.Service.DurationMinutes = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
