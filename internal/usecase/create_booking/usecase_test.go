package create_booking

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
	"github.com/valle1212i/Glow-SessionService/pkg/types"
)

type fakeSettingsClient struct {
	settings *settingsClient.BookingSettings
	err      error
}

func (f *fakeSettingsClient) GetSettings(_ context.Context, _ string) (*settingsClient.BookingSettings, error) {
	return f.settings, f.err
}

type fakeBookingsClient struct {
	booking *bookingClient.Booking
	err     error
	lastReq *bookingClient.CreateBookingRequest
}

func (f *fakeBookingsClient) CreateBooking(_ context.Context, _ string, req *bookingClient.CreateBookingRequest) (*bookingClient.Booking, error) {
	f.lastReq = req
	return f.booking, f.err
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

var (
	testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // понедельник
	testNow  = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
)

func mondaySettings(start, end string) *settingsClient.BookingSettings {
	return &settingsClient.BookingSettings{
		OpeningHours: map[string]settingsClient.DaySchedule{
			"monday": {IsOpen: true, StartTime: ptr.Ptr(start), EndTime: ptr.Ptr(end)},
		},
	}
}

func testRequest(startTime string) *Request {
	return &Request{
		Tenant:       "glow-studio",
		ProviderID:   "prov-1",
		Service:      domain.Service{ID: "svc-1", Name: "Klippning", DurationMinutes: 30},
		Date:         testDate,
		StartTime:    types.TimeString(startTime),
		CustomerName: "Anna",
	}
}

func newTestUseCase(settings *fakeSettingsClient, bookings *fakeBookingsClient, now time.Time) *UseCase {
	uc := NewUseCase(settings, bookings, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_Success(t *testing.T) {
	settings := &fakeSettingsClient{settings: mondaySettings("09:00", "18:00")}
	bookings := &fakeBookingsClient{booking: &bookingClient.Booking{
		ID:         "b-42",
		ServiceID:  "svc-1",
		ProviderID: "prov-1",
		Status:     "confirmed",
	}}
	uc := newTestUseCase(settings, bookings, testNow)

	resp, err := uc.Execute(context.Background(), testRequest("10:00"))
	require.NoError(t, err)

	assert.Equal(t, "b-42", resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 30, resp.DurationMinutes)

	require.NotNil(t, bookings.lastReq)
	assert.Equal(t, "2026-09-07", bookings.lastReq.Date)
	assert.Equal(t, "10:00", bookings.lastReq.StartTime)
}

func TestExecute_SlotEndingAtClosingRejected(t *testing.T) {
	// Слот 17:30-18:00 заканчивается ровно во время закрытия
	settings := &fakeSettingsClient{settings: mondaySettings("09:00", "18:00")}
	bookings := &fakeBookingsClient{}
	uc := newTestUseCase(settings, bookings, testNow)

	_, err := uc.Execute(context.Background(), testRequest("17:30"))
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	assert.Nil(t, bookings.lastReq)
}

func TestExecute_SlotBeforeOpeningRejected(t *testing.T) {
	settings := &fakeSettingsClient{settings: mondaySettings("09:00", "18:00")}
	uc := newTestUseCase(settings, &fakeBookingsClient{}, testNow)

	_, err := uc.Execute(context.Background(), testRequest("08:30"))
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ClosedDay(t *testing.T) {
	settings := &fakeSettingsClient{settings: &settingsClient.BookingSettings{
		OpeningHours: map[string]settingsClient.DaySchedule{
			"monday": {IsOpen: false},
		},
	}}
	uc := newTestUseCase(settings, &fakeBookingsClient{}, testNow)

	_, err := uc.Execute(context.Background(), testRequest("10:00"))
	assert.ErrorIs(t, err, ErrCompanyClosed)
}

func TestExecute_PastDate(t *testing.T) {
	settings := &fakeSettingsClient{settings: mondaySettings("09:00", "18:00")}
	uc := newTestUseCase(settings, &fakeBookingsClient{}, testDate.AddDate(0, 0, 7))

	_, err := uc.Execute(context.Background(), testRequest("10:00"))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_MinimumNoticeEnforced(t *testing.T) {
	settings := mondaySettings("09:00", "18:00")
	settings.MinBookingNoticeMinutes = 120
	settingsFake := &fakeSettingsClient{settings: settings}

	// Сегодня 09:00, бронирование на 10:00 нарушает уведомление в 120 минут
	now := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(settingsFake, &fakeBookingsClient{}, now)

	_, err := uc.Execute(context.Background(), testRequest("10:00"))
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_ConflictMapsToSlotConflictError(t *testing.T) {
	// 409 от портала - проигранная гонка, альтернативы пробрасываются
	settings := &fakeSettingsClient{settings: mondaySettings("09:00", "18:00")}
	bookings := &fakeBookingsClient{err: &bookingClient.ConflictError{
		Message:          "slot already taken",
		AlternativeSlots: []string{"11:00", "11:30"},
	}}
	uc := newTestUseCase(settings, bookings, testNow)

	_, err := uc.Execute(context.Background(), testRequest("10:00"))
	require.ErrorIs(t, err, ErrSlotConflict)

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "slot already taken", conflict.Message)
	assert.Equal(t, []string{"11:00", "11:30"}, conflict.AlternativeSlots)
}

func TestExecute_PortalValidationErrorPassedThrough(t *testing.T) {
	settings := &fakeSettingsClient{settings: mondaySettings("09:00", "18:00")}
	bookings := &fakeBookingsClient{err: &bookingClient.ValidationError{Message: "provider does not offer this service"}}
	uc := newTestUseCase(settings, bookings, testNow)

	_, err := uc.Execute(context.Background(), testRequest("10:00"))
	require.ErrorIs(t, err, ErrValidation)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "provider does not offer this service", validation.Message)
}

func TestExecute_SettingsNotFound(t *testing.T) {
	settings := &fakeSettingsClient{err: settingsClient.ErrSettingsNotFound}
	uc := newTestUseCase(settings, &fakeBookingsClient{}, testNow)

	_, err := uc.Execute(context.Background(), testRequest("10:00"))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestExecute_UnknownClientErrorIsInternal(t *testing.T) {
	settings := &fakeSettingsClient{settings: mondaySettings("09:00", "18:00")}
	bookings := &fakeBookingsClient{err: errors.New("connection reset")}
	uc := newTestUseCase(settings, bookings, testNow)

	_, err := uc.Execute(context.Background(), testRequest("10:00"))
	assert.ErrorIs(t, err, ErrInternal)
}
