package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	bookingClient "github.com/valle1212i/Glow-SessionService/internal/integrations/bookingservice"
	settingsClient "github.com/valle1212i/Glow-SessionService/internal/integrations/settingsservice"
)

// UseCase use case создания бронирования
//
// Локальная валидация (рабочие часы, граница закрытия, минимальное
// уведомление) отсеивает заведомо некорректные запросы; решение о
// конфликте принимает портал - его 409 означает проигранную гонку
// и мапится в SlotConflictError с альтернативами
type UseCase struct {
	settingsClient SettingsClient
	bookingsClient BookingsClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settingsClient SettingsClient,
	bookingsClient BookingsClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsClient: settingsClient,
		bookingsClient: bookingsClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tenant=%s, provider=%s, service=%s, date=%s, time=%s",
		req.Tenant, req.ProviderID, req.Service.ID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем дату
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем настройки бронирования
	settings, err := uc.settingsClient.GetSettings(ctx, req.Tenant)
	if err != nil {
		if errors.Is(err, settingsClient.ErrSettingsNotFound) {
			uc.logger.Warn("CreateBooking: booking settings not configured for tenant=%s", req.Tenant)
			return nil, ErrNotConfigured
		}
		uc.logger.Error("CreateBooking: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	schedule := settings.ToDomain()

	// 5. Определяем рабочее окно на дату
	open, close, err := resolveWorkingWindow(schedule, req.Date)
	if err != nil {
		uc.logger.Warn("CreateBooking: working window not resolvable for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	// 6. Проверяем, что слот лежит в рабочем окне
	if err := validateSlotWithinHours(req.StartTime, req.Service.DurationMinutes, open, close); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 7. Проверяем минимальное уведомление
	if err := validateBookingTime(req.Date, req.StartTime, now, schedule.MinBookingNoticeMinutes); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// 8. Создаем бронирование в портале
	booking, err := uc.bookingsClient.CreateBooking(ctx, req.Tenant, &bookingClient.CreateBookingRequest{
		ServiceID:     req.Service.ID,
		ProviderID:    req.ProviderID,
		Date:          req.Date.Format(domain.DateFormat),
		StartTime:     req.StartTime.String(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		return nil, uc.mapCreateError(req, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)

	return &Response{
		ID:              booking.ID,
		ProviderID:      booking.ProviderID,
		ServiceID:       booking.ServiceID,
		BookingDate:     req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.Service.DurationMinutes,
		Status:          booking.Status,
	}, nil
}

// mapCreateError мапит ошибки клиента бронирований на ошибки usecase
func (uc *UseCase) mapCreateError(req *Request, err error) error {
	var conflict *bookingClient.ConflictError
	if errors.As(err, &conflict) {
		uc.logger.Warn("CreateBooking: slot conflict for provider=%s, date=%s, time=%s: %s",
			req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime, conflict.Message)
		return &SlotConflictError{
			Message:          conflict.Message,
			AlternativeSlots: conflict.AlternativeSlots,
		}
	}

	var validation *bookingClient.ValidationError
	if errors.As(err, &validation) {
		uc.logger.Warn("CreateBooking: portal rejected booking: %s", validation.Message)
		return &ValidationError{Message: validation.Message}
	}

	uc.logger.Error("CreateBooking: failed to create booking: %v", err)
	return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
}
