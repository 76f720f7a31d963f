package resolve_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	bookingClient "github.com/valle1212i/Glow-SessionService/internal/integrations/bookingservice"
	settingsClient "github.com/valle1212i/Glow-SessionService/internal/integrations/settingsservice"
	"github.com/valle1212i/Glow-SessionService/pkg/types"
)

// UseCase use case получения доступных слотов для бронирования
//
// Порядок разрешения: сначала provider-specific availability endpoint портала,
// при его недоступности - локальная генерация из часов работы и списка
// бронирований. Сбои provider endpoint деградируют к генерации и никогда
// не всплывают как жесткие ошибки
type UseCase struct {
	availabilityClient AvailabilityClient
	settingsClient     SettingsClient
	bookingsClient     BookingsClient
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityClient AvailabilityClient,
	settingsClient SettingsClient,
	bookingsClient BookingsClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityClient: availabilityClient,
		settingsClient:     settingsClient,
		bookingsClient:     bookingsClient,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveAvailability: tenant=%s, provider=%s, service=%s, date=%s",
		req.Tenant, req.ProviderID, req.Service.ID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Пытаемся получить слоты от provider-specific endpoint портала
	availability, err := uc.availabilityClient.GetProviderAvailability(
		ctx, req.Tenant, req.ProviderID, req.Date, req.Service.DurationMinutes)
	if err == nil {
		return uc.fromProviderAvailability(req, availability)
	}

	if errors.Is(err, bookingClient.ErrAvailabilityNotSupported) {
		uc.logger.Info("ResolveAvailability: provider availability endpoint not supported, falling back to local generation")
	} else {
		uc.logger.Warn("ResolveAvailability: provider availability lookup failed, falling back to local generation: %v", err)
	}

	// 4. Fallback: получаем настройки бронирования
	settings, err := uc.settingsClient.GetSettings(ctx, req.Tenant)
	if err != nil {
		if errors.Is(err, settingsClient.ErrSettingsNotFound) {
			uc.logger.Warn("ResolveAvailability: booking settings not configured for tenant=%s", req.Tenant)
			return nil, ErrNotConfigured
		}
		uc.logger.Error("ResolveAvailability: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	schedule := settings.ToDomain()

	// 5. Определяем окно работы: расписание дня, иначе окно календаря
	open, close, stepMinutes, err := resolveWorkingWindow(schedule, req)
	if err != nil {
		if errors.Is(err, ErrClosed) {
			uc.logger.Info("ResolveAvailability: closed on %s", req.Date.Format(domain.DateFormat))
		} else {
			uc.logger.Warn("ResolveAvailability: no working hours resolvable for %s", req.Date.Format(domain.DateFormat))
		}
		return nil, err
	}

	// 6. Генерируем кандидатов с учетом текущего времени и минимального уведомления
	slots := generateTimeSlots(
		open, close,
		stepMinutes, req.Service.DurationMinutes,
		req.Date, now,
		schedule.MinBookingNoticeMinutes,
	)

	// 7. Получаем бронирования мастера на весь день
	// Сбой здесь трактуется как отсутствие бронирований: отказать во всех
	// слотах хуже, чем изредка предложить занятый (доступность важнее
	// консистентности). Уровень ERROR, чтобы перекос был виден оператору
	bookings := uc.fetchBookings(ctx, req)

	// 8. Отбрасываем занятые слоты
	free := filterBookedSlots(slots, bookings)

	uc.logger.Info("ResolveAvailability: generated %d slots (%d free) for provider=%s, date=%s",
		len(slots), len(free), req.ProviderID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:               req.Date,
		ProviderID:         req.ProviderID,
		ServiceID:          req.Service.ID,
		Slots:              free,
		UsingFallbackHours: true,
		FullyBooked:        len(free) == 0,
	}, nil
}

// fromProviderAvailability строит ответ из данных provider endpoint
// Явный сигнал "закрыто" возвращается сразу, без локальной генерации
func (uc *UseCase) fromProviderAvailability(req *Request, availability *bookingClient.ProviderAvailability) (*Response, error) {
	if !availability.IsOpen {
		uc.logger.Info("ResolveAvailability: provider endpoint reports closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrClosed
	}

	slots := make([]domain.TimeSlot, 0, len(availability.Slots))
	for _, raw := range availability.Slots {
		startTime, err := types.NewTimeStringFromString(raw)
		if err != nil {
			uc.logger.Warn("ResolveAvailability: skipping malformed slot %q from provider endpoint: %v", raw, err)
			continue
		}
		endTime, err := startTime.AddMinutes(req.Service.DurationMinutes)
		if err != nil {
			uc.logger.Warn("ResolveAvailability: skipping slot %q beyond day boundary", raw)
			continue
		}
		slots = append(slots, domain.TimeSlot{
			StartTime:       startTime,
			EndTime:         endTime,
			DurationMinutes: req.Service.DurationMinutes,
		})
	}

	uc.logger.Info("ResolveAvailability: provider endpoint returned %d slots for provider=%s, date=%s",
		len(slots), req.ProviderID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:               req.Date,
		ProviderID:         req.ProviderID,
		ServiceID:          req.Service.ID,
		Slots:              slots,
		UsingFallbackHours: availability.UsingGeneralHours,
		FullyBooked:        len(slots) == 0,
	}, nil
}

// resolveWorkingWindow определяет окно работы и шаг слотов на дату
func resolveWorkingWindow(schedule *domain.ScheduleSettings, req *Request) (open, close types.TimeString, stepMinutes int, err error) {
	stepMinutes = domain.DefaultSlotIntervalMinutes
	if schedule.Calendar != nil && schedule.Calendar.SlotIntervalMinutes > 0 {
		stepMinutes = schedule.Calendar.SlotIntervalMinutes
	}

	day := schedule.Week.DayHoursFor(req.Date)
	if day != nil {
		if !day.IsOpen {
			return "", "", 0, ErrClosed
		}
		return *day.StartTime, *day.EndTime, stepMinutes, nil
	}

	// Записи на день нет - используем общее окно календаря
	if schedule.Calendar != nil {
		return schedule.Calendar.StartTime, schedule.Calendar.EndTime, stepMinutes, nil
	}

	// Часы неразрешимы - окно не угадываем
	return "", "", 0, ErrNotConfigured
}

// fetchBookings получает активные бронирования мастера на дату запроса
// При сбое возвращает пустой список (fail open)
func (uc *UseCase) fetchBookings(ctx context.Context, req *Request) []*domain.Booking {
	rawBookings, err := uc.bookingsClient.ListBookings(ctx, req.Tenant, req.Date, req.Date, req.ProviderID)
	if err != nil {
		uc.logger.Error("ResolveAvailability: failed to get bookings, treating day as free (may over-offer slots): %v", err)
		return nil
	}

	bookings := make([]*domain.Booking, 0, len(rawBookings))
	for _, raw := range rawBookings {
		bookings = append(bookings, raw.ToDomain())
	}
	return bookings
}
