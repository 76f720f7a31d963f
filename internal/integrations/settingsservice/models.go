package settingsservice

import (
	"github.com/valle1212i/Glow-SessionService/internal/domain"
	"github.com/valle1212i/Glow-SessionService/pkg/types"
)

// BookingSettings настройки бронирования из портала:
// расписание по дням недели плюс общее окно календаря
type BookingSettings struct {
	OpeningHours            map[string]DaySchedule `json:"openingHours"`
	CalendarBehavior        *CalendarBehavior      `json:"calendarBehavior"`
	MinBookingNoticeMinutes int                    `json:"minBookingNoticeMinutes"`
}

// DaySchedule расписание на один день недели
// Ключи в OpeningHours: "monday".."sunday" (нижний регистр)
type DaySchedule struct {
	IsOpen    bool    `json:"isOpen"`
	StartTime *string `json:"start"`
	EndTime   *string `json:"end"`
}

// CalendarBehavior общее окно работы календаря
type CalendarBehavior struct {
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	SlotIntervalMinutes int    `json:"slotIntervalMinutes"`
}

// weekdayKeys порядок дней для маппинга в доменную модель
var weekdayKeys = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// ToDomain конвертирует настройки в доменную модель
// Некорректные значения времени в расписании дня отбрасывают запись дня
// (день трактуется как не настроенный, с переходом к окну календаря)
func (s *BookingSettings) ToDomain() *domain.ScheduleSettings {
	settings := &domain.ScheduleSettings{
		MinBookingNoticeMinutes: s.MinBookingNoticeMinutes,
	}

	dayTargets := map[string]**domain.DayHours{
		"monday":    &settings.Week.Monday,
		"tuesday":   &settings.Week.Tuesday,
		"wednesday": &settings.Week.Wednesday,
		"thursday":  &settings.Week.Thursday,
		"friday":    &settings.Week.Friday,
		"saturday":  &settings.Week.Saturday,
		"sunday":    &settings.Week.Sunday,
	}

	for _, key := range weekdayKeys {
		day, ok := s.OpeningHours[key]
		if !ok {
			continue
		}
		*dayTargets[key] = day.toDomain()
	}

	if s.CalendarBehavior != nil {
		startTime, errStart := types.NewTimeStringFromString(s.CalendarBehavior.StartTime)
		endTime, errEnd := types.NewTimeStringFromString(s.CalendarBehavior.EndTime)
		if errStart == nil && errEnd == nil {
			settings.Calendar = &domain.CalendarBehavior{
				StartTime:           startTime,
				EndTime:             endTime,
				SlotIntervalMinutes: s.CalendarBehavior.SlotIntervalMinutes,
			}
		}
	}

	return settings
}

func (d DaySchedule) toDomain() *domain.DayHours {
	hours := &domain.DayHours{IsOpen: d.IsOpen}
	if !d.IsOpen {
		return hours
	}

	if d.StartTime == nil || d.EndTime == nil {
		// Открыт, но без времени - запись непригодна
		return nil
	}

	startTime, err := types.NewTimeStringFromString(*d.StartTime)
	if err != nil {
		return nil
	}
	endTime, err := types.NewTimeStringFromString(*d.EndTime)
	if err != nil {
		return nil
	}

	hours.StartTime = &startTime
	hours.EndTime = &endTime
	return hours
}
