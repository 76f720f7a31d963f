package domain

import (
	"time"

	"github.com/valle1212i/Glow-SessionService/pkg/types"
)

// DayHours расписание работы на один день недели
// Отсутствие записи на день означает переход к CalendarBehavior,
// isOpen=false означает, что салон в этот день закрыт
type DayHours struct {
	IsOpen    bool
	StartTime *types.TimeString
	EndTime   *types.TimeString
}

// WeekSchedule расписание работы по дням недели
type WeekSchedule struct {
	Monday    *DayHours
	Tuesday   *DayHours
	Wednesday *DayHours
	Thursday  *DayHours
	Friday    *DayHours
	Saturday  *DayHours
	Sunday    *DayHours
}

// DayHoursFor возвращает расписание на указанную дату (nil - записи нет)
func (w *WeekSchedule) DayHoursFor(date time.Time) *DayHours {
	switch date.Weekday() {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return nil
	}
}

// CalendarBehavior общее окно работы, применяемое когда для дня
// нет отдельного расписания
type CalendarBehavior struct {
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotIntervalMinutes int
}

// ScheduleSettings настройки бронирования салона из портала
type ScheduleSettings struct {
	Week                    WeekSchedule
	Calendar                *CalendarBehavior
	MinBookingNoticeMinutes int
}

// TimeSlot кандидат на бронирование: фиксированный интервал длиной в услугу
// Вычисляется на лету, не хранится
type TimeSlot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}

// Display возвращает отображаемое время начала слота ("HH:MM")
func (s TimeSlot) Display() string {
	return s.StartTime.String()
}
