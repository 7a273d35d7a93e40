package progress

import "time"

const DaysInWeek = 7

type WeekDay struct {
	Date            string          `json:"date"`
	DayName         string          `json:"day_name"`
	DayNum          int             `json:"day_num"`
	WorkoutStatus   WorkoutStatus   `json:"workout_status"`
	NutritionStatus NutritionStatus `json:"nutrition_status"`
	Notes           string          `json:"notes"`
	IsToday         bool            `json:"is_today"`
}

// WeekStart returns the Monday of the week containing day.
func WeekStart(day time.Time) time.Time {
	day = Day(day)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// BuildWeek lays out Monday to Sunday of today's week. Days without a record
// are reported as missed / none with empty notes.
func BuildWeek(records []Outcome, today time.Time) []WeekDay {
	byDate := make(map[time.Time]Outcome, len(records))
	for _, r := range records {
		byDate[Day(r.Date)] = r
	}

	today = Day(today)
	start := WeekStart(today)
	week := make([]WeekDay, 0, DaysInWeek)
	for i := 0; i < DaysInWeek; i++ {
		day := start.AddDate(0, 0, i)
		wd := WeekDay{
			Date:            day.Format(DateLayout),
			DayName:         day.Format("Mon"),
			DayNum:          day.Day(),
			WorkoutStatus:   WorkoutMissed,
			NutritionStatus: NutritionNone,
			IsToday:         day.Equal(today),
		}
		if o, ok := byDate[day]; ok {
			wd.WorkoutStatus = o.WorkoutStatus
			wd.NutritionStatus = o.NutritionStatus
			wd.Notes = o.Notes
		}
		week = append(week, wd)
	}
	return week
}
