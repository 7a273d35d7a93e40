package progress

import "time"

// BestStreakWindowDays is how far back from today the best streak scan starts.
const BestStreakWindowDays = 365

type StreakResult struct {
	WorkoutCurrent   int `json:"workout_current"`
	WorkoutBest      int `json:"workout_best"`
	NutritionCurrent int `json:"nutrition_current"`
	NutritionBest    int `json:"nutrition_best"`
	OverallCurrent   int `json:"overall_current"`
	OverallBest      int `json:"overall_best"`
}

type trackPredicate func(o Outcome) bool

func workoutSucceeded(o Outcome) bool {
	return o.WorkoutStatus == WorkoutDone
}

func nutritionSucceeded(o Outcome) bool {
	return o.NutritionStatus == NutritionHit
}

func overallSucceeded(o Outcome) bool {
	return workoutSucceeded(o) && nutritionSucceeded(o)
}

// CalculateStreaks computes current and best streaks for the workout, nutrition
// and overall tracks. Dates of records and today are compared by calendar day.
func CalculateStreaks(records []Outcome, today time.Time) StreakResult {
	byDate := make(map[time.Time]Outcome, len(records))
	for _, r := range records {
		byDate[Day(r.Date)] = r
	}
	today = Day(today)

	var res StreakResult
	res.WorkoutCurrent, res.WorkoutBest = trackStreaks(byDate, today, workoutSucceeded)
	res.NutritionCurrent, res.NutritionBest = trackStreaks(byDate, today, nutritionSucceeded)
	res.OverallCurrent, res.OverallBest = trackStreaks(byDate, today, overallSucceeded)
	return res
}

func trackStreaks(byDate map[time.Time]Outcome, today time.Time, succeeded trackPredicate) (current, best int) {
	// walking back stops at the first gap or failure
	for day := today; ; day = day.AddDate(0, 0, -1) {
		o, ok := byDate[day]
		if !ok || !succeeded(o) {
			break
		}
		current++
	}

	// missing days reset the run, same as failed ones
	run := 0
	for day := today.AddDate(0, 0, -BestStreakWindowDays); !day.After(today); day = day.AddDate(0, 0, 1) {
		o, ok := byDate[day]
		if !ok || !succeeded(o) {
			run = 0
			continue
		}
		run++
		best = max(best, run)
	}

	return current, max(best, current)
}
