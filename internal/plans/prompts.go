package plans

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/2beens/physiq/internal/users"
)

const workoutSystemMessage = `You are Physiq, an expert fitness coach.
Reply with a single valid JSON object and nothing else.

Build a 7-day workout plan (Monday to Sunday, one entry per day) with this shape:
{
  "week_plan": [
    {
      "day": "Monday",
      "recommended_time": "6:00 AM - 7:00 AM",
      "focus": "Push|Pull|Legs|Upper|Lower|Full Body|Cardio|Rest",
      "session_type": "Workout|Cardio|Rest",
      "exercises": [{"name": "", "sets": 3, "reps": 10, "distance_m": null, "notes": ""}],
      "notes": ""
    }
  ],
  "encouragement_message": ""
}

Rules:
- exactly three rest days with focus and session_type "Rest", no exercises and recommended_time "Flexible"
- training days have 3 to 6 exercises; resistance work uses numeric sets and reps, cardio uses distance_m or a duration in notes
- no core exercises unless the user asks for them
- place sessions in the user's free time when a schedule is given`

const nutritionSystemMessage = `You are Physiq, an expert nutrition coach.
Reply with a single valid JSON object and nothing else.

Build a 7-day nutrition plan (Monday to Sunday, one entry per day) with this shape:
{
  "daily_targets": {"calorie_target": 0, "protein_g": 0, "carbs_g": 0, "fat_g": 0},
  "week_plan": [
    {
      "day": "Monday",
      "meals": [
        {
          "name": "Breakfast|Lunch|Dinner|Snack",
          "items": [{"food": "", "portion": "150g", "calories": 0, "protein_g": 0, "carbs_g": 0, "fat_g": 0, "notes": ""}],
          "meal_total_calories": 0
        }
      ],
      "day_total_calories": 0,
      "notes": ""
    }
  ],
  "encouragement_message": ""
}

Rules:
- every day has breakfast, lunch, dinner and at least one snack, and every item has a portion
- meals come close to the daily targets, which follow the user's goal
- respect dietary preferences and allergies strictly
- simple grocery-store food, no medical advice, no extreme calorie levels`

// GenerateRequest carries the optional user wishes for a new plan.
type GenerateRequest struct {
	Goal     string `json:"goal,omitempty"`
	Schedule string `json:"schedule,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

func SystemMessage(kind Kind) string {
	if kind == KindNutrition {
		return nutritionSystemMessage
	}
	return workoutSystemMessage
}

func BuildPrompt(kind Kind, profile users.Profile, req GenerateRequest) string {
	lines := profileLines(profile)
	if kind == KindWorkout {
		lines = append(lines, "- Schedule Information: "+scheduleInfo(profile.Schedule))
	}

	var requests []string
	if req.Goal != "" {
		requests = append(requests, "- Current Goal: "+req.Goal)
	}
	if req.Schedule != "" {
		requests = append(requests, "- Schedule or Availability Notes: "+req.Schedule)
	}
	if req.Notes != "" {
		requests = append(requests, "- Additional Notes or Requests: "+req.Notes)
	}
	if len(requests) > 0 {
		lines = append(lines, "", "User Requests:")
		lines = append(lines, requests...)
	}

	lines = append(lines, "")
	if kind == KindNutrition {
		lines = append(lines, "Generate a personalized nutrition plan.")
	} else {
		lines = append(lines, "Generate a personalized workout plan with specific times that avoid busy hours.")
	}
	return strings.Join(lines, "\n")
}

func profileLines(p users.Profile) []string {
	age := "unknown"
	if p.Age != nil {
		age = fmt.Sprintf("%d", *p.Age)
	}
	lines := []string{
		"User Profile:",
		"- Goal: " + p.FitnessGoal,
		"- Activity Level: " + p.ActivityLevel,
		"- Age: " + age,
		"- Gender: " + p.Gender,
		"- Height: " + p.Height,
		"- Weight: " + p.Weight,
	}
	if p.DietaryPreferences != "" {
		lines = append(lines, "- Dietary Preferences: "+p.DietaryPreferences)
	}
	if p.Allergies != "" {
		lines = append(lines, "- Allergies: "+p.Allergies)
	}
	return lines
}

func scheduleInfo(schedule json.RawMessage) string {
	if len(schedule) == 0 || string(schedule) == "null" {
		return "No schedule data available."
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, schedule, "", "  "); err != nil {
		return "Invalid schedule format provided."
	}
	return "User's busy times:\n" + pretty.String() + "\nPlease suggest workout times during FREE slots."
}
