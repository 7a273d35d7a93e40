package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/2beens/physiq/internal/plans"
	"github.com/2beens/physiq/internal/users"
)

func buildSystemPrompt(userName string, profile *users.Profile, workout, nutrition *plans.Plan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are Physiq, an AI fitness & nutrition assistant helping %s.\n", userName)
	sb.WriteString("Use the user's latest saved data when answering. Be conversational and remember previous messages.\n\n")

	sb.WriteString("User Profile:\n")
	if profile != nil {
		age := "unknown"
		if profile.Age != nil {
			age = fmt.Sprintf("%d", *profile.Age)
		}
		fmt.Fprintf(&sb, "- Age: %s\n", age)
		fmt.Fprintf(&sb, "- Height: %s\n", profile.Height)
		fmt.Fprintf(&sb, "- Weight: %s\n", profile.Weight)
		fmt.Fprintf(&sb, "- Goal: %s\n", profile.FitnessGoal)
		fmt.Fprintf(&sb, "- Activity Level: %s\n", profile.ActivityLevel)
		fmt.Fprintf(&sb, "- Dietary Preference: %s\n", profile.DietaryPreferences)
	} else {
		sb.WriteString("Not filled in yet.\n")
	}

	sb.WriteString("\nLatest Workout Plan:\n")
	sb.WriteString(planJSON(workout))
	sb.WriteString("\n\nLatest Nutrition Plan:\n")
	sb.WriteString(planJSON(nutrition))
	return sb.String()
}

func planJSON(p *plans.Plan) string {
	if p == nil {
		return "None saved yet."
	}
	data, err := json.MarshalIndent(p.Data, "", "  ")
	if err != nil {
		return "None saved yet."
	}
	return string(data)
}
