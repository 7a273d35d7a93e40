package coach

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/physiq/internal/plans"
)

const summarySystemMessage = "You are Physiq, a fitness coach. Reply with plain text only."

// BannerInput is what the generator gets to know about the user's day.
type BannerInput struct {
	UserName  string
	Workout   map[string]any
	Nutrition map[string]any
	Targets   plans.Targets
}

func buildSummaryPrompt(in BannerInput) string {
	var sb strings.Builder
	sb.WriteString("Write a short, 1 sentence personalized fitness coach message addressing the user by name.\n")
	sb.WriteString("Name: " + in.UserName + "\n")
	sb.WriteString("Workout today: " + workoutDescription(in.Workout) + "\n")
	if in.Nutrition != nil {
		sb.WriteString(intakeDescription(in.Nutrition) + "\n")
	}
	sb.WriteString(fmt.Sprintf(
		"Targets: %s protein, %s carbs, %s fat, %s kcal/day.\n",
		grams(in.Targets.Protein),
		grams(in.Targets.Carbs),
		grams(in.Targets.Fat),
		formatNumber(in.Targets.Calories),
	))
	sb.WriteString("\nTone: confident, supportive, friendly. Avoid emojis.")
	return sb.String()
}

func workoutDescription(block map[string]any) string {
	if block == nil {
		return "Rest day"
	}
	for _, key := range []string{"session_type", "focus", "type"} {
		if strings.EqualFold(strings.TrimSpace(plans.String(block, key)), "rest") {
			return "Rest day"
		}
	}
	if focus := plans.String(block, "focus"); focus != "" {
		return focus
	}
	if name := plans.String(block, "name"); name != "" {
		return name
	}
	return "Workout planned"
}

func intakeDescription(block map[string]any) string {
	var calories, protein, carbs, fat float64
	meals, _ := block["meals"].([]any)
	for _, m := range meals {
		meal, ok := m.(map[string]any)
		if !ok {
			continue
		}
		items, _ := meal["items"].([]any)
		for _, i := range items {
			item, ok := i.(map[string]any)
			if !ok {
				continue
			}
			calories += valueOrZero(plans.Number(item, "calories"))
			protein += valueOrZero(plans.Number(item, "protein_g"))
			carbs += valueOrZero(plans.Number(item, "carbs_g"))
			fat += valueOrZero(plans.Number(item, "fat_g"))
		}
	}
	return fmt.Sprintf(
		"Today's intake: %s kcal, %sg protein, %sg carbs, %sg fat.",
		formatNumber(&calories),
		formatNumber(&protein),
		formatNumber(&carbs),
		formatNumber(&fat),
	)
}

func valueOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func grams(f *float64) string {
	if f == nil {
		return "unknown"
	}
	return formatNumber(f) + "g"
}

func formatNumber(f *float64) string {
	if f == nil {
		return "unknown"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
