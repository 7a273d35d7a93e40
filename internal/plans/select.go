package plans

import "strings"

// SelectDayBlock returns the block whose "day" field matches weekday, ignoring case and
// surrounding whitespace. Without a match it falls back to the first block, and to nil
// for an empty week. Blocks that are not objects are never matched, but the first one is
// still returned as the fallback.
func SelectDayBlock(weekPlan []any, weekday string) any {
	if len(weekPlan) == 0 {
		return nil
	}

	target := strings.ToLower(strings.TrimSpace(weekday))
	for _, b := range weekPlan {
		block, ok := b.(map[string]any)
		if !ok {
			continue
		}
		day, _ := block["day"].(string)
		if strings.ToLower(strings.TrimSpace(day)) == target {
			return block
		}
	}
	return weekPlan[0]
}
