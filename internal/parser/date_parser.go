package parser

import (
	"fmt"
	"strings"
	"time"
)

// ParseSessionDate parses the date of a training session
// Supported formats:
// - "today" / "yesterday" quick keywords
// - yyyy-mm-dd (e.g., "2024-03-15")
// - dd/mm/yyyy (e.g., "15/03/2024")
func ParseSessionDate(input string) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	layouts := []string{"2006-01-02", "02/01/2006"}
	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, input, now.Location()); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q. Use: today, yesterday, yyyy-mm-dd, or dd/mm/yyyy", input)
}

// FormatSessionDate formats a session date for display, flagging today and
// yesterday by name
func FormatSessionDate(date time.Time) string {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	dateStr := date.Format("2006-01-02")
	daysDiff := int(today.Sub(day).Hours() / 24)

	switch daysDiff {
	case 0:
		return fmt.Sprintf("%s (today)", dateStr)
	case 1:
		return fmt.Sprintf("%s (yesterday)", dateStr)
	default:
		return dateStr
	}
}
