package handlers

import "time"

// Days travel as ISO calendar-date strings and month filters as YYYY-MM
// keys; anything else is rejected before it reaches the store.

func isISODay(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func isISOMonth(value string) bool {
	_, err := time.Parse("2006-01", value)
	return err == nil
}
