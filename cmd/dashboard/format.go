package main

import (
	"fmt"
	"time"
)

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func formatTimeVal(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatDuration(d *float64) string {
	if d == nil {
		return "-"
	}
	return fmt.Sprintf("%.2fs", *d)
}

func formatString(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func formatInt(i *int) string {
	if i == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *i)
}
