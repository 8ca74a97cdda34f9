package utils

import (
	"fmt"
	"time"
)

// Money renders an amount as "$123.45".
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// MoneyOrBlank renders a nil amount as an empty cell, never as "$0.00",
// so the printed form keeps blank space for handwritten corrections.
func MoneyOrBlank(v *float64) string {
	if v == nil {
		return ""
	}
	return Money(*v)
}

// NumberOrBlank renders a nil numeric field as an empty cell.
func NumberOrBlank(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g", *v)
}

// FormatDate renders a calendar date, blank when absent or zero.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("1/2/2006")
}

// FormatDateTime renders a timestamp, blank when absent or zero.
func FormatDateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("1/2/2006, 3:04:05 PM")
}
