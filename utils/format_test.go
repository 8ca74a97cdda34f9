package utils

import (
	"testing"
	"time"
)

func TestMoney(t *testing.T) {
	if got := Money(1234.5); got != "$1234.50" {
		t.Fatalf("expected $1234.50, got %q", got)
	}
	if got := Money(0); got != "$0.00" {
		t.Fatalf("expected $0.00, got %q", got)
	}
}

func TestMoneyOrBlank(t *testing.T) {
	if got := MoneyOrBlank(nil); got != "" {
		t.Fatalf("nil amount must render blank, got %q", got)
	}
	v := 12.0
	if got := MoneyOrBlank(&v); got != "$12.00" {
		t.Fatalf("expected $12.00, got %q", got)
	}
}

func TestNumberOrBlank(t *testing.T) {
	if got := NumberOrBlank(nil); got != "" {
		t.Fatalf("nil number must render blank, got %q", got)
	}
	v := 1.5
	if got := NumberOrBlank(&v); got != "1.5" {
		t.Fatalf("expected 1.5, got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(nil); got != "" {
		t.Fatalf("nil date must render blank, got %q", got)
	}
	var zero time.Time
	if got := FormatDate(&zero); got != "" {
		t.Fatalf("zero date must render blank, got %q", got)
	}
	d := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(&d); got != "3/7/2024" {
		t.Fatalf("expected 3/7/2024, got %q", got)
	}
}

func TestFormatDateTime(t *testing.T) {
	d := time.Date(2024, 3, 7, 14, 5, 9, 0, time.UTC)
	if got := FormatDateTime(&d); got != "3/7/2024, 2:05:09 PM" {
		t.Fatalf("expected 3/7/2024, 2:05:09 PM, got %q", got)
	}
}
