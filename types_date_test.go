package cgt

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{" 2016-04-06 ", NewDate(2016, time.April, 6), false},
		{"invalid-date", Date{}, true},
		{"15-01-2025", Date{}, true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("ParseDate(%q) expected an error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestDate_Sub(t *testing.T) {
	tests := []struct {
		name string
		d, x Date
		want int
	}{
		{"same day", NewDate(2016, time.May, 10), NewDate(2016, time.May, 10), 0},
		{"next day", NewDate(2016, time.May, 11), NewDate(2016, time.May, 10), 1},
		{"previous day", NewDate(2016, time.May, 9), NewDate(2016, time.May, 10), -1},
		{"thirty days", NewDate(2016, time.June, 9), NewDate(2016, time.May, 10), 30},
		{"across month end", NewDate(2016, time.March, 2), NewDate(2016, time.February, 28), 3}, // leap year
		{"across year end", NewDate(2017, time.January, 3), NewDate(2016, time.December, 30), 4},
	}

	for _, tt := range tests {
		if got := tt.d.Sub(tt.x); got != tt.want {
			t.Errorf("%s: (%v).Sub(%v) = %d, want %d", tt.name, tt.d, tt.x, got, tt.want)
		}
	}
}

func TestDate_AddYear(t *testing.T) {
	got := NewDate(2016, time.April, 5).AddYear(1)
	want := NewDate(2017, time.April, 5)
	if got != want {
		t.Errorf("AddYear(1) = %v, want %v", got, want)
	}
	// Feb 29 normalizes forward on non-leap years.
	got = NewDate(2016, time.February, 29).AddYear(1)
	want = NewDate(2017, time.March, 1)
	if got != want {
		t.Errorf("AddYear(1) on leap day = %v, want %v", got, want)
	}
}

func TestDate_Normalization(t *testing.T) {
	if got, want := NewDate(2016, time.May, 35), NewDate(2016, time.June, 4); got != want {
		t.Errorf("NewDate(2016, May, 35) = %v, want %v", got, want)
	}
}
