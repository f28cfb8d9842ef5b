package parser

import (
	"testing"
	"time"
)

func TestParseSessionDateKeywords(t *testing.T) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	got, err := ParseSessionDate("today")
	if err != nil {
		t.Fatalf("ParseSessionDate(today) error: %v", err)
	}
	if !got.Equal(today) {
		t.Errorf("today = %v, want %v", got, today)
	}

	got, err = ParseSessionDate("Yesterday")
	if err != nil {
		t.Fatalf("ParseSessionDate(Yesterday) error: %v", err)
	}
	if !got.Equal(today.AddDate(0, 0, -1)) {
		t.Errorf("yesterday = %v, want %v", got, today.AddDate(0, 0, -1))
	}
}

func TestParseSessionDateLayouts(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string // yyyy-mm-dd
		wantErr bool
	}{
		{name: "iso date", input: "2024-03-15", want: "2024-03-15"},
		{name: "uk date", input: "15/03/2024", want: "2024-03-15"},
		{name: "whitespace tolerated", input: "  2024-03-15 ", want: "2024-03-15"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "next tuesday", wantErr: true},
		{name: "impossible day", input: "2024-02-31", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSessionDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSessionDate(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSessionDate(%q) error: %v", tt.input, err)
			}
			if formatted := got.Format("2006-01-02"); formatted != tt.want {
				t.Fatalf("ParseSessionDate(%q) = %s, want %s", tt.input, formatted, tt.want)
			}
		})
	}
}

func TestFormatSessionDate(t *testing.T) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if got := FormatSessionDate(today); got != today.Format("2006-01-02")+" (today)" {
		t.Errorf("FormatSessionDate(today) = %q", got)
	}

	yesterday := today.AddDate(0, 0, -1)
	if got := FormatSessionDate(yesterday); got != yesterday.Format("2006-01-02")+" (yesterday)" {
		t.Errorf("FormatSessionDate(yesterday) = %q", got)
	}

	older := today.AddDate(0, 0, -10)
	if got := FormatSessionDate(older); got != older.Format("2006-01-02") {
		t.Errorf("FormatSessionDate(older) = %q, want bare date", got)
	}
}
