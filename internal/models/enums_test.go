package models

import (
	"testing"
)

func TestParseSessionType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SessionType
		wantErr bool
	}{
		{name: "full name", input: "Match", want: TypeMatch},
		{name: "case insensitive", input: "club training", want: TypeClubTraining},
		{name: "surrounding whitespace", input: "  Home Training ", want: TypeHomeTraining},
		{name: "physical alias", input: "physical", want: TypePhysicalTraining},
		{name: "fitness alias", input: "fitness", want: TypePhysicalTraining},
		{name: "club alias", input: "club", want: TypeClubTraining},
		{name: "home alias", input: "home", want: TypeHomeTraining},
		{name: "unknown", input: "friendly", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSessionType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSessionType(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSessionType(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseSessionType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSessionTypeValid(t *testing.T) {
	for _, sessionType := range SessionTypes {
		if !sessionType.Valid() {
			t.Errorf("%q should be valid", sessionType)
		}
	}
	if SessionType("Friendly").Valid() {
		t.Error("unknown session type should not be valid")
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Position // nil means physical-only
		wantErr bool
	}{
		{name: "full name", input: "Striker", want: positionPtr(PositionStriker)},
		{name: "case insensitive", input: "right wing", want: positionPtr(PositionRightWing)},
		{name: "st alias", input: "st", want: positionPtr(PositionStriker)},
		{name: "rw alias", input: "rw", want: positionPtr(PositionRightWing)},
		{name: "wing alias", input: "wing", want: positionPtr(PositionRightWing)},
		{name: "empty is physical-only", input: "", want: nil},
		{name: "legacy none sentinel", input: "None", want: nil},
		{name: "legacy bench sentinel", input: "None (Bench/Fitness Only)", want: nil},
		{name: "display label round-trips", input: "Physical Only", want: nil},
		{name: "unknown", input: "goalkeeper", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePosition(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePosition(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePosition(%q) error: %v", tt.input, err)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ParsePosition(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Fatalf("ParsePosition(%q) = %q, want %q", tt.input, *got, *tt.want)
			}
		})
	}
}

func positionPtr(p Position) *Position {
	return &p
}

func TestPositionLabel(t *testing.T) {
	striker := PositionStriker
	fielded := TrainingSession{Position: &striker}
	if got := fielded.PositionLabel(); got != "Striker" {
		t.Errorf("PositionLabel = %q, want Striker", got)
	}

	physical := TrainingSession{Position: nil}
	if got := physical.PositionLabel(); got != PhysicalOnlyLabel {
		t.Errorf("PositionLabel = %q, want %q", got, PhysicalOnlyLabel)
	}
}
