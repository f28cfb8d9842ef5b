package models

import (
	"fmt"
	"strings"
)

// SessionType is the kind of training event being recorded
type SessionType string

const (
	TypePhysicalTraining SessionType = "Physical Training"
	TypeMatch            SessionType = "Match"
	TypeClubTraining     SessionType = "Club Training"
	TypeHomeTraining     SessionType = "Home Training"
)

// SessionTypes lists all valid session types in display order
var SessionTypes = []SessionType{
	TypePhysicalTraining,
	TypeMatch,
	TypeClubTraining,
	TypeHomeTraining,
}

// Valid reports whether the session type is one of the known values
func (t SessionType) Valid() bool {
	switch t {
	case TypePhysicalTraining, TypeMatch, TypeClubTraining, TypeHomeTraining:
		return true
	}
	return false
}

// ParseSessionType matches user input against the known session types,
// ignoring case and surrounding whitespace
func ParseSessionType(input string) (SessionType, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, t := range SessionTypes {
		if normalized == strings.ToLower(string(t)) {
			return t, nil
		}
	}
	// Short aliases for quick CLI entry
	switch normalized {
	case "physical", "fitness":
		return TypePhysicalTraining, nil
	case "club":
		return TypeClubTraining, nil
	case "home":
		return TypeHomeTraining, nil
	}
	return "", fmt.Errorf("unknown session type %q (use: physical, match, club, home)", input)
}

// Position is an on-field playing position
type Position string

const (
	PositionRightWing Position = "Right Wing"
	PositionStriker   Position = "Striker"
)

// Positions lists all valid playing positions in display order
var Positions = []Position{
	PositionRightWing,
	PositionStriker,
}

// PhysicalOnlyLabel is the display label for sessions with no on-field
// position (bench or fitness-only work)
const PhysicalOnlyLabel = "Physical Only"

// ParsePosition matches user input against the known positions. Empty input
// and the legacy "None" sentinels all map to nil (physical-only).
func ParsePosition(input string) (*Position, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	switch normalized {
	case "", "none", "none (bench/fitness only)", "physical only":
		return nil, nil
	}
	for _, p := range Positions {
		if normalized == strings.ToLower(string(p)) {
			return &p, nil
		}
	}
	// Short aliases for quick CLI entry
	switch normalized {
	case "rw", "wing":
		p := PositionRightWing
		return &p, nil
	case "st", "striker":
		p := PositionStriker
		return &p, nil
	}
	return nil, fmt.Errorf("unknown position %q (use: rw, st, or none)", input)
}
