package domain

import (
	"regexp"
	"strings"
)

const (
	MatMin = 0.0
	MatMax = 100.0
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func ValidateCoordinate(name string, v float64) error {
	if v < MatMin || v > MatMax {
		return NewValidationError("%s must be within [0,100], got %v", name, v)
	}
	return nil
}

func ValidateColor(color string) error {
	if !colorPattern.MatchString(color) {
		return NewValidationError("color must be a #RRGGBB hex value, got %q", color)
	}
	return nil
}

func ValidateTeam(t *Team) error {
	if strings.TrimSpace(t.Name) == "" {
		return NewValidationError("team name is required")
	}
	for i, m := range t.Members {
		if strings.TrimSpace(m.Name) == "" {
			return NewValidationError("member #%d has no name", i+1)
		}
	}
	return nil
}

func ValidateChoreo(c *Choreo) error {
	if c.Name == "" {
		return NewValidationError("choreo name is required")
	}
	if c.Counts <= 0 {
		return NewValidationError("counts must be positive, got %d", c.Counts)
	}
	if !c.MatType.Valid() {
		return NewValidationError("unknown mat type %q", c.MatType)
	}
	return nil
}

// ValidateLineup проверяет диапазон счётов и позиции; counts <= 0 отключает верхнюю границу
func ValidateLineup(l *Lineup, counts int) error {
	if l.StartCount < 0 {
		return NewValidationError("startCount must not be negative, got %d", l.StartCount)
	}
	if l.StartCount > l.EndCount {
		return NewValidationError("startCount %d is greater than endCount %d", l.StartCount, l.EndCount)
	}
	if counts > 0 && l.EndCount >= counts {
		return NewValidationError("endCount %d is outside the choreo length %d", l.EndCount, counts)
	}

	seen := make(map[int]struct{}, len(l.Positions))
	for _, p := range l.Positions {
		if _, ok := seen[p.MemberID]; ok {
			return NewValidationError("member %d has more than one position in the lineup", p.MemberID)
		}
		seen[p.MemberID] = struct{}{}

		if err := ValidateCoordinate("x", p.X); err != nil {
			return err
		}
		if err := ValidateCoordinate("y", p.Y); err != nil {
			return err
		}
	}
	return nil
}

func ValidatePositionUpdate(u PositionUpdate) error {
	if u.X != nil {
		if err := ValidateCoordinate("x", *u.X); err != nil {
			return err
		}
	}
	if u.Y != nil {
		if err := ValidateCoordinate("y", *u.Y); err != nil {
			return err
		}
	}
	return nil
}
