package timeline

import (
	"time"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
)

// StampPrecision - точность, с которой TIMESTAMPTZ хранит метку
const StampPrecision = time.Microsecond

type Decision int

const (
	// DecisionApply - запись принимается, Stamp нужно сохранить
	DecisionApply Decision = iota
	// DecisionUnchanged - повтор уже сохраненной записи, писать нечего
	DecisionUnchanged
)

func (d Decision) String() string {
	switch d {
	case DecisionApply:
		return "accepted"
	case DecisionUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Verdict - результат проверки порядка записи
type Verdict struct {
	Decision Decision
	Stamp    time.Time
}

// OrderingGuard отклоняет запись позиции, чей TimeOfManualUpdate не новее
// сохраненного. Решение принимается по одной записи, без блокировок;
// атомарность сравнения и записи обеспечивает вызывающий (строка под FOR UPDATE).
type OrderingGuard struct {
	now func() time.Time
}

func NewOrderingGuard(now func() time.Time) *OrderingGuard {
	if now == nil {
		now = time.Now
	}
	return &OrderingGuard{now: now}
}

// Check сравнивает входящее изменение с сохраненной позицией.
// Точный повтор сохраненной записи (те же x, y и метка) не отклоняется.
func (g *OrderingGuard) Check(stored *domain.Position, update domain.PositionUpdate) (Verdict, error) {
	// сравниваем с точностью хранения, иначе наносекунды клиента
	// обгоняют уже усеченную сохраненную метку
	var incoming *time.Time
	if update.TimeOfManualUpdate != nil {
		t := update.TimeOfManualUpdate.Truncate(StampPrecision)
		incoming = &t
	}

	if stored.TimeOfManualUpdate == nil || incoming == nil {
		stamp := g.now().Truncate(StampPrecision)
		if incoming != nil {
			stamp = *incoming
		} else if stored.TimeOfManualUpdate != nil && stamp.Before(*stored.TimeOfManualUpdate) {
			// метка не должна уйти назад из-за расхождения часов
			stamp = *stored.TimeOfManualUpdate
		}
		return Verdict{Decision: DecisionApply, Stamp: stamp}, nil
	}

	last := stored.TimeOfManualUpdate.Truncate(StampPrecision)
	if incoming.After(last) {
		return Verdict{Decision: DecisionApply, Stamp: *incoming}, nil
	}

	if incoming.Equal(last) && sameCoordinates(stored, update) {
		return Verdict{Decision: DecisionUnchanged, Stamp: last}, nil
	}

	return Verdict{}, &domain.RequestOrderError{
		PositionID: stored.ID,
		Stored:     last,
		Incoming:   *incoming,
	}
}

func sameCoordinates(stored *domain.Position, update domain.PositionUpdate) bool {
	if update.X != nil && *update.X != stored.X {
		return false
	}
	if update.Y != nil && *update.Y != stored.Y {
		return false
	}
	return true
}

// Apply переносит принятое изменение на позицию
func Apply(pos *domain.Position, update domain.PositionUpdate, verdict Verdict) {
	if verdict.Decision != DecisionApply {
		return
	}
	if update.X != nil {
		pos.X = *update.X
	}
	if update.Y != nil {
		pos.Y = *update.Y
	}
	stamp := verdict.Stamp
	pos.TimeOfManualUpdate = &stamp
}
