package domain

import "time"

type MatType string

const (
	MatTypeCheer  MatType = "cheer"
	MatTypeSquare MatType = "square"
	MatTypeStage  MatType = "stage"
)

func (m MatType) Valid() bool {
	switch m {
	case MatTypeCheer, MatTypeSquare, MatTypeStage:
		return true
	}
	return false
}

// Choreo - хореография; допустимые счёты [0, Counts)
type Choreo struct {
	ID             int
	Name           string
	Counts         int
	MatType        MatType
	TeamID         int
	Lineups        []Lineup
	Participations []Participation
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Lineup - ключевой кадр построения на диапазоне счётов [StartCount, EndCount]
type Lineup struct {
	ID         int
	ChoreoID   int
	StartCount int
	EndCount   int
	Positions  []Position
	CreatedAt  time.Time
}

type Position struct {
	ID                 int
	LineupID           int
	MemberID           int
	X                  float64
	Y                  float64
	TimeOfManualUpdate *time.Time
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// PositionUpdate - изменение позиции от клиента; nil поля не меняются
type PositionUpdate struct {
	X                  *float64
	Y                  *float64
	TimeOfManualUpdate *time.Time
}

type Participation struct {
	ChoreoID int
	MemberID int
	Color    string
}

// MemberIDs возвращает участников хореографии в порядке добавления
func (c *Choreo) MemberIDs() []int {
	ids := make([]int, 0, len(c.Participations))
	for _, p := range c.Participations {
		ids = append(ids, p.MemberID)
	}
	return ids
}
