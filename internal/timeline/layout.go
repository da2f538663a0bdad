package timeline

const (
	DefaultLanes = 7
	DefaultRowY  = 10.0
)

// FormationLayout расставляет участников без ключевых кадров в ряд у задней
// линии ковра. Результат только для отображения и не сохраняется.
type FormationLayout struct {
	lanes int
	rowY  float64
}

func NewFormationLayout(lanes int, rowY float64) *FormationLayout {
	if lanes <= 0 {
		lanes = DefaultLanes
	}
	return &FormationLayout{lanes: lanes, rowY: rowY}
}

// Place возвращает позицию i-го (с нуля) участника без кадров
func (l *FormationLayout) Place(i int) (x, y float64) {
	laneWidth := 100 / float64(l.lanes)
	return float64(i+1) * laneWidth / 2, l.rowY
}
