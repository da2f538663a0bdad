package timeline

const DefaultBeatsPerBar = 8

// GridCell - ячейка сетки счётов, обе координаты с единицы
type GridCell struct {
	Bar       int
	BeatInBar int
}

// GridRow - один такт сетки и счёты, которые в него попадают
type GridRow struct {
	Bar    int
	Counts []int
}

type CountGrid struct {
	beatsPerBar int
}

func NewCountGrid(beatsPerBar int) *CountGrid {
	if beatsPerBar <= 0 {
		beatsPerBar = DefaultBeatsPerBar
	}
	return &CountGrid{beatsPerBar: beatsPerBar}
}

func (g *CountGrid) BeatsPerBar() int {
	return g.beatsPerBar
}

// Cell переводит счёт в (такт, доля). Деление с округлением вниз, поэтому
// Count(Cell(c)) == c для любого целого c.
func (g *CountGrid) Cell(count int) GridCell {
	bar := floorDiv(count, g.beatsPerBar)
	return GridCell{
		Bar:       bar + 1,
		BeatInBar: count - bar*g.beatsPerBar + 1,
	}
}

// Count - обратное к Cell преобразование
func (g *CountGrid) Count(cell GridCell) int {
	return (cell.Bar-1)*g.beatsPerBar + (cell.BeatInBar - 1)
}

// Sheet раскладывает counts счётов по тактам; последний такт может быть неполным
func (g *CountGrid) Sheet(counts int) []GridRow {
	if counts <= 0 {
		return []GridRow{}
	}

	rows := make([]GridRow, 0, (counts+g.beatsPerBar-1)/g.beatsPerBar)
	for start := 0; start < counts; start += g.beatsPerBar {
		end := min(start+g.beatsPerBar, counts)
		row := GridRow{
			Bar:    g.Cell(start).Bar,
			Counts: make([]int, 0, end-start),
		}
		for c := start; c < end; c++ {
			row.Counts = append(row.Counts, c)
		}
		rows = append(rows, row)
	}
	return rows
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
