package timeline

import "github.com/bagdasarian/choreo-timeline/internal/domain"

// Placement - вычисленная позиция участника на счёте.
// Member равен nil, если участника нет в переданном составе.
type Placement struct {
	Member   *domain.Member
	MemberID int
	X        float64
	Y        float64
}

type Interpolator struct {
	layout *FormationLayout
}

func NewInterpolator(layout *FormationLayout) *Interpolator {
	if layout == nil {
		layout = NewFormationLayout(DefaultLanes, DefaultRowY)
	}
	return &Interpolator{layout: layout}
}

// PositionsAt считает позицию каждого участника состава на счёте count
func (ip *Interpolator) PositionsAt(choreo *domain.Choreo, count int, roster []domain.Member) []Placement {
	if roster == nil {
		return []Placement{}
	}
	ids := make([]int, 0, len(roster))
	for _, m := range roster {
		ids = append(ids, m.ID)
	}
	return ip.PositionsFor(choreo, count, ids, roster)
}

// PositionsFor считает позиции для memberIDs в порядке запроса; roster нужен
// только чтобы вернуть объект участника вместе с координатами.
func (ip *Interpolator) PositionsFor(choreo *domain.Choreo, count int, memberIDs []int, roster []domain.Member) []Placement {
	if choreo == nil || memberIDs == nil {
		return []Placement{}
	}
	return ip.place(IndexKeyframes(choreo), count, memberIDs, indexRoster(roster))
}

// Frames возвращает позиции для каждого счёта from..to включительно
func (ip *Interpolator) Frames(choreo *domain.Choreo, from, to int, memberIDs []int, roster []domain.Member) [][]Placement {
	if from < 0 {
		from = 0
	}
	if choreo == nil || memberIDs == nil || to < from {
		return [][]Placement{}
	}

	store := IndexKeyframes(choreo)
	members := indexRoster(roster)
	frames := make([][]Placement, 0, to-from+1)
	for count := from; count <= to; count++ {
		frames = append(frames, ip.place(store, count, memberIDs, members))
	}
	return frames
}

func (ip *Interpolator) place(store *KeyframeStore, count int, memberIDs []int, members map[int]*domain.Member) []Placement {
	result := make([]Placement, 0, len(memberIDs))
	uncovered := 0
	for _, id := range memberIDs {
		x, y, ok := Interpolate(store.For(id), count)
		if !ok {
			x, y = ip.layout.Place(uncovered)
			uncovered++
		}
		result = append(result, Placement{
			Member:   members[id],
			MemberID: id,
			X:        x,
			Y:        y,
		})
	}
	return result
}

// Interpolate вычисляет позицию по упорядоченным кадрам одного участника.
// ok=false, если кадров нет вовсе.
func Interpolate(frames []Keyframe, count int) (x, y float64, ok bool) {
	if len(frames) == 0 {
		return 0, 0, false
	}

	var exact, prev, next *Keyframe
	for i := range frames {
		f := &frames[i]
		if f.covers(count) {
			if exact == nil || f.Seq < exact.Seq {
				exact = f
			}
			continue
		}
		if f.EndCount < count && (prev == nil || f.EndCount > prev.EndCount) {
			prev = f
		}
		if f.StartCount > count && (next == nil || f.StartCount < next.StartCount) {
			next = f
		}
	}

	switch {
	case exact != nil:
		return exact.X, exact.Y, true
	case prev != nil && next != nil:
		// prev.EndCount < count < next.StartCount, знаменатель > 0
		elapsed := float64(count - prev.EndCount)
		span := float64(next.StartCount - prev.EndCount)
		return prev.X + (next.X-prev.X)*elapsed/span, prev.Y + (next.Y-prev.Y)*elapsed/span, true
	case prev != nil:
		return prev.X, prev.Y, true
	default:
		return next.X, next.Y, true
	}
}

func indexRoster(roster []domain.Member) map[int]*domain.Member {
	members := make(map[int]*domain.Member, len(roster))
	for i := range roster {
		members[roster[i].ID] = &roster[i]
	}
	return members
}
