package timeline

import (
	"testing"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineup(id, start, end int, positions ...domain.Position) domain.Lineup {
	for i := range positions {
		positions[i].LineupID = id
	}
	return domain.Lineup{ID: id, StartCount: start, EndCount: end, Positions: positions}
}

func at(memberID int, x, y float64) domain.Position {
	return domain.Position{MemberID: memberID, X: x, Y: y}
}

var alice = domain.Member{ID: 1, Name: "Alice", Abbreviation: "AL"}

func TestInterpolator_PositionsAt(t *testing.T) {
	ip := NewInterpolator(nil)

	tests := []struct {
		name    string
		lineups []domain.Lineup
		count   int
		wantX   float64
		wantY   float64
	}{
		{
			name:    "точное совпадение, пересекающиеся построения",
			lineups: []domain.Lineup{lineup(1, 0, 5, at(1, 0, 0)), lineup(2, 5, 10, at(1, 5, 5))},
			count:   0,
			wantX:   0,
			wantY:   0,
		},
		{
			name:    "при пересечении побеждает первое объявленное построение",
			lineups: []domain.Lineup{lineup(1, 0, 5, at(1, 0, 0)), lineup(2, 5, 10, at(1, 5, 5))},
			count:   5,
			wantX:   0,
			wantY:   0,
		},
		{
			name:    "первое объявленное побеждает даже с большим startCount",
			lineups: []domain.Lineup{lineup(1, 4, 8, at(1, 9, 9)), lineup(2, 0, 6, at(1, 1, 1))},
			count:   5,
			wantX:   9,
			wantY:   9,
		},
		{
			name:    "линейная интерполяция, середина",
			lineups: []domain.Lineup{lineup(1, 0, 0, at(1, 0, 0)), lineup(2, 2, 2, at(1, 10, 10))},
			count:   1,
			wantX:   5,
			wantY:   5,
		},
		{
			name:    "интерполяция от конца предыдущего до начала следующего",
			lineups: []domain.Lineup{lineup(1, 0, 3, at(1, 10, 20)), lineup(2, 7, 9, at(1, 50, 60))},
			count:   4,
			wantX:   20,
			wantY:   30,
		},
		{
			name:    "после последнего кадра позиция удерживается",
			lineups: []domain.Lineup{lineup(1, 0, 0, at(1, 1, 2))},
			count:   1,
			wantX:   1,
			wantY:   2,
		},
		{
			name:    "до первого кадра позиция удерживается",
			lineups: []domain.Lineup{lineup(1, 10, 10, at(1, 1, 2))},
			count:   0,
			wantX:   1,
			wantY:   2,
		},
		{
			name:    "без кадров - расстановка по умолчанию",
			lineups: nil,
			count:   0,
			wantX:   7.142857142857143,
			wantY:   10,
		},
		{
			name:    "кадры другого участника не влияют",
			lineups: []domain.Lineup{lineup(1, 0, 4, at(2, 50, 50))},
			count:   2,
			wantX:   7.142857142857143,
			wantY:   10,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			choreo := &domain.Choreo{Counts: 32, Lineups: tt.lineups}

			got := ip.PositionsAt(choreo, tt.count, []domain.Member{alice})

			require.Len(t, got, 1)
			assert.Equal(t, 1, got[0].MemberID)
			require.NotNil(t, got[0].Member)
			assert.Equal(t, "Alice", got[0].Member.Name)
			assert.InDelta(t, tt.wantX, got[0].X, 1e-12)
			assert.InDelta(t, tt.wantY, got[0].Y, 1e-12)
		})
	}
}

func TestInterpolator_ExactMidpoint(t *testing.T) {
	ip := NewInterpolator(nil)
	choreo := &domain.Choreo{Lineups: []domain.Lineup{
		lineup(1, 0, 0, at(1, 0, 0)),
		lineup(2, 2, 2, at(1, 10, 10)),
	}}

	got := ip.PositionsAt(choreo, 1, []domain.Member{alice})

	require.Len(t, got, 1)
	assert.Equal(t, 5.0, got[0].X)
	assert.Equal(t, 5.0, got[0].Y)
}

func TestInterpolator_DefaultLayoutOrder(t *testing.T) {
	ip := NewInterpolator(NewFormationLayout(DefaultLanes, DefaultRowY))
	roster := []domain.Member{{ID: 1}, {ID: 2}, {ID: 3}}
	choreo := &domain.Choreo{Lineups: []domain.Lineup{lineup(1, 0, 8, at(2, 40, 40))}}

	got := ip.PositionsAt(choreo, 3, roster)

	require.Len(t, got, 3)
	lane := 100.0 / 7
	assert.InDelta(t, lane/2, got[0].X, 1e-12)
	assert.Equal(t, 40.0, got[1].X)
	// второй участник без кадров получает вторую дорожку
	assert.InDelta(t, 2*lane/2, got[2].X, 1e-12)
	assert.Equal(t, 10.0, got[2].Y)
}

func TestInterpolator_PositionsFor(t *testing.T) {
	ip := NewInterpolator(nil)
	choreo := &domain.Choreo{Lineups: []domain.Lineup{lineup(1, 0, 0, at(7, 30, 40))}}

	t.Run("участник вне состава возвращается без Member", func(t *testing.T) {
		got := ip.PositionsFor(choreo, 0, []int{7, 1}, []domain.Member{alice})

		require.Len(t, got, 2)
		assert.Nil(t, got[0].Member)
		assert.Equal(t, 7, got[0].MemberID)
		assert.Equal(t, 30.0, got[0].X)
		assert.Equal(t, 40.0, got[0].Y)
		require.NotNil(t, got[1].Member)
		assert.Equal(t, alice.ID, got[1].Member.ID)
	})

	t.Run("порядок запроса сохраняется", func(t *testing.T) {
		got := ip.PositionsFor(choreo, 0, []int{1, 7}, nil)

		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].MemberID)
		assert.Equal(t, 7, got[1].MemberID)
	})
}

func TestInterpolator_MissingContext(t *testing.T) {
	ip := NewInterpolator(nil)

	t.Run("nil хореография", func(t *testing.T) {
		got := ip.PositionsAt(nil, 0, []domain.Member{alice})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("nil состав", func(t *testing.T) {
		got := ip.PositionsAt(&domain.Choreo{}, 0, nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("пустой состав", func(t *testing.T) {
		got := ip.PositionsAt(&domain.Choreo{}, 0, []domain.Member{})
		assert.Empty(t, got)
	})
}

func TestInterpolator_Frames(t *testing.T) {
	ip := NewInterpolator(nil)
	choreo := &domain.Choreo{Lineups: []domain.Lineup{
		lineup(1, 0, 0, at(1, 0, 0)),
		lineup(2, 4, 4, at(1, 40, 80)),
	}}

	frames := ip.Frames(choreo, -2, 4, []int{1}, []domain.Member{alice})

	require.Len(t, frames, 5)
	for i, frame := range frames {
		require.Len(t, frame, 1)
		assert.InDelta(t, float64(i)*10, frame[0].X, 1e-12)
		assert.InDelta(t, float64(i)*20, frame[0].Y, 1e-12)
	}

	assert.Empty(t, ip.Frames(choreo, 5, 4, []int{1}, nil))
	assert.Empty(t, ip.Frames(nil, 0, 4, []int{1}, nil))
}

func TestInterpolate_NoFrames(t *testing.T) {
	_, _, ok := Interpolate(nil, 3)
	assert.False(t, ok)
}
