package timeline

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// DefaultPalette - цвета, хорошо различимые на ковре
var DefaultPalette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231",
	"#911eb4", "#46f0f0", "#f032e6", "#bcf60c", "#fabebe",
	"#008080", "#e6beff", "#9a6324", "#fffac8", "#800000",
	"#aaffc3", "#808000", "#ffd8b1", "#000075",
}

// ColorAssigner выдает цвет участнику, добавленному без цвета.
// Совпадения цветов допустимы; занятые цвета только пропускаются, пока есть свободные.
type ColorAssigner struct {
	palette []string

	mu  sync.Mutex
	rng *rand.Rand
}

func NewColorAssigner(palette []string, rng *rand.Rand) *ColorAssigner {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ColorAssigner{
		palette: append([]string(nil), palette...),
		rng:     rng,
	}
}

func (a *ColorAssigner) Palette() []string {
	return append([]string(nil), a.palette...)
}

// Assign выбирает случайный цвет палитры, предпочитая не занятые в inUse
func (a *ColorAssigner) Assign(inUse []string) string {
	used := make(map[string]struct{}, len(inUse))
	for _, c := range inUse {
		used[strings.ToLower(c)] = struct{}{}
	}

	candidates := make([]string, 0, len(a.palette))
	for _, c := range a.palette {
		if _, ok := used[strings.ToLower(c)]; !ok {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		candidates = a.palette
	}

	a.mu.Lock()
	i := a.rng.Intn(len(candidates))
	a.mu.Unlock()

	return candidates[i]
}
