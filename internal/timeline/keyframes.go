package timeline

import (
	"sort"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
)

// Keyframe - позиция участника на диапазоне [StartCount, EndCount].
// Seq - индекс построения в Choreo.Lineups, явный ключ при пересечении диапазонов.
type Keyframe struct {
	LineupID   int
	Seq        int
	StartCount int
	EndCount   int
	X          float64
	Y          float64
}

func (k Keyframe) covers(count int) bool {
	return k.StartCount <= count && count <= k.EndCount
}

// KeyframeStore индексирует ключевые кадры хореографии по участникам
type KeyframeStore struct {
	byMember map[int][]Keyframe
}

// IndexKeyframes раскладывает позиции построений по участникам.
// Кадры отсортированы по StartCount, затем по Seq. nil хореография дает пустой индекс.
func IndexKeyframes(choreo *domain.Choreo) *KeyframeStore {
	store := &KeyframeStore{byMember: make(map[int][]Keyframe)}
	if choreo == nil {
		return store
	}

	for seq, lineup := range choreo.Lineups {
		for _, pos := range lineup.Positions {
			store.byMember[pos.MemberID] = append(store.byMember[pos.MemberID], Keyframe{
				LineupID:   lineup.ID,
				Seq:        seq,
				StartCount: lineup.StartCount,
				EndCount:   lineup.EndCount,
				X:          pos.X,
				Y:          pos.Y,
			})
		}
	}

	for _, frames := range store.byMember {
		sort.Slice(frames, func(i, j int) bool {
			if frames[i].StartCount != frames[j].StartCount {
				return frames[i].StartCount < frames[j].StartCount
			}
			return frames[i].Seq < frames[j].Seq
		})
	}

	return store
}

// For возвращает упорядоченные кадры участника; nil, если кадров нет
func (s *KeyframeStore) For(memberID int) []Keyframe {
	if s == nil {
		return nil
	}
	return s.byMember[memberID]
}
