package wheel

import (
	"fmt"
	"math"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
)

// Selection is the outcome of a draw before anything is persisted
type Selection struct {
	Category    Category
	Segment     domain.Segment
	Value       domain.RewardValue
	TargetAngle float64
}

// Selector draws a category and builds its payload
type Selector struct {
	rng Rand
}

// NewSelector creates a selector. A nil rng uses the shared default source.
func NewSelector(rng Rand) *Selector {
	if rng == nil {
		rng = defaultRand{}
	}
	return &Selector{rng: rng}
}

// Select draws r uniformly from [0, 100) and resolves it with SelectAt
func (s *Selector) Select(categories []Category, segments []domain.Segment, taskPoints int) (*Selection, error) {
	r := s.rng.Float64() * domain.ProbabilityTotal
	return s.SelectAt(r, categories, segments, taskPoints)
}

// SelectAt resolves a draw r in [0, 100) against the category list. The first
// category whose cumulative weight exceeds r wins. Draws past a total below 100
// fall to the points category, or to the last category when points is absent.
// Totals above 100 scale r by WheelScale to match the segment layout.
func (s *Selector) SelectAt(r float64, categories []Category, segments []domain.Segment, taskPoints int) (*Selection, error) {
	if len(categories) == 0 || len(categories) != len(segments) {
		return nil, domain.ErrConfigInvalid
	}

	total := TotalWeight(categories)
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: total weight %v", domain.ErrConfigInvalid, total)
	}
	if scale := WheelScale(total); scale != domain.ProbabilityTotal {
		r = r / domain.ProbabilityTotal * scale
	}

	idx := -1
	cumulative := 0.0
	for i, c := range categories {
		cumulative += c.Weight
		if r < cumulative {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = remainderIndex(categories)
	}

	winner := categories[idx]
	seg := segments[idx]

	return &Selection{
		Category:    winner,
		Segment:     seg,
		Value:       s.payload(winner, taskPoints),
		TargetAngle: seg.StartAngle + s.rng.Float64()*(seg.EndAngle-seg.StartAngle),
	}, nil
}

func (s *Selector) payload(c Category, taskPoints int) domain.RewardValue {
	switch c.Type {
	case domain.RewardDoublePoints:
		if taskPoints <= 0 {
			taskPoints = domain.DefaultTaskPoints
		}
		return domain.RewardValue{
			Points:   taskPoints * domain.DoublePointsMultiplier,
			Original: taskPoints,
		}
	case domain.RewardAvatar:
		emoji := AvatarCatalog[s.rng.IntN(len(AvatarCatalog))]
		return domain.RewardValue{
			Emoji: emoji,
			Name:  domain.AvatarRewardNamePrefix + emoji,
		}
	case domain.RewardCustom:
		return domain.RewardValue{
			ID:          c.Reward.ID,
			Name:        c.Reward.Name,
			Description: c.Reward.Description,
			Icon:        c.Reward.Icon,
		}
	default:
		span := domain.MaxBonusPoints - domain.MinBonusPoints + 1
		return domain.RewardValue{
			Points: domain.MinBonusPoints + s.rng.IntN(span),
		}
	}
}

// remainderIndex picks the category that takes draws beyond the covered total
func remainderIndex(categories []Category) int {
	for i := len(categories) - 1; i >= 0; i-- {
		if categories[i].Type == domain.RewardPoints {
			return i
		}
	}
	return len(categories) - 1
}
