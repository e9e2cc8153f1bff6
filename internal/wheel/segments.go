package wheel

import (
	"math"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
)

// Category is one selectable entry of the wheel with its weight in percent.
// Reward is set only for custom categories.
type Category struct {
	Type   domain.RewardType
	Weight float64
	Reward *domain.CustomReward
}

// BuildCategories flattens a config and its custom rewards into the single
// ordered list both segment layout and selection walk: double points, avatar,
// each custom reward in store order, points. Non-positive and NaN weights are
// left out.
func BuildCategories(cfg domain.WheelConfig, customs []domain.CustomReward) []Category {
	categories := make([]Category, 0, len(customs)+3)

	add := func(c Category) {
		if math.IsNaN(c.Weight) || c.Weight <= 0 {
			return
		}
		categories = append(categories, c)
	}

	add(Category{Type: domain.RewardDoublePoints, Weight: cfg.Probabilities.DoublePoints})
	add(Category{Type: domain.RewardAvatar, Weight: cfg.Probabilities.Avatars})
	for i := range customs {
		add(Category{Type: domain.RewardCustom, Weight: customs[i].Probability, Reward: &customs[i]})
	}
	add(Category{Type: domain.RewardPoints, Weight: cfg.Probabilities.Points})

	return categories
}

// TotalWeight sums the category weights
func TotalWeight(categories []Category) float64 {
	total := 0.0
	for _, c := range categories {
		total += c.Weight
	}
	return total
}

// WheelScale is the weight that spans the full circle. Up to a total of 100 an
// arc is weight/100*360 degrees and the rest of the circle stays uncovered.
// Larger totals are scaled down so the arcs still end at 360.
func WheelScale(total float64) float64 {
	return max(total, domain.ProbabilityTotal)
}

// BuildSegments lays categories out as contiguous arcs starting at 0 degrees,
// sized by WheelScale. Segment i always belongs to category i.
func BuildSegments(categories []Category) []domain.Segment {
	segments := make([]domain.Segment, 0, len(categories))
	total := TotalWeight(categories)
	scale := WheelScale(total)

	angle := 0.0
	for _, c := range categories {
		span := c.Weight / scale * domain.FullCircleDegrees
		seg := domain.Segment{
			Type:       c.Type,
			StartAngle: angle,
			EndAngle:   angle + span,
		}

		switch c.Type {
		case domain.RewardDoublePoints:
			seg.Label, seg.Icon = LabelDoublePoints, IconDoublePoints
		case domain.RewardAvatar:
			seg.Label, seg.Icon = LabelAvatar, IconAvatar
		case domain.RewardPoints:
			seg.Label, seg.Icon = LabelPoints, IconPoints
		case domain.RewardCustom:
			seg.RewardID, seg.Label, seg.Icon = c.Reward.ID, c.Reward.Name, c.Reward.Icon
		}

		segments = append(segments, seg)
		angle = seg.EndAngle
	}

	// Float sums can drift past a full turn
	if n := len(segments); n > 0 && total >= domain.ProbabilityTotal {
		segments[n-1].EndAngle = domain.FullCircleDegrees
	}

	return segments
}
