package wheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
)

func scenarioConfig() (domain.WheelConfig, []domain.CustomReward) {
	cfg := domain.DefaultWheelConfig("house-1")
	customs := []domain.CustomReward{
		{ID: "reward-pause", HouseholdID: "house-1", Name: "Extra Pause", Icon: "☕", Probability: 20},
	}
	return cfg, customs
}

func TestBuildCategories_Order(t *testing.T) {
	cfg := domain.DefaultWheelConfig("house-1")
	customs := []domain.CustomReward{
		{ID: "a", Name: "Movie night", Probability: 10},
		{ID: "b", Name: "Ice cream", Probability: 10},
	}

	categories := BuildCategories(cfg, customs)

	require.Len(t, categories, 5)
	assert.Equal(t, domain.RewardDoublePoints, categories[0].Type)
	assert.Equal(t, domain.RewardAvatar, categories[1].Type)
	assert.Equal(t, "a", categories[2].Reward.ID)
	assert.Equal(t, "b", categories[3].Reward.ID)
	assert.Equal(t, domain.RewardPoints, categories[4].Type)
	assert.InDelta(t, 100.0, TotalWeight(categories), 1e-9)
}

func TestBuildCategories_SkipsNonPositiveWeights(t *testing.T) {
	cfg := domain.DefaultWheelConfig("house-1")
	cfg.Probabilities.Avatars = 0
	cfg.Probabilities.Points = -5
	customs := []domain.CustomReward{
		{ID: "zero", Probability: 0},
		{ID: "nan", Probability: math.NaN()},
		{ID: "kept", Probability: 15},
	}

	categories := BuildCategories(cfg, customs)

	require.Len(t, categories, 2)
	assert.Equal(t, domain.RewardDoublePoints, categories[0].Type)
	assert.Equal(t, "kept", categories[1].Reward.ID)
	for _, seg := range BuildSegments(categories) {
		assert.NotEqual(t, domain.RewardAvatar, seg.Type)
		assert.NotEqual(t, domain.RewardPoints, seg.Type)
	}
}

func TestBuildSegments_Coverage(t *testing.T) {
	configs := []struct {
		name    string
		base    domain.BaseProbabilities
		customs []float64
	}{
		{"defaults with one custom", domain.BaseProbabilities{DoublePoints: 30, Avatars: 25, Points: 25}, []float64{20}},
		{"uneven thirds", domain.BaseProbabilities{DoublePoints: 33.33, Avatars: 33.33, Points: 33.34}, nil},
		{"under one hundred", domain.BaseProbabilities{DoublePoints: 10, Points: 15}, []float64{5, 7.5}},
		{"many customs", domain.BaseProbabilities{DoublePoints: 1, Avatars: 2, Points: 3}, []float64{4, 5, 6, 7, 8, 9, 10, 11, 12, 13}},
		{"single category", domain.BaseProbabilities{Points: 100}, nil},
	}

	for _, tt := range configs {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.WheelConfig{Probabilities: tt.base}
			var customs []domain.CustomReward
			for i, w := range tt.customs {
				customs = append(customs, domain.CustomReward{ID: string(rune('a' + i)), Probability: w})
			}

			categories := BuildCategories(cfg, customs)
			segments := BuildSegments(categories)

			require.Len(t, segments, len(categories))
			assert.Equal(t, 0.0, segments[0].StartAngle)
			for i := 1; i < len(segments); i++ {
				assert.Equal(t, segments[i-1].EndAngle, segments[i].StartAngle, "segments must be contiguous")
			}
			for i, seg := range segments {
				assert.Greater(t, seg.EndAngle, seg.StartAngle)
				assert.Equal(t, categories[i].Type, seg.Type)
			}

			want := TotalWeight(categories) / 100 * 360
			assert.InDelta(t, want, segments[len(segments)-1].EndAngle, 1e-9)
		})
	}
}

func TestBuildSegments_LabelsCustomRewards(t *testing.T) {
	cfg, customs := scenarioConfig()

	segments := BuildSegments(BuildCategories(cfg, customs))

	require.Len(t, segments, 4)
	custom := segments[2]
	assert.Equal(t, domain.RewardCustom, custom.Type)
	assert.Equal(t, "reward-pause", custom.RewardID)
	assert.Equal(t, "Extra Pause", custom.Label)
	assert.Equal(t, "☕", custom.Icon)
	assert.InDelta(t, 198.0, custom.StartAngle, 1e-9)
	assert.InDelta(t, 270.0, custom.EndAngle, 1e-9)
}

func TestBuildSegments_AllZeroIsEmpty(t *testing.T) {
	cfg := domain.WheelConfig{}

	categories := BuildCategories(cfg, []domain.CustomReward{{ID: "x", Probability: 0}})

	assert.Empty(t, categories)
	assert.Empty(t, BuildSegments(categories))
}
