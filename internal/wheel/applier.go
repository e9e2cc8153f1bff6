package wheel

import (
	"context"
	"fmt"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/repository"
)

// ApplyReward performs the side effect of a reward. Points are added with an
// atomic increment; avatars overwrite the profile (last write wins); custom
// rewards are honoured outside the system and change nothing here.
func ApplyReward(ctx context.Context, w repository.RewardWriter, userID string, rewardType domain.RewardType, value domain.RewardValue) error {
	switch rewardType {
	case domain.RewardPoints, domain.RewardDoublePoints:
		if _, err := w.ApplyPointsDelta(ctx, userID, value.Points); err != nil {
			return fmt.Errorf(ErrFmtApplyReward, rewardType, err)
		}
	case domain.RewardAvatar:
		if err := w.SetAvatar(ctx, userID, value.Emoji); err != nil {
			return fmt.Errorf(ErrFmtApplyReward, rewardType, err)
		}
	case domain.RewardCustom:
		// nothing to apply
	default:
		return fmt.Errorf("%w: unknown reward type %q", domain.ErrInvalidInput, rewardType)
	}
	return nil
}
