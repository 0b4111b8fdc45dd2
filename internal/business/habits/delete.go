package habits

import (
	"context"
	"fmt"
)

func (s *Service) DeleteHabit(ctx context.Context, userID, id int64) error {
	if err := s.habitsRepository.DeleteHabit(ctx, s.db, userID, id); err != nil {
		return fmt.Errorf("habitsRepository.DeleteHabit: %w", err)
	}

	s.dropCached(ctx, id)

	return nil
}
