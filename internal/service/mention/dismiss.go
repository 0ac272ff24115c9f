package mention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
	"github.com/heartmarshall/spacetalk-backend/pkg/ctxutil"
)

// Dismiss marks every active mention of the caller in a message as dismissed
// and emits exactly one dismissal notification to the message's space, even
// when no rows matched. A repeated call is a no-op on storage but still
// notifies, so subscribers can treat the event as a level signal. Publisher
// failures are logged and do not fail the dismissal.
func (s *Service) Dismiss(ctx context.Context, input DismissInput) (int, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	msg, err := s.messages.GetByID(ctx, input.MessageID)
	if err != nil {
		return 0, fmt.Errorf("load message: %w", err)
	}

	member, err := s.members.FindByAccount(ctx, msg.SpaceID, accountID)
	if err != nil {
		return 0, fmt.Errorf("resolve member: %w", err)
	}

	dismissedAt := time.Now().UTC()

	dismissed, err := s.mentions.DismissAll(ctx, member.ID, msg.ID, dismissedAt)
	if err != nil {
		return 0, fmt.Errorf("dismiss mentions: %w", err)
	}

	event := domain.MentionsDismissed{
		MessageID:   msg.ID,
		Message:     msg,
		MemberID:    member.ID,
		DismissedAt: dismissedAt,
	}
	if err := s.publisher.PublishMentionsDismissed(ctx, msg.SpaceID, event); err != nil {
		s.log.ErrorContext(ctx, "publish dismissal notification failed",
			slog.String("message_id", msg.ID.String()),
			slog.String("member_id", member.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "mentions dismissed",
		slog.String("message_id", msg.ID.String()),
		slog.String("member_id", member.ID.String()),
		slog.Int("count", dismissed),
	)

	return dismissed, nil
}
