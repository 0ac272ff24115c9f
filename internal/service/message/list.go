package message

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
	"github.com/heartmarshall/spacetalk-backend/pkg/ctxutil"
)

// List returns messages in a space, newest first. The caller must be a member
// of the space.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Message, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	if _, err := s.members.FindByAccount(ctx, input.SpaceID, accountID); err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}

	messages, err := s.messages.ListBySpace(ctx, input.SpaceID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}

// Get returns a single message by id.
func (s *Service) Get(ctx context.Context, messageID uuid.UUID) (domain.Message, error) {
	if _, ok := ctxutil.AccountIDFromCtx(ctx); !ok {
		return domain.Message{}, domain.ErrUnauthorized
	}

	if messageID == uuid.Nil {
		return domain.Message{}, domain.NewValidationError("message_id", "required")
	}

	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return domain.Message{}, fmt.Errorf("get message: %w", err)
	}

	return msg, nil
}
