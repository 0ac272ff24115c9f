package mention

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
	"github.com/heartmarshall/spacetalk-backend/pkg/ctxutil"
)

// List returns the caller's active mentions in a space as individual events,
// one row per occurrence, newest first. The caller's member identity is
// resolved from the authenticated account via the membership directory.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Mention, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	member, err := s.members.FindByAccount(ctx, input.SpaceID, accountID)
	if err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}

	mentions, err := s.mentions.ListActiveByMember(ctx, member.ID)
	if err != nil {
		return nil, fmt.Errorf("list mentions: %w", err)
	}

	return mentions, nil
}

// GroupedInSpace returns the caller's grouped mentions in a space, one group
// per message, scoped directly by the resolved member identity.
func (s *Service) GroupedInSpace(ctx context.Context, input GroupedInSpaceInput) ([]domain.MentionGroup, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	member, err := s.members.FindByAccount(ctx, input.SpaceID, accountID)
	if err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}

	groups, err := s.mentions.GroupActive(ctx, domain.MentionsOfMember(member.ID))
	if err != nil {
		return nil, fmt.Errorf("group mentions: %w", err)
	}

	return groups, nil
}

// GroupedForAccount returns the caller's grouped mentions across every space
// they are a member of, scoped by account through the membership directory.
func (s *Service) GroupedForAccount(ctx context.Context) ([]domain.MentionGroup, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	groups, err := s.mentions.GroupActive(ctx, domain.MentionsOfAccount(accountID))
	if err != nil {
		return nil, fmt.Errorf("group mentions: %w", err)
	}

	return groups, nil
}

// GroupedByMessages returns the caller's grouped mentions restricted to a set
// of messages. This is the batch read behind the per-message loaders.
func (s *Service) GroupedByMessages(ctx context.Context, messageIDs []uuid.UUID) ([]domain.MentionGroup, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if len(messageIDs) == 0 {
		return []domain.MentionGroup{}, nil
	}

	groups, err := s.mentions.GroupActiveForAccountByMessages(ctx, accountID, messageIDs)
	if err != nil {
		return nil, fmt.Errorf("group mentions by messages: %w", err)
	}

	return groups, nil
}
