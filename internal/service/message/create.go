package message

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
	"github.com/heartmarshall/spacetalk-backend/pkg/ctxutil"
)

// CreateResult is a created message together with the member identities it
// mentioned, for callers that trigger per-member side effects.
type CreateResult struct {
	Message      domain.Message
	MentionedIDs []uuid.UUID
}

// CreateReplyResult is a created reply together with the member identities it
// mentioned.
type CreateReplyResult struct {
	Reply        domain.Reply
	MentionedIDs []uuid.UUID
}

// Create persists a new top-level message authored by the caller's member in
// the target space and records any mentions found in the body.
func (s *Service) Create(ctx context.Context, input CreateInput) (CreateResult, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return CreateResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return CreateResult{}, err
	}

	author, err := s.members.FindByAccount(ctx, input.SpaceID, accountID)
	if err != nil {
		return CreateResult{}, fmt.Errorf("resolve author: %w", err)
	}

	// Message and its mention events commit together.
	var msg domain.Message
	var mentioned []uuid.UUID
	err = s.txm.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		msg, err = s.messages.Create(ctx, domain.Message{
			ID:        uuid.New(),
			SpaceID:   input.SpaceID,
			AuthorID:  author.ID,
			Body:      strings.TrimSpace(input.Body),
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create message: %w", err)
		}

		mentioned, err = s.mentions.RecordFromMessage(ctx, msg)
		if err != nil {
			return fmt.Errorf("record message mentions: %w", err)
		}
		return nil
	})
	if err != nil {
		return CreateResult{}, err
	}

	s.log.InfoContext(ctx, "message created",
		slog.String("space_id", msg.SpaceID.String()),
		slog.String("message_id", msg.ID.String()),
		slog.Int("mentions", len(mentioned)),
	)

	return CreateResult{Message: msg, MentionedIDs: mentioned}, nil
}

// CreateReply persists a new reply authored by the caller's member in the
// parent message's space and records any mentions found in the body.
func (s *Service) CreateReply(ctx context.Context, input CreateReplyInput) (CreateReplyResult, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return CreateReplyResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return CreateReplyResult{}, err
	}

	parent, err := s.messages.GetByID(ctx, input.MessageID)
	if err != nil {
		return CreateReplyResult{}, fmt.Errorf("load parent message: %w", err)
	}

	author, err := s.members.FindByAccount(ctx, parent.SpaceID, accountID)
	if err != nil {
		return CreateReplyResult{}, fmt.Errorf("resolve author: %w", err)
	}

	var reply domain.Reply
	var mentioned []uuid.UUID
	err = s.txm.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		reply, err = s.messages.CreateReply(ctx, domain.Reply{
			ID:        uuid.New(),
			MessageID: parent.ID,
			AuthorID:  author.ID,
			Body:      strings.TrimSpace(input.Body),
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create reply: %w", err)
		}

		mentioned, err = s.mentions.RecordFromReply(ctx, parent.SpaceID, reply)
		if err != nil {
			return fmt.Errorf("record reply mentions: %w", err)
		}
		return nil
	})
	if err != nil {
		return CreateReplyResult{}, err
	}

	s.log.InfoContext(ctx, "reply created",
		slog.String("message_id", parent.ID.String()),
		slog.String("reply_id", reply.ID.String()),
		slog.Int("mentions", len(mentioned)),
	)

	return CreateReplyResult{Reply: reply, MentionedIDs: mentioned}, nil
}
