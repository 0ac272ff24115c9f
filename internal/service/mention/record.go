package mention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
)

// RecordFromMessage scans a new top-level message body for handle mentions and
// records one mention event per resolved member. Returns the resolved member
// identities so the caller can trigger targeted side effects.
func (s *Service) RecordFromMessage(ctx context.Context, msg domain.Message) ([]uuid.UUID, error) {
	return s.record(ctx, msg.SpaceID, msg.ID, nil, msg.AuthorID, msg.Body)
}

// RecordFromReply scans a new reply body for handle mentions and records one
// mention event per resolved member, tagged with the reply id.
func (s *Service) RecordFromReply(ctx context.Context, spaceID uuid.UUID, reply domain.Reply) ([]uuid.UUID, error) {
	return s.record(ctx, spaceID, reply.MessageID, &reply.ID, reply.AuthorID, reply.Body)
}

// record is the single funnel both entry points go through. No handles in the
// body is a trivial success, not an error. Unresolved handles are silently
// dropped. All rows of one call share a single occurred_at captured here,
// never one per row.
func (s *Service) record(ctx context.Context, spaceID, messageID uuid.UUID, replyID *uuid.UUID, authorID uuid.UUID, body string) ([]uuid.UUID, error) {
	handles := domain.ParseHandles(body)
	if len(handles) == 0 {
		return nil, nil
	}

	members, err := s.members.FindByHandles(ctx, spaceID, handles)
	if err != nil {
		return nil, fmt.Errorf("resolve handles: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}

	occurredAt := time.Now().UTC()

	mentions := make([]domain.Mention, 0, len(members))
	mentionedIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		mentions = append(mentions, domain.Mention{
			ID:          uuid.New(),
			SpaceID:     spaceID,
			MessageID:   messageID,
			ReplyID:     replyID,
			MentionerID: authorID,
			MentionedID: m.ID,
			OccurredAt:  occurredAt,
		})
		mentionedIDs = append(mentionedIDs, m.ID)
	}

	if _, err := s.mentions.InsertBatch(ctx, mentions); err != nil {
		return nil, fmt.Errorf("record mentions: %w", err)
	}

	s.log.InfoContext(ctx, "mentions recorded",
		slog.String("space_id", spaceID.String()),
		slog.String("message_id", messageID.String()),
		slog.Int("count", len(mentionedIDs)),
	)

	return mentionedIDs, nil
}
