package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
)

// Publisher sends domain notifications to space channels over Redis pub/sub.
type Publisher struct {
	client *redis.Client
}

// NewPublisher creates a notification publisher on an established Redis client.
func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

func mentionChannel(spaceID uuid.UUID) string {
	return fmt.Sprintf("space:%s:mentions", spaceID)
}

// PublishMentionsDismissed emits a single mentions-dismissed notification to
// the space channel. One call produces one message regardless of how many
// mention rows were dismissed.
func (p *Publisher) PublishMentionsDismissed(ctx context.Context, spaceID uuid.UUID, event domain.MentionsDismissed) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal mentions dismissed event: %w", err)
	}

	if err := p.client.Publish(ctx, mentionChannel(spaceID), payload).Err(); err != nil {
		return fmt.Errorf("publish mentions dismissed event: %w", err)
	}

	return nil
}
