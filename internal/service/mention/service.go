// Package mention implements the mention subsystem: recording mention events
// from message and reply bodies, serving the flat and grouped read views, and
// bulk dismissal with a notification side effect.
package mention

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
)

type mentionRepo interface {
	InsertBatch(ctx context.Context, mentions []domain.Mention) (int, error)
	ListActiveByMember(ctx context.Context, mentionedID uuid.UUID) ([]domain.Mention, error)
	GroupActive(ctx context.Context, scope domain.MentionScope) ([]domain.MentionGroup, error)
	GroupActiveForAccountByMessages(ctx context.Context, accountID uuid.UUID, messageIDs []uuid.UUID) ([]domain.MentionGroup, error)
	DismissAll(ctx context.Context, mentionedID, messageID uuid.UUID, at time.Time) (int, error)
}

type memberRepo interface {
	FindByHandles(ctx context.Context, spaceID uuid.UUID, handles []string) ([]domain.Member, error)
	FindByAccount(ctx context.Context, spaceID, accountID uuid.UUID) (domain.Member, error)
}

type messageRepo interface {
	GetByID(ctx context.Context, messageID uuid.UUID) (domain.Message, error)
}

type dismissalPublisher interface {
	PublishMentionsDismissed(ctx context.Context, spaceID uuid.UUID, event domain.MentionsDismissed) error
}

// Service provides mention recording, query and dismissal operations.
type Service struct {
	mentions  mentionRepo
	members   memberRepo
	messages  messageRepo
	publisher dismissalPublisher
	log       *slog.Logger
}

// NewService creates a new Mention service.
func NewService(
	log *slog.Logger,
	mentions mentionRepo,
	members memberRepo,
	messages messageRepo,
	publisher dismissalPublisher,
) *Service {
	return &Service{
		mentions:  mentions,
		members:   members,
		messages:  messages,
		publisher: publisher,
		log:       log.With("service", "mention"),
	}
}
