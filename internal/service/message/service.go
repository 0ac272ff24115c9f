// Package message implements message and reply creation and listing.
// Creation funnels every new body through the mention recorder so mention
// events are written in the same call that persists the text.
package message

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
)

const (
	MaxBodyLength = 4000
	DefaultLimit  = 50
)

type messageRepo interface {
	Create(ctx context.Context, msg domain.Message) (domain.Message, error)
	CreateReply(ctx context.Context, reply domain.Reply) (domain.Reply, error)
	GetByID(ctx context.Context, messageID uuid.UUID) (domain.Message, error)
	ListBySpace(ctx context.Context, spaceID uuid.UUID, limit, offset int) ([]domain.Message, error)
}

type memberRepo interface {
	FindByAccount(ctx context.Context, spaceID, accountID uuid.UUID) (domain.Member, error)
}

type mentionRecorder interface {
	RecordFromMessage(ctx context.Context, msg domain.Message) ([]uuid.UUID, error)
	RecordFromReply(ctx context.Context, spaceID uuid.UUID, reply domain.Reply) ([]uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides message and reply operations.
type Service struct {
	messages messageRepo
	members  memberRepo
	mentions mentionRecorder
	txm      txManager
	log      *slog.Logger
}

// NewService creates a new Message service.
func NewService(
	log *slog.Logger,
	messages messageRepo,
	members memberRepo,
	mentions mentionRecorder,
	txm txManager,
) *Service {
	return &Service{
		messages: messages,
		members:  members,
		mentions: mentions,
		txm:      txm,
		log:      log.With("service", "message"),
	}
}
