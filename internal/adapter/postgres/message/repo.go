// Package message implements message and reply persistence using PostgreSQL.
package message

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/spacetalk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/spacetalk-backend/internal/domain"
)

// Repo provides message and reply persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createMessageSQL = `
INSERT INTO messages (id, space_id, author_id, body, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, space_id, author_id, body, created_at`

const createReplySQL = `
INSERT INTO replies (id, message_id, author_id, body, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, message_id, author_id, body, created_at`

const getMessageByIDSQL = `
SELECT id, space_id, author_id, body, created_at
FROM messages
WHERE id = $1`

const listMessagesBySpaceSQL = `
SELECT id, space_id, author_id, body, created_at
FROM messages
WHERE space_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

// Create inserts a new message and returns the persisted row.
func (r *Repo) Create(ctx context.Context, msg domain.Message) (domain.Message, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.Message
	err := querier.QueryRow(ctx, createMessageSQL,
		msg.ID, msg.SpaceID, msg.AuthorID, msg.Body, msg.CreatedAt,
	).Scan(&out.ID, &out.SpaceID, &out.AuthorID, &out.Body, &out.CreatedAt)
	if err != nil {
		return domain.Message{}, postgres.MapError(err, "message", msg.ID)
	}

	return out, nil
}

// CreateReply inserts a new reply and returns the persisted row.
func (r *Repo) CreateReply(ctx context.Context, reply domain.Reply) (domain.Reply, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.Reply
	err := querier.QueryRow(ctx, createReplySQL,
		reply.ID, reply.MessageID, reply.AuthorID, reply.Body, reply.CreatedAt,
	).Scan(&out.ID, &out.MessageID, &out.AuthorID, &out.Body, &out.CreatedAt)
	if err != nil {
		return domain.Reply{}, postgres.MapError(err, "reply", reply.ID)
	}

	return out, nil
}

// GetByID returns a message by primary key.
// Returns domain.ErrNotFound if the message does not exist.
func (r *Repo) GetByID(ctx context.Context, messageID uuid.UUID) (domain.Message, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.Message
	err := querier.QueryRow(ctx, getMessageByIDSQL, messageID).Scan(
		&out.ID, &out.SpaceID, &out.AuthorID, &out.Body, &out.CreatedAt,
	)
	if err != nil {
		return domain.Message{}, postgres.MapError(err, "message", messageID)
	}

	return out, nil
}

// ListBySpace returns messages in a space ordered by created_at DESC.
func (r *Repo) ListBySpace(ctx context.Context, spaceID uuid.UUID, limit, offset int) ([]domain.Message, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listMessagesBySpaceSQL, spaceID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.SpaceID, &m.AuthorID, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}
