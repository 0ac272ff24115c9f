// Package mention implements the mention event log using PostgreSQL.
//
// The write surface is deliberately narrow: InsertBatch appends new rows and
// DismissAll flips dismissed_at on active rows. There is no free-form update,
// so the append-only discipline of the event log is guaranteed by the API
// rather than by convention.
package mention

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/spacetalk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/spacetalk-backend/internal/domain"
)

// Repo provides mention event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mention repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertMentionSQL = `
INSERT INTO mentions (id, space_id, message_id, reply_id, mentioner_id, mentioned_id, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// InsertBatch appends mention events using pgx.Batch, one statement per row,
// sent as a single round trip. No conflict handling: the recorder never
// produces duplicates within one call, and re-recording the same reply is the
// caller's decision. Returns the number of inserted rows.
func (r *Repo) InsertBatch(ctx context.Context, mentions []domain.Mention) (int, error) {
	if len(mentions) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, m := range mentions {
		batch.Queue(insertMentionSQL,
			m.ID, m.SpaceID, m.MessageID, m.ReplyID, m.MentionerID, m.MentionedID, m.OccurredAt,
		)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, "mention", uuid.Nil)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

const dismissAllSQL = `
UPDATE mentions
SET dismissed_at = $3
WHERE mentioned_id = $1 AND message_id = $2 AND dismissed_at IS NULL`

// DismissAll marks every active mention of a member in a message as dismissed
// in one conditional bulk update. Re-running after a completed dismissal
// matches zero rows and is a no-op, which keeps concurrent dismissals safe.
// Returns the number of rows transitioned.
func (r *Repo) DismissAll(ctx context.Context, mentionedID, messageID uuid.UUID, at time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, dismissAllSQL, mentionedID, messageID, at)
	if err != nil {
		return 0, fmt.Errorf("dismiss mentions: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const listActiveByMemberSQL = `
SELECT id, space_id, message_id, reply_id, mentioner_id, mentioned_id, occurred_at, dismissed_at
FROM mentions
WHERE mentioned_id = $1 AND dismissed_at IS NULL
ORDER BY occurred_at DESC`

// ListActiveByMember returns every active mention addressed to a member,
// one row per occurrence, newest first.
func (r *Repo) ListActiveByMember(ctx context.Context, mentionedID uuid.UUID) ([]domain.Mention, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listActiveByMemberSQL, mentionedID)
	if err != nil {
		return nil, fmt.Errorf("list mentions: %w", err)
	}
	defer rows.Close()

	mentions := []domain.Mention{}
	for rows.Next() {
		var m domain.Mention
		if err := rows.Scan(
			&m.ID, &m.SpaceID, &m.MessageID, &m.ReplyID,
			&m.MentionerID, &m.MentionedID, &m.OccurredAt, &m.DismissedAt,
		); err != nil {
			return nil, fmt.Errorf("scan mention: %w", err)
		}
		mentions = append(mentions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list mentions: %w", err)
	}

	return mentions, nil
}

// groupedBase is the aggregation pipeline shared by every grouped-view
// variant: active mentions only, one group per (message, mentioned member),
// distinct non-null reply ids, distinct mentioners, newest occurrence.
// Scope variants only add predicates.
func groupedBase() squirrel.SelectBuilder {
	return psql.Select(
		"m.message_id",
		"m.mentioned_id",
		"array_agg(DISTINCT m.reply_id) FILTER (WHERE m.reply_id IS NOT NULL) AS reply_ids",
		"array_agg(DISTINCT m.mentioner_id) AS mentioner_ids",
		"max(m.occurred_at) AS last_occurred_at",
	).
		From("mentions m").
		Where("m.dismissed_at IS NULL").
		GroupBy("m.message_id", "m.mentioned_id").
		OrderBy("last_occurred_at DESC")
}

// GroupActive returns the grouped view for a scope: one group per
// (mentioned member, message) pair over active mentions. The account variant
// joins through the membership directory (one member per space and account);
// both variants run the same aggregation.
func (r *Repo) GroupActive(ctx context.Context, scope domain.MentionScope) ([]domain.MentionGroup, error) {
	q := groupedBase()

	switch scope.Kind {
	case domain.MentionScopeMember:
		q = q.Where(squirrel.Eq{"m.mentioned_id": scope.MemberID})
	case domain.MentionScopeAccount:
		q = q.Join("members mb ON mb.id = m.mentioned_id").
			Where(squirrel.Eq{"mb.account_id": scope.AccountID})
	default:
		return nil, fmt.Errorf("mention scope kind %d: %w", scope.Kind, domain.ErrValidation)
	}

	return r.queryGroups(ctx, q)
}

// GroupActiveForAccountByMessages returns grouped mentions for an account
// restricted to a set of messages. This is the batch entry point behind the
// dataloader: many per-message lookups collapse into this one query.
func (r *Repo) GroupActiveForAccountByMessages(ctx context.Context, accountID uuid.UUID, messageIDs []uuid.UUID) ([]domain.MentionGroup, error) {
	if len(messageIDs) == 0 {
		return []domain.MentionGroup{}, nil
	}

	q := groupedBase().
		Join("members mb ON mb.id = m.mentioned_id").
		Where(squirrel.Eq{"mb.account_id": accountID}).
		Where(squirrel.Eq{"m.message_id": messageIDs})

	return r.queryGroups(ctx, q)
}

func (r *Repo) queryGroups(ctx context.Context, q squirrel.SelectBuilder) ([]domain.MentionGroup, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build grouped mentions query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("group mentions: %w", err)
	}
	defer rows.Close()

	groups := []domain.MentionGroup{}
	for rows.Next() {
		var g domain.MentionGroup
		if err := rows.Scan(
			&g.MessageID, &g.MentionedID, &g.ReplyIDs, &g.MentionerIDs, &g.LastOccurredAt,
		); err != nil {
			return nil, fmt.Errorf("scan mention group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("group mentions: %w", err)
	}

	return groups, nil
}
