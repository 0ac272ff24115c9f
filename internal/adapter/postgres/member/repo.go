// Package member implements the membership directory repository using
// PostgreSQL. It is consulted, not owned: rows are written by the
// provisioning flow, this repository only resolves identities.
package member

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/spacetalk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/spacetalk-backend/internal/domain"
)

// Repo provides member lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new member repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const memberColumns = `id, space_id, account_id, handle, display_name, created_at`

const findByHandlesSQL = `
SELECT ` + memberColumns + `
FROM members
WHERE space_id = $1 AND lower(handle) = ANY($2::text[])`

const findByAccountSQL = `
SELECT ` + memberColumns + `
FROM members
WHERE space_id = $1 AND account_id = $2`

const getByIDsSQL = `
SELECT ` + memberColumns + `
FROM members
WHERE id = ANY($1::uuid[])`

// FindByHandles returns the members of a space whose handle, lower-cased,
// is in the candidate set. Handles are lower-cased and de-duplicated before
// the query; candidates with no matching member are silently dropped.
func (r *Repo) FindByHandles(ctx context.Context, spaceID uuid.UUID, handles []string) ([]domain.Member, error) {
	lowered := lowerDistinct(handles)
	if len(lowered) == 0 {
		return []domain.Member{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, findByHandlesSQL, spaceID, lowered)
	if err != nil {
		return nil, fmt.Errorf("find members by handles: %w", err)
	}
	defer rows.Close()

	members, err := scanMembers(rows)
	if err != nil {
		return nil, fmt.Errorf("find members by handles: %w", err)
	}

	return members, nil
}

// FindByAccount returns the single member record an account holds in a space.
// Returns domain.ErrNotFound if the account is not a member of the space.
func (r *Repo) FindByAccount(ctx context.Context, spaceID, accountID uuid.UUID) (domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var m domain.Member
	err := querier.QueryRow(ctx, findByAccountSQL, spaceID, accountID).Scan(
		&m.ID, &m.SpaceID, &m.AccountID, &m.Handle, &m.DisplayName, &m.CreatedAt,
	)
	if err != nil {
		return domain.Member{}, postgres.MapError(err, "member", accountID)
	}

	return m, nil
}

// GetByIDs returns members by primary key (batch read, order unspecified).
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Member, error) {
	if len(ids) == 0 {
		return []domain.Member{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get members by ids: %w", err)
	}
	defer rows.Close()

	members, err := scanMembers(rows)
	if err != nil {
		return nil, fmt.Errorf("get members by ids: %w", err)
	}

	return members, nil
}

// lowerDistinct lower-cases handles and drops duplicates and empties.
func lowerDistinct(handles []string) []string {
	out := make([]string, 0, len(handles))
	seen := make(map[string]struct{}, len(handles))
	for _, h := range handles {
		l := strings.ToLower(h)
		if l == "" {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

func scanMembers(rows pgx.Rows) ([]domain.Member, error) {
	members := []domain.Member{}
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.SpaceID, &m.AccountID, &m.Handle, &m.DisplayName, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}
