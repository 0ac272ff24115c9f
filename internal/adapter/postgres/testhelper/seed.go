package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates an account with a unique email. Returns a filled domain.Account.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	account := domain.Account{
		ID:        uuid.New(),
		Email:     "account-" + suffix + "@example.com",
		Name:      "Account " + suffix,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO accounts (id, email, name, created_at) VALUES ($1, $2, $3, $4)`,
		account.ID, account.Email, account.Name, account.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert: %v", err)
	}

	return account
}

// SeedSpace creates a space. Returns a filled domain.Space.
func SeedSpace(t *testing.T, pool *pgxpool.Pool) domain.Space {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	space := domain.Space{
		ID:        uuid.New(),
		Name:      "space-" + suffix,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO spaces (id, name, created_at) VALUES ($1, $2, $3)`,
		space.ID, space.Name, space.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSpace insert: %v", err)
	}

	return space
}

// SeedMember creates an account plus its membership in the given space with
// the given handle. Returns a filled domain.Member.
func SeedMember(t *testing.T, pool *pgxpool.Pool, spaceID uuid.UUID, handle string) domain.Member {
	t.Helper()
	ctx := context.Background()

	account := SeedAccount(t, pool)
	now := time.Now().UTC().Truncate(time.Microsecond)
	member := domain.Member{
		ID:          uuid.New(),
		SpaceID:     spaceID,
		AccountID:   account.ID,
		Handle:      handle,
		DisplayName: "Member " + handle,
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO members (id, space_id, account_id, handle, display_name, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		member.ID, member.SpaceID, member.AccountID, member.Handle, member.DisplayName, member.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember insert: %v", err)
	}

	return member
}

// SeedMessage creates a top-level message authored by the given member.
// Returns a filled domain.Message.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, spaceID, authorID uuid.UUID, body string) domain.Message {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	msg := domain.Message{
		ID:        uuid.New(),
		SpaceID:   spaceID,
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO messages (id, space_id, author_id, body, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.SpaceID, msg.AuthorID, msg.Body, msg.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage insert: %v", err)
	}

	return msg
}

// SeedReply creates a reply under the given message. Returns a filled domain.Reply.
func SeedReply(t *testing.T, pool *pgxpool.Pool, messageID, authorID uuid.UUID, body string) domain.Reply {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	reply := domain.Reply{
		ID:        uuid.New(),
		MessageID: messageID,
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO replies (id, message_id, author_id, body, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		reply.ID, reply.MessageID, reply.AuthorID, reply.Body, reply.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReply insert: %v", err)
	}

	return reply
}
