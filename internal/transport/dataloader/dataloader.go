// Package dataloader provides per-request loaders for batching per-message
// mention lookups into single SQL calls. Loaders call repositories directly,
// bypassing the service layer. Viewer scoping is ensured via SQL (the grouped
// query filters by the authenticated account).
package dataloader

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
	"github.com/heartmarshall/spacetalk-backend/pkg/ctxutil"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// Kind tags which entity a group key refers to. Keys of different kinds share
// one loader so a request batches them together; the batch function fans out
// per kind.
type Kind string

const (
	// KindMessage groups mentions under a top-level message.
	KindMessage Kind = "message"
)

// GroupKey identifies one grouped-mention lookup: an entity kind plus the
// entity id. The viewer scope is not part of the key; it comes from the
// request context, which is fixed for the lifetime of a per-request loader.
type GroupKey struct {
	Kind Kind
	ID   uuid.UUID
}

// MessageKey builds a GroupKey for a top-level message.
func MessageKey(messageID uuid.UUID) GroupKey {
	return GroupKey{Kind: KindMessage, ID: messageID}
}

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type mentionRepo interface {
	GroupActiveForAccountByMessages(ctx context.Context, accountID uuid.UUID, messageIDs []uuid.UUID) ([]domain.MentionGroup, error)
}

type memberRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Member, error)
}

// Repos holds all repositories required by loaders.
type Repos struct {
	Mention mentionRepo
	Member  memberRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request loader instances.
// ---------------------------------------------------------------------------

// Loaders contains the per-request loaders. Created per-request via NewLoaders
// (loaders cache results within a single request).
type Loaders struct {
	MentionGroups *dataloader.Loader[GroupKey, []domain.MentionGroup]
	MemberByID    *dataloader.Loader[uuid.UUID, *domain.Member]
}

// NewLoaders creates a new set of loaders backed by the given repositories.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		MentionGroups: dataloader.NewBatchedLoader(
			newMentionGroupsBatchFn(repos.Mention),
			dataloader.WithWait[GroupKey, []domain.MentionGroup](wait),
			dataloader.WithBatchCapacity[GroupKey, []domain.MentionGroup](maxBatch),
		),
		MemberByID: dataloader.NewBatchedLoader(
			newMembersBatchFn(repos.Member),
			dataloader.WithWait[uuid.UUID, *domain.Member](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.Member](maxBatch),
		),
	}
}

// ---------------------------------------------------------------------------
// Batch functions
// ---------------------------------------------------------------------------

// newMentionGroupsBatchFn batches grouped-mention lookups for the viewer.
// An unauthenticated context is a contract violation by the caller, not a
// data condition, so every key in the batch fails with ErrUnauthorized.
func newMentionGroupsBatchFn(repo mentionRepo) dataloader.BatchFunc[GroupKey, []domain.MentionGroup] {
	return func(ctx context.Context, keys []GroupKey) []*dataloader.Result[[]domain.MentionGroup] {
		accountID, ok := ctxutil.AccountIDFromCtx(ctx)
		if !ok {
			return errorResults[[]domain.MentionGroup](len(keys), domain.ErrUnauthorized)
		}

		messageIDs := make([]uuid.UUID, 0, len(keys))
		for _, key := range keys {
			if key.Kind == KindMessage {
				messageIDs = append(messageIDs, key.ID)
			}
		}

		var grouped map[uuid.UUID][]domain.MentionGroup
		if len(messageIDs) > 0 {
			groups, err := repo.GroupActiveForAccountByMessages(ctx, accountID, messageIDs)
			if err != nil {
				return errorResults[[]domain.MentionGroup](len(keys), err)
			}
			grouped = make(map[uuid.UUID][]domain.MentionGroup, len(keys))
			for _, g := range groups {
				grouped[g.MessageID] = append(grouped[g.MessageID], g)
			}
		}

		results := make([]*dataloader.Result[[]domain.MentionGroup], len(keys))
		for i, key := range keys {
			if key.Kind != KindMessage {
				results[i] = &dataloader.Result[[]domain.MentionGroup]{
					Error: fmt.Errorf("group key kind %q: %w", key.Kind, domain.ErrValidation),
				}
				continue
			}
			if v, ok := grouped[key.ID]; ok {
				results[i] = &dataloader.Result[[]domain.MentionGroup]{Data: v}
			} else {
				results[i] = &dataloader.Result[[]domain.MentionGroup]{Data: []domain.MentionGroup{}}
			}
		}
		return results
	}
}

func newMembersBatchFn(repo memberRepo) dataloader.BatchFunc[uuid.UUID, *domain.Member] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Member] {
		members, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Member](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Member, len(members))
		for i := range members {
			m := members[i] // copy to avoid aliasing
			byID[m.ID] = &m
		}

		results := make([]*dataloader.Result[*domain.Member], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Member]{Data: byID[key]}
		}
		return results
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
