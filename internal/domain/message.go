package domain

import (
	"time"

	"github.com/google/uuid"
)

// Space is the membership scope (workspace) messages belong to. Handles are
// only meaningful within one space.
type Space struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Account is a person's global identity, independent of any space.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Member is one person's membership record within one space. The handle is
// the space-local identifier used in @mentions; comparison is
// case-insensitive. An account has at most one member per space.
type Member struct {
	ID          uuid.UUID `json:"id"`
	SpaceID     uuid.UUID `json:"space_id"`
	AccountID   uuid.UUID `json:"account_id"`
	Handle      string    `json:"handle"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Message is a top-level message in a space.
type Message struct {
	ID        uuid.UUID `json:"id"`
	SpaceID   uuid.UUID `json:"space_id"`
	AuthorID  uuid.UUID `json:"author_id"` // member identity of the author
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Reply is a threaded reply to a message. Its author is a member of the
// message's space.
type Reply struct {
	ID        uuid.UUID `json:"id"`
	MessageID uuid.UUID `json:"message_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
