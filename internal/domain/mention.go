package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mention is one persisted occurrence of one handle being mentioned in one
// message or reply. Rows are append-only: the only field that ever changes
// after insert is DismissedAt, which moves from nil to a timestamp exactly
// once and never back.
type Mention struct {
	ID          uuid.UUID
	SpaceID     uuid.UUID
	MessageID   uuid.UUID
	ReplyID     *uuid.UUID // nil when the mention occurred in the message body
	MentionerID uuid.UUID
	MentionedID uuid.UUID
	OccurredAt  time.Time
	DismissedAt *time.Time
}

// Active reports whether the mention has not been dismissed yet.
func (m Mention) Active() bool {
	return m.DismissedAt == nil
}

// MentionGroup is a read-time aggregate over the active mentions sharing one
// (mentioned member, message) pair. It has no storage of its own and
// disappears once every contributing mention is dismissed.
type MentionGroup struct {
	MessageID      uuid.UUID
	MentionedID    uuid.UUID
	ReplyIDs       []uuid.UUID // distinct, root-message mentions contribute nothing
	MentionerIDs   []uuid.UUID // distinct authors across contributing mentions
	LastOccurredAt time.Time
}

// MentionScopeKind tags the identity a grouped-mention query is scoped by.
type MentionScopeKind int

const (
	// MentionScopeMember scopes directly by a membership record.
	MentionScopeMember MentionScopeKind = iota + 1
	// MentionScopeAccount scopes by the owning account, joining through the
	// membership directory (one member per space and account).
	MentionScopeAccount
)

// MentionScope selects whose grouped mentions a query returns. Both variants
// compile to the same aggregation; the account variant resolves to member
// identities via the membership directory first.
type MentionScope struct {
	Kind      MentionScopeKind
	MemberID  uuid.UUID
	AccountID uuid.UUID
}

// MentionsOfMember builds a member-scoped MentionScope.
func MentionsOfMember(memberID uuid.UUID) MentionScope {
	return MentionScope{Kind: MentionScopeMember, MemberID: memberID}
}

// MentionsOfAccount builds an account-scoped MentionScope.
func MentionsOfAccount(accountID uuid.UUID) MentionScope {
	return MentionScope{Kind: MentionScopeAccount, AccountID: accountID}
}

// MentionsDismissed is the logical event emitted after a bulk dismissal,
// intended for real-time fan-out to subscribers of the message's space.
// It is emitted exactly once per dismissal call, even when no rows matched.
type MentionsDismissed struct {
	MessageID   uuid.UUID `json:"message_id"`
	Message     Message   `json:"message"`
	MemberID    uuid.UUID `json:"member_id"`
	DismissedAt time.Time `json:"dismissed_at"`
}
