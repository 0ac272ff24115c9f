package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
	"github.com/heartmarshall/spacetalk-backend/internal/service/mention"
)

// mentionService defines the minimal interface needed by MentionHandler.
type mentionService interface {
	List(ctx context.Context, input mention.ListInput) ([]domain.Mention, error)
	GroupedInSpace(ctx context.Context, input mention.GroupedInSpaceInput) ([]domain.MentionGroup, error)
	GroupedForAccount(ctx context.Context) ([]domain.MentionGroup, error)
	Dismiss(ctx context.Context, input mention.DismissInput) (int, error)
}

// MentionHandler serves mention REST endpoints.
type MentionHandler struct {
	svc mentionService
	log *slog.Logger
}

// NewMentionHandler creates a MentionHandler.
func NewMentionHandler(svc mentionService, logger *slog.Logger) *MentionHandler {
	return &MentionHandler{svc: svc, log: logger.With("handler", "mention")}
}

type mentionResponse struct {
	ID          string    `json:"id"`
	SpaceID     string    `json:"spaceId"`
	MessageID   string    `json:"messageId"`
	ReplyID     *string   `json:"replyId,omitempty"`
	MentionerID string    `json:"mentionerId"`
	MentionedID string    `json:"mentionedId"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type mentionGroupResponse struct {
	MessageID      string    `json:"messageId"`
	MentionedID    string    `json:"mentionedId"`
	ReplyIDs       []string  `json:"replyIds"`
	MentionerIDs   []string  `json:"mentionerIds"`
	LastOccurredAt time.Time `json:"lastOccurredAt"`
}

type dismissResponse struct {
	Dismissed int `json:"dismissed"`
}

// List handles GET /api/v1/spaces/{spaceID}/mentions.
func (h *MentionHandler) List(w http.ResponseWriter, r *http.Request) {
	spaceID, err := uuid.Parse(r.PathValue("spaceID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	mentions, err := h.svc.List(r.Context(), mention.ListInput{SpaceID: spaceID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]mentionResponse, len(mentions))
	for i, m := range mentions {
		out[i] = toMentionResponse(m)
	}
	writeJSON(w, http.StatusOK, map[string]any{"mentions": out})
}

// GroupedInSpace handles GET /api/v1/spaces/{spaceID}/mentions/grouped.
func (h *MentionHandler) GroupedInSpace(w http.ResponseWriter, r *http.Request) {
	spaceID, err := uuid.Parse(r.PathValue("spaceID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	groups, err := h.svc.GroupedInSpace(r.Context(), mention.GroupedInSpaceInput{SpaceID: spaceID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"groups": toMentionGroupResponses(groups)})
}

// GroupedForAccount handles GET /api/v1/mentions/grouped. It spans every
// space the caller belongs to.
func (h *MentionHandler) GroupedForAccount(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.GroupedForAccount(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"groups": toMentionGroupResponses(groups)})
}

// Dismiss handles POST /api/v1/messages/{messageID}/mentions/dismiss.
func (h *MentionHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	messageID, err := uuid.Parse(r.PathValue("messageID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	dismissed, err := h.svc.Dismiss(r.Context(), mention.DismissInput{MessageID: messageID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, dismissResponse{Dismissed: dismissed})
}

func toMentionResponse(m domain.Mention) mentionResponse {
	resp := mentionResponse{
		ID:          m.ID.String(),
		SpaceID:     m.SpaceID.String(),
		MessageID:   m.MessageID.String(),
		MentionerID: m.MentionerID.String(),
		MentionedID: m.MentionedID.String(),
		OccurredAt:  m.OccurredAt,
	}
	if m.ReplyID != nil {
		s := m.ReplyID.String()
		resp.ReplyID = &s
	}
	return resp
}

func toMentionGroupResponses(groups []domain.MentionGroup) []mentionGroupResponse {
	out := make([]mentionGroupResponse, len(groups))
	for i, g := range groups {
		out[i] = mentionGroupResponse{
			MessageID:      g.MessageID.String(),
			MentionedID:    g.MentionedID.String(),
			ReplyIDs:       uuidStringsOrEmpty(g.ReplyIDs),
			MentionerIDs:   uuidStringsOrEmpty(g.MentionerIDs),
			LastOccurredAt: g.LastOccurredAt,
		}
	}
	return out
}

func uuidStringsOrEmpty(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
