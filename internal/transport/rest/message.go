package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
	"github.com/heartmarshall/spacetalk-backend/internal/service/message"
	dl "github.com/heartmarshall/spacetalk-backend/internal/transport/dataloader"
)

// messageService defines the minimal interface needed by MessageHandler.
type messageService interface {
	Create(ctx context.Context, input message.CreateInput) (message.CreateResult, error)
	CreateReply(ctx context.Context, input message.CreateReplyInput) (message.CreateReplyResult, error)
	List(ctx context.Context, input message.ListInput) ([]domain.Message, error)
}

// MessageHandler serves message REST endpoints.
type MessageHandler struct {
	svc messageService
	log *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(svc messageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, log: logger.With("handler", "message")}
}

type createMessageRequest struct {
	SpaceID string `json:"spaceId"`
	Body    string `json:"body"`
}

type createReplyRequest struct {
	Body string `json:"body"`
}

type messageResponse struct {
	ID           string    `json:"id"`
	SpaceID      string    `json:"spaceId"`
	AuthorID     string    `json:"authorId"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"createdAt"`
	MentionedIDs []string  `json:"mentionedIds,omitempty"`
}

type replyResponse struct {
	ID           string    `json:"id"`
	MessageID    string    `json:"messageId"`
	AuthorID     string    `json:"authorId"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"createdAt"`
	MentionedIDs []string  `json:"mentionedIds,omitempty"`
}

type messageWithMentionsResponse struct {
	messageResponse
	Mentions []mentionGroupResponse `json:"mentions"`
}

// Create handles POST /api/v1/messages.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	spaceID, err := uuid.Parse(req.SpaceID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid spaceId")
		return
	}

	result, err := h.svc.Create(r.Context(), message.CreateInput{
		SpaceID: spaceID,
		Body:    req.Body,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(result.Message, result.MentionedIDs))
}

// CreateReply handles POST /api/v1/messages/{messageID}/replies.
func (h *MessageHandler) CreateReply(w http.ResponseWriter, r *http.Request) {
	messageID, err := uuid.Parse(r.PathValue("messageID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	var req createReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.CreateReply(r.Context(), message.CreateReplyInput{
		MessageID: messageID,
		Body:      req.Body,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReplyResponse(result.Reply, result.MentionedIDs))
}

// List handles GET /api/v1/spaces/{spaceID}/messages. Each returned message
// carries the viewer's grouped mentions, fetched through the per-request
// loader so the whole page costs one aggregation query.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	spaceID, err := uuid.Parse(r.PathValue("spaceID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	limit, offset := parsePagination(r)

	messages, err := h.svc.List(r.Context(), message.ListInput{
		SpaceID: spaceID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	loaders := dl.FromContext(r.Context())

	thunks := make([]func() ([]domain.MentionGroup, error), len(messages))
	for i, msg := range messages {
		thunks[i] = loaders.MentionGroups.Load(r.Context(), dl.MessageKey(msg.ID))
	}

	out := make([]messageWithMentionsResponse, len(messages))
	for i, msg := range messages {
		groups, err := thunks[i]()
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		out[i] = messageWithMentionsResponse{
			messageResponse: toMessageResponse(msg, nil),
			Mentions:        toMentionGroupResponses(groups),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"messages": out})
}

func parsePagination(r *http.Request) (limit, offset int) {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	return limit, offset
}

func toMessageResponse(msg domain.Message, mentionedIDs []uuid.UUID) messageResponse {
	return messageResponse{
		ID:           msg.ID.String(),
		SpaceID:      msg.SpaceID.String(),
		AuthorID:     msg.AuthorID.String(),
		Body:         msg.Body,
		CreatedAt:    msg.CreatedAt,
		MentionedIDs: uuidStrings(mentionedIDs),
	}
}

func toReplyResponse(reply domain.Reply, mentionedIDs []uuid.UUID) replyResponse {
	return replyResponse{
		ID:           reply.ID.String(),
		MessageID:    reply.MessageID.String(),
		AuthorID:     reply.AuthorID.String(),
		Body:         reply.Body,
		CreatedAt:    reply.CreatedAt,
		MentionedIDs: uuidStrings(mentionedIDs),
	}
}

func uuidStrings(ids []uuid.UUID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
