package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Health  *HealthHandler
	Message *MessageHandler
	Mention *MentionHandler
}

// NewRouter builds the HTTP route table. Authentication and the per-request
// loaders are applied by middleware around the returned mux, not here.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/messages", h.Message.Create)
	mux.HandleFunc("POST /api/v1/messages/{messageID}/replies", h.Message.CreateReply)
	mux.HandleFunc("GET /api/v1/spaces/{spaceID}/messages", h.Message.List)

	mux.HandleFunc("GET /api/v1/spaces/{spaceID}/mentions", h.Mention.List)
	mux.HandleFunc("GET /api/v1/spaces/{spaceID}/mentions/grouped", h.Mention.GroupedInSpace)
	mux.HandleFunc("GET /api/v1/mentions/grouped", h.Mention.GroupedForAccount)
	mux.HandleFunc("POST /api/v1/messages/{messageID}/mentions/dismiss", h.Mention.Dismiss)

	return mux
}
