// Package web serves the Client View as an HTML page and pushes the final
// message to the browser over a WebSocket.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-fullstack/internal/platform/logging"
	"github.com/janisto/hello-fullstack/internal/platform/respond"
	"github.com/janisto/hello-fullstack/internal/service/message"
	"github.com/janisto/hello-fullstack/internal/view"
)

const writeWait = 10 * time.Second

// Handler wires the page and live-update routes.
type Handler struct {
	svc      message.Service
	sessions *Sessions
	upgrader websocket.Upgrader
}

// NewHandler returns a Handler that creates one view per page load.
func NewHandler(svc message.Service, sessions *Sessions) *Handler {
	if sessions == nil {
		sessions = NewSessions(DefaultSessionTTL)
	}
	return &Handler{
		svc:      svc,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Register mounts the routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.index)
	r.Get("/ws", h.live)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	v := view.New(h.svc)
	v.Mount(r.Context())

	snap := v.Snapshot()
	sessionID := ""
	if !snap.State.Terminal() {
		sessionID = h.sessions.Add(v)
	}
	templ.Handler(Page(sessionID, snap)).ServeHTTP(w, r)
}

func (h *Handler) live(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	v, ok := h.sessions.Take(id)
	if !ok {
		respond.WriteProblem(w, r, http.StatusNotFound, "session not found")
		return
	}
	ctx := applog.WithFields(r.Context(), zap.String("session", id))

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		applog.LogWarn(ctx, "websocket upgrade failed", zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	snap, err := v.Wait(ctx)
	if err != nil {
		applog.LogInfo(ctx, "client left before message arrived")
		return
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(snap); err != nil {
		applog.LogWarn(ctx, "failed to write update", zap.Error(err))
		return
	}
	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(writeWait)); err != nil {
		applog.LogWarn(ctx, "failed to write close", zap.Error(err))
	}
}
