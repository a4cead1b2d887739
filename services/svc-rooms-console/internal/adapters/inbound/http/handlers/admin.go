package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/console"
	"github.com/go-chi/chi/v5"
)

type (
	SessionsResponse struct {
		Count    int                   `json:"count"`
		Sessions []console.SessionInfo `json:"sessions"`
	}

	PurgeResponse struct {
		Purged int `json:"purged"`
	}

	StatusResponse struct {
		Status     string `json:"status"`
		Uptime     string `json:"uptime"`
		GoVersion  string `json:"goVersion"`
		Goroutines int    `json:"goroutines"`
		Sessions   int    `json:"sessions"`
	}

	// AdminHandler serves operator endpoints on the internal listener only.
	AdminHandler struct {
		sessions  *console.Sessions
		startTime time.Time
	}
)

func NewAdminHandler(sessions *console.Sessions) *AdminHandler {
	return &AdminHandler{
		sessions:  sessions,
		startTime: time.Now().UTC(),
	}
}

func (h *AdminHandler) Status(w http.ResponseWriter, _ *http.Request) {
	writeJSONResponse(w, http.StatusOK, StatusResponse{
		Status:     "ok",
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
		Sessions:   h.sessions.Len(),
	})
}

func (h *AdminHandler) ListSessions(w http.ResponseWriter, _ *http.Request) {
	infos := h.sessions.List()

	writeJSONResponse(w, http.StatusOK, SessionsResponse{Count: len(infos), Sessions: infos})
}

func (h *AdminHandler) PurgeSessions(w http.ResponseWriter, _ *http.Request) {
	writeJSONResponse(w, http.StatusOK, PurgeResponse{Purged: h.sessions.Purge()})
}

func (h *AdminHandler) RemoveSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	if !h.sessions.Remove(id) {
		writeErrorResponse(w, http.StatusNotFound, codeNotFound, "session not found")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
