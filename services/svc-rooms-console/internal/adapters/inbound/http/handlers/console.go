package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/console"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
	"github.com/go-chi/chi/v5"
)

const (
	RoomsPath = "/rooms"

	pageHeading    = "Rooms Table Details"
	pageSubheading = "You can check all details"
	addRoomLabel   = "Add New Room"
	emptyMessage   = "No Rooms Found"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

type (
	// StateResponse is what the page renders, in JSON.
	StateResponse struct {
		Table         console.Table        `json:"table"`
		Dialog        console.DeleteDialog `json:"dialog"`
		Notifications []model.Notification `json:"notifications"`
		AddRoomPath   string               `json:"addRoomPath"`
	}

	NavigationResponse struct {
		Navigation console.Navigation `json:"navigation"`
	}

	pageView struct {
		Heading      string
		Subheading   string
		AddRoomLabel string
		EmptyMessage string
		DialogTitle  string
		DialogBody   string
		State        StateResponse
	}

	ConsoleHandler struct {
		templates *template.Template
		opts      console.Options
		logger    logger.Logger
	}
)

func NewConsoleHandler(opts console.Options, log logger.Logger) (*ConsoleHandler, error) {
	tmpl, err := template.New("rooms").Funcs(template.FuncMap{
		"add": func(a, b uint) uint { return a + b },
		"sub": func(a, b uint) uint { return a - b },
		"seq": func(n int) []int { return make([]int, n) },
	}).ParseFS(templateFS, "templates/rooms.gohtml")
	if err != nil {
		return nil, err
	}

	return &ConsoleHandler{
		templates: tmpl,
		opts:      opts,
		logger:    log.Component("console-http"),
	}, nil
}

// Page renders the rooms table, loading the first page on the first visit.
func (h *ConsoleHandler) Page(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	session.List.Mount(r.Context())

	view := pageView{
		Heading:      pageHeading,
		Subheading:   pageSubheading,
		AddRoomLabel: addRoomLabel,
		EmptyMessage: emptyMessage,
		DialogTitle:  console.DeleteDialogTitle,
		DialogBody:   console.DeleteDialogBody,
		State:        h.state(session),
	}

	w.Header().Set(contentTypeHeader, textHTML)
	w.Header().Set("Cache-Control", "no-store")

	if err := h.templates.ExecuteTemplate(w, "rooms.gohtml", view); err != nil {
		h.logger.WithContext(r.Context()).Error().Err(err).Msg("rendering rooms page failed")
	}
}

func (h *ConsoleHandler) State(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	session.List.Mount(r.Context())

	writeJSONResponse(w, http.StatusOK, h.state(session))
}

func (h *ConsoleHandler) SetPage(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	page, err := strconv.ParseUint(r.FormValue("page"), 10, 0)
	if err != nil || page > uint64(model.MaxPage) {
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidPage, fmt.Sprintf("page must be an integer between 0 and %d", model.MaxPage))

		return
	}

	session.List.SetPage(r.Context(), uint(page))
	h.respond(w, r, session)
}

func (h *ConsoleHandler) SetRowsPerPage(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	size, err := strconv.ParseUint(r.FormValue("size"), 10, 0)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidPageSize, "size must be a positive integer")

		return
	}

	if err := session.List.SetRowsPerPage(r.Context(), uint(size)); err != nil {
		writeConsoleError(w, err)

		return
	}

	h.respond(w, r, session)
}

func (h *ConsoleHandler) Reload(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	session.List.Reload(r.Context())
	h.respond(w, r, session)
}

func (h *ConsoleHandler) OpenMenu(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	id, err := model.ParseRoomID(chi.URLParam(r, "roomID"))
	if err != nil {
		writeConsoleError(w, err)

		return
	}

	if err := session.List.OpenMenu(id); err != nil {
		writeConsoleError(w, err)

		return
	}

	h.respond(w, r, session)
}

func (h *ConsoleHandler) CloseMenu(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	session.List.CloseMenu()
	h.respond(w, r, session)
}

// SelectAction runs a row menu action. Edit keeps the room for the editor as
// read-once session state and sends the operator there.
func (h *ConsoleHandler) SelectAction(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	action, err := console.ParseAction(chi.URLParam(r, "action"))
	if err != nil {
		writeConsoleError(w, err)

		return
	}

	nav, err := session.List.SelectAction(r.Context(), action)
	if err != nil {
		writeConsoleError(w, err)

		return
	}

	if nav == nil {
		h.respond(w, r, session)

		return
	}

	session.StoreNavigation(nav.State.RoomData.ID, *nav)

	if wantsJSON(r) {
		writeJSONResponse(w, http.StatusOK, NavigationResponse{Navigation: *nav})

		return
	}

	http.Redirect(w, r, nav.Path, http.StatusSeeOther)
}

func (h *ConsoleHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := session.List.ConfirmDelete(r.Context()); err != nil {
		writeConsoleError(w, err)

		return
	}

	h.respond(w, r, session)
}

func (h *ConsoleHandler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	session.List.CloseDelete()
	h.respond(w, r, session)
}

// EditState hands the editor the room it was opened for, once.
func (h *ConsoleHandler) EditState(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	id, err := model.ParseRoomID(chi.URLParam(r, "roomID"))
	if err != nil {
		writeConsoleError(w, err)

		return
	}

	nav, found := session.TakeNavigation(id)
	if !found {
		writeErrorResponse(w, http.StatusNotFound, codeNotFound, "no edit state for room "+id.String())

		return
	}

	writeJSONResponse(w, http.StatusOK, nav.State)
}

func (h *ConsoleHandler) session(w http.ResponseWriter, r *http.Request) (*console.Session, bool) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusInternalServerError, codeNoSession, "console session is missing")

		return nil, false
	}

	return session, true
}

func (h *ConsoleHandler) state(session *console.Session) StateResponse {
	snapshot := session.List.Snapshot()

	notifications := session.Toasts.Drain()
	if notifications == nil {
		notifications = []model.Notification{}
	}

	return StateResponse{
		Table:         console.BuildTable(snapshot),
		Dialog:        snapshot.Dialog,
		Notifications: notifications,
		AddRoomPath:   h.opts.AddRoomPath,
	}
}

// respond finishes a console mutation: the snapshot for JSON clients, a
// redirect back to the page for forms.
func (h *ConsoleHandler) respond(w http.ResponseWriter, r *http.Request, session *console.Session) {
	if wantsJSON(r) {
		writeJSONResponse(w, http.StatusOK, h.state(session))

		return
	}

	http.Redirect(w, r, RoomsPath, http.StatusSeeOther)
}
