package task

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/HungBoGo/hubogo-note/internal/model"
	"github.com/HungBoGo/hubogo-note/internal/priority"
)

type Handler struct {
	repo   Repo
	clock  priority.Clock
	policy priority.EscalationPolicy
	logger *log.Logger
}

func NewHandler(repo Repo, clock priority.Clock, policy priority.EscalationPolicy, logger *log.Logger) *Handler {
	if clock == nil {
		clock = priority.RealClock{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{repo: repo, clock: clock, policy: policy, logger: logger}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func parseBoolPtr(s string) *bool {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "1", "true", "yes":
		b := true
		return &b
	case "0", "false", "no":
		b := false
		return &b
	default:
		return nil
	}
}

// GET /api/tasks
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := ListFilter{
		Status:     q.Get("status"),
		CategoryID: q.Get("category"),
		Type:       q.Get("type"),
		LongTerm:   parseBoolPtr(q.Get("longTerm")),
	}
	ts, err := h.repo.List(filter)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ts)
}

// POST /api/tasks
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.Task
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	if strings.TrimSpace(in.Title) == "" {
		writeErr(w, http.StatusBadRequest, "title is required")
		return
	}
	if in.Amount < 0 {
		writeErr(w, http.StatusBadRequest, "amount must be non-negative")
		return
	}

	created, err := h.repo.Create(in)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GET /api/tasks/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.repo.Get(model.TaskID(r.PathValue("id")))
	if err != nil {
		h.repoErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// PATCH /api/tasks/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var p Patch
	if err := decodeJSON(r, &p); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	t, err := h.repo.Update(model.TaskID(r.PathValue("id")), p)
	if err != nil {
		h.repoErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// DELETE /api/tasks/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(model.TaskID(r.PathValue("id"))); err != nil {
		h.repoErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// POST /api/tasks/{id}/complete toggles completion.
func (h *Handler) ToggleComplete(w http.ResponseWriter, r *http.Request) {
	t, err := h.repo.Get(model.TaskID(r.PathValue("id")))
	if err != nil {
		h.repoErr(w, err)
		return
	}

	next := model.StatusCompleted
	if t.Completed() {
		next = model.StatusPending
	}
	updated, err := h.repo.Update(t.ID, Patch{Status: &next})
	if err != nil {
		h.repoErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// POST /api/tasks/{id}/paid toggles the paid flag.
func (h *Handler) TogglePaid(w http.ResponseWriter, r *http.Request) {
	t, err := h.repo.Get(model.TaskID(r.PathValue("id")))
	if err != nil {
		h.repoErr(w, err)
		return
	}

	paid := !t.IsPaid
	updated, err := h.repo.Update(t.ID, Patch{IsPaid: &paid})
	if err != nil {
		h.repoErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// POST /api/tasks/{id}/checkin records today's check-in. Checking in
// twice on the same day is a no-op.
func (h *Handler) Checkin(w http.ResponseWriter, r *http.Request) {
	t, err := h.repo.Get(model.TaskID(r.PathValue("id")))
	if err != nil {
		h.repoErr(w, err)
		return
	}
	if !t.IsLongTerm {
		writeErr(w, http.StatusBadRequest, "task is not long-term")
		return
	}

	patch, res := BuildCheckinUpdate(t, h.clock.Now())
	if !res.Counted {
		writeJSON(w, http.StatusOK, map[string]any{"task": t, "counted": false})
		return
	}

	updated, err := h.repo.Update(t.ID, patch)
	if err != nil {
		h.repoErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"task": updated, "counted": true})
}

// GET /api/tasks/unchecked lists pending long-term tasks without a
// check-in today.
func (h *Handler) Unchecked(w http.ResponseWriter, r *http.Request) {
	ts, err := h.repo.List(ListFilter{Status: "pending"})
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, UncheckedLongTerm(ts, h.clock.Now()))
}

// POST /api/tasks/escalate runs the unattended-priority sweep.
func (h *Handler) Escalate(w http.ResponseWriter, r *http.Request) {
	upgraded, err := EscalateUnattended(h.repo, h.policy, h.clock.Now())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.logger.Printf("escalation sweep upgraded %d tasks", len(upgraded))
	writeJSON(w, http.StatusOK, map[string]any{"upgraded": upgraded, "count": len(upgraded)})
}

func (h *Handler) repoErr(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		writeErr(w, http.StatusNotFound, err.Error())
		return
	}
	writeErr(w, http.StatusInternalServerError, err.Error())
}
