package priority

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
	"github.com/HungBoGo/hubogo-note/internal/stats"
)

// TaskSource supplies the full task set for an evaluation pass.
type TaskSource interface {
	AllTasks() ([]model.Task, error)
}

// CategorySource supplies categories for stats snapshots.
type CategorySource interface {
	AllCategories() ([]model.Category, error)
}

// WeightsSource supplies the persisted scoring weights.
type WeightsSource interface {
	Weights() (Weights, error)
}

type Handler struct {
	tasks      TaskSource
	categories CategorySource
	weights    WeightsSource
	clock      Clock
	logger     *log.Logger
}

func NewHandler(tasks TaskSource, categories CategorySource, weights WeightsSource, clock Clock, logger *log.Logger) *Handler {
	if clock == nil {
		clock = RealClock{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{tasks: tasks, categories: categories, weights: weights, clock: clock, logger: logger}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

// pass captures one evaluation pass: the task set, weights and a single
// reference time shared by every computation in the request.
func (h *Handler) pass(w http.ResponseWriter) ([]model.Task, Weights, bool) {
	tasks, err := h.tasks.AllTasks()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return nil, Weights{}, false
	}
	weights, err := h.weights.Weights()
	if err != nil {
		h.logger.Printf("weights unavailable, using defaults: %v", err)
		weights = DefaultWeights()
	}
	return tasks, weights, true
}

// GET /api/priority/sorted
func (h *Handler) Sorted(w http.ResponseWriter, r *http.Request) {
	tasks, weights, ok := h.pass(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, SortByPriority(tasks, weights, h.clock.Now()))
}

// GET /api/priority/today-focus
func (h *Handler) TodayFocusView(w http.ResponseWriter, r *http.Request) {
	tasks, weights, ok := h.pass(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, GetTodayFocus(tasks, weights, h.clock.Now()))
}

// GET /api/priority/by-type
func (h *Handler) ByType(w http.ResponseWriter, r *http.Request) {
	tasks, weights, ok := h.pass(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, CategorizeByType(tasks, weights, h.clock.Now()))
}

// GET /api/priority/banners
func (h *Handler) Banners(w http.ResponseWriter, r *http.Request) {
	tasks, _, ok := h.pass(w)
	if !ok {
		return
	}
	now := h.clock.Now()
	snap := h.snapshot(tasks, now)
	writeJSON(w, http.StatusOK, GenerateBanners(snap, tasks, now))
}

// GET /api/priority/advice
func (h *Handler) Advice(w http.ResponseWriter, r *http.Request) {
	tasks, _, ok := h.pass(w)
	if !ok {
		return
	}
	now := h.clock.Now()
	snap := h.snapshot(tasks, now)
	writeJSON(w, http.StatusOK, GetSmartAdvice(tasks, snap, now))
}

// GET /api/priority/stats?period=today|week|month
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	tasks, _, ok := h.pass(w)
	if !ok {
		return
	}

	categories := h.allCategories()
	now := h.clock.Now()
	switch r.URL.Query().Get("period") {
	case "today":
		writeJSON(w, http.StatusOK, stats.Today(tasks, categories, now))
	case "week":
		writeJSON(w, http.StatusOK, stats.Week(tasks, categories, now))
	default:
		writeJSON(w, http.StatusOK, stats.Month(tasks, categories, now))
	}
}

func (h *Handler) snapshot(tasks []model.Task, now time.Time) stats.Snapshot {
	return stats.Month(tasks, h.allCategories(), now)
}

func (h *Handler) allCategories() []model.Category {
	if h.categories == nil {
		return nil
	}
	cs, err := h.categories.AllCategories()
	if err != nil {
		h.logger.Printf("categories unavailable: %v", err)
		return nil
	}
	return cs
}
