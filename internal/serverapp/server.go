package serverapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/HungBoGo/hubogo-note/internal/category"
	"github.com/HungBoGo/hubogo-note/internal/config"
	"github.com/HungBoGo/hubogo-note/internal/httpmw"
	"github.com/HungBoGo/hubogo-note/internal/model"
	"github.com/HungBoGo/hubogo-note/internal/ops"
	"github.com/HungBoGo/hubogo-note/internal/priority"
	"github.com/HungBoGo/hubogo-note/internal/server"
	"github.com/HungBoGo/hubogo-note/internal/settings"
	"github.com/HungBoGo/hubogo-note/internal/task"
)

type Options struct {
	Config *config.Config
	Clock  priority.Clock
	Logger *log.Logger
}

// NewHandler wires the repositories, engine views and middleware into a
// single http.Handler.
func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Clock == nil {
		opts.Clock = priority.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	dataDir := strings.TrimSpace(opts.Config.Data.Dir)
	if dataDir == "" {
		dataDir = "data"
	}

	taskRepo, err := task.NewFileRepo(dataDir, opts.Logger)
	if err != nil {
		return nil, err
	}
	categoryRepo, err := category.NewFileRepo(dataDir)
	if err != nil {
		return nil, err
	}
	settingsStore, err := settings.NewFileStore(dataDir)
	if err != nil {
		return nil, err
	}

	policy := priority.EscalationPolicy{
		UrgentAfterDays:     opts.Config.Escalation.UrgentAfterDays,
		VeryUrgentAfterDays: opts.Config.Escalation.VeryUrgentAfterDays,
	}

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":      true,
			"service": "hubogo-note",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	taskHandler := task.NewHandler(taskRepo, opts.Clock, policy, opts.Logger)
	server.Handle(mux, rr, "GET /api/tasks", "list tasks with optional filters", taskHandler.List)
	server.Handle(mux, rr, "POST /api/tasks", "create a task", taskHandler.Create)
	server.Handle(mux, rr, "GET /api/tasks/unchecked", "pending long-term tasks without a check-in today", taskHandler.Unchecked)
	server.Handle(mux, rr, "POST /api/tasks/escalate", "run the unattended-priority sweep", taskHandler.Escalate)
	server.Handle(mux, rr, "GET /api/tasks/{id}", "get one task", taskHandler.Get)
	server.Handle(mux, rr, "PATCH /api/tasks/{id}", "partially update a task", taskHandler.Update)
	server.Handle(mux, rr, "DELETE /api/tasks/{id}", "delete a task", taskHandler.Delete)
	server.Handle(mux, rr, "POST /api/tasks/{id}/complete", "toggle completion", taskHandler.ToggleComplete)
	server.Handle(mux, rr, "POST /api/tasks/{id}/paid", "toggle the paid flag", taskHandler.TogglePaid)
	server.Handle(mux, rr, "POST /api/tasks/{id}/checkin", "record today's check-in", taskHandler.Checkin)

	categoryHandler := category.NewHandler(categoryRepo)
	server.Handle(mux, rr, "GET /api/categories", "list categories", categoryHandler.List)
	server.Handle(mux, rr, "POST /api/categories", "create a category", categoryHandler.Create)
	server.Handle(mux, rr, "PATCH /api/categories/{id}", "update a category", categoryHandler.Update)
	server.Handle(mux, rr, "DELETE /api/categories/{id}", "delete a category", categoryHandler.Delete)

	settingsHandler := settings.NewHandler(settingsStore)
	server.Handle(mux, rr, "GET /api/settings/weights", "current priority weights", settingsHandler.GetWeights)
	server.Handle(mux, rr, "PUT /api/settings/weights", "update priority weights", settingsHandler.SetWeights)

	priorityHandler := priority.NewHandler(
		taskSource{taskRepo},
		categorySource{categoryRepo},
		settingsStore,
		opts.Clock,
		opts.Logger,
	)
	server.Handle(mux, rr, "GET /api/priority/sorted", "full task set in priority order", priorityHandler.Sorted)
	server.Handle(mux, rr, "GET /api/priority/today-focus", "today's focus buckets", priorityHandler.TodayFocusView)
	server.Handle(mux, rr, "GET /api/priority/by-type", "income vs investment buckets", priorityHandler.ByType)
	server.Handle(mux, rr, "GET /api/priority/banners", "summary banners", priorityHandler.Banners)
	server.Handle(mux, rr, "GET /api/priority/advice", "smart advice", priorityHandler.Advice)
	server.Handle(mux, rr, "GET /api/priority/stats", "period statistics snapshot", priorityHandler.Stats)

	ex := &exportHandler{tasks: taskRepo, categories: categoryRepo, clock: opts.Clock}
	server.Handle(mux, rr, "GET /api/export", "export tasks and categories", ex.Export)
	server.Handle(mux, rr, "POST /api/import", "import tasks and categories", ex.Import)

	mux.HandleFunc("GET /api/routes", rr.DocsHandler())

	return httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
		httpmw.WithAccessLog(opts.Logger),
	), nil
}

type taskSource struct{ repo task.Repo }

func (s taskSource) AllTasks() ([]model.Task, error) {
	return s.repo.List(task.ListFilter{})
}

type categorySource struct{ repo category.Repo }

func (s categorySource) AllCategories() ([]model.Category, error) {
	return s.repo.List()
}

type exportHandler struct {
	tasks      *task.FileRepo
	categories *category.FileRepo
	clock      priority.Clock
}

func (h *exportHandler) Export(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.List(task.ListFilter{})
	if err != nil {
		httpError(w, err)
		return
	}
	categories, err := h.categories.List()
	if err != nil {
		httpError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(ops.BuildExport(tasks, categories, h.clock.Now()))
}

func (h *exportHandler) Import(w http.ResponseWriter, r *http.Request) {
	var ex ops.Export
	if err := json.NewDecoder(r.Body).Decode(&ex); err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "invalid json: " + err.Error()})
		return
	}

	if ex.Tasks != nil {
		if err := h.tasks.ReplaceAll(ex.Tasks); err != nil {
			httpError(w, err)
			return
		}
	}
	if ex.Categories != nil {
		if err := h.categories.ReplaceAll(ex.Categories); err != nil {
			httpError(w, err)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"tasks":      len(ex.Tasks),
		"categories": len(ex.Categories),
	})
}

func httpError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": err.Error()})
}
