// Package web serves the agenda builder as a single-page HTML form.
//
// Every browser gets its own session (a cookie holding a UUID) backed
// by the session store; the meeting settings of each session are kept
// in memory next to it.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Mr-Dark-debug/agenda/internal/agenda"
	"github.com/Mr-Dark-debug/agenda/internal/database"
	"github.com/Mr-Dark-debug/agenda/internal/export"
	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

//go:embed templates/index.html
var templatesFS embed.FS

// DefaultSessionTTL is how long a session survives without requests.
const DefaultSessionTTL = 12 * time.Hour

// Options configures a Server.
type Options struct {
	Store database.Store
	// Defaults is the meeting a new session starts from.
	Defaults agenda.Meeting
	Logger   *zap.Logger
	// SessionTTL defaults to DefaultSessionTTL.
	SessionTTL time.Duration
}

// Server wires the HTTP handlers to the session store.
type Server struct {
	store    database.Store
	logger   *zap.Logger
	defaults agenda.Meeting
	ttl      time.Duration
	now      func() time.Time
	tmpl     *template.Template

	mu       sync.Mutex
	meetings map[string]agenda.Meeting
}

// NewServer creates a server over opts.Store.
func NewServer(opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	tmpl, err := template.New("index.html").
		Funcs(template.FuncMap{"clock": timeutil.FormatClock}).
		ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Server{
		store:    opts.Store,
		logger:   logger,
		defaults: opts.Defaults,
		ttl:      ttl,
		now:      time.Now,
		tmpl:     tmpl,
		meetings: make(map[string]agenda.Meeting),
	}, nil
}

// Routes returns the chi router with middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.sessionMiddleware)

		r.Get("/", s.handleIndex)
		r.Post("/items", s.handleAddItem)
		r.Post("/clear", s.handleClear)
		r.Post("/meeting", s.handleMeeting)
		r.Get("/agenda.csv", s.handleCSV)
		r.Get("/agenda.ics", s.handleICS)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)))
	})
}

// ────────────────────────────────────────────────────────────
// Handlers
// ────────────────────────────────────────────────────────────

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "")
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(r.PostForm.Get("duration")))
	if err != nil {
		s.render(w, r, http.StatusUnprocessableEntity, "Duration must be a whole number of minutes.")
		return
	}

	list := s.list(r)
	item, err := agenda.Submit(list, r.PostForm.Get("topic"), r.PostForm.Get("owner"), minutes)
	switch {
	case errors.Is(err, agenda.ErrEmptyTopic):
		s.render(w, r, http.StatusUnprocessableEntity, "Please enter a topic.")
		return
	case errors.Is(err, agenda.ErrInvalidDuration):
		s.render(w, r, http.StatusUnprocessableEntity,
			fmt.Sprintf("Duration must be between %d and %d minutes.", agenda.MinDuration, agenda.MaxDuration))
		return
	case err != nil:
		s.fail(w, "adding item", err)
		return
	}

	s.logger.Info("agenda item added",
		zap.String("session", list.ID()),
		zap.String("topic", item.Topic),
		zap.Int("duration_min", item.DurationMin))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	list := s.list(r)
	if err := list.Clear(); err != nil {
		s.fail(w, "clearing agenda", err)
		return
	}
	s.logger.Info("agenda cleared", zap.String("session", list.ID()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleMeeting(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	id := s.sessionID(r)
	m := s.meeting(id)

	date, err := timeutil.ParseDate(r.PostForm.Get("date"), m.Date.Location())
	if err != nil {
		s.render(w, r, http.StatusUnprocessableEntity, "Invalid date.")
		return
	}
	clock, err := timeutil.ParseClock(r.PostForm.Get("start"))
	if err != nil {
		s.render(w, r, http.StatusUnprocessableEntity, "Invalid start time, use HH:MM.")
		return
	}

	m.Title = strings.TrimSpace(r.PostForm.Get("title"))
	m.Date = date
	m.StartTime = clock

	s.mu.Lock()
	s.meetings[id] = m
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleCSV(w http.ResponseWriter, r *http.Request) {
	plan, err := s.plan(r)
	if err != nil {
		s.fail(w, "building plan", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="agenda.csv"`)
	if err := export.WriteCSV(w, plan.Rows); err != nil {
		s.logger.Error("csv export failed", zap.Error(err))
	}
}

func (s *Server) handleICS(w http.ResponseWriter, r *http.Request) {
	plan, err := s.plan(r)
	if err != nil {
		s.fail(w, "building plan", err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="agenda.ics"`)
	if err := export.WriteICS(w, plan, s.now()); err != nil {
		s.logger.Error("ics export failed", zap.Error(err))
	}
}

// ────────────────────────────────────────────────────────────
// Rendering
// ────────────────────────────────────────────────────────────

type pageData struct {
	Plan            agenda.Plan
	Columns         []string
	Chart           *chart
	Summary         string
	DateValue       string
	Warning         string
	MinDuration     int
	MaxDuration     int
	DefaultDuration int
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, warning string) {
	plan, err := s.plan(r)
	if err != nil {
		s.fail(w, "building plan", err)
		return
	}

	data := pageData{
		Plan:            plan,
		Columns:         export.Columns,
		Chart:           buildChart(plan),
		Summary:         export.Summary(plan),
		DateValue:       plan.Meeting.Date.Format(timeutil.ISODateLayout),
		Warning:         warning,
		MinDuration:     agenda.MinDuration,
		MaxDuration:     agenda.MaxDuration,
		DefaultDuration: agenda.DefaultDuration,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.Execute(w, data); err != nil {
		s.logger.Error("rendering page failed", zap.Error(err))
	}
}

func (s *Server) fail(w http.ResponseWriter, what string, err error) {
	s.logger.Error(what+" failed", zap.Error(err))
	http.Error(w, what+" failed", http.StatusInternalServerError)
}

// ────────────────────────────────────────────────────────────
// Session helpers
// ────────────────────────────────────────────────────────────

func (s *Server) sessionID(r *http.Request) string {
	id, _ := SessionFromContext(r.Context())
	return id
}

func (s *Server) list(r *http.Request) *database.SessionList {
	return database.NewSessionList(s.store, s.sessionID(r))
}

func (s *Server) meeting(id string) agenda.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.meetings[id]; ok {
		return m
	}
	return s.defaults
}

func (s *Server) plan(r *http.Request) (agenda.Plan, error) {
	id := s.sessionID(r)
	return agenda.LoadPlan(s.meeting(id), s.list(r))
}

// ────────────────────────────────────────────────────────────
// Expiry
// ────────────────────────────────────────────────────────────

// ExpireIdle deletes sessions without a request since now minus the
// session TTL and forgets their meeting settings.
func (s *Server) ExpireIdle(now time.Time) (int, error) {
	ids, err := s.store.ExpireSessions(now.Add(-s.ttl))
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	for _, id := range ids {
		delete(s.meetings, id)
	}
	s.mu.Unlock()

	return len(ids), nil
}

// RunSweeper calls ExpireIdle every interval until ctx is done.
func (s *Server) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.ExpireIdle(s.now())
			if err != nil {
				s.logger.Error("session sweep failed", zap.Error(err))
				continue
			}
			if n > 0 {
				s.logger.Info("expired idle sessions", zap.Int("count", n))
			}
		}
	}
}
