// Package daemon provides the long-running background expense monitor service.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/pipeline"
	"github.com/theirongolddev/carpro/internal/store"
)

// Event types.
const (
	EventSnapshot    = "snapshot"
	EventDelta       = "expense_delta"
	EventAlertDigest = "alert_digest"
)

// Config controls the daemon runtime behavior.
type Config struct {
	Store          store.RecordStore
	DBPath         string
	Interval       time.Duration
	Addr           string
	EventsBuffer   int
	DigestSchedule string
	Logger         zerolog.Logger
	Now            func() time.Time
}

// Snapshot is a compact dashboard state for status/event payloads.
type Snapshot struct {
	At              time.Time `json:"at"`
	TotalExpenses   float64   `json:"total_expenses"`
	MonthlyExpenses float64   `json:"monthly_expenses"`
	Fuel            float64   `json:"fuel"`
	Maintenance     float64   `json:"maintenance"`
	Other           float64   `json:"other"`
	AvgKmPerLiter   float64   `json:"avg_km_per_liter"`
	CurrentOdometer float64   `json:"current_odometer"`
	Alerts          int       `json:"alerts"`
	Overdue         int       `json:"overdue"`
}

// Delta captures snapshot deltas between polls.
type Delta struct {
	TotalExpenses   float64 `json:"total_expenses"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	AvgKmPerLiter   float64 `json:"avg_km_per_liter"`
	CurrentOdometer float64 `json:"current_odometer"`
	Alerts          int     `json:"alerts"`
	Overdue         int     `json:"overdue"`
}

func (d Delta) isZero() bool {
	return d.TotalExpenses == 0 &&
		d.MonthlyExpenses == 0 &&
		d.AvgKmPerLiter == 0 &&
		d.CurrentOdometer == 0 &&
		d.Alerts == 0 &&
		d.Overdue == 0
}

// Event is emitted whenever the dashboard changes or a digest runs.
type Event struct {
	ID        int64                    `json:"id"`
	Type      string                   `json:"type"`
	Timestamp time.Time                `json:"timestamp"`
	Snapshot  Snapshot                 `json:"snapshot"`
	Delta     Delta                    `json:"delta"`
	Alerts    []model.MaintenanceAlert `json:"alerts,omitempty"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	DBPath          string    `json:"db_path,omitempty"`
	DigestSchedule  string    `json:"digest_schedule,omitempty"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg Config
	log zerolog.Logger

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	dashboard   model.Dashboard
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8731"
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Service{
		cfg:       cfg,
		log:       cfg.Logger.With().Str("component", "daemon").Logger(),
		startedAt: cfg.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Handler returns the HTTP API routes.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/dashboard", s.handleDashboard)
	mux.HandleFunc("/v1/alerts", s.handleAlerts)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)
	return mux
}

// Run starts HTTP endpoints, the digest schedule and polling until ctx is
// canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info().Str("addr", s.cfg.Addr).Dur("interval", s.cfg.Interval).Msg("daemon listening")

	digest, err := s.startDigest(ctx)
	if err != nil {
		_ = server.Close()
		return err
	}
	if digest != nil {
		defer digest.Stop()
	}

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.log.Info().Msg("daemon shutting down")
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce(ctx)
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

// startDigest schedules the maintenance-alert digest. An empty schedule
// disables it.
func (s *Service) startDigest(ctx context.Context) (*cron.Cron, error) {
	if s.cfg.DigestSchedule == "" {
		return nil, nil
	}
	c := cron.New()
	if _, err := c.AddFunc(s.cfg.DigestSchedule, func() { s.runDigest(ctx) }); err != nil {
		return nil, fmt.Errorf("scheduling alert digest %q: %w", s.cfg.DigestSchedule, err)
	}
	c.Start()
	s.log.Info().Str("schedule", s.cfg.DigestSchedule).Msg("alert digest scheduled")
	return c, nil
}

// runDigest refreshes the dashboard and publishes the current alerts, even
// when nothing changed since the last poll.
func (s *Service) runDigest(ctx context.Context) {
	if !s.pollOnce(ctx) {
		return
	}

	s.mu.Lock()
	snap := s.snapshot
	alerts := append([]model.MaintenanceAlert(nil), s.dashboard.Alerts...)
	s.nextEventID++
	ev := Event{
		ID:        s.nextEventID,
		Type:      EventAlertDigest,
		Timestamp: snap.At,
		Snapshot:  snap,
		Alerts:    alerts,
	}
	s.mu.Unlock()

	for _, a := range alerts {
		s.log.Warn().
			Str("service_type", a.ServiceType).
			Str("status", string(a.Status)).
			Msg(a.Message)
	}
	s.log.Info().Int("alerts", len(alerts)).Int("overdue", snap.Overdue).Msg("alert digest")
	s.publishEvent(ev)
}

// pollOnce rebuilds the dashboard from the store and reports whether it
// succeeded.
func (s *Service) pollOnce(ctx context.Context) bool {
	now := s.cfg.Now()
	c, err := pipeline.Load(ctx, s.cfg.Store)
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = now
		s.pollCount++
		s.mu.Unlock()
		s.log.Error().Err(err).Msg("poll failed")
		return false
	}

	dash := pipeline.BuildDashboard(c, now)
	snap := snapshotFromDashboard(dash)

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.dashboard = dash
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      EventSnapshot,
			Timestamp: now,
			Snapshot:  snap,
		}
		publish = true
	} else {
		delta := diffSnapshots(prev, snap)
		if !delta.isZero() {
			s.nextEventID++
			ev = Event{
				ID:        s.nextEventID,
				Type:      EventDelta,
				Timestamp: now,
				Snapshot:  snap,
				Delta:     delta,
			}
			publish = true
		}
	}
	s.mu.Unlock()

	if publish {
		s.log.Debug().Str("type", ev.Type).Int64("id", ev.ID).Msg("publishing event")
		s.publishEvent(ev)
	}
	return true
}

func snapshotFromDashboard(d model.Dashboard) Snapshot {
	overdue := 0
	for _, a := range d.Alerts {
		if a.Status == model.StatusOverdue {
			overdue++
		}
	}
	return Snapshot{
		At:              d.GeneratedAt,
		TotalExpenses:   d.TotalExpenses,
		MonthlyExpenses: d.MonthlyExpenses,
		Fuel:            d.Breakdown.Fuel,
		Maintenance:     d.Breakdown.Maintenance,
		Other:           d.Breakdown.Other,
		AvgKmPerLiter:   d.Efficiency.Average,
		CurrentOdometer: d.CurrentOdometer,
		Alerts:          d.UpcomingMaintenance,
		Overdue:         overdue,
	}
}

func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		TotalExpenses:   curr.TotalExpenses - prev.TotalExpenses,
		MonthlyExpenses: curr.MonthlyExpenses - prev.MonthlyExpenses,
		AvgKmPerLiter:   curr.AvgKmPerLiter - prev.AvgKmPerLiter,
		CurrentOdometer: curr.CurrentOdometer - prev.CurrentOdometer,
		Alerts:          curr.Alerts - prev.Alerts,
		Overdue:         curr.Overdue - prev.Overdue,
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		DBPath:          s.cfg.DBPath,
		DigestSchedule:  s.cfg.DigestSchedule,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.snapshotStatus())
}

func (s *Service) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	ready, dash := s.hasSnapshot, s.dashboard
	s.mu.RUnlock()

	if !ready {
		http.Error(w, "dashboard not ready", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, dash)
}

func (s *Service) handleAlerts(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	alerts := make([]model.MaintenanceAlert, len(s.dashboard.Alerts))
	copy(alerts, s.dashboard.Alerts)
	s.mu.RUnlock()

	writeJSON(w, alerts)
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	writeJSON(w, events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      EventSnapshot,
		Timestamp: s.cfg.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
