package tracking

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/events"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
)

// Reporter is the slice of the backend gateway the controller pushes samples
// through.
type Reporter interface {
	ReportLocation(ctx context.Context, sample kernel.LocationSample) error
}

// Controller owns the sampling and reporting lifecycle for the active trip.
//
// Start and Stop are idempotent: the trip-activation event handler and a
// user action may independently try to start tracking for the same trip, and
// stopping must be safe even when no start ever succeeded. Transitions are
// driven by trip lifecycle events via HandleEvent.
type Controller struct {
	source   ports.PositionSource
	reporter Reporter
	journal  ports.SampleJournal
	interval time.Duration
	distance float64
	log      *slog.Logger

	mu         sync.Mutex
	mode       Mode
	activeTrip *kernel.UUID
	cancel     context.CancelFunc
	done       chan struct{}

	// lastObserved feeds the foreground map display.
	lastObserved *kernel.LocationSample
}

// NewController creates an idle controller. Non-positive throttle parameters
// fall back to the defaults.
func NewController(
	source ports.PositionSource,
	reporter Reporter,
	journal ports.SampleJournal,
	interval time.Duration,
	distanceMeters float64,
	log *slog.Logger,
) *Controller {
	return &Controller{
		source:   source,
		reporter: reporter,
		journal:  journal,
		interval: interval,
		distance: distanceMeters,
		log:      log.With("component", "tracking"),
		mode:     ModeIdle,
	}
}

// Mode returns the current lifecycle state.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// ActiveTrip returns the trip being tracked, or nil when idle.
func (c *Controller) ActiveTrip() *kernel.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeTrip
}

// LastObserved returns the most recent raw sample, throttled or not, for
// display purposes.
func (c *Controller) LastObserved() *kernel.LocationSample {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastObserved
}

// RestoreLastObserved seeds the display position from the journalled last
// sent sample. Call it once at startup, before any watch produces a live
// sample; a live sample already present wins over the journal.
func (c *Controller) RestoreLastObserved(ctx context.Context) error {
	sample, err := c.journal.LastSent(ctx)
	if err != nil {
		return err
	}
	if sample == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastObserved == nil {
		c.lastObserved = sample
	}
	return nil
}

// StartForeground begins watching for map display only; no sample is
// reported. Starting while already watching or reporting is a no-op
// returning success.
func (c *Controller) StartForeground(ctx context.Context) error {
	return c.start(ctx, ModeForegroundWatching, nil)
}

// Start begins watching and reporting for the trip. Starting while already
// reporting is a no-op returning success; a foreground-only watch is
// upgraded to reporting. Permission acquisition happens inside the position
// source before any sample is produced; a permission failure leaves the
// controller Idle and surfaces ports.ErrPermissionDenied.
func (c *Controller) Start(ctx context.Context, tripID kernel.UUID) error {
	c.mu.Lock()
	if c.mode == ModeForegroundWatching {
		c.mu.Unlock()
		c.Stop()
	} else {
		c.mu.Unlock()
	}

	return c.start(ctx, ModeBackgroundReporting, &tripID)
}

func (c *Controller) start(ctx context.Context, target Mode, tripID *kernel.UUID) error {
	c.mu.Lock()
	if c.mode != ModeIdle {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	samples, err := c.source.Watch(watchCtx)
	if err != nil {
		cancel()
		return err
	}

	c.mu.Lock()
	if c.mode != ModeIdle {
		// Lost the race against a concurrent start; the winner's watch
		// stands.
		c.mu.Unlock()
		cancel()
		return nil
	}
	c.mode = target
	c.activeTrip = tripID
	c.cancel = cancel
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	report := target == ModeBackgroundReporting
	if report {
		c.log.Info("tracking started", "tripId", tripID)
	} else {
		c.log.Info("foreground watch started")
	}
	go c.consume(watchCtx, samples, done, report)
	return nil
}

// Stop ends watching and reporting. Stopping an already-stopped controller
// is a no-op returning success.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.mode == ModeIdle {
		c.mu.Unlock()
		return
	}
	cancel := c.cancel
	done := c.done
	tripID := c.activeTrip
	c.mode = ModeIdle
	c.activeTrip = nil
	c.cancel = nil
	c.done = nil
	c.mu.Unlock()

	cancel()
	<-done
	c.log.Info("tracking stopped", "tripId", tripID)
}

// HandleEvent reacts to trip lifecycle events. Subscribe it to the event bus
// at composition time.
func (c *Controller) HandleEvent(e events.Event) {
	switch ev := e.(type) {
	case events.TripActivated:
		if err := c.Start(context.Background(), ev.TripID); err != nil {
			c.log.Warn("tracking could not start", "tripId", ev.TripID, "error", err)
		}
	case events.TripTerminated:
		c.Stop()
	}
}

// consume drains the sample channel until it closes. A fresh throttle per
// run makes the first sample always transmit. Foreground-only runs skip the
// throttle and the reporter entirely.
func (c *Controller) consume(ctx context.Context, samples <-chan kernel.LocationSample, done chan<- struct{}, report bool) {
	defer close(done)

	throttle := NewThrottle(c.interval, c.distance)
	for sample := range samples {
		c.mu.Lock()
		c.lastObserved = &sample
		c.mu.Unlock()

		if !report || !throttle.Admit(sample) {
			continue
		}

		// Best-effort, at-least-once: a failed report is logged and
		// dropped, never retried or surfaced.
		if err := c.reporter.ReportLocation(ctx, sample); err != nil {
			c.log.Warn("location report failed", "error", err)
			continue
		}
		if err := c.journal.SetLastSent(ctx, sample); err != nil {
			c.log.Warn("persisting last sent sample failed", "error", err)
		}
	}
}
