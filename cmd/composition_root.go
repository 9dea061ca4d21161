package cmd

import (
	"log/slog"
	"time"

	httpin "github.com/leeboxuan/opsflow-erp-mobile/internal/adapters/in/http"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/adapters/out/device"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/adapters/out/httpapi"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/adapters/out/postgres/journalrepo"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/adapters/out/postgres/markrepo"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/events"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/projection"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/tracking"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/usecases/commands"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/usecases/queries"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/session"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, shared application state, and use case
// handlers. All handlers share one projection store, one event bus, one
// in-flight registry and one gateway client.
type CompositionRoot struct {
	config  Config
	session session.Session
	logger  *slog.Logger

	gateway    *httpapi.Client
	projection *projection.Store
	marks      *markrepo.GormMarkRepository
	journal    *journalrepo.GormJournalRepository
	bus        *events.Bus
	inflight   *commands.InflightOrders
	focus      *jobs.FocusRegistry
}

// NewCompositionRoot builds the shared object graph. The session role string
// comes backend-quoted and is normalized once here.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	sess, err := session.NewSession(config.SessionRole, config.BackendToken, config.TenantID)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		session:    sess,
		logger:     logger,
		gateway:    httpapi.NewClient(config.BackendBaseURL, sess.Token(), sess.TenantID(), 15*time.Second),
		projection: projection.NewStore(),
		marks:      markrepo.NewGormMarkRepository(gormDB),
		journal:    journalrepo.NewGormJournalRepository(gormDB),
		bus:        events.NewBus(),
		inflight:   commands.NewInflightOrders(),
		focus:      jobs.NewFocusRegistry(),
	}, nil
}

// Bus exposes the event bus so main can subscribe listeners and close it on
// shutdown.
func (c *CompositionRoot) Bus() *events.Bus {
	return c.bus
}

// Focus exposes the focus registry shared by the facade and the poll jobs.
func (c *CompositionRoot) Focus() *jobs.FocusRegistry {
	return c.focus
}

// Session exposes the normalized session.
func (c *CompositionRoot) Session() session.Session {
	return c.session
}

func (c *CompositionRoot) CreateAcceptTripCommandHandler() commands.AcceptTripCommandHandler {
	return commands.NewAcceptTripCommandHandler(c.gateway, c.projection, c.marks, c.logger)
}

func (c *CompositionRoot) CreateStartTripCommandHandler() commands.StartTripCommandHandler {
	return commands.NewStartTripCommandHandler(c.gateway, c.projection, c.marks, c.bus, c.logger)
}

func (c *CompositionRoot) CreateStartStopCommandHandler() commands.StartStopCommandHandler {
	return commands.NewStartStopCommandHandler(c.gateway, c.projection)
}

func (c *CompositionRoot) CreateCompleteStopCommandHandler() commands.CompleteStopCommandHandler {
	return commands.NewCompleteStopCommandHandler(c.gateway, c.projection)
}

func (c *CompositionRoot) CreateFailStopCommandHandler() commands.FailStopCommandHandler {
	return commands.NewFailStopCommandHandler(c.gateway, c.projection)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(
		c.gateway, c.projection, c.inflight, c.CreateGetTripQueryHandler(), c.logger,
	)
}

func (c *CompositionRoot) CreateUnassignOrderCommandHandler() commands.UnassignOrderCommandHandler {
	return commands.NewUnassignOrderCommandHandler(
		c.gateway, c.projection, c.inflight, c.CreateGetTripQueryHandler(), c.logger,
	)
}

func (c *CompositionRoot) CreateReorderStopsCommandHandler() commands.ReorderStopsCommandHandler {
	return commands.NewReorderStopsCommandHandler(c.gateway, c.projection, c.marks, c.logger)
}

func (c *CompositionRoot) CreateMoveStopCommandHandler() commands.MoveStopCommandHandler {
	return commands.NewMoveStopCommandHandler(c.gateway, c.projection)
}

func (c *CompositionRoot) CreateGetTripQueryHandler() queries.GetTripQueryHandler {
	return queries.NewGetTripQueryHandler(c.gateway, c.projection, c.marks, c.bus, c.logger)
}

func (c *CompositionRoot) CreateGetTripsForDateQueryHandler() queries.GetTripsForDateQueryHandler {
	return queries.NewGetTripsForDateQueryHandler(c.gateway, c.projection, c.marks, c.bus, c.logger)
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.gateway, c.projection)
}

func (c *CompositionRoot) CreateGetTripLocationQueryHandler() queries.GetTripLocationQueryHandler {
	return queries.NewGetTripLocationQueryHandler(c.gateway, c.projection)
}

// CreateTrackingController builds the location tracking controller over the
// simulated position source. The real mobile shell swaps the source.
func (c *CompositionRoot) CreateTrackingController() (*tracking.Controller, error) {
	start, err := kernel.NewGeoPoint(c.config.SimStartLat, c.config.SimStartLng)
	if err != nil {
		return nil, err
	}

	source := device.NewSimulatedSource(start, 15, 2*time.Second)

	return tracking.NewController(
		source,
		c.gateway,
		c.journal,
		time.Duration(c.config.ReportIntervalSeconds)*time.Second,
		c.config.ReportDistanceMeters,
		c.logger,
	), nil
}

// CreateJobManager builds the polling jobs sharing the focus registry.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetTripQueryHandler(),
		c.CreateGetTripLocationQueryHandler(),
		c.focus,
		c.logger,
	)
}

// CreateServer builds the HTTP facade with every handler wired.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateAcceptTripCommandHandler(),
		c.CreateStartTripCommandHandler(),
		c.CreateStartStopCommandHandler(),
		c.CreateCompleteStopCommandHandler(),
		c.CreateFailStopCommandHandler(),
		c.CreateAssignOrderCommandHandler(),
		c.CreateUnassignOrderCommandHandler(),
		c.CreateReorderStopsCommandHandler(),
		c.CreateMoveStopCommandHandler(),
		c.CreateGetTripQueryHandler(),
		c.CreateGetTripsForDateQueryHandler(),
		c.CreateGetUnassignedOrdersQueryHandler(),
		c.CreateGetTripLocationQueryHandler(),
		c.focus,
	)
}
