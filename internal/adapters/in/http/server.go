// Package http exposes the coordination commands and queries over a thin
// REST facade. Handlers translate between transport shapes and the
// application layer; all business rules live below.
package http

import (
	"errors"
	"net/http"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/usecases/commands"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/usecases/queries"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/jobs"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/oapi-codegen/runtime/types"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	acceptTripHandler    commands.AcceptTripCommandHandler
	startTripHandler     commands.StartTripCommandHandler
	startStopHandler     commands.StartStopCommandHandler
	completeStopHandler  commands.CompleteStopCommandHandler
	failStopHandler      commands.FailStopCommandHandler
	assignOrderHandler   commands.AssignOrderCommandHandler
	unassignOrderHandler commands.UnassignOrderCommandHandler
	reorderStopsHandler  commands.ReorderStopsCommandHandler
	moveStopHandler      commands.MoveStopCommandHandler

	// Query handlers
	getTripHandler         queries.GetTripQueryHandler
	getTripsForDateHandler queries.GetTripsForDateQueryHandler
	getUnassignedHandler   queries.GetUnassignedOrdersQueryHandler
	getTripLocationHandler queries.GetTripLocationQueryHandler

	focus *jobs.FocusRegistry
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The focus registry drives the trip detail poll.
func NewServer(
	acceptTripHandler commands.AcceptTripCommandHandler,
	startTripHandler commands.StartTripCommandHandler,
	startStopHandler commands.StartStopCommandHandler,
	completeStopHandler commands.CompleteStopCommandHandler,
	failStopHandler commands.FailStopCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	unassignOrderHandler commands.UnassignOrderCommandHandler,
	reorderStopsHandler commands.ReorderStopsCommandHandler,
	moveStopHandler commands.MoveStopCommandHandler,
	getTripHandler queries.GetTripQueryHandler,
	getTripsForDateHandler queries.GetTripsForDateQueryHandler,
	getUnassignedHandler queries.GetUnassignedOrdersQueryHandler,
	getTripLocationHandler queries.GetTripLocationQueryHandler,
	focus *jobs.FocusRegistry,
) *Server {
	return &Server{
		acceptTripHandler:      acceptTripHandler,
		startTripHandler:       startTripHandler,
		startStopHandler:       startStopHandler,
		completeStopHandler:    completeStopHandler,
		failStopHandler:        failStopHandler,
		assignOrderHandler:     assignOrderHandler,
		unassignOrderHandler:   unassignOrderHandler,
		reorderStopsHandler:    reorderStopsHandler,
		moveStopHandler:        moveStopHandler,
		getTripHandler:         getTripHandler,
		getTripsForDateHandler: getTripsForDateHandler,
		getUnassignedHandler:   getUnassignedHandler,
		getTripLocationHandler: getTripLocationHandler,
		focus:                  focus,
	}
}

// RegisterRoutes attaches all facade routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.GET("/trips", s.GetTrips)
	v1.GET("/trips/:tripId", s.GetTrip)
	v1.POST("/trips/:tripId/accept", s.AcceptTrip)
	v1.POST("/trips/:tripId/start", s.StartTrip)
	v1.POST("/trips/:tripId/focus", s.FocusTrip)
	v1.POST("/trips/:tripId/blur", s.BlurTrip)
	v1.GET("/trips/:tripId/location", s.GetTripLocation)
	v1.PUT("/trips/:tripId/stops/order", s.ReorderStops)
	v1.POST("/trips/:tripId/stops/:stopId/start", s.StartStop)
	v1.POST("/trips/:tripId/stops/:stopId/complete", s.CompleteStop)
	v1.POST("/trips/:tripId/stops/:stopId/fail", s.FailStop)
	v1.POST("/trips/:tripId/stops/:stopId/move", s.MoveStop)
	v1.GET("/orders", s.GetUnassignedOrders)
	v1.POST("/orders/:orderId/assign", s.AssignOrder)
	v1.POST("/orders/:orderId/unassign", s.UnassignOrder)
}

// writeError maps the application error taxonomy onto HTTP status codes:
// validation failures are 400, missing objects 404, permission problems 403,
// and rule conflicts (out-of-order, terminal stop, locked route, in-flight
// duplicate) 409.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ports.ErrPermissionDenied):
		code = http.StatusForbidden
	case errors.Is(err, trip.ErrStopOutOfOrder),
		errors.Is(err, trip.ErrStopIsTerminal),
		errors.Is(err, trip.ErrRouteLocked),
		errors.Is(err, trip.ErrReorderSetMismatch),
		errors.Is(err, trip.ErrNoPendingStops),
		errors.Is(err, commands.ErrAssignAlreadyInProgress):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func queryDate(ctx echo.Context) (types.Date, error) {
	var date types.Date
	err := runtime.BindQueryParameter("form", true, true, "date", ctx.QueryParams(), &date)
	if err != nil {
		return types.Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return date, nil
}

// GetTrips handles GET /api/v1/trips?date=YYYY-MM-DD.
func (s *Server) GetTrips(ctx echo.Context) error {
	date, err := queryDate(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTripsForDateQuery(date.Time)
	if err != nil {
		return writeError(ctx, err)
	}

	trips, err := s.getTripsForDateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		response = append(response, newTripResponse(t))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTrip handles GET /api/v1/trips/:tripId.
func (s *Server) GetTrip(ctx echo.Context) error {
	tripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTripQuery(tripID)
	if err != nil {
		return writeError(ctx, err)
	}

	t, err := s.getTripHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTripResponse(t))
}

// AcceptTrip handles POST /api/v1/trips/:tripId/accept.
func (s *Server) AcceptTrip(ctx echo.Context) error {
	tripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body AcceptTripRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewAcceptTripCommand(tripID, body.VehicleID, body.TrailerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.acceptTripHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartTrip handles POST /api/v1/trips/:tripId/start.
func (s *Server) StartTrip(ctx echo.Context) error {
	tripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStartTripCommand(tripID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.startTripHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FocusTrip handles POST /api/v1/trips/:tripId/focus - resumes the detail
// poll for the trip and triggers an immediate fetch.
func (s *Server) FocusTrip(ctx echo.Context) error {
	tripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return writeError(ctx, err)
	}

	s.focus.Focus(tripID)
	return ctx.NoContent(http.StatusNoContent)
}

// BlurTrip handles POST /api/v1/trips/:tripId/blur - pauses the detail poll.
func (s *Server) BlurTrip(ctx echo.Context) error {
	if _, err := pathUUID(ctx, "tripId"); err != nil {
		return writeError(ctx, err)
	}

	s.focus.Blur()
	return ctx.NoContent(http.StatusNoContent)
}

// GetTripLocation handles GET /api/v1/trips/:tripId/location.
func (s *Server) GetTripLocation(ctx echo.Context) error {
	tripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTripLocationQuery(tripID)
	if err != nil {
		return writeError(ctx, err)
	}

	loc, err := s.getTripLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	if loc == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, newLocationResponse(loc))
}

// ReorderStops handles PUT /api/v1/trips/:tripId/stops/order.
func (s *Server) ReorderStops(ctx echo.Context) error {
	tripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body ReorderStopsRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	stopIDs := make([]kernel.UUID, 0, len(body.StopIDsInOrder))
	for _, raw := range body.StopIDsInOrder {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("stopIdsInOrder", idErr))
		}
		stopIDs = append(stopIDs, id)
	}

	cmd, err := commands.NewReorderStopsCommand(tripID, stopIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reorderStopsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartStop handles POST /api/v1/trips/:tripId/stops/:stopId/start.
func (s *Server) StartStop(ctx echo.Context) error {
	tripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return writeError(ctx, err)
	}
	stopID, err := pathUUID(ctx, "stopId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStartStopCommand(tripID, stopID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.startStopHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteStop handles POST /api/v1/trips/:tripId/stops/:stopId/complete.
func (s *Server) CompleteStop(ctx echo.Context) error {
	tripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return writeError(ctx, err)
	}
	stopID, err := pathUUID(ctx, "stopId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body CompleteStopRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	var pod *trip.ProofOfDelivery
	if body.Pod != nil {
		record, podErr := trip.NewProofOfDelivery(body.Pod.PodPhotoRef, body.Pod.SignedBy, body.Pod.SignedAt)
		if podErr != nil {
			return writeError(ctx, podErr)
		}
		pod = &record
	}

	cmd, err := commands.NewCompleteStopCommand(tripID, stopID, pod)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.completeStopHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FailStop handles POST /api/v1/trips/:tripId/stops/:stopId/fail.
func (s *Server) FailStop(ctx echo.Context) error {
	tripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return writeError(ctx, err)
	}
	stopID, err := pathUUID(ctx, "stopId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewFailStopCommand(tripID, stopID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.failStopHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MoveStop handles POST /api/v1/trips/:tripId/stops/:stopId/move.
func (s *Server) MoveStop(ctx echo.Context) error {
	sourceTripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return writeError(ctx, err)
	}
	stopID, err := pathUUID(ctx, "stopId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body MoveStopRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	targetTripID, err := kernel.UUIDFromString(body.TargetTripID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("targetTripId", err))
	}

	cmd, err := commands.NewMoveStopCommand(stopID, sourceTripID, targetTripID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.moveStopHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUnassignedOrders handles GET /api/v1/orders?date=YYYY-MM-DD.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	date, err := queryDate(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUnassignedOrdersQuery(date.Time)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getUnassignedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, newOrderResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignOrder handles POST /api/v1/orders/:orderId/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body AssignOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	var tripID *kernel.UUID
	if body.TripID != nil {
		id, idErr := kernel.UUIDFromString(*body.TripID)
		if idErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("tripId", idErr))
		}
		tripID = &id
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, tripID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnassignOrder handles POST /api/v1/orders/:orderId/unassign.
func (s *Server) UnassignOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUnassignOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.unassignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
