package queries

import (
	"context"
	"log/slog"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/events"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
)

// reconciler installs authoritative trips into the projection and raises the
// events a refresh can reveal: an external route change (the fetched route
// version is ahead of the persisted mark) and trip termination (a trip the
// projection believed active came back terminal).
type reconciler struct {
	projection Projection
	marks      ports.RouteVersionMarks
	publisher  Publisher
	log        *slog.Logger
}

func (r reconciler) install(ctx context.Context, fetched *trip.Trip) {
	known, hadMark, markErr := r.marks.Get(ctx, fetched.ID())
	if markErr != nil {
		r.log.Warn("reading route version mark failed", "tripId", fetched.ID(), "error", markErr)
		hadMark = false
	}
	// Marks written by this device's own edits advance with the command
	// response, so a fetched version ahead of the mark means someone else
	// changed the route. A missing mark means the trip is new here; nothing
	// to report.
	if hadMark && fetched.RouteVersion() > known {
		r.publisher.Publish(events.RouteChangedExternally{
			TripID:        fetched.ID(),
			KnownVersion:  known,
			ServerVersion: fetched.RouteVersion(),
		})
	}

	previous, hadPrevious := r.projection.Trip(fetched.ID())
	if hadPrevious && !previous.Status().IsTerminal() && fetched.Status().IsTerminal() {
		r.publisher.Publish(events.TripTerminated{
			TripID: fetched.ID(),
			Status: fetched.Status(),
		})
	}
	// An in-transit trip landing on an empty or inactive projection means
	// the activation happened elsewhere or before a restart. Re-raise it so
	// location tracking resumes.
	if fetched.Status().IsActive() && (!hadPrevious || !previous.Status().IsActive()) {
		r.publisher.Publish(events.TripActivated{TripID: fetched.ID()})
	}

	r.projection.ReplaceTrip(fetched)
	// A failed mark read must not let this write clobber the stored version,
	// or the pending conflict notification is lost for good.
	if markErr == nil {
		if err := r.marks.Put(ctx, fetched.ID(), fetched.RouteVersion()); err != nil {
			r.log.Warn("persisting route version mark failed", "tripId", fetched.ID(), "error", err)
		}
	}
}
