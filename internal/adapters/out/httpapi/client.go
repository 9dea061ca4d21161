// Package httpapi is the outbound adapter for the dispatch backend's JSON
// API. It implements ports.Gateway, attaching the bearer-token and
// tenant-scoping headers the core treats as already present.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/order"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/trip"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/ports"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

const defaultTimeout = 15 * time.Second

// Client talks to the dispatch backend over JSON/HTTP.
type Client struct {
	baseURL  string
	token    string
	tenantID string
	session  *http.Client
}

// NewClient creates a gateway client. A non-positive timeout falls back to
// the default.
func NewClient(baseURL, bearerToken, tenantID string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    bearerToken,
		tenantID: tenantID,
		session:  &http.Client{Timeout: timeout},
	}
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Code, e.Body)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Tenant-ID", c.tenantID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do executes the request and maps error statuses onto the core's error
// taxonomy. The caller owns the response body on success.
func (c *Client) do(req *http.Request, notFoundParam string, notFoundID any) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 400 {
		return resp, nil
	}

	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	body := strings.TrimSpace(string(b))
	statusErr := &httpStatusError{Code: resp.StatusCode, Body: body}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", ports.ErrPermissionDenied, body)
	case http.StatusNotFound:
		return nil, errs.NewObjectNotFoundErrorWithCause(notFoundParam, notFoundID, statusErr)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, errs.NewValueIsInvalidErrorWithCause(notFoundParam, statusErr)
	default:
		return nil, statusErr
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any, notFoundParam string, notFoundID any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	resp, err := c.do(req, notFoundParam, notFoundID)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// AcceptTrip implements ports.Gateway.
func (c *Client) AcceptTrip(ctx context.Context, tripID kernel.UUID, vehicleID string, trailerID *string) (*trip.Trip, error) {
	var dto tripDTO
	err := c.doJSON(ctx,
		http.MethodPost, "/trips/"+tripID.String()+"/accept",
		acceptTripDTO{VehicleID: vehicleID, TrailerID: trailerID},
		&dto, "tripId", tripID.String(),
	)
	if err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// StartTrip implements ports.Gateway.
func (c *Client) StartTrip(ctx context.Context, tripID kernel.UUID) (*trip.Trip, error) {
	var dto tripDTO
	err := c.doJSON(ctx,
		http.MethodPost, "/trips/"+tripID.String()+"/start",
		nil, &dto, "tripId", tripID.String(),
	)
	if err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// StartStop implements ports.Gateway.
func (c *Client) StartStop(ctx context.Context, stopID kernel.UUID) error {
	return c.doJSON(ctx,
		http.MethodPost, "/stops/"+stopID.String()+"/start",
		nil, nil, "stopId", stopID.String(),
	)
}

// CompleteStop implements ports.Gateway.
func (c *Client) CompleteStop(ctx context.Context, stopID kernel.UUID, pod *trip.ProofOfDelivery) error {
	var body any
	if dto := newPodDTO(pod); dto != nil {
		body = dto
	}
	return c.doJSON(ctx,
		http.MethodPost, "/stops/"+stopID.String()+"/complete",
		body, nil, "stopId", stopID.String(),
	)
}

// FailStop implements ports.Gateway.
func (c *Client) FailStop(ctx context.Context, stopID kernel.UUID) error {
	return c.doJSON(ctx,
		http.MethodPost, "/stops/"+stopID.String()+"/fail",
		nil, nil, "stopId", stopID.String(),
	)
}

// FetchTrip implements ports.Gateway.
func (c *Client) FetchTrip(ctx context.Context, tripID kernel.UUID) (*trip.Trip, error) {
	var dto tripDTO
	err := c.doJSON(ctx,
		http.MethodGet, "/trips/"+tripID.String(),
		nil, &dto, "tripId", tripID.String(),
	)
	if err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// FetchTripsForDate implements ports.Gateway.
func (c *Client) FetchTripsForDate(ctx context.Context, date time.Time) ([]*trip.Trip, error) {
	day := date.Format("2006-01-02")
	var dtos []tripDTO
	err := c.doJSON(ctx,
		http.MethodGet, "/trips?date="+url.QueryEscape(day),
		nil, &dtos, "date", day,
	)
	if err != nil {
		return nil, err
	}

	trips := make([]*trip.Trip, 0, len(dtos))
	for _, dto := range dtos {
		restored, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		trips = append(trips, restored)
	}
	return trips, nil
}

// FetchUnassignedOrders implements ports.Gateway.
func (c *Client) FetchUnassignedOrders(ctx context.Context, date time.Time) ([]*order.Order, error) {
	day := date.Format("2006-01-02")
	var dtos []orderDTO
	err := c.doJSON(ctx,
		http.MethodGet, "/orders?status=unassigned&date="+url.QueryEscape(day),
		nil, &dtos, "date", day,
	)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		restored, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, restored)
	}
	return orders, nil
}

// AcceptOrder implements ports.Gateway.
func (c *Client) AcceptOrder(ctx context.Context, orderID kernel.UUID, tripID *kernel.UUID) (kernel.UUID, error) {
	var body acceptOrderDTO
	if tripID != nil {
		s := tripID.String()
		body.TripID = &s
	}

	var dto acceptOrderResponseDTO
	err := c.doJSON(ctx,
		http.MethodPost, "/orders/"+orderID.String()+"/accept",
		body, &dto, "orderId", orderID.String(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromString(dto.TripID)
}

// UnassignOrder implements ports.Gateway.
func (c *Client) UnassignOrder(ctx context.Context, orderID kernel.UUID) error {
	return c.doJSON(ctx,
		http.MethodPost, "/orders/"+orderID.String()+"/unassign",
		nil, nil, "orderId", orderID.String(),
	)
}

// ReorderStops implements ports.Gateway.
func (c *Client) ReorderStops(ctx context.Context, tripID kernel.UUID, stopIDsInOrder []kernel.UUID) (*trip.Trip, error) {
	ids := make([]string, 0, len(stopIDsInOrder))
	for _, id := range stopIDsInOrder {
		ids = append(ids, id.String())
	}

	var dto tripDTO
	err := c.doJSON(ctx,
		http.MethodPut, "/trips/"+tripID.String()+"/stops/order",
		reorderStopsDTO{StopIDsInOrder: ids},
		&dto, "tripId", tripID.String(),
	)
	if err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// MoveStop implements ports.Gateway.
func (c *Client) MoveStop(ctx context.Context, stopID kernel.UUID, targetTripID kernel.UUID) error {
	return c.doJSON(ctx,
		http.MethodPost, "/stops/"+stopID.String()+"/move",
		moveStopDTO{TargetTripID: targetTripID.String()},
		nil, "stopId", stopID.String(),
	)
}

// ReportLocation implements ports.Gateway.
func (c *Client) ReportLocation(ctx context.Context, sample kernel.LocationSample) error {
	return c.doJSON(ctx,
		http.MethodPost, "/locations",
		newReportLocationDTO(sample),
		nil, "location", nil,
	)
}

// FetchTripLocation implements ports.Gateway. Backends without a trip-level
// location endpoint answer 404/501 here; that is surfaced as
// ports.ErrTripLocationUnsupported so callers fall back to the driver-level
// endpoint.
func (c *Client) FetchTripLocation(ctx context.Context, tripID kernel.UUID) (*ports.TripLocation, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/trips/"+tripID.String()+"/location", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNotImplemented:
		return nil, ports.ErrTripLocationUnsupported
	case resp.StatusCode >= 400:
		b, _ := io.ReadAll(resp.Body)
		return nil, &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	case resp.StatusCode == http.StatusNoContent:
		return nil, nil
	}

	return decodeLocation(resp.Body)
}

// FetchDriverLocation implements ports.Gateway.
func (c *Client) FetchDriverLocation(ctx context.Context, driverID kernel.UUID) (*ports.TripLocation, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/drivers/"+driverID.String()+"/location", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req, "driverId", driverID.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	return decodeLocation(resp.Body)
}

func decodeLocation(body io.Reader) (*ports.TripLocation, error) {
	var dto locationDTO
	if err := json.NewDecoder(body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}
	return &ports.TripLocation{Point: point, CapturedAt: dto.CapturedAt}, nil
}
