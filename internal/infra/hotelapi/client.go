package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hotel-front-desk/internal/infra"
	"hotel-front-desk/internal/pkg/config"
)

// Client is the typed gateway to the upstream hotel API. All persistence
// lives upstream; this client only shapes requests and categorizes failures.
type Client struct {
	baseURL         string
	http            *http.Client
	availableStatus string
	loc             *time.Location
	slogger         *slog.Logger
}

func NewClient(cfg config.HotelAPIConfig, httpClient *http.Client, slogger *slog.Logger) (*Client, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load hotel api time zone %q: %w", cfg.TimeZone, err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	} else if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}
	return &Client{
		baseURL:         strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		http:            httpClient,
		availableStatus: cfg.AvailableStatus,
		loc:             loc,
		slogger:         slogger,
	}, nil
}

func (c *Client) Location() *time.Location { return c.loc }

// AvailableStatusName is the room-status name that marks a room bookable.
func (c *Client) AvailableStatusName() string { return c.availableStatus }

// ListRooms fetches rooms, optionally scoped to a room type. Filtering by
// availability is the caller's concern; see ListAvailableRooms on the query
// side.
func (c *Client) ListRooms(ctx context.Context, roomTypeID *int64) ([]Room, error) {
	endpoint := "/api/rooms"
	if roomTypeID != nil {
		endpoint += "?roomTypeId=" + strconv.FormatInt(*roomTypeID, 10)
	}
	var rooms []Room
	if err := c.getJSON(ctx, endpoint, "failed to load rooms", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *Client) ListRoomTypes(ctx context.Context) ([]RoomType, error) {
	var types []RoomType
	if err := c.getJSON(ctx, "/api/room-types", "failed to load room types", &types); err != nil {
		return nil, err
	}
	return types, nil
}

// FindGuests searches the guest directory. The upstream answers with either
// an array or a bare object depending on match cardinality; both decode to a
// slice here. No match is an empty slice, not an error.
func (c *Client) FindGuests(ctx context.Context, query string, idType string) ([]Guest, error) {
	endpoint := "/api/guests/find?q=" + url.QueryEscape(query) + "&idType=" + url.QueryEscape(idType)
	body, err := c.get(ctx, endpoint, "guest lookup failed")
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var guests []Guest
		if err := json.Unmarshal(trimmed, &guests); err != nil {
			return nil, infra.WrapRemoteErr(c.slogger, infra.KindDecode, http.StatusOK, "guest lookup returned an unreadable body", err)
		}
		return guests, nil
	}
	var guest Guest
	if err := json.Unmarshal(trimmed, &guest); err != nil {
		return nil, infra.WrapRemoteErr(c.slogger, infra.KindDecode, http.StatusOK, "guest lookup returned an unreadable body", err)
	}
	if guest.GuestID == 0 {
		return nil, nil
	}
	return []Guest{guest}, nil
}

func (c *Client) CreateGuest(ctx context.Context, req CreateGuestRequest) (*Guest, error) {
	var created Guest
	if err := c.sendJSON(ctx, http.MethodPost, "/api/guests", req, "failed to create guest", &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListReservations(ctx context.Context, guestName, status string) ([]Reservation, error) {
	endpoint := "/api/reservations"
	params := url.Values{}
	if guestName != "" {
		params.Set("guestName", guestName)
	}
	if status != "" {
		params.Set("status", status)
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	var reservations []Reservation
	if err := c.getJSON(ctx, endpoint, "failed to load reservations", &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) GetReservation(ctx context.Context, id int64) (*Reservation, error) {
	var reservation Reservation
	endpoint := "/api/reservations/" + strconv.FormatInt(id, 10)
	if err := c.getJSON(ctx, endpoint, "failed to load reservation", &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (c *Client) CreateReservation(ctx context.Context, req CreateReservationRequest) (*Reservation, error) {
	var created Reservation
	if err := c.sendJSON(ctx, http.MethodPost, "/api/reservations", req, "failed to create reservation", &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateReservation is the generic full-record PUT, used for edits and for
// status-only changes such as cancellation.
func (c *Client) UpdateReservation(ctx context.Context, id int64, req CreateReservationRequest) (*Reservation, error) {
	var updated Reservation
	endpoint := "/api/reservations/" + strconv.FormatInt(id, 10)
	if err := c.sendJSON(ctx, http.MethodPut, endpoint, req, "failed to update reservation", &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CheckIn and CheckOut hit the dedicated transition endpoints. They carry no
// body; the upstream flips room statuses as a side effect.
func (c *Client) CheckIn(ctx context.Context, id int64) error {
	endpoint := "/api/reservations/" + strconv.FormatInt(id, 10) + "/checkin"
	return c.sendJSON(ctx, http.MethodPost, endpoint, nil, "check-in failed", nil)
}

func (c *Client) CheckOut(ctx context.Context, id int64) error {
	endpoint := "/api/reservations/" + strconv.FormatInt(id, 10) + "/checkout"
	return c.sendJSON(ctx, http.MethodPost, endpoint, nil, "check-out failed", nil)
}

func (c *Client) ListServiceItems(ctx context.Context) ([]ServiceItem, error) {
	var items []ServiceItem
	if err := c.getJSON(ctx, "/api/items", "failed to load service items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var dashboard Dashboard
	if err := c.getJSON(ctx, "/api/dashboard", "failed to load dashboard", &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (c *Client) get(ctx context.Context, endpoint, fallbackMsg string) ([]byte, error) {
	return c.roundTrip(ctx, http.MethodGet, endpoint, nil, fallbackMsg)
}

func (c *Client) getJSON(ctx context.Context, endpoint, fallbackMsg string, out any) error {
	body, err := c.get(ctx, endpoint, fallbackMsg)
	if err != nil {
		return err
	}
	return c.decode(body, fallbackMsg, out)
}

func (c *Client) sendJSON(ctx context.Context, method, endpoint string, in any, fallbackMsg string, out any) error {
	var reqBody io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return infra.WrapRemoteErr(c.slogger, infra.KindDecode, 0, fallbackMsg, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	body, err := c.roundTrip(ctx, method, endpoint, reqBody, fallbackMsg)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return c.decode(body, fallbackMsg, out)
}

func (c *Client) decode(body []byte, fallbackMsg string, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return infra.WrapRemoteErr(c.slogger, infra.KindDecode, http.StatusOK, fallbackMsg, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, endpoint string, body io.Reader, fallbackMsg string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, infra.WrapRemoteErr(c.slogger, infra.KindUnavailable, 0, fallbackMsg, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, infra.WrapRemoteErr(c.slogger, infra.KindUnavailable, 0, "cannot reach hotel api", err)
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, infra.WrapRemoteErr(c.slogger, infra.KindDecode, res.StatusCode, fallbackMsg, err)
	}

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return payload, nil
	}

	msg := extractServerMessage(payload)
	if msg == "" {
		msg = fallbackMsg
	}
	kind := infra.KindRemote
	if res.StatusCode == http.StatusNotFound {
		kind = infra.KindNotFound
	}
	return nil, infra.WrapRemoteErr(c.slogger, kind, res.StatusCode, msg, nil)
}

// extractServerMessage scans the error body for the fields upstream handlers
// are known to use, in priority order, and returns the first non-empty one.
func extractServerMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, field := range []string{"message", "error", "detail"} {
		if value, ok := payload[field].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
