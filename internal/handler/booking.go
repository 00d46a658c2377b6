package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-booking/internal/queue"
	"github.com/iliyamo/meeting-room-booking/internal/repository"
	"github.com/iliyamo/meeting-room-booking/internal/service"
)

// BookingHandler exposes booking creation, cancellation, the raw slot
// listing and the grouped recent-bookings report. All booking rules
// live in the service; this layer only binds requests, maps errors to
// status codes and publishes lifecycle events after a successful commit.
type BookingHandler struct {
	svc *service.BookingService
}

// NewBookingHandler constructs a BookingHandler. The service must be
// non-nil.
func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{svc: svc}
}

// Create handles POST /v1/bookings. The body carries the room, date,
// inclusive slot range, a display name and the cancellation password.
// It returns 201 with the group id and created slot rows, 400 on
// validation failure, and 409 when any requested slot is already held
// (in which case no row was written).
func (h *BookingHandler) Create(c echo.Context) error {
	var body struct {
		RoomID    int64  `json:"room_id"`
		Date      string `json:"date"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
		UserName  string `json:"user_name"`
		Password  string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	rows, err := h.svc.Book(ctx, body.RoomID, body.Date, body.StartTime, body.EndTime, body.UserName, body.Password)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
		}
		var st *repository.SlotTakenError
		if errors.As(err, &st) {
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "slot already booked",
				"slot":  st.TimeSlot,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}

	slots := make([]string, len(rows))
	for i, r := range rows {
		slots[i] = r.TimeSlot
	}
	// Best effort: a broker outage must not fail the booking.
	_ = queue.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
		GroupID:   rows[0].GroupID,
		RoomID:    rows[0].RoomID,
		Date:      rows[0].Date,
		StartTime: slots[0],
		EndTime:   slots[len(slots)-1],
		Slots:     slots,
		UserName:  rows[0].UserName,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"group_id": rows[0].GroupID,
		"bookings": rows,
	})
}

// Cancel handles DELETE /v1/bookings/:id. The id may be any slot row of
// the group; the body carries the password. A match deletes the whole
// group and returns 204. 404 when the row does not exist, 403 when the
// password does not match.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var body struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	row, removed, err := h.svc.Cancel(ctx, id, body.Password)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		if errors.Is(err, service.ErrWrongPassword) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "wrong password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cancel booking"})
	}

	_ = queue.PublishBookingCancelled(ctx, queue.BookingCancelledEvent{
		GroupID:      row.GroupID,
		BookingID:    row.ID,
		RoomID:       row.RoomID,
		Date:         row.Date,
		UserName:     row.UserName,
		SlotsRemoved: removed,
		CancelledAt:  time.Now().UTC().Format(time.RFC3339),
	})

	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/bookings and returns every stored slot row.
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.svc.Bookings(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": bookings})
}

// Recent handles GET /v1/reports/recent. It returns one summary row per
// booking group with date >= since (query parameter, default 30 days
// back), spanning the group's first to last slot.
func (h *BookingHandler) Recent(c echo.Context) error {
	summaries, err := h.svc.Recent(c.Request().Context(), c.QueryParam("since"))
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load report"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": summaries})
}
