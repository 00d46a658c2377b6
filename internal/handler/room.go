package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-booking/internal/service"
)

// RoomHandler serves the static room reference data.
type RoomHandler struct {
	svc *service.BookingService
}

// NewRoomHandler constructs a RoomHandler. The service must be non-nil.
func NewRoomHandler(svc *service.BookingService) *RoomHandler {
	if svc == nil {
		panic("nil service passed to NewRoomHandler")
	}
	return &RoomHandler{svc: svc}
}

// List handles GET /v1/rooms. Rooms are seeded once and never change,
// so the route sits behind the response cache middleware.
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.svc.Rooms(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load rooms"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rooms})
}
