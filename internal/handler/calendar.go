package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-booking/internal/schedule"
	"github.com/iliyamo/meeting-room-booking/internal/service"
)

// CalendarHandler serves the weekly occupancy grid.
type CalendarHandler struct {
	svc *service.BookingService
}

// NewCalendarHandler constructs a CalendarHandler. The service must be
// non-nil.
func NewCalendarHandler(svc *service.BookingService) *CalendarHandler {
	if svc == nil {
		panic("nil service passed to NewCalendarHandler")
	}
	return &CalendarHandler{svc: svc}
}

// Week handles GET /v1/calendar. The optional week_offset query
// parameter pages the view ahead in whole weeks; values outside
// [0, 16] fall back to the current week and a warning is included in
// the response instead of rejecting the request.
func (h *CalendarHandler) Week(c echo.Context) error {
	offset := 0
	warning := ""
	if raw := c.QueryParam("week_offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > schedule.MaxWeekOffset {
			c.Logger().Warnf("week_offset %q out of range, using 0", raw)
			warning = "week offset out of range, showing current week"
		} else {
			offset = n
		}
	}
	view, err := h.svc.Calendar(c.Request().Context(), offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to build calendar"})
	}
	if warning != "" {
		return c.JSON(http.StatusOK, echo.Map{"calendar": view, "warning": warning})
	}
	return c.JSON(http.StatusOK, echo.Map{"calendar": view})
}
