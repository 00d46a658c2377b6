// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-booking/internal/handler"
)

// RegisterRoutes registers routes that need no middleware. Currently it
// exposes only the health check used by load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCalendar registers the read-only calendar surface: the weekly
// grid, the room listing and the raw booking rows. The rooms route sits
// behind the response cache middleware because rooms are static
// reference data; the calendar grid is rebuilt per request and is never
// cached.
func RegisterCalendar(e *echo.Echo, cal *handler.CalendarHandler, rooms *handler.RoomHandler, b *handler.BookingHandler, roomsCache echo.MiddlewareFunc) {
	e.GET("/v1/calendar", cal.Week)
	e.GET("/v1/rooms", rooms.List, roomsCache)
	e.GET("/v1/bookings", b.List)
	e.GET("/v1/reports/recent", b.Recent)
}

// RegisterBooking registers the mutating booking endpoints behind the
// rate limiter. No session or token is involved: a booking is created
// with a name and password, and cancelled by proving knowledge of that
// password.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1/bookings", limiter)
	g.POST("", b.Create)
	g.DELETE("/:id", b.Cancel)
}
