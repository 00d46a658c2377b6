package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-booking/internal/model"
	"github.com/iliyamo/meeting-room-booking/internal/repository"
	"github.com/iliyamo/meeting-room-booking/internal/service"
)

// memStore is an in-memory stand-in for the MySQL repositories, with
// the same all-or-nothing CreateGroup contract.
type memStore struct {
	nextID int64
	rows   []model.Booking
	rooms  []model.Room
}

func newMemStore() *memStore {
	return &memStore{
		rooms: []model.Room{{ID: 1, Name: "Room 1"}, {ID: 2, Name: "Room 2"}, {ID: 3, Name: "Room 3"}},
	}
}

func (m *memStore) CreateGroup(_ context.Context, rows []model.Booking) error {
	for _, r := range rows {
		for _, e := range m.rows {
			if e.RoomID == r.RoomID && e.Date == r.Date && e.TimeSlot == r.TimeSlot {
				return &repository.SlotTakenError{RoomID: r.RoomID, Date: r.Date, TimeSlot: r.TimeSlot}
			}
		}
	}
	for i := range rows {
		m.nextID++
		rows[i].ID = m.nextID
		m.rows = append(m.rows, rows[i])
	}
	return nil
}

func (m *memStore) GetByID(_ context.Context, id int64) (*model.Booking, error) {
	for _, e := range m.rows {
		if e.ID == id {
			b := e
			return &b, nil
		}
	}
	return nil, repository.ErrBookingNotFound
}

func (m *memStore) DeleteGroup(_ context.Context, groupID string) (int64, error) {
	var kept []model.Booking
	var removed int64
	for _, e := range m.rows {
		if e.GroupID == groupID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	m.rows = kept
	return removed, nil
}

func (m *memStore) ListAll(_ context.Context) ([]model.Booking, error) {
	out := make([]model.Booking, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *memStore) ListBetween(_ context.Context, from, to string) ([]model.Booking, error) {
	var out []model.Booking
	for _, e := range m.rows {
		if e.Date >= from && e.Date <= to {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memStore) Summaries(_ context.Context, since string) ([]model.BookingSummary, error) {
	byGroup := make(map[string]*model.BookingSummary)
	for _, e := range m.rows {
		if e.Date < since {
			continue
		}
		s, ok := byGroup[e.GroupID]
		if !ok {
			byGroup[e.GroupID] = &model.BookingSummary{
				RoomID: e.RoomID, Date: e.Date, StartTime: e.TimeSlot, EndTime: e.TimeSlot,
				UserName: e.UserName, GroupID: e.GroupID,
			}
			continue
		}
		if e.TimeSlot < s.StartTime {
			s.StartTime = e.TimeSlot
		}
		if e.TimeSlot > s.EndTime {
			s.EndTime = e.TimeSlot
		}
	}
	out := make([]model.BookingSummary, 0, len(byGroup))
	for _, s := range byGroup {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (m *memStore) List(_ context.Context) ([]model.Room, error) {
	out := make([]model.Room, len(m.rooms))
	copy(out, m.rooms)
	return out, nil
}

func newTestHandlers(t *testing.T) (*BookingHandler, *CalendarHandler, *RoomHandler, *memStore) {
	t.Helper()
	store := newMemStore()
	svc := service.NewBookingService(store, store, 4)
	return NewBookingHandler(svc), NewCalendarHandler(svc), NewRoomHandler(svc), store
}

func doJSON(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateBooking(t *testing.T) {
	h, _, _, store := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/bookings",
		`{"room_id":1,"date":"2024-06-10","start_time":"08:00","end_time":"08:30","user_name":"Kim","password":"pw"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		GroupID  string          `json:"group_id"`
		Bookings []model.Booking `json:"bookings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.GroupID == "" {
		t.Fatal("expected a group id")
	}
	if len(resp.Bookings) != 2 {
		t.Fatalf("expected 2 slot rows, got %d", len(resp.Bookings))
	}
	if len(store.rows) != 2 {
		t.Fatalf("store holds %d rows, want 2", len(store.rows))
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatal("response must not leak password material")
	}
}

func TestCreateBookingValidation(t *testing.T) {
	h, _, _, store := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/bookings",
		`{"room_id":1,"date":"2024-06-10","start_time":"07:00","end_time":"08:30","user_name":"Kim","password":"pw"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400: %s", rec.Code, rec.Body.String())
	}
	if len(store.rows) != 0 {
		t.Fatalf("validation failure must not write rows, found %d", len(store.rows))
	}
}

func TestCreateBookingConflict(t *testing.T) {
	h, _, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/bookings",
		`{"room_id":1,"date":"2024-06-10","start_time":"08:00","end_time":"09:00","user_name":"Kim","password":"pw"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("first create status %d, want 201", rec.Code)
	}

	c, rec = doJSON(e, http.MethodPost, "/v1/bookings",
		`{"room_id":1,"date":"2024-06-10","start_time":"08:30","end_time":"10:00","user_name":"Lee","password":"x"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("second create: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status %d, want 409: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Slot string `json:"slot"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Slot != "08:30" {
		t.Fatalf("conflicting slot %q, want 08:30", resp.Slot)
	}
}

func TestCancelBooking(t *testing.T) {
	h, _, _, store := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/bookings",
		`{"room_id":1,"date":"2024-06-10","start_time":"09:00","end_time":"10:00","user_name":"Kim","password":"pw"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status %d, want 201", rec.Code)
	}

	// Wrong password is declined and deletes nothing.
	c, rec = doJSON(e, http.MethodDelete, "/v1/bookings/1", `{"password":"nope"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Cancel(c); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status %d, want 403", rec.Code)
	}
	if len(store.rows) != 3 {
		t.Fatalf("store holds %d rows, want 3 after declined cancel", len(store.rows))
	}

	// Matching password removes the whole group.
	c, rec = doJSON(e, http.MethodDelete, "/v1/bookings/2", `{"password":"pw"}`)
	c.SetParamNames("id")
	c.SetParamValues("2")
	if err := h.Cancel(c); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d, want 204", rec.Code)
	}
	if len(store.rows) != 0 {
		t.Fatalf("store holds %d rows, want 0 after cancellation", len(store.rows))
	}
}

func TestCancelBookingNotFound(t *testing.T) {
	h, _, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodDelete, "/v1/bookings/42", `{"password":"pw"}`)
	c.SetParamNames("id")
	c.SetParamValues("42")
	if err := h.Cancel(c); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestCalendarWeekOffsetOutOfRange(t *testing.T) {
	_, cal, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodGet, "/v1/calendar?week_offset=99", "")
	if err := cal.Week(c); err != nil {
		t.Fatalf("week: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := resp["warning"]; !ok {
		t.Fatal("expected a warning for an out-of-range offset")
	}
}

func TestCalendarWeek(t *testing.T) {
	_, cal, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodGet, "/v1/calendar?week_offset=1", "")
	if err := cal.Week(c); err != nil {
		t.Fatalf("week: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var resp struct {
		Calendar struct {
			WeekOffset int      `json:"week_offset"`
			Dates      []string `json:"dates"`
			TimeSlots  []string `json:"time_slots"`
		} `json:"calendar"`
		Warning string `json:"warning"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Warning != "" {
		t.Fatalf("unexpected warning %q", resp.Warning)
	}
	if resp.Calendar.WeekOffset != 1 {
		t.Fatalf("week offset %d, want 1", resp.Calendar.WeekOffset)
	}
	if len(resp.Calendar.Dates) != 7 || len(resp.Calendar.TimeSlots) != 29 {
		t.Fatalf("grid dimensions %dx%d, want 7x29", len(resp.Calendar.Dates), len(resp.Calendar.TimeSlots))
	}
}

func TestListRooms(t *testing.T) {
	_, _, rooms, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodGet, "/v1/rooms", "")
	if err := rooms.List(c); err != nil {
		t.Fatalf("list rooms: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var resp struct {
		Items []model.Room `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 3 {
		t.Fatalf("%d rooms, want 3", len(resp.Items))
	}
}

func TestRecentReportBadSince(t *testing.T) {
	h, _, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodGet, "/v1/reports/recent?since=tomorrow", "")
	if err := h.Recent(c); err != nil {
		t.Fatalf("recent: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}
