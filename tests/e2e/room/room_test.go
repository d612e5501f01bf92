//go:build e2e

package room_test

import (
	"fmt"
	"net/http"
	"testing"

	"hotelier/internal/handler/dto/response"
	"hotelier/tests/common/builder"
	"hotelier/tests/common/httptest"
	"hotelier/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	roomsURL            = "/api/rooms"
	guestsURL           = "/api/guests"
	reservationsURL     = "/api/reservations"
	roomSummaryURL      = "/api/rooms/summary"
	listAvailabilityURL = "/api/availability?check_in=%s&check_out=%s"
)

type RoomSuite struct {
	e2e.SharedSuite
}

func (s *RoomSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRoomSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RoomSuite))
}

func (s *RoomSuite) addRoom(number, roomType string, priceCents int64, capacity int) response.RoomResponse {
	t := s.T()
	reqBody := builder.NewRoomBuilder().
		WithNumber(number).
		WithType(roomType).
		WithPriceCents(priceCents).
		WithCapacity(capacity).
		BuildAddRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody)

	var room response.RoomResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &room)
	return room
}

// =============================================================================
// TestAddRoom - Room creation API tests
// =============================================================================

func (s *RoomSuite) TestAddRoom() {
	s.Run("Normal case: created room can be fetched back unchanged", func() {
		t := s.T()

		created := s.addRoom("201", "double", 12000, 2)
		require.Equal(t, "available", created.Status)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"/201", nil)
		var fetched response.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)

		if diff := cmp.Diff(created, fetched); diff != "" {
			t.Errorf("room mismatch (-created +fetched):\n%s", diff)
		}
	})

	s.Run("Error case: duplicate room number is rejected", func() {
		t := s.T()

		s.addRoom("201", "double", 12000, 2)

		reqBody := builder.NewRoomBuilder().WithNumber("201").BuildAddRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Room number already registered")
	})

	s.Run("Error case: invalid room type is rejected", func() {
		t := s.T()

		reqBody := builder.NewRoomBuilder().WithType("penthouse").BuildAddRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// TestListRooms - listing and status summary
// =============================================================================

func (s *RoomSuite) TestListRooms() {
	s.Run("Normal case: status filter and summary agree", func() {
		t := s.T()

		s.addRoom("101", "single", 8000, 1)
		s.addRoom("201", "double", 12000, 2)
		s.addRoom("301", "suite", 20000, 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, roomsURL+"/301/maintenance",
			map[string]any{"in_maintenance": true})
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		var listed []response.RoomResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"?status=available", nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 2)

		var summary response.RoomStatusSummaryResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, roomSummaryURL, nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &summary)
		require.Equal(t, 3, summary.Total)
		require.Equal(t, 2, summary.Available)
		require.Equal(t, 0, summary.Occupied)
		require.Equal(t, 1, summary.Maintenance)
	})
}

// =============================================================================
// TestMaintenance - maintenance flag interactions
// =============================================================================

func (s *RoomSuite) TestMaintenance() {
	s.Run("Normal case: maintenance rooms are excluded from availability", func() {
		t := s.T()

		s.addRoom("101", "single", 8000, 1)
		s.addRoom("201", "double", 12000, 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, roomsURL+"/101/maintenance",
			map[string]any{"in_maintenance": true})
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		url := fmt.Sprintf(listAvailabilityURL, "2026-09-01", "2026-09-04")
		var available []response.RoomResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &available)
		require.Len(t, available, 1)
		require.Equal(t, "201", available[0].Number)

		// Clearing the flag brings the room back
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, roomsURL+"/101/maintenance",
			map[string]any{"in_maintenance": false})
		var cleared response.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cleared)
		require.Equal(t, "available", cleared.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &available)
		require.Len(t, available, 2)
	})

	s.Run("Error case: reservations block entering maintenance", func() {
		t := s.T()

		s.addRoom("201", "double", 15000, 2)

		guestBody := builder.NewGuestBuilder().BuildRegisterRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, guestsURL, guestBody)
		var guest response.GuestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &guest)

		resBody := builder.NewReservationBuilder().
			WithRoomNumber("201").
			WithGuestID(guest.ID).
			WithDates("2026-09-01", "2026-09-04").
			BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, resBody)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, roomsURL+"/201/maintenance",
			map[string]any{"in_maintenance": true})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Room has active reservations")
	})

	s.Run("Error case: maintenance rooms cannot be reserved", func() {
		t := s.T()

		s.addRoom("201", "double", 15000, 2)

		guestBody := builder.NewGuestBuilder().BuildRegisterRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, guestsURL, guestBody)
		var guest response.GuestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &guest)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, roomsURL+"/201/maintenance",
			map[string]any{"in_maintenance": true})
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		resBody := builder.NewReservationBuilder().
			WithRoomNumber("201").
			WithGuestID(guest.ID).
			WithDates("2026-09-01", "2026-09-04").
			BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, resBody)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Room is not available for the requested dates")
	})
}
