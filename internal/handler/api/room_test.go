//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotelier/internal/handler/api"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"
	"hotelier/tests/common/builder"
	"hotelier/tests/common/httptest"
	commandsmock "hotelier/tests/mock/commands"
	queriesmock "hotelier/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
	handler      *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/rooms", s.handler.AddRoom)
	s.router.GET("/rooms", s.handler.ListRooms)
	s.router.GET("/rooms/summary", s.handler.GetStatusSummary)
	s.router.GET("/rooms/:number", s.handler.GetRoom)
	s.router.PUT("/rooms/:number/maintenance", s.handler.SetMaintenance)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestAddRoom() {
	reqBody := builder.NewRoomBuilder().BuildAddRequestDTO()
	returnView := builder.NewRoomBuilder().BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), gomock.Any()).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", reqBody)

		var body resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.Number, body.Number)
		s.Equal(returnView.PriceCents, body.PriceCents)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", map[string]any{"number": 42})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "invalid room", commandsError: errs.ErrInvalidRoom, expectedStatus: http.StatusBadRequest},
			{name: "duplicate room", commandsError: errs.ErrDuplicateRoom, expectedStatus: http.StatusConflict},
			{name: "unexpected failure", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *RoomHandlerTestSuite) TestListRooms() {
	s.Run("success: returns all rooms", func() {
		views := []*queries.RoomView{
			builder.NewRoomBuilder().WithNumber("101").BuildView(),
			builder.NewRoomBuilder().WithNumber("201").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Nil()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil)

		var body []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: filters by status", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Not(gomock.Nil())).
			Return([]*queries.RoomView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?status=available", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?status=broken", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room status")
	})
}

func (s *RoomHandlerTestSuite) TestGetRoom() {
	s.Run("success: returns the room", func() {
		view := builder.NewRoomBuilder().BuildView()
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), "201").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/201", nil)

		var body resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("201", body.Number)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), "999").Return(nil, errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/999", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

func (s *RoomHandlerTestSuite) TestGetStatusSummary() {
	summary := &queries.RoomStatusSummary{Total: 7, Available: 5, Occupied: 1, Maintenance: 1}
	s.mockQueries.EXPECT().StatusSummary(gomock.Any()).Return(summary, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/summary", nil)

	var body resdto.RoomStatusSummaryResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(7, body.Total)
	s.Equal(5, body.Available)
}

func (s *RoomHandlerTestSuite) TestSetMaintenance() {
	flag := true
	reqBody := map[string]any{"in_maintenance": flag}

	s.Run("success: returns the updated room", func() {
		view := builder.NewRoomBuilder().WithStatus("maintenance").BuildView()
		s.mockCommands.EXPECT().SetMaintenance(gomock.Any(), "201", true).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/rooms/201/maintenance", reqBody)

		var body resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("maintenance", body.Status)
	})

	s.Run("error: 400 when the flag is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/rooms/201/maintenance", map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 when the room has active reservations", func() {
		s.mockCommands.EXPECT().SetMaintenance(gomock.Any(), "201", true).
			Return(nil, errs.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/rooms/201/maintenance", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room has active reservations")
	})
}
