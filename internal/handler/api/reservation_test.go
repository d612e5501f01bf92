//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotelier/internal/handler/api"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"
	"hotelier/tests/common/builder"
	"hotelier/tests/common/httptest"
	commandsmock "hotelier/tests/mock/commands"
	queriesmock "hotelier/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations", s.handler.ListReservations)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.POST("/reservations/:id/check-in", s.handler.CheckIn)
	s.router.POST("/reservations/:id/check-out", s.handler.CheckOut)
	s.router.POST("/reservations/:id/cancel", s.handler.CancelReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("2026-09-01", body.CheckInDate)
		s.Equal("2026-09-04", body.CheckOutDate)
		s.Equal(3, body.Nights)
		s.Equal(int64(45000), body.TotalCents)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", map[string]any{"room_number": 7})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "invalid range", commandsError: errs.ErrInvalidStayPeriod, expectedStatus: http.StatusBadRequest},
			{name: "invalid method hint", commandsError: errs.ErrInvalidPaymentMethod, expectedStatus: http.StatusBadRequest},
			{name: "room missing", commandsError: errs.ErrRoomNotFound, expectedStatus: http.StatusNotFound},
			{name: "guest missing", commandsError: errs.ErrGuestNotFound, expectedStatus: http.StatusNotFound},
			{name: "dates taken", commandsError: errs.ErrRoomUnavailable, expectedStatus: http.StatusConflict},
			{name: "unexpected failure", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+returnView.ID.String(), nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	s.Run("success: passes filters through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
				s.Require().NotNil(filter.Status)
				s.Equal("confirmed", *filter.Status)
				s.Require().NotNil(filter.RoomNumber)
				s.Equal("201", *filter.RoomNumber)
				return []*queries.ReservationView{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?status=confirmed&room_number=201", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *ReservationHandlerTestSuite) TestCheckIn() {
	returnView := builder.NewReservationBuilder().WithStatus("checked_in").BuildView()

	s.Run("success: returns the checked-in reservation", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+returnView.ID.String()+"/check-in", nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("checked_in", body.Status)
	})

	s.Run("error: 409 on invalid transition", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id).Return(nil, errs.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-in", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *ReservationHandlerTestSuite) TestCheckOut() {
	resView := builder.NewReservationBuilder().WithStatus("checked_out").BuildView()
	payView := &queries.PaymentView{
		ID:            uuid.New(),
		ReservationID: resView.ID,
		AmountCents:   45000,
		Method:        "card",
		Status:        "recorded",
	}
	result := &commands.CheckOutResult{Reservation: resView, Payment: payView}

	s.Run("success: returns reservation and payment", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), resView.ID, gomock.Nil()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+resView.ID.String()+"/check-out", nil)

		var body resdto.CheckOutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("checked_out", body.Reservation.Status)
		s.Require().NotNil(body.Payment)
		s.Equal(int64(45000), body.Payment.AmountCents)
	})

	s.Run("success: forwards the explicit method", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), resView.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, method *string) (*commands.CheckOutResult, error) {
				s.Require().NotNil(method)
				s.Equal("cash", *method)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+resView.ID.String()+"/check-out", map[string]any{"method": "cash"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "no method resolvable", commandsError: errs.ErrInvalidPaymentMethod, expectedStatus: http.StatusBadRequest},
			{name: "payment already recorded", commandsError: errs.ErrDuplicatePayment, expectedStatus: http.StatusConflict},
			{name: "not checked in", commandsError: errs.ErrInvalidTransition, expectedStatus: http.StatusConflict},
			{name: "missing reservation", commandsError: errs.ErrReservationNotFound, expectedStatus: http.StatusNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				id := uuid.New()
				s.mockCommands.EXPECT().CheckOut(gomock.Any(), id, gomock.Any()).Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-out", nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	returnView := builder.NewReservationBuilder().WithStatus("cancelled").BuildView()

	s.Run("success: returns the cancelled reservation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+returnView.ID.String()+"/cancel", nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 409 after check-in", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(nil, errs.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Reservation status does not allow this operation")
	})
}
