package api

import (
	"errors"
	"net/http"
	"strconv"

	"hotelier/internal/domain/reservation"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

type availabilityResult struct {
	RoomNumber string `json:"roomNumber"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Available  bool   `json:"available"`
}

// @Summary Check room availability
// @Description Check whether a room is free for a date range
// @Tags availability
// @Produce json
// @Param number path string true "Room number"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} availabilityResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{number}/availability [get]
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	period, ok := bindStayPeriod(c)
	if !ok {
		return
	}

	number := c.Param("number")
	available, err := h.availabilityQueries.IsAvailable(c.Request.Context(), number, period)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, availabilityResult{
		RoomNumber: number,
		CheckIn:    period.CheckIn().Format(reservation.DateLayout),
		CheckOut:   period.CheckOut().Format(reservation.DateLayout),
		Available:  available,
	})
}

// @Summary List available rooms
// @Description List rooms free for the whole date range
// @Tags availability
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param capacity query int false "Minimum capacity"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) ListAvailableRooms(c *gin.Context) {
	period, ok := bindStayPeriod(c)
	if !ok {
		return
	}

	var minCapacity *int
	if raw := c.Query("capacity"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid capacity",
			})
			return
		}
		minCapacity = &n
	}

	views, err := h.availabilityQueries.ListAvailableRooms(c.Request.Context(), period, minCapacity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

func bindStayPeriod(c *gin.Context) (reservation.StayPeriod, bool) {
	period, err := reservation.ParseStayPeriod(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date range",
		})
		return reservation.StayPeriod{}, false
	}
	return period, true
}
