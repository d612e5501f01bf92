package api

import (
	"errors"
	"net/http"

	"hotelier/internal/domain/room"
	reqdto "hotelier/internal/handler/dto/request"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

// @Summary Add room
// @Description Register a new room in the inventory
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.AddRoomRequest true "Room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) AddRoom(c *gin.Context) {
	var req reqdto.AddRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.roomCommands.Add(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidRoom):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room attributes",
			})
		case errors.Is(err, errs.ErrDuplicateRoom):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room number already registered",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary List rooms
// @Description List rooms, optionally filtered by status
// @Tags rooms
// @Produce json
// @Param status query string false "Room status filter" Enums(available, occupied, maintenance)
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var status *room.Status
	if raw := c.Query("status"); raw != "" {
		s := room.Status(raw)
		if !s.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room status",
			})
			return
		}
		status = &s
	}

	views, err := h.roomQueries.List(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Description Get a room by its number
// @Tags rooms
// @Produce json
// @Param number path string true "Room number"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{number} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	view, err := h.roomQueries.GetByNumber(c.Request.Context(), c.Param("number"))
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

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Room status summary
// @Description Count rooms per status
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.RoomStatusSummaryResponse
// @Router /rooms/summary [get]
func (h *RoomHandler) GetStatusSummary(c *gin.Context) {
	summary, err := h.roomQueries.StatusSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomStatusSummary(summary))
}

// @Summary Set room maintenance
// @Description Put a room into or take it out of maintenance
// @Tags rooms
// @Accept json
// @Produce json
// @Param number path string true "Room number"
// @Param request body reqdto.SetMaintenanceRequest true "Maintenance flag"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{number}/maintenance [put]
func (h *RoomHandler) SetMaintenance(c *gin.Context) {
	var req reqdto.SetMaintenanceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.roomCommands.SetMaintenance(c.Request.Context(), c.Param("number"), *req.InMaintenance)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, errs.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room has active reservations",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}
