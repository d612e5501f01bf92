package api

import (
	"errors"
	"net/http"

	reqdto "hotelier/internal/handler/dto/request"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestCommands commands.GuestCommands
	guestQueries  queries.GuestQueries
}

func NewGuestHandler(guestCommands commands.GuestCommands, guestQueries queries.GuestQueries) *GuestHandler {
	return &GuestHandler{
		guestCommands: guestCommands,
		guestQueries:  guestQueries,
	}
}

// @Summary Register guest
// @Description Register a guest; re-registering the same phone updates the record
// @Tags guests
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterGuestRequest true "Guest request"
// @Success 201 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Router /guests [post]
func (h *GuestHandler) RegisterGuest(c *gin.Context) {
	var req reqdto.RegisterGuestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.guestCommands.Register(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidGuest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid guest attributes",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGuestView(view))
}

// @Summary List guests
// @Description List all registered guests
// @Tags guests
// @Produce json
// @Success 200 {array} resdto.GuestResponse
// @Router /guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
	views, err := h.guestQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestViews(views))
}

// @Summary Get guest
// @Description Get a guest by phone number
// @Tags guests
// @Produce json
// @Param phone path string true "Phone number"
// @Success 200 {object} resdto.GuestResponse
// @Failure 404 {object} map[string]string
// @Router /guests/{phone} [get]
func (h *GuestHandler) GetGuest(c *gin.Context) {
	view, err := h.guestQueries.GetByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestView(view))
}
