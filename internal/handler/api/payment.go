package api

import (
	"net/http"

	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentQueries queries.PaymentQueries
}

func NewPaymentHandler(paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentQueries: paymentQueries,
	}
}

// @Summary List payments
// @Description List recorded payments, optionally for one reservation
// @Tags payments
// @Produce json
// @Param reservation_id query string false "Reservation ID filter"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var reservationID *uuid.UUID
	if raw := c.Query("reservation_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reservation ID",
			})
			return
		}
		reservationID = &id
	}

	views, err := h.paymentQueries.List(c.Request.Context(), reservationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}
