package handlers

import (
	"net/http"

	"lumiere/services/booking"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Booking booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Booking: svc}
}

// AvailabilityHandler handles GET /api/appointments/availability.
// Query params: date (YYYY-MM-DD), serviceId, optional excludeAppointmentId
// so a reschedule does not collide with the slot it is vacating.
func (h *BookingHandler) AvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	serviceID := c.Query("serviceId")
	if date == "" || serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and serviceId are required"})
		return
	}

	slots, err := h.Booking.GetAvailability(date, serviceID, c.Query("excludeAppointmentId"))
	if err != nil {
		utils.GetLogger().Error("Availability computation failed", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// BookHandler handles POST /api/appointments.
func (h *BookingHandler) BookHandler(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}

	var req booking.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Booking.Book(clientID, req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// RescheduleHandler handles PUT /api/appointments/:id/reschedule.
func (h *BookingHandler) RescheduleHandler(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}

	var req booking.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Booking.Reschedule(clientID, c.Param("id"), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListMineHandler handles GET /api/appointments/mine.
func (h *BookingHandler) ListMineHandler(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}
	appts, err := h.Booking.ListForClient(clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ResolveContestHandler handles POST /api/appointments/:id/resolve.
// The customer accepts or declines an admin's counter-proposal.
func (h *BookingHandler) ResolveContestHandler(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}

	var req struct {
		Accept *bool `json:"accept" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Booking.ResolveContest(clientID, c.Param("id"), *req.Accept)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// writeBookingError maps booking service errors onto HTTP responses.
func writeBookingError(c *gin.Context, err error) {
	switch e := err.(type) {
	case booking.SlotTakenError:
		c.JSON(http.StatusConflict, gin.H{"error": e.Error()})
	case booking.ClosedError:
		c.JSON(http.StatusConflict, gin.H{"error": e.Error()})
	case booking.NotOwnerError:
		utils.AuditDenied(c, "appointment access", gin.H{"appointmentId": c.Param("id")})
		c.JSON(http.StatusForbidden, gin.H{"error": e.Error()})
	case booking.InvalidTransitionError:
		c.JSON(http.StatusConflict, gin.H{"error": e.Error()})
	default:
		utils.GetLogger().Error("Booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
