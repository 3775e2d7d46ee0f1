package handlers

import (
	"net/http"

	"lumiere/models"
	"lumiere/services/booking"
	"lumiere/services/user"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler groups the admin-side appointment and user operations.
type AdminHandler struct {
	Booking booking.BookingService
	Users   user.UserService
}

func NewAdminHandler(bookingSvc booking.BookingService, userSvc user.UserService) *AdminHandler {
	return &AdminHandler{Booking: bookingSvc, Users: userSvc}
}

// ListDayHandler handles GET /api/admin/appointments?date=YYYY-MM-DD.
func (h *AdminHandler) ListDayHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	appts, err := h.Booking.ListForDay(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ListUnviewedHandler handles GET /api/admin/appointments/unviewed.
func (h *AdminHandler) ListUnviewedHandler(c *gin.Context) {
	appts, err := h.Booking.ListUnviewed()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// MarkViewedHandler handles POST /api/admin/appointments/mark-viewed.
// All IDs in the payload are flipped in a single bulk write.
func (h *AdminHandler) MarkViewedHandler(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Booking.MarkViewed(req.IDs); err != nil {
		utils.GetLogger().Error("Mark viewed failed", zap.Int("count", len(req.IDs)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointments marked viewed"})
}

// SetStatusHandler handles PUT /api/admin/appointments/:id/status.
func (h *AdminHandler) SetStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	appt, err := h.Booking.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ContestHandler handles POST /api/admin/appointments/:id/contest.
// The admin counters the booking with a different duration and price.
func (h *AdminHandler) ContestHandler(c *gin.Context) {
	var req struct {
		Reason                  string  `json:"reason" binding:"required"`
		ProposedDurationMinutes int     `json:"proposedDurationMinutes" binding:"required,gt=0"`
		ProposedPrice           float64 `json:"proposedPrice" binding:"required,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	appt, err := h.Booking.Contest(c.Param("id"), models.Contest{
		Reason:                  req.Reason,
		ProposedDurationMinutes: req.ProposedDurationMinutes,
		ProposedPrice:           req.ProposedPrice,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}
