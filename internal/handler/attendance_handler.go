package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/models"
	"github.com/noah-isme/eduguru-api/internal/service"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// AttendanceHandler exposes the attendance read endpoint.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs an AttendanceHandler.
func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// List godoc
// @Summary      List attendance records
// @Tags         Attendance
// @Produce      json
// @Security     BearerAuth
// @Param        classId query string false "Filter by class"
// @Param        date query string false "Filter by date (YYYY-MM-DD)"
// @Param        subject query string false "Filter by subject"
// @Success      200 {array} models.Attendance
// @Router       /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filter := models.AttendanceFilter{
		ClassID: c.Query("classId"),
		Date:    c.Query("date"),
		Subject: c.Query("subject"),
	}
	records, err := h.attendance.List(c.Request.Context(), userID, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, records)
}
