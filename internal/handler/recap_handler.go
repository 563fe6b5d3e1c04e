package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduguru-api/internal/models"
	"github.com/noah-isme/eduguru-api/internal/service"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
	"github.com/noah-isme/eduguru-api/pkg/export"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// RecapHandler exposes the attendance and score recap endpoints with
// JSON, CSV and PDF output.
type RecapHandler struct {
	recap *service.RecapService
	csv   *export.CSVRenderer
	pdf   *export.PDFRenderer
}

// NewRecapHandler constructs a RecapHandler.
func NewRecapHandler(recap *service.RecapService) *RecapHandler {
	return &RecapHandler{
		recap: recap,
		csv:   export.NewCSVRenderer(),
		pdf:   export.NewPDFRenderer(),
	}
}

// Attendance godoc
// @Summary      Attendance recap per student for a class and period
// @Tags         Recap
// @Produce      json
// @Security     BearerAuth
// @Param        classId query string true "Class id"
// @Param        subject query string false "Narrow to a subject"
// @Param        year query int false "Calendar year"
// @Param        semester query string false "ODD or EVEN"
// @Param        months query string false "Comma-separated month numbers"
// @Param        format query string false "json, csv or pdf"
// @Success      200 {array} models.AttendanceRecapRow
// @Router       /recap/attendance [get]
func (h *RecapHandler) Attendance(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rows, err := h.recap.AttendanceRecap(c.Request.Context(), userID, c.Query("classId"), c.Query("subject"), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "json"))
	if format == "json" {
		response.OK(c, rows)
		return
	}

	table := export.Table{
		Title:    "Rekap Kehadiran",
		Subtitle: recapSubtitle(c, period),
		Headers:  []string{"No", "Nama Siswa", "Hadir", "Sakit", "Izin", "Alpha", "Total", "%"},
	}
	for i, row := range rows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			row.StudentName,
			strconv.Itoa(row.Present),
			strconv.Itoa(row.Sick),
			strconv.Itoa(row.Excused),
			strconv.Itoa(row.Absent),
			strconv.Itoa(row.Total),
			fmt.Sprintf("%.1f", row.Percentage),
		})
	}
	h.render(c, format, "rekap-kehadiran", table)
}

// Scores godoc
// @Summary      Pivoted score recap for a class and period
// @Tags         Recap
// @Produce      json
// @Security     BearerAuth
// @Param        classId query string true "Class id"
// @Param        subject query string false "Narrow to a subject"
// @Param        year query int false "Calendar year"
// @Param        semester query string false "ODD or EVEN"
// @Param        months query string false "Comma-separated month numbers"
// @Param        format query string false "json, csv or pdf"
// @Success      200 {object} models.ScoreRecap
// @Router       /recap/scores [get]
func (h *RecapHandler) Scores(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	recap, err := h.recap.ScoreRecap(c.Request.Context(), userID, c.Query("classId"), c.Query("subject"), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "json"))
	if format == "json" {
		response.OK(c, recap)
		return
	}

	table := export.Table{
		Title:    "Rekap Nilai",
		Subtitle: recapSubtitle(c, period),
		Headers:  []string{"No", "Nama Siswa"},
	}
	for _, col := range recap.Columns {
		table.Headers = append(table.Headers, col.Title)
	}
	table.Headers = append(table.Headers, "Rata-rata")

	for i, row := range recap.Rows {
		cells := []string{strconv.Itoa(i + 1), row.StudentName}
		for _, v := range row.Values {
			if v == nil {
				cells = append(cells, "")
			} else {
				cells = append(cells, strconv.Itoa(*v))
			}
		}
		cells = append(cells, fmt.Sprintf("%.1f", row.Average))
		table.Rows = append(table.Rows, cells)
	}
	h.render(c, format, "rekap-nilai", table)
}

func (h *RecapHandler) render(c *gin.Context, format, basename string, table export.Table) {
	switch format {
	case "csv":
		data, err := h.csv.Render(table)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", basename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	case "pdf":
		data, err := h.pdf.Render(table)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", basename))
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		response.Error(c, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Unsupported format"))
	}
}

func parsePeriod(c *gin.Context) (models.Period, error) {
	var period models.Period

	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return period, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid year")
		}
		period.Year = year
	}

	if raw := c.Query("semester"); raw != "" {
		semester := models.Semester(strings.ToUpper(raw))
		if !semester.Valid() {
			return period, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Semester must be ODD or EVEN")
		}
		period.Semester = semester
	}

	if raw := c.Query("months"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n < 1 || n > 12 {
				return period, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid month list")
			}
			period.Months = append(period.Months, time.Month(n))
		}
	}

	return period, nil
}

func recapSubtitle(c *gin.Context, period models.Period) string {
	parts := []string{}
	if classID := c.Query("classId"); classID != "" {
		parts = append(parts, "Kelas "+classID)
	}
	if subject := c.Query("subject"); subject != "" {
		parts = append(parts, subject)
	}
	if period.Year != 0 {
		parts = append(parts, strconv.Itoa(period.Year))
	}
	switch period.Semester {
	case models.SemesterOdd:
		parts = append(parts, "Semester Ganjil")
	case models.SemesterEven:
		parts = append(parts, "Semester Genap")
	}
	return strings.Join(parts, " / ")
}
