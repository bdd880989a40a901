package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"freightdesk/internal/domain"
	"freightdesk/internal/export"
	"freightdesk/internal/freight"
	"freightdesk/internal/service"
)

// EwayBillHandler handles the e-way bill expiry tracker endpoints.
type EwayBillHandler struct {
	ewayBillService service.EwayBillService
}

// NewEwayBillHandler creates a new EwayBillHandler.
func NewEwayBillHandler(ewayBillService service.EwayBillService) *EwayBillHandler {
	return &EwayBillHandler{ewayBillService: ewayBillService}
}

func billFilter(c *gin.Context) domain.EwayBillFilter {
	return domain.EwayBillFilter{
		Query:  c.Query("q"),
		Status: freight.Severity(strings.ToLower(c.Query("status"))),
	}
}

// List handles GET /api/v1/eway-bills
// @Summary List e-way bills
// @Description Lists e-way bills classified against the current time, soonest expiry first
// @Tags eway-bills
// @Produce json
// @Param q query string false "Search LR, e-way bill number, vehicle, consignor or consignee"
// @Param status query string false "Severity" Enums(expired, critical, warning, active)
// @Success 200 {object} APIResponse{data=[]EwayBillStatusBody} "Classified e-way bills"
// @Failure 400 {object} ErrorResponseBody "Invalid status"
// @Router /eway-bills [get]
func (h *EwayBillHandler) List(c *gin.Context) {
	bills, err := h.ewayBillService.List(c.Request.Context(), billFilter(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, bills)
}

// Summary handles GET /api/v1/eway-bills/summary
// @Summary E-way bill expiry summary
// @Tags eway-bills
// @Produce json
// @Success 200 {object} APIResponse{data=freight.ExpirySummary} "Counts per severity"
// @Router /eway-bills/summary [get]
func (h *EwayBillHandler) Summary(c *gin.Context) {
	sum, err := h.ewayBillService.Summary(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, sum)
}

// Register handles POST /api/v1/eway-bills
// @Summary Register an e-way bill
// @Tags eway-bills
// @Accept json
// @Produce json
// @Param request body RegisterEwayBillRequest true "E-way bill details"
// @Success 201 {object} APIResponse{data=EwayBillStatusBody} "Registered and classified"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 409 {object} ErrorResponseBody "E-way bill number already registered"
// @Router /eway-bills [post]
func (h *EwayBillHandler) Register(c *gin.Context) {
	var req RegisterEwayBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "eway_bill_number and vehicle_number are required")
		return
	}

	bill, err := h.ewayBillService.Register(c.Request.Context(), req.toInput())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, bill)
}

// Export handles GET /api/v1/eway-bills/export
// @Summary Download the expiry report
// @Description Downloads the filtered e-way bill list as CSV or XLSX with times in IST
// @Tags eway-bills
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "File format" Enums(csv, xlsx) default(csv)
// @Param q query string false "Search text"
// @Param status query string false "Severity" Enums(expired, critical, warning, active)
// @Success 200 {file} file "Report file"
// @Failure 400 {object} ErrorResponseBody "Invalid format or status"
// @Router /eway-bills/export [get]
func (h *EwayBillHandler) Export(c *gin.Context) {
	format := domain.ExportFormat(strings.ToLower(c.DefaultQuery("format", string(domain.ExportFormatCSV))))
	filter := billFilter(c)

	var buf bytes.Buffer
	if err := h.ewayBillService.ExportReport(c.Request.Context(), filter, format, &buf); err != nil {
		HandleError(c, err)
		return
	}

	name := "eway_bills"
	if filter.Status != "" {
		name += "_" + string(filter.Status)
	}
	filename := export.BuildFilename(name, string(format), time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, domain.ExportContentTypes[format], buf.Bytes())
}
