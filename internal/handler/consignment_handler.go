package handler

import (
	"github.com/gin-gonic/gin"

	"freightdesk/internal/domain"
	"freightdesk/internal/service"
)

// ConsignmentHandler handles the LR register endpoints.
type ConsignmentHandler struct {
	consignmentService service.ConsignmentService
}

// NewConsignmentHandler creates a new ConsignmentHandler.
func NewConsignmentHandler(consignmentService service.ConsignmentService) *ConsignmentHandler {
	return &ConsignmentHandler{consignmentService: consignmentService}
}

// List handles GET /api/v1/consignments
// @Summary List consignments
// @Description Lists booked LRs, newest first, for picking what to invoice
// @Tags consignments
// @Produce json
// @Param status query string false "Dispatch status" Enums(pending, in_transit, delivered, billed)
// @Param customer_gstin query string false "Consignor GSTIN"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Consignment,meta=PagMeta} "List of consignments"
// @Failure 400 {object} ErrorResponseBody "Invalid status"
// @Router /consignments [get]
func (h *ConsignmentHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	consignments, total, err := h.consignmentService.List(c.Request.Context(), domain.ConsignmentFilter{
		Status:        domain.DispatchStatus(c.Query("status")),
		CustomerGSTIN: c.Query("customer_gstin"),
		Offset:        offset,
		Limit:         limit,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, consignments, PagMeta{Total: total, Offset: offset, Limit: limit})
}
