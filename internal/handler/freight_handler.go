package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freightdesk/internal/freight"
	"freightdesk/internal/service"
)

// FreightHandler exposes the LR quote and tax calculators.
type FreightHandler struct {
	freightService service.FreightService
}

// NewFreightHandler creates a new FreightHandler.
func NewFreightHandler(freightService service.FreightService) *FreightHandler {
	return &FreightHandler{freightService: freightService}
}

// Quote handles POST /api/v1/freight/quote
// @Summary Quote LR charges
// @Description Totals the charge fields of the LR capture form and applies flat GST (18% when gst_rate is blank). Blank or non-numeric amounts count as zero.
// @Tags freight
// @Accept json
// @Produce json
// @Param request body freight.ChargeForm true "LR charge fields as typed"
// @Success 200 {object} APIResponse{data=FreightTotalsBody} "Computed totals"
// @Failure 400 {object} ErrorResponseBody "Malformed JSON"
// @Router /freight/quote [post]
func (h *FreightHandler) Quote(c *gin.Context) {
	var form freight.ChargeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be a JSON object of charge fields")
		return
	}

	RespondOK(c, h.freightService.Quote(form))
}

// ApplyTax handles POST /api/v1/freight/tax
// @Summary Apply GST to a subtotal
// @Description Applies an explicit flat or split rate, or derives CGST+SGST / IGST from supply_type and the GSTIN state codes.
// @Tags freight
// @Accept json
// @Produce json
// @Param request body ApplyTaxRequest true "Subtotal and tax configuration"
// @Success 200 {object} APIResponse{data=FreightTotalsBody} "Computed totals"
// @Failure 400 {object} ErrorResponseBody "Invalid rate or subtotal"
// @Router /freight/tax [post]
func (h *FreightHandler) ApplyTax(c *gin.Context) {
	var req ApplyTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "subtotal must be a decimal number")
		return
	}

	totals, err := h.freightService.ApplyTax(&service.TaxInput{
		Subtotal:       req.Subtotal,
		Rate:           req.Rate,
		SupplyType:     req.SupplyType,
		GSTRate:        req.GSTRate,
		SupplierGSTIN:  req.SupplierGSTIN,
		RecipientGSTIN: req.RecipientGSTIN,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, totals)
}
