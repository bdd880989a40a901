package domain

// DispatchStatus tracks a consignment from booking to billing.
type DispatchStatus string

const (
	DispatchStatusPending   DispatchStatus = "pending"
	DispatchStatusInTransit DispatchStatus = "in_transit"
	DispatchStatusDelivered DispatchStatus = "delivered"
	DispatchStatusBilled    DispatchStatus = "billed"
)

var validDispatchStatuses = map[DispatchStatus]bool{
	DispatchStatusPending:   true,
	DispatchStatusInTransit: true,
	DispatchStatusDelivered: true,
	DispatchStatusBilled:    true,
}

// Valid reports whether s is a known dispatch status.
func (s DispatchStatus) Valid() bool {
	return validDispatchStatuses[s]
}

// SupplyType selects how GST is split on an invoice.
type SupplyType string

const (
	// SupplyTypeAuto decides from the supplier and customer GSTIN state codes.
	SupplyTypeAuto  SupplyType = "auto"
	SupplyTypeIntra SupplyType = "intra_state"
	SupplyTypeInter SupplyType = "inter_state"
)

// Valid reports whether t is a known supply type.
func (t SupplyType) Valid() bool {
	switch t {
	case SupplyTypeAuto, SupplyTypeIntra, SupplyTypeInter:
		return true
	}
	return false
}

// ExportFormat is a report download format.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ExportContentTypes maps export formats to their MIME types.
var ExportContentTypes = map[ExportFormat]string{
	ExportFormatCSV:  "text/csv",
	ExportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// DefaultSACCode is the GST services code for goods transport agency services.
const DefaultSACCode = "996791"
