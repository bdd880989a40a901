package domain

import "errors"

var (
	ErrNotFound                 = errors.New("resource not found")
	ErrConsignmentNotFound      = errors.New("consignment not found")
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrEwayBillNotFound         = errors.New("e-way bill not found")
	ErrEmptySelection           = errors.New("no consignments selected")
	ErrConsignmentAlreadyBilled = errors.New("consignment is already billed")
	ErrDuplicateInvoiceNumber   = errors.New("invoice number already exists")
	ErrDuplicateEwayBill        = errors.New("e-way bill number already exists")
	ErrInvalidSupplyType        = errors.New("invalid supply type")
	ErrInvalidStatusFilter      = errors.New("invalid status filter")
	ErrUnsupportedExportFormat  = errors.New("unsupported export format")
	ErrUploadFailed             = errors.New("file upload to storage failed")
)
