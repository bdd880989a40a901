package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/xuri/excelize/v2"
)

// RegisterRow is one e-way bill read from a register workbook. Row is the
// 1-based spreadsheet row it came from.
type RegisterRow struct {
	Row             int
	EwayBillNumber  string
	LRNumber        string
	VehicleNumber   string
	Consignor       string
	Consignee       string
	Origin          string
	Destination     string
	DistanceKm      int
	GeneratedAt     time.Time
	ValidityHours   int
	ExpiresAt       time.Time
	DriverName      string
	DriverPhone     string
	CurrentLocation string
}

type registerField int

const (
	fieldEwayBillNumber registerField = iota
	fieldLRNumber
	fieldVehicle
	fieldConsignor
	fieldConsignee
	fieldOrigin
	fieldDestination
	fieldDistance
	fieldGeneratedAt
	fieldValidity
	fieldExpiresAt
	fieldDriver
	fieldDriverPhone
	fieldLocation
)

// registerHeaders maps normalized header text to a field. The report's own
// headers are included so an exported workbook reads back unchanged.
var registerHeaders = map[string]registerField{
	"ewaybillno":      fieldEwayBillNumber,
	"ewaybillnumber":  fieldEwayBillNumber,
	"ewbno":           fieldEwayBillNumber,
	"lrnumber":        fieldLRNumber,
	"lrno":            fieldLRNumber,
	"vehicle":         fieldVehicle,
	"vehicleno":       fieldVehicle,
	"vehiclenumber":   fieldVehicle,
	"consignor":       fieldConsignor,
	"consignee":       fieldConsignee,
	"origin":          fieldOrigin,
	"from":            fieldOrigin,
	"destination":     fieldDestination,
	"to":              fieldDestination,
	"distancekm":      fieldDistance,
	"distance":        fieldDistance,
	"generatedatist":  fieldGeneratedAt,
	"generatedat":     fieldGeneratedAt,
	"ewbdate":         fieldGeneratedAt,
	"validityh":       fieldValidity,
	"validityhours":   fieldValidity,
	"validity":        fieldValidity,
	"expiresatist":    fieldExpiresAt,
	"expiresat":       fieldExpiresAt,
	"validupto":       fieldExpiresAt,
	"driver":          fieldDriver,
	"drivername":      fieldDriver,
	"driverphone":     fieldDriverPhone,
	"currentlocation": fieldLocation,
	"location":        fieldLocation,
}

var requiredRegisterFields = map[registerField]string{
	fieldEwayBillNumber: "E-way Bill No",
	fieldVehicle:        "Vehicle",
	fieldGeneratedAt:    "Generated At",
}

func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ReadEwayBillRegister reads e-way bills from an XLSX workbook. sheet
// defaults to the report sheet, falling back to the first sheet. Blank rows
// are skipped; a malformed number or timestamp fails the whole read.
func ReadEwayBillRegister(r io.Reader, sheet string) ([]RegisterRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = ewayBillSheet
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			sheet = f.GetSheetName(0)
		}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	columns := make(map[registerField]int)
	for i, h := range rows[0] {
		if field, ok := registerHeaders[normalizeHeader(h)]; ok {
			if _, dup := columns[field]; !dup {
				columns[field] = i
			}
		}
	}
	for field, name := range requiredRegisterFields {
		if _, ok := columns[field]; !ok {
			return nil, fmt.Errorf("sheet %q: missing column %q", sheet, name)
		}
	}

	var out []RegisterRow
	for i, cells := range rows[1:] {
		rowNum := i + 2
		if isBlankRow(cells) {
			continue
		}
		row, err := parseRegisterRow(cells, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		row.Row = rowNum
		out = append(out, row)
	}
	return out, nil
}

func parseRegisterRow(cells []string, columns map[registerField]int) (RegisterRow, error) {
	get := func(field registerField) string {
		idx, ok := columns[field]
		if !ok || idx >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[idx])
	}

	row := RegisterRow{
		EwayBillNumber:  get(fieldEwayBillNumber),
		LRNumber:        get(fieldLRNumber),
		VehicleNumber:   get(fieldVehicle),
		Consignor:       get(fieldConsignor),
		Consignee:       get(fieldConsignee),
		Origin:          get(fieldOrigin),
		Destination:     get(fieldDestination),
		DriverName:      get(fieldDriver),
		DriverPhone:     get(fieldDriverPhone),
		CurrentLocation: get(fieldLocation),
	}

	var err error
	if row.DistanceKm, err = parseIntCell("distance", get(fieldDistance)); err != nil {
		return row, err
	}
	if row.ValidityHours, err = parseIntCell("validity", get(fieldValidity)); err != nil {
		return row, err
	}
	if row.GeneratedAt, err = parseTimeCell("generated at", get(fieldGeneratedAt)); err != nil {
		return row, err
	}
	if row.ExpiresAt, err = parseTimeCell("expires at", get(fieldExpiresAt)); err != nil {
		return row, err
	}
	return row, nil
}

func parseIntCell(name, v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a whole number", name, v)
	}
	return n, nil
}

func parseTimeCell(name, v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := ParseTime(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
