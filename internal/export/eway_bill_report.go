package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"freightdesk/internal/domain"
	"freightdesk/internal/freight"
)

const ewayBillSheet = "E-way Bills"

var ewayBillColumns = []string{
	"E-way Bill No",
	"LR Number",
	"Vehicle",
	"Consignor",
	"Consignee",
	"Origin",
	"Destination",
	"Distance (km)",
	"Generated At (IST)",
	"Validity (h)",
	"Expires At (IST)",
	"Hours Remaining",
	"Status",
	"Driver",
	"Driver Phone",
	"Current Location",
}

var severityLabels = map[freight.Severity]string{
	freight.SeverityExpired:  "Expired",
	freight.SeverityCritical: "Critical",
	freight.SeverityWarning:  "Warning",
	freight.SeverityActive:   "Active",
}

// severityFills are the row highlight colors used in the XLSX report.
var severityFills = map[freight.Severity]string{
	freight.SeverityExpired:  "#FDE2E1",
	freight.SeverityCritical: "#FFE8CC",
	freight.SeverityWarning:  "#FFF6C7",
}

func ewayBillRow(b *domain.EwayBillStatus) []string {
	return []string{
		b.EwayBillNumber,
		b.LRNumber,
		b.VehicleNumber,
		b.Consignor,
		b.Consignee,
		b.Origin,
		b.Destination,
		strconv.Itoa(b.DistanceKm),
		FormatTime(b.GeneratedAt),
		strconv.Itoa(b.ValidityHours),
		FormatTime(b.ExpiresAt),
		strconv.Itoa(b.HoursRemaining),
		severityLabels[b.Status],
		b.DriverName,
		b.DriverPhone,
		b.CurrentLocation,
	}
}

// WriteEwayBillCSV writes the expiry report as CSV, BOM first.
func WriteEwayBillCSV(w io.Writer, bills []domain.EwayBillStatus) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(ewayBillColumns); err != nil {
		return err
	}
	for i := range bills {
		if err := cw.Write(ewayBillRow(&bills[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteEwayBillXLSX writes the expiry report as a single-sheet workbook with
// a frozen header row and rows shaded by severity.
func WriteEwayBillXLSX(w io.Writer, bills []domain.EwayBillStatus) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ewayBillSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]interface{}, len(ewayBillColumns))
	for i, c := range ewayBillColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(ewayBillSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E7EEF7"}},
	})
	if err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(ewayBillColumns))
	if err := f.SetCellStyle(ewayBillSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	fills := make(map[freight.Severity]int, len(severityFills))
	for sev, color := range severityFills {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		})
		if err != nil {
			return err
		}
		fills[sev] = id
	}

	for i := range bills {
		b := &bills[i]
		rowNum := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		row := []interface{}{
			b.EwayBillNumber, b.LRNumber, b.VehicleNumber, b.Consignor, b.Consignee,
			b.Origin, b.Destination, b.DistanceKm, FormatTime(b.GeneratedAt), b.ValidityHours,
			FormatTime(b.ExpiresAt), b.HoursRemaining, severityLabels[b.Status],
			b.DriverName, b.DriverPhone, b.CurrentLocation,
		}
		if err := f.SetSheetRow(ewayBillSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", rowNum, err)
		}
		if style, ok := fills[b.Status]; ok {
			end := fmt.Sprintf("%s%d", lastCol, rowNum)
			if err := f.SetCellStyle(ewayBillSheet, cell, end, style); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(ewayBillSheet, "A", lastCol, 18); err != nil {
		return err
	}
	if err := f.SetPanes(ewayBillSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	return f.Write(w)
}
