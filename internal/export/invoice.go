package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"freightdesk/internal/domain"
)

// WriteInvoiceCSV renders a stored invoice: a header block, the charge lines
// and the tax summary.
func WriteInvoiceCSV(w io.Writer, inv *domain.Invoice) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Tax Invoice"},
		{"Invoice No", inv.InvoiceNumber},
		{"Invoice Date", FormatDate(inv.InvoiceDate)},
		{"Customer", inv.CustomerName},
		{"Address", inv.CustomerAddress},
		{"Customer GSTIN", inv.CustomerGSTIN},
		{"Supplier GSTIN", inv.SupplierGSTIN},
		{"SAC", inv.SACCode},
		{},
		{"#", "Kind", "Description", "Amount"},
	}
	for _, l := range inv.Lines {
		rows = append(rows, []string{strconv.Itoa(l.Position), string(l.Kind), l.Description, FormatMoney(l.Amount)})
	}
	rows = append(rows, []string{}, []string{"Subtotal", "", "", FormatMoney(inv.Subtotal)})
	for _, tx := range inv.Taxes {
		rows = append(rows, []string{tx.Name, tx.RatePercent.String() + "%", "", FormatMoney(tx.Amount)})
	}
	rows = append(rows, []string{"Total", "", "", FormatMoney(inv.Total)})

	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
