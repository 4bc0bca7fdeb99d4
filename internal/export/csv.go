// Package export renders ledger records as downloadable CSV reports. The
// encoding is deliberately minimal: header row as-is, every cell wrapped in
// double quotes with embedded quotes doubled. It is not a full RFC 4180
// implementation.
package export

import (
	"errors"
	"strconv"
	"strings"

	"github.com/deepakshresthadhd-design/Group/internal/domain"
)

// Encode joins a header row and quoted data rows with newlines.
func Encode(headers []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// InventoryCSV exports the full product list.
func InventoryCSV(products []domain.Product) (string, error) {
	if len(products) == 0 {
		return "", errors.New("no inventory data to export")
	}
	headers := []string{"Product ID", "Name", "Category", "Unit", "Cost Price", "Selling Price", "Current Stock", "Min Stock Alert"}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Category,
			p.Unit,
			formatAmount(p.CostPrice),
			formatAmount(p.SellPrice),
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.MinStock),
		})
	}
	return Encode(headers, rows), nil
}

// SalesCSV exports a (typically timeframe-filtered) slice of sales.
func SalesCSV(sales []domain.Sale) (string, error) {
	if len(sales) == 0 {
		return "", errors.New("no sales records to export")
	}
	headers := []string{"Date", "Product", "Customer", "Payment Type", "Quantity", "Total Amount", "Notes"}
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		customer := s.CustomerName
		if customer == "" {
			customer = "Walk-in"
		}
		rows = append(rows, []string{
			s.Date,
			s.ProductName,
			customer,
			string(s.PaymentType),
			strconv.Itoa(s.Quantity),
			formatAmount(s.TotalAmount),
			s.Notes,
		})
	}
	return Encode(headers, rows), nil
}

// PurchasesCSV exports a (typically timeframe-filtered) slice of purchases.
func PurchasesCSV(purchases []domain.Purchase) (string, error) {
	if len(purchases) == 0 {
		return "", errors.New("no purchase records to export")
	}
	headers := []string{"Date", "Product", "Supplier", "Quantity", "Cost per Unit", "Total Cost", "Notes"}
	rows := make([][]string, 0, len(purchases))
	for _, p := range purchases {
		supplier := p.SupplierName
		if supplier == "" {
			supplier = "General"
		}
		rows = append(rows, []string{
			p.Date,
			p.ProductName,
			supplier,
			strconv.Itoa(p.Quantity),
			formatAmount(p.CostPerUnit),
			formatAmount(p.TotalCost),
			p.Notes,
		})
	}
	return Encode(headers, rows), nil
}

// CustomersCSV exports the customer credit report.
func CustomersCSV(customers []domain.Customer) (string, error) {
	if len(customers) == 0 {
		return "", errors.New("no customer data to export")
	}
	headers := []string{"Customer ID", "Customer Name", "Primary Phone", "Alternative Phone", "Total Credit Amount", "Total Paid Amount", "Remaining Balance (Udhar)"}
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			c.ID,
			c.Name,
			c.Phone,
			c.PhoneAlt,
			formatAmount(c.TotalCredit),
			formatAmount(c.PaidAmount),
			formatAmount(c.Balance()),
		})
	}
	return Encode(headers, rows), nil
}
