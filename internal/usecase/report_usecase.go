package usecase

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/deepakshresthadhd-design/Group/internal/domain"
)

// TimeFrame selects the report window.
type TimeFrame string

const (
	TimeFrameDay   TimeFrame = "day"
	TimeFrameWeek  TimeFrame = "week"
	TimeFrameMonth TimeFrame = "month"
	TimeFrameAll   TimeFrame = "all"
)

func ParseTimeFrame(s string) (TimeFrame, error) {
	switch TimeFrame(s) {
	case TimeFrameDay, TimeFrameWeek, TimeFrameMonth, TimeFrameAll:
		return TimeFrame(s), nil
	case "":
		return TimeFrameAll, nil
	}
	return "", fmt.Errorf("invalid time frame: %s", s)
}

// SaleFilter narrows the sales history. Query is whitespace-split into
// keywords; a sale matches only if every keyword appears somewhere in its
// searchable fields.
type SaleFilter struct {
	Query       string
	PaymentType string // "", "all", "cash" or "credit"
	CustomerID  string // "" or "all" matches every customer
	DateFrom    string
	DateTo      string
}

type PurchaseFilter struct {
	Query    string
	DateFrom string
	DateTo   string
}

type ReportUseCase interface {
	DailySummary() domain.DailySummary
	Summary(frame TimeFrame) domain.ReportSummary
	SalesForFrame(frame TimeFrame) []domain.Sale
	PurchasesForFrame(frame TimeFrame) []domain.Purchase

	SearchSales(filter SaleFilter) ([]domain.Sale, float64)
	SearchPurchases(filter PurchaseFilter) ([]domain.Purchase, float64)
	SearchProducts(query string) []domain.Product
	ProductHistory(productID string) ([]domain.StockMovement, error)

	LowStock() []domain.Product
	InventoryValue() float64
	OutstandingCredit() float64
	RecentSales(n int) []domain.Sale
	RecentPurchases(n int) []domain.Purchase
}

type reportUseCase struct {
	ledger LedgerUseCase
	log    *logrus.Logger
	now    func() time.Time
}

func NewReportUseCase(ledger LedgerUseCase, logger *logrus.Logger) ReportUseCase {
	return &reportUseCase{
		ledger: ledger,
		log:    logger,
		now:    time.Now,
	}
}

const dateLayout = "2006-01-02"

// profitOf computes per-sale profit against the product's *current* cost
// price, not the cost at sale time. A sale whose product is gone contributes
// zero cost.
func profitOf(sale domain.Sale, data *domain.StoreData) float64 {
	cost := 0.0
	if product := data.FindProduct(sale.ProductID); product != nil {
		cost = product.CostPrice * float64(sale.Quantity)
	}
	return sale.TotalAmount - cost
}

func (uc *reportUseCase) DailySummary() domain.DailySummary {
	data := uc.ledger.Snapshot()
	todayPrefix := uc.now().Format(dateLayout)

	var summary domain.DailySummary
	for _, s := range data.Sales {
		if strings.HasPrefix(s.Date, todayPrefix) {
			summary.Sales += s.TotalAmount
			summary.Profit += profitOf(s, data)
		}
	}
	for _, p := range data.Purchases {
		if strings.HasPrefix(p.Date, todayPrefix) {
			summary.Purchases += p.TotalCost
		}
	}
	for _, p := range data.Products {
		if p.LowStock() {
			summary.LowStockItems++
		}
	}
	return summary
}

// threshold returns the earliest instant included in the frame, or a zero
// time for the unbounded frame.
func (uc *reportUseCase) threshold(frame TimeFrame) time.Time {
	now := uc.now()
	switch frame {
	case TimeFrameDay:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case TimeFrameWeek:
		return now.AddDate(0, 0, -7)
	case TimeFrameMonth:
		return now.AddDate(0, -1, 0)
	}
	return time.Time{}
}

func inFrame(date string, threshold time.Time) bool {
	if threshold.IsZero() {
		return true
	}
	t, err := time.ParseInLocation(dateLayout, date, threshold.Location())
	if err != nil {
		return false
	}
	return !t.Before(threshold)
}

func (uc *reportUseCase) SalesForFrame(frame TimeFrame) []domain.Sale {
	data := uc.ledger.Snapshot()
	threshold := uc.threshold(frame)
	out := []domain.Sale{}
	for _, s := range data.Sales {
		if inFrame(s.Date, threshold) {
			out = append(out, s)
		}
	}
	return out
}

func (uc *reportUseCase) PurchasesForFrame(frame TimeFrame) []domain.Purchase {
	data := uc.ledger.Snapshot()
	threshold := uc.threshold(frame)
	out := []domain.Purchase{}
	for _, p := range data.Purchases {
		if inFrame(p.Date, threshold) {
			out = append(out, p)
		}
	}
	return out
}

func (uc *reportUseCase) Summary(frame TimeFrame) domain.ReportSummary {
	data := uc.ledger.Snapshot()
	threshold := uc.threshold(frame)

	summary := domain.ReportSummary{TimeFrame: string(frame)}
	for _, s := range data.Sales {
		if !inFrame(s.Date, threshold) {
			continue
		}
		summary.SalesCount++
		summary.TotalSales += s.TotalAmount
		summary.Profit += profitOf(s, data)
	}
	for _, p := range data.Purchases {
		if !inFrame(p.Date, threshold) {
			continue
		}
		summary.PurchasesCount++
		summary.TotalPurchases += p.TotalCost
	}
	uc.log.Infof("Use Case: Report summary for frame '%s': %d sales, %d purchases", frame, summary.SalesCount, summary.PurchasesCount)
	return summary
}

func keywords(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

func matchesKeywords(content string, keys []string) bool {
	content = strings.ToLower(content)
	for _, k := range keys {
		if !strings.Contains(content, k) {
			return false
		}
	}
	return true
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func inDateRange(date, from, to string) bool {
	// Lexicographic comparison works because the format is fixed-width
	// YYYY-MM-DD.
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

// SearchSales returns matches newest-first along with their total amount.
func (uc *reportUseCase) SearchSales(filter SaleFilter) ([]domain.Sale, float64) {
	data := uc.ledger.Snapshot()
	keys := keywords(filter.Query)

	matched := []domain.Sale{}
	total := 0.0
	for _, s := range data.Sales {
		content := fmt.Sprintf("%s %s %s %s %s %s",
			s.ProductName, s.CustomerName, s.Notes, s.Date, s.PaymentType, formatAmount(s.TotalAmount))
		if !matchesKeywords(content, keys) {
			continue
		}
		if filter.PaymentType != "" && filter.PaymentType != "all" && string(s.PaymentType) != filter.PaymentType {
			continue
		}
		if filter.CustomerID != "" && filter.CustomerID != "all" && s.CustomerID != filter.CustomerID {
			continue
		}
		if !inDateRange(s.Date, filter.DateFrom, filter.DateTo) {
			continue
		}
		matched = append(matched, s)
		total += s.TotalAmount
	}

	reverseSales(matched)
	return matched, total
}

func (uc *reportUseCase) SearchPurchases(filter PurchaseFilter) ([]domain.Purchase, float64) {
	data := uc.ledger.Snapshot()
	keys := keywords(filter.Query)

	matched := []domain.Purchase{}
	total := 0.0
	for _, p := range data.Purchases {
		content := fmt.Sprintf("%s %s %s %s %s %d",
			p.ProductName, p.SupplierName, p.Notes, p.Date, formatAmount(p.TotalCost), p.Quantity)
		if !matchesKeywords(content, keys) {
			continue
		}
		if !inDateRange(p.Date, filter.DateFrom, filter.DateTo) {
			continue
		}
		matched = append(matched, p)
		total += p.TotalCost
	}

	reversePurchases(matched)
	return matched, total
}

func (uc *reportUseCase) SearchProducts(query string) []domain.Product {
	data := uc.ledger.Snapshot()
	q := strings.ToLower(query)

	out := []domain.Product{}
	for _, p := range data.Products {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// ProductHistory merges a product's purchases and sales into one movement
// list sorted by date, newest first.
func (uc *reportUseCase) ProductHistory(productID string) ([]domain.StockMovement, error) {
	data := uc.ledger.Snapshot()
	if data.FindProduct(productID) == nil {
		uc.log.Warnf("Use Case: Product ID %s not found for history", productID)
		return nil, fmt.Errorf("product with id %s not found", productID)
	}

	movements := []domain.StockMovement{}
	for _, p := range data.Purchases {
		if p.ProductID != productID {
			continue
		}
		entity := p.SupplierName
		if entity == "" {
			entity = "General Supplier"
		}
		movements = append(movements, domain.StockMovement{
			ID:       p.ID,
			Date:     p.Date,
			Type:     "purchase",
			Quantity: p.Quantity,
			Entity:   entity,
			Price:    p.CostPerUnit,
		})
	}
	for _, s := range data.Sales {
		if s.ProductID != productID {
			continue
		}
		entity := s.CustomerName
		if entity == "" {
			entity = "Walk-in Customer"
		}
		movements = append(movements, domain.StockMovement{
			ID:       s.ID,
			Date:     s.Date,
			Type:     "sale",
			Quantity: s.Quantity,
			Entity:   entity,
			Price:    s.SellPrice,
		})
	}

	sort.SliceStable(movements, func(i, j int) bool {
		ti, _ := time.Parse(dateLayout, movements[i].Date)
		tj, _ := time.Parse(dateLayout, movements[j].Date)
		return tj.Before(ti)
	})
	return movements, nil
}

func (uc *reportUseCase) LowStock() []domain.Product {
	data := uc.ledger.Snapshot()
	out := []domain.Product{}
	for _, p := range data.Products {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out
}

func (uc *reportUseCase) InventoryValue() float64 {
	data := uc.ledger.Snapshot()
	total := 0.0
	for _, p := range data.Products {
		total += float64(p.Stock) * p.CostPrice
	}
	return total
}

func (uc *reportUseCase) OutstandingCredit() float64 {
	data := uc.ledger.Snapshot()
	total := 0.0
	for _, c := range data.Customers {
		total += c.Balance()
	}
	return total
}

func (uc *reportUseCase) RecentSales(n int) []domain.Sale {
	data := uc.ledger.Snapshot()
	sales := data.Sales
	if len(sales) > n {
		sales = sales[len(sales)-n:]
	}
	out := make([]domain.Sale, len(sales))
	copy(out, sales)
	reverseSales(out)
	return out
}

func (uc *reportUseCase) RecentPurchases(n int) []domain.Purchase {
	data := uc.ledger.Snapshot()
	purchases := data.Purchases
	if len(purchases) > n {
		purchases = purchases[len(purchases)-n:]
	}
	out := make([]domain.Purchase, len(purchases))
	copy(out, purchases)
	reversePurchases(out)
	return out
}

func reverseSales(s []domain.Sale) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reversePurchases(p []domain.Purchase) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
