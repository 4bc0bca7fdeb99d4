package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepakshresthadhd-design/Group/internal/domain"
)

func reportFixture() *domain.StoreData {
	data := domain.NewStoreData()
	data.Products = append(data.Products,
		domain.Product{ID: "p1", Name: "Rice", Category: "Grains", Unit: "kg", CostPrice: 5, SellPrice: 8, Stock: 3, MinStock: 5},
		domain.Product{ID: "p2", Name: "Oil", Category: "Cooking", Unit: "ltr", CostPrice: 100, SellPrice: 120, Stock: 20, MinStock: 5},
	)
	data.Purchases = append(data.Purchases,
		domain.Purchase{ID: "pu1", ProductID: "p1", ProductName: "Rice", SupplierName: "Km Traders", Quantity: 10, CostPerUnit: 5, TotalCost: 50, Date: "2025-03-15"},
		domain.Purchase{ID: "pu2", ProductID: "p2", ProductName: "Oil", Quantity: 5, CostPerUnit: 100, TotalCost: 500, Date: "2025-03-01", Notes: "bulk order"},
	)
	data.Sales = append(data.Sales,
		domain.Sale{ID: "s1", ProductID: "p1", ProductName: "Rice", Quantity: 2, SellPrice: 8, TotalAmount: 16, PaymentType: domain.PaymentCash, Date: "2025-03-15"},
		domain.Sale{ID: "s2", ProductID: "p2", ProductName: "Oil", CustomerID: "c1", CustomerName: "Sita", Quantity: 1, SellPrice: 120, TotalAmount: 120, PaymentType: domain.PaymentCredit, Date: "2025-03-10", Notes: "monthly"},
		domain.Sale{ID: "s3", ProductID: "p1", ProductName: "Rice", Quantity: 1, SellPrice: 8, TotalAmount: 8, PaymentType: domain.PaymentCash, Date: "2025-02-01"},
	)
	data.Customers = append(data.Customers,
		domain.Customer{ID: "c1", Name: "Sita", TotalCredit: 100, PaidAmount: 20, Payments: []domain.CustomerPayment{}},
		domain.Customer{ID: "c2", Name: "Ram", TotalCredit: 50, PaidAmount: 50, Payments: []domain.CustomerPayment{}},
	)
	return data
}

func fixedReports(t *testing.T, data *domain.StoreData, now string) ReportUseCase {
	t.Helper()
	ledger, _ := seededLedger(t, data)
	uc := NewReportUseCase(ledger, testLogger()).(*reportUseCase)
	fixed, err := time.ParseInLocation("2006-01-02 15:04", now, time.Local)
	require.NoError(t, err)
	uc.now = func() time.Time { return fixed }
	return uc
}

func TestDailySummary(t *testing.T) {
	reports := fixedReports(t, reportFixture(), "2025-03-15 14:00")

	summary := reports.DailySummary()
	assert.Equal(t, 16.0, summary.Sales)
	assert.Equal(t, 50.0, summary.Purchases)
	// Profit against the current cost price: 16 - 2*5.
	assert.Equal(t, 6.0, summary.Profit)
	assert.Equal(t, 1, summary.LowStockItems)
}

func TestSummaryTimeFrames(t *testing.T) {
	reports := fixedReports(t, reportFixture(), "2025-03-15 14:00")

	day := reports.Summary(TimeFrameDay)
	assert.Equal(t, 1, day.SalesCount)
	assert.Equal(t, 16.0, day.TotalSales)
	assert.Equal(t, 1, day.PurchasesCount)

	week := reports.Summary(TimeFrameWeek)
	assert.Equal(t, 2, week.SalesCount)
	assert.Equal(t, 136.0, week.TotalSales)

	month := reports.Summary(TimeFrameMonth)
	assert.Equal(t, 2, month.SalesCount)
	assert.Equal(t, 2, month.PurchasesCount)
	assert.Equal(t, 550.0, month.TotalPurchases)

	all := reports.Summary(TimeFrameAll)
	assert.Equal(t, 3, all.SalesCount)
	assert.Equal(t, 144.0, all.TotalSales)
	// Profit: (16-10) + (120-100) + (8-5).
	assert.Equal(t, 29.0, all.Profit)
}

func TestSummaryProfitIgnoresDeletedProducts(t *testing.T) {
	data := reportFixture()
	data.Products = data.Products[1:] // drop p1
	reports := fixedReports(t, data, "2025-03-15 14:00")

	all := reports.Summary(TimeFrameAll)
	// Rice sales contribute zero cost once the product is gone.
	assert.Equal(t, 16.0+20.0+8.0, all.Profit)
}

func TestParseTimeFrame(t *testing.T) {
	frame, err := ParseTimeFrame("")
	require.NoError(t, err)
	assert.Equal(t, TimeFrameAll, frame)

	frame, err = ParseTimeFrame("week")
	require.NoError(t, err)
	assert.Equal(t, TimeFrameWeek, frame)

	_, err = ParseTimeFrame("year")
	require.Error(t, err)
}

func TestSearchSalesKeywordsMatchAllTokens(t *testing.T) {
	reports := fixedReports(t, reportFixture(), "2025-03-15 14:00")

	sales, total := reports.SearchSales(SaleFilter{Query: "oil sita"})
	require.Len(t, sales, 1)
	assert.Equal(t, "s2", sales[0].ID)
	assert.Equal(t, 120.0, total)

	sales, _ = reports.SearchSales(SaleFilter{Query: "oil ram"})
	assert.Empty(t, sales)

	// Amounts and payment type are searchable too.
	sales, _ = reports.SearchSales(SaleFilter{Query: "credit 120"})
	require.Len(t, sales, 1)
	assert.Equal(t, "s2", sales[0].ID)
}

func TestSearchSalesFiltersAndOrder(t *testing.T) {
	reports := fixedReports(t, reportFixture(), "2025-03-15 14:00")

	sales, total := reports.SearchSales(SaleFilter{})
	require.Len(t, sales, 3)
	// Newest insertion first.
	assert.Equal(t, "s3", sales[0].ID)
	assert.Equal(t, "s1", sales[2].ID)
	assert.Equal(t, 144.0, total)

	sales, _ = reports.SearchSales(SaleFilter{PaymentType: "cash"})
	assert.Len(t, sales, 2)

	sales, _ = reports.SearchSales(SaleFilter{CustomerID: "c1"})
	require.Len(t, sales, 1)
	assert.Equal(t, "s2", sales[0].ID)

	sales, _ = reports.SearchSales(SaleFilter{DateFrom: "2025-03-01", DateTo: "2025-03-12"})
	require.Len(t, sales, 1)
	assert.Equal(t, "s2", sales[0].ID)

	sales, _ = reports.SearchSales(SaleFilter{PaymentType: "all", CustomerID: "all"})
	assert.Len(t, sales, 3)
}

func TestSearchPurchases(t *testing.T) {
	reports := fixedReports(t, reportFixture(), "2025-03-15 14:00")

	purchases, total := reports.SearchPurchases(PurchaseFilter{Query: "bulk"})
	require.Len(t, purchases, 1)
	assert.Equal(t, "pu2", purchases[0].ID)
	assert.Equal(t, 500.0, total)

	purchases, total = reports.SearchPurchases(PurchaseFilter{DateFrom: "2025-03-10"})
	require.Len(t, purchases, 1)
	assert.Equal(t, "pu1", purchases[0].ID)
	assert.Equal(t, 50.0, total)
}

func TestSearchProducts(t *testing.T) {
	reports := fixedReports(t, reportFixture(), "2025-03-15 14:00")

	assert.Len(t, reports.SearchProducts(""), 2)

	products := reports.SearchProducts("grain")
	require.Len(t, products, 1)
	assert.Equal(t, "Rice", products[0].Name)
}

func TestProductHistoryMergesAndSorts(t *testing.T) {
	reports := fixedReports(t, reportFixture(), "2025-03-15 14:00")

	movements, err := reports.ProductHistory("p1")
	require.NoError(t, err)
	require.Len(t, movements, 3)

	assert.Equal(t, "2025-03-15", movements[0].Date)
	assert.Equal(t, "2025-03-15", movements[1].Date)
	assert.Equal(t, "2025-02-01", movements[2].Date)

	byID := map[string]domain.StockMovement{}
	for _, m := range movements {
		byID[m.ID] = m
	}
	assert.Equal(t, "purchase", byID["pu1"].Type)
	assert.Equal(t, "Km Traders", byID["pu1"].Entity)
	assert.Equal(t, 5.0, byID["pu1"].Price)
	assert.Equal(t, "sale", byID["s1"].Type)
	assert.Equal(t, "Walk-in Customer", byID["s1"].Entity)
	assert.Equal(t, 8.0, byID["s1"].Price)

	_, err = reports.ProductHistory("ghost")
	require.Error(t, err)
}

func TestDashboardAggregates(t *testing.T) {
	reports := fixedReports(t, reportFixture(), "2025-03-15 14:00")

	low := reports.LowStock()
	require.Len(t, low, 1)
	assert.Equal(t, "p1", low[0].ID)

	// 3*5 + 20*100.
	assert.Equal(t, 2015.0, reports.InventoryValue())
	// (100-20) + (50-50).
	assert.Equal(t, 80.0, reports.OutstandingCredit())

	recent := reports.RecentSales(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "s3", recent[0].ID)
	assert.Equal(t, "s2", recent[1].ID)

	assert.Len(t, reports.RecentPurchases(5), 2)
}
