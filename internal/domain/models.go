package domain

// PaymentType marks how a sale was settled.
type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentCredit PaymentType = "credit"
)

func (p PaymentType) Valid() bool {
	return p == PaymentCash || p == PaymentCredit
}

type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Unit      string  `json:"unit"`
	CostPrice float64 `json:"costPrice"`
	SellPrice float64 `json:"sellPrice"`
	Stock     int     `json:"stock"`
	MinStock  int     `json:"minStock"`
}

// LowStock reports whether the product has fallen to its alert threshold.
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}

// Purchase records a stock intake. ProductName is a snapshot of the product
// name at recording time, kept even if the product is later renamed or
// deleted.
type Purchase struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	SupplierName string  `json:"supplierName"`
	Quantity     int     `json:"quantity"`
	CostPerUnit  float64 `json:"costPerUnit"`
	TotalCost    float64 `json:"totalCost"`
	Date         string  `json:"date"`
	Notes        string  `json:"notes,omitempty"`
}

// Sale records a sell-out. ProductName, CustomerName and SellPrice are
// snapshots taken at recording time.
type Sale struct {
	ID           string      `json:"id"`
	ProductID    string      `json:"productId"`
	ProductName  string      `json:"productName"`
	CustomerID   string      `json:"customerId,omitempty"`
	CustomerName string      `json:"customerName,omitempty"`
	Quantity     int         `json:"quantity"`
	SellPrice    float64     `json:"sellPrice"`
	TotalAmount  float64     `json:"totalAmount"`
	PaymentType  PaymentType `json:"paymentType"`
	Date         string      `json:"date"`
	Notes        string      `json:"notes,omitempty"`
}

// CustomerPayment is an append-only log entry of a credit repayment.
type CustomerPayment struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Notes  string  `json:"notes,omitempty"`
}

type Customer struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Phone       string            `json:"phone"`
	PhoneAlt    string            `json:"phoneAlt,omitempty"`
	TotalCredit float64           `json:"totalCredit"`
	PaidAmount  float64           `json:"paidAmount"`
	Payments    []CustomerPayment `json:"payments"`
}

// Balance is the outstanding udhar amount. It is always derived, never
// stored.
func (c Customer) Balance() float64 {
	return c.TotalCredit - c.PaidAmount
}

// StoreData is the aggregate root: the whole ledger, and the whole unit of
// persistence.
type StoreData struct {
	Products  []Product  `json:"products"`
	Purchases []Purchase `json:"purchases"`
	Sales     []Sale     `json:"sales"`
	Customers []Customer `json:"customers"`
}

// NewStoreData returns the empty default ledger with non-nil lists.
func NewStoreData() *StoreData {
	return &StoreData{
		Products:  []Product{},
		Purchases: []Purchase{},
		Sales:     []Sale{},
		Customers: []Customer{},
	}
}

// Clone returns a deep copy safe to hand to read-only consumers.
func (d *StoreData) Clone() *StoreData {
	out := &StoreData{
		Products:  make([]Product, len(d.Products)),
		Purchases: make([]Purchase, len(d.Purchases)),
		Sales:     make([]Sale, len(d.Sales)),
		Customers: make([]Customer, len(d.Customers)),
	}
	copy(out.Products, d.Products)
	copy(out.Purchases, d.Purchases)
	copy(out.Sales, d.Sales)
	for i, c := range d.Customers {
		payments := make([]CustomerPayment, len(c.Payments))
		copy(payments, c.Payments)
		c.Payments = payments
		out.Customers[i] = c
	}
	return out
}

// FindProduct returns a pointer into the Products slice, or nil.
func (d *StoreData) FindProduct(id string) *Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

// FindPurchase returns a pointer into the Purchases slice, or nil.
func (d *StoreData) FindPurchase(id string) *Purchase {
	for i := range d.Purchases {
		if d.Purchases[i].ID == id {
			return &d.Purchases[i]
		}
	}
	return nil
}

// FindCustomer returns a pointer into the Customers slice, or nil.
func (d *StoreData) FindCustomer(id string) *Customer {
	for i := range d.Customers {
		if d.Customers[i].ID == id {
			return &d.Customers[i]
		}
	}
	return nil
}

// DailySummary aggregates today's activity for the dashboard.
type DailySummary struct {
	Sales         float64 `json:"sales"`
	Purchases     float64 `json:"purchases"`
	Profit        float64 `json:"profit"`
	LowStockItems int     `json:"lowStockItems"`
}

// ReportSummary aggregates a report time frame.
type ReportSummary struct {
	TimeFrame      string  `json:"timeFrame"`
	TotalSales     float64 `json:"totalSales"`
	TotalPurchases float64 `json:"totalPurchases"`
	Profit         float64 `json:"profit"`
	SalesCount     int     `json:"salesCount"`
	PurchasesCount int     `json:"purchasesCount"`
}

// StockMovement is one row of a product's merged purchase/sale history.
type StockMovement struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Type     string  `json:"type"` // "purchase" or "sale"
	Quantity int     `json:"quantity"`
	Entity   string  `json:"entity"`
	Price    float64 `json:"price"`
}
