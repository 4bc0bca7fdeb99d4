package domain

// Form structs are the typed update variants accepted by the ledger use
// case. Each mutation is explicit; there are no dynamic partial-merge
// updates.

type ProductForm struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Unit      string  `json:"unit"`
	CostPrice float64 `json:"costPrice"`
	SellPrice float64 `json:"sellPrice"`
	Stock     int     `json:"stock"`
	MinStock  int     `json:"minStock"`
}

type PurchaseForm struct {
	ProductID    string  `json:"productId"`
	SupplierName string  `json:"supplierName"`
	Quantity     int     `json:"quantity"`
	CostPerUnit  float64 `json:"costPerUnit"`
	Date         string  `json:"date"`
	Notes        string  `json:"notes"`
}

type SaleForm struct {
	ProductID   string      `json:"productId"`
	CustomerID  string      `json:"customerId"`
	Quantity    int         `json:"quantity"`
	PaymentType PaymentType `json:"paymentType"`
	Date        string      `json:"date"`
	Notes       string      `json:"notes"`
}

type PaymentForm struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Notes  string  `json:"notes"`
}

// CustomerForm carries the opening balance as entered. On edit it overwrites
// TotalCredit as-is; the stored value is trusted input, not re-derived from
// sales history.
type CustomerForm struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	PhoneAlt      string  `json:"phoneAlt"`
	OpeningCredit float64 `json:"initialCredit"`
}
