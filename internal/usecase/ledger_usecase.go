package usecase

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/deepakshresthadhd-design/Group/internal/domain"
)

// LedgerUseCase owns the in-memory ledger and is the only writer. Every
// mutation validates first, applies the whole transformation, then persists
// the full document. A failed validation leaves the ledger untouched.
type LedgerUseCase interface {
	Snapshot() *domain.StoreData

	SaveProduct(form domain.ProductForm) (*domain.Product, error)
	DeleteProduct(id string) error

	RecordPurchase(form domain.PurchaseForm) (*domain.Purchase, error)
	UpdatePurchase(id string, form domain.PurchaseForm) (*domain.Purchase, error)
	DeletePurchase(id string) error

	RecordSale(form domain.SaleForm) (*domain.Sale, error)

	SaveCustomer(form domain.CustomerForm) (*domain.Customer, error)
	DeleteCustomer(id string) error
	RecordPayment(customerID string, form domain.PaymentForm) (*domain.Customer, error)

	ResetAll() error
}

type ledgerUseCase struct {
	mu   sync.Mutex
	data *domain.StoreData
	repo domain.StoreRepository
	log  *logrus.Logger
}

func NewLedgerUseCase(repo domain.StoreRepository, logger *logrus.Logger) LedgerUseCase {
	return &ledgerUseCase{
		data: repo.Load(),
		repo: repo,
		log:  logger,
	}
}

func (uc *ledgerUseCase) Snapshot() *domain.StoreData {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.data.Clone()
}

// persist writes the current ledger through the repository. The in-memory
// state is already mutated at this point; a write failure is surfaced to the
// caller but does not roll the memory state back.
func (uc *ledgerUseCase) persist() error {
	if err := uc.repo.Save(uc.data); err != nil {
		uc.log.Errorf("Use Case: Failed to persist ledger: %v", err)
		return err
	}
	return nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func orToday(date string) string {
	if strings.TrimSpace(date) == "" {
		return today()
	}
	return date
}

func (uc *ledgerUseCase) SaveProduct(form domain.ProductForm) (*domain.Product, error) {
	if strings.TrimSpace(form.Name) == "" {
		uc.log.Warn("Use Case: Attempted to save product with empty name")
		return nil, errors.New("product name cannot be empty")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if form.ID != "" {
		existing := uc.data.FindProduct(form.ID)
		if existing == nil {
			uc.log.Warnf("Use Case: Product ID %s not found for update", form.ID)
			return nil, fmt.Errorf("product with id %s not found", form.ID)
		}
		existing.Name = form.Name
		existing.Category = form.Category
		existing.Unit = form.Unit
		existing.CostPrice = form.CostPrice
		existing.SellPrice = form.SellPrice
		existing.Stock = form.Stock
		existing.MinStock = form.MinStock
		if err := uc.persist(); err != nil {
			return nil, err
		}
		uc.log.Infof("Use Case: Product updated successfully: ID %s, Name %s", existing.ID, existing.Name)
		result := *existing
		return &result, nil
	}

	product := domain.Product{
		ID:        uuid.NewString(),
		Name:      form.Name,
		Category:  form.Category,
		Unit:      form.Unit,
		CostPrice: form.CostPrice,
		SellPrice: form.SellPrice,
		Stock:     form.Stock,
		MinStock:  form.MinStock,
	}
	uc.data.Products = append(uc.data.Products, product)
	if err := uc.persist(); err != nil {
		return nil, err
	}
	uc.log.Infof("Use Case: Product created successfully: ID %s, Name %s", product.ID, product.Name)
	return &product, nil
}

// DeleteProduct removes the product only. Purchases and sales keep their
// snapshot of the product name and their now-dangling productId; history is
// not rewritten.
func (uc *ledgerUseCase) DeleteProduct(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.data.FindProduct(id) == nil {
		uc.log.Warnf("Use Case: Product ID %s not found for delete", id)
		return fmt.Errorf("product with id %s not found", id)
	}

	kept := uc.data.Products[:0]
	for _, p := range uc.data.Products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	uc.data.Products = kept

	if err := uc.persist(); err != nil {
		return err
	}
	uc.log.Infof("Use Case: Product deleted successfully: ID %s", id)
	return nil
}

func (uc *ledgerUseCase) RecordPurchase(form domain.PurchaseForm) (*domain.Purchase, error) {
	if form.Quantity <= 0 {
		uc.log.Warnf("Use Case: Attempted to record purchase with non-positive quantity: %d", form.Quantity)
		return nil, errors.New("purchase quantity must be positive")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	product := uc.data.FindProduct(form.ProductID)
	if product == nil {
		uc.log.Warnf("Use Case: Product ID %s not found for purchase", form.ProductID)
		return nil, fmt.Errorf("product with id %s not found", form.ProductID)
	}

	purchase := domain.Purchase{
		ID:           uuid.NewString(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		SupplierName: form.SupplierName,
		Quantity:     form.Quantity,
		CostPerUnit:  form.CostPerUnit,
		TotalCost:    float64(form.Quantity) * form.CostPerUnit,
		Date:         orToday(form.Date),
		Notes:        strings.TrimSpace(form.Notes),
	}

	// Intake raises stock and the entered unit cost becomes the product's
	// current cost price.
	product.Stock += form.Quantity
	product.CostPrice = form.CostPerUnit
	uc.data.Purchases = append(uc.data.Purchases, purchase)

	if err := uc.persist(); err != nil {
		return nil, err
	}
	uc.log.Infof("Use Case: Purchase recorded: ID %s, Product %s, Quantity %d, Total %.2f",
		purchase.ID, purchase.ProductName, purchase.Quantity, purchase.TotalCost)
	return &purchase, nil
}

// UpdatePurchase reverses the original purchase's stock effect on the
// original product, then applies the new effect on the (possibly different)
// new product. Editing to the same product and quantity nets to zero.
func (uc *ledgerUseCase) UpdatePurchase(id string, form domain.PurchaseForm) (*domain.Purchase, error) {
	if form.Quantity <= 0 {
		uc.log.Warnf("Use Case: Attempted to update purchase %s with non-positive quantity: %d", id, form.Quantity)
		return nil, errors.New("purchase quantity must be positive")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	purchase := uc.data.FindPurchase(id)
	if purchase == nil {
		uc.log.Warnf("Use Case: Purchase ID %s not found for update", id)
		return nil, fmt.Errorf("purchase with id %s not found", id)
	}

	newProduct := uc.data.FindProduct(form.ProductID)
	if newProduct == nil {
		uc.log.Warnf("Use Case: Product ID %s not found for purchase update", form.ProductID)
		return nil, fmt.Errorf("product with id %s not found", form.ProductID)
	}

	// The original product may have been deleted since; then there is
	// nothing left to reverse.
	if oldProduct := uc.data.FindProduct(purchase.ProductID); oldProduct != nil {
		oldProduct.Stock -= purchase.Quantity
	}

	newProduct.Stock += form.Quantity
	newProduct.CostPrice = form.CostPerUnit

	purchase.ProductID = newProduct.ID
	purchase.ProductName = newProduct.Name
	purchase.SupplierName = form.SupplierName
	purchase.Quantity = form.Quantity
	purchase.CostPerUnit = form.CostPerUnit
	purchase.TotalCost = float64(form.Quantity) * form.CostPerUnit
	purchase.Date = orToday(form.Date)
	purchase.Notes = strings.TrimSpace(form.Notes)

	if err := uc.persist(); err != nil {
		return nil, err
	}
	uc.log.Infof("Use Case: Purchase updated: ID %s, Product %s, Quantity %d", id, purchase.ProductName, purchase.Quantity)
	result := *purchase
	return &result, nil
}

func (uc *ledgerUseCase) DeletePurchase(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	purchase := uc.data.FindPurchase(id)
	if purchase == nil {
		uc.log.Warnf("Use Case: Purchase ID %s not found for delete", id)
		return fmt.Errorf("purchase with id %s not found", id)
	}

	// Removing the intake takes its quantity back out of stock, floored at
	// zero because sales may already have consumed it.
	if product := uc.data.FindProduct(purchase.ProductID); product != nil {
		product.Stock -= purchase.Quantity
		if product.Stock < 0 {
			product.Stock = 0
		}
	}

	kept := uc.data.Purchases[:0]
	for _, p := range uc.data.Purchases {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	uc.data.Purchases = kept

	if err := uc.persist(); err != nil {
		return err
	}
	uc.log.Infof("Use Case: Purchase deleted successfully: ID %s", id)
	return nil
}

func (uc *ledgerUseCase) RecordSale(form domain.SaleForm) (*domain.Sale, error) {
	if !form.PaymentType.Valid() {
		uc.log.Warnf("Use Case: Invalid payment type: %s", form.PaymentType)
		return nil, fmt.Errorf("invalid payment type: %s", form.PaymentType)
	}
	if form.Quantity <= 0 {
		uc.log.Warnf("Use Case: Attempted to record sale with non-positive quantity: %d", form.Quantity)
		return nil, errors.New("sale quantity must be positive")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	product := uc.data.FindProduct(form.ProductID)
	if product == nil {
		uc.log.Warnf("Use Case: Product ID %s not found for sale", form.ProductID)
		return nil, fmt.Errorf("product with id %s not found", form.ProductID)
	}
	if product.Stock < form.Quantity {
		uc.log.Warnf("Use Case: Insufficient stock for product %s (requested: %d, available: %d)",
			product.Name, form.Quantity, product.Stock)
		return nil, fmt.Errorf("insufficient stock for product %s (requested: %d, available: %d)",
			product.Name, form.Quantity, product.Stock)
	}

	if form.PaymentType == domain.PaymentCredit && form.CustomerID == "" {
		uc.log.Warn("Use Case: Credit sale attempted without a customer")
		return nil, errors.New("customer is required for credit sales")
	}

	var customer *domain.Customer
	if form.CustomerID != "" {
		customer = uc.data.FindCustomer(form.CustomerID)
		if customer == nil {
			uc.log.Warnf("Use Case: Customer ID %s not found for sale", form.CustomerID)
			return nil, fmt.Errorf("customer with id %s not found", form.CustomerID)
		}
	}

	totalAmount := product.SellPrice * float64(form.Quantity)

	sale := domain.Sale{
		ID:          uuid.NewString(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    form.Quantity,
		SellPrice:   product.SellPrice,
		TotalAmount: totalAmount,
		PaymentType: form.PaymentType,
		Date:        orToday(form.Date),
		Notes:       strings.TrimSpace(form.Notes),
	}
	if customer != nil {
		sale.CustomerID = customer.ID
		sale.CustomerName = customer.Name
	}

	product.Stock -= form.Quantity
	if form.PaymentType == domain.PaymentCredit {
		customer.TotalCredit += totalAmount
	}
	uc.data.Sales = append(uc.data.Sales, sale)

	if err := uc.persist(); err != nil {
		return nil, err
	}
	uc.log.Infof("Use Case: Sale recorded: ID %s, Product %s, Quantity %d, Total %.2f, Payment %s",
		sale.ID, sale.ProductName, sale.Quantity, sale.TotalAmount, sale.PaymentType)
	return &sale, nil
}

func (uc *ledgerUseCase) SaveCustomer(form domain.CustomerForm) (*domain.Customer, error) {
	if strings.TrimSpace(form.Name) == "" {
		uc.log.Warn("Use Case: Attempted to save customer with empty name")
		return nil, errors.New("customer name cannot be empty")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if form.ID != "" {
		existing := uc.data.FindCustomer(form.ID)
		if existing == nil {
			uc.log.Warnf("Use Case: Customer ID %s not found for update", form.ID)
			return nil, fmt.Errorf("customer with id %s not found", form.ID)
		}
		existing.Name = form.Name
		existing.Phone = form.Phone
		existing.PhoneAlt = form.PhoneAlt
		// The opening balance overwrites the accumulated credit as entered.
		existing.TotalCredit = form.OpeningCredit
		if err := uc.persist(); err != nil {
			return nil, err
		}
		uc.log.Infof("Use Case: Customer updated successfully: ID %s, Name %s", existing.ID, existing.Name)
		result := *existing
		return &result, nil
	}

	customer := domain.Customer{
		ID:          uuid.NewString(),
		Name:        form.Name,
		Phone:       form.Phone,
		PhoneAlt:    form.PhoneAlt,
		TotalCredit: form.OpeningCredit,
		PaidAmount:  0,
		Payments:    []domain.CustomerPayment{},
	}
	uc.data.Customers = append(uc.data.Customers, customer)
	if err := uc.persist(); err != nil {
		return nil, err
	}
	uc.log.Infof("Use Case: Customer created successfully: ID %s, Name %s", customer.ID, customer.Name)
	return &customer, nil
}

// DeleteCustomer removes the customer and every sale tied to them. The stock
// those sales consumed stays consumed.
func (uc *ledgerUseCase) DeleteCustomer(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.data.FindCustomer(id) == nil {
		uc.log.Warnf("Use Case: Customer ID %s not found for delete", id)
		return fmt.Errorf("customer with id %s not found", id)
	}

	keptCustomers := uc.data.Customers[:0]
	for _, c := range uc.data.Customers {
		if c.ID != id {
			keptCustomers = append(keptCustomers, c)
		}
	}
	uc.data.Customers = keptCustomers

	removedSales := 0
	keptSales := uc.data.Sales[:0]
	for _, s := range uc.data.Sales {
		if s.CustomerID == id {
			removedSales++
			continue
		}
		keptSales = append(keptSales, s)
	}
	uc.data.Sales = keptSales

	if err := uc.persist(); err != nil {
		return err
	}
	uc.log.Infof("Use Case: Customer deleted successfully: ID %s (%d associated sales removed)", id, removedSales)
	return nil
}

// RecordPayment appends one repayment entry and raises the paid total.
// Overpayment past the outstanding balance is representable and allowed.
func (uc *ledgerUseCase) RecordPayment(customerID string, form domain.PaymentForm) (*domain.Customer, error) {
	if form.Amount <= 0 {
		uc.log.Warnf("Use Case: Attempted to record payment with non-positive amount: %.2f", form.Amount)
		return nil, errors.New("payment amount must be positive")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	customer := uc.data.FindCustomer(customerID)
	if customer == nil {
		uc.log.Warnf("Use Case: Customer ID %s not found for payment", customerID)
		return nil, fmt.Errorf("customer with id %s not found", customerID)
	}

	payment := domain.CustomerPayment{
		Amount: form.Amount,
		Date:   orToday(form.Date),
		Notes:  strings.TrimSpace(form.Notes),
	}
	customer.PaidAmount += form.Amount
	customer.Payments = append(customer.Payments, payment)

	if err := uc.persist(); err != nil {
		return nil, err
	}
	uc.log.Infof("Use Case: Payment recorded for customer %s: %.2f (balance now %.2f)",
		customer.Name, form.Amount, customer.Balance())
	result := *customer
	return &result, nil
}

// ResetAll clears the ledger and removes the persisted document.
func (uc *ledgerUseCase) ResetAll() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.data = domain.NewStoreData()
	if err := uc.repo.Reset(); err != nil {
		uc.log.Errorf("Use Case: Failed to reset persisted store: %v", err)
		return err
	}
	uc.log.Info("Use Case: All store data cleared")
	return nil
}
