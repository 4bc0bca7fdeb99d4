package repository

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepakshresthadhd-design/Group/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestLoadMissingFileReturnsEmptyDefault(t *testing.T) {
	repo := NewJSONStoreRepository(filepath.Join(t.TempDir(), "store.json"), testLogger())

	data := repo.Load()
	require.NotNil(t, data)
	assert.Equal(t, domain.NewStoreData(), data)
}

func TestLoadCorruptFileReturnsEmptyDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	repo := NewJSONStoreRepository(path, testLogger())
	assert.Equal(t, domain.NewStoreData(), repo.Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	repo := NewJSONStoreRepository(path, testLogger())

	data := domain.NewStoreData()
	data.Products = append(data.Products, domain.Product{
		ID: "p1", Name: "Rice", Category: "Grains", Unit: "kg",
		CostPrice: 5, SellPrice: 8, Stock: 10, MinStock: 5,
	})
	data.Purchases = append(data.Purchases, domain.Purchase{
		ID: "pu1", ProductID: "p1", ProductName: "Rice", Quantity: 10,
		CostPerUnit: 5, TotalCost: 50, Date: "2025-03-15", Notes: "opening stock",
	})
	data.Sales = append(data.Sales, domain.Sale{
		ID: "s1", ProductID: "p1", ProductName: "Rice", CustomerID: "c1", CustomerName: "Sita",
		Quantity: 2, SellPrice: 8, TotalAmount: 16, PaymentType: domain.PaymentCredit, Date: "2025-03-15",
	})
	data.Customers = append(data.Customers, domain.Customer{
		ID: "c1", Name: "Sita", Phone: "9800000000", TotalCredit: 16,
		Payments: []domain.CustomerPayment{{Amount: 10, Date: "2025-03-16"}},
	})

	require.NoError(t, repo.Save(data))
	assert.Equal(t, data, repo.Load())
}

func TestLoadFillsMissingLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"products":[{"id":"p1","name":"Rice"}]}`), 0644))

	repo := NewJSONStoreRepository(path, testLogger())
	data := repo.Load()
	require.Len(t, data.Products, 1)
	assert.NotNil(t, data.Purchases)
	assert.NotNil(t, data.Sales)
	assert.NotNil(t, data.Customers)
}

func TestReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	repo := NewJSONStoreRepository(path, testLogger())

	require.NoError(t, repo.Save(domain.NewStoreData()))
	require.NoError(t, repo.Reset())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Resetting again is not an error.
	require.NoError(t, repo.Reset())
}
