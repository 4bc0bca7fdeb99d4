package delivery

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepakshresthadhd-design/Group/internal/domain"
	"github.com/deepakshresthadhd-design/Group/internal/usecase"
)

type memRepo struct {
	data *domain.StoreData
}

func (r *memRepo) Load() *domain.StoreData {
	if r.data == nil {
		return domain.NewStoreData()
	}
	return r.data.Clone()
}

func (r *memRepo) Save(data *domain.StoreData) error {
	r.data = data.Clone()
	return nil
}

func (r *memRepo) Reset() error {
	r.data = nil
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testRouter(t *testing.T, data *domain.StoreData) (*gin.Engine, usecase.LedgerUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := testLogger()
	ledger := usecase.NewLedgerUseCase(&memRepo{data: data}, logger)
	reports := usecase.NewReportUseCase(ledger, logger)

	router := gin.New()
	NewSaleHandler(ledger, reports, logger).RegisterRoutes(router)
	NewCustomerHandler(ledger, logger).RegisterRoutes(router)
	return router, ledger
}

func saleFixture() *domain.StoreData {
	data := domain.NewStoreData()
	data.Products = append(data.Products, domain.Product{
		ID: "p1", Name: "Rice", Unit: "kg", CostPrice: 5, SellPrice: 8, Stock: 10, MinStock: 5,
	})
	data.Customers = append(data.Customers, domain.Customer{
		ID: "c1", Name: "Sita", Phone: "9800000000", Payments: []domain.CustomerPayment{},
	})
	return data
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecordSaleEndpoint(t *testing.T) {
	router, ledger := testRouter(t, saleFixture())

	w := doJSON(t, router, http.MethodPost, "/sales",
		`{"productId":"p1","quantity":3,"paymentType":"cash","date":"2025-03-15"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status string      `json:"Status"`
		Data   domain.Sale `json:"Data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Success", resp.Status)
	assert.Equal(t, 24.0, resp.Data.TotalAmount)

	assert.Equal(t, 7, ledger.Snapshot().FindProduct("p1").Stock)
}

func TestRecordSaleInsufficientStockReturns400(t *testing.T) {
	router, ledger := testRouter(t, saleFixture())

	w := doJSON(t, router, http.MethodPost, "/sales",
		`{"productId":"p1","quantity":99,"paymentType":"cash"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient stock")
	assert.Equal(t, 10, ledger.Snapshot().FindProduct("p1").Stock)
}

func TestRecordSaleCreditWithoutCustomerReturns400(t *testing.T) {
	router, _ := testRouter(t, saleFixture())

	w := doJSON(t, router, http.MethodPost, "/sales",
		`{"productId":"p1","quantity":1,"paymentType":"credit"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "customer is required")
}

func TestRecordSaleUnknownProductReturns404(t *testing.T) {
	router, _ := testRouter(t, saleFixture())

	w := doJSON(t, router, http.MethodPost, "/sales",
		`{"productId":"ghost","quantity":1,"paymentType":"cash"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSalesWithFilters(t *testing.T) {
	router, _ := testRouter(t, saleFixture())

	for _, body := range []string{
		`{"productId":"p1","quantity":1,"paymentType":"cash","date":"2025-03-15"}`,
		`{"productId":"p1","quantity":2,"paymentType":"credit","customerId":"c1","date":"2025-03-16"}`,
	} {
		w := doJSON(t, router, http.MethodPost, "/sales", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/sales?paymentType=credit", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Sales         []domain.Sale `json:"sales"`
			Matches       int           `json:"matches"`
			FilteredTotal float64       `json:"filteredTotal"`
		} `json:"Data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Data.Matches)
	assert.Equal(t, "Sita", resp.Data.Sales[0].CustomerName)
	assert.Equal(t, 16.0, resp.Data.FilteredTotal)
}

func TestDeleteCustomerCascadesOverHTTP(t *testing.T) {
	router, ledger := testRouter(t, saleFixture())

	w := doJSON(t, router, http.MethodPost, "/sales",
		`{"productId":"p1","quantity":2,"paymentType":"credit","customerId":"c1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/customers/c1", "")
	require.Equal(t, http.StatusOK, w.Code)

	snap := ledger.Snapshot()
	assert.Empty(t, snap.Customers)
	assert.Empty(t, snap.Sales)
}
