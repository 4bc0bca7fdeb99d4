package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/deepakshresthadhd-design/Group/internal/domain"
	"github.com/deepakshresthadhd-design/Group/internal/usecase"
)

type SaleHandler struct {
	ledger  usecase.LedgerUseCase
	reports usecase.ReportUseCase
	log     *logrus.Logger
}

func NewSaleHandler(ledger usecase.LedgerUseCase, reports usecase.ReportUseCase, logger *logrus.Logger) *SaleHandler {
	return &SaleHandler{
		ledger:  ledger,
		reports: reports,
		log:     logger,
	}
}

// Sales are append-only: there is no update or delete route. Correcting a
// mis-entered sale would silently corrupt stock and credit history, so the
// record stands once finalized.
func (h *SaleHandler) RegisterRoutes(router gin.IRouter) {
	sales := router.Group("/sales")
	{
		sales.GET("", h.ListSales)
		sales.POST("", h.RecordSale)
	}
}

// ListSales supports keyword search (q), payment type and customer filters,
// and a date range (from, to).
func (h *SaleHandler) ListSales(c *gin.Context) {
	filter := usecase.SaleFilter{
		Query:       c.Query("q"),
		PaymentType: c.Query("paymentType"),
		CustomerID:  c.Query("customerId"),
		DateFrom:    c.Query("from"),
		DateTo:      c.Query("to"),
	}

	sales, total := h.reports.SearchSales(filter)
	SuccessResponse(c, http.StatusOK, "Sales retrieved successfully", gin.H{
		"sales":         sales,
		"matches":       len(sales),
		"filteredTotal": total,
	})
}

func (h *SaleHandler) RecordSale(c *gin.Context) {
	var form domain.SaleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.log.Errorf("Failed to bind JSON for record sale: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if form.PaymentType == "" {
		form.PaymentType = domain.PaymentCash
	}

	sale, err := h.ledger.RecordSale(form)
	if err != nil {
		h.log.Errorf("Failed to record sale for product ID %s: %v", form.ProductID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to record sale: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "Sale recorded successfully", sale)
}
