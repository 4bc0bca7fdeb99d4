package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/deepakshresthadhd-design/Group/internal/domain"
	"github.com/deepakshresthadhd-design/Group/internal/usecase"
)

type PurchaseHandler struct {
	ledger  usecase.LedgerUseCase
	reports usecase.ReportUseCase
	log     *logrus.Logger
}

func NewPurchaseHandler(ledger usecase.LedgerUseCase, reports usecase.ReportUseCase, logger *logrus.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		ledger:  ledger,
		reports: reports,
		log:     logger,
	}
}

func (h *PurchaseHandler) RegisterRoutes(router gin.IRouter) {
	purchases := router.Group("/purchases")
	{
		purchases.GET("", h.ListPurchases)
		purchases.POST("", h.RecordPurchase)
		purchases.PUT("/:id", h.UpdatePurchase)
		purchases.DELETE("/:id", h.DeletePurchase)
	}
}

// ListPurchases supports keyword search (q) and a date range (from, to).
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	filter := usecase.PurchaseFilter{
		Query:    c.Query("q"),
		DateFrom: c.Query("from"),
		DateTo:   c.Query("to"),
	}

	purchases, total := h.reports.SearchPurchases(filter)
	SuccessResponse(c, http.StatusOK, "Purchases retrieved successfully", gin.H{
		"purchases":     purchases,
		"matches":       len(purchases),
		"filteredTotal": total,
	})
}

func (h *PurchaseHandler) RecordPurchase(c *gin.Context) {
	var form domain.PurchaseForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.log.Errorf("Failed to bind JSON for record purchase: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	purchase, err := h.ledger.RecordPurchase(form)
	if err != nil {
		h.log.Errorf("Failed to record purchase for product ID %s: %v", form.ProductID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to record purchase: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "Purchase recorded successfully", purchase)
}

func (h *PurchaseHandler) UpdatePurchase(c *gin.Context) {
	id := c.Param("id")

	var form domain.PurchaseForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.log.Errorf("Failed to bind JSON for update purchase ID %s: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	purchase, err := h.ledger.UpdatePurchase(id, form)
	if err != nil {
		h.log.Errorf("Failed to update purchase ID %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to update purchase: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Purchase updated successfully", purchase)
}

func (h *PurchaseHandler) DeletePurchase(c *gin.Context) {
	id := c.Param("id")
	if err := h.ledger.DeletePurchase(id); err != nil {
		h.log.Warnf("Failed to delete purchase ID %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to delete purchase: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Purchase deleted successfully", nil)
}
