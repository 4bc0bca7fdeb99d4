package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/deepakshresthadhd-design/Group/internal/usecase"
)

type DashboardHandler struct {
	reports usecase.ReportUseCase
	log     *logrus.Logger
}

func NewDashboardHandler(reports usecase.ReportUseCase, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		reports: reports,
		log:     logger,
	}
}

func (h *DashboardHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/dashboard", h.Dashboard)
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", gin.H{
		"summary":          h.reports.DailySummary(),
		"totalCredit":      h.reports.OutstandingCredit(),
		"inventoryValue":   h.reports.InventoryValue(),
		"recentSales":      h.reports.RecentSales(5),
		"recentPurchases":  h.reports.RecentPurchases(5),
		"lowStockProducts": h.reports.LowStock(),
	})
}
