package delivery

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/deepakshresthadhd-design/Group/internal/export"
	"github.com/deepakshresthadhd-design/Group/internal/usecase"
)

type ReportHandler struct {
	ledger  usecase.LedgerUseCase
	reports usecase.ReportUseCase
	log     *logrus.Logger
}

func NewReportHandler(ledger usecase.LedgerUseCase, reports usecase.ReportUseCase, logger *logrus.Logger) *ReportHandler {
	return &ReportHandler{
		ledger:  ledger,
		reports: reports,
		log:     logger,
	}
}

func (h *ReportHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/reports", h.Summary)
	router.GET("/reports/export/:kind", h.Export)
}

func (h *ReportHandler) Summary(c *gin.Context) {
	frame, err := usecase.ParseTimeFrame(c.Query("timeframe"))
	if err != nil {
		h.log.Warnf("Invalid report time frame '%s'", c.Query("timeframe"))
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Report summary retrieved successfully", h.reports.Summary(frame))
}

// Export streams one of the four CSV reports. Sales and purchases honor the
// timeframe query parameter; inventory and customers are always complete.
func (h *ReportHandler) Export(c *gin.Context) {
	frame, err := usecase.ParseTimeFrame(c.Query("timeframe"))
	if err != nil {
		h.log.Warnf("Invalid report time frame '%s'", c.Query("timeframe"))
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	kind := c.Param("kind")
	var (
		filename string
		content  string
	)
	switch kind {
	case "inventory":
		filename = "inventory_report.csv"
		content, err = export.InventoryCSV(h.ledger.Snapshot().Products)
	case "sales":
		filename = fmt.Sprintf("sales_report_%s.csv", frame)
		content, err = export.SalesCSV(h.reports.SalesForFrame(frame))
	case "purchases":
		filename = fmt.Sprintf("purchases_report_%s.csv", frame)
		content, err = export.PurchasesCSV(h.reports.PurchasesForFrame(frame))
	case "customers":
		filename = "customer_credit_report.csv"
		content, err = export.CustomersCSV(h.ledger.Snapshot().Customers)
	default:
		h.log.Warnf("Unknown export kind '%s'", kind)
		ErrorResponse(c, http.StatusBadRequest, "invalid export kind: "+kind)
		return
	}

	if err != nil {
		h.log.Warnf("Export '%s' failed: %v", kind, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to export report: "+err.Error())
		return
	}

	h.log.Infof("Exported %s (%d bytes)", filename, len(content))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}
