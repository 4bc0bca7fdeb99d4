package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/deepakshresthadhd-design/Group/internal/usecase"
)

type AdminHandler struct {
	ledger usecase.LedgerUseCase
	log    *logrus.Logger
}

func NewAdminHandler(ledger usecase.LedgerUseCase, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		ledger: ledger,
		log:    logger,
	}
}

func (h *AdminHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/store", h.Store)
	router.POST("/reset", h.Reset)
}

// Store returns the whole ledger document, mostly for backup and debugging.
func (h *AdminHandler) Store(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Store data retrieved successfully", h.ledger.Snapshot())
}

// Reset clears every record and removes the persisted document. There is no
// undo.
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.ledger.ResetAll(); err != nil {
		h.log.Errorf("Failed to reset store data: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to reset store data: "+err.Error())
		return
	}

	h.log.Info("Store data reset by request")
	SuccessResponse(c, http.StatusOK, "All store data cleared", nil)
}
