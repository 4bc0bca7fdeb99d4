package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/deepakshresthadhd-design/Group/internal/domain"
	"github.com/deepakshresthadhd-design/Group/internal/usecase"
)

type ProductHandler struct {
	ledger  usecase.LedgerUseCase
	reports usecase.ReportUseCase
	log     *logrus.Logger
}

func NewProductHandler(ledger usecase.LedgerUseCase, reports usecase.ReportUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		ledger:  ledger,
		reports: reports,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
		products.GET("/:id/history", h.ProductHistory)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products := h.reports.SearchProducts(c.Query("q"))
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var form domain.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	form.ID = ""

	product, err := h.ledger.SaveProduct(form)
	if err != nil {
		h.log.Errorf("Failed to create product '%s': %v", form.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to create product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "Product created successfully", product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var form domain.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.log.Errorf("Failed to bind JSON for update product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	form.ID = c.Param("id")

	product, err := h.ledger.SaveProduct(form)
	if err != nil {
		h.log.Errorf("Failed to update product ID %s: %v", form.ID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to update product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product updated successfully", product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := h.ledger.DeleteProduct(id); err != nil {
		h.log.Warnf("Failed to delete product ID %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to delete product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}

func (h *ProductHandler) ProductHistory(c *gin.Context) {
	id := c.Param("id")
	movements, err := h.reports.ProductHistory(id)
	if err != nil {
		h.log.Warnf("Failed to get history for product ID %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve product history: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product history retrieved successfully", movements)
}
