package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/deepakshresthadhd-design/Group/internal/domain"
	"github.com/deepakshresthadhd-design/Group/internal/usecase"
)

type customerView struct {
	domain.Customer
	Balance float64 `json:"balance"`
}

type CustomerHandler struct {
	ledger usecase.LedgerUseCase
	log    *logrus.Logger
}

func NewCustomerHandler(ledger usecase.LedgerUseCase, logger *logrus.Logger) *CustomerHandler {
	return &CustomerHandler{
		ledger: ledger,
		log:    logger,
	}
}

func (h *CustomerHandler) RegisterRoutes(router gin.IRouter) {
	customers := router.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.POST("", h.CreateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
		customers.POST("/:id/payments", h.RecordPayment)
	}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	data := h.ledger.Snapshot()
	views := make([]customerView, 0, len(data.Customers))
	for _, customer := range data.Customers {
		views = append(views, customerView{Customer: customer, Balance: customer.Balance()})
	}
	SuccessResponse(c, http.StatusOK, "Customers retrieved successfully", views)
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var form domain.CustomerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.log.Errorf("Failed to bind JSON for create customer: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	form.ID = ""

	customer, err := h.ledger.SaveCustomer(form)
	if err != nil {
		h.log.Errorf("Failed to create customer '%s': %v", form.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to create customer: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "Customer created successfully", customer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var form domain.CustomerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.log.Errorf("Failed to bind JSON for update customer: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	form.ID = c.Param("id")

	customer, err := h.ledger.SaveCustomer(form)
	if err != nil {
		h.log.Errorf("Failed to update customer ID %s: %v", form.ID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to update customer: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Customer updated successfully", customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id := c.Param("id")
	if err := h.ledger.DeleteCustomer(id); err != nil {
		h.log.Warnf("Failed to delete customer ID %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to delete customer: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Customer and associated sales deleted successfully", nil)
}

func (h *CustomerHandler) RecordPayment(c *gin.Context) {
	id := c.Param("id")

	var form domain.PaymentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.log.Errorf("Failed to bind JSON for payment on customer ID %s: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.ledger.RecordPayment(id, form)
	if err != nil {
		h.log.Errorf("Failed to record payment for customer ID %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to record payment: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "Payment recorded successfully",
		customerView{Customer: *customer, Balance: customer.Balance()})
}
