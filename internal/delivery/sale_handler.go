package delivery

import (
	"net/http"
	"time"

	"pos_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SaleHandler struct {
	useCase domain.SaleUseCase
	log     *logrus.Logger
}

func NewSaleHandler(uc domain.SaleUseCase, logger *logrus.Logger) *SaleHandler {
	return &SaleHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *SaleHandler) RegisterRoutes(router gin.IRouter) {
	sales := router.Group("/sales")
	{
		sales.POST("", h.ProcessSale)
		sales.GET("", h.ListSales)
	}
}

func (h *SaleHandler) ProcessSale(c *gin.Context) {
	var requestBody struct {
		MenuItemID int `json:"menu_item_id"`
		Quantity   int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		h.log.Warnf("Failed to bind JSON for process sale: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	h.log.Infof("Processing sale request for menu item %d, quantity %d", requestBody.MenuItemID, requestBody.Quantity)
	receipt, err := h.useCase.ProcessSale(c.Request.Context(), requestBody.MenuItemID, requestBody.Quantity)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to process sale for menu item %d: %v", requestBody.MenuItemID, err)
		ErrorResponse(c, statusCode, "Failed to process sale: "+err.Error())
		return
	}

	h.log.Infof("Sale processed successfully: '%s' x%d (reference %s)", receipt.ItemName, receipt.Quantity, receipt.Reference)
	SuccessResponse(c, http.StatusCreated, "Sale processed successfully", receipt)
}

// ListSales returns the ledger, optionally restricted to an inclusive
// from/to date range. Dates are whole days; the upper bound is widened to
// the end of its day.
func (h *SaleHandler) ListSales(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")

	var from, to time.Time
	if fromStr != "" || toStr != "" {
		if fromStr == "" || toStr == "" {
			ErrorResponse(c, http.StatusBadRequest, "Both 'from' and 'to' must be provided for a date range")
			return
		}
		var err error
		from, err = time.ParseInLocation("2006-01-02", fromStr, time.Local)
		if err != nil {
			h.log.Warnf("Invalid 'from' date parameter: %s", fromStr)
			ErrorResponse(c, http.StatusBadRequest, "Invalid 'from' date, expected YYYY-MM-DD")
			return
		}
		to, err = time.ParseInLocation("2006-01-02", toStr, time.Local)
		if err != nil {
			h.log.Warnf("Invalid 'to' date parameter: %s", toStr)
			ErrorResponse(c, http.StatusBadRequest, "Invalid 'to' date, expected YYYY-MM-DD")
			return
		}
		to = to.AddDate(0, 0, 1)
	}

	sales, err := h.useCase.ListSales(c.Request.Context(), from, to)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to list sales: %v", err)
		ErrorResponse(c, statusCode, "Failed to retrieve sales: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Sales retrieved successfully", sales)
}
