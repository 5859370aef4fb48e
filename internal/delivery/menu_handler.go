package delivery

import (
	"net/http"
	"strconv"

	"pos_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type MenuHandler struct {
	useCase domain.MenuUseCase
	log     *logrus.Logger
}

func NewMenuHandler(uc domain.MenuUseCase, logger *logrus.Logger) *MenuHandler {
	return &MenuHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *MenuHandler) RegisterRoutes(router gin.IRouter) {
	menu := router.Group("/menu")
	{
		menu.POST("", h.AddMenuItem)
		menu.GET("", h.ListMenuItems)
		menu.GET("/:id", h.GetMenuItem)
		menu.DELETE("/:id", h.DeleteMenuItem)
	}
}

func (h *MenuHandler) AddMenuItem(c *gin.Context) {
	var requestBody struct {
		Name     string          `json:"name"`
		Category domain.Category `json:"category"`
		Price    int64           `json:"price"`
		Stock    int             `json:"stock"`
	}
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		h.log.Warnf("Failed to bind JSON for add menu item: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	item := domain.MenuItem{
		Name:     requestBody.Name,
		Category: requestBody.Category,
		Price:    requestBody.Price,
		Stock:    requestBody.Stock,
	}
	created, err := h.useCase.AddMenuItem(c.Request.Context(), &item)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to add menu item '%s': %v", requestBody.Name, err)
		ErrorResponse(c, statusCode, "Failed to add menu item: "+err.Error())
		return
	}

	h.log.Infof("Menu item %d added successfully", created.ID)
	SuccessResponse(c, http.StatusCreated, "Menu item added successfully", created)
}

func (h *MenuHandler) ListMenuItems(c *gin.Context) {
	items, err := h.useCase.ListMenuItems(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list menu items: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve menu items")
		return
	}

	SuccessResponse(c, http.StatusOK, "Menu items retrieved successfully", items)
}

func (h *MenuHandler) GetMenuItem(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid menu item ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid menu item ID format")
		return
	}

	item, err := h.useCase.GetMenuItemByID(c.Request.Context(), id)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to get menu item ID %d: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to retrieve menu item: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Menu item retrieved successfully", item)
}

func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid menu item ID parameter for delete: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid menu item ID format")
		return
	}

	if err := h.useCase.DeleteMenuItem(c.Request.Context(), id); err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to delete menu item ID %d: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to delete menu item: "+err.Error())
		return
	}

	h.log.Infof("Menu item %d deleted successfully", id)
	SuccessResponse(c, http.StatusOK, "Menu item deleted successfully", nil)
}
