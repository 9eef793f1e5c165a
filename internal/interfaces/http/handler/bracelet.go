package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	invapp "github.com/candicorner/inventory/internal/application/inventory"
	"github.com/candicorner/inventory/internal/domain/shared"
	"github.com/candicorner/inventory/internal/infrastructure/logger"
	"github.com/candicorner/inventory/internal/interfaces/http/dto"
)

// BraceletHandler handles bracelet catalog API endpoints
type BraceletHandler struct {
	BaseHandler
	service *invapp.InventoryService
	loader  *invapp.BulkLoader
}

// NewBraceletHandler creates a new BraceletHandler
func NewBraceletHandler(service *invapp.InventoryService, loader *invapp.BulkLoader) *BraceletHandler {
	return &BraceletHandler{
		service: service,
		loader:  loader,
	}
}

// RegisterRoutes registers bracelet routes on the given router group
func (h *BraceletHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bracelets := rg.Group("/bracelets")
	{
		bracelets.GET("", h.List)
		bracelets.GET("/low-stock", h.LowStock)
		bracelets.GET(":id", h.Get)
		bracelets.POST("", h.Create)
		bracelets.POST("/import", h.Import)
		bracelets.PATCH(":id", h.UpdateField)
		bracelets.DELETE(":id", h.Remove)
	}
}

// List returns every bracelet in storage order
func (h *BraceletHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewBraceletListResponse(items))
}

// Get returns a single bracelet. The id is matched case-insensitively.
func (h *BraceletHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	bracelet, err := h.service.Get(c.Request.Context(), req.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewBraceletResponse(bracelet))
}

// Create adds a new bracelet. All fields arrive as raw text; the domain
// layer validates them and the first failure is reported.
func (h *BraceletHandler) Create(c *gin.Context) {
	var req dto.CreateBraceletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	bracelet, err := h.service.Add(c.Request.Context(), req.ID, req.Description, req.Quantity, req.Price)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	logger.GetGinLogger(c).Info("bracelet created", zap.String("id", bracelet.ID))
	h.Created(c, dto.NewBraceletResponse(bracelet))
}

// UpdateField updates one of quantity, price or status on a bracelet
func (h *BraceletHandler) UpdateField(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	var req dto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.service.UpdateField(c.Request.Context(), uri.ID, req.Field, req.Value)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewUpdateFieldResponse(result))
}

// Remove deletes a bracelet and reports what was removed
func (h *BraceletHandler) Remove(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.service.Remove(c.Request.Context(), req.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	logger.GetGinLogger(c).Info("bracelet removed", zap.String("id", result.ID))
	h.Success(c, result)
}

// LowStock returns bracelets with quantity below the threshold query
// parameter, sorted ascending by quantity
func (h *BraceletHandler) LowStock(c *gin.Context) {
	items, err := h.service.LowStock(c.Request.Context(), c.Query("threshold"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewBraceletListResponse(items))
}

// Import bulk-loads bracelets from a plain text body, one record per
// line in id,description,quantity,price,status form. Bad lines are
// skipped with warnings; only a storage fault aborts the batch, and the
// partial report is returned alongside the error.
func (h *BraceletHandler) Import(c *gin.Context) {
	report, err := h.loader.LoadReader(c.Request.Context(), c.Request.Body)
	if err != nil {
		var domainErr *shared.DomainError
		if report != nil && errors.As(err, &domainErr) {
			requestID := getRequestID(c)
			c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.NewPartialResponse(
				report, domainErr.Code, domainErr.Message, requestID))
			return
		}
		h.HandleError(c, err)
		return
	}

	logger.GetGinLogger(c).Info("bulk import finished",
		zap.Int("loaded", report.Loaded),
		zap.Int("skipped", report.Skipped),
	)
	h.Success(c, report)
}
