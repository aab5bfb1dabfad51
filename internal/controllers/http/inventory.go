package http

import "github.com/gin-gonic/gin"

func (h *Handler) ListInventoryLogs(c *gin.Context) {
	logs, err := h.svc.Inventory.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "inventory logs retrieved", logs)
}

func (h *Handler) ListProductLogs(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	logs, err := h.svc.Inventory.GetByProduct(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "inventory logs retrieved", logs)
}

func (h *Handler) CreateInventoryLog(c *gin.Context) {
	var req InventoryLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.svc.Inventory.CreateLog(c.Request.Context(), req.ProductID, req.ChangeQuantity, req.LogType, req.Notes)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, withSideEffects("inventory log created", result.SideEffects), result.Log)
}
