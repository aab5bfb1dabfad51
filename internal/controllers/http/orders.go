package http

import (
	"github.com/gin-gonic/gin"

	"product-management/internal/domain"
	"product-management/internal/services"
)

func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	items := make([]services.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, services.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	result, err := h.svc.Orders.PlaceOrder(c.Request.Context(), services.PlaceOrderInput{
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		UserID:        req.UserID,
		Items:         items,
	})
	if err != nil {
		fail(c, err)
		return
	}
	created(c, withSideEffects("order placed", result.SideEffects), result.Order)
}

// ListOrders narrows by at most one query filter: ?code= looks a single order
// up by its code, ?email= and ?status= return matching lists.
func (h *Handler) ListOrders(c *gin.Context) {
	ctx := c.Request.Context()

	if code := c.Query("code"); code != "" {
		order, err := h.svc.Orders.GetByCode(ctx, code)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, "order retrieved", []domain.Order{*order})
		return
	}

	var (
		orders []domain.Order
		err    error
	)
	switch {
	case c.Query("email") != "":
		orders, err = h.svc.Orders.GetByEmail(ctx, c.Query("email"))
	case c.Query("status") != "":
		orders, err = h.svc.Orders.GetByStatus(ctx, c.Query("status"))
	default:
		orders, err = h.svc.Orders.GetAll(ctx)
	}
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "orders retrieved", orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	order, err := h.svc.Orders.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "order retrieved", order)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.svc.Orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, withSideEffects("order status updated", result.SideEffects), result.Order)
}

func (h *Handler) CancelOrder(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	result, err := h.svc.Orders.Cancel(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, withSideEffects("order cancelled", result.SideEffects), result.Order)
}

func (h *Handler) ListOrderPayments(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	payments, err := h.svc.Payments.GetByOrderID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "payments retrieved", payments)
}

// ProcessPayment records a payment against the order and, when it settles
// immediately, advances the order to paid in the same transaction.
func (h *Handler) ProcessPayment(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	payment, err := h.svc.Payments.Process(c.Request.Context(), id, req.Amount, req.PaymentMethod, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "payment processed", payment)
}
