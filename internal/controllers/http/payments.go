package http

import "github.com/gin-gonic/gin"

func (h *Handler) ListPayments(c *gin.Context) {
	payments, err := h.svc.Payments.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "payments retrieved", payments)
}

func (h *Handler) GetPayment(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	payment, err := h.svc.Payments.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "payment retrieved", payment)
}

func (h *Handler) CreatePayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	payment, err := h.svc.Payments.Create(c.Request.Context(), req.OrderID, req.Amount, req.PaymentMethod, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "payment created", payment)
}

func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	payment, err := h.svc.Payments.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "payment status updated", payment)
}
