package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"product-management/internal/domain"
	"product-management/internal/services"
)

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.svc.Auth.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "user registered", user)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.svc.Auth.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "login successful", result)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.svc.Users.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "users retrieved", users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	user, err := h.svc.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "user retrieved", user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	in := services.UserInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	}
	// Only admins may reassign role or status.
	if identity, exists := currentIdentity(c); exists && identity.Role == domain.RoleAdmin {
		in.Role = req.Role
		in.Status = req.Status
	}
	user, err := h.svc.Users.Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "user updated", user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := h.svc.Users.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, "user deleted", nil)
}

func (h *Handler) ListUserOrders(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	orders, err := h.svc.Orders.GetByUserID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "orders retrieved", orders)
}

func (h *Handler) ListUserPayments(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	payments, err := h.svc.Payments.GetByUserID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "payments retrieved", payments)
}

func (h *Handler) ListUserRatings(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	ratings, err := h.svc.Ratings.GetByUser(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "ratings retrieved", ratings)
}

func (h *Handler) GetCart(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	items, err := h.svc.Carts.GetCart(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "cart retrieved", items)
}

func (h *Handler) AddToCart(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	item, err := h.svc.Carts.AddToCart(c.Request.Context(), id, req.ProductID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "item added to cart", item)
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	productID, valid := pathID(c, "productId")
	if !valid {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	item, err := h.svc.Carts.UpdateQuantity(c.Request.Context(), id, productID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	if item == nil {
		ok(c, "item removed from cart", nil)
		return
	}
	ok(c, "cart item updated", item)
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	productID, valid := pathID(c, "productId")
	if !valid {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	if err := h.svc.Carts.RemoveFromCart(c.Request.Context(), id, productID); err != nil {
		fail(c, err)
		return
	}
	ok(c, "item removed from cart", nil)
}

func (h *Handler) ClearCart(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	if err := h.svc.Carts.ClearCart(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, "cart cleared", nil)
}

func (h *Handler) GetWishlist(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	items, err := h.svc.Wishlists.GetWishlist(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "wishlist retrieved", items)
}

func (h *Handler) AddToWishlist(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	var req WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	item, err := h.svc.Wishlists.Add(c.Request.Context(), id, req.ProductID)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "item added to wishlist", item)
}

func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	productID, valid := pathID(c, "productId")
	if !valid {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	if err := h.svc.Wishlists.Remove(c.Request.Context(), id, productID); err != nil {
		fail(c, err)
		return
	}
	ok(c, "item removed from wishlist", nil)
}

// CreateRating always attributes the rating to the authenticated caller; the
// productId in the body picks the target.
func (h *Handler) CreateRating(c *gin.Context) {
	identity, exists := currentIdentity(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, Envelope{Success: false, Message: "authentication required"})
		return
	}
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	rating, err := h.svc.Ratings.Create(c.Request.Context(), req.ProductID, identity.UserID, req.Rating, req.Comment)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "rating created", rating)
}

func (h *Handler) DeleteRating(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := h.svc.Ratings.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, "rating deleted", nil)
}
