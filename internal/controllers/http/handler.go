package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"product-management/internal/domain"
	"product-management/internal/infra/token"
	"product-management/internal/services"
)

// Services bundles everything the HTTP layer dispatches to.
type Services struct {
	Auth       *services.AuthService
	Users      *services.UserService
	Products   *services.ProductService
	Categories *services.CategoryService
	Carts      *services.CartService
	Wishlists  *services.WishlistService
	Ratings    *services.RatingService
	Orders     *services.OrderService
	Payments   *services.PaymentService
	Inventory  *services.InventoryService
	Dashboard  *services.DashboardService
}

type Handler struct {
	svc    Services
	signer *token.Signer
}

func NewHandler(svc Services, signer *token.Signer) *Handler {
	return &Handler{svc: svc, signer: signer}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/products/:id/ratings", h.ListProductRatings)
	r.GET("/categories", h.ListCategories)
	r.GET("/categories/:id", h.GetCategory)
	r.GET("/categories/:id/products", h.ListCategoryProducts)
	r.POST("/orders", h.PlaceOrder)

	authed := r.Group("/", h.authRequired())
	{
		authed.GET("/users/:id", h.GetUser)
		authed.PUT("/users/:id", h.UpdateUser)
		authed.GET("/users/:id/orders", h.ListUserOrders)
		authed.GET("/users/:id/payments", h.ListUserPayments)
		authed.GET("/users/:id/ratings", h.ListUserRatings)

		authed.GET("/users/:id/cart", h.GetCart)
		authed.POST("/users/:id/cart", h.AddToCart)
		authed.DELETE("/users/:id/cart", h.ClearCart)
		authed.PUT("/users/:id/cart/:productId", h.UpdateCartItem)
		authed.DELETE("/users/:id/cart/:productId", h.RemoveFromCart)

		authed.GET("/users/:id/wishlist", h.GetWishlist)
		authed.POST("/users/:id/wishlist", h.AddToWishlist)
		authed.DELETE("/users/:id/wishlist/:productId", h.RemoveFromWishlist)

		authed.POST("/ratings", h.CreateRating)
		authed.DELETE("/ratings/:id", h.DeleteRating)
	}

	admin := r.Group("/", h.authRequired(), h.adminRequired())
	{
		admin.GET("/users", h.ListUsers)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)
		admin.GET("/products/:id/logs", h.ListProductLogs)

		admin.POST("/categories", h.CreateCategory)
		admin.PUT("/categories/:id", h.UpdateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.GET("/orders", h.ListOrders)
		admin.GET("/orders/:id", h.GetOrder)
		admin.PATCH("/orders/:id/status", h.UpdateOrderStatus)
		admin.DELETE("/orders/:id/cancel", h.CancelOrder)
		admin.GET("/orders/:id/payments", h.ListOrderPayments)
		admin.POST("/orders/:id/payments", h.ProcessPayment)

		admin.GET("/payments", h.ListPayments)
		admin.POST("/payments", h.CreatePayment)
		admin.GET("/payments/:id", h.GetPayment)
		admin.PATCH("/payments/:id/status", h.UpdatePaymentStatus)

		admin.GET("/inventory-logs", h.ListInventoryLogs)
		admin.POST("/inventory-logs", h.CreateInventoryLog)

		admin.GET("/dashboard", h.GetDashboard)
	}
}

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}

// requireSelfOrAdmin guards account-scoped routes: a caller may only touch
// their own resources unless they hold the admin role.
func requireSelfOrAdmin(c *gin.Context, userID uint64) bool {
	identity, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, Envelope{Success: false, Message: "authentication required"})
		return false
	}
	if identity.UserID != userID && identity.Role != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, Envelope{Success: false, Message: "access denied"})
		return false
	}
	return true
}

func (h *Handler) GetDashboard(c *gin.Context) {
	stats, err := h.svc.Dashboard.GetStats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "dashboard statistics retrieved", stats)
}
