package http

import (
	"github.com/gin-gonic/gin"

	"product-management/internal/domain"
	"product-management/internal/services"
)

// ListProducts supports two query filters: ?status=active narrows to the
// storefront view and ?keyword= searches name and description. Filters are
// exclusive; keyword wins over status. Category filtering lives at
// /categories/:id/products.
func (h *Handler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		products []domain.Product
		err      error
	)
	switch {
	case c.Query("keyword") != "":
		products, err = h.svc.Products.Search(ctx, c.Query("keyword"))
	case c.Query("status") == "active":
		products, err = h.svc.Products.GetActive(ctx)
	default:
		products, err = h.svc.Products.GetAll(ctx)
	}
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "products retrieved", products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	product, err := h.svc.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "product retrieved", product)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	product, err := h.svc.Products.Create(c.Request.Context(), productInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "product created", product)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	product, err := h.svc.Products.Update(c.Request.Context(), id, productInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "product updated", product)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := h.svc.Products.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, "product deleted", nil)
}

func (h *Handler) ListProductRatings(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	ratings, err := h.svc.Ratings.GetByProduct(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "ratings retrieved", ratings)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.svc.Categories.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "categories retrieved", categories)
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	category, err := h.svc.Categories.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "category retrieved", category)
}

func (h *Handler) ListCategoryProducts(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	products, err := h.svc.Products.GetByCategory(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "products retrieved", products)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	category, err := h.svc.Categories.Create(c.Request.Context(), services.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "category created", category)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	category, err := h.svc.Categories.Update(c.Request.Context(), id, services.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "category updated", category)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := h.svc.Categories.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, "category deleted", nil)
}

func productInput(req ProductRequest) services.ProductInput {
	return services.ProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Image:         req.Image,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Quantity:      req.Quantity,
		Status:        req.Status,
		CategoryID:    req.CategoryID,
	}
}
