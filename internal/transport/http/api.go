package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/httpx"
)

// cartResponse — корзина в ответах API.
type cartResponse struct {
	Lines []domain.CartLine `json:"lines"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

type categoryResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type changeQuantityRequest struct {
	Delta *int `json:"delta"`
}

func toCartResponse(cart domain.Cart) cartResponse {
	return cartResponse{Lines: cart.Lines(), Total: cart.Total(), Count: cart.Count()}
}

func queryFrom(c *gin.Context) domain.ProductQuery {
	return domain.ProductQuery{
		Search:   c.Query("q"),
		Category: c.Query("category"),
		Sort:     domain.ParseSortOrder(c.Query("sort")),
	}
}

func (h *Handler) apiListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Query(c.Request.Context(), queryFrom(c)))
}

func (h *Handler) apiGetProduct(c *gin.Context) {
	id, err := httpx.ParseProductID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	p, ok := h.catalog.Product(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) apiCategories(c *gin.Context) {
	categories := h.catalog.Categories()
	out := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryResponse{Value: cat, Label: domain.CategoryLabel(cat)})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) apiGetCart(c *gin.Context) {
	c.JSON(http.StatusOK, toCartResponse(h.cart.Snapshot()))
}

func (h *Handler) apiAddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	p, ok := h.catalog.Product(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	cart, err := h.cart.AddOrIncrement(ctx, p)
	h.respondCart(c, cart, err)
}

func (h *Handler) apiChangeQuantity(c *gin.Context) {
	id, err := httpx.ParseProductID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	var req changeQuantityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil || req.Delta == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	cart, err := h.cart.ChangeQuantity(ctx, id, *req.Delta)
	h.respondCart(c, cart, err)
}

func (h *Handler) apiRemoveItem(c *gin.Context) {
	id, err := httpx.ParseProductID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	cart, err := h.cart.Remove(ctx, id)
	h.respondCart(c, cart, err)
}

// respondCart — 200 с корзиной; ошибка записи → 500 без деталей (они в логе).
func (h *Handler) respondCart(c *gin.Context, cart domain.Cart, err error) {
	if err != nil {
		h.log.Errorf(c.Request.Context(), "cart mutation failed path=%s err=%v", c.FullPath(), err)
		if errors.Is(err, usecase.ErrCartNotPersisted) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart not persisted"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toCartResponse(cart))
}
