package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/view"
	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/Gunvolt24/storefront/pkg/httpx"
)

// Handler — HTTP-обработчики витрины: JSON API и HTML-страницы поверх одной корзины.
type Handler struct {
	cart    ports.CartService
	catalog ports.CatalogReader
	log     ports.Logger
	timeout time.Duration // таймаут операций с корзиной (0 — без таймаута)
}

// NewHandler — DI-конструктор.
func NewHandler(cart ports.CartService, catalog ports.CatalogReader, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{cart: cart, catalog: catalog, log: log, timeout: timeout}
}

// NewRouter — gin.Engine со служебными маршрутами, API и страницами.
// otelServiceName != "" — включает серверные спаны otelgin.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.SetHTMLTemplate(view.MustTemplates())

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api", httpx.OriginMiddleware(ctxmeta.OriginAPI))
	{
		api.GET("/products", h.apiListProducts)
		api.GET("/products/:id", h.apiGetProduct)
		api.GET("/categories", h.apiCategories)
		api.GET("/cart", h.apiGetCart)
		api.POST("/cart/items", h.apiAddItem)
		api.PATCH("/cart/items/:id", h.apiChangeQuantity)
		api.DELETE("/cart/items/:id", h.apiRemoveItem)
	}

	web := r.Group("", httpx.OriginMiddleware(ctxmeta.OriginWeb))
	{
		web.GET("/", h.storePage)
		web.GET("/products/:id", h.productPage)
		web.GET("/cart", h.cartPage)
		web.POST("/cart/add/:id", h.formAdd)
		web.POST("/cart/items/:id/increment", h.formChange(1))
		web.POST("/cart/items/:id/decrement", h.formChange(-1))
		web.POST("/cart/items/:id/remove", h.formRemove)
	}

	if staticDir != "" {
		r.Static("/static", staticDir)
	}

	return r
}

// opContext — контекст запроса с таймаутом обработчика.
func (h *Handler) opContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
