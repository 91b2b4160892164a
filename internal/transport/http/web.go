package rest

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/storefront/internal/view"
	"github.com/Gunvolt24/storefront/pkg/httpx"
)

func (h *Handler) pageOptions(c *gin.Context) view.Options {
	return view.Options{
		Query:      queryFrom(c),
		CartHidden: c.Query("cart") == "hidden",
		Notice:     c.Query("notice"),
		Loaded:     h.catalog.Loaded(),
	}
}

func (h *Handler) renderStore(c *gin.Context, opts view.Options) {
	products := h.catalog.Query(c.Request.Context(), opts.Query)
	page := view.BuildStorePage(products, h.catalog.Categories(), h.cart.Snapshot(), opts)
	c.HTML(http.StatusOK, view.StoreTemplate, page)
}

func (h *Handler) storePage(c *gin.Context) {
	h.renderStore(c, h.pageOptions(c))
}

func (h *Handler) productPage(c *gin.Context) {
	id, err := httpx.ParseProductID(c, "id")
	if err != nil {
		c.String(http.StatusBadRequest, "invalid product id")
		return
	}
	p, ok := h.catalog.Product(id)
	if !ok {
		c.String(http.StatusNotFound, "product not found")
		return
	}
	opts := h.pageOptions(c)
	opts.Detail = &p
	h.renderStore(c, opts)
}

func (h *Handler) cartPage(c *gin.Context) {
	c.HTML(http.StatusOK, view.CartTemplate, view.BuildCartPage(h.cart.Snapshot(), c.Query("notice")))
}

func (h *Handler) formAdd(c *gin.Context) {
	id, err := httpx.ParseProductID(c, "id")
	if err != nil {
		c.String(http.StatusBadRequest, "invalid product id")
		return
	}
	p, ok := h.catalog.Product(id)
	if !ok {
		c.String(http.StatusNotFound, "product not found")
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	_, err = h.cart.AddOrIncrement(ctx, p)
	h.redirectBack(c, err)
}

func (h *Handler) formChange(delta int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParseProductID(c, "id")
		if err != nil {
			c.String(http.StatusBadRequest, "invalid product id")
			return
		}

		ctx, cancel := h.opContext(c)
		defer cancel()
		_, err = h.cart.ChangeQuantity(ctx, id, delta)
		h.redirectBack(c, err)
	}
}

func (h *Handler) formRemove(c *gin.Context) {
	id, err := httpx.ParseProductID(c, "id")
	if err != nil {
		c.String(http.StatusBadRequest, "invalid product id")
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	_, err = h.cart.Remove(ctx, id)
	h.redirectBack(c, err)
}

// redirectBack — 303 на локальный путь из поля return; при ошибке записи добавляет notice.
func (h *Handler) redirectBack(c *gin.Context, err error) {
	target := httpx.SafeReturnPath(c.PostForm("return"), "/")
	if err != nil {
		h.log.Errorf(c.Request.Context(), "cart mutation failed path=%s err=%v", c.FullPath(), err)
		target = withNotice(target, view.NoticeUnsaved)
	}
	c.Redirect(http.StatusSeeOther, target)
}

func withNotice(target, notice string) string {
	u, err := url.Parse(target)
	if err != nil {
		return "/"
	}
	q := u.Query()
	q.Set("notice", notice)
	u.RawQuery = q.Encode()
	return u.String()
}

