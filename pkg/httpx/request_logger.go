package httpx

import (
	"strings"
	"time"

	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/gin-gonic/gin"
)

// RequestLogger — middleware для логирования HTTP-запросов.
// request_id/trace_id попадают в запись через контекст (см. pkg/logger).
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		// не логируем служебные маршруты и статику
		switch {
		case path == "/metrics", path == "/ping", strings.HasPrefix(path, "/static"):
			return
		}

		log.Infof(
			c.Request.Context(),
			"request method=%s path=%s status=%d ip=%s duration=%s size=%d",
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
