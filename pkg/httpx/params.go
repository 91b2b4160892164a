package httpx

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrBadProductID — идентификатор товара в пути не является положительным целым.
var ErrBadProductID = errors.New("invalid product id")

// ParseProductID — читает положительный int64 из параметра пути.
func ParseProductID(c *gin.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(param)), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadProductID
	}
	return id, nil
}

// SafeReturnPath — локальный путь для редиректа после формы.
// Внешние адреса и protocol-relative ("//host") заменяются на fallback.
func SafeReturnPath(raw, fallback string) string {
	p := strings.TrimSpace(raw)
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return fallback
	}
	if strings.ContainsAny(p, "\r\n") {
		return fallback
	}
	return p
}
