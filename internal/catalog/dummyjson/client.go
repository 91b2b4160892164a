// Пакет dummyjson — клиент API каталога товаров (формат dummyjson.com/products).
package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// DefaultURL — адрес каталога по умолчанию.
const DefaultURL = "https://dummyjson.com/products"

// maxBodyBytes — предел размера ответа каталога.
const maxBodyBytes = 8 << 20

// productsResponse — конверт ответа API.
type productsResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// Client — HTTP-клиент каталога.
type Client struct {
	url  string
	http *http.Client
}

// New — клиент с таймаутом запроса и трассировкой исходящих вызовов.
func New(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url: url,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// FetchProducts — один GET к каталогу.
// Ошибка транспорта, статус вне 2xx и невалидный JSON возвращаются как ошибка.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	var body productsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if body.Products == nil {
		return []domain.Product{}, nil
	}
	return body.Products, nil
}
