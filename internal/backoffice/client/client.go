// Package client implementa el gateway del back-office sobre la API HTTP del servicio.
// Usa net/http; cada error de la API se traduce a *APIError, comparable con los errores de dominio.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/backoffice"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
)

// maxBody límite de lectura de una respuesta.
const maxBody = 8 << 20

// APIError respuesta de error de la API ({code, message}).
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api: HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: HTTP %d %s: %s", e.Status, e.Code, e.Message)
}

// Is permite errors.Is(err, domain.ErrNotFound) y similares según el status HTTP.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	case domain.ErrInvalidInput:
		return e.Status == http.StatusBadRequest
	case domain.ErrDuplicate:
		return e.Status == http.StatusConflict && e.Code == "DUPLICATE"
	case domain.ErrConflict:
		return e.Status == http.StatusConflict
	case domain.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case domain.ErrForbidden:
		return e.Status == http.StatusForbidden
	}
	return false
}

// Client cliente de la API del back-office.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests, transportes personalizados).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout cambia el timeout por request (15s por defecto).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New crea el cliente. baseURL es la raíz del servicio (ej. "http://localhost:8080").
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api",
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: serializar %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("api: crear request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("api: %s %s cancelado: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("api: leer respuesta: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var payload dto.ErrorResponse
		if json.Unmarshal(raw, &payload) == nil && payload.Code != "" {
			apiErr.Code, apiErr.Message = payload.Code, payload.Message
		}
		return apiErr
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: decodificar %s %s: %w", method, path, err)
	}
	return nil
}

func pageValues(q backoffice.PageQuery) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	return v
}

// ── Gateway genérico ──────────────────────────────────────────────────────────

// Gateway CRUD HTTP de una entidad bajo /api/<resource>.
type Gateway[T, D any] struct {
	c        *Client
	resource string
}

var _ backoffice.Gateway[dto.CategoryResponse, dto.CategoryRequest] = (*Gateway[dto.CategoryResponse, dto.CategoryRequest])(nil)

// NewGateway crea el gateway de resource ("categories", "products", ...).
func NewGateway[T, D any](c *Client, resource string) *Gateway[T, D] {
	return &Gateway[T, D]{c: c, resource: "/" + resource}
}

func (g *Gateway[T, D]) List(ctx context.Context, q backoffice.PageQuery) (backoffice.Page[T], error) {
	var out dto.ListResponse[T]
	if err := g.c.do(ctx, http.MethodGet, g.resource, pageValues(q), nil, &out); err != nil {
		return backoffice.Page[T]{}, err
	}
	return backoffice.Page[T]{Items: out.Items, Page: out.Page.Page, Size: out.Page.Size, Total: out.Page.Total}, nil
}

func (g *Gateway[T, D]) Get(ctx context.Context, id int64) (T, error) {
	var out T
	err := g.c.do(ctx, http.MethodGet, g.item(id), nil, nil, &out)
	return out, err
}

func (g *Gateway[T, D]) Create(ctx context.Context, draft D) (T, error) {
	var out T
	err := g.c.do(ctx, http.MethodPost, g.resource, nil, draft, &out)
	return out, err
}

func (g *Gateway[T, D]) Update(ctx context.Context, id int64, draft D) (T, error) {
	var out T
	err := g.c.do(ctx, http.MethodPut, g.item(id), nil, draft, &out)
	return out, err
}

func (g *Gateway[T, D]) Delete(ctx context.Context, id int64) error {
	return g.c.do(ctx, http.MethodDelete, g.item(id), nil, nil, nil)
}

func (g *Gateway[T, D]) item(id int64) string {
	return g.resource + "/" + strconv.FormatInt(id, 10)
}

// ── Gateways por entidad ──────────────────────────────────────────────────────

func (c *Client) Categories() *Gateway[dto.CategoryResponse, dto.CategoryRequest] {
	return NewGateway[dto.CategoryResponse, dto.CategoryRequest](c, "categories")
}

func (c *Client) Products() *Gateway[dto.ProductResponse, dto.ProductRequest] {
	return NewGateway[dto.ProductResponse, dto.ProductRequest](c, "products")
}

func (c *Client) Customers() *Gateway[dto.CustomerResponse, dto.CustomerRequest] {
	return NewGateway[dto.CustomerResponse, dto.CustomerRequest](c, "customers")
}

func (c *Client) Orders() *Gateway[dto.OrderResponse, dto.OrderRequest] {
	return NewGateway[dto.OrderResponse, dto.OrderRequest](c, "orders")
}

func (c *Client) Users() *Gateway[dto.UserResponse, dto.UserRequest] {
	return NewGateway[dto.UserResponse, dto.UserRequest](c, "users")
}

// ── Lecturas especializadas ───────────────────────────────────────────────────

var (
	_ backoffice.CategoryDirectory = (*Client)(nil)
	_ backoffice.CustomerDirectory = (*Client)(nil)
	_ backoffice.DashboardSource   = (*Client)(nil)
)

// ActiveCategories GET /categories/active.
func (c *Client) ActiveCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var out []dto.CategoryResponse
	err := c.do(ctx, http.MethodGet, "/categories/active", nil, nil, &out)
	return out, err
}

// ActiveCustomers GET /customers/active.
func (c *Client) ActiveCustomers(ctx context.Context) ([]dto.CustomerResponse, error) {
	var out []dto.CustomerResponse
	err := c.do(ctx, http.MethodGet, "/customers/active", nil, nil, &out)
	return out, err
}

// LowStockProducts GET /products/low-stock?threshold=N.
func (c *Client) LowStockProducts(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	q := url.Values{"threshold": {strconv.Itoa(threshold)}}
	err := c.do(ctx, http.MethodGet, "/products/low-stock", q, nil, &out)
	return out, err
}

// TotalRevenue GET /orders/revenue.
func (c *Client) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var out dto.RevenueResponse
	if err := c.do(ctx, http.MethodGet, "/orders/revenue", nil, nil, &out); err != nil {
		return decimal.Zero, err
	}
	return out.TotalRevenue, nil
}

// CountOrdersByStatus GET /orders/count?status=S.
func (c *Client) CountOrdersByStatus(ctx context.Context, status string) (int64, error) {
	var out dto.CountResponse
	q := url.Values{"status": {status}}
	if err := c.do(ctx, http.MethodGet, "/orders/count", q, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *Client) ListProducts(ctx context.Context, q backoffice.PageQuery) (backoffice.Page[dto.ProductResponse], error) {
	return c.Products().List(ctx, q)
}

func (c *Client) ListCustomers(ctx context.Context, q backoffice.PageQuery) (backoffice.Page[dto.CustomerResponse], error) {
	return c.Customers().List(ctx, q)
}

func (c *Client) ListOrders(ctx context.Context, q backoffice.PageQuery) (backoffice.Page[dto.OrderResponse], error) {
	return c.Orders().List(ctx, q)
}

// DashboardReport GET /dashboard/report.pdf.
func (c *Client) DashboardReport(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/dashboard/report.pdf", nil)
	if err != nil {
		return nil, fmt.Errorf("api: crear request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: reporte: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBody))
}

// IsNotFound atajo de errors.Is(err, domain.ErrNotFound).
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
