package client

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// User usuario tal como lo devuelve la API.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Item item de inventario.
type Item struct {
	ID          string              `json:"id"`
	OwnerID     string              `json:"owner_id"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Quantity    int64               `json:"quantity"`
	Price       decimal.NullDecimal `json:"price"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ItemInput cuerpo de creación/actualización.
type ItemInput struct {
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Quantity    int64            `json:"quantity"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// RegisterInput datos de registro.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// APIError respuesta de error de la API; Message es el texto para mostrar al usuario.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// IsStatus indica si err es un *APIError con ese status HTTP.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// Client cliente HTTP de la API. Adjunta "Authorization: Bearer <token>" mientras tenga token.
// Es seguro para uso concurrente.
type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

// Option configura el Client.
type Option func(*resty.Client)

// WithHTTPClient usa un *http.Client propio (transportes de prueba, proxies).
func WithHTTPClient(hc *http.Client) Option {
	return func(rc *resty.Client) {
		if hc.Transport != nil {
			rc.SetTransport(hc.Transport)
		}
		rc.SetTimeout(hc.Timeout)
	}
}

// WithTimeout timeout por petición (10s por defecto).
func WithTimeout(d time.Duration) Option {
	return func(rc *resty.Client) { rc.SetTimeout(d) }
}

// New construye el cliente contra baseURL (ej. http://localhost:5000).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{}
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(rc)
	}
	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if tok := c.Token(); tok != "" {
			r.SetAuthToken(tok)
		}
		return nil
	})
	c.http = rc
	return c
}

// SetToken fija el token ("" lo quita).
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token devuelve el token actual.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register crea la cuenta y devuelve el mensaje del servidor. No inicia sesión.
func (c *Client) Register(ctx context.Context, in RegisterInput) (string, error) {
	var out struct {
		Message string `json:"message"`
		User    User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Login autentica y devuelve token y usuario. No guarda el token; eso lo hace Session.
func (c *Client) Login(ctx context.Context, email, password string) (string, *User, error) {
	var out struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return "", nil, err
	}
	return out.Token, &out.User, nil
}

// Verify valida el token actual y devuelve el usuario vigente.
func (c *Client) Verify(ctx context.Context) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// ListItems lista los items del usuario, más recientes primero.
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	out := make([]Item, 0)
	if err := c.do(ctx, http.MethodGet, "/api/inventory", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetItem obtiene un item por id.
func (c *Client) GetItem(ctx context.Context, id string) (*Item, error) {
	var out Item
	if err := c.do(ctx, http.MethodGet, "/api/inventory/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateItem crea un item.
func (c *Client) CreateItem(ctx context.Context, in ItemInput) (*Item, error) {
	var out struct {
		Item Item `json:"item"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/inventory", in, &out); err != nil {
		return nil, err
	}
	return &out.Item, nil
}

// UpdateItem sobrescribe un item.
func (c *Client) UpdateItem(ctx context.Context, id string, in ItemInput) (*Item, error) {
	var out struct {
		Item Item `json:"item"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/inventory/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out.Item, nil
}

// DeleteItem elimina un item.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/inventory/"+id, nil, nil)
}

// Export descarga el inventario en el formato pedido ("pdf" o "xml").
// Devuelve el contenido y el nombre de archivo sugerido por el servidor.
func (c *Client) Export(ctx context.Context, format string) ([]byte, string, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("format", format).
		SetError(&APIError{})
	resp, err := req.Get("/api/inventory/export")
	if err != nil {
		return nil, "", fmt.Errorf("export: %w", err)
	}
	if resp.IsError() {
		return nil, "", toAPIError(resp)
	}
	filename := ""
	if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil {
		filename = params["filename"]
	}
	return resp.Body(), filename, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	req := c.http.R().SetContext(ctx).SetError(&APIError{})
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return toAPIError(resp)
	}
	return nil
}

func toAPIError(resp *resty.Response) error {
	apiErr, ok := resp.Error().(*APIError)
	if !ok || apiErr == nil {
		apiErr = &APIError{}
	}
	apiErr.StatusCode = resp.StatusCode()
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}
	return apiErr
}
