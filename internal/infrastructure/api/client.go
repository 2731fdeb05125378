package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jhoicas/catalog-admin/internal/application/ports"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// maxBody límite de lectura de respuestas.
const maxBody = 8 << 20

// TokenSource origen del bearer token. Se consulta en cada petición, así un logout
// deja de enviar el token sin reconstruir el cliente.
type TokenSource interface {
	Load(ctx context.Context) (string, error)
}

// Config configuración del transporte.
type Config struct {
	BaseURL string        // p.ej. http://localhost:8080/api
	Timeout time.Duration // se aplica igual a todas las peticiones
}

// Client transporte HTTP único hacia el backend REST.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *logger.Logger
}

// Option ajusta el cliente en construcción.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests). El transporte se envuelve igual con otelhttp.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		cp := *h
		base := cp.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		cp.Transport = otelhttp.NewTransport(base)
		c.httpClient = &cp
	}
}

// NewClient valida la URL base y arma el cliente. tokens puede ser nil (sin auth).
func NewClient(cfg Config, tokens TokenSource, log *logger.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("api: base URL inválida: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("api: base URL %q debe ser http(s)://host[/ruta]: %w", cfg.BaseURL, domain.ErrInvalidInput)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tokens: tokens,
		log:    logger.OrNop(log).Named("api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL URL base normalizada (sin barra final).
func (c *Client) BaseURL() string { return c.baseURL }

// Auth endpoints de autenticación.
func (c *Client) Auth() *AuthAPI { return &AuthAPI{c: c} }

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("api: serializar request: %w", err)
	}
	return c.do(ctx, method, path, nil, bytes.NewReader(body), "application/json", out)
}

func (c *Client) sendForm(ctx context.Context, method, path string, p ports.FormPayload, out any) error {
	body, contentType, err := encodeForm(p)
	if err != nil {
		return err
	}
	return c.do(ctx, method, path, nil, body, contentType, out)
}

// do ejecuta la petición, adjunta el bearer token si existe y decodifica out en 2xx.
// En no-2xx devuelve *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("api: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := c.bearer(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("api: %s %s: timeout o cancelación: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("api: leer respuesta: %w", err)
	}
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("petición al backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnexpectedResponse, method, path, err)
	}
	return nil
}

func (c *Client) bearer(ctx context.Context) string {
	if c.tokens == nil {
		return ""
	}
	tok, err := c.tokens.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNoSession) {
			c.log.Warn().Err(err).Msg("no se pudo leer el token; la petición sale sin Authorization")
		}
		return ""
	}
	return tok
}
