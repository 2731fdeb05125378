package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/application/ports"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/api"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/session"
)

// newTestClient levanta un servidor con handler y un cliente apuntando a <srv>/api.
func newTestClient(t *testing.T, token string, handler http.HandlerFunc) (*api.Client, *session.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tokens := session.NewMemoryStore(token)
	c, err := api.NewClient(api.Config{BaseURL: srv.URL + "/api/", Timeout: 2 * time.Second}, tokens, nil)
	require.NoError(t, err)
	return c, tokens
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewClient_URLInvalida(t *testing.T) {
	_, err := api.NewClient(api.Config{BaseURL: "localhost:8080"}, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	c, err := api.NewClient(api.Config{BaseURL: "http://localhost:8080/api/"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", c.BaseURL())
}

func TestClient_EnviaBearerSoloConToken(t *testing.T) {
	var (
		mu  sync.Mutex
		got []string
	)
	c, tokens := newTestClient(t, "tok-1", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = append(got, r.Header.Get("Authorization"))
		mu.Unlock()
		writeJSON(w, http.StatusOK, `{"categories":[]}`)
	})
	ctx := context.Background()

	_, err := c.Categories().List(ctx, ports.ListFilter{})
	require.NoError(t, err)
	require.NoError(t, tokens.Clear(ctx))
	_, err = c.Categories().List(ctx, ports.ListFilter{})
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Bearer tok-1", ""}, got)
}

func TestList_EnvueltaPlanaYVacia(t *testing.T) {
	bodies := map[string]string{
		"/api/categories":    `{"categories":[{"_id":"c1","categoryName":"Shoes","status":"active"}]}`,
		"/api/subcategories": `[{"_id":"s1","subCategoryName":"Sneakers","categoryId":{"_id":"c1","categoryName":"Shoes"}}]`,
		"/api/products":      `{"message":"ok"}`,
	}
	c, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, bodies[r.URL.Path])
	})
	ctx := context.Background()

	cats, err := c.Categories().List(ctx, ports.ListFilter{})
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Shoes", cats[0].Name)

	subs, err := c.SubCategories().List(ctx, ports.ListFilter{})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "c1", subs[0].CategoryID.ID)
	assert.Equal(t, "Shoes", subs[0].CategoryID.Name)

	prods, err := c.Products().List(ctx, ports.ListFilter{})
	require.NoError(t, err)
	assert.NotNil(t, prods)
	assert.Empty(t, prods)
}

func TestList_FiltrosEnQuery(t *testing.T) {
	var (
		mu      sync.Mutex
		queries []string
	)
	c, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		queries = append(queries, r.URL.RawQuery)
		mu.Unlock()
		writeJSON(w, http.StatusOK, `[]`)
	})
	ctx := context.Background()
	filter := ports.ListFilter{CategoryID: "c1", SubCategoryID: "s1"}

	_, err := c.Categories().List(ctx, filter)
	require.NoError(t, err)
	_, err = c.SubCategories().List(ctx, filter)
	require.NoError(t, err)
	_, err = c.Products().List(ctx, filter)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"", "categoryId=c1", "category=c1&subCategory=s1"}, queries)
}

func TestCreate_MultipartConImagen(t *testing.T) {
	c, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Runner", r.FormValue("ProductName"))
		assert.Equal(t, "c1", r.FormValue("category"))
		assert.Equal(t, "s1", r.FormValue("subCategory"))
		assert.Equal(t, "19.99", r.FormValue("price"))
		f, fh, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		assert.Equal(t, "runner.png", fh.Filename)
		assert.Equal(t, "image/png", fh.Header.Get("Content-Type"))

		writeJSON(w, http.StatusCreated, `{"product":{"_id":"p1","ProductName":"Runner","category":"c1","subCategory":"s1","price":"19.99"}}`)
	})
	price := decimal.RequireFromString("19.99")

	p, err := c.Products().Create(context.Background(), entity.ProductInput{
		Name: "Runner", CategoryID: "c1", SubCategoryID: "s1", Price: &price,
		Image: &entity.Image{Filename: "runner.png", ContentType: "image/png", Data: []byte("\x89PNG")},
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.True(t, price.Equal(p.Price))
	assert.Equal(t, "c1", p.Category.ID)
}

func TestUpdate_SinCampoEsperadoEsRespuestaInesperada(t *testing.T) {
	c, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories/c%2F1", r.URL.RawPath)
		writeJSON(w, http.StatusOK, `{"ok":true}`)
	})

	_, err := c.Categories().Update(context.Background(), "c/1", entity.CategoryInput{Name: "X"})
	assert.ErrorIs(t, err, api.ErrUnexpectedResponse)
}

func TestDelete_IgnoraElCuerpo(t *testing.T) {
	c, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	assert.NoError(t, c.Products().Delete(context.Background(), "p1"))
}

func TestErrores_APIErrorConMensaje(t *testing.T) {
	c, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/categories/missing":
			writeJSON(w, http.StatusNotFound, `{"code":"NOT_FOUND","message":"categoría no encontrada"}`)
		default:
			writeJSON(w, http.StatusBadGateway, `<html>bad gateway</html>`)
		}
	})
	ctx := context.Background()

	_, err := c.Categories().Get(ctx, "missing")
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.HTTPStatus())
	assert.Equal(t, "categoría no encontrada", apiErr.UserMessage())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = c.Categories().List(ctx, ports.ListFilter{})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.UserMessage())
}

func TestAuth_LoginYPerfil(t *testing.T) {
	c, _ := newTestClient(t, "tok-9", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			writeJSON(w, http.StatusOK, `{"token":"tok-9","user":{"_id":"u1","email":"ana@example.com","fullName":"Ana"}}`)
		case "/api/auth/profile":
			assert.Equal(t, "Bearer tok-9", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, `{"user":{"_id":"u1","email":"ana@example.com"}}`)
		case "/api/auth/register":
			writeJSON(w, http.StatusOK, `{"user":{"_id":"u2"}}`)
		}
	})
	ctx := context.Background()

	sess, err := c.Auth().Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "tok-9", sess.Token)
	assert.Equal(t, "u1", sess.User.ID)

	u, err := c.Auth().Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)

	_, err = c.Auth().Register(ctx, dto.RegisterRequest{Email: "b@example.com"})
	assert.ErrorIs(t, err, api.ErrUnexpectedResponse, "registro sin token")
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	c, err := api.NewClient(api.Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, nil, nil)
	require.NoError(t, err)

	_, err = c.Categories().List(context.Background(), ports.ListFilter{})
	assert.Error(t, err)
}
