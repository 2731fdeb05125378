package state_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/application/ports"
	"github.com/jhoicas/catalog-admin/internal/application/state"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/session"
)

// backendErr imita un error HTTP con message legible.
type backendErr struct {
	status int
	msg    string
}

func (e backendErr) Error() string       { return fmt.Sprintf("HTTP %d: %s", e.status, e.msg) }
func (e backendErr) UserMessage() string { return e.msg }
func (e backendErr) HTTPStatus() int     { return e.status }

// fakeGateway gateway en memoria con respuestas programables por operación.
type fakeGateway[E any, In ports.FormPayload] struct {
	mu     sync.Mutex
	calls  []string
	list   func(ports.ListFilter) ([]E, error)
	get    func(string) (E, error)
	create func(In) (E, error)
	update func(string, In) (E, error)
	del    func(string) error
}

func (g *fakeGateway[E, In]) record(op string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, op)
}

func (g *fakeGateway[E, In]) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

func (g *fakeGateway[E, In]) List(_ context.Context, f ports.ListFilter) ([]E, error) {
	g.record("list")
	if g.list == nil {
		return []E{}, nil
	}
	return g.list(f)
}

func (g *fakeGateway[E, In]) Get(_ context.Context, id string) (E, error) {
	g.record("get")
	if g.get == nil {
		var zero E
		return zero, backendErr{404, "not found"}
	}
	return g.get(id)
}

func (g *fakeGateway[E, In]) Create(_ context.Context, in In) (E, error) {
	g.record("create")
	if g.create == nil {
		var zero E
		return zero, fmt.Errorf("create no programado")
	}
	return g.create(in)
}

func (g *fakeGateway[E, In]) Update(_ context.Context, id string, in In) (E, error) {
	g.record("update")
	if g.update == nil {
		var zero E
		return zero, fmt.Errorf("update no programado")
	}
	return g.update(id, in)
}

func (g *fakeGateway[E, In]) Delete(_ context.Context, id string) error {
	g.record("delete")
	if g.del == nil {
		return nil
	}
	return g.del(id)
}

// fakeAuth gateway de auth: acepta una sola cuenta.
type fakeAuth struct {
	mu      sync.Mutex
	calls   int
	profile *entity.User
}

var testUser = entity.User{ID: "u1", Email: "ana@example.com", FullName: "Ana Admin"}

func (a *fakeAuth) hit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
}

func (a *fakeAuth) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

func (a *fakeAuth) Login(_ context.Context, in dto.LoginRequest) (*entity.Session, error) {
	a.hit()
	if in.Email != testUser.Email || in.Password != "s3cret-pass" {
		return nil, backendErr{401, "credenciales inválidas"}
	}
	u := testUser
	return &entity.Session{Token: "tok-login", User: &u}, nil
}

func (a *fakeAuth) Register(_ context.Context, in dto.RegisterRequest) (*entity.Session, error) {
	a.hit()
	if in.Email == testUser.Email {
		return nil, fmt.Errorf("sin message del backend")
	}
	u := entity.User{ID: "u2", Email: in.Email, FullName: in.FullName}
	return &entity.Session{Token: "tok-register", User: &u}, nil
}

func (a *fakeAuth) Profile(context.Context) (*entity.User, error) {
	a.hit()
	if a.profile == nil {
		return nil, backendErr{401, ""}
	}
	u := *a.profile
	return &u, nil
}

type (
	categoryGW    = fakeGateway[entity.Category, entity.CategoryInput]
	subCategoryGW = fakeGateway[entity.SubCategory, entity.SubCategoryInput]
	productGW     = fakeGateway[entity.Product, entity.ProductInput]
)

type fixture struct {
	store  *state.Store
	auth   *fakeAuth
	cats   *categoryGW
	subs   *subCategoryGW
	prods  *productGW
	tokens *session.MemoryStore
}

func newFixture(t *testing.T, token string) *fixture {
	t.Helper()
	f := &fixture{
		auth:   &fakeAuth{},
		cats:   &categoryGW{},
		subs:   &subCategoryGW{},
		prods:  &productGW{},
		tokens: session.NewMemoryStore(token),
	}
	s, err := state.New(context.Background(), state.Deps{
		Auth:          f.auth,
		Categories:    f.cats,
		SubCategories: f.subs,
		Products:      f.prods,
		Tokens:        f.tokens,
	})
	require.NoError(t, err)
	f.store = s
	return f
}
