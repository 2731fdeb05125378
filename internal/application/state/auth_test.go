package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/application/state"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/session"
)

func TestAuth_TokenGuardadoSeCargaAlArrancar(t *testing.T) {
	f := newFixture(t, "tok-previo")
	a := f.store.State().Auth
	assert.Equal(t, "tok-previo", a.Token)
	assert.True(t, a.IsAuthenticated())
	assert.Nil(t, a.User, "el usuario se recupera con GetProfile")
}

func TestAuth_LoginPersisteYLogoutLimpiaSinRed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "")

	sess, err := f.store.Auth.Login(ctx, dto.LoginRequest{Email: testUser.Email, Password: "s3cret-pass"}).Unwrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-login", sess.Token)

	saved, err := f.tokens.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-login", saved)

	a := f.store.Auth.Snapshot()
	assert.Equal(t, "tok-login", a.Token)
	require.NotNil(t, a.User)
	assert.Equal(t, testUser.Email, a.User.Email)
	assert.False(t, a.IsLoading)

	calls := f.auth.Calls()
	f.store.Auth.Logout()

	a = f.store.Auth.Snapshot()
	assert.Empty(t, a.Token)
	assert.Nil(t, a.User)
	_, err = f.tokens.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.Equal(t, calls, f.auth.Calls(), "logout no llama al backend")
}

func TestAuth_LoginFallido(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "")

	res := f.store.Auth.Login(ctx, dto.LoginRequest{Email: testUser.Email, Password: "mala"}).Await(ctx)
	require.False(t, res.Ok())
	assert.Equal(t, 401, res.Err.Status)

	a := f.store.Auth.Snapshot()
	assert.Equal(t, "credenciales inválidas", a.Error)
	assert.Empty(t, a.Token)
	_, err := f.tokens.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestAuth_RegisterSinMensajeUsaFallback(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "")

	f.store.Auth.Register(ctx, dto.RegisterRequest{FullName: "Ana", Email: testUser.Email, Password: "x"}).Await(ctx)
	assert.Equal(t, state.MsgRegistrationFailed, f.store.Auth.Snapshot().Error)

	f.store.Auth.ClearError()
	assert.Empty(t, f.store.Auth.Snapshot().Error)

	sess, err := f.store.Auth.Register(ctx, dto.RegisterRequest{FullName: "Beto", Email: "beto@example.com", Password: "x"}).Unwrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-register", sess.Token)
	assert.Equal(t, "Beto", f.store.Auth.Snapshot().User.FullName)
}

func TestAuth_FalloAlGuardarTokenRechazaElLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "")
	f.tokens.FailSave = errors.New("disco lleno")

	res := f.store.Auth.Login(ctx, dto.LoginRequest{Email: testUser.Email, Password: "s3cret-pass"}).Await(ctx)
	require.False(t, res.Ok())

	a := f.store.Auth.Snapshot()
	assert.Equal(t, state.MsgLoginFailed, a.Error)
	assert.Empty(t, a.Token, "sin token durable no hay token en memoria")
}

func TestAuth_GetProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "tok-previo")

	f.store.Auth.GetProfile(ctx).Await(ctx)
	assert.Equal(t, state.MsgProfileFailed, f.store.Auth.Snapshot().Error)

	f.auth.profile = &entity.User{ID: "u1", Email: testUser.Email}
	u, err := f.store.Auth.GetProfile(ctx).Unwrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	a := f.store.Auth.Snapshot()
	assert.Empty(t, a.Error)
	assert.Equal(t, "tok-previo", a.Token)
	require.NotNil(t, a.User)
	assert.Equal(t, testUser.Email, a.User.Email)
}

// hookStore ejecuta afterSave justo después de cada Save exitoso.
type hookStore struct {
	*session.MemoryStore
	afterSave func()
}

func (h *hookStore) Save(ctx context.Context, token string) error {
	if err := h.MemoryStore.Save(ctx, token); err != nil {
		return err
	}
	if h.afterSave != nil {
		h.afterSave()
	}
	return nil
}

func TestAuth_LogoutDuranteLoginNoDejaTokenSoloEnMemoria(t *testing.T) {
	ctx := context.Background()
	tokens := &hookStore{MemoryStore: session.NewMemoryStore("")}
	s, err := state.New(ctx, state.Deps{
		Auth:          &fakeAuth{},
		Categories:    &categoryGW{},
		SubCategories: &subCategoryGW{},
		Products:      &productGW{},
		Tokens:        tokens,
	})
	require.NoError(t, err)

	tokens.afterSave = func() {
		tokens.afterSave = nil
		s.Auth.Logout()
	}
	res := s.Auth.Login(ctx, dto.LoginRequest{Email: testUser.Email, Password: "s3cret-pass"}).Await(ctx)
	require.False(t, res.Ok(), "el logout gana al login en curso")
	assert.ErrorIs(t, res.Err, domain.ErrNoSession)

	a := s.Auth.Snapshot()
	assert.Empty(t, a.Token)
	assert.Nil(t, a.User)
	assert.False(t, a.IsLoading)
	_, err = tokens.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	sess, err := s.Auth.Login(ctx, dto.LoginRequest{Email: testUser.Email, Password: "s3cret-pass"}).Unwrap(ctx)
	require.NoError(t, err, "un login posterior funciona con normalidad")
	saved, err := tokens.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess.Token, saved)
	assert.Equal(t, sess.Token, s.Auth.Snapshot().Token)
}
