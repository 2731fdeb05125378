package state

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/application/ports"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// Mensajes por defecto del slice de autenticación.
const (
	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
	MsgProfileFailed      = "Failed to get profile"
)

// AuthState sesión en memoria. Token vacío equivale a sin sesión.
type AuthState struct {
	User      *entity.User
	Token     string
	IsLoading bool
	Error     string
}

// IsAuthenticated indica si hay token en memoria.
func (a AuthState) IsAuthenticated() bool { return a.Token != "" }

// AuthSlice login, registro, perfil y logout. Token en memoria implica token en el TokenStore.
type AuthSlice struct {
	cell   *cell[AuthState]
	gw     ports.AuthGateway
	tokens ports.TokenStore
	// logouts cuenta los Logout; una sesión guardada antes de un Logout posterior no se publica.
	logouts atomic.Uint64
}

func newAuthSlice(ctx context.Context, gw ports.AuthGateway, tokens ports.TokenStore, n *notifier, log *logger.Logger) *AuthSlice {
	l := log.Named("auth")
	initial := AuthState{}
	tok, err := tokens.Load(ctx)
	switch {
	case err == nil:
		initial.Token = tok
	case errors.Is(err, domain.ErrNoSession):
	default:
		l.Warn().Err(err).Msg("no se pudo leer el token guardado")
	}
	return &AuthSlice{
		cell: &cell[AuthState]{
			name: "auth",
			log:  l,
			n:    n,
			hooks: hooks[AuthState]{
				pending: func(a *AuthState) {
					a.IsLoading = true
					a.Error = ""
				},
				rejected: func(a *AuthState, msg string) {
					a.IsLoading = false
					a.Error = msg
				},
			},
			cur: initial,
		},
		gw:     gw,
		tokens: tokens,
	}
}

// Snapshot devuelve el estado actual.
func (s *AuthSlice) Snapshot() AuthState { return s.cell.snapshot() }

// Subscribe registra fn para cada nuevo snapshot.
func (s *AuthSlice) Subscribe(fn func(AuthState)) func() { return s.cell.subs.add(fn) }

// Login autentica y guarda el token en el TokenStore antes de actualizar la memoria.
func (s *AuthSlice) Login(ctx context.Context, in dto.LoginRequest) *Pending[entity.Session] {
	return s.startSession(ctx, "login", MsgLoginFailed,
		func(ctx context.Context) (*entity.Session, error) { return s.gw.Login(ctx, in) })
}

// Register crea la cuenta y deja la sesión iniciada, igual que Login.
func (s *AuthSlice) Register(ctx context.Context, in dto.RegisterRequest) *Pending[entity.Session] {
	return s.startSession(ctx, "register", MsgRegistrationFailed,
		func(ctx context.Context) (*entity.Session, error) { return s.gw.Register(ctx, in) })
}

// startSession ejecuta call, guarda el token y publica la sesión. Si un Logout ocurre después
// de guardar, la sesión se descarta: el token solo queda en memoria si sigue en el TokenStore.
func (s *AuthSlice) startSession(ctx context.Context, op, fallback string, call func(context.Context) (*entity.Session, error)) *Pending[entity.Session] {
	var seen uint64
	return launch(s.cell, ctx, op, fallback,
		func(ctx context.Context) (entity.Session, error) {
			sess, err := call(ctx)
			if err != nil {
				return entity.Session{}, err
			}
			if sess == nil || sess.Token == "" {
				return entity.Session{}, fmt.Errorf("auth: respuesta sin token")
			}
			seen = s.logouts.Load()
			if err := s.tokens.Save(ctx, sess.Token); err != nil {
				return entity.Session{}, fmt.Errorf("auth: guardar token: %w", err)
			}
			if s.logouts.Load() != seen {
				s.discard(ctx, sess.Token)
				return entity.Session{}, fmt.Errorf("auth: %s cancelado por logout: %w", op, domain.ErrNoSession)
			}
			return *sess, nil
		},
		func(a *AuthState, sess entity.Session) {
			if s.logouts.Load() != seen {
				// Logout entre el guardado y esta transición: ya borró el TokenStore.
				a.IsLoading = false
				return
			}
			fulfillSession(a, sess)
		})
}

// GetProfile recarga el usuario de la sesión actual.
func (s *AuthSlice) GetProfile(ctx context.Context) *Pending[entity.User] {
	return launch(s.cell, ctx, "getProfile", MsgProfileFailed,
		func(ctx context.Context) (entity.User, error) {
			u, err := s.gw.Profile(ctx)
			if err != nil {
				return entity.User{}, err
			}
			if u == nil {
				return entity.User{}, fmt.Errorf("auth: respuesta de perfil sin usuario")
			}
			return *u, nil
		},
		func(a *AuthState, u entity.User) {
			a.IsLoading = false
			a.Error = ""
			a.User = &u
		})
}

// Logout es síncrono y no toca la red: borra el token durable y la sesión en memoria.
// Un Login o Register que aún no publicó su sesión la descarta.
func (s *AuthSlice) Logout() {
	s.logouts.Add(1)
	if err := s.tokens.Clear(context.Background()); err != nil {
		s.cell.log.Warn().Err(err).Msg("no se pudo borrar el token guardado")
	}
	s.cell.apply(func(a *AuthState) {
		a.User = nil
		a.Token = ""
	})
}

// ClearError reconoce el error actual. Idempotente.
func (s *AuthSlice) ClearError() {
	if s.cell.snapshot().Error == "" {
		return
	}
	s.cell.apply(func(a *AuthState) { a.Error = "" })
}

// discard borra el token recién guardado salvo que otra sesión ya lo haya reemplazado.
func (s *AuthSlice) discard(ctx context.Context, token string) {
	cur, err := s.tokens.Load(ctx)
	if err != nil || cur != token {
		return
	}
	if err := s.tokens.Clear(ctx); err != nil {
		s.cell.log.Warn().Err(err).Msg("no se pudo borrar el token descartado")
	}
}

func fulfillSession(a *AuthState, sess entity.Session) {
	a.IsLoading = false
	a.Error = ""
	a.Token = sess.Token
	a.User = sess.User
}
