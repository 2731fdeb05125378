package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jhoicas/catalog-admin/internal/application/state"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// ErrCommandFailed la operación terminó con error y ya se informó al usuario.
var ErrCommandFailed = errors.New("cli: la operación falló")

// ErrUsage argumentos inválidos.
var ErrUsage = errors.New("cli: uso incorrecto")

const usage = `uso: catalog-admin <comando> [flags]

sesión:
  login -email E -password P
  register -name N -email E -password P
  logout
  profile

catálogo (requiere sesión):
  categories    list [-q texto] | get ID | create -name N [...] | update ID [...] | delete ID
  subcategories list [-category ID] [-q texto] | get ID | create -name N -category ID [...] | update ID [...] | delete ID
  products      list [-category ID] [-subcategory ID] [-q texto] | get ID
                create -name N -category ID -subcategory ID [-price P] [...] | update ID [...] | delete ID

flags comunes de create/update: -status active|inactive -description D -image RUTA
`

// App vista de terminal: lee snapshots del store, despacha operaciones e imprime tablas.
type App struct {
	store   *state.Store
	out     io.Writer
	log     *logger.Logger
	timeout time.Duration
}

// New construye la vista. timeout acota la espera de cada operación.
func New(store *state.Store, out io.Writer, log *logger.Logger, timeout time.Duration) *App {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &App{store: store, out: out, log: logger.OrNop(log).Named("cli"), timeout: timeout}
}

// Run ejecuta un comando.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.login(ctx, rest)
	case "register":
		return a.register(ctx, rest)
	case "logout":
		return a.logout()
	case "profile":
		return a.profile(ctx)
	case "categories", "subcategories", "products":
		if !a.store.State().Auth.IsAuthenticated() {
			fmt.Fprintln(a.out, "no hay sesión iniciada: ejecuta login primero")
			return domain.ErrNoSession
		}
		if len(rest) == 0 {
			fmt.Fprint(a.out, usage)
			return ErrUsage
		}
		return a.catalog(ctx, cmd, rest[0], rest[1:])
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprintf(a.out, "comando desconocido %q\n\n%s", cmd, usage)
		return ErrUsage
	}
}

func (a *App) wait(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.timeout)
}

func (a *App) newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// fail informa el error visible del slice, lo reconoce y devuelve ErrCommandFailed.
// Si el slice no tiene error (p.ej. se agotó la espera) se usa el del resultado.
func (a *App) fail(msg string, opErr *state.OpError, clear func()) error {
	if msg == "" && opErr != nil {
		msg = opErr.Message
	}
	if msg == "" {
		msg = "error desconocido"
	}
	fmt.Fprintf(a.out, "error: %s\n", msg)
	clear()
	return ErrCommandFailed
}

// splitID separa el id posicional de los flags que lo siguen.
func splitID(args []string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") || strings.TrimSpace(args[0]) == "" {
		return "", nil, ErrUsage
	}
	return args[0], args[1:], nil
}
