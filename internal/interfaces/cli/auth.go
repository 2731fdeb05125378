package cli

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
)

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlags("login")
	email := fs.String("email", "", "email de la cuenta")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil || *email == "" || *password == "" {
		fmt.Fprintln(a.out, "uso: login -email E -password P")
		return ErrUsage
	}
	wctx, cancel := a.wait(ctx)
	defer cancel()
	res := a.store.Auth.Login(ctx, dto.LoginRequest{Email: *email, Password: *password}).Await(wctx)
	if !res.Ok() {
		return a.fail(a.store.Auth.Snapshot().Error, res.Err, a.store.Auth.ClearError)
	}
	fmt.Fprintf(a.out, "sesión iniciada como %s\n", res.Value.User.DisplayName())
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.newFlags("register")
	name := fs.String("name", "", "nombre completo")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password (mínimo 8 caracteres)")
	if err := fs.Parse(args); err != nil || *name == "" || *email == "" || *password == "" {
		fmt.Fprintln(a.out, "uso: register -name N -email E -password P")
		return ErrUsage
	}
	wctx, cancel := a.wait(ctx)
	defer cancel()
	res := a.store.Auth.Register(ctx, dto.RegisterRequest{FullName: *name, Email: *email, Password: *password}).Await(wctx)
	if !res.Ok() {
		return a.fail(a.store.Auth.Snapshot().Error, res.Err, a.store.Auth.ClearError)
	}
	fmt.Fprintf(a.out, "cuenta creada; sesión iniciada como %s\n", res.Value.User.DisplayName())
	return nil
}

func (a *App) logout() error {
	a.store.Auth.Logout()
	fmt.Fprintln(a.out, "sesión cerrada")
	return nil
}

func (a *App) profile(ctx context.Context) error {
	if !a.store.State().Auth.IsAuthenticated() {
		fmt.Fprintln(a.out, "no hay sesión iniciada")
		return nil
	}
	wctx, cancel := a.wait(ctx)
	defer cancel()
	res := a.store.Auth.GetProfile(ctx).Await(wctx)
	if !res.Ok() {
		return a.fail(a.store.Auth.Snapshot().Error, res.Err, a.store.Auth.ClearError)
	}
	u := res.Value
	w := newTable(a.out)
	fmt.Fprintf(w, "ID\t%s\n", u.ID)
	fmt.Fprintf(w, "Nombre\t%s\n", u.DisplayName())
	fmt.Fprintf(w, "Email\t%s\n", u.Email)
	return w.Flush()
}
