package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-admin/internal/application/ports"
	"github.com/jhoicas/catalog-admin/internal/application/state"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
)

// await espera p y, si falló, informa y reconoce el error del slice.
func await[E state.Entity, In ports.FormPayload, T any](a *App, ctx context.Context, s *state.EntitySlice[E, In], p *state.Pending[T]) (T, error) {
	wctx, cancel := a.wait(ctx)
	defer cancel()
	res := p.Await(wctx)
	if !res.Ok() {
		return res.Value, a.fail(s.Snapshot().Error, res.Err, s.ClearError)
	}
	return res.Value, nil
}

// preload carga una colección auxiliar para resolver nombres. Si falla se sigue con
// los nombres que traigan las referencias pobladas.
func preload[E state.Entity, In ports.FormPayload](a *App, ctx context.Context, s *state.EntitySlice[E, In]) {
	wctx, cancel := a.wait(ctx)
	defer cancel()
	if res := s.FetchAll(ctx, ports.ListFilter{}).Await(wctx); !res.Ok() {
		a.log.Warn().Str("slice", s.Name()).Str("error", res.Err.Message).Msg("no se pudo precargar")
		s.ClearError()
	}
}

// commonFlags flags compartidos por create/update.
type commonFlags struct {
	status      *string
	description *string
	image       *string
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		status:      fs.String("status", "", "active | inactive"),
		description: fs.String("description", "", "descripción"),
		image:       fs.String("image", "", "ruta de la imagen a adjuntar"),
	}
}

// visited flags presentes en la línea de comandos.
func visited(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func (a *App) catalog(ctx context.Context, resource, action string, args []string) error {
	switch resource {
	case "categories":
		return a.categories(ctx, action, args)
	case "subcategories":
		return a.subCategories(ctx, action, args)
	default:
		return a.products(ctx, action, args)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func (a *App) categories(ctx context.Context, action string, args []string) error {
	s := a.store.Categories
	switch action {
	case "list":
		fs := a.newFlags("categories list")
		q := fs.String("q", "", "filtrar por nombre")
		if err := fs.Parse(args); err != nil {
			return ErrUsage
		}
		if _, err := await(a, ctx, s, s.FetchAll(ctx, ports.ListFilter{})); err != nil {
			return err
		}
		items := state.FilterByName(state.Select(a.store, state.SelectCategories).Items, *q)
		w := newTable(a.out)
		fmt.Fprintln(w, "ID\tNOMBRE\tESTADO\tIMAGEN")
		for _, c := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, orDash(c.Status), orDash(c.ImageURL))
		}
		return w.Flush()

	case "get":
		id, _, err := splitID(args)
		if err != nil {
			return err
		}
		c, err := await(a, ctx, s, s.FetchOne(ctx, id))
		if err != nil {
			return err
		}
		defer s.ClearCurrent()
		w := newTable(a.out)
		fmt.Fprintf(w, "ID\t%s\nNombre\t%s\nEstado\t%s\nDescripción\t%s\nImagen\t%s\n",
			c.ID, c.Name, orDash(c.Status), orDash(c.Description), orDash(c.ImageURL))
		return w.Flush()

	case "create":
		fs := a.newFlags("categories create")
		name := fs.String("name", "", "nombre")
		cf := addCommonFlags(fs)
		if err := fs.Parse(args); err != nil || *name == "" {
			fmt.Fprintln(a.out, "uso: categories create -name N [-status S] [-description D] [-image RUTA]")
			return ErrUsage
		}
		img, err := loadImage(*cf.image)
		if err != nil {
			return err
		}
		c, err := await(a, ctx, s, s.Create(ctx, entity.CategoryInput{
			Name: *name, Status: *cf.status, Description: *cf.description, Image: img,
		}))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "categoría creada: %s (%s)\n", c.Name, c.ID)
		return nil

	case "update":
		id, rest, err := splitID(args)
		if err != nil {
			return err
		}
		fs := a.newFlags("categories update")
		name := fs.String("name", "", "nombre")
		cf := addCommonFlags(fs)
		if err := fs.Parse(rest); err != nil {
			return ErrUsage
		}
		cur, err := await(a, ctx, s, s.FetchOne(ctx, id))
		if err != nil {
			return err
		}
		defer s.ClearCurrent()
		set := visited(fs)
		in := entity.CategoryInput{Name: cur.Name, Status: cur.Status, Description: cur.Description}
		if set["name"] {
			in.Name = *name
		}
		if set["status"] {
			in.Status = *cf.status
		}
		if set["description"] {
			in.Description = *cf.description
		}
		if in.Image, err = loadImage(*cf.image); err != nil {
			return err
		}
		c, err := await(a, ctx, s, s.Update(ctx, id, in))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "categoría actualizada: %s (%s)\n", c.Name, c.ID)
		return nil

	case "delete":
		id, _, err := splitID(args)
		if err != nil {
			return err
		}
		if _, err := await(a, ctx, s, s.Delete(ctx, id)); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "categoría eliminada: %s\n", id)
		return nil
	}
	fmt.Fprint(a.out, usage)
	return ErrUsage
}

// ──────────────────────────────────────────────────────────────────────────────
// Subcategorías
// ──────────────────────────────────────────────────────────────────────────────

func (a *App) subCategories(ctx context.Context, action string, args []string) error {
	s := a.store.SubCategories
	switch action {
	case "list":
		fs := a.newFlags("subcategories list")
		category := fs.String("category", "", "filtrar por categoría")
		q := fs.String("q", "", "filtrar por nombre")
		if err := fs.Parse(args); err != nil {
			return ErrUsage
		}
		preload(a, ctx, a.store.Categories)
		if _, err := await(a, ctx, s, s.FetchAll(ctx, ports.ListFilter{CategoryID: *category})); err != nil {
			return err
		}
		root := a.store.State()
		items := state.FilterByName(root.SubCategories.Items, *q)
		w := newTable(a.out)
		fmt.Fprintln(w, "ID\tNOMBRE\tCATEGORÍA\tESTADO")
		for _, sc := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sc.ID, sc.Name, state.CategoryName(root, sc.CategoryID), orDash(sc.Status))
		}
		return w.Flush()

	case "get":
		id, _, err := splitID(args)
		if err != nil {
			return err
		}
		sc, err := await(a, ctx, s, s.FetchOne(ctx, id))
		if err != nil {
			return err
		}
		defer s.ClearCurrent()
		w := newTable(a.out)
		fmt.Fprintf(w, "ID\t%s\nNombre\t%s\nCategoría\t%s\nEstado\t%s\nDescripción\t%s\nImagen\t%s\n",
			sc.ID, sc.Name, state.CategoryName(a.store.State(), sc.CategoryID), orDash(sc.Status),
			orDash(sc.Description), orDash(sc.ImageURL))
		return w.Flush()

	case "create":
		fs := a.newFlags("subcategories create")
		name := fs.String("name", "", "nombre")
		category := fs.String("category", "", "id de la categoría")
		cf := addCommonFlags(fs)
		if err := fs.Parse(args); err != nil || *name == "" || *category == "" {
			fmt.Fprintln(a.out, "uso: subcategories create -name N -category ID [-status S] [-description D] [-image RUTA]")
			return ErrUsage
		}
		img, err := loadImage(*cf.image)
		if err != nil {
			return err
		}
		sc, err := await(a, ctx, s, s.Create(ctx, entity.SubCategoryInput{
			Name: *name, CategoryID: *category, Status: *cf.status, Description: *cf.description, Image: img,
		}))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "subcategoría creada: %s (%s)\n", sc.Name, sc.ID)
		return nil

	case "update":
		id, rest, err := splitID(args)
		if err != nil {
			return err
		}
		fs := a.newFlags("subcategories update")
		name := fs.String("name", "", "nombre")
		category := fs.String("category", "", "id de la categoría")
		cf := addCommonFlags(fs)
		if err := fs.Parse(rest); err != nil {
			return ErrUsage
		}
		cur, err := await(a, ctx, s, s.FetchOne(ctx, id))
		if err != nil {
			return err
		}
		defer s.ClearCurrent()
		set := visited(fs)
		in := entity.SubCategoryInput{
			Name: cur.Name, CategoryID: cur.CategoryID.ID, Status: cur.Status, Description: cur.Description,
		}
		if set["name"] {
			in.Name = *name
		}
		if set["category"] {
			in.CategoryID = *category
		}
		if set["status"] {
			in.Status = *cf.status
		}
		if set["description"] {
			in.Description = *cf.description
		}
		if in.Image, err = loadImage(*cf.image); err != nil {
			return err
		}
		sc, err := await(a, ctx, s, s.Update(ctx, id, in))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "subcategoría actualizada: %s (%s)\n", sc.Name, sc.ID)
		return nil

	case "delete":
		id, _, err := splitID(args)
		if err != nil {
			return err
		}
		if _, err := await(a, ctx, s, s.Delete(ctx, id)); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "subcategoría eliminada: %s\n", id)
		return nil
	}
	fmt.Fprint(a.out, usage)
	return ErrUsage
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func parsePrice(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("price inválido %q: %w", raw, ErrUsage)
	}
	return &d, nil
}

func (a *App) products(ctx context.Context, action string, args []string) error {
	s := a.store.Products
	switch action {
	case "list":
		fs := a.newFlags("products list")
		category := fs.String("category", "", "filtrar por categoría")
		subCategory := fs.String("subcategory", "", "filtrar por subcategoría")
		q := fs.String("q", "", "filtrar por nombre")
		if err := fs.Parse(args); err != nil {
			return ErrUsage
		}
		preload(a, ctx, a.store.Categories)
		preload(a, ctx, a.store.SubCategories)
		filter := ports.ListFilter{CategoryID: *category, SubCategoryID: *subCategory}
		if _, err := await(a, ctx, s, s.FetchAll(ctx, filter)); err != nil {
			return err
		}
		root := a.store.State()
		items := state.FilterByName(root.Products.Items, *q)
		w := newTable(a.out)
		fmt.Fprintln(w, "ID\tNOMBRE\tCATEGORÍA\tSUBCATEGORÍA\tPRECIO\tESTADO")
		for _, p := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name,
				state.CategoryName(root, p.Category), state.SubCategoryName(root, p.SubCategory),
				p.Price.StringFixed(2), orDash(p.Status))
		}
		return w.Flush()

	case "get":
		id, _, err := splitID(args)
		if err != nil {
			return err
		}
		p, err := await(a, ctx, s, s.FetchOne(ctx, id))
		if err != nil {
			return err
		}
		defer s.ClearCurrent()
		root := a.store.State()
		w := newTable(a.out)
		fmt.Fprintf(w, "ID\t%s\nNombre\t%s\nCategoría\t%s\nSubcategoría\t%s\nPrecio\t%s\nEstado\t%s\nDescripción\t%s\nImagen\t%s\n",
			p.ID, p.Name, state.CategoryName(root, p.Category), state.SubCategoryName(root, p.SubCategory),
			p.Price.StringFixed(2), orDash(p.Status), orDash(p.Description), orDash(p.Image))
		return w.Flush()

	case "create":
		fs := a.newFlags("products create")
		name := fs.String("name", "", "nombre")
		category := fs.String("category", "", "id de la categoría")
		subCategory := fs.String("subcategory", "", "id de la subcategoría")
		price := fs.String("price", "", "precio")
		cf := addCommonFlags(fs)
		if err := fs.Parse(args); err != nil || *name == "" || *category == "" || *subCategory == "" {
			fmt.Fprintln(a.out, "uso: products create -name N -category ID -subcategory ID [-price P] [-status S] [-description D] [-image RUTA]")
			return ErrUsage
		}
		pr, err := parsePrice(*price)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return ErrUsage
		}
		img, err := loadImage(*cf.image)
		if err != nil {
			return err
		}
		p, err := await(a, ctx, s, s.Create(ctx, entity.ProductInput{
			Name: *name, CategoryID: *category, SubCategoryID: *subCategory,
			Status: *cf.status, Description: *cf.description, Price: pr, Image: img,
		}))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "producto creado: %s (%s)\n", p.Name, p.ID)
		return nil

	case "update":
		id, rest, err := splitID(args)
		if err != nil {
			return err
		}
		fs := a.newFlags("products update")
		name := fs.String("name", "", "nombre")
		category := fs.String("category", "", "id de la categoría")
		subCategory := fs.String("subcategory", "", "id de la subcategoría")
		price := fs.String("price", "", "precio")
		cf := addCommonFlags(fs)
		if err := fs.Parse(rest); err != nil {
			return ErrUsage
		}
		pr, err := parsePrice(*price)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return ErrUsage
		}
		cur, err := await(a, ctx, s, s.FetchOne(ctx, id))
		if err != nil {
			return err
		}
		defer s.ClearCurrent()
		set := visited(fs)
		curPrice := cur.Price
		in := entity.ProductInput{
			Name: cur.Name, CategoryID: cur.Category.ID, SubCategoryID: cur.SubCategory.ID,
			Status: cur.Status, Description: cur.Description, Price: &curPrice,
		}
		if set["name"] {
			in.Name = *name
		}
		if set["category"] {
			in.CategoryID = *category
		}
		if set["subcategory"] {
			in.SubCategoryID = *subCategory
		}
		if set["status"] {
			in.Status = *cf.status
		}
		if set["description"] {
			in.Description = *cf.description
		}
		if pr != nil {
			in.Price = pr
		}
		if in.Image, err = loadImage(*cf.image); err != nil {
			return err
		}
		p, err := await(a, ctx, s, s.Update(ctx, id, in))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "producto actualizado: %s (%s)\n", p.Name, p.ID)
		return nil

	case "delete":
		id, _, err := splitID(args)
		if err != nil {
			return err
		}
		if _, err := await(a, ctx, s, s.Delete(ctx, id)); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "producto eliminado: %s\n", id)
		return nil
	}
	fmt.Fprint(a.out, usage)
	return ErrUsage
}
