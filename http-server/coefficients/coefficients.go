package coefficients

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"workforce-admin/internal/screen"
	"workforce-admin/internal/shell"
	"workforce-admin/internal/storage"
)

const page = "coefficients"

type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, page string, status int, view any)
}

func mount(ctx context.Context, log *slog.Logger, store screen.CoefficientStore) *screen.Coefficients {
	c := screen.NewCoefficients(log, store)
	c.Load(ctx)
	return c
}

func respond(w http.ResponseWriter, r *http.Request, rnd Renderer, c *screen.Coefficients, status int) {
	rnd.Render(w, r, page, status, c)
}

func statusOf(ok bool) int {
	if ok {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}

// Show renders the table; ?edit={id} opens that row for inline editing.
func Show(log *slog.Logger, store screen.CoefficientStore, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mount(context.WithoutCancel(r.Context()), log, store)

		if edit := r.URL.Query().Get("edit"); edit != "" {
			id, _ := strconv.ParseInt(edit, 10, 64)
			if !c.StartEdit(id) {
				c.Error = "Коэффициент не найден"
			}
		}

		respond(w, r, rnd, c, http.StatusOK)
	}
}

func Create(log *slog.Logger, store screen.CoefficientStore, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.coefficients.Create"

		in, err := decodeInput(r)
		if err != nil {
			log.Error("failed to decode request", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Неверный запрос", http.StatusBadRequest)
			return
		}

		ctx := context.WithoutCancel(r.Context())
		c := mount(ctx, log, store)
		ok := c.Create(ctx, in)

		respond(w, r, rnd, c, statusOf(ok))
	}
}

// Save puts the row into edit mode, applies the submitted draft and saves it.
func Save(log *slog.Logger, store screen.CoefficientStore, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.coefficients.Save"

		id, err := shell.URLID(r, "id")
		if err != nil {
			http.Error(w, "Неверный идентификатор", http.StatusBadRequest)
			return
		}

		in, err := decodeInput(r)
		if err != nil {
			log.Error("failed to decode request", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Неверный запрос", http.StatusBadRequest)
			return
		}

		ctx := context.WithoutCancel(r.Context())
		c := mount(ctx, log, store)

		if !c.StartEdit(id) {
			c.Error = "Коэффициент не найден"
			respond(w, r, rnd, c, http.StatusNotFound)
			return
		}

		c.ChangeDraft(storage.CoefficientSetting{
			ParameterName:   in.ParameterName,
			Norm:            in.Norm,
			Base:            in.Base,
			Weight:          in.Weight,
			CoefficientType: in.CoefficientType,
		})
		ok := c.Save(ctx)

		respond(w, r, rnd, c, statusOf(ok))
	}
}

func RequestDelete(log *slog.Logger, store screen.CoefficientStore, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := shell.URLID(r, "id")
		if err != nil {
			http.Error(w, "Неверный идентификатор", http.StatusBadRequest)
			return
		}

		c := mount(context.WithoutCancel(r.Context()), log, store)
		c.RequestDelete(id)

		respond(w, r, rnd, c, http.StatusOK)
	}
}

func ConfirmDelete(log *slog.Logger, store screen.CoefficientStore, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := shell.URLID(r, "id")
		if err != nil {
			http.Error(w, "Неверный идентификатор", http.StatusBadRequest)
			return
		}

		ctx := context.WithoutCancel(r.Context())
		c := mount(ctx, log, store)
		c.RequestDelete(id)
		ok := c.ConfirmDelete(ctx)

		respond(w, r, rnd, c, statusOf(ok))
	}
}

func decodeInput(r *http.Request) (storage.CoefficientInput, error) {
	var in storage.CoefficientInput

	if shell.IsJSON(r) {
		if err := render.DecodeJSON(r.Body, &in); err != nil {
			return in, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return in, err
		}

		var err error
		in.ParameterName = shell.FormString(r, "parameterName")
		if in.Norm, err = shell.FormFloat(r, "norm"); err != nil {
			return in, err
		}
		if in.Base, err = shell.FormFloat(r, "base"); err != nil {
			return in, err
		}
		if in.Weight, err = shell.FormFloat(r, "weight"); err != nil {
			return in, err
		}
		in.CoefficientType = storage.CoefficientType(shell.FormString(r, "coefficientType"))
	}

	if in.CoefficientType == "" {
		in.CoefficientType = storage.CoefficientPositive
	}

	return in, nil
}
