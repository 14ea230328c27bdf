package shell

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/render"

	"workforce-admin/internal/constants"
	"workforce-admin/internal/screen"
	"workforce-admin/internal/storage"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Pages lists the screen templates; each one is parsed together with the layout.
var Pages = []string{"employees", "coefficients", "shifts", "statistics", "salary"}

// Frame is what the layout template receives.
type Frame struct {
	Title  string
	Active string
	Menu   []MenuItem
	View   any
}

// Renderer writes a screen view as HTML, or as JSON when the client asks for it.
type Renderer struct {
	log   *slog.Logger
	pages map[string]*template.Template
}

func NewRenderer(log *slog.Logger) (*Renderer, error) {
	const op = "shell.NewRenderer"

	pages := make(map[string]*template.Template, len(Pages))
	for _, name := range Pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("%s: parse %s: %w", op, name, err)
		}
		pages[name] = t
	}

	return &Renderer{log: log, pages: pages}, nil
}

func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, page string, status int, view any) {
	const op = "shell.Renderer.Render"

	if render.GetAcceptedContentType(r) == render.ContentTypeJSON {
		render.Status(r, status)
		render.JSON(w, r, view)
		return
	}

	t, ok := rn.pages[page]
	if !ok {
		rn.log.Error("unknown page", slog.String("op", op), slog.String("page", page))
		http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
		return
	}

	frame := Frame{
		Title:  Title(r.URL.Path),
		Active: ActivePath(r.URL.Path),
		Menu:   Menu,
		View:   view,
	}

	// рендерим в буфер, чтобы не отдать половину страницы при ошибке шаблона
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", frame); err != nil {
		rn.log.Error("failed to render page", slog.String("op", op), slog.String("page", page), slog.String("error", err.Error()))
		http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

var funcs = template.FuncMap{
	"positionLabel":        constants.PositionLabel,
	"statusLabel":          constants.StatusLabel,
	"coefficientTypeLabel": constants.CoefficientTypeLabel,
	"shiftLabel":           constants.ShiftLabel,
	"employeeName":         constants.EmployeeName,
	"positions":            func() []storage.Position { return constants.PositionOrder },
	"statuses":             func() []storage.EmployeeStatus { return constants.StatusOrder },
	"coefficientTypes":     func() []storage.CoefficientType { return constants.CoefficientTypeOrder },
	"pageSizes":            func() []int { return screen.PageSizes },
	"num":                  func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	"inc":                  func(i int) int { return i + 1 },
	"link":                 link,
	"dict":                 dict,
}

// link builds path?k=v&... from key/value pairs, skipping empty keys and values.
func link(path string, kv ...any) string {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i] == nil || kv[i+1] == nil {
			continue
		}
		k, v := fmt.Sprint(kv[i]), fmt.Sprint(kv[i+1])
		if k == "" || v == "" {
			continue
		}
		q.Set(k, v)
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}
