package shell

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// IsJSON reports whether the request body is JSON rather than a form.
func IsJSON(r *http.Request) bool {
	return render.GetRequestContentType(r) == render.ContentTypeJSON
}

// Paging reads ?page= and ?size=. Invalid values are clamped by the grid.
func Paging(r *http.Request) (number, size int) {
	number, _ = strconv.Atoi(r.URL.Query().Get("page"))
	size, _ = strconv.Atoi(r.URL.Query().Get("size"))
	return number, size
}

func FormString(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// FormOptional is nil for an empty field.
func FormOptional(r *http.Request, key string) *string {
	v := FormString(r, key)
	if v == "" {
		return nil
	}
	return &v
}

func FormInt64(r *http.Request, key string) int64 {
	v, _ := strconv.ParseInt(FormString(r, key), 10, 64)
	return v
}

// FormFloat accepts both decimal separators. An empty field is zero; anything
// else that is not a number is an error.
func FormFloat(r *http.Request, key string) (float64, error) {
	raw := FormString(r, key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return v, nil
}

// URLID parses a positive numeric route parameter.
func URLID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, chi.URLParam(r, key))
	}
	return id, nil
}
