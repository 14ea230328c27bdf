// Package logger builds the process logger: stdout for everything plus a file
// that collects only errors.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/go-chi/httplog/v3"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// errorTee passes every record to out and copies Error and above to errs.
type errorTee struct {
	out  slog.Handler
	errs slog.Handler
}

func (t *errorTee) Enabled(ctx context.Context, lvl slog.Level) bool {
	return t.out.Enabled(ctx, lvl) || (lvl >= slog.LevelError && t.errs.Enabled(ctx, lvl))
}

func (t *errorTee) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError && t.errs.Enabled(ctx, r.Level) {
		// файл вторичен: его сбой не мешает основному логу
		_ = t.errs.Handle(ctx, r.Clone())
	}

	if !t.out.Enabled(ctx, r.Level) {
		return nil
	}
	return t.out.Handle(ctx, r)
}

func (t *errorTee) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errorTee{out: t.out.WithAttrs(attrs), errs: t.errs.WithAttrs(attrs)}
}

func (t *errorTee) WithGroup(name string) slog.Handler {
	return &errorTee{out: t.out.WithGroup(name), errs: t.errs.WithGroup(name)}
}

// New writes to stdout in the format of env and tees errors into errorLog.
// The returned close func releases the error file.
func New(env, errorLog string) (*slog.Logger, func() error) {
	out := handlerFor(env, os.Stdout)

	f, err := os.OpenFile(errorLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log := slog.New(out)
		log.Warn("cannot open error log", slog.String("path", errorLog), slog.String("error", err.Error()))
		return log, func() error { return nil }
	}

	return slog.New(Tee(out, f)), f.Close
}

// Tee wraps out so that errors are also written as text to w.
func Tee(out slog.Handler, w io.Writer) slog.Handler {
	return &errorTee{
		out:  out,
		errs: slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelError}),
	}
}

func handlerFor(env string, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if env == EnvProd {
		opts.Level = slog.LevelInfo
	}

	if env == EnvDev {
		// JSON в схеме ECS, как и access-лог
		opts.ReplaceAttr = httplog.SchemaECS.Concise(false).ReplaceAttr
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
