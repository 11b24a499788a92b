package httpserver

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/oliveiraclick/criadorLP/internal/editor"
	"github.com/oliveiraclick/criadorLP/internal/export"
	mw "github.com/oliveiraclick/criadorLP/internal/middleware"
	"github.com/oliveiraclick/criadorLP/internal/platform/observability"
	"github.com/oliveiraclick/criadorLP/internal/projects"
)

var errBadInput = errors.New("invalid input")

// fail maps err to a status and writes it. Unexpected errors are logged and hidden.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := http.StatusInternalServerError, "erro interno"
	switch {
	case errors.Is(err, projects.ErrNotFound):
		code, msg = http.StatusNotFound, "projeto não encontrado"
	case errors.Is(err, editor.ErrNoSession):
		code, msg = http.StatusNotFound, "sessão do editor expirou"
		if mw.IsHTMX(r.Context()) {
			w.Header().Set("HX-Redirect", "/dashboard")
		}
	case errors.Is(err, editor.ErrUnknownSection):
		code, msg = http.StatusNotFound, "seção desconhecida"
	case errors.Is(err, editor.ErrUnknownField),
		errors.Is(err, editor.ErrItemNotFound),
		errors.Is(err, editor.ErrIndexOutOfRange),
		errors.Is(err, errBadInput):
		code, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, export.ErrNoContent):
		code, msg = http.StatusUnprocessableEntity, "nada para exportar"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		code, msg = http.StatusServiceUnavailable, "tempo esgotado"
	}

	logger := observability.FromContext(r.Context())
	if code >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.Int("status", code), zap.Error(err))
	}
	mw.WriteError(w, r, code, msg)
}
