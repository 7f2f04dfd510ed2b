package middleware

import (
	"context"
	"sync"

	"github.com/vfg2006/booker-targets-api/pkg/log"
)

type requestFieldsKey struct{}

// requestFields acumula os campos de domínio de uma requisição (meta, order booker, período)
// para o log de conclusão
type requestFields struct {
	mu     sync.Mutex
	fields log.Fields
}

func withRequestFields(ctx context.Context) (context.Context, *requestFields) {
	holder := &requestFields{fields: log.Fields{}}
	return context.WithValue(ctx, requestFieldsKey{}, holder), holder
}

// AnnotateRequest adiciona campos ao log da requisição em andamento.
// Fora do LoggingMiddleware não faz nada.
func AnnotateRequest(ctx context.Context, fields log.Fields) {
	holder, ok := ctx.Value(requestFieldsKey{}).(*requestFields)
	if !ok {
		return
	}

	holder.mu.Lock()
	defer holder.mu.Unlock()
	for k, v := range fields {
		holder.fields[k] = v
	}
}

// merge copia os campos anotados para dst
func (h *requestFields) merge(dst log.Fields) log.Fields {
	h.mu.Lock()
	defer h.mu.Unlock()
	for k, v := range h.fields {
		dst[k] = v
	}
	return dst
}
