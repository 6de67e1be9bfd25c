// Package requestid tags each request with an ID for log correlation.
package requestid

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

const Header = "X-Request-ID"

// maxLength of an ID accepted from a caller.
const maxLength = 128

func New(next http.Handler) *RequestID {
	return &RequestID{
		Next:  next,
		NewID: uuid.NewString,
	}
}

type RequestID struct {
	Next  http.Handler
	NewID func() string
}

type idContextKey int

const idKey idContextKey = 0

func Get(r *http.Request) (id string, ok bool) {
	id, ok = r.Context().Value(idKey).(string)
	return
}

// Logger returns log with the request's ID attached, if it has one.
func Logger(log *slog.Logger, r *http.Request) *slog.Logger {
	if id, ok := Get(r); ok {
		return log.With(slog.String("requestID", id))
	}
	return log
}

func (rid *RequestID) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(Header)
	if id == "" || len(id) > maxLength {
		id = rid.NewID()
	}
	w.Header().Set(Header, id)
	r = r.WithContext(context.WithValue(r.Context(), idKey, id))
	rid.Next.ServeHTTP(w, r)
}
