package server

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/justinas/alice"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
)

// Handler is the server wrapped in logging, panic recovery and compression
func (server *Server) Handler() http.Handler {
	chain := alice.New(
		hlog.NewHandler(log.Logger),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Stringer("url", r.URL).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("HTTP Request")
		}),
		hlog.RemoteAddrHandler("ip"),
		hlog.RequestIDHandler("req_id", "Request-Id"),
		Recover,
		gzipHandler,
	)
	return chain.Then(server)
}

// gzipHandler adapts gzhttp to an alice.Constructor
func gzipHandler(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

// Recover turns a panic in a handler into a 500 instead of dropping the connection
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				hlog.FromRequest(r).Error().
					Interface("panic", rec).
					Str("path", r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("Recovered from panic")
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
