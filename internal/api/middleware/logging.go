package middleware

import (
	"net/http"
	"time"
)

// Logging пишет строку на каждый запрос: метод, путь, код, длительность
func Logging(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			duration := time.Since(start).Milliseconds()
			switch {
			case sw.status >= http.StatusInternalServerError:
				log.Error("%s %s - %d (%d ms)", r.Method, r.URL.Path, sw.status, duration)
			case sw.status >= http.StatusBadRequest:
				log.Warn("%s %s - %d (%d ms)", r.Method, r.URL.Path, sw.status, duration)
			default:
				log.Info("%s %s - %d (%d ms)", r.Method, r.URL.Path, sw.status, duration)
			}
		})
	}
}

// Recover превращает панику обработчика в 500
func Recover(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("%s %s - panic: %v", r.Method, r.URL.Path, rec)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
