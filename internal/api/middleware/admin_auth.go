package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/auth"
)

const msgUnauthorized = "Veuillez vous connecter à l'espace administrateur."

type contextKey string

const adminLoginKey contextKey = "adminLogin"

// Authenticator проверяет сессию администратора
type Authenticator interface {
	Authenticate(r *http.Request) (*auth.Session, error)
}

// AdminAuth пропускает запрос только с валидной cookie-сессией администратора
func AdminAuth(authenticator Authenticator, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := authenticator.Authenticate(r)
			if err != nil {
				log.Warn("%s %s - admin session rejected: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), adminLoginKey, session.Login)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminLogin логин администратора из контекста запроса
func GetAdminLogin(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(adminLoginKey).(string)
	return login, ok
}
