package admin_logout

import "net/http"

type AuthService interface {
	Logout(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
}
