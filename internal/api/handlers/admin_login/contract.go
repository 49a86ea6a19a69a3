package admin_login

import "net/http"

type AuthService interface {
	Login(w http.ResponseWriter, login, password string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
