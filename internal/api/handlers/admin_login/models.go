package admin_login

// LoginRequest HTTP request model
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
