package httptransport

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenData struct {
	Token string `json:"token"`
}

type AuthResponse struct {
	Status  bool       `json:"status"`
	Data    *TokenData `json:"data"`
	Message string     `json:"message"`
}

type ErrorResponse struct {
	Status  bool   `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}
