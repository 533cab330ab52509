package responses

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Message string                 `json:"message"`
	Token   string                 `json:"token"`
	User    map[string]interface{} `json:"user,omitempty"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Message string                 `json:"message"`
	User    map[string]interface{} `json:"user,omitempty"`
}
