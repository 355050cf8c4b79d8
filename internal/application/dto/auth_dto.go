package dto

// LoginRequest entrada para login: solo la contraseña compartida.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse token de sesión y rol concedido.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// InitDefaultsResponse resultado de inicializar las contraseñas de demostración.
type InitDefaultsResponse struct {
	Seeded  bool   `json:"seeded"`
	Message string `json:"message"`
}

// SessionResponse sesión activa (sin la contraseña).
type SessionResponse struct {
	Role string `json:"role"`
}

// CreateCredentialRequest alta de una contraseña con su nivel de acceso.
type CreateCredentialRequest struct {
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ChangeRoleRequest cambio de nivel de acceso de una contraseña existente.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// CredentialResponse entrada del listado de contraseñas (texto plano, solo para admin).
type CredentialResponse struct {
	Password string `json:"password"`
	Role     string `json:"role"`
}
