package entity

// Roles válidos para una credencial.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Role nivel de acceso asociado a una contraseña.
type Role string

// Valid informa si el rol es uno de los dos conocidos.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Credential entrada del listado de contraseñas compartidas. La contraseña se guarda en texto plano.
type Credential struct {
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Session sesión activa; sobrevive a reinicios mientras el almacenamiento la conserve.
type Session struct {
	Role     Role   `json:"role"`
	Password string `json:"password"`
}
