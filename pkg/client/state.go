// Package client es el cliente Go de la API: llamadas HTTP (resty), almacenamiento del
// token y la máquina de estados de autenticación que usa una interfaz de usuario.
package client

// Status estado de autenticación del cliente.
type Status string

const (
	StatusUnauthenticated Status = "unauthenticated"
	StatusVerifying       Status = "verifying" // hay token guardado, esperando /api/auth/verify
	StatusAuthenticated   Status = "authenticated"
)

// State estado completo. User es nil salvo en StatusAuthenticated.
type State struct {
	Status Status
	Token  string
	User   *User
}

// Action evento que provoca una transición. Solo los tipos de este paquete la implementan.
type Action interface{ action() }

// LoginSuccess login explícito correcto.
type LoginSuccess struct {
	Token string
	User  User
}

// Logout cierre de sesión explícito.
type Logout struct{}

// VerifyStarted arranque con el token guardado ("" si no hay).
type VerifyStarted struct{ Token string }

// VerifySucceeded el servidor aceptó el token.
type VerifySucceeded struct{ User User }

// VerifyFailed el servidor rechazó el token o no respondió.
type VerifyFailed struct{ Err error }

func (LoginSuccess) action()    {}
func (Logout) action()          {}
func (VerifyStarted) action()   {}
func (VerifySucceeded) action() {}
func (VerifyFailed) action()    {}

// Reduce calcula el siguiente estado. Es una función pura.
// Los resultados de verificación solo se aplican en StatusVerifying; si entretanto hubo
// login o logout, se descartan.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case LoginSuccess:
		u := a.User
		return State{Status: StatusAuthenticated, Token: a.Token, User: &u}
	case Logout:
		return State{Status: StatusUnauthenticated}
	case VerifyStarted:
		if a.Token == "" {
			return State{Status: StatusUnauthenticated}
		}
		return State{Status: StatusVerifying, Token: a.Token}
	case VerifySucceeded:
		if s.Status != StatusVerifying {
			return s
		}
		u := a.User
		return State{Status: StatusAuthenticated, Token: s.Token, User: &u}
	case VerifyFailed:
		if s.Status != StatusVerifying {
			return s
		}
		return State{Status: StatusUnauthenticated}
	default:
		return s
	}
}
