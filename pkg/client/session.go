package client

import (
	"context"
	"sync"
)

// Session estado de autenticación del cliente: combina el Client, el TokenStore y Reduce.
// Las llamadas de red se hacen sin tomar el lock; un resultado de verificación que llega
// después de un login o logout se descarta en Reduce.
type Session struct {
	api   *Client
	store TokenStore

	mu    sync.Mutex
	state State
	subs  []func(State)
}

// NewSession construye la sesión en StatusUnauthenticated; llamar Start al arrancar.
func NewSession(api *Client, store TokenStore) *Session {
	return &Session{api: api, store: store, state: State{Status: StatusUnauthenticated}}
}

// Client cliente subyacente (llamadas de inventario).
func (s *Session) Client() *Client { return s.api }

// State devuelve una copia del estado actual.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registra fn para cada cambio de estado (navegación, redirecciones).
func (s *Session) Subscribe(fn func(State)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Session) dispatch(a Action) State {
	s.mu.Lock()
	prev := s.state
	s.state = Reduce(s.state, a)
	next := s.state
	subs := append([]func(State){}, s.subs...)
	s.mu.Unlock()

	if next != prev {
		for _, fn := range subs {
			fn(next)
		}
	}
	return next
}

// Start carga el token guardado. Sin token pasa directamente a unauthenticated; con token pasa
// por verifying y termina en authenticated o, si la verificación falla por cualquier motivo,
// en unauthenticated con el token borrado.
func (s *Session) Start(ctx context.Context) (State, error) {
	token, err := s.store.Load()
	if err != nil {
		return s.dispatch(VerifyStarted{}), err
	}
	if st := s.dispatch(VerifyStarted{Token: token}); st.Status != StatusVerifying {
		return st, nil
	}

	s.api.SetToken(token)
	user, err := s.api.Verify(ctx)
	if err != nil {
		st := s.dispatch(VerifyFailed{Err: err})
		if st.Status == StatusUnauthenticated {
			s.api.SetToken("")
			return st, s.store.Clear()
		}
		return st, nil
	}
	return s.dispatch(VerifySucceeded{User: *user}), nil
}

// Login autentica, guarda el token y pasa a authenticated.
func (s *Session) Login(ctx context.Context, email, password string) (*User, error) {
	token, user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(token); err != nil {
		return nil, err
	}
	s.api.SetToken(token)
	s.dispatch(LoginSuccess{Token: token, User: *user})
	return user, nil
}

// Register crea la cuenta sin iniciar sesión; devuelve el mensaje del servidor.
func (s *Session) Register(ctx context.Context, in RegisterInput) (string, error) {
	return s.api.Register(ctx, in)
}

// Logout borra el token y pasa a unauthenticated.
func (s *Session) Logout() error {
	s.api.SetToken("")
	s.dispatch(Logout{})
	return s.store.Clear()
}
