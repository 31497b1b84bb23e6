// Package password hashea y verifica contraseñas con bcrypt.
// El texto plano nunca se almacena ni se registra en logs.
package password

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Cost factor de trabajo fijo de bcrypt para la aplicación.
const Cost = 10

// ErrEmptyPassword se devuelve al intentar hashear una contraseña vacía.
var ErrEmptyPassword = errors.New("password: contraseña vacía")

// Hasher genera hashes bcrypt con sal aleatoria y los verifica.
type Hasher struct {
	cost int

	dummyOnce sync.Once
	dummy     string
}

// NewHasher construye un Hasher. Un cost fuera del rango de bcrypt usa Cost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = Cost
	}
	return &Hasher{cost: cost}
}

// Hash devuelve el hash bcrypt de plaintext. Dos llamadas con la misma entrada producen hashes distintos.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify indica si plaintext corresponde a hash.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// VerifyDummy ejecuta una comparación contra un hash fijo para igualar el costo
// de un login con email inexistente al de una contraseña incorrecta. Siempre devuelve false.
func (h *Hasher) VerifyDummy(plaintext string) bool {
	h.dummyOnce.Do(func() {
		out, err := bcrypt.GenerateFromPassword([]byte("inventory-tracker-dummy"), h.cost)
		if err == nil {
			h.dummy = string(out)
		}
	})
	if h.dummy == "" {
		return false
	}
	_ = h.Verify(plaintext, h.dummy)
	return false
}
