package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL vigencia de los tokens de sesión (no hay refresh; al expirar se vuelve a iniciar sesión).
const DefaultTTL = 24 * time.Hour

var (
	// ErrEmptySecret se devuelve cuando no hay secreto de firma configurado.
	ErrEmptySecret = errors.New("jwt: secret vacío")
	// ErrInvalidToken cubre firma incorrecta, payload malformado, algoritmo inesperado y expiración.
	ErrInvalidToken = errors.New("jwt: token inválido o expirado")
)

// Identity datos del usuario que viajan dentro del token.
type Identity struct {
	UserID   string
	Email    string
	Username string
}

// Claims claims estándar JWT más la identidad del usuario.
// Los nombres JSON (userId, email, username) son los que espera el frontend.
type Claims struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Identity devuelve la identidad contenida en los claims.
func (c *Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Email: c.Email, Username: c.Username}
}

// Issuer firma y valida tokens HS256 con un secreto compartido.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// Option personaliza un Issuer.
type Option func(*Issuer)

// WithIssuer fija el claim iss y exige que los tokens validados lo tengan.
func WithIssuer(name string) Option {
	return func(i *Issuer) { i.issuer = name }
}

// WithClock inyecta el reloj (útil en tests de expiración).
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		if now != nil {
			i.now = now
		}
	}
}

// NewIssuer construye el emisor. ttl <= 0 usa DefaultTTL.
func NewIssuer(secret string, ttl time.Duration, opts ...Option) (*Issuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	i := &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// TTL vigencia de los tokens emitidos.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue genera un token firmado con la identidad y una expiración absoluta now+TTL.
func (i *Issuer) Issue(id Identity) (string, error) {
	now := i.now()
	claims := Claims{
		UserID:   id.UserID,
		Email:    id.Email,
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: firmar token: %w", err)
	}
	return signed, nil
}

// Verify valida firma y expiración y devuelve los claims.
// Cualquier fallo se reporta como ErrInvalidToken (envolviendo la causa).
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	}
	if i.issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
