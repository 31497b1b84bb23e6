package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/validation"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/pkg/jwt"
	"github.com/jhoicas/inventory-tracker/pkg/password"
)

// Mensajes expuestos al cliente.
const (
	MsgRegistered = "Usuario creado exitosamente"
	MsgLoggedIn   = "Login exitoso"
)

// TokenService emite y valida tokens de sesión. Lo implementa *jwt.Issuer.
type TokenService interface {
	Issue(id jwt.Identity) (string, error)
	Verify(token string) (*jwt.Claims, error)
}

// AuthUseCase casos de uso de autenticación: registro, login y verificación de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   *password.Hasher
	tokens   TokenService
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, hasher *password.Hasher, tokens TokenService) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, now: time.Now}
}

// Register valida la entrada, rechaza email o username repetidos (ErrConflict),
// hashea la contraseña y persiste el usuario. Nunca devuelve el hash.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrConflict
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    uc.now(),
	}
	// Create también devuelve ErrConflict si otra petición ganó la carrera por el mismo email/username.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y emite el token.
// Email inexistente y contraseña incorrecta producen el mismo error y el mismo costo (una comparación bcrypt).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.hasher.VerifyDummy(in.Password)
		return nil, domain.ErrInvalidCredentials
	}
	if !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(jwt.Identity{UserID: user.ID, Email: user.Email, Username: user.Username})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: MsgLoggedIn,
		Token:   token,
		User:    *toUserResponse(user),
	}, nil
}

// Verify valida el token presentado y devuelve los datos actuales del usuario (releídos de la DB).
// Errores: ErrUnauthenticated (sin token), ErrForbidden (inválido o expirado), ErrUserNotFound.
func (uc *AuthUseCase) Verify(ctx context.Context, token string) (*dto.UserResponse, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	claims, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
