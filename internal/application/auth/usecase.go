package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wattscycling/warehouse-api/internal/application/dto"
	"github.com/wattscycling/warehouse-api/internal/domain"
	"github.com/wattscycling/warehouse-api/internal/domain/entity"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
	"github.com/wattscycling/warehouse-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt, persiste y emite token.
// Devuelve ErrUsernameTaken si el nombre de usuario ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByUsername(in.Username)
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role != entity.RoleAdmin {
		role = entity.RoleOperario
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.issueToken(user)
}

// Login verifica username/password y genera el JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	return uc.issueToken(user)
}

func (uc *AuthUseCase) issueToken(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
