package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/channelry/merchant-api/internal/application/dto"
	"github.com/channelry/merchant-api/internal/domain"
	"github.com/channelry/merchant-api/internal/domain/entity"
	"github.com/channelry/merchant-api/internal/domain/repository"
	"github.com/channelry/merchant-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro y login.
type UseCase struct {
	userRepo repository.UserRepository
	txRunner SignupTxRunner
	limiter  LoginLimiter // opcional, nil = sin rate limit
	mailer   Mailer       // opcional, nil = sin correo de bienvenida
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth. limiter y mailer pueden ser nil.
func NewUseCase(userRepo repository.UserRepository, txRunner SignupTxRunner, limiter LoginLimiter, mailer Mailer, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, txRunner: txRunner, limiter: limiter, mailer: mailer, jwtCfg: jwtCfg}
}

// Register crea el merchant y su primer usuario en una transacción,
// hashea el password con bcrypt y devuelve un JWT listo para usar.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.MerchantName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	merchant := &entity.Merchant{
		ID:        uuid.New().String(),
		Name:      in.MerchantName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		MerchantID:   merchant.ID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.txRunner.RunSignup(ctx, func(
		merchantRepo repository.MerchantRepository,
		userRepo repository.UserRepository,
	) error {
		if err := merchantRepo.Create(merchant); err != nil {
			return err
		}
		return userRepo.Create(user)
	})
	if err != nil {
		return nil, err
	}

	if uc.mailer != nil {
		if err := uc.mailer.SendWelcome(ctx, user.Email, user.Name, merchant.Name); err != nil {
			log.Warn().Err(err).Str("email", user.Email).Msg("correo de bienvenida no enviado")
		}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, merchant.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Login verifica email/password con rate limit por email, genera JWT y
// retorna token + usuario. Devuelve ErrTooManyAttempts en cooldown.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.limiter != nil {
		blocked, _, err := uc.limiter.InCooldown(ctx, in.Email)
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter no disponible")
		} else if blocked {
			return nil, domain.ErrTooManyAttempts
		}
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.registerFailure(ctx, in.Email)
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.registerFailure(ctx, in.Email)
		return nil, domain.ErrUnauthorized
	}
	if uc.limiter != nil {
		if err := uc.limiter.Reset(ctx, in.Email); err != nil {
			log.Warn().Err(err).Msg("reset de rate limiter")
		}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.MerchantID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

func (uc *UseCase) registerFailure(ctx context.Context, email string) {
	if uc.limiter == nil {
		return
	}
	if err := uc.limiter.RegisterFailure(ctx, email); err != nil {
		log.Warn().Err(err).Msg("registrar intento fallido")
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		MerchantID: u.MerchantID,
		Email:      u.Email,
		Name:       u.Name,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
