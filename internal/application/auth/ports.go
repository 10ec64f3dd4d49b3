package auth

import (
	"context"
	"time"

	"github.com/channelry/merchant-api/internal/domain/repository"
)

// SignupTxRunner ejecuta el alta merchant+usuario en una sola transacción.
type SignupTxRunner interface {
	RunSignup(ctx context.Context, fn func(
		merchantRepo repository.MerchantRepository,
		userRepo repository.UserRepository,
	) error) error
}

// LoginLimiter limita intentos de login por email. 5 fallos seguidos
// activan un cooldown de 15 minutos; un login exitoso resetea el contador.
type LoginLimiter interface {
	InCooldown(ctx context.Context, email string) (bool, time.Duration, error)
	RegisterFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// Mailer puerto hacia la pasarela de correo. El envío es best-effort:
// un fallo se loguea y no afecta la operación que lo disparó.
type Mailer interface {
	SendWelcome(ctx context.Context, to, name, merchantName string) error
}
