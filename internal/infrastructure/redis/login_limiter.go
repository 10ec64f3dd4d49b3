package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/channelry/merchant-api/internal/application/auth"
)

// Límites de intentos de login por email.
const (
	LoginMaxAttempts = 5
	LoginCooldown    = 15 * time.Minute
	attemptWindow    = 15 * time.Minute
)

var _ auth.LoginLimiter = (*LoginLimiter)(nil)

// LoginLimiter limita intentos de login por email sobre Redis: un contador
// con ventana y una clave de cooldown una vez superado el máximo.
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter construye el limitador con un cliente Redis ya conectado.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

func attemptsKey(email string) string { return "login_attempts:" + email }
func cooldownKey(email string) string { return "login_cooldown:" + email }

// InCooldown indica si el email está bloqueado y cuánto falta para el desbloqueo.
func (l *LoginLimiter) InCooldown(ctx context.Context, email string) (bool, time.Duration, error) {
	ttl, err := l.client.TTL(ctx, cooldownKey(email)).Result()
	if err != nil {
		return false, 0, err
	}
	if ttl > 0 {
		return true, ttl, nil
	}
	return false, 0, nil
}

// RegisterFailure incrementa el contador; al llegar al máximo activa el cooldown.
func (l *LoginLimiter) RegisterFailure(ctx context.Context, email string) error {
	key := attemptsKey(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, attemptWindow).Err(); err != nil {
			return err
		}
	}
	if n >= LoginMaxAttempts {
		if err := l.client.Set(ctx, cooldownKey(email), 1, LoginCooldown).Err(); err != nil {
			return err
		}
		return l.client.Del(ctx, key).Err()
	}
	return nil
}

// Reset limpia contador y cooldown tras un login exitoso.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, attemptsKey(email), cooldownKey(email)).Err()
}
