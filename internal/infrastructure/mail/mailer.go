package mail

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/channelry/merchant-api/internal/application/auth"
	"github.com/channelry/merchant-api/pkg/config"
)

var _ auth.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envía correo vía SMTP (pasarela externa). Implementa el
// puerto auth.Mailer; el caller decide qué hacer ante un fallo.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer construye el mailer con la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendWelcome envía el correo de bienvenida tras el registro.
func (m *SMTPMailer) SendWelcome(ctx context.Context, to, name, merchantName string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Bienvenido a Channelry")
	msg.SetBodyString(mail.TypeTextHTML, welcomeHTML(name, merchantName))

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func welcomeHTML(name, merchantName string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Hola %s</h2>
		<p>Tu cuenta para <strong>%s</strong> quedó creada.</p>
		<p>Ya puedes cargar productos, definir SKUs y publicarlos en tus menús.</p>
	</div>
</body>
</html>`, name, merchantName)
}
