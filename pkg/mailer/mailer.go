package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

// ErrMailerDisabled SMTP ayarlanmamışken gönderim denendiğinde döner.
var ErrMailerDisabled = errors.New("e-posta gönderimi yapılandırılmamış")

// Mailer düz metin e-posta gönderen bileşen.
type Mailer interface {
	SendPlain(ctx context.Context, to, subject, body string) error
}

// Config SMTP bağlantı ayarları.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer go-mail istemcisiyle SMTP üzerinden gönderir.
type SMTPMailer struct {
	cfg Config
}

// NewSMTPMailer yapılandırmayı doğrular; host boşsa NoopMailer döner.
func NewSMTPMailer(cfg Config) Mailer {
	if cfg.Host == "" {
		return NoopMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendPlain(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("gönderen adresi geçersiz: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("alıcı adresi geçersiz: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp istemcisi oluşturulamadı: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("e-posta gönderilemedi: %w", err)
	}
	return nil
}

// NoopMailer SMTP tanımlı değilken kullanılır; her gönderimde ErrMailerDisabled döner.
type NoopMailer struct{}

func (NoopMailer) SendPlain(ctx context.Context, to, subject, body string) error {
	return ErrMailerDisabled
}
