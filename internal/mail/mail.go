package mail

import (
	"log"
	"strings"

	"gopkg.in/gomail.v2"
)

type Translator interface {
	Translate(language string, key string, params map[string]any) string
}

type deliverer interface {
	DialAndSend(messages ...*gomail.Message) error
}

// Mailer sends transactional mail. Without an SMTP host it only logs what
// would have been sent.
type Mailer struct {
	from       string
	dialer     deliverer
	translator Translator
}

type SMTPSettings struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewMailer(settings SMTPSettings, translator Translator) *Mailer {
	mailer := &Mailer{from: settings.From, translator: translator}
	if strings.TrimSpace(settings.Host) != "" {
		mailer.dialer = gomail.NewDialer(settings.Host, settings.Port, settings.User, settings.Password)
	}
	return mailer
}

func (mailer *Mailer) Enabled() bool {
	return mailer.dialer != nil
}

func (mailer *Mailer) SendWelcome(language string, to string, name string, trialDays int) error {
	params := map[string]any{"name": name, "days": trialDays}
	subject := mailer.translator.Translate(language, "mail.welcome.subject", params)
	body := mailer.translator.Translate(language, "mail.welcome.body", params)
	return mailer.send(to, subject, body)
}

func (mailer *Mailer) send(to string, subject string, body string) error {
	if mailer.dialer == nil {
		log.Printf("mail disabled, skipping %q to %s", subject, to)
		return nil
	}

	message := gomail.NewMessage()
	message.SetHeader("From", mailer.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)
	return mailer.dialer.DialAndSend(message)
}
