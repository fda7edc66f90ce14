package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"atende/internal/domain/ticket"
	vo "atende/internal/domain/ticket/value_objects"
	"atende/internal/domain/user"
	"atende/internal/shared/logger"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// StatusChangeNotifier emails the ticket owner after an admin changes the
// status. It runs after the transaction commits and its failures are logged
// by the caller, never propagated to the API response.
type StatusChangeNotifier struct {
	config   SMTPConfig
	dialer   *gomail.Dialer
	userRepo user.Repository
	logger   logger.Interface
}

func NewStatusChangeNotifier(config SMTPConfig, userRepo user.Repository, logger logger.Interface) *StatusChangeNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &StatusChangeNotifier{
		config:   config,
		dialer:   dialer,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (n *StatusChangeNotifier) NotifyStatusChange(ctx context.Context, t *ticket.Ticket, oldStatus vo.TicketStatus) error {
	owner, err := n.userRepo.FindByID(ctx, t.OwnerID())
	if err != nil {
		return fmt.Errorf("failed to load ticket owner: %w", err)
	}

	subject := fmt.Sprintf("Seu ticket #%d mudou de status", t.ID())
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Olá %s,</p>
			<p>O status do seu ticket <strong>#%d — %s</strong> mudou de
			<strong>%s</strong> para <strong>%s</strong>.</p>
			<p>Acesse a área de suporte para ver os detalhes.</p>
		</body>
		</html>
	`, owner.Name(), t.ID(), t.Title(), oldStatus, t.Status())

	plainBody := fmt.Sprintf(`Olá %s,

O status do seu ticket #%d (%s) mudou de %s para %s.

Acesse a área de suporte para ver os detalhes.
`, owner.Name(), t.ID(), t.Title(), oldStatus, t.Status())

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(n.config.FromAddress, n.config.FromName))
	m.SetHeader("To", owner.Email())
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send status change email: %w", err)
	}

	n.logger.Infow("status change email sent",
		"ticket_id", t.ID(), "to", owner.Email(), "new_status", t.Status())

	return nil
}
