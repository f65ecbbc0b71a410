package notificationinfra

import (
	"context"
	"fmt"
	"strings"

	"github.com/Abraxas-365/crewdesk/pkg/logx"
	"github.com/Abraxas-365/crewdesk/recruitment/notification"
)

// ConsoleMailer implements notification.Mailer by printing messages to
// the terminal. Used when no SMTP relay is configured.
type ConsoleMailer struct{}

func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

var _ notification.Mailer = (*ConsoleMailer)(nil)

func (m *ConsoleMailer) Send(ctx context.Context, msg notification.Message) error {
	rule := strings.Repeat("=", 50)

	fmt.Println(rule)
	fmt.Printf("To: %s <%s>\n", msg.ToName, msg.To)
	fmt.Printf("Reply-To: %s\n", msg.ReplyTo)
	fmt.Printf("Subject: %s\n\n", msg.Subject)
	fmt.Println(msg.Body)
	if msg.Attachment != nil {
		fmt.Printf("[attachment %s, %d bytes]\n", msg.Attachment.Filename, len(msg.Attachment.Data))
	}
	fmt.Println(rule)

	logx.Infof("notification printed for %s", msg.To)
	return nil
}
