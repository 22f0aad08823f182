package mailer

import (
	"github.com/inkwell/inkwell-backend/pkg/logger"
	"gopkg.in/gomail.v2"
)

// queueSize bounds the pending-notification queue. Enqueue never
// blocks the request path: when the queue is full the notification
// is dropped (and the caller logs the drop).
const queueSize = 64

// Notification is a mail message handed off by the contact intake.
// Sender carries the visitor's address so the admin can reply
// directly.
type Notification struct {
	Sender  string
	Subject string
	Body    string
}

// Notifier delivers notifications to the configured admin mailbox
// from a background worker, decoupled from request handling.
type Notifier struct {
	dialer    *gomail.Dialer
	account   string
	recipient string
	queue     chan *Notification
}

// NewNotifier creates a Notifier. Run must be started on its own
// goroutine before notifications are delivered.
func NewNotifier(host string, port int, username, password, recipient string) *Notifier {
	dialer := gomail.NewDialer(host, port, username, password)
	dialer.SSL = port == 465

	return &Notifier{
		dialer:    dialer,
		account:   username,
		recipient: recipient,
		queue:     make(chan *Notification, queueSize),
	}
}

// Enqueue hands a notification to the worker without blocking.
// Returns false when the queue is full and the notification was
// dropped.
func (n *Notifier) Enqueue(msg *Notification) bool {
	select {
	case n.queue <- msg:
		return true
	default:
		return false
	}
}

// Run drains the queue until Close is called
func (n *Notifier) Run() {
	for msg := range n.queue {
		n.send(msg)
	}
}

// Close stops the worker after the queue drains
func (n *Notifier) Close() {
	close(n.queue)
}

// send attempts one delivery. Failures are logged and swallowed;
// by contract they never surface to the request that queued the
// notification.
func (n *Notifier) send(msg *Notification) {
	m := gomail.NewMessage()

	sender := msg.Sender
	if sender == "" {
		sender = n.account
	}
	m.SetHeader("From", sender)
	m.SetHeader("To", n.recipient)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := n.dialer.DialAndSend(m); err != nil {
		logger.GetLogger().Error().
			Err(err).
			Str("sender", sender).
			Msg("mail delivery failed")
	}
}
