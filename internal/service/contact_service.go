package service

import (
	"time"

	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/internal/mailer"
	"github.com/inkwell/inkwell-backend/internal/repository"
	"github.com/inkwell/inkwell-backend/pkg/logger"
)

// MailNotifier is the outbound-mail collaborator. Enqueue must not
// block; false means the notification was dropped.
type MailNotifier interface {
	Enqueue(msg *mailer.Notification) bool
}

// ContactService business logic for visitor contact messages
type ContactService interface {
	Submit(req *domain.ContactRequest) (*domain.ContactMessage, error)
}

type contactService struct {
	repo     repository.ContactRepository
	notifier MailNotifier
}

// NewContactService creates a new ContactService. notifier may be
// nil when mail is not configured; intake still persists.
func NewContactService(repo repository.ContactRepository, notifier MailNotifier) ContactService {
	return &contactService{repo: repo, notifier: notifier}
}

// Submit persists the message, then hands it to the mail notifier.
// Storage and notification are independent: once the row is stored,
// nothing on the notification path can fail the request.
func (s *contactService) Submit(req *domain.ContactRequest) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		SubmittedAt: time.Now(),
	}

	if err := s.repo.Create(msg); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		queued := s.notifier.Enqueue(&mailer.Notification{
			Sender:  req.Email,
			Subject: "A new message from " + req.Name,
			Body:    req.Message + "\nPhone: " + req.Phone,
		})
		if !queued {
			logger.GetLogger().Warn().
				Uint("message_id", msg.ID).
				Msg("mail queue full, contact notification dropped")
		}
	}

	return msg, nil
}
