package service

import (
	"errors"
	"testing"

	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/internal/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock ContactRepository ---

type mockContactRepo struct {
	mock.Mock
}

func (m *mockContactRepo) Create(msg *domain.ContactMessage) error {
	return m.Called(msg).Error(0)
}

// --- Fake notifier ---

type fakeNotifier struct {
	accepted []*mailer.Notification
	full     bool
}

func (f *fakeNotifier) Enqueue(msg *mailer.Notification) bool {
	if f.full {
		return false
	}
	f.accepted = append(f.accepted, msg)
	return true
}

// --- Tests ---

func TestSubmit_PersistsAndNotifies(t *testing.T) {
	repo := new(mockContactRepo)
	notifier := &fakeNotifier{}
	svc := NewContactService(repo, notifier)

	repo.On("Create", mock.AnythingOfType("*domain.ContactMessage")).Return(nil)

	msg, err := svc.Submit(&domain.ContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Phone:   "555-0100",
		Message: "Hello",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Visitor", msg.Name)
	assert.False(t, msg.SubmittedAt.IsZero())

	if assert.Len(t, notifier.accepted, 1) {
		n := notifier.accepted[0]
		assert.Equal(t, "visitor@example.com", n.Sender)
		assert.Equal(t, "A new message from Visitor", n.Subject)
		assert.Contains(t, n.Body, "Hello")
		assert.Contains(t, n.Body, "555-0100")
	}
	repo.AssertExpectations(t)
}

func TestSubmit_NotifierFailureDoesNotFailRequest(t *testing.T) {
	repo := new(mockContactRepo)
	notifier := &fakeNotifier{full: true}
	svc := NewContactService(repo, notifier)

	repo.On("Create", mock.AnythingOfType("*domain.ContactMessage")).Return(nil)

	// Decoupling law: the stored row survives a failed notification
	msg, err := svc.Submit(&domain.ContactRequest{Name: "Visitor", Message: "Hello"})

	assert.NoError(t, err)
	assert.NotNil(t, msg)
	repo.AssertExpectations(t)
}

func TestSubmit_StoreFailureSkipsNotification(t *testing.T) {
	repo := new(mockContactRepo)
	notifier := &fakeNotifier{}
	svc := NewContactService(repo, notifier)

	repo.On("Create", mock.AnythingOfType("*domain.ContactMessage")).Return(errors.New("db error"))

	_, err := svc.Submit(&domain.ContactRequest{Name: "Visitor"})

	assert.Error(t, err)
	assert.Empty(t, notifier.accepted, "no notification without a stored row")
	repo.AssertExpectations(t)
}

func TestSubmit_EmptyFieldsStoredAsIs(t *testing.T) {
	repo := new(mockContactRepo)
	svc := NewContactService(repo, nil)

	var stored *domain.ContactMessage
	repo.On("Create", mock.AnythingOfType("*domain.ContactMessage")).Run(func(args mock.Arguments) {
		stored = args.Get(0).(*domain.ContactMessage)
	}).Return(nil)

	// No validation exists; absent fields flow into storage empty
	_, err := svc.Submit(&domain.ContactRequest{})

	assert.NoError(t, err)
	assert.Equal(t, "", stored.Name)
	assert.Equal(t, "", stored.Email)
	assert.Equal(t, "", stored.Phone)
	assert.Equal(t, "", stored.Message)
	repo.AssertExpectations(t)
}
