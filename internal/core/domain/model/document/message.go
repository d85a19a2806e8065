package document

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned by Validate on a zero-value Message.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage or RestoreMessage")

const maxMessageLength = 4000

// Message is a note from one user to another, optionally in a task thread.
type Message struct {
	id          kernel.UUID
	senderID    kernel.UUID
	recipientID kernel.UUID
	taskID      *kernel.UUID
	companyID   kernel.UUID
	body        string
	read        bool
	sentAt      time.Time

	isConstructed bool
}

// NewMessage creates an unread message.
func NewMessage(
	id, senderID, recipientID kernel.UUID,
	taskID *kernel.UUID,
	companyID kernel.UUID,
	body string,
	now time.Time,
) (*Message, error) {
	body = strings.TrimSpace(body)

	var errList []error
	for name, v := range map[string]kernel.UUID{
		"message id":   id,
		"sender id":    senderID,
		"recipient id": recipientID,
		"company id":   companyID,
	} {
		if err := v.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause(name, err))
		}
	}
	if body == "" {
		errList = append(errList, errs.NewValueIsRequiredError("message body"))
	} else if len(body) > maxMessageLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("message length", len(body), 1, maxMessageLength))
	}
	if senderID.IsEqual(recipientID) && !senderID.IsZero() {
		errList = append(errList, errs.NewValueIsInvalidError("recipient must differ from sender"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	m := &Message{
		id:            id,
		senderID:      senderID,
		recipientID:   recipientID,
		companyID:     companyID,
		body:          body,
		sentAt:        now,
		isConstructed: true,
	}
	if taskID != nil {
		m.taskID = kernel.Ptr(*taskID)
	}
	return m, nil
}

// RestoreMessage rebuilds a message from persisted state.
func RestoreMessage(
	id, senderID, recipientID kernel.UUID,
	taskID *kernel.UUID,
	companyID kernel.UUID,
	body string,
	read bool,
	sentAt time.Time,
) (*Message, error) {
	m, err := NewMessage(id, senderID, recipientID, taskID, companyID, body, sentAt)
	if err != nil {
		return nil, err
	}
	m.read = read
	return m, nil
}

func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

func (m *Message) ID() kernel.UUID          { return m.id }
func (m *Message) SenderID() kernel.UUID    { return m.senderID }
func (m *Message) RecipientID() kernel.UUID { return m.recipientID }
func (m *Message) TaskID() *kernel.UUID     { return m.taskID }
func (m *Message) CompanyID() kernel.UUID   { return m.companyID }
func (m *Message) Body() string             { return m.body }
func (m *Message) Read() bool               { return m.read }
func (m *Message) SentAt() time.Time        { return m.sentAt }

// MarkRead flags the message as read.
func (m *Message) MarkRead() { m.read = true }
