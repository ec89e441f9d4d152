// Package dispatch issues the secondary writes that follow an application
// state transition. The ledger's primary write is authoritative and always
// commits before any method here runs; everything dispatched is fan-out.
package dispatch

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/docstore"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/domain"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/notification"
)

// Dispatcher writes notifications and chats as direct, sequential calls.
// Nothing is enqueued and nothing is rolled back: a secondary failure never
// undoes the primary write it follows.
type Dispatcher struct {
	store         docstore.Store
	notifications *notification.Service
	log           *logrus.Logger
}

func New(store docstore.Store, notifications *notification.Service, log *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		store:         store,
		notifications: notifications,
		log:           log,
	}
}

// Submitted notifies the offer owner about a fresh application. The error
// propagates so the submitting caller can report it, but the application
// record already exists and stays.
func (d *Dispatcher) Submitted(ctx context.Context, owner domain.Notification) error {
	if _, err := d.notifications.Add(ctx, owner); err != nil {
		return errors.Wrap(err, "unable to notify offer owner")
	}
	return nil
}

// Approved runs the post-approval sequence: the decision notification to the
// applicant, then the chat record, then one new_chat notification per
// participant. The writes are sequential and best effort - the first failure
// is logged, stops the sequence, and the approval stands as is.
func (d *Dispatcher) Approved(ctx context.Context, decision domain.Notification, chat domain.Chat, newChat []domain.Notification) {
	if _, err := d.notifications.Add(ctx, decision); err != nil {
		d.log.Errorf("approval fan-out stopped: %v", err)
		return
	}

	chatID, err := d.store.Create(ctx, domain.CollectionChats, chat)
	if err != nil {
		d.log.Errorf("approval fan-out stopped: unable to create chat: %v", err)
		return
	}

	for _, n := range newChat {
		n.ChatID = chatID
		if _, err := d.notifications.Add(ctx, n); err != nil {
			d.log.Errorf("approval fan-out stopped: %v", err)
			return
		}
	}
}

// Rejected sends the decision notification to the applicant. No chat is
// created. Best effort: a failure is logged and dropped.
func (d *Dispatcher) Rejected(ctx context.Context, decision domain.Notification) {
	if _, err := d.notifications.Add(ctx, decision); err != nil {
		d.log.Errorf("rejection fan-out dropped: %v", err)
	}
}
