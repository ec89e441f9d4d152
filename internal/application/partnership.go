package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/domain"
)

// SubmitPartnershipInput carries the offer coordinates and the answering
// community's admin snapshot.
type SubmitPartnershipInput struct {
	OfferID    string
	OfferTitle string
	OwnerID    string
	Applicant  domain.User
	Message    string
}

// SubmitPartnership creates one pending partnership application and notifies
// the offer owner's community admin.
func (l *Ledger) SubmitPartnership(ctx context.Context, in SubmitPartnershipInput) (domain.PartnershipApplication, error) {
	if in.OfferID == "" {
		return domain.PartnershipApplication{}, &domain.ValidationError{Message: "offer id is required"}
	}
	if in.Applicant.ID == "" {
		return domain.PartnershipApplication{}, &domain.ValidationError{Message: "applicant id is required"}
	}
	if in.Applicant.CommunityID == "" {
		return domain.PartnershipApplication{}, &domain.ValidationError{Message: "community is required"}
	}
	if strings.TrimSpace(in.Message) == "" {
		return domain.PartnershipApplication{}, &domain.ValidationError{Message: "message is required"}
	}

	app := domain.PartnershipApplication{
		OfferID:           in.OfferID,
		OfferTitle:        in.OfferTitle,
		FromCommunityID:   in.Applicant.CommunityID,
		FromCommunityName: in.Applicant.CommunityName,
		ApplicantID:       in.Applicant.ID,
		ApplicantName:     in.Applicant.DisplayName,
		ApplicantPhotoURL: in.Applicant.PhotoURL,
		OwnerID:           in.OwnerID,
		Message:           in.Message,
		Status:            domain.StatusPending,
		CreatedAt:         time.Now(),
	}

	id, err := l.store.Create(ctx, domain.CollectionPartnershipApplications, app)
	if err != nil {
		return domain.PartnershipApplication{}, errors.Wrap(err, "unable to create partnership application")
	}
	app.ID = id

	err = l.dispatcher.Submitted(ctx, domain.Notification{
		UserID:            in.OwnerID,
		Type:              domain.NotificationPartnershipRequest,
		FromUserID:        in.Applicant.ID,
		FromUserName:      in.Applicant.DisplayName,
		FromUserPhotoURL:  in.Applicant.PhotoURL,
		OfferID:           in.OfferID,
		FromCommunityID:   in.Applicant.CommunityID,
		FromCommunityName: in.Applicant.CommunityName,
		Message:           fmt.Sprintf("%s sent a partnership request for %q", in.Applicant.CommunityName, in.OfferTitle),
	})
	return app, err
}

// ApprovePartnership transitions a pending request to approved, opens the
// chat between the two admins and sends the fan-out.
func (l *Ledger) ApprovePartnership(ctx context.Context, id, reviewerID string) error {
	var app domain.PartnershipApplication
	if err := l.store.Get(ctx, domain.CollectionPartnershipApplications, id, &app); err != nil {
		return err
	}
	if app.OwnerID != reviewerID {
		return domain.ErrNotReviewer
	}

	now := time.Now()
	if err := l.markReviewed(ctx, domain.CollectionPartnershipApplications, id, domain.StatusApproved, reviewerID, now); err != nil {
		return err
	}

	decision := domain.Notification{
		UserID:            app.ApplicantID,
		Type:              domain.NotificationApplicationApproved,
		FromUserID:        reviewerID,
		OfferID:           app.OfferID,
		FromCommunityID:   app.FromCommunityID,
		FromCommunityName: app.FromCommunityName,
		Message:           fmt.Sprintf("Your partnership request for %q was approved", app.OfferTitle),
	}
	chat := domain.Chat{
		Type:         domain.ChatTypePartnership,
		Participants: []string{app.ApplicantID, app.OwnerID},
		Context: domain.ChatContext{
			OfferID:       app.OfferID,
			ApplicationID: app.ID,
			CommunityID:   app.FromCommunityID,
		},
		CreatedAt: now,
	}
	newChat := []domain.Notification{
		{
			UserID:     app.ApplicantID,
			Type:       domain.NotificationNewChat,
			FromUserID: app.OwnerID,
			Message:    fmt.Sprintf("A chat about %q was opened", app.OfferTitle),
		},
		{
			UserID:           app.OwnerID,
			Type:             domain.NotificationNewChat,
			FromUserID:       app.ApplicantID,
			FromUserName:     app.ApplicantName,
			FromUserPhotoURL: app.ApplicantPhotoURL,
			Message:          fmt.Sprintf("A chat about %q was opened", app.OfferTitle),
		},
	}

	l.dispatcher.Approved(ctx, decision, chat, newChat)
	return nil
}

// RejectPartnership transitions a pending request to rejected and notifies
// the requesting admin. The reason may be empty; no chat is created.
func (l *Ledger) RejectPartnership(ctx context.Context, id, reviewerID, reason string) error {
	var app domain.PartnershipApplication
	if err := l.store.Get(ctx, domain.CollectionPartnershipApplications, id, &app); err != nil {
		return err
	}
	if app.OwnerID != reviewerID {
		return domain.ErrNotReviewer
	}

	if err := l.markReviewed(ctx, domain.CollectionPartnershipApplications, id, domain.StatusRejected, reviewerID, time.Now()); err != nil {
		return err
	}

	message := fmt.Sprintf("Your partnership request for %q was rejected", app.OfferTitle)
	if reason != "" {
		message = message + ": " + reason
	}
	l.dispatcher.Rejected(ctx, domain.Notification{
		UserID:            app.ApplicantID,
		Type:              domain.NotificationApplicationRejected,
		FromUserID:        reviewerID,
		OfferID:           app.OfferID,
		FromCommunityID:   app.FromCommunityID,
		FromCommunityName: app.FromCommunityName,
		Message:           message,
	})
	return nil
}

// DeletePartnership is the administrative hard delete. No notification is
// sent.
func (l *Ledger) DeletePartnership(ctx context.Context, id, callerID string) error {
	var app domain.PartnershipApplication
	if err := l.store.Get(ctx, domain.CollectionPartnershipApplications, id, &app); err != nil {
		return err
	}
	if app.OwnerID != callerID {
		return domain.ErrNotReviewer
	}
	return l.store.Delete(ctx, domain.CollectionPartnershipApplications, id)
}
