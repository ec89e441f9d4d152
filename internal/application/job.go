package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/domain"
)

// SubmitJobInput carries everything a job submission denormalizes: the
// vacancy coordinates from the offer provider and the applicant snapshot
// from the session provider. The vacancy is not re-checked against the
// store - there is no foreign-key validation at submit time.
type SubmitJobInput struct {
	JobID       string
	JobTitle    string
	EmployerID  string
	Applicant   domain.User
	CoverLetter string
	Portfolio   domain.PortfolioSnapshot
}

// SubmitJob creates one pending application and notifies the employer. If
// the notification write fails the application still exists; the error is
// returned but nothing is rolled back.
func (l *Ledger) SubmitJob(ctx context.Context, in SubmitJobInput) (domain.JobApplication, error) {
	if in.JobID == "" {
		return domain.JobApplication{}, &domain.ValidationError{Message: "job id is required"}
	}
	if in.Applicant.ID == "" {
		return domain.JobApplication{}, &domain.ValidationError{Message: "applicant id is required"}
	}
	if strings.TrimSpace(in.CoverLetter) == "" {
		return domain.JobApplication{}, &domain.ValidationError{Message: "cover letter is required"}
	}

	app := domain.JobApplication{
		JobID:             in.JobID,
		JobTitle:          in.JobTitle,
		ApplicantID:       in.Applicant.ID,
		ApplicantName:     in.Applicant.DisplayName,
		ApplicantPhotoURL: in.Applicant.PhotoURL,
		EmployerID:        in.EmployerID,
		CoverLetter:       in.CoverLetter,
		Portfolio:         in.Portfolio,
		Status:            domain.StatusPending,
		CreatedAt:         time.Now(),
	}

	id, err := l.store.Create(ctx, domain.CollectionJobApplications, app)
	if err != nil {
		return domain.JobApplication{}, errors.Wrap(err, "unable to create job application")
	}
	app.ID = id

	err = l.dispatcher.Submitted(ctx, domain.Notification{
		UserID:           in.EmployerID,
		Type:             domain.NotificationJobApplication,
		FromUserID:       in.Applicant.ID,
		FromUserName:     in.Applicant.DisplayName,
		FromUserPhotoURL: in.Applicant.PhotoURL,
		JobID:            in.JobID,
		JobTitle:         in.JobTitle,
		Message:          fmt.Sprintf("%s applied to your job %q", in.Applicant.DisplayName, in.JobTitle),
	})
	return app, err
}

// ApproveJob transitions a pending application to approved, then opens the
// chat and sends the fan-out. An already-reviewed record returns
// docstore.ErrConflict with no side effects.
func (l *Ledger) ApproveJob(ctx context.Context, id, reviewerID string) error {
	var app domain.JobApplication
	if err := l.store.Get(ctx, domain.CollectionJobApplications, id, &app); err != nil {
		return err
	}
	if app.EmployerID != reviewerID {
		return domain.ErrNotReviewer
	}

	now := time.Now()
	if err := l.markReviewed(ctx, domain.CollectionJobApplications, id, domain.StatusApproved, reviewerID, now); err != nil {
		return err
	}

	decision := domain.Notification{
		UserID:     app.ApplicantID,
		Type:       domain.NotificationApplicationApproved,
		FromUserID: reviewerID,
		JobID:      app.JobID,
		JobTitle:   app.JobTitle,
		Message:    fmt.Sprintf("Your application for %q was approved", app.JobTitle),
	}
	chat := domain.Chat{
		Type:         domain.ChatTypeJob,
		Participants: []string{app.ApplicantID, app.EmployerID},
		Context: domain.ChatContext{
			JobID:         app.JobID,
			ApplicationID: app.ID,
		},
		CreatedAt: now,
	}
	newChat := []domain.Notification{
		{
			UserID:     app.ApplicantID,
			Type:       domain.NotificationNewChat,
			FromUserID: app.EmployerID,
			Message:    fmt.Sprintf("A chat about %q was opened", app.JobTitle),
		},
		{
			UserID:           app.EmployerID,
			Type:             domain.NotificationNewChat,
			FromUserID:       app.ApplicantID,
			FromUserName:     app.ApplicantName,
			FromUserPhotoURL: app.ApplicantPhotoURL,
			Message:          fmt.Sprintf("A chat about %q was opened", app.JobTitle),
		},
	}

	l.dispatcher.Approved(ctx, decision, chat, newChat)
	return nil
}

// RejectJob transitions a pending application to rejected and notifies the
// applicant. The reason may be empty. No chat is created.
func (l *Ledger) RejectJob(ctx context.Context, id, reviewerID, reason string) error {
	var app domain.JobApplication
	if err := l.store.Get(ctx, domain.CollectionJobApplications, id, &app); err != nil {
		return err
	}
	if app.EmployerID != reviewerID {
		return domain.ErrNotReviewer
	}

	if err := l.markReviewed(ctx, domain.CollectionJobApplications, id, domain.StatusRejected, reviewerID, time.Now()); err != nil {
		return err
	}

	message := fmt.Sprintf("Your application for %q was rejected", app.JobTitle)
	if reason != "" {
		message = message + ": " + reason
	}
	l.dispatcher.Rejected(ctx, domain.Notification{
		UserID:     app.ApplicantID,
		Type:       domain.NotificationApplicationRejected,
		FromUserID: reviewerID,
		JobID:      app.JobID,
		JobTitle:   app.JobTitle,
		Message:    message,
	})
	return nil
}

// DeleteJob is the administrative hard delete. No notification is sent.
func (l *Ledger) DeleteJob(ctx context.Context, id, callerID string) error {
	var app domain.JobApplication
	if err := l.store.Get(ctx, domain.CollectionJobApplications, id, &app); err != nil {
		return err
	}
	if app.EmployerID != callerID {
		return domain.ErrNotReviewer
	}
	return l.store.Delete(ctx, domain.CollectionJobApplications, id)
}
