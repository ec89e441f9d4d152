// Package application enforces the submit/review lifecycle for job and
// partnership applications: two instances of the same three-state machine
// running on different collections.
package application

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/dispatch"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/docstore"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/domain"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/mirror"
)

// Ledger owns both application collections. State transitions write the
// primary record first and hand fan-out to the dispatcher afterwards;
// mirrors are fed only by the live subscriptions started in Watch.
type Ledger struct {
	store      docstore.Store
	dispatcher *dispatch.Dispatcher
	log        *logrus.Logger

	jobs         *mirror.Mirror[domain.JobApplication]
	partnerships *mirror.Mirror[domain.PartnershipApplication]
	unsubs       []docstore.Unsubscribe
}

// NewLedger wires the ledger; snapshots may be nil to skip persistence.
func NewLedger(store docstore.Store, dispatcher *dispatch.Dispatcher, snapshots mirror.SnapshotStore, log *logrus.Logger) *Ledger {
	l := &Ledger{
		store:        store,
		dispatcher:   dispatcher,
		log:          log,
		jobs:         mirror.New[domain.JobApplication](domain.CollectionJobApplications, snapshots),
		partnerships: mirror.New[domain.PartnershipApplication](domain.CollectionPartnershipApplications, snapshots),
	}
	l.jobs.Restore()
	l.partnerships.Restore()
	return l
}

// Watch starts the live subscriptions feeding both mirrors. The initial
// snapshots are delivered before Watch returns.
func (l *Ledger) Watch(ctx context.Context) error {
	unsub, err := l.store.Subscribe(ctx, domain.CollectionJobApplications, docstore.Fields{}, func(snap docstore.Snapshot) {
		records := make([]domain.JobApplication, 0, len(snap))
		for _, doc := range snap {
			var app domain.JobApplication
			if err := docstore.Decode(doc, &app); err != nil {
				l.log.Errorf("unable to decode job application: %v", err)
				continue
			}
			records = append(records, app)
		}
		sort.Slice(records, func(i, j int) bool { return records[i].CreatedAt.After(records[j].CreatedAt) })
		l.jobs.Replace(records)
	})
	if err != nil {
		return errors.Wrap(err, "unable to watch job applications")
	}
	l.unsubs = append(l.unsubs, unsub)

	unsub, err = l.store.Subscribe(ctx, domain.CollectionPartnershipApplications, docstore.Fields{}, func(snap docstore.Snapshot) {
		records := make([]domain.PartnershipApplication, 0, len(snap))
		for _, doc := range snap {
			var app domain.PartnershipApplication
			if err := docstore.Decode(doc, &app); err != nil {
				l.log.Errorf("unable to decode partnership application: %v", err)
				continue
			}
			records = append(records, app)
		}
		sort.Slice(records, func(i, j int) bool { return records[i].CreatedAt.After(records[j].CreatedAt) })
		l.partnerships.Replace(records)
	})
	if err != nil {
		return errors.Wrap(err, "unable to watch partnership applications")
	}
	l.unsubs = append(l.unsubs, unsub)

	return nil
}

// Close cancels the live subscriptions.
func (l *Ledger) Close() {
	for _, unsub := range l.unsubs {
		unsub()
	}
	l.unsubs = nil
}

// JobApplications returns the mirrored snapshot, newest first.
func (l *Ledger) JobApplications() []domain.JobApplication {
	return l.jobs.Records()
}

// PartnershipApplications returns the mirrored snapshot, newest first.
func (l *Ledger) PartnershipApplications() []domain.PartnershipApplication {
	return l.partnerships.Records()
}

// ListJobsFor is the one-shot query of job applications by field equality,
// newest first.
func (l *Ledger) ListJobsFor(ctx context.Context, filter docstore.Fields) ([]domain.JobApplication, error) {
	snap, err := l.store.Query(ctx, domain.CollectionJobApplications, filter)
	if err != nil {
		return nil, errors.Wrap(err, "unable to query job applications")
	}
	records := make([]domain.JobApplication, 0, len(snap))
	for _, doc := range snap {
		var app domain.JobApplication
		if err := docstore.Decode(doc, &app); err != nil {
			l.log.Errorf("unable to decode job application: %v", err)
			continue
		}
		records = append(records, app)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].CreatedAt.After(records[j].CreatedAt) })
	return records, nil
}

// ListPartnershipsFor is the one-shot query of partnership applications by
// field equality, newest first.
func (l *Ledger) ListPartnershipsFor(ctx context.Context, filter docstore.Fields) ([]domain.PartnershipApplication, error) {
	snap, err := l.store.Query(ctx, domain.CollectionPartnershipApplications, filter)
	if err != nil {
		return nil, errors.Wrap(err, "unable to query partnership applications")
	}
	records := make([]domain.PartnershipApplication, 0, len(snap))
	for _, doc := range snap {
		var app domain.PartnershipApplication
		if err := docstore.Decode(doc, &app); err != nil {
			l.log.Errorf("unable to decode partnership application: %v", err)
			continue
		}
		records = append(records, app)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].CreatedAt.After(records[j].CreatedAt) })
	return records, nil
}

// markReviewed is the shared transition out of pending. The conditional
// update only matches while the record is still pending, so a concurrent or
// repeated review surfaces as docstore.ErrConflict and triggers no fan-out.
func (l *Ledger) markReviewed(ctx context.Context, collection, id string, to domain.Status, reviewerID string, now time.Time) error {
	err := l.store.UpdateIf(ctx, collection, id,
		docstore.Fields{"status": domain.StatusPending},
		docstore.Fields{
			"status":     to,
			"reviewedAt": now,
			"reviewedBy": reviewerID,
		})
	if err != nil {
		if err == docstore.ErrNotFound || err == docstore.ErrConflict {
			return err
		}
		return errors.Wrapf(err, "unable to transition %s/%s", collection, id)
	}
	return nil
}
