// Package offers provides the job-vacancy and partnership-offer records that
// applications are submitted against.
package offers

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/docstore"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/domain"
)

// Service is the CRUD surface over both offer collections.
type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

func (s *Service) CreateJobVacancy(ctx context.Context, v domain.JobVacancy) (domain.JobVacancy, error) {
	if v.Title == "" {
		return domain.JobVacancy{}, &domain.ValidationError{Message: "title is required"}
	}
	if v.EmployerID == "" {
		return domain.JobVacancy{}, &domain.ValidationError{Message: "employer id is required"}
	}
	v.ID = ""
	v.IsOpen = true
	v.CreatedAt = time.Now()

	id, err := s.store.Create(ctx, domain.CollectionJobVacancies, v)
	if err != nil {
		return domain.JobVacancy{}, errors.Wrap(err, "unable to create job vacancy")
	}
	v.ID = id
	return v, nil
}

func (s *Service) GetJobVacancy(ctx context.Context, id string) (domain.JobVacancy, error) {
	var v domain.JobVacancy
	err := s.store.Get(ctx, domain.CollectionJobVacancies, id, &v)
	return v, err
}

func (s *Service) ListJobVacancies(ctx context.Context) ([]domain.JobVacancy, error) {
	snap, err := s.store.Query(ctx, domain.CollectionJobVacancies, docstore.Fields{})
	if err != nil {
		return nil, errors.Wrap(err, "unable to query job vacancies")
	}
	records := make([]domain.JobVacancy, 0, len(snap))
	for _, doc := range snap {
		var v domain.JobVacancy
		if err := docstore.Decode(doc, &v); err != nil {
			continue
		}
		records = append(records, v)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].CreatedAt.After(records[j].CreatedAt) })
	return records, nil
}

// CloseJobVacancy stops a vacancy from being listed as open. Submissions
// against a closed vacancy are still accepted; the ledger does not check.
func (s *Service) CloseJobVacancy(ctx context.Context, id string) error {
	return s.store.Update(ctx, domain.CollectionJobVacancies, id, docstore.Fields{"isOpen": false})
}

func (s *Service) DeleteJobVacancy(ctx context.Context, id string) error {
	return s.store.Delete(ctx, domain.CollectionJobVacancies, id)
}

func (s *Service) CreatePartnershipOffer(ctx context.Context, o domain.PartnershipOffer) (domain.PartnershipOffer, error) {
	if o.Title == "" {
		return domain.PartnershipOffer{}, &domain.ValidationError{Message: "title is required"}
	}
	if o.CommunityID == "" {
		return domain.PartnershipOffer{}, &domain.ValidationError{Message: "community id is required"}
	}
	o.ID = ""
	o.IsOpen = true
	o.CreatedAt = time.Now()

	id, err := s.store.Create(ctx, domain.CollectionPartnershipOffers, o)
	if err != nil {
		return domain.PartnershipOffer{}, errors.Wrap(err, "unable to create partnership offer")
	}
	o.ID = id
	return o, nil
}

func (s *Service) GetPartnershipOffer(ctx context.Context, id string) (domain.PartnershipOffer, error) {
	var o domain.PartnershipOffer
	err := s.store.Get(ctx, domain.CollectionPartnershipOffers, id, &o)
	return o, err
}

func (s *Service) ListPartnershipOffers(ctx context.Context) ([]domain.PartnershipOffer, error) {
	snap, err := s.store.Query(ctx, domain.CollectionPartnershipOffers, docstore.Fields{})
	if err != nil {
		return nil, errors.Wrap(err, "unable to query partnership offers")
	}
	records := make([]domain.PartnershipOffer, 0, len(snap))
	for _, doc := range snap {
		var o domain.PartnershipOffer
		if err := docstore.Decode(doc, &o); err != nil {
			continue
		}
		records = append(records, o)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].CreatedAt.After(records[j].CreatedAt) })
	return records, nil
}

func (s *Service) ClosePartnershipOffer(ctx context.Context, id string) error {
	return s.store.Update(ctx, domain.CollectionPartnershipOffers, id, docstore.Fields{"isOpen": false})
}

func (s *Service) DeletePartnershipOffer(ctx context.Context, id string) error {
	return s.store.Delete(ctx, domain.CollectionPartnershipOffers, id)
}
