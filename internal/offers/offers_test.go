package offers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/docstore"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/domain"
)

func TestJobVacancyLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstore.NewMemory())

	v, err := svc.CreateJobVacancy(ctx, domain.JobVacancy{Title: "Go developer", EmployerID: "employer-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.True(t, v.IsOpen)

	got, err := svc.GetJobVacancy(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go developer", got.Title)

	list, err := svc.ListJobVacancies(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.CloseJobVacancy(ctx, v.ID))
	got, err = svc.GetJobVacancy(ctx, v.ID)
	require.NoError(t, err)
	assert.False(t, got.IsOpen)

	require.NoError(t, svc.DeleteJobVacancy(ctx, v.ID))
	_, err = svc.GetJobVacancy(ctx, v.ID)
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestCreateJobVacancyValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstore.NewMemory())

	var validationErr *domain.ValidationError
	_, err := svc.CreateJobVacancy(ctx, domain.JobVacancy{EmployerID: "employer-1"})
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.CreateJobVacancy(ctx, domain.JobVacancy{Title: "Go developer"})
	assert.ErrorAs(t, err, &validationErr)
}

func TestPartnershipOfferLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstore.NewMemory())

	o, err := svc.CreatePartnershipOffer(ctx, domain.PartnershipOffer{
		Title:         "Joint hackathon",
		CommunityID:   "community-1",
		CommunityName: "Dev Club",
		AdminID:       "admin-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
	assert.True(t, o.IsOpen)

	list, err := svc.ListPartnershipOffers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Dev Club", list[0].CommunityName)

	require.NoError(t, svc.ClosePartnershipOffer(ctx, o.ID))
	got, err := svc.GetPartnershipOffer(ctx, o.ID)
	require.NoError(t, err)
	assert.False(t, got.IsOpen)

	require.NoError(t, svc.DeletePartnershipOffer(ctx, o.ID))
	_, err = svc.GetPartnershipOffer(ctx, o.ID)
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestCreatePartnershipOfferValidation(t *testing.T) {
	svc := NewService(docstore.NewMemory())

	var validationErr *domain.ValidationError
	_, err := svc.CreatePartnershipOffer(context.Background(), domain.PartnershipOffer{Title: "no community"})
	assert.ErrorAs(t, err, &validationErr)
}
