package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/docstore"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/domain"
)

var communityAdmin = domain.User{
	ID:            "admin-2",
	DisplayName:   "Lena",
	Role:          domain.RoleCommunity,
	CommunityID:   "community-2",
	CommunityName: "Robotics Club",
}

func submitPartnership(t *testing.T, f *fixture) domain.PartnershipApplication {
	t.Helper()
	app, err := f.ledger.SubmitPartnership(context.Background(), SubmitPartnershipInput{
		OfferID:    "offer-1",
		OfferTitle: "Joint hackathon",
		OwnerID:    "admin-1",
		Applicant:  communityAdmin,
		Message:    "Let's run it together",
	})
	require.NoError(t, err)
	return app
}

func TestSubmitPartnership(t *testing.T) {
	f := newFixture(docstore.NewMemory())
	app := submitPartnership(t, f)

	assert.NotEmpty(t, app.ID)
	assert.Equal(t, domain.StatusPending, app.Status)
	assert.Equal(t, "community-2", app.FromCommunityID)
	assert.Equal(t, "Robotics Club", app.FromCommunityName)

	records := f.notificationsFor(t, "admin-1")
	require.Len(t, records, 1)
	assert.Equal(t, domain.NotificationPartnershipRequest, records[0].Type)
	assert.Equal(t, "Robotics Club", records[0].FromCommunityName)
	assert.Equal(t, `Robotics Club sent a partnership request for "Joint hackathon"`, records[0].Message)
}

func TestSubmitPartnershipValidation(t *testing.T) {
	f := newFixture(docstore.NewMemory())
	ctx := context.Background()

	noCommunity := communityAdmin
	noCommunity.CommunityID = ""
	_, err := f.ledger.SubmitPartnership(ctx, SubmitPartnershipInput{
		OfferID:   "offer-1",
		OwnerID:   "admin-1",
		Applicant: noCommunity,
		Message:   "hi",
	})
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "community is required", validationErr.Message)

	_, err = f.ledger.SubmitPartnership(ctx, SubmitPartnershipInput{
		OfferID:   "offer-1",
		OwnerID:   "admin-1",
		Applicant: communityAdmin,
		Message:   "  ",
	})
	require.ErrorAs(t, err, &validationErr)

	snap, err := f.store.Query(ctx, domain.CollectionPartnershipApplications, docstore.Fields{})
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestApprovePartnership(t *testing.T) {
	f := newFixture(docstore.NewMemory())
	ctx := context.Background()
	app := submitPartnership(t, f)

	require.NoError(t, f.ledger.ApprovePartnership(ctx, app.ID, "admin-1"))

	var stored domain.PartnershipApplication
	require.NoError(t, f.store.Get(ctx, domain.CollectionPartnershipApplications, app.ID, &stored))
	assert.Equal(t, domain.StatusApproved, stored.Status)
	assert.Equal(t, "admin-1", stored.ReviewedBy)

	chats := f.chats(t)
	require.Len(t, chats, 1)
	assert.Equal(t, domain.ChatTypePartnership, chats[0].Type)
	assert.ElementsMatch(t, []string{"admin-1", "admin-2"}, chats[0].Participants)
	assert.Equal(t, "offer-1", chats[0].Context.OfferID)
	assert.Equal(t, "community-2", chats[0].Context.CommunityID)

	// Decision plus one new_chat notice per admin.
	assert.Len(t, f.notificationsFor(t, "admin-2"), 2)
	assert.Len(t, f.notificationsFor(t, "admin-1"), 2)
}

func TestApprovePartnershipConflictsOnRetry(t *testing.T) {
	f := newFixture(docstore.NewMemory())
	ctx := context.Background()
	app := submitPartnership(t, f)

	require.NoError(t, f.ledger.ApprovePartnership(ctx, app.ID, "admin-1"))
	assert.ErrorIs(t, f.ledger.ApprovePartnership(ctx, app.ID, "admin-1"), docstore.ErrConflict)
	assert.Len(t, f.chats(t), 1)
}

func TestApprovePartnershipRequiresOwner(t *testing.T) {
	f := newFixture(docstore.NewMemory())
	app := submitPartnership(t, f)

	err := f.ledger.ApprovePartnership(context.Background(), app.ID, "admin-2")
	assert.ErrorIs(t, err, domain.ErrNotReviewer)
	assert.Empty(t, f.chats(t))
}

func TestRejectPartnership(t *testing.T) {
	f := newFixture(docstore.NewMemory())
	ctx := context.Background()
	app := submitPartnership(t, f)

	require.NoError(t, f.ledger.RejectPartnership(ctx, app.ID, "admin-1", "not this semester"))

	var stored domain.PartnershipApplication
	require.NoError(t, f.store.Get(ctx, domain.CollectionPartnershipApplications, app.ID, &stored))
	assert.Equal(t, domain.StatusRejected, stored.Status)
	assert.Empty(t, f.chats(t))

	records := f.notificationsFor(t, "admin-2")
	require.Len(t, records, 1)
	assert.Equal(t, domain.NotificationApplicationRejected, records[0].Type)
	assert.Equal(t, `Your partnership request for "Joint hackathon" was rejected: not this semester`, records[0].Message)
}

func TestDeletePartnership(t *testing.T) {
	f := newFixture(docstore.NewMemory())
	ctx := context.Background()
	app := submitPartnership(t, f)

	assert.ErrorIs(t, f.ledger.DeletePartnership(ctx, app.ID, "admin-2"), domain.ErrNotReviewer)
	require.NoError(t, f.ledger.DeletePartnership(ctx, app.ID, "admin-1"))

	var stored domain.PartnershipApplication
	assert.ErrorIs(t, f.store.Get(ctx, domain.CollectionPartnershipApplications, app.ID, &stored), docstore.ErrNotFound)
}
