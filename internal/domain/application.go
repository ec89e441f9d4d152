package domain

import "time"

const (
	CollectionJobApplications         = "jobApplications"
	CollectionPartnershipApplications = "partnershipApplications"
)

// Status is the review lifecycle of an application. Pending is the only
// non-terminal state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// PortfolioProject is one entry of an applicant's portfolio snapshot.
type PortfolioProject struct {
	Title string `bson:"title" json:"title"`
	Link  string `bson:"link,omitempty" json:"link,omitempty"`
}

// PortfolioSnapshot is a denormalized copy of the applicant's profile taken
// at submission time. It is never refreshed afterwards.
type PortfolioSnapshot struct {
	Skills   []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Projects []PortfolioProject `bson:"projects,omitempty" json:"projects,omitempty"`
	Level    string             `bson:"level,omitempty" json:"level,omitempty"`
}

// JobApplication is a submission against a job vacancy. Append-only except
// for the single status/reviewedAt/reviewedBy update.
type JobApplication struct {
	ID                string            `bson:"_id,omitempty" json:"id"`
	JobID             string            `bson:"jobId" json:"jobId"`
	JobTitle          string            `bson:"jobTitle" json:"jobTitle"`
	ApplicantID       string            `bson:"applicantId" json:"applicantId"`
	ApplicantName     string            `bson:"applicantName" json:"applicantName"`
	ApplicantPhotoURL string            `bson:"applicantPhoto,omitempty" json:"applicantPhoto,omitempty"`
	EmployerID        string            `bson:"employerId" json:"employerId"`
	CoverLetter       string            `bson:"coverLetter" json:"coverLetter"`
	Portfolio         PortfolioSnapshot `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
	Status            Status            `bson:"status" json:"status"`
	CreatedAt         time.Time         `bson:"createdAt" json:"createdAt"`
	ReviewedAt        *time.Time        `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	ReviewedBy        string            `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
}

// PartnershipApplication is a community's answer to a partnership offer.
type PartnershipApplication struct {
	ID                string     `bson:"_id,omitempty" json:"id"`
	OfferID           string     `bson:"offerId" json:"offerId"`
	OfferTitle        string     `bson:"offerTitle" json:"offerTitle"`
	FromCommunityID   string     `bson:"fromCommunityId" json:"fromCommunityId"`
	FromCommunityName string     `bson:"fromCommunityName" json:"fromCommunityName"`
	ApplicantID       string     `bson:"applicantId" json:"applicantId"`
	ApplicantName     string     `bson:"applicantName" json:"applicantName"`
	ApplicantPhotoURL string     `bson:"applicantPhoto,omitempty" json:"applicantPhoto,omitempty"`
	OwnerID           string     `bson:"ownerId" json:"ownerId"`
	Message           string     `bson:"message" json:"message"`
	Status            Status     `bson:"status" json:"status"`
	CreatedAt         time.Time  `bson:"createdAt" json:"createdAt"`
	ReviewedAt        *time.Time `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	ReviewedBy        string     `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
}
