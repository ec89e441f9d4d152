package domain

import "time"

const (
	CollectionJobVacancies      = "jobVacancies"
	CollectionPartnershipOffers = "partnershipOffers"
)

// JobVacancy is published by an employer and applied to with a JobApplication.
type JobVacancy struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	EmployerID  string    `bson:"employerId" json:"employerId"`
	CommunityID string    `bson:"communityId,omitempty" json:"communityId,omitempty"`
	Skills      []string  `bson:"skills,omitempty" json:"skills,omitempty"`
	Level       string    `bson:"level,omitempty" json:"level,omitempty"`
	IsOpen      bool      `bson:"isOpen" json:"isOpen"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// PartnershipOffer is published by a community admin and answered with a
// PartnershipApplication from another community.
type PartnershipOffer struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	CommunityID   string    `bson:"communityId" json:"communityId"`
	CommunityName string    `bson:"communityName" json:"communityName"`
	AdminID       string    `bson:"adminId" json:"adminId"`
	IsOpen        bool      `bson:"isOpen" json:"isOpen"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
