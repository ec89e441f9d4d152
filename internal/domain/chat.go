package domain

import "time"

const CollectionChats = "chats"

const (
	ChatTypeJob         = "job"
	ChatTypePartnership = "partnership"
)

// ChatContext points back at the offer/application/community pair the chat
// was opened for.
type ChatContext struct {
	JobID         string `bson:"jobId,omitempty" json:"jobId,omitempty"`
	OfferID       string `bson:"offerId,omitempty" json:"offerId,omitempty"`
	ApplicationID string `bson:"applicationId" json:"applicationId"`
	CommunityID   string `bson:"communityId,omitempty" json:"communityId,omitempty"`
}

// Chat is created only as a side effect of an application approval.
// LastMessage and LastMessageAt stay nil until the messaging feature writes
// them; that feature does not live in this service.
type Chat struct {
	ID            string      `bson:"_id,omitempty" json:"id"`
	Type          string      `bson:"type" json:"type"`
	Participants  []string    `bson:"participants" json:"participants"`
	Context       ChatContext `bson:"context" json:"context"`
	LastMessage   *string     `bson:"lastMessage" json:"lastMessage"`
	LastMessageAt *time.Time  `bson:"lastMessageAt" json:"lastMessageAt"`
	CreatedAt     time.Time   `bson:"createdAt" json:"createdAt"`
}
