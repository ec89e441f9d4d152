package domain

import "time"

const CollectionNotifications = "notifications"

// NotificationType is a closed tag set; the message text is precomputed by
// the producer, not templated from the type on the reading side.
type NotificationType string

const (
	NotificationJobApplication      NotificationType = "job_application"
	NotificationPartnershipRequest  NotificationType = "partnership_request"
	NotificationApplicationApproved NotificationType = "application_approved"
	NotificationApplicationRejected NotificationType = "application_rejected"
	NotificationNewChat             NotificationType = "new_chat"
)

// Notification is addressed to exactly one user. Multi-recipient events
// create one record per recipient. Immutable except the isRead/readAt
// transition, which only ever goes false to true.
type Notification struct {
	ID               string           `bson:"_id,omitempty" json:"id"`
	UserID           string           `bson:"userId" json:"userId"`
	Type             NotificationType `bson:"type" json:"type"`
	FromUserID       string           `bson:"fromUserId" json:"fromUserId"`
	FromUserName     string           `bson:"fromUserName,omitempty" json:"fromUserName,omitempty"`
	FromUserPhotoURL string           `bson:"fromUserPhoto,omitempty" json:"fromUserPhoto,omitempty"`

	// Correlation fields, present only for the types that need them.
	JobID             string `bson:"jobId,omitempty" json:"jobId,omitempty"`
	JobTitle          string `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	OfferID           string `bson:"offerId,omitempty" json:"offerId,omitempty"`
	FromCommunityID   string `bson:"fromCommunityId,omitempty" json:"fromCommunityId,omitempty"`
	FromCommunityName string `bson:"fromCommunityName,omitempty" json:"fromCommunityName,omitempty"`
	ChatID            string `bson:"chatId,omitempty" json:"chatId,omitempty"`

	Message   string     `bson:"message" json:"message"`
	IsRead    bool       `bson:"isRead" json:"isRead"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	ReadAt    *time.Time `bson:"readAt,omitempty" json:"readAt,omitempty"`
}
