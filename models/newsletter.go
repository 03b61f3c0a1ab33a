package models

type Subscriber struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	Email        string `bson:"email" json:"email"`
	SubscribedAt int64  `bson:"subscribedAt,omitempty" json:"subscribedAt,omitempty"`
}

// MailLog records one newsletter send attempt, successful or not.
type MailLog struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Email     string `bson:"email" json:"email"`
	Subject   string `bson:"subject" json:"subject"`
	Status    string `bson:"status" json:"status"` // "sent" or "failed"
	Error     string `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"`
}

const (
	MailStatusSent   = "sent"
	MailStatusFailed = "failed"
)
