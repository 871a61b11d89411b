package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Channel identifies a delivery channel
type Channel string

const (
	ChannelEmail     Channel = "email"
	ChannelSMS       Channel = "sms"
	ChannelWebSocket Channel = "websocket"
)

// DeliveryStatus tracks the outcome of a single channel delivery
type DeliveryStatus string

const (
	DeliverySent   DeliveryStatus = "sent"
	DeliveryFailed DeliveryStatus = "failed"
)

// SentNotification is the persisted record of an outbound notification
type SentNotification struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Category  string         `gorm:"not null;index" json:"category"`
	Subject   string         `gorm:"not null" json:"subject"`
	Body      string         `gorm:"type:text" json:"body"`
	Channel   Channel        `gorm:"not null" json:"channel"`
	Status    DeliveryStatus `gorm:"not null" json:"status"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// TableName overrides the default table name
func (SentNotification) TableName() string {
	return "sent_notifications"
}

// WebSocketMessage is the envelope pushed to connected dashboard clients
type WebSocketMessage struct {
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}
