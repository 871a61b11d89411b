package notifications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"terra-carbon/market-portal/market-portal-backend/internal/admin"
	"terra-carbon/market-portal/market-portal-backend/internal/verification"
)

// Service composes and dispatches notifications for portal events. It
// implements the notifier interfaces declared by the admin and verification
// packages.
type Service struct {
	db         *gorm.DB
	email      EmailChannel
	sms        SMSChannel
	hub        *Hub
	adminInbox string
	logger     *zap.Logger
}

// NewService creates a notification service
func NewService(db *gorm.DB, email EmailChannel, sms SMSChannel, hub *Hub, adminInbox string, logger *zap.Logger) (*Service, error) {
	if err := db.AutoMigrate(&SentNotification{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Service{
		db:         db,
		email:      email,
		sms:        sms,
		hub:        hub,
		adminInbox: adminInbox,
		logger:     logger,
	}, nil
}

// ProjectsUpdated notifies about a completed bulk admin action. It is called
// once per batch with the ids that were actually changed.
func (s *Service) ProjectsUpdated(ctx context.Context, action admin.ProjectAction, projectIDs []string, actor string) error {
	if len(projectIDs) == 0 {
		return nil
	}

	subject := fmt.Sprintf("Projects %sd: %d project(s)", action, len(projectIDs))
	body := fmt.Sprintf("%s applied %q to projects %s", actor, action, strings.Join(projectIDs, ", "))

	s.hub.Broadcast(WebSocketMessage{
		Type:      "project_update",
		Category:  "admin_action",
		Subject:   subject,
		Body:      body,
		Timestamp: time.Now(),
		Data: map[string]any{
			"action":      action,
			"project_ids": projectIDs,
			"actor":       actor,
		},
	})

	return s.deliver(ctx, "admin_action", subject, body, action == admin.ActionDelete)
}

// DecisionMade notifies about a completed verification decision
func (s *Service) DecisionMade(ctx context.Context, record verification.DecisionRecord, projectName string) error {
	subject := fmt.Sprintf("Project %s %s", projectName, record.Decision)
	body := fmt.Sprintf("%s marked %q as %s: %s", record.DecidedBy, projectName, record.Decision, record.Reason)

	s.hub.Broadcast(WebSocketMessage{
		Type:      "verification_decision",
		Category:  "verification",
		Subject:   subject,
		Body:      body,
		Timestamp: time.Now(),
		Data: map[string]any{
			"project_id": record.ProjectID,
			"decision":   record.Decision,
			"decided_by": record.DecidedBy,
		},
	})

	return s.deliver(ctx, "verification", subject, body, record.Decision == verification.DecisionReject)
}

// deliver sends through the email channel, and the SMS channel for urgent
// events, recording each attempt. A channel failure is recorded and returned
// but never blocks the other channels.
func (s *Service) deliver(ctx context.Context, category, subject, body string, urgent bool) error {
	var firstErr error

	if err := s.email.SendEmail(ctx, s.adminInbox, subject, body); err != nil {
		s.logger.Warn("email delivery failed", zap.String("subject", subject), zap.Error(err))
		s.record(category, subject, body, ChannelEmail, err)
		firstErr = err
	} else {
		s.record(category, subject, body, ChannelEmail, nil)
	}

	if urgent {
		if err := s.sms.SendSMS(ctx, subject); err != nil {
			s.logger.Warn("sms delivery failed", zap.String("subject", subject), zap.Error(err))
			s.record(category, subject, body, ChannelSMS, err)
			if firstErr == nil {
				firstErr = err
			}
		} else {
			s.record(category, subject, body, ChannelSMS, nil)
		}
	}

	return firstErr
}

func (s *Service) record(category, subject, body string, channel Channel, sendErr error) {
	rec := SentNotification{
		Category:  category,
		Subject:   subject,
		Body:      body,
		Channel:   channel,
		Status:    DeliverySent,
		CreatedAt: time.Now(),
	}
	if sendErr != nil {
		rec.Status = DeliveryFailed
		rec.Error = sendErr.Error()
	}
	if err := s.db.Create(&rec).Error; err != nil {
		s.logger.Warn("failed to record notification", zap.Error(err))
	}
}

// RecentNotifications lists the most recent sent notifications
func (s *Service) RecentNotifications(ctx context.Context, limit int) ([]SentNotification, error) {
	if limit <= 0 {
		limit = 50
	}
	var records []SentNotification
	if err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return records, nil
}
