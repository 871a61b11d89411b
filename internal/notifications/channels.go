package notifications

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"
)

// EmailChannel delivers a notification by email
type EmailChannel interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SMSChannel delivers a notification by SMS broadcast
type SMSChannel interface {
	SendSMS(ctx context.Context, message string) error
}

type sesEmailChannel struct {
	client *sesv2.Client
	sender string
}

// NewSESEmailChannel creates an email channel backed by Amazon SES
func NewSESEmailChannel(ctx context.Context, region, sender string) (EmailChannel, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &sesEmailChannel{
		client: sesv2.NewFromConfig(cfg),
		sender: sender,
	}, nil
}

func (c *sesEmailChannel) SendEmail(ctx context.Context, to, subject, body string) error {
	_, err := c.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(c.sender),
		Destination: &sestypes.Destination{
			ToAddresses: []string{to},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

type snsSMSChannel struct {
	client   *sns.Client
	topicARN string
}

// NewSNSSMSChannel creates an SMS channel that publishes to an SNS topic
func NewSNSSMSChannel(ctx context.Context, region, topicARN string) (SMSChannel, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &snsSMSChannel{
		client:   sns.NewFromConfig(cfg),
		topicARN: topicARN,
	}, nil
}

func (c *snsSMSChannel) SendSMS(ctx context.Context, message string) error {
	_, err := c.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(c.topicARN),
		Message:  aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("failed to publish SMS: %w", err)
	}
	return nil
}

// mockEmailChannel logs instead of sending. Used in local development.
type mockEmailChannel struct {
	logger *zap.Logger
}

// NewMockEmailChannel creates a logging-only email channel
func NewMockEmailChannel(logger *zap.Logger) EmailChannel {
	return &mockEmailChannel{logger: logger}
}

func (c *mockEmailChannel) SendEmail(_ context.Context, to, subject, body string) error {
	c.logger.Info("mock email",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(body)))
	return nil
}

type mockSMSChannel struct {
	logger *zap.Logger
}

// NewMockSMSChannel creates a logging-only SMS channel
func NewMockSMSChannel(logger *zap.Logger) SMSChannel {
	return &mockSMSChannel{logger: logger}
}

func (c *mockSMSChannel) SendSMS(_ context.Context, message string) error {
	c.logger.Info("mock sms", zap.String("message", message))
	return nil
}
