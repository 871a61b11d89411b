package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents the application configuration
type Config struct {
	Server        ServerConfig        `json:"server"`
	Database      DatabaseConfig      `json:"database"`
	Content       ContentConfig       `json:"content"`
	Storage       StorageConfig       `json:"storage"`
	Notifications NotificationsConfig `json:"notifications"`
	Webhooks      WebhooksConfig      `json:"webhooks"`
	Logging       LoggingConfig       `json:"logging"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host         string        `json:"host"`
	Port         int           `json:"port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Host           string        `json:"host"`
	Port           int           `json:"port"`
	User           string        `json:"user"`
	Password       string        `json:"password"`
	DBName         string        `json:"db_name"`
	SSLMode        string        `json:"ssl_mode"`
	MaxConnections int           `json:"max_connections"`
	MaxIdleConns   int           `json:"max_idle_conns"`
	MaxLifetime    time.Duration `json:"max_lifetime"`
}

// ContentConfig configures the blog/CMS client
type ContentConfig struct {
	BaseURL        string        `json:"base_url"`
	MockMode       bool          `json:"mock_mode"`
	RevalidateTime time.Duration `json:"revalidate_time"`
	RequestTimeout time.Duration `json:"request_timeout"`
}

// StorageConfig configures document storage
type StorageConfig struct {
	Region         string `json:"region"`
	DocumentBucket string `json:"document_bucket"`
	MockMode       bool   `json:"mock_mode"`
}

// NotificationsConfig configures outbound notification channels
type NotificationsConfig struct {
	SenderEmail string `json:"sender_email"`
	SMSTopicARN string `json:"sms_topic_arn"`
	MockMode    bool   `json:"mock_mode"`
}

// WebhooksConfig configures the webhook retry worker
type WebhooksConfig struct {
	PollInterval time.Duration `json:"poll_interval"`
	CronSpec     string        `json:"cron_spec"`
}

// LoggingConfig
type LoggingConfig struct {
	Level string `json:"level"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Default config
	config := &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    os.Getenv("USER"),
			DBName:  "market_portal",
			SSLMode: "disable",
		},
		Content: ContentConfig{
			RevalidateTime: time.Hour,
			RequestTimeout: 10 * time.Second,
			MockMode:       true,
		},
		Storage: StorageConfig{
			Region:         "us-east-1",
			DocumentBucket: "market-portal-documents",
			MockMode:       true,
		},
		Notifications: NotificationsConfig{
			MockMode: true,
		},
		Webhooks: WebhooksConfig{
			PollInterval: 30 * time.Second,
			CronSpec:     "*/1 * * * *",
		},
	}

	// Load from file if exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	overrideWithEnv(config)

	return config, nil
}

func overrideWithEnv(config *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if dbHost := os.Getenv("DATABASE_HOST"); dbHost != "" {
		config.Database.Host = dbHost
	}
	if dbUser := os.Getenv("DATABASE_USER"); dbUser != "" {
		config.Database.User = dbUser
	}
	if dbPass := os.Getenv("DATABASE_PASSWORD"); dbPass != "" {
		config.Database.Password = dbPass
	}
	if dbName := os.Getenv("DATABASE_DBNAME"); dbName != "" {
		config.Database.DBName = dbName
	}
	if baseURL := os.Getenv("CONTENT_BASE_URL"); baseURL != "" {
		config.Content.BaseURL = baseURL
		config.Content.MockMode = false
	}
	if mock := os.Getenv("CONTENT_MOCK_MODE"); mock != "" {
		config.Content.MockMode = mock == "true"
	}
	if region := os.Getenv("AWS_REGION"); region != "" {
		config.Storage.Region = region
	}
	if bucket := os.Getenv("DOCUMENT_BUCKET"); bucket != "" {
		config.Storage.DocumentBucket = bucket
		config.Storage.MockMode = false
	}
	if sender := os.Getenv("NOTIFICATION_SENDER_EMAIL"); sender != "" {
		config.Notifications.SenderEmail = sender
		config.Notifications.MockMode = false
	}
	if topic := os.Getenv("NOTIFICATION_SMS_TOPIC_ARN"); topic != "" {
		config.Notifications.SMSTopicARN = topic
	}
}

// GetDatabaseURL returns the database connection string
func (c *DatabaseConfig) GetDatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// GetServerAddr returns the server address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
