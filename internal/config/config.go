package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port     string
	BasePath string
	LogLevel string
	// APIKeyHash is a bcrypt hash of the API key; empty disables API key auth
	APIKeyHash string
}

// OpenAIConfig holds settings for the LLM and text-to-speech APIs
type OpenAIConfig struct {
	APIKey       string
	BaseURL      string
	ScriptModel  string
	OutlineModel string
	TTSModel     string
	Voice        string
	Speed        float64
	Timeout      time.Duration
}

// ServiceAccount holds the Google service account credential fields
type ServiceAccount struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
	UniverseDomain          string `json:"universe_domain,omitempty"`
}

// JSON returns the credential in the standard service account key file format
func (s ServiceAccount) JSON() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal service account: %w", err)
	}
	return data, nil
}

// DriveConfig holds Google Drive settings
type DriveConfig struct {
	ServiceAccount ServiceAccount
	// UploadChunkSize above which uploads switch to the resumable protocol
	UploadChunkSize int
}

// RetrievalConfig holds settings for the lecture retrieval service
type RetrievalConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DatabaseConfig holds the optional postgres settings for run history
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Enabled reports whether enough settings are present to connect
func (d DatabaseConfig) Enabled() bool {
	return d.Host != "" && d.Port != "" && d.User != "" && d.Password != "" && d.Name != ""
}

// DSN builds the postgres connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// RabbitMQConfig holds the optional RabbitMQ settings for completion events
type RabbitMQConfig struct {
	Host  string
	Port  string
	User  string
	Pass  string
	Queue string
}

// URL builds the AMQP connection URL
func (r RabbitMQConfig) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", r.User, r.Pass, r.Host, r.Port)
}

// Config is the process-wide configuration, loaded once at start-up
type Config struct {
	Server           ServerConfig
	OpenAI           OpenAIConfig
	Drive            DriveConfig
	Retrieval        RetrievalConfig
	Database         DatabaseConfig
	RabbitMQ         RabbitMQConfig
	SentryDSN        string
	LogRetentionDays int
}

// Load builds the configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       getEnv("PORT", "8080"),
			BasePath:   getEnv("BASE_PATH", "/"),
			LogLevel:   getEnv("LOG_LEVEL", "info"),
			APIKeyHash: getEnv("API_KEY_HASH", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey:       getEnv("OPENAI_API_KEY", ""),
			BaseURL:      getEnv("OPENAI_BASE_URL", ""),
			ScriptModel:  getEnv("LLM_MODEL", "gpt-4o-mini"),
			OutlineModel: getEnv("OUTLINE_MODEL", "gpt-3.5-turbo"),
			TTSModel:     getEnv("TTS_MODEL", "tts-1-hd"),
			Voice:        getEnv("TTS_VOICE", "nova"),
			Speed:        getEnvAsFloat("TTS_SPEED", 0.97),
			Timeout:      getEnvAsDuration("OPENAI_TIMEOUT", 5*time.Minute),
		},
		Drive: DriveConfig{
			ServiceAccount: ServiceAccount{
				Type:                    getEnv("SERVICE_ACCOUNT_TYPE", "service_account"),
				ProjectID:               getEnv("PROJECT_ID", ""),
				PrivateKeyID:            getEnv("PRIVATE_KEY_ID", ""),
				PrivateKey:              NormalizePrivateKey(getEnv("PRIVATE_KEY", "")),
				ClientEmail:             getEnv("CLIENT_EMAIL", ""),
				ClientID:                getEnv("CLIENT_ID", ""),
				AuthURI:                 getEnv("AUTH_URI", "https://accounts.google.com/o/oauth2/auth"),
				TokenURI:                getEnv("TOKEN_URI", "https://oauth2.googleapis.com/token"),
				AuthProviderX509CertURL: getEnv("AUTH_PROVIDER_X509_CERT_URL", "https://www.googleapis.com/oauth2/v1/certs"),
				ClientX509CertURL:       getEnv("CLIENT_X509_CERT_URL", ""),
				UniverseDomain:          getEnv("UNIVERSE_DOMAIN", "googleapis.com"),
			},
			UploadChunkSize: getEnvAsInt("DRIVE_UPLOAD_CHUNK_SIZE", 8<<20),
		},
		Retrieval: RetrievalConfig{
			BaseURL: getEnv("RETRIEVAL_SERVICE_URL", ""),
			Timeout: getEnvAsDuration("RETRIEVAL_TIMEOUT", 2*time.Minute),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", ""),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", ""),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RabbitMQ: RabbitMQConfig{
			Host:  getEnv("RABBITMQ_HOST", ""),
			Port:  getEnv("RABBITMQ_PORT", "5672"),
			User:  getEnv("RABBITMQ_USER", "guest"),
			Pass:  getEnv("RABBITMQ_PASS", "guest"),
			Queue: getEnv("RABBITMQ_QUEUE", "lecture_content_generated"),
		},
		SentryDSN:        getEnv("SENTRY_DSN", ""),
		LogRetentionDays: getEnvAsInt("LOG_RETENTION_DAYS", 1),
	}
}

// Validate reports the settings required to serve generation requests
func (c *Config) Validate() error {
	var missing []string
	if c.OpenAI.APIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.Drive.ServiceAccount.ClientEmail == "" {
		missing = append(missing, "CLIENT_EMAIL")
	}
	if c.Drive.ServiceAccount.PrivateKey == "" {
		missing = append(missing, "PRIVATE_KEY")
	}
	if c.Retrieval.BaseURL == "" {
		missing = append(missing, "RETRIEVAL_SERVICE_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// NormalizePrivateKey turns an env-encoded PEM key back into its multi-line form
func NormalizePrivateKey(key string) string {
	key = strings.ReplaceAll(key, `\n`, "\n")
	return strings.Trim(key, `"'`)
}

// getEnv gets environment variable with fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
