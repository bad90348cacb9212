package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort               int           `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel               string        `env:"LOG_LEVEL" envDefault:"debug"`
	LogFormat              string        `env:"LOG_FORMAT" envDefault:"json"`
	PostgresDSN            string        `env:"POSTGRES_DSN"`
	PostgresMaxConns       int32         `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	AuthServiceURL         string        `env:"AUTH_SERVICE_URL"`
	AuthRetryAttempts      int           `env:"AUTH_RETRY_ATTEMPTS" envDefault:"2"`
	BillsAPIURL            string        `env:"BILLS_API_URL" envDefault:"http://localhost:8080"`
	MaxUploadSize          int64         `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"`
	DraftTTL               time.Duration `env:"DRAFT_TTL" envDefault:"24h"`
	JobPurgeDraftsInterval time.Duration `env:"JOB_PURGE_DRAFTS_INTERVAL" envDefault:"1h"`
	S3                     S3
	Kafka                  Kafka
	Mailer                 Mailer
}

type S3 struct {
	Endpoint  string `env:"S3_ENDPOINT"`
	Bucket    string `env:"S3_BUCKET"`
	Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	PublicURL string `env:"S3_PUBLIC_URL"`
}

type Kafka struct {
	Brokers                []string `env:"KAFKA_BROKERS"`
	ConsumerID             string   `env:"KAFKA_CONSUMER_ID"`
	BillSubmittedTopic     string   `env:"KAFKA_BILL_SUBMITTED_TOPIC" envDefault:"bill_submitted"`
	BillStatusChangedTopic string   `env:"KAFKA_BILL_STATUS_CHANGED_TOPIC" envDefault:"bill_status_changed"`
}

type Mailer struct {
	Enabled  bool   `env:"MAILER_ENABLED" envDefault:"false"`
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"465"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Billed"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
