package cmd

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/postgres"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost         string        `envconfig:"DB_HOST"          default:"localhost"`
	DBPort         string        `envconfig:"DB_PORT"          default:"5432"`
	DBUser         string        `envconfig:"DB_USER"          required:"true"`
	DBPassword     string        `envconfig:"DB_PASSWORD"`
	DBName         string        `envconfig:"DB_NAME"          required:"true"`
	DBSslMode      string        `envconfig:"DB_SSLMODE"       default:"disable"`
	DBQueryTimeout time.Duration `envconfig:"DB_QUERY_TIMEOUT" default:"5s"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL"    default:"168h"`

	KafkaHost              string `envconfig:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `envconfig:"KAFKA_ORDER_CHANGED_TOPIC" default:"order.changed"`
	OutboxBatchSize        int    `envconfig:"OUTBOX_BATCH_SIZE"         default:"100"`

	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     string `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser     string `envconfig:"SMTP_USER"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	SMTPFrom     string `envconfig:"SMTP_FROM" default:"no-reply@delivery.local"`

	OTPTTL                  time.Duration `envconfig:"OTP_TTL"                    default:"5m"`
	OTPMaxAttempts          int           `envconfig:"OTP_MAX_ATTEMPTS"           default:"5"`
	ProofRequiredOnDelivery bool          `envconfig:"PROOF_REQUIRED_ON_DELIVERY" default:"false"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Database() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

// KafkaBrokers splits KAFKA_HOST on commas. Empty means events stay in the outbox log only.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
