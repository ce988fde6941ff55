package config

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	JWT       JWTConfig
	MinIO     MinIOConfig
	Kafka     KafkaConfig
	Push      PushConfig
	Messaging MessagingConfig
	Log       LogConfig
}

var (
	ConfigInstance *Config
	once           sync.Once
)

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Driver   string // postgres | mysql
	URI      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	URI          string
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	MinIdleConns int
}

type JWTConfig struct {
	Secret         string
	ExpirationTime time.Duration
}

type MinIOConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	UploadTimeout time.Duration
}

type KafkaConfig struct {
	Brokers       []string
	PushTopic     string
	ConsumerGroup string
}

type PushConfig struct {
	BaseURL      string
	AccessToken  string
	Timeout      time.Duration
	ReceiptDelay time.Duration
}

type MessagingConfig struct {
	EditWindow       time.Duration
	DedupTTL         time.Duration
	PresenceBackend  string // memory | redis
	PresenceTTL      time.Duration
	DeliveryMode     string // inline | outbox
	InternalKey      string
	OutboxPollPeriod time.Duration
	OutboxBatchSize  int
	OutboxMaxAttempt int
}

type LogConfig struct {
	Level  string
	Format string
}

func LoadConfig() (*Config, error) {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			slog.Debug("No .env file found, using environment variables")
		}

		viper.SetDefault("SERVER_HOST", "")
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_READ_TIMEOUT", 30*time.Second)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 30*time.Second)
		viper.SetDefault("SERVER_IDLE_TIMEOUT", 60*time.Second)
		viper.SetDefault("ALLOWED_ORIGINS", "")
		viper.SetDefault("DB_DRIVER", "postgres")
		viper.SetDefault("POSTGRES_USER", "postgres")
		viper.SetDefault("POSTGRES_PASSWORD", "password")
		viper.SetDefault("POSTGRES_HOST", "localhost")
		viper.SetDefault("POSTGRES_PORT", "5432")
		viper.SetDefault("POSTGRES_DB", "rental_chat")
		viper.SetDefault("POSTGRES_SSLMODE", "disable")
		viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
		viper.SetDefault("MONGO_DB", "rental_chat")
		viper.SetDefault("MONGO_CONNECT_TIMEOUT", 10*time.Second)
		viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
		viper.SetDefault("REDIS_MAX_RETRIES", 3)
		viper.SetDefault("REDIS_POOL_SIZE", 100)
		viper.SetDefault("REDIS_MIN_IDLE_CONNS", 10)
		viper.SetDefault("REDIS_DIAL_TIMEOUT", 5*time.Second)
		viper.SetDefault("REDIS_READ_TIMEOUT", 3*time.Second)
		viper.SetDefault("REDIS_WRITE_TIMEOUT", 3*time.Second)
		viper.SetDefault("JWT_SECRET", "secret")
		viper.SetDefault("JWT_EXPIRE", "24h")
		viper.SetDefault("MINIO_ENDPOINT", "localhost:9000")
		viper.SetDefault("MINIO_BUCKET", "message-images")
		viper.SetDefault("MINIO_USE_SSL", false)
		viper.SetDefault("MINIO_UPLOAD_TIMEOUT", 60*time.Second)
		viper.SetDefault("KAFKA_BROKERS", "localhost:9092")
		viper.SetDefault("KAFKA_PUSH_TOPIC", "push.intents")
		viper.SetDefault("KAFKA_CONSUMER_GROUP", "push-delivery")
		viper.SetDefault("EXPO_PUSH_URL", "https://exp.host/--/api/v2")
		viper.SetDefault("EXPO_TIMEOUT", 10*time.Second)
		viper.SetDefault("EXPO_RECEIPT_DELAY", 5*time.Second)
		viper.SetDefault("MESSAGE_EDIT_WINDOW", 20*time.Minute)
		viper.SetDefault("PUSH_DEDUP_TTL", 10*time.Minute)
		viper.SetDefault("PRESENCE_BACKEND", "redis")
		viper.SetDefault("PRESENCE_TTL", 2*time.Minute)
		viper.SetDefault("PUSH_DELIVERY_MODE", "inline")
		viper.SetDefault("INTERNAL_API_KEY", "")
		viper.SetDefault("OUTBOX_POLL_PERIOD", 2*time.Second)
		viper.SetDefault("OUTBOX_BATCH_SIZE", 100)
		viper.SetDefault("OUTBOX_MAX_ATTEMPTS", 10)
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("LOG_FORMAT", "text")
		viper.AutomaticEnv()

		ConfigInstance = &Config{
			Server: ServerConfig{
				Host:           viper.GetString("SERVER_HOST"),
				Port:           viper.GetString("SERVER_PORT"),
				ReadTimeout:    viper.GetDuration("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetDuration("SERVER_WRITE_TIMEOUT"),
				IdleTimeout:    viper.GetDuration("SERVER_IDLE_TIMEOUT"),
				AllowedOrigins: splitList(viper.GetString("ALLOWED_ORIGINS")),
			},
			Database: DatabaseConfig{
				Driver:   viper.GetString("DB_DRIVER"),
				URI:      viper.GetString("DATABASE_URL"),
				Host:     viper.GetString("POSTGRES_HOST"),
				Port:     viper.GetString("POSTGRES_PORT"),
				User:     viper.GetString("POSTGRES_USER"),
				Password: viper.GetString("POSTGRES_PASSWORD"),
				DBName:   viper.GetString("POSTGRES_DB"),
				SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
			},
			Mongo: MongoConfig{
				URI:            viper.GetString("MONGO_URI"),
				Database:       viper.GetString("MONGO_DB"),
				ConnectTimeout: viper.GetDuration("MONGO_CONNECT_TIMEOUT"),
			},
			Redis: RedisConfig{
				URI:          viper.GetString("REDIS_URL"),
				MaxRetries:   viper.GetInt("REDIS_MAX_RETRIES"),
				DialTimeout:  viper.GetDuration("REDIS_DIAL_TIMEOUT"),
				ReadTimeout:  viper.GetDuration("REDIS_READ_TIMEOUT"),
				WriteTimeout: viper.GetDuration("REDIS_WRITE_TIMEOUT"),
				PoolSize:     viper.GetInt("REDIS_POOL_SIZE"),
				MinIdleConns: viper.GetInt("REDIS_MIN_IDLE_CONNS"),
			},
			JWT: JWTConfig{
				Secret:         viper.GetString("JWT_SECRET"),
				ExpirationTime: viper.GetDuration("JWT_EXPIRE"),
			},
			MinIO: MinIOConfig{
				Endpoint:      viper.GetString("MINIO_ENDPOINT"),
				AccessKey:     viper.GetString("MINIO_ACCESS_KEY"),
				SecretKey:     viper.GetString("MINIO_SECRET_KEY"),
				Bucket:        viper.GetString("MINIO_BUCKET"),
				UseSSL:        viper.GetBool("MINIO_USE_SSL"),
				UploadTimeout: viper.GetDuration("MINIO_UPLOAD_TIMEOUT"),
			},
			Kafka: KafkaConfig{
				Brokers:       splitList(viper.GetString("KAFKA_BROKERS")),
				PushTopic:     viper.GetString("KAFKA_PUSH_TOPIC"),
				ConsumerGroup: viper.GetString("KAFKA_CONSUMER_GROUP"),
			},
			Push: PushConfig{
				BaseURL:      viper.GetString("EXPO_PUSH_URL"),
				AccessToken:  viper.GetString("EXPO_ACCESS_TOKEN"),
				Timeout:      viper.GetDuration("EXPO_TIMEOUT"),
				ReceiptDelay: viper.GetDuration("EXPO_RECEIPT_DELAY"),
			},
			Messaging: MessagingConfig{
				EditWindow:       viper.GetDuration("MESSAGE_EDIT_WINDOW"),
				DedupTTL:         viper.GetDuration("PUSH_DEDUP_TTL"),
				PresenceBackend:  viper.GetString("PRESENCE_BACKEND"),
				PresenceTTL:      viper.GetDuration("PRESENCE_TTL"),
				DeliveryMode:     viper.GetString("PUSH_DELIVERY_MODE"),
				InternalKey:      viper.GetString("INTERNAL_API_KEY"),
				OutboxPollPeriod: viper.GetDuration("OUTBOX_POLL_PERIOD"),
				OutboxBatchSize:  viper.GetInt("OUTBOX_BATCH_SIZE"),
				OutboxMaxAttempt: viper.GetInt("OUTBOX_MAX_ATTEMPTS"),
			},
			Log: LogConfig{
				Level:  viper.GetString("LOG_LEVEL"),
				Format: viper.GetString("LOG_FORMAT"),
			},
		}
	})

	return ConfigInstance, nil
}

// PostgresDSN builds a DSN from the individual parts when DATABASE_URL is unset.
func (d DatabaseConfig) PostgresDSN() string {
	if d.URI != "" {
		return d.URI
	}
	return "host=" + d.Host + " user=" + d.User + " password=" + d.Password +
		" dbname=" + d.DBName + " port=" + d.Port + " sslmode=" + d.SSLMode
}

// MySQLDSN builds a go-sql-driver DSN from the individual parts.
func (d DatabaseConfig) MySQLDSN() string {
	if d.URI != "" {
		return d.URI
	}
	return d.User + ":" + d.Password + "@tcp(" + d.Host + ":" + d.Port + ")/" + d.DBName +
		"?charset=utf8mb4&parseTime=True&loc=Local"
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
