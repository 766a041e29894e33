package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Sheets   SheetsConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Elastic  ElasticsearchConfig
	Currency CurrencyConfig
	Order    OrderConfig
	Carousel CarouselConfig
}

type ServerConfig struct {
	AppEnv   string
	HTTPPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SheetsConfig struct {
	SpreadsheetID  string
	APIKey         string
	ProductRange   string
	DiscountRange  string
	CategoryRange  string
	EventRange     string
	ReloadInterval time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type ElasticsearchConfig struct {
	Addresses []string
	Username  string
	Password  string
}

type CurrencyConfig struct {
	// Multiplier from the base currency (USD) to the secondary display
	// currency (Cambodian riel). Presentational only, never stored.
	KHRRate float64
}

type OrderConfig struct {
	TelegramRecipient string
	OpenHour          int
	CloseHour         int
}

type CarouselConfig struct {
	SettleDelay      time.Duration
	AutoplayInterval time.Duration
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			HTTPPort: getEnv("HTTP_PORT", ":8080"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:  getEnv("SHEETS_SPREADSHEET_ID", ""),
			APIKey:         getEnv("SHEETS_API_KEY", ""),
			ProductRange:   getEnv("SHEETS_PRODUCT_RANGE", "products!A:J"),
			DiscountRange:  getEnv("SHEETS_DISCOUNT_RANGE", "discounts!A:F"),
			CategoryRange:  getEnv("SHEETS_CATEGORY_RANGE", "categories!A:C"),
			EventRange:     getEnv("SHEETS_EVENT_RANGE", "events!A:D"),
			ReloadInterval: getEnvDuration("SHEETS_RELOAD_INTERVAL", 5*time.Minute),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_TOPIC_ORDERS", "orders.events"),
		},
		Elastic: ElasticsearchConfig{
			Addresses: getEnvSlice("ELASTICSEARCH_ADDRESSES", []string{"http://localhost:9200"}),
			Username:  getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:  getEnv("ELASTICSEARCH_PASSWORD", ""),
		},
		Currency: CurrencyConfig{
			KHRRate: getEnvFloat("CURRENCY_KHR_RATE", 4100),
		},
		Order: OrderConfig{
			TelegramRecipient: getEnv("ORDER_TELEGRAM_RECIPIENT", "daroscoffee"),
			OpenHour:          getEnvInt("ORDER_OPEN_HOUR", 6),
			CloseHour:         getEnvInt("ORDER_CLOSE_HOUR", 21),
		},
		Carousel: CarouselConfig{
			SettleDelay:      getEnvDuration("CAROUSEL_SETTLE_DELAY", 700*time.Millisecond),
			AutoplayInterval: getEnvDuration("CAROUSEL_AUTOPLAY_INTERVAL", 5*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.Split(value, ",")
	}
	return fallback
}
