package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	MediaRoot        string `env:"MEDIA_ROOT" envDefault:"media"`
	CurrencyCode     string `env:"CURRENCY_CODE" envDefault:"TZS"`
	Kafka            Kafka
}

type Kafka struct {
	Enabled                bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers                []string `env:"KAFKA_BROKERS"`
	ConsumerID             string   `env:"KAFKA_CONSUMER_ID"`
	EmployeeCreatedTopic   string   `env:"KAFKA_EMPLOYEE_CREATED_TOPIC" envDefault:"employee.created"`
	DocumentGeneratedTopic string   `env:"KAFKA_DOCUMENT_GENERATED_TOPIC" envDefault:"document.generated"`
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
