package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	Env      string
	LogLevel string

	// Notifier selects the status notification transport: kafka, rabbitmq or log.
	Notifier         string
	NotifyTimeout    time.Duration
	KafkaBrokers     string
	KafkaTopic       string
	RabbitMQURL      string
	RabbitMQExchange string

	PurgeSchedule  string
	PurgeBatchSize int
	BcryptCost     int
}

const (
	NotifierKafka    = "kafka"
	NotifierRabbitMQ = "rabbitmq"
	NotifierLog      = "log"
)

func (c Config) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf("0.0.0.0:%s", c.HTTPPort)
}
