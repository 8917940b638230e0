package env

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

type Cfg struct {
	Port int `envconfig:"PORT" default:"8080"`

	MQUser string `envconfig:"MQ_USER" default:"guest"`
	MQPass string `envconfig:"MQ_PASSWORD" default:"guest"`
	MQHost string `envconfig:"MQ_HOST" default:"localhost"`
	MQPort int    `envconfig:"MQ_PORT" default:"5672"`

	RedisHost string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPass string `envconfig:"REDIS_PASSWORD"`
	RedisPort int    `envconfig:"REDIS_PORT" default:"6379"`

	Concurrency  int `envconfig:"CONSUMER_CONCURRENCY" default:"5"`
	MaxReconnect int `envconfig:"MQ_MAX_RECONNECT" default:"5"`

	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

func GetEnvCfg() Cfg {
	var cfg Cfg

	if err := envconfig.Process("APP", &cfg); err != nil {
		log.Fatal("parse environment variables: ", err)
	}

	return cfg
}
