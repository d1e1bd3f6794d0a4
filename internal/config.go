package internal

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Token          string        `env:"TOKEN,required=true" validate:"required"`
	ChannelID      string        `env:"CHANNEL_ID,required=true" validate:"required,numeric"`
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel       string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	BufferSize     int           `env:"BUFFER_SIZE,default=64" validate:"gt=0"`
	StoreTimeout   time.Duration `env:"STORE_TIMEOUT,default=5s" validate:"gt=0"`
	MetricInterval time.Duration `env:"METRIC_INTERVAL,default=30s" validate:"gt=0"`
	GCInterval     time.Duration `env:"GC_INTERVAL,default=5m" validate:"gt=0"`
}

var validate = validator.New()

func (c Config) Validate() error {
	return validate.Struct(c)
}
