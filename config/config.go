package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME"`
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Timezone string `envconfig:"TIMEZONE"`
		Platform string `envconfig:"PLATFORM" default:"com.jsm.restate"`
	} `envconfig:"APP"`

	Appwrite struct {
		Endpoint  string `envconfig:"ENDPOINT"`
		ProjectID string `envconfig:"PROJECT_ID"`

		DatabaseID string `envconfig:"DATABASE_ID"`

		Collections struct {
			Galleries  string `envconfig:"GALLERIES_COLLECTION_ID"`
			Reviews    string `envconfig:"REVIEWS_COLLECTION_ID"`
			Agents     string `envconfig:"AGENTS_COLLECTION_ID"`
			Properties string `envconfig:"PROPERTIES_COLLECTION_ID"`
			Bookings   string `envconfig:"BOOKINGS_COLLECTION_ID"`
		}

		BucketID string `envconfig:"BUCKET_ID"`
	} `envconfig:"APPWRITE"`

	OAuth struct {
		Provider      string `envconfig:"PROVIDER" default:"google"`
		ListenAddress string `envconfig:"LISTEN_ADDRESS" default:"127.0.0.1:48321"`
		CallbackPath  string `envconfig:"CALLBACK_PATH" default:"/callback"`
	} `envconfig:"OAUTH"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Client configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
