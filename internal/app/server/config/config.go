package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = "localhost:8080"
	defaultDataPath   = "media_data.json"
	defaultUploadDir  = "screenshots"
	defaultLogLevel   = "info"
	defaultEnv        = EnvLocal
)

type Config struct {
	Env     string
	Server  server
	Storage storage
	Logger  logger
}

type server struct {
	RunAddress string
}

type storage struct {
	DataPath  string
	UploadDir string
}

type logger struct {
	LogLevel string
}

// MustLoad reads the server configuration from the environment, with an
// optional .env file layered underneath.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("DATA_PATH", defaultDataPath)
	viper.SetDefault("UPLOAD_DIR", defaultUploadDir)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("APP_ENV", defaultEnv)

	return &Config{
		Env: viper.GetString("APP_ENV"),
		Server: server{
			RunAddress: viper.GetString("RUN_ADDRESS"),
		},
		Storage: storage{
			DataPath:  viper.GetString("DATA_PATH"),
			UploadDir: viper.GetString("UPLOAD_DIR"),
		},
		Logger: logger{
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
	}
}
