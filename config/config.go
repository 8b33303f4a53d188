package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	Redis      Redis
	Statistics Statistics
	Progress   Progress
	JWTSecret  string
}

type Server struct {
	Port string
}
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Redis is optional; an empty Addr disables the dashboard report cache.
type Redis struct {
	Addr      string
	Password  string
	ReportTTL int
}

type Statistics struct {
	Enabled bool
}

type Progress struct {
	// CompleteAllParents marks every ancestor step complete after a quiz
	// attempt instead of only the immediate parent.
	CompleteAllParents bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.ReportTTL = viper.GetInt("REDIS_REPORT_TTL")

	config.Statistics.Enabled = viper.GetBool("STATISTICS_ENABLED")
	config.Progress.CompleteAllParents = viper.GetBool("PROGRESS_COMPLETE_ALL_PARENTS")

	config.JWTSecret = viper.GetString("JWT_SECRET")

	log.Info().Str("port", config.Server.Port).Str("db", config.Database.Name).Msg("Config loaded")
	return &config, nil
}
