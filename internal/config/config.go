package config

import "github.com/spf13/viper"

// Config holds every runtime setting, including the shift policy that the
// status evaluator and overtime calculator operate on. The policy lives here
// so the thresholds exist exactly once instead of as scattered literals.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"PORT"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`

	RedisAddr   string `mapstructure:"REDIS_ADDR"`
	KafkaBroker string `mapstructure:"KAFKA_BROKER"`

	JWTSecret string `mapstructure:"JWT_SECRET"`

	LogFile string `mapstructure:"LOG_FILE"`

	// Shift policy thresholds, in minutes.
	StandardWorkMinutes int `mapstructure:"STANDARD_WORK_MINUTES"`
	MaxBreakMinutes     int `mapstructure:"MAX_BREAK_MINUTES"`
}

// Load reads configuration from a .env file when present and from the
// environment otherwise. A missing config file is not an error.
func Load(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("STANDARD_WORK_MINUTES", 480)
	viper.SetDefault("MAX_BREAK_MINUTES", 50)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
