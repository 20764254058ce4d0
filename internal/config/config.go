// backend-go/internal/config/config.go
package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Dataset  DatasetConfig
	Sim      SimConfig
	Cache    CacheConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	LogLevel       string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DatasetConfig selects where the masked dataset comes from: a local CSV,
// a Postgres table seeded by cmd/seed, an S3-compatible bucket, or a
// Google Drive folder of masked exports.
type DatasetConfig struct {
	Source               string // "csv", "postgres", "s3", "drive"
	CSVPath              string
	DataDir              string
	S3                   S3Config
	DriveCredentialsJSON string
	DriveFolder          string
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Object    string
	UseSSL    bool
}

// SimConfig carries defaults applied when a simulate request omits a knob.
type SimConfig struct {
	HorizonWeeks      int
	LeadTimeWeeks     int
	ReviewPeriodWeeks int
	ServiceLevel      float64
	SafetyFactor      float64
	NumSimulations    int
	Seed              int64
	Workers           int
}

type CacheConfig struct {
	Enabled          bool
	RedisURL         string
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	RedisDB          int
	ResultTTLSeconds int
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("DB_HOST", "localhost")
		viper.SetDefault("DB_PORT", "5432")
		viper.SetDefault("DB_USER", "postgres")
		viper.SetDefault("DB_PASSWORD", "postgres")
		viper.SetDefault("DB_NAME", "inventorysim")
		viper.SetDefault("DB_SSLMODE", "disable")
		viper.SetDefault("DATASET_SOURCE", "csv")
		viper.SetDefault("DATASET_CSV_PATH", "./data/masked_merged_sample.csv")
		viper.SetDefault("DATASET_DATA_DIR", "./data")
		viper.SetDefault("DATASET_S3_ENDPOINT", "")
		viper.SetDefault("DATASET_S3_ACCESS_KEY", "")
		viper.SetDefault("DATASET_S3_SECRET_KEY", "")
		viper.SetDefault("DATASET_S3_BUCKET", "")
		viper.SetDefault("DATASET_S3_OBJECT", "masked_merged_sample.csv")
		viper.SetDefault("DATASET_S3_USE_SSL", true)
		viper.SetDefault("DATASET_DRIVE_CREDENTIALS_JSON", "")
		viper.SetDefault("DATASET_DRIVE_FOLDER", "")
		viper.SetDefault("SIM_HORIZON_WEEKS", 26)
		viper.SetDefault("SIM_LEAD_TIME_WEEKS", 8)
		viper.SetDefault("SIM_REVIEW_PERIOD_WEEKS", 1)
		viper.SetDefault("SIM_SERVICE_LEVEL", 0.95)
		viper.SetDefault("SIM_SAFETY_FACTOR", 0.0)
		viper.SetDefault("SIM_NUM_SIMULATIONS", 1000)
		viper.SetDefault("SIM_SEED", 42)
		viper.SetDefault("SIM_WORKERS", 0)
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_RESULT_TTL_SECONDS", 300)

		viper.AutomaticEnv()

		ensureDir(viper.GetString("DATASET_DATA_DIR"))

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				LogLevel:       viper.GetString("LOG_LEVEL"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASSWORD"),
				DBName:   viper.GetString("DB_NAME"),
				SSLMode:  viper.GetString("DB_SSLMODE"),
			},
			Dataset: DatasetConfig{
				Source:  viper.GetString("DATASET_SOURCE"),
				CSVPath: viper.GetString("DATASET_CSV_PATH"),
				DataDir: viper.GetString("DATASET_DATA_DIR"),
				S3: S3Config{
					Endpoint:  viper.GetString("DATASET_S3_ENDPOINT"),
					AccessKey: viper.GetString("DATASET_S3_ACCESS_KEY"),
					SecretKey: viper.GetString("DATASET_S3_SECRET_KEY"),
					Bucket:    viper.GetString("DATASET_S3_BUCKET"),
					Object:    viper.GetString("DATASET_S3_OBJECT"),
					UseSSL:    viper.GetBool("DATASET_S3_USE_SSL"),
				},
				DriveCredentialsJSON: viper.GetString("DATASET_DRIVE_CREDENTIALS_JSON"),
				DriveFolder:          viper.GetString("DATASET_DRIVE_FOLDER"),
			},
			Sim: SimConfig{
				HorizonWeeks:      viper.GetInt("SIM_HORIZON_WEEKS"),
				LeadTimeWeeks:     viper.GetInt("SIM_LEAD_TIME_WEEKS"),
				ReviewPeriodWeeks: viper.GetInt("SIM_REVIEW_PERIOD_WEEKS"),
				ServiceLevel:      viper.GetFloat64("SIM_SERVICE_LEVEL"),
				SafetyFactor:      viper.GetFloat64("SIM_SAFETY_FACTOR"),
				NumSimulations:    viper.GetInt("SIM_NUM_SIMULATIONS"),
				Seed:              viper.GetInt64("SIM_SEED"),
				Workers:           viper.GetInt("SIM_WORKERS"),
			},
			Cache: CacheConfig{
				Enabled:          viper.GetBool("CACHE_ENABLED"),
				RedisURL:         viper.GetString("REDIS_URL"),
				RedisHost:        viper.GetString("REDIS_HOST"),
				RedisPort:        viper.GetString("REDIS_PORT"),
				RedisPassword:    viper.GetString("REDIS_PASSWORD"),
				RedisDB:          viper.GetInt("REDIS_DB"),
				ResultTTLSeconds: viper.GetInt("CACHE_RESULT_TTL_SECONDS"),
			},
		}
	})

	return instance
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
