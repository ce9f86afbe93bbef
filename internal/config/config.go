package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	SecretKey  string `yaml:"secret_key" env:"SECRET_KEY" env-required:"true"`
	HTTPServer `yaml:"http_server"`
	Database   Database `yaml:"database"`
	Mail       Mail     `yaml:"mail"`
	Uploads    Uploads  `yaml:"uploads"`
	Features   Features `yaml:"features"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"everlight"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Mail settings may be left empty; a booking is stored regardless of
// whether the confirmation can be sent.
type Mail struct {
	Host     string `yaml:"host" env:"MAIL_SERVER"`
	Port     int    `yaml:"port" env:"MAIL_PORT" env-default:"587"`
	UseTLS   bool   `yaml:"use_tls" env:"MAIL_USE_TLS" env-default:"true"`
	Username string `yaml:"username" env:"MAIL_USERNAME"`
	Password string `yaml:"password" env:"MAIL_PASSWORD"`
	From     string `yaml:"from" env:"MAIL_DEFAULT_SENDER"`
}

type Uploads struct {
	Dir     string `yaml:"dir" env:"UPLOAD_DIR" env-default:"static/uploads"`
	MaxSize int64  `yaml:"max_size" env:"MAX_UPLOAD_SIZE" env-default:"16777216"`
}

type Features struct {
	Gallery      bool `yaml:"gallery" env:"FEATURE_GALLERY" env-default:"true"`
	Testimonials bool `yaml:"testimonials" env:"FEATURE_TESTIMONIALS" env-default:"true"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
