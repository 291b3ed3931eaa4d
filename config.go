package portfolio

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// SiteConfig holds all configuration for the portfolio server.
type SiteConfig struct {
	Name        string `env:"SITE_NAME" envDefault:"Portfolio"`
	URL         string `env:"SITE_URL" envDefault:"http://localhost:8000"`
	Description string `env:"SITE_DESCRIPTION"`
	Author      string `env:"SITE_AUTHOR" envDefault:"Benjamin Kyamoneka Mpey"`

	Addr                string `env:"ADDR" envDefault:":8000"`
	DatabasePath        string `env:"DATABASE_PATH" envDefault:"data/portfolio.db"`
	ContactDatabasePath string `env:"CONTACT_DATABASE_PATH" envDefault:"data/contact.db"`
	UploadsDir          string `env:"UPLOADS_DIR" envDefault:"uploads"`

	AdminUsername string        `env:"ADMIN_USERNAME"`
	AdminPassword string        `env:"ADMIN_PASSWORD"`
	TokenSecret   string        `env:"TOKEN_SECRET"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"12h"`

	PostCacheTTL time.Duration `env:"POST_CACHE_TTL" envDefault:"5m"`
}

// LoadConfig reads SiteConfig from the environment. A local .env file
// is honored when present, matching how the server has always been
// deployed.
func LoadConfig() (SiteConfig, error) {
	_ = godotenv.Load()
	var c SiteConfig
	err := env.Parse(&c)
	return c, err
}
