package config

import (
	"github.com/num30/config"
)

type Config struct {
	RunAddress   string   `default:":8080" envvar:"RUN_ADDR"`
	LogLevel     string   `default:"info" flag:"loglevel" envvar:"LOGLEVEL"`
	DB           Database `default:"{}"`
	RedisURL     string   `envvar:"REDIS_URL"`
	CacheExpiry  int      `default:"300" envvar:"CACHE_EXPIRY"`
	Locale       string   `default:"en" envvar:"LOCALE"`
	PageSize     int      `default:"100" envvar:"PRODUCT_PAGE_SIZE"`
	AssetBaseURL string   `default:"/assets" envvar:"ASSET_BASE_URL"`
	SeedDemo     bool     `default:"false" flag:"seed" envvar:"SEED_DEMO"`

	EditorSessionTTL int `default:"1800" envvar:"EDITOR_SESSION_TTL"`
}

type Database struct {
	Host     string `default:"localhost" validate:"required" envvar:"DB_HOST"`
	Port     int    `default:"5434" envvar:"DB_PORT"`
	Password string `default:"shop_db" validate:"required" envvar:"DB_PASS"`
	DbName   string `default:"shop_db" envvar:"DB_NAME"`
	Username string `default:"shop_db" envvar:"DB_USERNAME"`
}

func MustBuild(cfgFile string) *Config {
	var conf Config
	err := config.NewConfReader(cfgFile).Read(&conf)
	if err != nil {
		panic(err)
	}

	return &conf
}
