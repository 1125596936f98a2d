package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	Telegram struct {
		Token       string
		AdminChatID int64 `mapstructure:"admin_chat_id"`
		Timeout     int
	} `mapstructure:"telegram"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Storage struct {
		Driver    string // memory | badger | postgres | redis
		KeyPrefix string `mapstructure:"key_prefix"`
		Badger    struct {
			Dir string
		} `mapstructure:"badger"`
		Postgres struct {
			DSN        string
			Migrations string
		} `mapstructure:"postgres"`
		Redis struct {
			Addr     string
			Password string
			DB       int
		} `mapstructure:"redis"`
	} `mapstructure:"storage"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Auth struct {
		Login        string
		PasswordHash string        `mapstructure:"password_hash"`
		JWTKey       string        `mapstructure:"jwt_key"`
		TokenTTL     time.Duration `mapstructure:"token_ttl"`
	} `mapstructure:"auth"`

	// Значения по умолчанию для схемы площадки, пока в хранилище нет снапшота
	Yard struct {
		Blocks   []string
		Bays     int
		Rows     int
		Tiers    int
		LCLBlock string `mapstructure:"lcl_block"`
	} `mapstructure:"yard"`

	EIR struct {
		CompanyName    string `mapstructure:"company_name"`
		CompanyAddress string `mapstructure:"company_address"`
		CompanyTaxID   string `mapstructure:"company_tax_id"`
		CompanyPhone   string `mapstructure:"company_phone"`
		TerminalCode   string `mapstructure:"terminal_code"`
		FooterNotes    string `mapstructure:"footer_notes"`
		LogoURL        string `mapstructure:"logo_url"`
		Prefix         string
	} `mapstructure:"eir"`
}

func Load(path string) (Config, error) {
	// .env рядом с бинарником не обязателен
	if err := gotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.env", "prod")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("telegram.timeout", 30)
	v.SetDefault("storage.driver", "badger")
	v.SetDefault("storage.key_prefix", "zh_")
	v.SetDefault("storage.badger.dir", "data/badger")
	v.SetDefault("storage.postgres.migrations", "migrations")
	v.SetDefault("auth.login", "admin")
	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("yard.blocks", []string{"A", "B", "C"})
	v.SetDefault("yard.bays", 6)
	v.SetDefault("yard.rows", 5)
	v.SetDefault("yard.tiers", 5)
	v.SetDefault("yard.lcl_block", "C")
	v.SetDefault("eir.company_name", "ZEROHUB LOGISTICS TERMINAL")
	v.SetDefault("eir.terminal_code", "ZH-SA-01")
	v.SetDefault("eir.prefix", "EIR")

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// Location — часовой пояс терминала; при ошибке UTC.
func (c Config) Location() *time.Location {
	if c.App.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
