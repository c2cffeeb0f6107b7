package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	HTTP    HTTPConfig    `mapstructure:"http" validate:"required"`
	Bot     BotConfig     `mapstructure:"bot"`
	DB      DBConfig      `mapstructure:"db" validate:"required"`
	Quiz    QuizConfig    `mapstructure:"quiz" validate:"required"`
	Clients ClientsConfig `mapstructure:"clients"`
	Env     string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
}

type BotConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Token         string `mapstructure:"token" validate:"required_if=Enabled true"`
	CategoryID    int64  `mapstructure:"category_id" validate:"min=0"`
	QuestionCount int    `mapstructure:"question_count" validate:"min=0,max=50"`
}

type DBConfig struct {
	Conn           DBConn `mapstructure:"conn"`
	Cfg            DBCfg  `mapstructure:"cfg"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type QuizConfig struct {
	SessionTTL    time.Duration `mapstructure:"session_ttl" validate:"min=1"`
	PurgeInterval time.Duration `mapstructure:"purge_interval" validate:"min=1"`
	SkillFocus    []string      `mapstructure:"skill_focus" validate:"dive,oneof=LISTENING READING WRITING"`
	HistoryLimit  int           `mapstructure:"history_limit" validate:"min=1,max=100"`
}

type ClientsConfig struct {
	Timeout    time.Duration `mapstructure:"timeout" validate:"min=0"`
	SourceLang string        `mapstructure:"source_lang" validate:"required"`
	TargetLang string        `mapstructure:"target_lang" validate:"required"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	secrets := []struct {
		key string
		env string
	}{
		{"bot.token", "BOT_TOKEN"},
		{"db.conn.host", "DB_HOST"},
		{"db.conn.port", "DB_PORT"},
		{"db.conn.user", "DB_USER"},
		{"db.conn.password", "DB_PASSWORD"},
		{"db.conn.name", "DB_NAME"},
		{"db.conn.ssl", "DB_SSL"},
		{"http.addr", "HTTP_ADDR"},
	}
	for _, s := range secrets {
		if err := v.BindEnv(s.key, s.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", s.env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
