// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config 啟動時載入一次的不可變配置快照，透過注入傳遞給各元件
type Config struct {
	DatabaseURL string `koanf:"DATABASE_URL"`

	RedisAddr     string `koanf:"REDIS_ADDR"`
	RedisPassword string `koanf:"REDIS_PASSWORD"`
	RedisDB       int    `koanf:"REDIS_DB"`

	JWTSecret             string `koanf:"JWT_SECRET"`
	JWTAlgorithm          string `koanf:"JWT_ALGORITHM"`
	AccessTokenTTLMinutes int    `koanf:"ACCESS_TOKEN_TTL_MINUTES"`

	AdminPassword string `koanf:"ADMIN_PASSWORD"`

	TrustedOrigin string `koanf:"TRUSTED_ORIGIN"`
	CORSDebugMode bool   `koanf:"CORS_DEBUG_MODE"`

	UnosendAPIKey string `koanf:"UNOSEND_API_KEY"`
	EmailFrom     string `koanf:"EMAIL_FROM"`

	BackendURL  string `koanf:"BACKEND_URL"`
	FrontendURL string `koanf:"FRONTEND_URL"`

	WorkerCount int    `koanf:"WORKER_COUNT"`
	ListenAddr  string `koanf:"LISTEN_ADDR"`
}

func defaults() Config {
	return Config{
		JWTAlgorithm:          "HS256",
		AccessTokenTTLMinutes: 60,
		TrustedOrigin:         "http://localhost:3000",
		FrontendURL:           "http://localhost:3000",
		BackendURL:            "http://localhost:8080",
		WorkerCount:           1,
		ListenAddr:            ":8080",
	}
}

// Load 從環境變數載入配置，缺少必要變數時回傳錯誤
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("載入預設配置失敗: %w", err)
	}
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("載入環境變數失敗: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("解析配置失敗: %w", err)
	}

	for name, v := range map[string]string{
		"DATABASE_URL":   cfg.DatabaseURL,
		"JWT_SECRET":     cfg.JWTSecret,
		"ADMIN_PASSWORD": cfg.AdminPassword,
		"REDIS_ADDR":     cfg.RedisAddr,
	} {
		if v == "" {
			return nil, fmt.Errorf("環境變數 %s 未設定", name)
		}
	}
	if cfg.AccessTokenTTLMinutes <= 0 {
		return nil, fmt.Errorf("無效的 ACCESS_TOKEN_TTL_MINUTES: %d", cfg.AccessTokenTTLMinutes)
	}
	if cfg.WorkerCount <= 0 {
		return nil, fmt.Errorf("無效的 WORKER_COUNT: %d", cfg.WorkerCount)
	}

	return &cfg, nil
}

// AccessTokenTTL 回傳存取令牌有效期
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLMinutes) * time.Minute
}

// CORSOrigin 回傳允許的來源，除錯模式下放行所有來源
func (c *Config) CORSOrigin() string {
	if c.CORSDebugMode {
		return "*"
	}
	return c.TrustedOrigin
}
