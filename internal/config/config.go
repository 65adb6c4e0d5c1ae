package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is everything the server reads from the environment. All keys use
// the BARABOM_ prefix, e.g. BARABOM_ADDR.
type Config struct {
	Addr string

	// DataDir selects file storage; DBDSN selects postgres. With neither
	// set the app runs purely in memory.
	DataDir    string
	DBDSN      string
	QuotaBytes int

	LogLevel  string
	LogFormat string

	JWTSecret string

	ChatReplyDelay time.Duration
	PaymentDelay   time.Duration
	SocialDelay    time.Duration

	// AutoNotify turns on the synthetic notification generator.
	AutoNotify         bool
	AutoNotifyInterval time.Duration

	AllowedOrigins []string
}

func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("barabom")
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("data_dir", "")
	v.SetDefault("db_dsn", "")
	v.SetDefault("quota_bytes", 5*1024*1024)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("jwt_secret", "barabom-dev-secret")
	v.SetDefault("chat_reply_delay", "2s")
	v.SetDefault("payment_delay", "1500ms")
	v.SetDefault("social_delay", "1500ms")
	v.SetDefault("auto_notify", false)
	v.SetDefault("auto_notify_interval", "45s")
	v.SetDefault("allowed_origins", "*")

	return Config{
		Addr:               v.GetString("addr"),
		DataDir:            v.GetString("data_dir"),
		DBDSN:              v.GetString("db_dsn"),
		QuotaBytes:         v.GetInt("quota_bytes"),
		LogLevel:           v.GetString("log_level"),
		LogFormat:          v.GetString("log_format"),
		JWTSecret:          v.GetString("jwt_secret"),
		ChatReplyDelay:     v.GetDuration("chat_reply_delay"),
		PaymentDelay:       v.GetDuration("payment_delay"),
		SocialDelay:        v.GetDuration("social_delay"),
		AutoNotify:         v.GetBool("auto_notify"),
		AutoNotifyInterval: v.GetDuration("auto_notify_interval"),
		AllowedOrigins:     splitOrigins(v.GetString("allowed_origins")),
	}
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{"*"}
	}
	return out
}
