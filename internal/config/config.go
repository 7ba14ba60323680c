package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagBindings maps viper keys to the cobra persistent flag carrying the
// same setting.
var flagBindings = map[string]string{
	KeyHTTPHost:        "host",
	KeyHTTPPort:        "port",
	KeyCORSOrigins:     "cors-origins",
	KeyGraphQLEndpoint: "graphql-endpoint",
	KeyUpstreamTimeout: "upstream-timeout",
	KeyLogLevel:        "log-level",
}

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		flags := root.PersistentFlags()
		for key, name := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				_ = viper.BindPFlag(key, f)
			}
		}
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyHTTPHost, "0.0.0.0")
	viper.SetDefault(KeyHTTPPort, 8000)
	viper.SetDefault(KeyCORSOrigins, "")
	viper.SetDefault(KeyGraphQLEndpoint, "https://online.depo.lv/graphql")
	viper.SetDefault(KeyUpstreamTimeout, "10s")
	viper.SetDefault(KeyLogLevel, "info")
}

func HTTPHost() string        { return viper.GetString(KeyHTTPHost) }
func HTTPPort() int           { return viper.GetInt(KeyHTTPPort) }
func GraphQLEndpoint() string { return viper.GetString(KeyGraphQLEndpoint) }
func LogLevel() string        { return viper.GetString(KeyLogLevel) }

// UpstreamTimeout bounds the outbound GraphQL call.
func UpstreamTimeout() time.Duration {
	d := viper.GetDuration(KeyUpstreamTimeout)
	if d <= 0 {
		d = 10 * time.Second
	}
	return d
}

// CORSOrigins returns the allowed cross-origin hosts, parsed from a
// comma-separated list. Empty entries are dropped.
func CORSOrigins() []string {
	raw := viper.GetString(KeyCORSOrigins)
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
