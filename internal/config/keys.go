package config

const (
	KeyHTTPHost        = "http_host"
	KeyHTTPPort        = "http_port"
	KeyCORSOrigins     = "cors_origins"
	KeyGraphQLEndpoint = "depo_graphql_endpoint"
	KeyUpstreamTimeout = "upstream_timeout"
	KeyLogLevel        = "log_level"
)
