package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// external collaborators, recommendation behavior, and graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// Uploads call two remote model services in sequence, so this is generous.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"1m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"stylist" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Auth configures verification of caller credentials.
	Auth struct {
		// IssuerURL is the expected issuer of bearer tokens.
		IssuerURL string `env:"AUTH_ISSUER_URL" yaml:"issuerUrl"`
		// JWKSURL overrides the key-set endpoint; derived from IssuerURL when empty.
		JWKSURL string `env:"AUTH_JWKS_URL" yaml:"jwksUrl"`
		// JWKSCacheTTL bounds how long fetched signing keys are trusted.
		JWKSCacheTTL time.Duration `env:"AUTH_JWKS_CACHE_TTL" env-default:"15m" yaml:"jwksCacheTtl"`
	} `yaml:"auth"`

	// Tagger configures the vision model that assigns attributes to item images.
	Tagger struct {
		// BaseURL overrides the Gemini API endpoint; the public endpoint is used when empty.
		BaseURL string `env:"TAGGER_BASE_URL" yaml:"baseUrl"`
		// Model is the Gemini model used for tagging.
		Model string `env:"TAGGER_MODEL" env-default:"gemini-2.0-flash" yaml:"model"`
		// APIKey authenticates requests to the Gemini API.
		APIKey string `env:"TAGGER_API_KEY" yaml:"apiKey"`
		// Timeout limits a single tagging call.
		Timeout time.Duration `env:"TAGGER_TIMEOUT" env-default:"30s" yaml:"timeout"`
	} `yaml:"tagger"`

	// Embedder configures the encoder service that maps images into the
	// compatibility vector space.
	Embedder struct {
		// BaseURL is the address of the encoder service.
		BaseURL string `env:"EMBEDDER_BASE_URL" env-default:"http://localhost:8501" yaml:"baseUrl"`
		// Dimension is the embedding width; must match the store's vector column.
		Dimension int `env:"EMBEDDER_DIMENSION" env-default:"128" yaml:"dimension"`
		// Timeout limits a single embedding call.
		Timeout time.Duration `env:"EMBEDDER_TIMEOUT" env-default:"30s" yaml:"timeout"`
	} `yaml:"embedder"`

	// ObjectStore configures where item images are kept.
	ObjectStore struct {
		// Endpoint is the host:port of the object store, without scheme.
		Endpoint string `env:"OBJECT_STORE_ENDPOINT" env-default:"localhost:9000" yaml:"endpoint"`
		// AccessKey is the access key id used for authentication.
		AccessKey string `env:"OBJECT_STORE_ACCESS_KEY" env-default:"minioadmin" yaml:"accessKey"`
		// SecretKey is the secret access key used for authentication.
		SecretKey string `env:"OBJECT_STORE_SECRET_KEY" env-default:"minioadmin" yaml:"secretKey"`
		// Bucket is the bucket item images are stored in.
		Bucket string `env:"OBJECT_STORE_BUCKET" env-default:"wardrobe-images" yaml:"bucket"`
		// UseSSL enables TLS for the connection.
		UseSSL bool `env:"OBJECT_STORE_USE_SSL" env-default:"false" yaml:"useSsl"`
	} `yaml:"objectStore"`

	// Recommend tunes the filter-then-rank recommendation flow.
	Recommend struct {
		// CandidateLimit caps how many filtered candidates are ranked per request.
		CandidateLimit uint `env:"RECOMMEND_CANDIDATE_LIMIT" env-default:"100" yaml:"candidateLimit"`
		// TopK is the maximum number of recommendations returned.
		TopK uint `env:"RECOMMEND_TOP_K" env-default:"10" yaml:"topK"`
	} `yaml:"recommend"`

	// Upload bounds item image uploads.
	Upload struct {
		// MaxImageBytes is the largest accepted image payload.
		MaxImageBytes int64 `env:"UPLOAD_MAX_IMAGE_BYTES" env-default:"10485760" yaml:"maxImageBytes"`
	} `yaml:"upload"`

	// Worker configures background job processing.
	Worker struct {
		// MaxAttempts is the number of attempts for an image cleanup job before
		// it is discarded.
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
