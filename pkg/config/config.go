package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	ce "github.com/memories-timeline/memories-backend/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const DefaultAppName = "memories"

const HeaderRequestId = "X-Request-Id"

const RequestIdLoggingKey = "request_id"

const (
	AuthModeStatic = "static"
	AuthModeHeader = "header"
	AuthModeJWT    = "jwt"
)

type Configuration struct {
	Database   Database
	Logging    Logging
	Loaded     bool
	Cloudwatch Cloudwatch
	Metrics    Metrics
	App        App
	Assets     Assets
	Storage    Storage
	Auth       Auth
	RateLimit  RateLimit `mapstructure:"ratelimit"`
	Cors       Cors
	Server     Server
	Clients    Clients `mapstructure:"clients"`
	Sentry     Sentry  `mapstructure:"sentry"`
}

type Clients struct {
	Redis Redis `mapstructure:"redis"`
}

type Database struct {
	Host              string
	Port              int
	User              string
	Password          string
	Name              string
	CACertPath        string        `mapstructure:"ca_cert_path"`
	PoolLimit         int           `mapstructure:"pool_limit"`
	SlowQueryDuration time.Duration `mapstructure:"slow_query_duration"`
}

type Logging struct {
	Level   string
	Console bool
	Color   bool
}

type Cloudwatch struct {
	Region  string
	Key     string
	Secret  string
	Session string
	Group   string
	Stream  string
}

type Redis struct {
	Host       string
	Port       int
	Username   string
	Password   string
	DB         int
	Expiration time.Duration
}

type Sentry struct {
	Dsn string
}

type Metrics struct {
	// Defines the path to the metrics server that the app should be configured to
	// listen on for metric traffic.
	Path string `mapstructure:"path"`

	// Defines the metrics port that the app should be configured to listen on for
	// metric traffic.
	Port int `mapstructure:"port"`

	// How often database gauges are refreshed
	CollectionInterval time.Duration `mapstructure:"collection_interval"`
}

// App holds the display settings returned by GET /api/config
type App struct {
	Title      string `mapstructure:"title"`
	FooterText string `mapstructure:"footer_text"`
}

type Assets struct {
	MaxUploadMB      int    `mapstructure:"max_upload_mb"`
	ThumbnailWidth   int    `mapstructure:"thumbnail_width"`
	ThumbnailQuality int    `mapstructure:"thumbnail_quality"`
	CacheControl     string `mapstructure:"cache_control"`
}

// MaxUploadBytes is the largest accepted upload
func (a Assets) MaxUploadBytes() int64 {
	return int64(a.MaxUploadMB) * 1024 * 1024
}

type Storage struct {
	S3      S3      `mapstructure:"s3"`
	Breaker Breaker `mapstructure:"breaker"`
}

type S3 struct {
	Bucket       string
	Region       string
	Endpoint     string
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	UsePathStyle bool   `mapstructure:"use_path_style"`
}

// Breaker configures the circuit breaker wrapped around the blob store
type Breaker struct {
	MaxFailures uint32        `mapstructure:"max_failures"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type Auth struct {
	Mode        string
	StaticUser  string `mapstructure:"static_user"`
	Header      string
	JWTHeader   string `mapstructure:"jwt_header"`
	JWTSecret   string `mapstructure:"jwt_secret"`
	JWTAudience string `mapstructure:"jwt_audience"`
}

type RateLimit struct {
	UploadsPerSecond float64 `mapstructure:"uploads_per_second"`
	Burst            int
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Server struct {
	Port           int
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

const (
	DefaultMaxUploadMB      = 100
	DefaultThumbnailWidth   = 400
	DefaultThumbnailQuality = 75
	DefaultCacheControl     = "public, max-age=31536000, immutable"
	DefaultAppTitle         = "Our Memories"
	DefaultStaticUser       = "developer@example.com"
)

var LoadedConfig Configuration

func Get() *Configuration {
	if !LoadedConfig.Loaded {
		Load()
	}
	return &LoadedConfig
}

// Addr is the host:port the redis client dials
func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Footer returns the configured footer, or a copyright line for the current year
func (a App) Footer() string {
	if a.FooterText != "" {
		return a.FooterText
	}
	return fmt.Sprintf("© %d", time.Now().Year())
}

func readConfigFile(v *viper.Viper) {
	v.SetConfigName("config.yaml")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs/")
	v.AddConfigPath("../../configs/")
	v.AddConfigPath("../../../configs")

	if path, ok := os.LookupEnv("CONFIG_PATH"); ok {
		v.AddConfigPath(path)
	}
	err := v.ReadInConfig()
	if err != nil {
		log.Logger.Warn().Msgf("config.yaml file not loaded: %s", err.Error())
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("Loaded", true)
	// In viper you have to set defaults, otherwise loading from ENV doesn't work
	//   without a config file present
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.ca_cert_path", "")
	v.SetDefault("database.pool_limit", 20)
	v.SetDefault("database.slow_query_duration", 2*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", false)
	v.SetDefault("logging.color", false)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.port", 9000)
	v.SetDefault("metrics.collection_interval", 30*time.Second)
	v.SetDefault("sentry.dsn", "")

	v.SetDefault("cloudwatch.region", "")
	v.SetDefault("cloudwatch.group", "")
	v.SetDefault("cloudwatch.stream", DefaultLogwatchStream())
	v.SetDefault("cloudwatch.session", "")
	v.SetDefault("cloudwatch.secret", "")
	v.SetDefault("cloudwatch.key", "")

	v.SetDefault("clients.redis.host", "")
	v.SetDefault("clients.redis.port", "")
	v.SetDefault("clients.redis.username", "")
	v.SetDefault("clients.redis.password", "")
	v.SetDefault("clients.redis.db", 0)
	v.SetDefault("clients.redis.expiration", 1*time.Minute)

	v.SetDefault("app.title", DefaultAppTitle)
	v.SetDefault("app.footer_text", "")

	v.SetDefault("assets.max_upload_mb", DefaultMaxUploadMB)
	v.SetDefault("assets.thumbnail_width", DefaultThumbnailWidth)
	v.SetDefault("assets.thumbnail_quality", DefaultThumbnailQuality)
	v.SetDefault("assets.cache_control", DefaultCacheControl)

	v.SetDefault("storage.s3.bucket", "")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.s3.access_key", "")
	v.SetDefault("storage.s3.secret_key", "")
	v.SetDefault("storage.s3.use_path_style", false)
	v.SetDefault("storage.breaker.max_failures", 5)
	v.SetDefault("storage.breaker.timeout", 30*time.Second)

	v.SetDefault("auth.mode", AuthModeStatic)
	v.SetDefault("auth.static_user", DefaultStaticUser)
	v.SetDefault("auth.header", "Cf-Access-Authenticated-User-Email")
	v.SetDefault("auth.jwt_header", "Cf-Access-Jwt-Assertion")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_audience", "")

	v.SetDefault("ratelimit.uploads_per_second", 5)
	v.SetDefault("ratelimit.burst", 10)

	v.SetDefault("cors.allowed_origins", []string{})

	v.SetDefault("server.port", 8000)
	v.SetDefault("server.request_timeout", 30*time.Second)
}

func Load() {
	var err error
	v := viper.New()

	// A missing .env is normal outside local development
	if err = godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env file not loaded")
	}

	readConfigFile(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	err = v.Unmarshal(&LoadedConfig)
	if err != nil {
		panic(err)
	}

	if LoadedConfig.Clients.Redis.Host == "" {
		log.Warn().Msg("Caching is disabled.")
	}
	if LoadedConfig.Storage.S3.Bucket == "" {
		log.Warn().Msg("No storage bucket configured.")
	}
}

// DefaultLogwatchStream names the cloudwatch stream after the host
func DefaultLogwatchStream() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return DefaultAppName
	}
	return hostname
}

// DBLevel is the level gorm statements are logged at. Statements only show up
// when the app itself logs at debug or trace.
func DBLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(Get().Logging.Level)
	if err != nil {
		return zerolog.WarnLevel
	}
	if level <= zerolog.DebugLevel {
		return level
	}
	return zerolog.WarnLevel
}

// SkipLogging skips access logs for health and metrics probes
func SkipLogging(c echo.Context) bool {
	p := c.Request().URL.Path
	return p == "/ping" || p == "/ping/" || p == Get().Metrics.Path
}

func ProgramString() string {
	return strings.Join(os.Args, " ")
}

func CustomHTTPErrorHandler(err error, c echo.Context) {
	var code int
	var message ce.ErrorResponse

	if c.Response().Committed {
		c.Logger().Error(err)
		return
	}

	if errResp, ok := err.(ce.ErrorResponse); ok {
		code = ce.GetGeneralResponseCode(errResp)
		message = errResp
	} else if he, ok := err.(*echo.HTTPError); ok {
		errResp := ce.NewErrorResponseFromEchoError(he)
		code = errResp.Errors[0].Status
		message = errResp
	} else {
		code = http.StatusInternalServerError
		message = ce.NewErrorResponse(code, "", http.StatusText(http.StatusInternalServerError))
	}

	// Send response
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, message)
	}
	if err != nil {
		log.Logger.Error().Err(err).Msg("could not write error response")
	}
}
