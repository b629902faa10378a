package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"monitor-srv/config"
	"monitor-srv/internal/alert"
	"monitor-srv/internal/collector"
	"monitor-srv/internal/comparison"
	"monitor-srv/internal/ingest"
	"monitor-srv/internal/liverefresh"
	liverefreshConsumer "monitor-srv/internal/liverefresh/delivery/kafka/consumer"
	"monitor-srv/internal/metrics"
	"monitor-srv/internal/watchlist"
	"monitor-srv/pkg/discord"
	"monitor-srv/pkg/encrypter"
	pkgKafka "monitor-srv/pkg/kafka"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/minio"
	pkgRabbitMQ "monitor-srv/pkg/rabbitmq"
	pkgRedis "monitor-srv/pkg/redis"
	"monitor-srv/pkg/reviewsrv"
	"monitor-srv/pkg/scope"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Infrastructure clients
	postgresDB    *sql.DB
	redisClient   pkgRedis.IRedis
	minioClient   minio.MinIO
	kafkaConfig   config.KafkaConfig
	kafkaProducer pkgKafka.IProducer
	rabbitConn    pkgRabbitMQ.IRabbitMQ

	// Upstream clients
	reviewSrv reviewsrv.IReview

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Domain usecases, populated by mapHandlers. The background loops
	// (collector, alert refresher, live-refresh consumer) share them with
	// the HTTP handlers.
	metricsUC     metrics.UseCase
	comparisonUC  comparison.UseCase
	liverefreshUC liverefresh.UseCase
	alertUC       alert.UseCase
	watchlistUC   watchlist.UseCase
	ingestUC      ingest.UseCase

	collector  *collector.Collector
	lrConsumer *liverefreshConsumer.Consumer
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Infrastructure clients
	PostgresDB    *sql.DB
	RedisClient   pkgRedis.IRedis
	MinIOClient   minio.MinIO
	KafkaConfig   config.KafkaConfig
	KafkaProducer pkgKafka.IProducer
	RabbitConn    pkgRabbitMQ.IRabbitMQ

	// Upstream clients
	ReviewSrv reviewsrv.IReview

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   scope.Manager
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Infrastructure clients
		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIOClient,
		kafkaConfig:   cfg.KafkaConfig,
		kafkaProducer: cfg.KafkaProducer,
		rabbitConn:    cfg.RabbitConn,

		// Upstream clients
		reviewSrv: cfg.ReviewSrv,

		// Authentication & Security Configuration
		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,
		encrypter:    cfg.Encrypter,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
// KafkaProducer and RabbitConn are optional: without them the retry path
// skips result publishing and crisis alerts are not forwarded.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Infrastructure clients
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if len(srv.kafkaConfig.Brokers) == 0 {
		return errors.New("kafka brokers are required")
	}

	// Upstream clients
	if srv.reviewSrv == nil {
		return errors.New("review service client is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	return nil
}
