package app

import (
	"context"
	"fmt"
	"os"

	"github.com/francisthore/kbsk-ecommerce-sub001/config"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/handlers"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/metrics"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/middleware"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/notifier"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/payfast"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/publisher"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/repository/posgrest"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/service"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/subscriber"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type App struct {
	config *config.Config
	Router *gin.Engine
	Logger *logrus.Logger

	publisher      *publisher.KafkaPublisher
	consumer       *subscriber.KafkaConsumer
	reconciliation *service.ReconciliationService
	cancel    context.CancelFunc
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	a.Logger = newLogger(cfg.APP)

	db, err := cfg.DB.GormConnect()
	if err != nil {
		a.Logger.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Order{}, &models.Payment{}, &models.NotificationLog{}); err != nil {
		a.Logger.Fatalf("failed to auto migrate: %v", err)
	}

	metrics.RegisterMetrics()

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	orderRepo := posgrest.NewOrderRepository(db)
	logRepo := posgrest.New[models.NotificationLog](db)
	a.publisher = publisher.NewKafkaPublisher(
		cfg.Kafka.BrokerList(),
		cfg.Kafka.PublishTopicList(),
		cfg.Kafka.GetRetryConfig(),
		a.Logger.WithField("component", "publisher"),
	)

	gateway := cfg.GatewayConfig()
	builder := payfast.NewBuilder(gateway, orderRepo)
	verifier := payfast.NewVerifier(gateway, payfast.NewOriginChecker(gateway, nil))

	checkoutService := service.NewCheckoutService(orderRepo, builder, a.Logger.WithField("component", "checkout"))
	reconciliationService := service.NewReconciliationService(
		orderRepo,
		logRepo,
		verifier,
		a.publisher,
		a.Logger.WithField("component", "itn"),
		cfg.APP.NotifyTimeout,
	)

	a.reconciliation = reconciliationService

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, a.Logger.WithField("component", "http"))
	payfastHandler := handlers.NewPayfastHandler(reconciliationService, cfg.APP.ITNTimeout, a.Logger.WithField("component", "http"))

	limiter := middleware.NewIPRateLimiter(cfg.APP.RateLimitRPS, cfg.APP.RateLimitBurst)
	go limiter.Run(ctx)

	a.Router = gin.Default()
	if err := a.Router.SetTrustedProxies(cfg.APP.TrustedProxies); err != nil {
		a.Logger.Fatalf("invalid trusted proxies: %v", err)
	}
	a.RegisterRoutes(checkoutHandler, payfastHandler, limiter, cfg.APP.AdminAccounts())

	mailer := notifier.NewMailer(notifier.Config{
		APIURL:  cfg.Mail.APIURL,
		APIKey:  cfg.Mail.APIKey,
		From:    cfg.Mail.From,
		Timeout: cfg.Mail.Timeout,
	})
	mailHandler := handlers.NewMailHandler(mailer, a.Logger.WithField("component", "mail"))
	a.initSubscribers(ctx, mailHandler)

	a.Logger.WithFields(logrus.Fields{
		"sandbox":    gateway.Sandbox,
		"notify_url": gateway.NotifyURL(),
	}).Info("storefront initialized")
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	a.shutdown()
	if err != nil {
		a.Logger.WithError(err).Error("http server stopped")
		os.Exit(1)
	}
}

func (a *App) initSubscribers(ctx context.Context, mailHandler *handlers.MailHandler) {
	a.consumer = subscriber.NewMultiTopicConsumer(
		a.config.Kafka.BrokerList(),
		a.config.Kafka.SubscriberTopicList(),
		a.config.Kafka.ConsumerGroup,
		a.publisher,
		a.config.Kafka.GetRetryConfig(),
		a.Logger.WithField("component", "subscriber"),
	)

	a.consumer.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		a.Logger.WithField("topic", topic).Debug("received message")
		return mailHandler.HandleEvents(ctx, topic, value)
	})
}

func (a *App) shutdown() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.reconciliation != nil {
		a.reconciliation.Wait()
	}
	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			a.Logger.WithError(err).Warn("closing kafka readers")
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.Logger.WithError(err).Warn("closing kafka writers")
		}
	}
}

func newLogger(cfg config.APP) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(cfg.Level())
	return logger
}
