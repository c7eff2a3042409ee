package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	reminderapi "github.com/dimasprtm/wa-reminder/internal/api/handlers/reminder"
	"github.com/dimasprtm/wa-reminder/internal/api/handlers/wa"
	"github.com/dimasprtm/wa-reminder/internal/api/router"
	"github.com/dimasprtm/wa-reminder/internal/api/server"
	"github.com/dimasprtm/wa-reminder/internal/config"
	"github.com/dimasprtm/wa-reminder/internal/nlu"
	deliverymsg "github.com/dimasprtm/wa-reminder/internal/rabbitmq/handlers/delivery"
	"github.com/dimasprtm/wa-reminder/internal/rabbitmq/queue"
	"github.com/dimasprtm/wa-reminder/internal/recipient"
	friendrepo "github.com/dimasprtm/wa-reminder/internal/repository/friend"
	reminderrepo "github.com/dimasprtm/wa-reminder/internal/repository/reminder"
	userrepo "github.com/dimasprtm/wa-reminder/internal/repository/user"
	"github.com/dimasprtm/wa-reminder/internal/scheduler"
	remindersvc "github.com/dimasprtm/wa-reminder/internal/service/reminder"
	"github.com/dimasprtm/wa-reminder/internal/timeres"
	"github.com/dimasprtm/wa-reminder/internal/worker"
	"github.com/dimasprtm/wa-reminder/pkg/gateway"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	loc, err := time.LoadLocation(cfg.Time.Zone)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to load timezone")
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewDeliveryQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create delivery queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	reminders := reminderrepo.NewRepository(db)
	users := userrepo.NewRepository(db)
	friends := friendrepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	gatewayClient := gateway.NewClient(cfg.Gateway.WebhookURL)
	nluClient := nlu.NewClient(cfg.NLU.APIKey, cfg.NLU.Model, cfg.NLU.BaseURL)
	times := timeres.New(loc)
	recipients := recipient.New(users, friends)

	dispatcher := queue.NewDispatcher(q, cfg.Retry)
	sched := scheduler.New(reminders, users, dispatcher, rdb, cfg.Retry)
	defer sched.Stop()

	service := remindersvc.NewService(reminders, users, friends, sched, recipients, nluClient, rdb, times, loc)

	if err := sched.Restore(ctx); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to restore scheduled reminders")
	}

	reminderHandler := reminderapi.NewHandler(service, val, cfg)
	inboundHandler := wa.NewHandler(service, val, cfg)
	messageHandler := deliverymsg.NewHandler(gatewayClient)

	pool := worker.NewDispatcher(q, messageHandler, service)
	go pool.Run(ctx, cfg.Retry, cfg.Workers.Count)

	r := router.New(reminderHandler, inboundHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
