package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	openai "github.com/sashabaranov/go-openai"

	"github.com/angelmondragon/orderchat-backend/api/routes"
	chatsvc "github.com/angelmondragon/orderchat-backend/internal/chat"
	menusvc "github.com/angelmondragon/orderchat-backend/internal/menu"
	"github.com/angelmondragon/orderchat-backend/internal/recommend"
	"github.com/angelmondragon/orderchat-backend/internal/session"
	voicesvc "github.com/angelmondragon/orderchat-backend/internal/voice"
	"github.com/angelmondragon/orderchat-backend/pkg/config"
	"github.com/angelmondragon/orderchat-backend/pkg/env"
	"github.com/angelmondragon/orderchat-backend/pkg/logger"
	"github.com/angelmondragon/orderchat-backend/pkg/metrics"
	"github.com/angelmondragon/orderchat-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, session snapshots disabled")
	}

	var snapshots session.SnapshotStore
	if redisClient != nil {
		snapshots = session.NewRedisSnapshotStore(redisClient, cfg.Session.SnapshotTTL)
	}
	registry := session.NewRegistry(snapshots, logg)

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	chatMetrics := metrics.NewChatMetrics(promRegistry)

	gateway, err := recommend.NewService(openai.NewClient(cfg.OpenAI.APIKey), cfg.OpenAI, cfg.Chat)
	if err != nil {
		logg.Error(context.Background(), "failed to create recommendation gateway", err)
		os.Exit(1)
	}

	chatService, err := chatsvc.NewService(gateway, menusvc.Items, chatMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create chat service", err)
		os.Exit(1)
	}

	voiceManager, err := voicesvc.NewManager(func(sessionID string) (*voicesvc.Session, error) {
		return voicesvc.NewSession(voicesvc.EngineBridge{}, voicesvc.Handlers{
			OnFinal: func(ctx context.Context, transcript string) {
				sess := registry.GetOrCreate(ctx, sessionID)
				if _, err := chatService.Submit(ctx, sess, transcript, false); err != nil {
					logg.Error(ctx, "voice transcript submission failed", err)
				}
				registry.Persist(ctx, sess)
			},
			OnError: func(ctx context.Context, message string) {
				sess := registry.GetOrCreate(ctx, sessionID)
				chatService.VoiceError(sess)
				registry.Persist(ctx, sess)
			},
		}, chatMetrics, logg)
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create voice manager", err)
		os.Exit(1)
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, redisClient, registry, chatService, voiceManager, promRegistry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
