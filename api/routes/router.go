package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/orderchat-backend/api/controllers"
	cartcontrollers "github.com/angelmondragon/orderchat-backend/api/controllers/cart"
	chatcontrollers "github.com/angelmondragon/orderchat-backend/api/controllers/chat"
	voicecontrollers "github.com/angelmondragon/orderchat-backend/api/controllers/voice"
	"github.com/angelmondragon/orderchat-backend/api/middleware"
	chatsvc "github.com/angelmondragon/orderchat-backend/internal/chat"
	"github.com/angelmondragon/orderchat-backend/internal/session"
	voicesvc "github.com/angelmondragon/orderchat-backend/internal/voice"
	"github.com/angelmondragon/orderchat-backend/pkg/config"
	"github.com/angelmondragon/orderchat-backend/pkg/logger"
	"github.com/angelmondragon/orderchat-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	registry *session.Registry,
	chatService *chatsvc.Service,
	voiceManager *voicesvc.Manager,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	readyDeps := []controllers.Pinger{}
	if redisClient != nil {
		readyDeps = append(readyDeps, redisClient)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readyDeps...))
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.SessionID(logg))

		r.Get("/menu", controllers.MenuList())

		r.Route("/chat", func(r chi.Router) {
			r.Post("/messages", chatcontrollers.MessageCreate(registry, chatService, logg))
			r.Post("/image", chatcontrollers.ImageCreate(registry, chatService, logg))
			r.Get("/transcript", chatcontrollers.TranscriptFetch(registry, logg))
			r.Get("/state", chatcontrollers.StateFetch(registry, logg))

			r.Route("/voice", func(r chi.Router) {
				r.Post("/start", voicecontrollers.CaptureStart(voiceManager, logg))
				r.Post("/stop", voicecontrollers.CaptureStop(voiceManager, logg))
				r.Post("/events", voicecontrollers.EventIngest(voiceManager, registry, logg))
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(registry, logg))
			r.Post("/items", cartcontrollers.CartItemApply(registry, logg))
			r.Post("/checkout", cartcontrollers.CartCheckout(registry, chatService, logg))
		})
	})

	return r
}
