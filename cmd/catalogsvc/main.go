package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"
	log "github.com/sirupsen/logrus"

	config "github.com/lakshmanb-0/icantace-game/configs"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/broker"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/handlers"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/rawg"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/service"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/store"
	"github.com/lakshmanb-0/icantace-game/internal/db"
	nats "github.com/lakshmanb-0/icantace-game/internal/nats"
)

const SERVICE_NAME = "catalog"

var instanceId string

func init() {
	instanceId = config.CreateUniqueInstance(SERVICE_NAME)
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {
	// mongo connection
	database, cancelDB, err := db.ConnectToDB()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer cancelDB()
	log.Printf("mongo connection established successfully")

	if err := db.EnsureIndexes(database); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	entityStore := store.NewEntityStore(database)
	trailerStore := store.NewTrailerStore(database)
	achievementStore := store.NewAchievementStore(database)
	screenshotStore := store.NewScreenshotStore(database)
	gameStore := store.NewGameStore(database)
	userStore := store.NewUserStore(database)
	reviewStore := store.NewReviewStore(database)
	listStore := store.NewGameListStore(database)

	txRunner := store.NewTxRunner(database.Client())

	// Connect to NATS
	n, err := nats.Connect()
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(0)
	}

	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	b := broker.NewBroker(n.Conn)

	rawgClient := rawg.NewClient(os.Getenv("RAWG_BASE_URL"), os.Getenv("RAWG_API_KEY"))

	syncService := service.NewSyncService(rawgClient, entityStore, trailerStore,
		achievementStore, screenshotStore, gameStore, txRunner, b)
	gameService := service.NewGameService(gameStore)
	userService := service.NewUserService(userStore)
	reviewService := service.NewReviewService(reviewStore)
	listService := service.NewGameListService(listStore)

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	rateLimitStr := os.Getenv("RATE_LIMIT")
	rateLimit, err := strconv.Atoi(rateLimitStr)
	if err != nil {
		log.Fatalf("Invalid RATE_LIMIT value: %v", err)
	}
	r.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(syncService, gameService, userService, reviewService, listService)
	h.InitAuth()
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + os.Getenv("CATALOG_SERVICE_PORT"),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
