package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-backoffice-console/internal/changefeed"
	"go-backoffice-console/internal/client"
	"go-backoffice-console/internal/config"
	"go-backoffice-console/internal/handler"
	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/repository"
	"go-backoffice-console/internal/service"
	"go-backoffice-console/internal/store"
	"go-backoffice-console/internal/ws"
	"go-backoffice-console/pkg/cache"
	"go-backoffice-console/pkg/clock"
	"go-backoffice-console/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()
	decimal.MarshalJSONWithoutQuotes = true
	clk := clock.RealClock{}

	// 2. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 3. Optional infrastructure: change log in Postgres, suggestion cache in
	// Redis, change events on Kafka
	sinks := []changefeed.Sink{changefeed.HubSink(wsHub)}

	var changeRepo repository.ChangeLogRepository
	if cfg.DatabaseURL != "" {
		db, err := database.ConnectDB(cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: change history disabled: %v", err)
		} else {
			if err := db.AutoMigrate(&model.ChangeRecord{}); err != nil {
				log.Printf("Warning: failed to migrate change records: %v", err)
			}
			changeRepo = repository.NewChangeLogRepo(db)
			sinks = append(sinks, changefeed.DBSink(changeRepo))
		}
	}

	suggestionCache := cache.NewMemory()
	if cfg.RedisURL != "" {
		rdb, err := database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: using in-memory suggestion cache: %v", err)
		} else {
			defer rdb.Close()
			suggestionCache = cache.NewRedis(rdb, "console:")
		}
	}

	if len(cfg.KafkaBrokers) > 0 {
		writer := changefeed.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaChangesTopic)
		defer writer.Close()
		sinks = append(sinks, changefeed.KafkaSink(writer))
		log.Printf("Publishing changes to kafka topic %s", cfg.KafkaChangesTopic)
	}

	// 4. Stores sharing one sequence, all feeding the change feed
	seq := &store.Sequence{}
	productStore := store.New[model.Product]("products", clk, seq)
	supplierStore := store.New[model.Supplier]("suppliers", clk, seq)
	customerStore := store.New[model.Customer]("customers", clk, seq)
	orderStore := store.New[model.Order]("orders", clk, seq)
	campaignStore := store.New[model.Campaign]("campaigns", clk, seq)

	feed := changefeed.New(sinks...)
	feed.Attach(productStore, supplierStore, customerStore, orderStore, campaignStore)

	// 5. Dependency Injection (Wiring Layers)
	backend := client.NewJSONClient(cfg.BackendBaseURL, cfg.HTTPTimeout)
	planning := client.NewJSONClient(cfg.PlanningBaseURL, cfg.HTTPTimeout)
	forecasting := client.NewJSONClient(cfg.ForecastBaseURL, cfg.HTTPTimeout)
	reporting := client.NewJSONClient(cfg.ReportingBaseURL, cfg.HTTPTimeout)

	productService := service.NewProductService(repository.NewProductRepo(backend), productStore)
	supplierService := service.NewSupplierService(repository.NewSupplierRepo(backend), productService, supplierStore)
	customerService := service.NewCustomerService(repository.NewCustomerRepo(backend), customerStore)
	orderService := service.NewOrderService(repository.NewOrderRepo(backend), orderStore,
		cfg.ItemFetchConcurrency, productService, supplierService, customerService)
	campaignService := service.NewCampaignService(repository.NewCampaignRepo(backend), campaignStore, clk)
	insightService := service.NewInsightService(
		client.NewPlanner(planning),
		client.NewForecaster(forecasting),
		client.NewReporter(reporting),
		suggestionCache, clk,
		service.InsightOptions{DefaultAsOf: cfg.PlanDefaultAsOf, CacheTTL: cfg.SuggestionCacheTTL},
	)

	handlers := handler.Handlers{
		Products:  handler.NewProductHandler(productService, insightService),
		Suppliers: handler.NewSupplierHandler(supplierService),
		Customers: handler.NewCustomerHandler(customerService),
		Orders:    handler.NewOrderHandler(orderService),
		Campaigns: handler.NewCampaignHandler(campaignService),
		Insights:  handler.NewInsightHandler(insightService),
		Changes:   handler.NewChangeHandler(feed, changeRepo, clk),
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	handlers.Register(app.Group("/api/v1"))

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		if !wsHub.Join(c) {
			return
		}
		defer wsHub.Leave(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Println("Server forced to shutdown:", err)
	}
	wsHub.Stop()

	log.Println("Server exited")
}
