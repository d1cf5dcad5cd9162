package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Renison-Gohel/food-orderly/configs"
	"github.com/Renison-Gohel/food-orderly/pkg/cache"
	"github.com/Renison-Gohel/food-orderly/pkg/events"
	"github.com/Renison-Gohel/food-orderly/routes"
	"github.com/Renison-Gohel/food-orderly/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedDefaults(); err != nil {
		log.Fatalf("seed defaults failed: %v", err)
	}

	// Optional order-list cache
	var orderCache *cache.OrderCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		orderCache = cache.NewOrderCache(client, 5*time.Minute)
	}

	// Optional order-event stream
	var publisher *events.Publisher
	if cfg.KafkaBroker != "" {
		publisher = events.NewPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
		defer publisher.Close()
	}

	// Live order feed for dashboards
	hub := ws.NewOrderHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg, hub, orderCache, publisher)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
