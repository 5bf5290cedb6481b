package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/daniellbaii/mp-fishnchips/configs"
	"github.com/daniellbaii/mp-fishnchips/middlewares"
	"github.com/daniellbaii/mp-fishnchips/routes"
)

func main() {
	cfg := configs.LoadConfig()

	store, err := configs.OpenStore(cfg)
	if err != nil {
		log.Fatalf("open store failed: %v", err)
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, cfg, store)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
