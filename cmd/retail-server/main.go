package main

import (
	"log"
	"net/http"

	"github.com/Qaizar-Master/retail-system/internal/catalog"
	"github.com/Qaizar-Master/retail-system/internal/config"
	"github.com/Qaizar-Master/retail-system/internal/db"
	"github.com/Qaizar-Master/retail-system/internal/server"
)

func main() {
	cfg := config.Load()

	var gateway catalog.Gateway
	if cfg.DatabaseURL != "" {
		database, err := db.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer database.Close()
		pg, err := catalog.NewPostgresGateway(database)
		if err != nil {
			log.Fatalf("failed to initialize catalog: %v", err)
		}
		gateway = pg
		log.Println("[catalog] using database-backed catalog")
	} else {
		gateway = catalog.NewMemoryGateway()
		log.Println("[catalog] DB_URL not provided, using in-memory seeded catalog")
	}

	s, err := server.NewServer(cfg, gateway)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	addr := ":" + cfg.Port
	log.Printf("retail assistant listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, s.Router()))
}
