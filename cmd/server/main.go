package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/HungBoGo/hubogo-note/internal/config"
	"github.com/HungBoGo/hubogo-note/internal/serverapp"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	path := os.Getenv("HUBOGO_CONFIG")
	if path == "" {
		path = "hubogo_config.yml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.FromEnv()

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		Logger: log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("hubogo-note listening on %s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handler))
}
