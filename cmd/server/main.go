package main

import (
	"fmt"
	"log"

	"labtrack/internal/config"
	"labtrack/internal/server"
	"labtrack/internal/store"
)

func main() {
	cfg := config.Load()
	st := store.New()

	r := server.NewRouter(cfg, st)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
