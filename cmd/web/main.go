package main

import (
	"log"

	"github.com/mwalcott/frontier"
	"github.com/mwalcott/frontier/server"
)

func main() {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(frontier.NewInMemoryGameStore(), cfg)
	log.Printf("Listening on %s...", cfg.Addr)
	log.Fatal(s.ListenAndServe())
}
