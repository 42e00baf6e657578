package main

import (
	"encoding/json"
	"log"
	"net/http"

	"lousa/board"
	"lousa/config"
	"lousa/ws"
)

func main() {
	cfg := config.Load()

	store := board.NewStore()
	hub := ws.NewHub(store)
	go hub.Run()

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWebSocket(hub, w, r)
	})
	http.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	http.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	log.Printf("Server started on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, nil))
}
