// Package web embeds the browser chat page served next to the API.
package web

import (
	"embed"
	"log"
	"net/http"
)

//go:embed static
var assets embed.FS

// Index serves the chat page.
func Index(w http.ResponseWriter, r *http.Request) {
	data, err := assets.ReadFile("static/index.html")
	if err != nil {
		log.Printf("[web] missing embedded index: %v", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// Static serves the embedded asset tree under /static/.
func Static() http.Handler {
	return http.FileServer(http.FS(assets))
}
