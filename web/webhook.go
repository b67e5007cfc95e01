/* webhook.go
 * Contains the webhook endpoint that receives new-result notifications used to kick off
 * recalculating the bracket and updating stored data
 * Authors: Zachary Bower
 */

package web

import (
	"encoding/json"
	"log"
	"net/http"

	"bracket-engine/api/api"
)

// Config carries the server configuration from main
type Config struct {
	Addr        string
	Tournament  string
	API         *api.API
	Recalculate func() error
}

// Server holds the handler context
type Server struct {
	api         *api.API
	tournament  string
	recalculate func() error
}

// ResultEvent is the payload posted by the results provider when a series finishes
type ResultEvent struct {
	Tournament string `json:"tournament"`
	Stage      string `json:"stage"`
	Event      string `json:"event"`
}

// ResultsWebhookHandler HTTP endpoint that receives a notification that new series results exist,
// used to kick off recalculating the bracket model and persisting the updated results
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Kicks off the recalculate function when the event is for the configured tournament
func (s *Server) ResultsWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var event ResultEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Println("failed to decode webhook:", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if event.Tournament != s.tournament {
		w.WriteHeader(http.StatusOK)
		return
	}

	if s.recalculate != nil {
		if err := s.recalculate(); err != nil {
			log.Println("recalculation failed:", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}
	w.WriteHeader(http.StatusAccepted)
}
