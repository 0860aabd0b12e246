package engineserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/pgn-extract-go/internal/chess"
	"github.com/lgbarn/pgn-extract-go/internal/config"
	"github.com/lgbarn/pgn-extract-go/internal/dispatch"
)

// Server is the supplemental HTTP+WebSocket front end named in SPEC_FULL
// section 6: a feature present in original_source but dropped by the
// distillation, added back because it enriches the repo without
// touching any Non-goal. It is strictly additive - internal/dispatch and
// everything below it has zero dependency on Server and remains fully
// usable as a library without ever starting one.
//
// Grounded on the retrieved pack's only HTTP-serving example,
// walterschell-chess-analyzer/webapp.go: gorilla/mux for routing,
// gorilla/websocket for the live announcement stream, gorilla/handlers
// for access logging.
type Server struct {
	router   *mux.Router
	upgrader websocket.Upgrader

	mu        sync.Mutex
	userMoves chan string // non-nil only while a /search call is in flight
}

// NewServer builds the router: POST /search runs one synchronous search,
// GET /announce (websocket) lets an external UI push user-move
// announcements into whichever search is currently running.
func NewServer() *Server {
	s := &Server{
		router: mux.NewRouter(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	s.router.Use(func(next http.Handler) http.Handler {
		return handlers.LoggingHandler(os.Stdout, next)
	})
	s.router.HandleFunc("/search", s.searchHandler).Methods(http.MethodPost)
	s.router.HandleFunc("/announce", s.announceHandler).Methods(http.MethodGet)
	return s
}

// ServeHTTP lets Server plug directly into http.ListenAndServe.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// searchRequest is /search's JSON body.
type searchRequest struct {
	FEN         string `json:"fen"`
	Depth       int    `json:"depth"`
	TimeLimitMS int64  `json:"time_limit_ms"`
	MaxWorkers  int    `json:"max_workers"`
}

// searchResponse is /search's JSON result, the HTTP-transport shape of
// spec.md 6's "(from, to, promotion?, score)".
type searchResponse struct {
	From      string  `json:"from,omitempty"`
	To        string  `json:"to,omitempty"`
	Promotion string  `json:"promotion,omitempty"`
	Score     float64 `json:"score"`
	Found     bool    `json:"found"`
}

func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("malformed request body: %v", err), http.StatusBadRequest)
		return
	}
	pos, side, err := chess.ParseFEN(req.FEN)
	if err != nil {
		http.Error(w, fmt.Sprintf("bad fen: %v", err), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if s.userMoves != nil {
		s.mu.Unlock()
		http.Error(w, "a search is already in progress", http.StatusConflict)
		return
	}
	userMoves := make(chan string, 1)
	s.userMoves = userMoves
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.userMoves = nil
		s.mu.Unlock()
		close(userMoves)
	}()

	cfg := config.NewSearchConfigBuilder(req.Depth).WithMaxWorkers(req.MaxWorkers)
	if req.TimeLimitMS > 0 {
		cfg = cfg.WithTimeLimit(time.Duration(req.TimeLimitMS) * time.Millisecond)
	}

	result, err := dispatch.Search(pos, side, cfg.Build(), userMoves)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toSearchResponse(result))
}

func toSearchResponse(result dispatch.Result) searchResponse {
	if !result.Found {
		return searchResponse{Found: false}
	}
	promo := ""
	if result.Move.Promotion != chess.Empty {
		promo = string(result.Move.Promotion.Letter())
	}
	return searchResponse{
		From:      result.Move.From.String(),
		To:        result.Move.To.String(),
		Promotion: promo,
		Score:     float64(result.Score),
		Found:     true,
	}
}

// announceHandler upgrades to a websocket and forwards every text
// message it reads as a user-move announcement to whichever /search
// call is currently running (spec.md 4.I.4). A message arriving with no
// search in flight is dropped: the announcement channel is best-effort,
// not a queue, matching dispatch's own non-blocking receive.
func (s *Server) announceHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		s.mu.Lock()
		ch := s.userMoves
		s.mu.Unlock()
		if ch == nil {
			continue
		}
		select {
		case ch <- string(raw):
		default:
		}
	}
}

// ListenAndServe starts the supplemental HTTP+WebSocket front end on
// addr (e.g. ":8080").
func ListenAndServe(addr string) error {
	fmt.Printf("chess-server listening on %s\n", addr)
	return http.ListenAndServe(addr, NewServer())
}
