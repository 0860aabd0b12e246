package engineserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/lgbarn/pgn-extract-go/internal/chess"
	"github.com/lgbarn/pgn-extract-go/internal/dispatch"
)

func TestToSearchResponse_Found(t *testing.T) {
	mv := chess.Move{From: chess.MakeSquare(4, 1), To: chess.MakeSquare(4, 3)}
	resp := toSearchResponse(dispatch.Result{Move: mv, Found: true, Score: 15})
	if !resp.Found || resp.From != "E2" || resp.To != "E4" || resp.Score != 15 {
		t.Errorf("toSearchResponse() = %+v, want found E2->E4 score=15", resp)
	}
}

func TestToSearchResponse_NotFound(t *testing.T) {
	resp := toSearchResponse(dispatch.Result{Found: false})
	if resp.Found || resp.From != "" || resp.To != "" {
		t.Errorf("toSearchResponse() = %+v, want an empty not-found response", resp)
	}
}

func TestServer_Search_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(NewServer())
	defer srv.Close()

	body, _ := json.Marshal(searchRequest{
		FEN:   "8/8/8/8/8/8/8/k7 b - - 0 1",
		Depth: 1,
	})
	resp, err := http.Post(srv.URL+"/search", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /search: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !got.Found {
		t.Errorf("Found = false, want a move for a lone king with legal moves")
	}
}

func TestServer_Search_MalformedFEN(t *testing.T) {
	srv := httptest.NewServer(NewServer())
	defer srv.Close()

	body, _ := json.Marshal(searchRequest{FEN: "not a fen", Depth: 1})
	resp, err := http.Post(srv.URL+"/search", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /search: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestServer_Announce_UpgradesAndAcceptsMessages(t *testing.T) {
	srv := httptest.NewServer(NewServer())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/announce"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial /announce: %v", err)
	}
	defer conn.Close()

	// No search is in flight; the message is dropped rather than erroring.
	if err := conn.WriteMessage(websocket.TextMessage, []byte("E2E4")); err != nil {
		t.Fatalf("write message: %v", err)
	}
}
