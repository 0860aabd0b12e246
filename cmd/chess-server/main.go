// chess-server runs the supplemental HTTP+WebSocket front end described
// in SPEC_FULL section 6: POST /search runs one synchronous search, and
// GET /announce (websocket) lets an external UI push user-move
// announcements into whichever search is currently running.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/pgn-extract-go/internal/engineserver"
)

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	flag.Parse()

	if *port <= 0 || *port > 65535 {
		fmt.Fprintln(os.Stderr, "chess-server: invalid port number")
		os.Exit(1)
	}

	if err := engineserver.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		fmt.Fprintf(os.Stderr, "chess-server: %v\n", err)
		os.Exit(1)
	}
}
