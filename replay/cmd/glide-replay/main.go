// Command glide-replay feeds a recorded trace (trace.go's Record format)
// into a fresh Reactor and prints the resulting request stream: a
// deterministic-replay tool for debugging reactor behavior offline.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/glide-wm/glide"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: glide-replay <trace-file>")
		os.Exit(2)
	}
	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("glide-replay: %v", err)
	}
	defer f.Close()

	reactor := glide.NewReactor(glide.DefaultConfig())
	replayer := glide.NewReplayer(f)

	reqs, err := glide.ReplayAll(replayer, reactor)
	if err != nil {
		log.Fatalf("glide-replay: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, req := range reqs {
		if err := enc.Encode(req); err != nil {
			log.Fatalf("glide-replay: %v", err)
		}
	}
}
