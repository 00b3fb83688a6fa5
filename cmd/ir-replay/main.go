// Command ir-replay decodes a capture file (or a directory of them)
// offline, without any GPIO hardware - the bench counterpart to
// cmd/ir-bridge's live pin sampling. It wires internal/irreplay's capture
// reader straight into the same pkg/irdecode multi-receiver ironode uses,
// and prints each decoded command as JSON to stdout instead of publishing
// it to a transport.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/edgeflow/irdecode/internal/irbridge"
	"github.com/edgeflow/irdecode/internal/ironode"
	"github.com/edgeflow/irdecode/internal/irreplay"
)

func main() {
	file := flag.String("file", "", "capture file to replay once, then exit")
	watchDir := flag.String("watch", "", "directory to watch for new capture files (runs until interrupted)")
	protocolsFlag := flag.String("protocols", "nec,rc5", "comma-separated pair of protocols to decode against")
	samplerHz := flag.Uint("sampler-hz", 1_000_000, "sampler rate the capture's dt values are expressed in")
	flag.Parse()

	if *file == "" && *watchDir == "" {
		fmt.Fprintln(os.Stderr, "ir-replay: one of -file or -watch is required")
		os.Exit(1)
	}

	protocols, err := parseProtocolPair(*protocolsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ir-replay: %v\n", err)
		os.Exit(1)
	}

	recv, err := ironode.BuildMultiReceiver2(protocols, uint32(*samplerHz))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ir-replay: %v\n", err)
		os.Exit(1)
	}

	emit := func(dt uint32, edge bool) {
		results := recv.Event(dt, edge)
		for i, cmd := range results {
			if cmd == nil {
				continue
			}
			env, ok := irbridge.FromCmdUnion(0, *cmd, time.Now())
			if !ok {
				continue
			}
			env.Protocol = protocols[i]
			printEnvelope(env)
		}
	}

	if *file != "" {
		if err := irreplay.ReplayFile(*file, emit); err != nil {
			fmt.Fprintf(os.Stderr, "ir-replay: %v\n", err)
			os.Exit(1)
		}
		return
	}

	log, _ := zap.NewDevelopment()
	defer log.Sync()

	watcher, err := irreplay.NewWatcher(*watchDir, emit, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ir-replay: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()

	fmt.Fprintf(os.Stderr, "ir-replay: watching %s for capture files (Ctrl-C to stop)\n", *watchDir)
	watcher.Run()
}

func parseProtocolPair(s string) ([2]string, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return [2]string{}, fmt.Errorf("-protocols expects exactly two comma-separated names, got %q", s)
	}
	return [2]string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])}, nil
}

func printEnvelope(env irbridge.Envelope) {
	out, err := json.Marshal(env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ir-replay: failed to marshal envelope: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
