// Command transitcat is a two-mode CLI: it reads one JSON document
// from stdin and either writes a binary snapshot (make_base) or
// answers a stream of queries against a previously written one
// (process_requests). Optional .env overrides are loaded with godotenv
// before anything else runs.
package main

import (
	"encoding/json"
	"os"

	"github.com/joho/godotenv"

	"github.com/yourorg/transitcat/internal/config"
	"github.com/yourorg/transitcat/internal/engine"
	"github.com/yourorg/transitcat/internal/snapshot"
	"github.com/yourorg/transitcat/internal/telemetry"
)

const usageExitCode = 5

func main() {
	_ = godotenv.Load()

	if len(os.Args) != 2 {
		telemetry.Warnf("usage: transitcat make_base|process_requests")
		os.Exit(usageExitCode)
	}

	switch os.Args[1] {
	case "make_base":
		runMakeBase()
	case "process_requests":
		runProcessRequests()
	default:
		telemetry.Warnf("unknown mode %q, want make_base|process_requests", os.Args[1])
		os.Exit(usageExitCode)
	}
}

func runMakeBase() {
	in, err := config.Decode(os.Stdin)
	if err != nil {
		telemetry.Fatalf("%v", err)
	}

	bundle, err := in.Build()
	if err != nil {
		telemetry.Fatalf("%v", err)
	}

	e, err := engine.MakeBase(bundle)
	if err != nil {
		telemetry.Fatalf("%v", err)
	}

	data := snapshot.FromEngine(e)
	telemetry.Infof("make_base: build %s (%d stops, %d buses, %d companies)",
		data.BuildID, len(data.StopNames), len(data.Buses), len(data.Companies))

	f, err := os.Create(bundle.SnapshotFile)
	if err != nil {
		telemetry.Fatalf("snapshot: create %q: %v", bundle.SnapshotFile, err)
	}
	defer f.Close()

	if err := snapshot.Write(f, data); err != nil {
		telemetry.Fatalf("%v", err)
	}
}

func runProcessRequests() {
	in, err := config.Decode(os.Stdin)
	if err != nil {
		telemetry.Fatalf("%v", err)
	}

	f, err := os.Open(in.SerializationSettings.File)
	if err != nil {
		telemetry.Fatalf("snapshot: open %q: %v", in.SerializationSettings.File, err)
	}
	data, err := snapshot.Read(f)
	f.Close()
	if err != nil {
		telemetry.Fatalf("%v", err)
	}
	telemetry.Infof("process_requests: loaded build %s", data.BuildID)

	e := snapshot.ToEngine(data)

	stat, err := config.ParseStatRequests(in.StatRequests)
	if err != nil {
		telemetry.Fatalf("%v", err)
	}

	responses := make([]interface{}, 0, len(stat))
	for _, req := range stat {
		resp, err := e.Answer(req)
		if err != nil {
			telemetry.Fatalf("request %d: %v", req.ID, err)
		}
		responses = append(responses, resp)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(responses); err != nil {
		telemetry.Fatalf("encode responses: %v", err)
	}
}
