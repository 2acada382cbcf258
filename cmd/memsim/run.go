package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/sibexico/memsim/mmu"
	"github.com/sibexico/memsim/results"
	"github.com/sibexico/memsim/trace"
	"github.com/urfave/cli/v2"
)

var RunCmd = cli.Command{
	Action: run,
	Name:   "run",
	Usage:  "replays a memory trace against a replacement policy",
	Flags: []cli.Flag{
		&configFlag,
		&framesFlag,
		&policyFlag,
		&seedFlag,
		&pageSizeFlag,
		&compressionFlag,
		&debugFlag,
		&limitFlag,
		&logLevelFlag,
		&logFileFlag,
		&resultsDbFlag,
	},
	ArgsUsage: "<trace file>",
}

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "JSON configuration file; flags override its values",
	}
	framesFlag = cli.IntFlag{
		Name:  "frames",
		Usage: "number of physical frames",
		Value: mmu.DefaultConfig().Frames,
	}
	policyFlag = cli.StringFlag{
		Name:  "policy",
		Usage: "replacement policy: clock, lru or rand",
		Value: mmu.DefaultConfig().Policy,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the random policy",
		Value: mmu.DefaultConfig().Seed,
	}
	pageSizeFlag = cli.Uint64Flag{
		Name:  "page-size",
		Usage: "page size in bytes used to turn addresses into pages",
		Value: mmu.DefaultPageSize,
	}
	compressionFlag = cli.StringFlag{
		Name:  "compression",
		Usage: "trace compression: auto, none, snappy or lz4",
		Value: string(trace.CompressionAuto),
	}
	debugFlag = cli.BoolFlag{
		Name:  "debug",
		Usage: "log every access, eviction and the frame table",
	}
	limitFlag = cli.Uint64Flag{
		Name:  "limit",
		Usage: "stop after this many accesses, 0 for the whole trace",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "log level: debug, info, warn or error",
		Value: mmu.DefaultConfig().LogLevel,
	}
	logFileFlag = cli.StringFlag{
		Name:  "log-file",
		Usage: "also append logs to this file",
	}
	resultsDbFlag = cli.StringFlag{
		Name:  "results-db",
		Usage: "directory of the results database, disabled if empty",
	}
)

// loadConfig merges defaults, the config file, MEMSIM_* variables and flags, in that order
func loadConfig(ctx *cli.Context) (*mmu.Config, error) {
	config := mmu.DefaultConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		loaded, err := mmu.LoadConfigFromFile(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	config.ApplyEnv()

	if ctx.IsSet(framesFlag.Name) {
		config.Frames = ctx.Int(framesFlag.Name)
	}
	if ctx.IsSet(policyFlag.Name) {
		config.Policy = ctx.String(policyFlag.Name)
	}
	if ctx.IsSet(seedFlag.Name) {
		config.Seed = ctx.Int64(seedFlag.Name)
	}
	if ctx.IsSet(pageSizeFlag.Name) {
		config.PageSize = ctx.Uint64(pageSizeFlag.Name)
	}
	if ctx.IsSet(compressionFlag.Name) {
		config.TraceCompression = ctx.String(compressionFlag.Name)
	}
	if ctx.IsSet(debugFlag.Name) {
		config.Debug = ctx.Bool(debugFlag.Name)
	}
	if ctx.IsSet(logLevelFlag.Name) {
		config.LogLevel = ctx.String(logLevelFlag.Name)
	}
	if config.Debug {
		config.LogLevel = "debug"
	}

	return config, config.Validate()
}

func run(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("missing trace file")
	}
	tracePath := ctx.Args().Get(0)

	config, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(config.LogLevel, ctx.String(logFileFlag.Name))
	if err != nil {
		return err
	}
	defer closeLog()

	sim, err := mmu.NewFromConfig(config, logger)
	if err != nil {
		return err
	}

	reader, err := trace.Open(tracePath, trace.Compression(config.TraceCompression), config.PageSize)
	if err != nil {
		return err
	}
	defer reader.Close()

	signalCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt)
	defer stop()

	logger.Info("Replaying trace", "trace", tracePath, "policy", sim.Policy(), "frames", sim.FrameCount())
	start := time.Now()
	summary, err := trace.Replay(signalCtx, sim, reader, trace.Options{
		Logger: logger,
		Debug:  config.Debug,
		Limit:  ctx.Uint64(limitFlag.Name),
	})
	if err != nil {
		return err
	}
	logger.Info("Replay finished", "accesses", summary.Accesses, "elapsed", time.Since(start))

	stats := sim.Stats()
	stats.Log(logger, sim.Policy(), sim.FrameCount())
	printStats(ctx.App.Writer, stats)

	if dir := ctx.String(resultsDbFlag.Name); dir != "" {
		if err := saveReport(dir, tracePath, sim.Policy(), config, stats); err != nil {
			return err
		}
		logger.Info("Stored run", "results_db", dir)
	}
	return nil
}

func printStats(w io.Writer, stats mmu.Statistics) {
	fmt.Fprintln(w, "Final Stats:")
	fmt.Fprintf(w, "Page Faults   : %d\n", stats.PageFaults)
	fmt.Fprintf(w, "Disk Reads    : %d\n", stats.DiskReads)
	fmt.Fprintf(w, "Disk Writes   : %d\n", stats.DiskWrites)
	fmt.Fprintf(w, "Total accesses: %d\n", stats.Accesses)
	if stats.Accesses > 0 {
		fmt.Fprintf(w, "Page Fault Rate: %.4f\n", stats.FaultRate())
	} else {
		fmt.Fprintln(w, "Page Fault Rate: N/A")
	}
}

func saveReport(dir, tracePath, policy string, config *mmu.Config, stats mmu.Statistics) error {
	abs, err := filepath.Abs(tracePath)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}

	store, err := results.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Put(results.Report{
		Trace:       abs,
		Fingerprint: results.Fingerprint(abs, info.Size()),
		Policy:      policy,
		Frames:      config.Frames,
		Seed:        config.Seed,
		PageSize:    config.PageSize,
		Stats:       stats,
		RecordedAt:  time.Now().UTC(),
	})
}
