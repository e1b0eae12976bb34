package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/rs/xid"
	"github.com/spf13/cobra"

	"github.com/sarchlab/cachesim/cache"
	"github.com/sarchlab/cachesim/cache/replacement"
	"github.com/sarchlab/cachesim/memory"
	"github.com/sarchlab/cachesim/trace"
)

var runFlags struct {
	tracePath    string
	totalSize    uint64
	lineSize     int
	ways         int
	policy       string
	addressWidth int
	record       bool
	recordPath   string
	verbose      bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a trace file and print the statistics.",
	RunE:  runTrace,
}

func init() {
	f := runCmd.Flags()

	f.StringVar(&runFlags.tracePath, "trace", "",
		"path of the trace file to replay")
	f.Uint64Var(&runFlags.totalSize,
		"size", envUint("CACHESIM_SIZE", 16*1024),
		"total cache capacity in bytes")
	f.IntVar(&runFlags.lineSize,
		"line-size", envInt("CACHESIM_LINE_SIZE", 64),
		"line size in bytes, must be a power of two")
	f.IntVar(&runFlags.ways,
		"ways", envInt("CACHESIM_WAYS", 4),
		"number of lines per set")
	f.StringVar(&runFlags.policy,
		"policy", envString("CACHESIM_POLICY", "lru"),
		"replacement policy, lru or mru")
	f.IntVar(&runFlags.addressWidth,
		"address-width", envInt("CACHESIM_ADDRESS_WIDTH", 48),
		"number of address bits")
	f.BoolVar(&runFlags.record, "record", false,
		"record every access into an SQLite database")
	f.StringVar(&runFlags.recordPath, "record-path", "",
		"database file to record into, a unique name is picked if empty")
	f.BoolVar(&runFlags.verbose, "verbose", false,
		"log write-backs as they happen")

	cobra.CheckErr(runCmd.MarkFlagRequired("trace"))

	rootCmd.AddCommand(runCmd)
}

func runTrace(_ *cobra.Command, _ []string) error {
	accesses, err := trace.ParseFile(runFlags.tracePath)
	if err != nil {
		return err
	}

	mode, err := replacement.ParseMode(runFlags.policy)
	if err != nil {
		return err
	}

	var wbLogger *log.Logger
	if runFlags.verbose {
		wbLogger = log.New(os.Stderr, "cachesim ", 0)
	}

	capacity := uint64(1) << runFlags.addressWidth
	if runFlags.addressWidth >= 64 {
		capacity = ^uint64(0)
	}

	sink := memory.NewWritebackSink(
		memory.NewStorage(capacity),
		runFlags.lineSize,
		wbLogger,
	)

	c, err := cache.MakeBuilder().
		WithTotalByteSize(runFlags.totalSize).
		WithLineSize(runFlags.lineSize).
		WithWayAssociativity(runFlags.ways).
		WithReplacementMode(mode).
		WithAddressWidth(runFlags.addressWidth).
		WithEvictionHandler(sink).
		Build()
	if err != nil {
		return err
	}

	var recorder trace.Recorder
	if runFlags.record {
		sqlRecorder, err := trace.NewSQLiteRecorder(runFlags.recordPath)
		if err != nil {
			return err
		}
		defer sqlRecorder.Close()

		recorder = sqlRecorder
	}

	stats, err := trace.NewRunner(c, recorder).Run(accesses)
	if err != nil {
		return err
	}

	printSummary(xid.New().String(), stats, sink.Writebacks())

	return nil
}

func printSummary(
	runID string,
	stats cache.Statistics,
	writebacks uint64,
) {
	total := stats.Hits + stats.Misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(stats.Hits) / float64(total)
	}

	fmt.Printf("run %s\n", runID)
	fmt.Printf("accesses:        %d\n", total)
	fmt.Printf("hits:            %d\n", stats.Hits)
	fmt.Printf("misses:          %d\n", stats.Misses)
	fmt.Printf("evictions:       %d\n", stats.Evictions)
	fmt.Printf("dirty evictions: %d\n", stats.DirtyEvictions)
	fmt.Printf("writebacks:      %d\n", writebacks)
	fmt.Printf("hit rate:        %.4f\n", hitRate)
}

func envString(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}

	return fallback
}

func envInt(name string, fallback int) int {
	if v, ok := os.LookupEnv(name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return fallback
}

func envUint(name string, fallback uint64) uint64 {
	if v, ok := os.LookupEnv(name); ok {
		if n, err := strconv.ParseUint(v, 0, 64); err == nil {
			return n
		}
	}

	return fallback
}
