package main

import (
	"fmt"
	"io"

	"github.com/sibexico/memsim/mmu"
	"github.com/sibexico/memsim/results"
	"github.com/urfave/cli/v2"
)

var HistoryCmd = cli.Command{
	Action: history,
	Name:   "history",
	Usage:  "lists stored simulation runs",
	Flags: []cli.Flag{
		&historyDbFlag,
		&historyPolicyFlag,
	},
}

var (
	historyDbFlag = cli.StringFlag{
		Name:     "results-db",
		Usage:    "directory of the results database",
		Required: true,
	}
	historyPolicyFlag = cli.StringFlag{
		Name:  "policy",
		Usage: "only list runs of this policy",
	}
)

func history(ctx *cli.Context) error {
	store, err := results.Open(ctx.String(historyDbFlag.Name))
	if err != nil {
		return err
	}
	defer store.Close()

	var reports []results.Report
	if policy := ctx.String(historyPolicyFlag.Name); policy != "" {
		reports, err = store.ListPolicy(mmu.CanonicalPolicy(policy))
	} else {
		reports, err = store.List()
	}
	if err != nil {
		return err
	}

	printReports(ctx.App.Writer, reports)
	return nil
}

func printReports(w io.Writer, reports []results.Report) {
	if len(reports) == 0 {
		fmt.Fprintln(w, "no runs stored")
		return
	}
	fmt.Fprintf(w, "%-8s %8s %10s %10s %10s %10s %8s  %s\n",
		"POLICY", "FRAMES", "ACCESSES", "FAULTS", "READS", "WRITES", "RATE", "TRACE")
	for _, r := range reports {
		fmt.Fprintf(w, "%-8s %8d %10d %10d %10d %10d %8.4f  %s\n",
			r.Policy, r.Frames, r.Stats.Accesses, r.Stats.PageFaults,
			r.Stats.DiskReads, r.Stats.DiskWrites, r.Stats.FaultRate(), r.Trace)
	}
}
