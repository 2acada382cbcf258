package main

import (
	"fmt"

	"github.com/sibexico/memsim/mmu"
	"github.com/sibexico/memsim/trace"
	"github.com/urfave/cli/v2"
)

var ConvertCmd = cli.Command{
	Action: convert,
	Name:   "convert",
	Usage:  "re-encodes a trace with a different compression",
	Flags: []cli.Flag{
		&fromFlag,
		&toFlag,
		&convertPageSizeFlag,
	},
	ArgsUsage: "<source trace> <target trace>",
}

var (
	fromFlag = cli.StringFlag{
		Name:  "from",
		Usage: "compression of the source: auto, none, snappy or lz4",
		Value: string(trace.CompressionAuto),
	}
	toFlag = cli.StringFlag{
		Name:  "to",
		Usage: "compression of the target: auto, none, snappy or lz4",
		Value: string(trace.CompressionAuto),
	}
	convertPageSizeFlag = cli.Uint64Flag{
		Name:  "page-size",
		Usage: "page size used to validate records",
		Value: mmu.DefaultPageSize,
	}
)

func convert(ctx *cli.Context) error {
	if ctx.Args().Len() != 2 {
		return fmt.Errorf("expected source and target trace")
	}
	src, dst := ctx.Args().Get(0), ctx.Args().Get(1)

	n, err := trace.Convert(src, dst,
		trace.Compression(ctx.String(fromFlag.Name)),
		trace.Compression(ctx.String(toFlag.Name)),
		ctx.Uint64(convertPageSizeFlag.Name))
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "converted %d records from %s to %s\n", n, src, dst)
	return nil
}
