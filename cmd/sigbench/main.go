package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/parkwork/sig"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	maxSubsKey = "max-subs"
)

func main() {
	cmd := &cli.Command{
		Name:  "sigbench",
		Usage: "Benchmark emitter fan-out and runner reuse",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  itersKey,
				Usage: "emissions per scenario",
				Value: 10_000,
			},
			&cli.IntFlag{
				Name:  maxSubsKey,
				Usage: "largest subscriber count",
				Value: 1_000,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Int(itersKey))
	maxSubs := int(cmd.Int(maxSubsKey))

	log.Printf("warming up")
	warmup()

	total := benchmarkFanOut(iters, maxSubs)
	total += benchmarkSuspension(iters)

	fmt.Printf("dispatched %s handler invocations\n", humanize.Comma(total))
	return nil
}

// warmup makes sure the shared runner already exists so the first measured
// emission doesn't pay for goroutine startup.
func warmup() {
	e := sig.New[int]()
	e.Subscribe(func(_ *sig.Runner, _ int) {})
	for i := 0; i < 100; i++ {
		e.Emit(0)
	}
}

func benchmarkFanOut(iters, maxSubs int) int64 {
	tbl := table.NewWriter()
	tbl.SetTitle("Emit latency, synchronous handlers")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"subscribers", "avg", "min", "p75", "p99", "max"})

	var total int64
	for subs := 1; subs <= maxSubs; subs *= 10 {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		e := sig.New[int]()
		for i := 0; i < subs; i++ {
			e.Subscribe(func(_ *sig.Runner, _ int) {})
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			e.Emit(1)
			tach.AddTime(time.Since(start))
		}
		total += int64(subs) * int64(iters)

		calc := tach.Calc()
		tbl.AppendRow(table.Row{
			subs,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		})
	}

	tbl.Render()
	return total
}

func benchmarkSuspension(iters int) int64 {
	tbl := table.NewWriter()
	tbl.SetTitle("Suspend/resume round trip")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	tach := tachymeter.New(&tachymeter.Config{Size: iters})

	e := sig.New[int]()
	parked := make(chan *sig.Runner, 1)
	e.Subscribe(func(co *sig.Runner, _ int) {
		parked <- co
		co.Yield()
	})

	for i := 0; i < iters; i++ {
		start := time.Now()
		e.Emit(1)
		(<-parked).Resume()
		tach.AddTime(time.Since(start))
	}

	calc := tach.Calc()
	tbl.AppendRow(table.Row{
		"suspend+resume",
		calc.Time.Avg,
		calc.Time.Min,
		calc.Time.P75,
		calc.Time.P99,
		calc.Time.Max,
	})

	tbl.Render()
	return int64(iters)
}
