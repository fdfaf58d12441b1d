package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/ssig/ssig"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	signalsKey    = "signals"
	runsKey       = "runs"
	workloadKey   = "workload"
	markdownKey   = "markdown"
	cpuProfileKey = "cpuprofile"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Compare ssig dispatch with plain func and interface calls",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  signalsKey,
				Usage: "Number of slots connected to each signal",
				Value: 1_000,
			},
			&cli.UintFlag{
				Name:  runsKey,
				Usage: "Number of timed dispatches",
				Value: 1_000,
			},
			&cli.StringFlag{
				Name:  workloadKey,
				Usage: "Slot body: inc or hash",
				Value: "inc",
			},
			&cli.BoolFlag{
				Name:  markdownKey,
				Usage: "Render results as a markdown table",
			},
			&cli.StringFlag{
				Name:  cpuProfileKey,
				Usage: "Write a CPU profile to this file",
			},
		},
		Action: benchmark,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

var (
	payload = []byte("the quick brown fox jumps over the lazy dog")
	sink    int
)

var workloads = map[string]func(int) int{
	"inc": func(i int) int {
		return i + 1
	},
	"hash": func(i int) int {
		return int(xxhash.Sum64(payload)&0xffff) + i
	},
}

type caller interface {
	call(i int) int
}

type adder struct{ work func(int) int }

func (a adder) call(i int) int { return a.work(i) }

type doubler struct{ work func(int) int }

func (d doubler) call(i int) int { return d.work(i * 2) }

type contender struct {
	name    string
	prepare func(slots int, work func(int) int) func() error
}

var contenders = []contender{
	{
		name: "slice of funcs",
		prepare: func(slots int, work func(int) int) func() error {
			fns := make([]func(int) int, slots)
			for i := range fns {
				fns[i] = work
			}
			return func() error {
				for _, fn := range fns {
					sink = fn(2)
				}
				return nil
			}
		},
	},
	{
		name: "slice of interfaces",
		prepare: func(slots int, work func(int) int) func() error {
			callers := make([]caller, slots)
			for i := range callers {
				if rand.Intn(2) == 0 {
					callers[i] = adder{work}
				} else {
					callers[i] = doubler{work}
				}
			}
			return func() error {
				for _, c := range callers {
					sink = c.call(2)
				}
				return nil
			}
		},
	},
	{
		name: "ssig.Signal",
		prepare: func(slots int, work func(int) int) func() error {
			sig := &ssig.Signal[int, int]{}
			for i := 0; i < slots; i++ {
				sig.Connect(work)
			}
			return func() error {
				r, err := sig.Invoke(2)
				sink = r
				return err
			}
		},
	},
	{
		name: "ssig.Void",
		prepare: func(slots int, work func(int) int) func() error {
			sig := &ssig.Void[int]{}
			for i := 0; i < slots; i++ {
				sig.Connect(func(x int) { sink = work(x) })
			}
			return func() error {
				return sig.Invoke(2)
			}
		},
	},
	{
		name: "ssig.Signal2",
		prepare: func(slots int, work func(int) int) func() error {
			sig := &ssig.Signal2[int, int, int]{}
			for i := 0; i < slots; i++ {
				sig.Connect(func(a, b int) int { return work(a + b) })
			}
			return func() error {
				r, err := sig.Invoke(1, 1)
				sink = r
				return err
			}
		},
	},
}

func benchmark(ctx context.Context, cmd *cli.Command) error {
	slots := int(cmd.Uint(signalsKey))
	runs := int(cmd.Uint(runsKey))
	if slots == 0 || runs == 0 {
		return fmt.Errorf("--%s and --%s must be positive", signalsKey, runsKey)
	}
	workloadName := cmd.String(workloadKey)
	work, ok := workloads[workloadName]
	if !ok {
		return fmt.Errorf("unknown workload %q", workloadName)
	}

	if path := cmd.String(cpuProfileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	log.Printf("Benchmark with %s slots and %s runs (%s)", humanize.Comma(int64(slots)), humanize.Comma(int64(runs)), workloadName)
	defer func() {
		log.Printf("Benchmark finished in %v", time.Since(start))
	}()

	rows := make([]table.Row, 0, len(contenders))
	for _, c := range contenders {
		log.Printf("Running %s", c.name)
		run := c.prepare(slots, work)

		// warm up
		for i := 0; i < runs/10+1; i++ {
			if err := run(); err != nil {
				return fmt.Errorf("%s: %w", c.name, err)
			}
		}

		tach := tachymeter.New(&tachymeter.Config{Size: runs})
		for i := 0; i < runs; i++ {
			t := time.Now()
			if err := run(); err != nil {
				return fmt.Errorf("%s: %w", c.name, err)
			}
			tach.AddTime(time.Since(t))
		}

		calc := tach.Calc()
		rows = append(rows, table.Row{
			c.name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
			humanize.Comma(int64(calc.Rate.Second)),
		})
	}

	title := fmt.Sprintf("ssig dispatch: %s slots x %s runs", humanize.Comma(int64(slots)), humanize.Comma(int64(runs)))
	if cmd.Bool(markdownKey) {
		renderMarkdown(title, rows)
		return nil
	}
	renderTable(title, rows)
	return nil
}

var header = []string{"benchmark", "avg", "min", "p75", "p99", "max", "dispatch/s"}

func renderTable(title string, rows []table.Row) {
	hdr := make(table.Row, len(header))
	for i, h := range header {
		hdr[i] = h
	}

	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(hdr)
	tbl.AppendRows(rows)
	tbl.Render()
}

func renderMarkdown(title string, rows []table.Row) {
	fmt.Printf("### %s\n\n", title)

	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader(header)
	tw.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	tw.SetCenterSeparator("|")
	tw.SetAutoFormatHeaders(false)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		tw.Append(cells)
	}
	tw.Render()
}
