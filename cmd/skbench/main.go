// Command skbench drives configurable workloads against a skipset.SkipSet and
// reports timing plus the set's internal counters in a summary table.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"

	"github.com/cricoveri/skipset"
	"github.com/cricoveri/skipset/workload"
)

type result struct {
	spec    workloadSpec
	ops     int
	elapsed time.Duration
	size    int
	height  int
	stats   skipset.Metrics
}

func main() {
	var (
		configPath string
		ops        int
		keyRange   int
		seed       int64
		height     int
	)
	flag.StringVar(&configPath, "config", "", "YAML workload config (defaults used when empty)")
	flag.IntVar(&ops, "ops", 0, "override number of operations per workload")
	flag.IntVar(&keyRange, "keys", 0, "override key range")
	flag.Int64Var(&seed, "seed", 0, "override generator seed")
	flag.IntVar(&height, "height", -1, "override fixed set height (0 = auto-sized)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if ops > 0 {
		cfg.Ops = ops
	}
	if keyRange > 0 {
		cfg.KeyRange = keyRange
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if height >= 0 {
		cfg.Height = height
	}

	log.Info().
		Int("key_range", cfg.KeyRange).
		Int("ops", cfg.Ops).
		Int64("seed", cfg.Seed).
		Int("workloads", len(cfg.Workloads)).
		Msg("starting bench")

	results := make([]result, 0, len(cfg.Workloads))
	for _, spec := range cfg.Workloads {
		res, err := runWorkload(cfg, spec)
		if err != nil {
			log.Fatal().Err(err).Str("workload", spec.Name).Msg("run workload")
		}
		log.Info().
			Str("workload", spec.Name).
			Dur("elapsed", res.elapsed).
			Int("size", res.size).
			Int("height", res.height).
			Msg("workload done")
		results = append(results, res)
	}

	render(results)
}

func runWorkload(cfg benchConfig, spec workloadSpec) (result, error) {
	gen, err := newGenerator(cfg, spec)
	if err != nil {
		return result{}, err
	}
	mix := workload.NewMix(gen, cfg.Seed, spec.InsertPct, spec.DeletePct)
	ops := mix.Ops(cfg.Ops)

	var set *skipset.SkipSet[int]
	if cfg.Height > 0 {
		set = skipset.NewWithHeight[int](cfg.Height)
	} else {
		set = skipset.New[int]()
	}

	start := time.Now()
	for _, op := range ops {
		switch op.Kind {
		case workload.KindInsert:
			set.Insert(op.Key)
		case workload.KindDelete:
			set.Delete(op.Key)
		default:
			set.Contains(op.Key)
		}
	}
	elapsed := time.Since(start)

	return result{
		spec:    spec,
		ops:     len(ops),
		elapsed: elapsed,
		size:    set.Len(),
		height:  set.Height(),
		stats:   set.Stats(),
	}, nil
}

func newGenerator(cfg benchConfig, spec workloadSpec) (workload.Generator, error) {
	switch spec.Dist {
	case "uniform", "":
		return workload.NewUniform(cfg.KeyRange, cfg.Seed), nil
	case "zipf":
		return workload.NewZipf(cfg.KeyRange, cfg.ZipfS, cfg.ZipfV, cfg.Seed), nil
	case "ascending":
		return workload.NewAscending(cfg.KeyRange), nil
	default:
		return nil, fmt.Errorf("workload %s: unknown distribution %q", spec.Name, spec.Dist)
	}
}

func render(results []result) {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		opsPerSec := float64(r.ops) / r.elapsed.Seconds()
		cmpPerOp := float64(r.stats.Comparisons) / float64(r.ops)
		rows = append(rows, []string{
			r.spec.Name,
			r.spec.Dist,
			fmt.Sprintf("%d", r.ops),
			fmt.Sprintf("%.1f", float64(r.elapsed.Microseconds())/1000.0),
			fmt.Sprintf("%.0f", opsPerSec),
			fmt.Sprintf("%d", r.size),
			fmt.Sprintf("%d", r.height),
			fmt.Sprintf("%d", r.stats.Grows),
			fmt.Sprintf("%d", r.stats.Trims),
			fmt.Sprintf("%.2f", cmpPerOp),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Workload", "Dist", "Ops", "Ms", "Ops/s", "Size", "Height", "Grows", "Trims", "Cmp/Op"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}
