package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"tilegrid/internal/app"
	"tilegrid/internal/render"
	"tilegrid/internal/scene"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	count := flag.Int("count", 1, "number of consecutive seeds to render")
	ticks := flag.Int("ticks", 0, "ticks to advance before capturing")
	out := flag.String("out", ".", "output directory")
	jobs := flag.Int("jobs", runtime.NumCPU(), "scenes rendered concurrently")
	list := flag.Bool("list", false, "list scenes and their parameters, then exit")
	var overrides kvList
	flag.Var(&overrides, "set", "scene parameter override in key=value form (repeatable)")
	flag.Parse()
	cfg.InstallLogger(os.Stderr)

	if *list {
		printScenes()
		return
	}

	base := cfg.SceneConfig()
	// Captures advance animations by tick count, one tick per 1/tps.
	base["step"] = (time.Second / time.Duration(max(1, cfg.TPS))).String()
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Fatalf("invalid override %q, want key=value", kv)
		}
		base[key] = value
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(1, *jobs))
	start := scene.FromMap(base).Seed
	for i := range *count {
		seed := start + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(*out, fmt.Sprintf("%s-%d.png", cfg.Scene, seed))
			return snap(cfg.Scene, withSeed(base, seed), *ticks, cfg.Scale, path)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

func withSeed(base map[string]string, seed int64) map[string]string {
	m := maps.Clone(base)
	m["seed"] = fmt.Sprint(seed)
	return m
}

func snap(name string, cfg map[string]string, ticks, scale int, path string) error {
	sc, err := scene.New(name, cfg)
	if err != nil {
		return err
	}
	for range ticks {
		sc.Tick()
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, sc.Frame(), scale); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func printScenes() {
	for _, name := range scene.Names() {
		fmt.Println(name)
		sc, err := scene.New(name, nil)
		if err != nil {
			fmt.Printf("  error: %v\n", err)
			continue
		}
		for _, p := range sc.Config.Parameters().Params {
			fmt.Printf("  %-8s %-5s %-6s %s\n", p.Key, p.Type, p.Value, p.Description)
		}
	}
}
