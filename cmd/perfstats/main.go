package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/config"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/injector"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	format := flag.String("format", "", "report format: text, json or yaml")
	fieldList := flag.String("fields", "", "comma separated fields to summarize (default: all)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] dataset.yaml|dataset.json...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(2)
	}
	if *format != "" {
		cfg.Report.Format = *format
	}
	if *fieldList != "" {
		cfg.Report.Fields = splitFields(*fieldList)
	}
	cfg.Dataset.Paths = append(cfg.Dataset.Paths, flag.Args()...)
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = injector.InitializeApp(cfg).Run(ctx, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func splitFields(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
