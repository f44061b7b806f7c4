package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/config"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/dataset"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/models"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/observability/log"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/report"
)

var (
	ErrNoDatasets = errors.New("no dataset paths given")
)

// App loads datasets into a collection and reports on it.
type App struct {
	cfg    *config.Config
	logger log.Log
}

func New(cfg *config.Config, logger log.Log) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// Run executes one analysis and writes the report to w.
func (a *App) Run(ctx context.Context, w io.Writer) error {
	if len(a.cfg.Dataset.Paths) == 0 {
		return ErrNoDatasets
	}

	format, err := report.ParseFormat(a.cfg.Report.Format)
	if err != nil {
		return err
	}

	start := time.Now()
	docs, err := dataset.LoadFiles(ctx, a.cfg.Dataset.Concurrency, a.cfg.Dataset.Paths...)
	if err != nil {
		return fmt.Errorf("load datasets: %w", err)
	}
	a.logger.Debug("datasets loaded",
		log.Int("files", len(docs)),
		log.Duration("took", time.Since(start)),
	)

	collection := models.NewCollection(models.WithLogger(a.logger))
	dataset.Apply(collection, a.logger, docs...)

	r, err := report.Build(collection, a.cfg.Report.Fields...)
	if err != nil {
		// fields nobody holds are reported but do not suppress the rest
		a.logger.Warn("report incomplete", log.Error(err))
	}

	if err = report.Render(w, r, format); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
