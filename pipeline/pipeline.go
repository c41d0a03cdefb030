// Package pipeline runs one generation: stage the template, build and render the deck, save it,
// then produce the optional handout and outline.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"sqlmondeck/asset"
	"sqlmondeck/config"
	"sqlmondeck/export"
	"sqlmondeck/logger"
	"sqlmondeck/persist"
	"sqlmondeck/slides"
)

// Result describes a finished run.
type Result struct {
	RunID        string
	TemplatePath string // staged template
	StagedPath   string
	FinalPath    string
	Slides       int
	Bytes        int64
	SHA256       string
	HandoutPath  string
	OutlinePath  string
}

// Run executes the pipeline. A nil log disables logging. Every error is a *StepError; nothing is
// written before the template has been staged and validated.
func Run(cfg *config.Config, log *logger.Logger) (res *Result, err error) {
	if log == nil {
		log = logger.NewLogger()
	}
	res = &Result{RunID: uuid.New().String()}
	log.Begin(res.RunID)
	defer func() { log.End(err) }()

	fail := func(step string, err error) error {
		log.Step(step, "failed: %v", err)
		return wrapStep(step, err)
	}

	log.Step(StepConfig, "template=%s staging=%s output=%s", cfg.TemplatePath, cfg.StagingDir, cfg.OutputPath)
	if err := cfg.Validate(); err != nil {
		return nil, fail(StepConfig, err)
	}

	tpl, err := asset.StageTemplate(cfg.TemplatePath, cfg.StagingDir)
	if err != nil {
		return nil, fail(StepTemplate, err)
	}
	theme, err := tpl.Theme()
	if err != nil {
		return nil, fail(StepTemplate, err)
	}
	res.TemplatePath = tpl.Path
	log.Step(StepTemplate, "staged %s (%s)", tpl.Path, tpl.MIME)

	d := slides.SQLServerMonitoring()
	if cfg.Title != "" {
		d.Title = cfg.Title
	}
	if cfg.Author != "" {
		d.Creator = cfg.Author
	}

	data, err := export.Build(d, theme)
	if err != nil {
		return nil, fail(StepRender, err)
	}
	log.Step(StepRender, "%d slides, %d shapes, %d bytes", len(d.Slides), d.ShapeCount(), len(data))

	res.StagedPath = cfg.StagedDeckPath()
	saved, err := persist.Save(data, res.StagedPath, cfg.OutputPath)
	if err != nil {
		return nil, fail(StepSave, err)
	}
	res.FinalPath = saved.Path
	res.Bytes = saved.Bytes
	res.SHA256 = saved.SHA256
	log.Step(StepSave, "%s sha256=%s", saved.Path, saved.SHA256)

	n, err := export.CountSlides(res.StagedPath)
	if err != nil {
		return nil, fail(StepCount, err)
	}
	res.Slides = n
	texts, err := export.SlideTexts(res.StagedPath)
	if err != nil {
		return nil, fail(StepCount, err)
	}
	for i, t := range texts {
		if len(t) > 0 {
			log.Step(StepCount, "slide %d: %s", i+1, t[0])
		}
	}

	outline := d.Outline()

	if cfg.HandoutPath != "" {
		pdf, err := export.ExportHandoutPDF(d.Title, outline)
		if err == nil {
			err = writeFile(cfg.HandoutPath, pdf)
		}
		if err != nil {
			return nil, fail(StepHandout, err)
		}
		res.HandoutPath = cfg.HandoutPath
		log.Step(StepHandout, "wrote %s", cfg.HandoutPath)
	}

	if cfg.OutlinePath != "" {
		xlsx, err := export.ExportOutlineExcel(d.Title, outline)
		if err == nil {
			err = writeFile(cfg.OutlinePath, xlsx)
		}
		if err != nil {
			return nil, fail(StepOutline, err)
		}
		res.OutlinePath = cfg.OutlinePath
		log.Step(StepOutline, "wrote %s", cfg.OutlinePath)
	}

	return res, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
