// Package asset stages the template presentation the deck borrows its default styling from.
package asset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"sqlmondeck/export"
	"sqlmondeck/persist"
)

const pptxMIME = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// ErrNotPresentation is returned when a template is not a PowerPoint package.
var ErrNotPresentation = errors.New("template is not a presentation")

// Template is a template copied into the staging directory.
type Template struct {
	Source string
	Path   string
	MIME   string
}

// StageTemplate copies src into stagingDir and validates the copy. A missing template yields an
// error wrapping fs.ErrNotExist.
func StageTemplate(src, stagingDir string) (*Template, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("failed to find template: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotPresentation, src)
	}

	staged := filepath.Join(stagingDir, filepath.Base(src))
	if _, err := persist.CopyFile(src, staged); err != nil {
		return nil, fmt.Errorf("failed to stage template: %w", err)
	}

	mime, err := validate(staged)
	if err != nil {
		return nil, err
	}
	return &Template{Source: src, Path: staged, MIME: mime}, nil
}

func validate(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to detect template type: %w", err)
	}
	if !isZipFamily(mt) {
		return "", fmt.Errorf("%w: detected %s", ErrNotPresentation, mt.String())
	}

	pkg, err := openTemplate(path)
	if err != nil {
		return "", err
	}
	if !pkg.Has("ppt/presentation.xml") {
		return "", fmt.Errorf("%w: no presentation part", ErrNotPresentation)
	}
	return mt.String(), nil
}

func isZipFamily(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is(pptxMIME) || m.Is("application/zip") {
			return true
		}
	}
	return false
}

func openTemplate(path string) (*export.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	pkg, err := export.OpenPackage(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPresentation, err)
	}
	return pkg, nil
}

// Theme returns the theme part of the staged template.
func (t *Template) Theme() ([]byte, error) {
	pkg, err := openTemplate(t.Path)
	if err != nil {
		return nil, err
	}
	name, err := pkg.ThemePart()
	if err != nil {
		return nil, fmt.Errorf("failed to locate template theme: %w", err)
	}
	return pkg.Part(name)
}
