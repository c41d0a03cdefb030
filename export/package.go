package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

const presentationPart = "ppt/presentation.xml"

// ErrMissingPart is returned when a package lacks a part the caller needs.
var ErrMissingPart = errors.New("package part missing")

// Package is an OOXML zip package held in memory. Parts keep their original order and headers so
// a rewritten package differs from the input only in the parts that were changed.
type Package struct {
	parts []*part
	index map[string]*part
}

type part struct {
	header zip.FileHeader
	data   []byte
}

// OpenPackage reads every part of a zip package.
func OpenPackage(data []byte) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open package: %w", err)
	}
	pkg := &Package{index: make(map[string]*part, len(zr.File))}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open part %s: %w", f.Name, err)
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read part %s: %w", f.Name, err)
		}
		p := &part{header: f.FileHeader, data: body}
		pkg.parts = append(pkg.parts, p)
		pkg.index[f.Name] = p
	}
	return pkg, nil
}

// Part returns the content of a part.
func (p *Package) Part(name string) ([]byte, error) {
	pt, ok := p.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
	}
	return pt.data, nil
}

// Has reports whether the package contains a part.
func (p *Package) Has(name string) bool {
	_, ok := p.index[name]
	return ok
}

// SetPart replaces the content of a part, appending it when absent.
func (p *Package) SetPart(name string, data []byte) {
	if pt, ok := p.index[name]; ok {
		pt.data = data
		return
	}
	pt := &part{header: zip.FileHeader{Name: name, Method: zip.Deflate}, data: data}
	p.parts = append(p.parts, pt)
	p.index[name] = pt
}

// Names lists the parts under a directory prefix, sorted.
func (p *Package) Names(prefix string) []string {
	var names []string
	for name := range p.index {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Bytes serializes the package.
func (p *Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, pt := range p.parts {
		hdr := pt.header
		hdr.CompressedSize64 = 0
		hdr.UncompressedSize64 = 0
		hdr.CRC32 = 0
		w, err := zw.CreateHeader(&hdr)
		if err != nil {
			return nil, fmt.Errorf("failed to write part %s: %w", hdr.Name, err)
		}
		if _, err := w.Write(pt.data); err != nil {
			return nil, fmt.Errorf("failed to write part %s: %w", hdr.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close package: %w", err)
	}
	return buf.Bytes(), nil
}

// SlideParts returns the slide part names in presentation order, following p:sldIdLst through
// the presentation relationships.
func (p *Package) SlideParts() ([]string, error) {
	presData, err := p.Part(presentationPart)
	if err != nil {
		return nil, err
	}
	relsData, err := p.Part(relsPath(presentationPart))
	if err != nil {
		return nil, err
	}
	doc, err := readXML(presData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", presentationPart, err)
	}
	rels, err := readRels(relsData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse presentation relationships: %w", err)
	}
	targets := make(map[string]string, len(rels))
	for _, r := range rels {
		if r.Type == relTypeSlide {
			targets[r.ID] = resolveTarget(presentationPart, r.Target)
		}
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%s has no root element", presentationPart)
	}
	list := root.SelectElement("sldIdLst")
	if list == nil {
		return nil, nil
	}
	var slides []string
	for _, id := range list.SelectElements("sldId") {
		rid := relID(id)
		target, ok := targets[rid]
		if !ok {
			return nil, fmt.Errorf("%w: slide relationship %q", ErrMissingPart, rid)
		}
		slides = append(slides, target)
	}
	return slides, nil
}

// ThemePart returns the name of the theme part referenced by the presentation.
func (p *Package) ThemePart() (string, error) {
	relsData, err := p.Part(relsPath(presentationPart))
	if err != nil {
		return "", err
	}
	rels, err := readRels(relsData)
	if err != nil {
		return "", fmt.Errorf("failed to parse presentation relationships: %w", err)
	}
	for _, r := range rels {
		if r.Type == relTypeTheme {
			return resolveTarget(presentationPart, r.Target), nil
		}
	}
	return "", fmt.Errorf("%w: theme relationship", ErrMissingPart)
}
