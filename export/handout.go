package export

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"sqlmondeck/deck"
)

var (
	handoutTitleColor = &props.Color{Red: 0, Green: 51, Blue: 102}
	handoutMutedColor = &props.Color{Red: 102, Green: 102, Blue: 102}
)

// ExportHandoutPDF writes a speaker handout: one section per slide with its title and texts.
func ExportHandoutPDF(title string, o deck.Outline) ([]byte, error) {
	if len(o.Slides) == 0 {
		return nil, fmt.Errorf("no slides to export")
	}

	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(16,
		col.New(12).Add(
			text.New(title, props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  handoutTitleColor,
			}),
		),
	)
	m.AddRow(5)

	for _, s := range o.Slides {
		addHandoutSlide(m, s)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return document.GetBytes(), nil
}

func addHandoutSlide(m core.Maroto, s deck.SlideOutline) {
	m.AddRow(9,
		col.New(12).Add(
			text.New(fmt.Sprintf("Slide %d  %s", s.Number, s.Title), props.Text{
				Family: fontfamily.Arial,
				Size:   12,
				Style:  fontstyle.Bold,
				Color:  handoutTitleColor,
			}),
		),
	)

	texts := s.Texts()
	// The first text is the title already printed above.
	if len(texts) > 0 && strings.HasPrefix(texts[0], s.Title) {
		texts = texts[1:]
	}
	for _, t := range texts {
		for _, line := range strings.Split(t, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			m.AddRow(6,
				col.New(1),
				col.New(11).Add(
					text.New(line, props.Text{
						Family: fontfamily.Arial,
						Size:   9,
						Color:  handoutMutedColor,
					}),
				),
			)
		}
	}

	m.AddRow(5)
}
