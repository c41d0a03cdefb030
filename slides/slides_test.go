package slides

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sqlmondeck/deck"
)

func TestDeckHasTenSlidesInOrder(t *testing.T) {
	d := SQLServerMonitoring()
	require.Len(t, d.Slides, Count)

	want := []struct {
		title      string
		background string
		shapes     int
	}{
		{"SQL Server Monitoring Solution", "", 6},
		{"Agenda", "FFFFFF", 3},
		{"The Challenge", "FFFFFF", 15},
		{"Solution Overview", "FFFFFF", 13},
		{"Architecture", "FFFFFF", 23},
		{"Data Pipeline — Logs Ingestion API", "FFFFFF", 15},
		{"Workbook Dashboard — 4 Tabs", "FFFFFF", 19},
		{"Security & Authentication", "FFFFFF", 13},
		{"Deployment — Easy as 1-2-3", "FFFFFF", 23},
		{"Next Steps", "", 6},
	}

	outline := d.Outline()
	for i, w := range want {
		so := outline.Slides[i]
		require.Equal(t, i+1, so.Number)
		require.Equal(t, w.title, so.Title, "slide %d", i+1)
		require.Equal(t, w.background, so.Background, "slide %d", i+1)
		require.Len(t, so.Shapes, w.shapes, "slide %d", i+1)
	}
	require.Equal(t, 136, d.ShapeCount())
}

func TestTitleSlideText(t *testing.T) {
	d := SQLServerMonitoring()
	texts := d.Outline().Slides[0].Texts()
	require.Equal(t, []string{
		"SQL Server Monitoring Solution",
		"Centralized Monitoring with Azure Automation & Logs Ingestion API",
		"Azure Monitor  |  Log Analytics  |  Custom Workbook",
		"Microsoft Azure Monitor Assets",
	}, texts)
	require.Equal(t, DeckTitle, d.Title)
}

func TestEveryShapeFitsTheCanvas(t *testing.T) {
	d := SQLServerMonitoring()
	canvas := d.Bounds()
	for _, s := range d.Slides {
		for _, sh := range s.Shapes {
			require.True(t, sh.Frame.Within(canvas), "slide %d %s %+v", s.Number, sh.Name, sh.Frame)
		}
	}
}

func TestAgendaListsEightItems(t *testing.T) {
	s := SQLServerMonitoring().Slides[1]
	list := s.Shapes[2]
	require.Len(t, list.Paragraphs, 8)
	require.Equal(t, "1.  Challenge & Business Problem", list.Paragraphs[0].Text)
	require.Equal(t, "8.  Demo & Next Steps", list.Paragraphs[7].Text)
	for _, p := range list.Paragraphs {
		require.Equal(t, 22, p.Font.Size)
		require.Equal(t, 6, p.SpaceAfter)
	}
}

func TestChallengeCardsAreLaidOutInAColumnGrid(t *testing.T) {
	s := SQLServerMonitoring().Slides[2]
	var boxes []*deck.Shape
	for _, sh := range s.Shapes {
		if sh.Kind == deck.KindRoundedRect {
			boxes = append(boxes, sh)
		}
	}
	require.Len(t, boxes, 4)
	for i, b := range boxes {
		require.Equal(t, deck.Inches(0.8+float64(i)*3.1), b.Frame.Left)
		require.Equal(t, deck.LightBlue, *b.Fill)
		require.False(t, b.HasText())
	}
	// Card titles are inset 0.2in from their box.
	require.Equal(t, boxes[1].Frame.Left+deck.Inches(0.2), s.Shapes[7].Frame.Left)
	require.Equal(t, "Backup Compliance", s.Shapes[7].Text())
}

func TestArchitectureZones(t *testing.T) {
	s := SQLServerMonitoring().Slides[4]
	var rects, boxes int
	for _, sh := range s.Shapes {
		switch sh.Kind {
		case deck.KindRectangle:
			rects++
		case deck.KindRoundedRect:
			boxes++
		}
	}
	require.Equal(t, 4, rects, "title band plus three zones")
	require.Equal(t, 12, boxes)
	require.True(t, strings.HasPrefix(s.Shapes[22].Text(), "Data Flow:  ① Schedule triggers runbook"))
}

func TestWorkbookTabsCarryThreeFeaturesEach(t *testing.T) {
	s := SQLServerMonitoring().Slides[6]
	var tabs []string
	for _, sh := range s.Shapes {
		if sh.Kind == deck.KindRoundedRect {
			tabs = append(tabs, sh.Text())
		}
	}
	require.Equal(t, []string{"📊 Summary", "🖥️ Instances", "🗄️ Databases", "💾 Backups"}, tabs)
}

func TestDeploymentChecklist(t *testing.T) {
	texts := SQLServerMonitoring().Outline().Slides[8].Texts()
	require.Contains(t, texts, "✓  Automation Account (System MI)")
	require.Contains(t, texts, "✓  Color-coded visualizations")
	require.Contains(t, texts, "arm-template-data-collection.json")
	require.Contains(t, texts, "Step 2\nData Collection")
}

func TestClosingSlide(t *testing.T) {
	s := SQLServerMonitoring().Slides[9]
	require.Nil(t, s.Background)
	list := s.Shapes[3]
	require.Len(t, list.Paragraphs, 7)
	require.Equal(t, paleBlue, list.Paragraphs[0].Font.Color)
	require.Equal(t, "Thank You", s.Shapes[5].Text())
}

func TestDeckIsDeterministic(t *testing.T) {
	require.Equal(t, SQLServerMonitoring().Outline(), SQLServerMonitoring().Outline())
}
