package export

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sqlmondeck/deck"
)

const (
	testPresentation = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:sldIdLst><p:sldId id="256" r:id="rId3"/><p:sldId id="257" r:id="rId2"/></p:sldIdLst><p:sldSz cx="9144000" cy="6858000" type="screen4x3"/><p:notesSz cx="6858000" cy="9144000"/></p:presentation>`

	testPresentationRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="theme/theme1.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide1.xml"/><Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide2.xml"/></Relationships>`

	testSlideHead = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`
	testSlideTail = `</p:spTree></p:cSld></p:sld>`

	testShape = `<p:sp><p:nvSpPr><p:cNvPr id="2" name="Shape"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="1" cy="1"/></a:xfrm></p:spPr><p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US" sz="1000"/><a:t>old</a:t></a:r><a:endParaRPr lang="en-US"/></a:p></p:txBody></p:sp>`
)

func testSlide(shapes int) string {
	return testSlideHead + strings.Repeat(testShape, shapes) + testSlideTail
}

func buildZip(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range []string{
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/theme/theme1.xml",
	} {
		body, ok := parts[name]
		if !ok {
			continue
		}
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// slide2.xml is listed first in p:sldIdLst, so it carries the first model slide.
func testPackage(t *testing.T, first, second int) []byte {
	return buildZip(t, map[string]string{
		"ppt/presentation.xml":            testPresentation,
		"ppt/_rels/presentation.xml.rels": testPresentationRels,
		"ppt/slides/slide2.xml":           testSlide(first),
		"ppt/slides/slide1.xml":           testSlide(second),
		"ppt/theme/theme1.xml":            `<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office"/>`,
	})
}

func testDeck() *deck.Deck {
	d := deck.New()
	s := d.AddSlide()
	s.SetBackground(deck.White)
	s.AddRectangle(deck.In(0, 0, 13.333, 1.2), deck.DarkBlue)
	s.AddTextBox(deck.In(0.8, 0.25, 11, 0.8), "Agenda\nsecond line", deck.WithSize(36), deck.WithBold())
	s.AddBulletList(deck.In(1.5, 1.8, 10, 5), []string{"one", "two"})

	s2 := d.AddSlide()
	s2.AddLabeledBox(deck.In(1, 1, 2, 1), deck.Green, "Agentless")
	return d
}

func partString(t *testing.T, data []byte, name string) string {
	t.Helper()
	pkg, err := OpenPackage(data)
	require.NoError(t, err)
	body, err := pkg.Part(name)
	require.NoError(t, err)
	return string(body)
}

func TestFinishMatchesModelOutline(t *testing.T) {
	d := testDeck()
	out, err := Finish(testPackage(t, 3, 1), d, FinishOptions{})
	require.NoError(t, err)

	got, err := Inspect(out)
	require.NoError(t, err)
	require.Equal(t, d.Outline(), got)
}

func TestFinishWritesSlideProperties(t *testing.T) {
	out, err := Finish(testPackage(t, 3, 1), testDeck(), FinishOptions{})
	require.NoError(t, err)

	pres := partString(t, out, "ppt/presentation.xml")
	require.Contains(t, pres, `cx="12191695"`)
	require.Contains(t, pres, `cy="6858000"`)
	require.NotContains(t, pres, `type="screen4x3"`)

	first := partString(t, out, "ppt/slides/slide2.xml")
	require.Contains(t, first, `<p:bg><p:bgPr><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`)
	require.Contains(t, first, `name="Rectangle 1"`)
	require.Contains(t, first, `<a:ln><a:noFill/></a:ln>`)
	require.Contains(t, first, `wrap="square"`)
	require.Contains(t, first, `<a:spcPts val="600"/>`)
	require.Contains(t, first, `typeface="Segoe UI"`)
	require.Contains(t, first, `sz="3600"`)
	require.Contains(t, first, `<a:br>`)
	require.NotContains(t, first, ">old<")
	require.Less(t, strings.Index(first, "<p:bg>"), strings.Index(first, "<p:spTree>"))

	second := partString(t, out, "ppt/slides/slide1.xml")
	require.NotContains(t, second, "<p:bg>")
	require.Contains(t, second, `prst="roundRect"`)
	require.Contains(t, second, `anchor="ctr"`)
	require.Contains(t, second, `algn="ctr"`)
	require.NotContains(t, second, `txBox="1"`)
}

func TestFinishKeepsRunsBeforeEndParagraph(t *testing.T) {
	out, err := Finish(testPackage(t, 3, 1), testDeck(), FinishOptions{})
	require.NoError(t, err)

	first := partString(t, out, "ppt/slides/slide2.xml")
	box := first[strings.Index(first, `name="TextBox 2"`):]
	require.Less(t, strings.Index(box, ">second line<"), strings.Index(box, "<a:endParaRPr"))
}

func TestFinishRejectsShapeMismatch(t *testing.T) {
	_, err := Finish(testPackage(t, 2, 1), testDeck(), FinishOptions{})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFinishRejectsSlideMismatch(t *testing.T) {
	d := testDeck()
	d.AddSlide()
	_, err := Finish(testPackage(t, 3, 1), d, FinishOptions{})
	require.ErrorIs(t, err, ErrSlideMismatch)
}

func TestFinishReplacesTheme(t *testing.T) {
	theme := []byte(`<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Template"/>`)
	out, err := Finish(testPackage(t, 3, 1), testDeck(), FinishOptions{Theme: theme})
	require.NoError(t, err)
	require.Equal(t, string(theme), partString(t, out, "ppt/theme/theme1.xml"))
}

func TestPackageRoundTripKeepsPartOrder(t *testing.T) {
	data := testPackage(t, 1, 1)
	pkg, err := OpenPackage(data)
	require.NoError(t, err)

	out, err := pkg.Bytes()
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/theme/theme1.xml",
	}, names)

	slides, err := pkg.SlideParts()
	require.NoError(t, err)
	require.Equal(t, []string{"ppt/slides/slide2.xml", "ppt/slides/slide1.xml"}, slides)

	theme, err := pkg.ThemePart()
	require.NoError(t, err)
	require.Equal(t, "ppt/theme/theme1.xml", theme)
}

func TestPartMissing(t *testing.T) {
	pkg, err := OpenPackage(testPackage(t, 1, 1))
	require.NoError(t, err)
	_, err = pkg.Part("ppt/slides/slide9.xml")
	require.ErrorIs(t, err, ErrMissingPart)
	require.False(t, pkg.Has("ppt/slides/slide9.xml"))
}

func TestOpenPackageRejectsNonZip(t *testing.T) {
	_, err := OpenPackage([]byte("not a zip"))
	require.Error(t, err)
}

func TestResolveTarget(t *testing.T) {
	require.Equal(t, "ppt/slides/slide1.xml", resolveTarget("ppt/presentation.xml", "slides/slide1.xml"))
	require.Equal(t, "ppt/theme/theme1.xml", resolveTarget("ppt/slideMasters/slideMaster1.xml", "../theme/theme1.xml"))
	require.Equal(t, "ppt/slides/slide1.xml", resolveTarget("ppt/presentation.xml", "/ppt/slides/slide1.xml"))
	require.Equal(t, "ppt/_rels/presentation.xml.rels", relsPath("ppt/presentation.xml"))
}
