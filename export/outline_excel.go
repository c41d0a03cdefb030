package export

import (
	"bytes"
	"fmt"
	"math"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"sqlmondeck/deck"
)

var outlineColumns = []struct {
	title string
	width float64
}{
	{"Slide", 8},
	{"Slide Title", 36},
	{"Shape", 22},
	{"Geometry", 12},
	{"Left (in)", 10},
	{"Top (in)", 10},
	{"Width (in)", 10},
	{"Height (in)", 10},
	{"Text", 70},
}

func inches(e deck.EMU) float64 {
	return math.Round(e.Inches()*1000) / 1000
}

// ExportOutlineExcel writes a one-sheet workbook listing every shape of the outline.
func ExportOutlineExcel(title string, o deck.Outline) ([]byte, error) {
	if len(o.Slides) == 0 {
		return nil, fmt.Errorf("no slides to export")
	}

	wb := gospreadsheet.New()
	ws := wb.GetActiveSheet()
	ws.SetTitle("Outline")

	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
			Name:  deck.DefaultFamily,
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: deck.DarkBlue.Hex(),
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
		})

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
			Name: deck.DefaultFamily,
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
		})

	for i, c := range outlineColumns {
		cellName, _ := gospreadsheet.CellName(0, i)
		ws.SetCellValue(cellName, c.title)
		ws.SetCellStyle(cellName, headerStyle)
		ws.SetColumnWidth(i, c.width)
	}
	ws.SetRowHeight(0, 25)

	row := 1
	for _, s := range o.Slides {
		for _, sh := range s.Shapes {
			values := []interface{}{
				s.Number,
				s.Title,
				sh.Name,
				sh.Geometry,
				inches(sh.Frame.Left),
				inches(sh.Frame.Top),
				inches(sh.Frame.Width),
				inches(sh.Frame.Height),
				sh.Text,
			}
			for colIdx, v := range values {
				cellName, _ := gospreadsheet.CellName(row, colIdx)
				ws.SetCellValue(cellName, v)
				ws.SetCellStyle(cellName, dataStyle)
			}
			row++
		}
	}

	ws.FreezePane("A2")

	wb.Properties.Title = title
	wb.Properties.Creator = "sqlmondeck"
	wb.Properties.Subject = "Slide outline"

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buf.Bytes(), nil
}
