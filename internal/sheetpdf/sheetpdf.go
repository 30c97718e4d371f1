// Package sheetpdf prints the helper's stress tracks, consequences and fate
// points as a one-page PDF record sheet, so a player can carry the state of
// the form to the table.
package sheetpdf

import (
	"bytes"
	"errors"
	"math"
	"strconv"

	"github.com/jung-kurt/gofpdf/v2"

	"sotchelper/internal/helper"
)

const (
	pageW     = 595
	margin    = 40
	boxSize   = 22.0
	boxGap    = 6.0
	boxRowGap = 14.0
	lineH     = 18.0
	fontSize  = 10
	titleSize = 18
	labelSize = 12

	contentW = pageW - 2*margin
	labelW   = 90.0
)

// boxesPerRow is how many boxes fit between the margins.
var boxesPerRow = int(math.Floor((contentW + boxGap) / (boxSize + boxGap)))

// ErrNoSheet is returned when there is no layout to print.
var ErrNoSheet = errors.New("sheet is required")

// Generate returns PDF bytes for the sheet filled in with st. roll is the
// last formatted total; an empty roll leaves the roll line out.
func Generate(sheet *helper.Sheet, st helper.State, roll string) ([]byte, error) {
	pdf, err := build(sheet, st, roll)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func build(sheet *helper.Sheet, st helper.State, roll string) (*gofpdf.Fpdf, error) {
	if sheet == nil {
		return nil, ErrNoSheet
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetDrawColor(80, 50, 30)
	pdf.SetTextColor(80, 50, 30)
	pdf.SetLineWidth(1)

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(0, 24, tr(sheet.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.CellFormat(0, 14, "Character record sheet", "", 1, "L", false, 0, "")
	pdf.Ln(lineH)

	for _, track := range sheet.Tracks {
		drawTrack(pdf, tr, track, st)
	}

	pdf.SetFont("Helvetica", "B", labelSize)
	pdf.CellFormat(0, lineH, "Consequences", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", fontSize)
	for _, c := range sheet.Consequences {
		label := c.Label
		if label == "" {
			label = c.Key
		}
		pdf.CellFormat(labelW, lineH, tr(label), "", 0, "L", false, 0, "")
		pdf.MultiCell(contentW-labelW, lineH, tr(st.Consequences[c.Key]), "B", "L", false)
		pdf.Ln(4)
	}
	pdf.Ln(lineH)

	pdf.SetFont("Helvetica", "B", labelSize)
	pdf.CellFormat(labelW, lineH, "Fate points", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", labelSize)
	pdf.CellFormat(60, lineH, tr(st.FatePoints), "1", 1, "C", false, 0, "")

	if roll != "" {
		pdf.Ln(lineH)
		pdf.SetFont("Helvetica", "B", labelSize)
		pdf.CellFormat(labelW, lineH, "Last roll", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", titleSize)
		pdf.CellFormat(60, lineH+6, roll, "1", 1, "C", false, 0, "")
	}
	return pdf, pdf.Error()
}

// boxOffset returns the position of box i relative to the first box. Boxes
// wrap onto a new row once a row reaches the right margin.
func boxOffset(i int) (dx, dy float64) {
	col, row := i%boxesPerRow, i/boxesPerRow
	return float64(col) * (boxSize + boxGap), float64(row) * (boxSize + boxRowGap)
}

// drawTrack draws a labelled block of numbered boxes, crossing out the
// checked ones.
func drawTrack(pdf *gofpdf.Fpdf, tr func(string) string, track helper.Track, st helper.State) {
	label := track.Label
	if label == "" {
		label = track.Key
	}
	pdf.SetFont("Helvetica", "B", labelSize)
	pdf.CellFormat(0, lineH, tr(label), "", 1, "L", false, 0, "")

	x0, y0 := pdf.GetX(), pdf.GetY()
	ids := track.BoxIDs()
	pdf.SetFont("Helvetica", "", 7)
	for i, id := range ids {
		dx, dy := boxOffset(i)
		x, y := x0+dx, y0+dy
		pdf.Rect(x, y, boxSize, boxSize, "D")
		if st.Checked(id) {
			pdf.Line(x+3, y+3, x+boxSize-3, y+boxSize-3)
			pdf.Line(x+boxSize-3, y+3, x+3, y+boxSize-3)
		}
		pdf.SetXY(x, y+boxSize+1)
		pdf.CellFormat(boxSize, 8, strconv.Itoa(i+1), "", 0, "C", false, 0, "")
	}
	_, last := boxOffset(max(len(ids)-1, 0))
	pdf.SetXY(x0, y0+last+boxSize+10)
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.Ln(lineH)
}
