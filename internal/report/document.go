package report

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/common/units"
	"github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/gomutex/godocx/wml/stypes"
)

// Paragraph and table styles shipped with the default godocx template.
const (
	styleCaption    = "Caption"
	styleListBullet = "ListBullet"
	styleTableGrid  = "TableGrid"
)

// Document lays the report out in its fixed order: title, chart, caption,
// summary heading, table and, for campus reps, the comments section.
func (r *Report) Document() (*docx.RootDoc, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(r.Chart))
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("decode chart: empty image")
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("new document: %w", err)
	}

	title, err := doc.AddHeading(r.Title, 1)
	if err != nil {
		return nil, err
	}
	title.Justification(stypes.JustificationCenter)

	height := chartWidth * float64(cfg.Height) / float64(cfg.Width)
	if err := addChart(doc, r.Chart, chartWidth, height); err != nil {
		return nil, err
	}

	caption := doc.AddParagraph(Caption)
	caption.Style(styleCaption)
	caption.Justification(stypes.JustificationCenter)

	if _, err := doc.AddHeading(SummaryHeading, 2); err != nil {
		return nil, err
	}
	addTable(doc, r.Table)

	if r.Variant.HasComments() {
		if _, err := doc.AddHeading(CommentsHeading, 2); err != nil {
			return nil, err
		}
		if len(r.Comments) == 0 {
			doc.AddParagraph(NoComments)
		}
		for _, c := range r.Comments {
			doc.AddParagraph(c).Style(styleListBullet)
		}
	}
	return doc, nil
}

// addChart embeds the PNG centered at the given size. godocx reads pictures
// from disk, so the bytes go through a temporary file that is removed once
// the picture is loaded into the package.
func addChart(doc *docx.RootDoc, chart []byte, width, height float64) error {
	f, err := os.CreateTemp("", "likert-chart-*.png")
	if err != nil {
		return fmt.Errorf("stage chart: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(chart); err != nil {
		f.Close()
		return fmt.Errorf("stage chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("stage chart: %w", err)
	}

	pic, err := doc.AddPicture(f.Name(), units.Inch(width), units.Inch(height))
	if err != nil {
		return fmt.Errorf("embed chart: %w", err)
	}
	pic.Para.Justification(stypes.JustificationCenter)
	return nil
}

// addTable writes rows as a grid. The first row is the header: shaded, bold
// and smaller. Every cell is centered and short rows are padded.
func addTable(doc *docx.RootDoc, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	cols := len(rows[0])

	tbl := doc.AddTable()
	tbl.Style(styleTableGrid)
	for i, row := range rows {
		tr := tbl.AddRow()
		for j := 0; j < cols; j++ {
			var text string
			if j < len(row) {
				text = row[j]
			}
			p := tr.AddCell().AddEmptyPara()
			p.Justification(stypes.JustificationCenter)
			run := p.AddText(text)
			if i == 0 {
				run.Bold(true).Size(headerSize)
				p.GetCT().Property.Shading = ctypes.NewShading().
					SetShadingType(stypes.ShdClear).
					SetColor("auto").
					SetFill(headerFill)
			}
		}
	}
}
