package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"formulab/internal/models"
	"formulab/internal/recommend"
)

// Format selects the rendered document type.
type Format string

const (
	FormatText Format = "txt"
	FormatPDF  Format = "pdf"
)

// ErrUnknownFormat is returned for formats the renderer does not produce.
var ErrUnknownFormat = fmt.Errorf("unknown report format")

// Document is an opaque rendered report.
type Document struct {
	Bytes       []byte
	ContentType string
	Filename    string
}

// Renderer turns a request plus an optional ranked-similarity section into a
// byte stream. fontPath points at a UTF-8 TTF used for PDF output; Korean
// text renders as garbage without one.
type Renderer struct {
	fontPath string
}

func NewRenderer(fontPath string) *Renderer {
	return &Renderer{fontPath: fontPath}
}

// Render produces the report in the requested format.
func (r *Renderer) Render(format Format, req models.Request, similar []recommend.Match) (Document, error) {
	switch format {
	case FormatText:
		return r.renderText(req, similar), nil
	case FormatPDF:
		return r.renderPDF(req, similar)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func filename(id string, ext string) string {
	return fmt.Sprintf("report-%s-%s.%s", id, uuid.New().String()[:8], ext)
}

func (r *Renderer) renderText(req models.Request, similar []recommend.Match) Document {
	flat := models.Flatten(req)

	var b strings.Builder
	b.WriteString("개발 의뢰서\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")
	for _, key := range models.FlatKeys {
		fmt.Fprintf(&b, "%s: %s\n", key, flat[key])
	}

	if len(similar) > 0 {
		b.WriteString("\n유사 처방 추천\n")
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, m := range similar {
			fmt.Fprintf(&b, "%s\n", similarLine(m))
		}
	}

	return Document{
		Bytes:       []byte(b.String()),
		ContentType: "text/plain; charset=utf-8",
		Filename:    filename(req.ID, "txt"),
	}
}

func (r *Renderer) renderPDF(req models.Request, similar []recommend.Match) (Document, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	font := "Arial"
	if r.fontPath != "" {
		font = "Report"
		pdf.AddUTF8Font(font, "", r.fontPath)
	}

	pdf.AddPage()
	pdf.SetFont(font, "", 14)
	pdf.CellFormat(0, 10, "개발 의뢰서", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(font, "", 11)
	flat := models.Flatten(req)
	for _, key := range models.FlatKeys {
		pdf.CellFormat(0, 8, fmt.Sprintf("%s: %s", key, flat[key]), "", 1, "L", false, 0, "")
	}

	if len(similar) > 0 {
		pdf.Ln(6)
		pdf.SetFont(font, "", 13)
		pdf.CellFormat(0, 10, "유사 처방 추천", "", 1, "L", false, 0, "")
		pdf.SetFont(font, "", 11)
		for _, m := range similar {
			pdf.CellFormat(0, 8, similarLine(m), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Document{}, fmt.Errorf("render pdf: %w", err)
	}

	return Document{
		Bytes:       buf.Bytes(),
		ContentType: "application/pdf",
		Filename:    filename(req.ID, "pdf"),
	}, nil
}

func similarLine(m recommend.Match) string {
	return fmt.Sprintf("%s: %s (%.2f)", m.ID, m.Name, m.Score)
}
