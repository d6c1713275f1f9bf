package transcript

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/ttml-transcript/internal/ttml"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 12
	titleSize = 16
)

type docxWriter struct{}

func (docxWriter) Extension() string { return ".docx" }

// Write renders a title paragraph followed by one paragraph per cue
func (docxWriter) Write(path, title string, doc ttml.Document, includeTimestamps bool) error {
	out, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	if title != "" {
		addStyledRun(out.AddParagraph(""), title, true, titleSize)
		out.AddParagraph("")
	}

	for _, line := range Lines(doc, includeTimestamps) {
		addStyledRun(out.AddParagraph(""), line, false, fontSize)
	}

	return out.SaveTo(path)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
