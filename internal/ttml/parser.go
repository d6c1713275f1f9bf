package ttml

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Parse reads one TTML document and returns its cues in document order.
// Every <p> under <body> becomes a segment unless its text is empty. A
// document without body or paragraphs yields an empty Document.
func Parse(r io.Reader) (Document, error) {
	root, err := buildTree(r)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	var doc Document

	body := root.find("body")
	if body == nil {
		return doc, nil
	}

	for _, p := range body.findAll("p", nil) {
		var b strings.Builder
		p.collectText(&b)

		text := strings.Join(strings.Fields(b.String()), " ")
		if text == "" {
			continue
		}

		seg := Segment{Text: text}
		if begin, ok := p.attrs["begin"]; ok {
			if seconds, ok := ParseBegin(begin); ok {
				seg.Start = seconds
				seg.HasStart = true
			} else {
				doc.UnreadableBegins++
			}
		}
		doc.Segments = append(doc.Segments, seg)
	}

	return doc, nil
}

// ParseBytes is Parse over an in-memory document
func ParseBytes(content []byte) (Document, error) {
	return Parse(bytes.NewReader(content))
}
