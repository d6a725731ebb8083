package services

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"
)

const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeText = "text/plain"
)

// ExtractorService converts an uploaded document into plain text. It never
// fails: a document that cannot be read yields empty text, which the rest
// of the pipeline treats as a resume with no usable content.
type ExtractorService interface {
	ExtractText(mediaType, filename string, data []byte) string
}

type extractorService struct {
	logger *zap.Logger
}

func NewExtractorService(logger *zap.Logger) ExtractorService {
	return &extractorService{logger: logger}
}

func (e *extractorService) ExtractText(mediaType, filename string, data []byte) string {
	switch resolved := ResolveMediaType(mediaType, filename); {
	case resolved == MediaTypePDF:
		text, err := extractPDFText(data)
		if err != nil {
			e.logger.Warn("pdf extraction failed",
				zap.String("filename", filename),
				zap.Error(err),
			)
			return ""
		}
		return text

	case strings.HasSuffix(resolved, "document"):
		text, err := extractDocxText(data)
		if err != nil {
			e.logger.Warn("docx extraction failed",
				zap.String("filename", filename),
				zap.Error(err),
			)
			return ""
		}
		return text

	default:
		// Plain-text fallback: decode raw bytes as-is.
		return string(data)
	}
}

// ResolveMediaType prefers the declared media type and falls back to the
// filename extension when the client sent nothing useful.
func ResolveMediaType(declared, filename string) string {
	declared = strings.TrimSpace(strings.ToLower(declared))
	if declared != "" && declared != "application/octet-stream" {
		// Strip any parameters like "; charset=utf-8".
		if idx := strings.Index(declared, ";"); idx != -1 {
			declared = strings.TrimSpace(declared[:idx])
		}
		return declared
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MediaTypePDF
	case ".docx", ".doc":
		return MediaTypeDocx
	default:
		return MediaTypeText
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Scanned or broken pages contribute nothing.
			continue
		}

		if textBuilder.Len() > 0 {
			textBuilder.WriteString("\n")
		}
		textBuilder.WriteString(text)
	}

	return textBuilder.String(), nil
}

var (
	docxParagraphRe = regexp.MustCompile(`</w:p>`)
	docxTagRe       = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	// The raw body is WordprocessingML. Keep paragraph breaks, drop the
	// rest of the markup, and decode the common entities.
	content = docxParagraphRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	content = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	).Replace(content)

	return strings.TrimSpace(content), nil
}
