package formatter

import (
	"fmt"

	"github.com/futig/babyname/internal/entity"
)

const baseTitle = "Baby Names"

type Formatter interface {
	Format(pairs []entity.NameMeaningPair) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct {
	fontPath    string
	docxEnabled bool
}

// NewFactory creates formatters; fontPath optionally points at a UTF-8 TTF for PDF output.
// DOCX is only offered once a unioffice license has been loaded.
func NewFactory(fontPath string, docxEnabled bool) *Factory {
	return &Factory{fontPath: fontPath, docxEnabled: docxEnabled}
}

// Available reports whether Create can build a formatter for format
func (f *Factory) Available(format entity.ExportFormat) bool {
	if format == entity.FormatDOCX {
		return f.docxEnabled
	}
	return format.IsValid()
}

func (f *Factory) Create(format entity.ExportFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		if !f.docxEnabled {
			return nil, fmt.Errorf("%w: %s", entity.ErrFormatUnavailable, format)
		}
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(f.fontPath), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
