package formatter

import (
	"bytes"
	"os"
	"testing"

	"github.com/futig/babyname/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPairs = []entity.NameMeaningPair{
	{Name: "Amir", Meaning: "Prince"},
	{Name: "Badshah", Meaning: "King"},
}

func TestFactory_Create(t *testing.T) {
	f := NewFactory("", true)

	for _, format := range []entity.ExportFormat{entity.FormatMarkdown, entity.FormatPDF, entity.FormatDOCX} {
		fmtr, err := f.Create(format)
		require.NoError(t, err, format)
		assert.NotEmpty(t, fmtr.ContentType())
		assert.NotEmpty(t, fmtr.FileExtension())
	}

	_, err := f.Create("html")
	assert.Error(t, err)
}

func TestFactory_DOCXWithoutLicense(t *testing.T) {
	f := NewFactory("", false)

	_, err := f.Create(entity.FormatDOCX)

	assert.ErrorIs(t, err, entity.ErrFormatUnavailable)
	assert.False(t, f.Available(entity.FormatDOCX))
	assert.True(t, f.Available(entity.FormatMarkdown))
	assert.True(t, f.Available(entity.FormatPDF))
	assert.False(t, f.Available("html"))
}

func TestLoadDOCXLicense_EmptyKey(t *testing.T) {
	assert.ErrorIs(t, LoadDOCXLicense(""), entity.ErrFormatUnavailable)
}

func TestDOCXFormatter_Format(t *testing.T) {
	key := os.Getenv("EXPORT_UNIOFFICE_KEY")
	if key == "" {
		// unioffice refuses to save documents until a license is loaded
		_, err := NewDOCXFormatter().Format(testPairs)
		assert.Error(t, err)
		return
	}

	require.NoError(t, LoadDOCXLicense(key))

	out, err := NewDOCXFormatter().Format(testPairs)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("PK")))
}

func TestMarkdownFormatter_Format(t *testing.T) {
	out, err := NewMarkdownFormatter().Format(testPairs)

	require.NoError(t, err)
	assert.Equal(t, "# Baby Names\n\n- **Amir** - *Prince*\n- **Badshah** - *King*\n", string(out))
}

func TestPDFFormatter_Format(t *testing.T) {
	out, err := NewPDFFormatter("does/not/exist.ttf").Format(testPairs)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
