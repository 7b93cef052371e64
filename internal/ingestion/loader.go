package ingestion

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Default input locations, relative to the working directory.
const (
	DefaultMasterResumePath    = "master_resume.csv"
	DefaultJobDescriptionsPath = "job_descriptions.txt"
)

var (
	// ErrNotFound is returned when an input document does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrEmpty is returned when an input document has no text content.
	ErrEmpty = errors.New("file is empty")
)

// IsMissing reports whether err means the input is absent or blank.
// Both cases are recoverable: the pipeline reports them and stops before any remote call.
func IsMissing(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrEmpty)
}

// Format identifies how a document's text is obtained
type Format string

const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
)

// DetectFormat picks the extraction format from the file extension.
// Anything unrecognized, including .csv, is treated as opaque text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatText
	}
}

// LoadText reads the full text of the document at path.
// Plain-text documents are returned byte-for-byte; PDF, DOCX and HTML documents are
// converted to text and normalized with CleanText.
func LoadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, expected a file", path)
	}

	var text string
	switch DetectFormat(path) {
	case FormatPDF:
		text, err = extractPDF(path)
	case FormatDOCX:
		text, err = extractDOCX(path)
	case FormatHTML:
		text, err = extractHTML(path)
	default:
		var content []byte
		content, err = os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", path, err)
		}
		return string(content), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}

	return CleanText(text), nil
}

// LoadMasterResume loads the master résumé as opaque text.
// The content is not parsed, so a .csv résumé is passed through as-is.
func LoadMasterResume(path string) (string, error) {
	text, err := LoadText(path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return text, nil
}

// LoadJobDescriptions loads the job descriptions with surrounding whitespace trimmed.
func LoadJobDescriptions(path string) (string, error) {
	text, err := LoadText(path)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return text, nil
}
