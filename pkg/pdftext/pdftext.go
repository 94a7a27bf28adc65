// Package pdftext pulls plain text out of uploaded RFP documents.
package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/ledongthuc/pdf"
)

// Extract returns the plain text of a PDF held in memory.
func Extract(data []byte) (text string, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	return buf.String(), nil
}

// ExtractOrEmpty is Extract with failures logged and swallowed. A document
// that cannot be read still gets analyzed.
func ExtractOrEmpty(data []byte) string {
	text, err := Extract(data)
	if err != nil {
		slog.Warn("pdf_extract_failed", "bytes", len(data), "error", err)
		return ""
	}
	return text
}
