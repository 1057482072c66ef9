package parser

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog/log"
	"github.com/tealeg/xlsx"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyDocument     = errors.New("no text found in document")
)

// SupportedExtensions lists the file types ExtractText can read
var SupportedExtensions = []string{".pdf", ".docx", ".pptx", ".xlsx", ".ods", ".txt", ".md"}

// ExtractText returns the plain text of the document at filePath. The format is
// chosen from the file extension.
func ExtractText(filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = parsePDF(filePath)
	case ".docx":
		text, err = parseDOCX(filePath)
	case ".pptx":
		text, err = parsePPTX(filePath)
	case ".xlsx":
		text, err = parseXLSX(filePath)
	case ".ods":
		text, err = parseODS(filePath)
	case ".txt", ".md":
		text, err = parseText(filePath)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", filepath.Base(filePath), err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyDocument
	}
	log.Debug().Str("file", filepath.Base(filePath)).Int("chars", len(text)).Msg("Extracted document text")
	return text, nil
}

func parsePDF(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// Get file size for reader initialization
	stat, err := f.Stat()
	if err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		return "", err
	}

	var pages []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		pages = append(pages, strings.TrimSpace(pageText))
	}
	return strings.Join(pages, "\n"), nil
}

func parseDOCX(filePath string) (string, error) {
	r, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	// content is the raw document.xml, one <w:p> per paragraph
	content := r.Editable().GetContent()
	var paragraphs []string
	for _, p := range strings.Split(content, "</w:p>") {
		if text := strings.TrimSpace(extractTextFromXML(p, "w:t", "")); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}

func parsePPTX(filePath string) (string, error) {
	f, err := zip.OpenReader(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// zip order is not slide order
	var slides []*zip.File
	for _, file := range f.File {
		if strings.HasPrefix(file.Name, "ppt/slides/slide") && strings.HasSuffix(file.Name, ".xml") {
			slides = append(slides, file)
		}
	}
	sort.Slice(slides, func(i, j int) bool { return slideNumber(slides[i].Name) < slideNumber(slides[j].Name) })

	var texts []string
	for _, file := range slides {
		rc, err := file.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}
		if slideText := strings.TrimSpace(extractTextFromXML(string(data), "a:t", " ")); slideText != "" {
			texts = append(texts, slideText)
		}
	}
	return strings.Join(texts, "\n"), nil
}

func slideNumber(name string) int {
	var n int
	fmt.Sscanf(strings.TrimPrefix(name, "ppt/slides/slide"), "%d", &n)
	return n
}

func parseXLSX(filePath string) (string, error) {
	f, err := xlsx.OpenFile(filePath)
	if err != nil {
		return "", err
	}

	var text strings.Builder
	for _, sheet := range f.Sheets {
		for _, row := range sheet.Rows {
			var cells []string
			for _, cell := range row.Cells {
				if v := strings.TrimSpace(cell.String()); v != "" {
					cells = append(cells, v)
				}
			}
			if len(cells) > 0 {
				text.WriteString(strings.Join(cells, " ") + "\n")
			}
		}
	}
	return text.String(), nil
}

func parseODS(filePath string) (string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var text strings.Builder
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			continue
		}
		for _, row := range rows {
			var cells []string
			for _, cell := range row {
				if v := strings.TrimSpace(cell); v != "" {
					cells = append(cells, v)
				}
			}
			if len(cells) > 0 {
				text.WriteString(strings.Join(cells, " ") + "\n")
			}
		}
	}
	return text.String(), nil
}

func parseText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// extractTextFromXML joins the contents of every <tag> element with sep. Word
// splits words across runs, so docx runs are joined without a separator.
func extractTextFromXML(xmlContent, tag, sep string) string {
	var text strings.Builder
	open, closing := "<"+tag, "</"+tag+">"
	rest := xmlContent
	for {
		start := strings.Index(rest, open)
		if start < 0 {
			break
		}
		rest = rest[start+len(open):]
		// skip <w:tab/>, <w:tbl> and other tags sharing the prefix
		if len(rest) == 0 || (rest[0] != '>' && rest[0] != ' ') {
			continue
		}
		gt := strings.IndexByte(rest, '>')
		if gt < 0 {
			break
		}
		if gt > 0 && rest[gt-1] == '/' {
			rest = rest[gt+1:]
			continue
		}
		rest = rest[gt+1:]
		end := strings.Index(rest, closing)
		if end < 0 {
			break
		}
		if text.Len() > 0 {
			text.WriteString(sep)
		}
		text.WriteString(unescapeXML(rest[:end]))
		rest = rest[end+len(closing):]
	}
	return text.String()
}

var xmlUnescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", "\"", "&apos;", "'", "&amp;", "&")

func unescapeXML(s string) string {
	return xmlUnescaper.Replace(s)
}
