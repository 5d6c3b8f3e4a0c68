package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/voxtools/cursor-export/internal"
)

const maxFilenameTitleLen = 50

// BatchReport aggregates the outcome of a batch export. Batches never fail
// atomically: one bad conversation is skipped, counted, and reported.
type BatchReport struct {
	Attempted int
	Succeeded int
	Skipped   int
	Paths     []string
}

// Exporter drives single, batch, and merged exports: it computes output
// paths, invokes the renderer, and performs the writes. All writes go to
// newly created files; source stores are never touched.
type Exporter struct {
	service *internal.Service
	outDir  string
}

// NewExporter creates an Exporter writing under outDir.
func NewExporter(service *internal.Service, outDir string) *Exporter {
	return &Exporter{service: service, outDir: outDir}
}

// Export renders one conversation to a string.
func (e *Exporter) Export(conv *internal.Conversation, format Format, opts Options) (string, error) {
	return Render(conv, format, opts)
}

// ExportToFile renders one conversation and writes it synchronously. When
// path is empty, one is derived from the export date, the sanitized title,
// and the id prefix. Parent directories are created as needed.
func (e *Exporter) ExportToFile(conv *internal.Conversation, format Format, path string, opts Options) (string, error) {
	content, err := Render(conv, format, opts)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = filepath.Join(e.outDir, deriveFilename(conv, format, time.Now()))
	}
	if err := writeFile(path, content); err != nil {
		return "", err
	}

	return path, nil
}

// ExportAll writes one file per reachable conversation. A conversation whose
// export fails is skipped with a warning; the batch continues.
func (e *Exporter) ExportAll(format Format, opts Options) (BatchReport, error) {
	// Reject unknown formats up front rather than once per conversation.
	switch format {
	case FormatMarkdown, FormatJSON, FormatJSONL, FormatHTML, FormatText:
	default:
		return BatchReport{}, &UnsupportedFormatError{Format: string(format)}
	}

	var report BatchReport
	for _, conv := range e.service.ListConversations(internal.ListFilter{}) {
		report.Attempted++
		path, err := e.ExportToFile(conv, format, "", opts)
		if err != nil {
			internal.LogWarn("skipping conversation %s: %v", conv.ID, err)
			report.Skipped++
			continue
		}
		report.Succeeded++
		report.Paths = append(report.Paths, path)
	}

	return report, nil
}

// ExportMerged writes one combined artifact for every reachable
// conversation. Merge semantics are format-specific: jsonl joins one object
// per line, json encodes a single list, markdown joins documents under one
// shared header. Other formats cannot be merged.
func (e *Exporter) ExportMerged(format Format, path string, opts Options) (string, error) {
	convs := e.service.ListConversations(internal.ListFilter{})

	var content string
	var err error
	switch format {
	case FormatJSONL:
		content, err = mergeJSONL(convs, opts)
	case FormatJSON:
		content, err = renderJSONList(convs, opts)
	case FormatMarkdown:
		content, err = mergeMarkdown(convs, opts)
	default:
		return "", &UnsupportedFormatError{Format: string(format)}
	}
	if err != nil {
		return "", err
	}

	if path == "" {
		name := fmt.Sprintf("conversations_%s.%s", time.Now().Format("2006-01-02"), Extension(format))
		path = filepath.Join(e.outDir, name)
	}
	if err := writeFile(path, content); err != nil {
		return "", err
	}

	return path, nil
}

func mergeJSONL(convs []*internal.Conversation, opts Options) (string, error) {
	var lines []string
	for _, conv := range convs {
		rendered, err := renderJSONL(conv, opts)
		if err != nil {
			internal.LogWarn("skipping conversation %s: %v", conv.ID, err)
			continue
		}
		lines = append(lines, strings.TrimSuffix(rendered, "\n"))
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func mergeMarkdown(convs []*internal.Conversation, opts Options) (string, error) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# Exported Conversations\n\n%d conversation(s), exported %s\n\n---\n\n",
		len(convs), time.Now().UTC().Format("2006-01-02")))

	// The shared header replaces per-document frontmatter.
	docOpts := opts
	docOpts.Frontmatter = false

	parts := make([]string, 0, len(convs))
	for _, conv := range convs {
		parts = append(parts, renderMarkdown(conv, docOpts))
	}
	b.WriteString(strings.Join(parts, "\n---\n\n"))
	return b.String(), nil
}

// deriveFilename builds {iso-date}_{sanitized-title}_{id-prefix}.{ext}.
func deriveFilename(conv *internal.Conversation, format Format, now time.Time) string {
	id := conv.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s_%s_%s.%s",
		now.Format("2006-01-02"), sanitizeTitle(conv.Title), id, Extension(format))
}

// sanitizeTitle reduces a title to a filesystem-safe slug capped at 50 chars.
func sanitizeTitle(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
		if b.Len() >= maxFilenameTitleLen {
			break
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "untitled"
	}
	return slug
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// WriteError aliases the core write failure type so callers can match it
// from either package.
type WriteError = internal.WriteError
