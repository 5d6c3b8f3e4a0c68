package export

import (
	"fmt"

	"github.com/voxtools/cursor-export/internal"
)

// Format is one of the supported output formats.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatJSONL    Format = "jsonl"
	FormatHTML     Format = "html"
	FormatText     Format = "txt"
)

// UnsupportedFormatError reports an export format the renderer does not
// recognize. It is a caller error, never a silent fallback.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s (supported: markdown, json, jsonl, html, txt)", e.Format)
}

// ParseFormat resolves a user-supplied format name, accepting the usual
// aliases.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "jsonl":
		return FormatJSONL, nil
	case "html":
		return FormatHTML, nil
	case "txt", "text":
		return FormatText, nil
	default:
		return "", &UnsupportedFormatError{Format: name}
	}
}

// Extension returns the file extension for a format.
func Extension(format Format) string {
	switch format {
	case FormatMarkdown:
		return "md"
	default:
		return string(format)
	}
}

// Render produces the format-specific string for one conversation. Rendering
// is pure: the conversation and options are never mutated.
func Render(conv *internal.Conversation, format Format, opts Options) (string, error) {
	if conv == nil {
		return "", fmt.Errorf("conversation is nil")
	}

	switch format {
	case FormatMarkdown:
		return renderMarkdown(conv, opts), nil
	case FormatJSON:
		return renderJSON(conv, opts)
	case FormatJSONL:
		return renderJSONL(conv, opts)
	case FormatHTML:
		return renderHTML(conv, opts), nil
	case FormatText:
		return renderText(conv, opts), nil
	default:
		return "", &UnsupportedFormatError{Format: string(format)}
	}
}
