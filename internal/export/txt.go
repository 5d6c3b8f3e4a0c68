package export

import (
	"strings"

	"github.com/voxtools/cursor-export/internal"
)

var textSeparator = "\n\n" + strings.Repeat("-", 40) + "\n\n"

// renderText renders one conversation as plain text: uppercase role labels,
// messages joined by a configurable separator (default: a rule of dashes).
func renderText(conv *internal.Conversation, opts Options) string {
	separator := opts.MessageSeparator
	if separator == "" {
		separator = textSeparator
	}

	var b strings.Builder
	b.WriteString(conv.Title + "\n")
	if opts.IncludeMetadata {
		b.WriteString("Source: " + conv.Source + "\n")
		if conv.Workspace != "" {
			b.WriteString("Workspace: " + conv.Workspace + "\n")
		}
	}
	b.WriteString("\n")

	parts := make([]string, 0, len(conv.Messages))
	for _, msg := range conv.Messages {
		label := strings.ToUpper(string(msg.Role)) + ":"
		content := msg.Content
		if opts.StripFormatting {
			content = stripFormatting(content)
		}
		parts = append(parts, label+"\n"+content)
	}
	b.WriteString(strings.Join(parts, separator))
	b.WriteString("\n")

	return b.String()
}
