package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"github.com/voxtools/cursor-export/internal"
)

const markdownSeparator = "\n\n---\n\n"

// renderMarkdown renders one conversation as a markdown document: optional
// frontmatter, a title heading, then each message under its role header.
func renderMarkdown(conv *internal.Conversation, opts Options) string {
	var b strings.Builder

	if opts.Frontmatter {
		b.WriteString(renderFrontmatter(conv, opts, time.Now().UTC()))
	}

	b.WriteString("# " + conv.Title + "\n\n")

	if opts.IncludeMetadata {
		b.WriteString("**Source:** " + conv.Source + "  \n")
		if conv.Workspace != "" {
			b.WriteString("**Workspace:** " + conv.Workspace + "  \n")
		}
		b.WriteString("**Messages:** " + strconv.Itoa(conv.MessageCount) + "\n\n")
	}

	separator := opts.MessageSeparator
	if separator == "" {
		separator = markdownSeparator
	}

	parts := make([]string, 0, len(conv.Messages))
	for _, msg := range conv.Messages {
		parts = append(parts, renderMarkdownMessage(msg, opts))
	}
	b.WriteString(strings.Join(parts, separator))
	b.WriteString("\n")

	return b.String()
}

func renderMarkdownMessage(msg internal.Message, opts Options) string {
	header := opts.UserHeader
	if msg.Role == internal.RoleAssistant {
		header = opts.AssistantHeader
	}

	content := msg.Content
	if opts.StripFormatting {
		content = stripFormatting(content)
	}
	if opts.SyntaxHighlight {
		// Fences must sit on their own lines before the wrap pass can
		// tell code apart from prose.
		content = normalizeFences(content)
	}
	if opts.LineWidth > 0 {
		content = wrapProse(content, opts.LineWidth)
	}
	content = applyCallout(content, msg.Role, opts.CalloutStyle)

	return header + "\n\n" + content
}

// normalizeFences forces every ``` marker onto its own line. An opening
// fence keeps its language tag; anything trailing a closing fence moves to
// the next line.
func normalizeFences(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	inFence := false
	last := byte('\n')
	i := 0
	for i < len(content) {
		if strings.HasPrefix(content[i:], "```") {
			if last != '\n' {
				b.WriteByte('\n')
			}
			b.WriteString("```")
			i += 3
			if !inFence {
				for i < len(content) && isLangChar(content[i]) {
					b.WriteByte(content[i])
					i++
				}
			}
			inFence = !inFence
			if i < len(content) && content[i] != '\n' {
				b.WriteByte('\n')
			}
			last = '\n'
			continue
		}
		b.WriteByte(content[i])
		last = content[i]
		i++
	}

	return b.String()
}

func isLangChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '+' || c == '-' || c == '#' || c == '_' || c == '.'
}

// wrapProse word-wraps prose lines at the given width. Lines inside a fenced
// block and indented code lines are never split.
func wrapProse(content string, width int) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	inFence := false

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimLeft(line, " "), "```") {
			inFence = !inFence
			out = append(out, line)
			continue
		}
		if inFence || isIndentedCode(line) {
			out = append(out, line)
			continue
		}
		out = append(out, wordwrap.String(line, width))
	}

	return strings.Join(out, "\n")
}

func isIndentedCode(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

// applyCallout wraps message content in the configured callout style.
func applyCallout(content string, role internal.Role, style CalloutStyle) string {
	switch style {
	case CalloutAdmonition:
		marker := "> [!note] User"
		if role == internal.RoleAssistant {
			marker = "> [!info] Assistant"
		}
		return marker + "\n" + quoteLines(content)
	case CalloutGitHub:
		marker := "> [!NOTE]"
		if role == internal.RoleAssistant {
			marker = "> [!TIP]"
		}
		return marker + "\n" + quoteLines(content)
	case CalloutBlockquote:
		return quoteLines(content)
	default:
		return content
	}
}

func quoteLines(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + line
		}
	}
	return strings.Join(lines, "\n")
}

var formattingReplacer = strings.NewReplacer("**", "", "__", "", "`", "")

// stripFormatting removes markdown emphasis markers and backticks.
func stripFormatting(content string) string {
	return formattingReplacer.Replace(content)
}
