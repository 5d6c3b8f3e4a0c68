package export

import (
	"html"
	"regexp"
	"strings"

	"github.com/voxtools/cursor-export/internal"
)

var inlineCodeRe = regexp.MustCompile("`([^`\n]+)`")

// renderHTML renders one conversation as a minimal themed HTML document.
// Content is escaped first, then fenced code blocks become <pre><code>
// elements, then inline code, then remaining newlines become <br>.
func renderHTML(conv *internal.Conversation, opts Options) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(conv.Title) + "</title>\n")
	b.WriteString("<style>\n" + themeCSS(opts.HTMLTheme) + "</style>\n")
	b.WriteString("</head>\n<body>\n<main>\n")
	b.WriteString("<h1>" + html.EscapeString(conv.Title) + "</h1>\n")

	if opts.IncludeMetadata {
		b.WriteString("<p class=\"meta\">" + html.EscapeString(conv.Source))
		if conv.Workspace != "" {
			b.WriteString(" · " + html.EscapeString(conv.Workspace))
		}
		b.WriteString("</p>\n")
	}

	for _, msg := range conv.Messages {
		roleClass := "user"
		roleLabel := "User"
		if msg.Role == internal.RoleAssistant {
			roleClass = "assistant"
			roleLabel = "Assistant"
		}
		b.WriteString("<div class=\"message " + roleClass + "\">\n")
		b.WriteString("<div class=\"role\">" + roleLabel + "</div>\n")
		b.WriteString("<div class=\"content\">" + htmlContent(msg.Content) + "</div>\n")
		b.WriteString("</div>\n")
	}

	b.WriteString("</main>\n</body>\n</html>\n")
	return b.String()
}

// htmlContent converts one message body to HTML. Escaping happens before any
// markup is introduced so message text can never inject elements.
func htmlContent(content string) string {
	escaped := html.EscapeString(content)
	lines := strings.Split(escaped, "\n")

	var b strings.Builder
	var prose []string

	flushProse := func() {
		if len(prose) == 0 {
			return
		}
		for i, line := range prose {
			if i > 0 {
				b.WriteString("<br>\n")
			}
			b.WriteString(inlineCodeRe.ReplaceAllString(line, "<code>$1</code>"))
		}
		prose = prose[:0]
	}

	i := 0
	for i < len(lines) {
		line := lines[i]
		if strings.HasPrefix(line, "```") {
			flushProse()
			lang := strings.TrimSpace(strings.TrimPrefix(line, "```"))
			if lang == "" {
				lang = "text"
			}
			i++
			var code []string
			for i < len(lines) && !strings.HasPrefix(lines[i], "```") {
				code = append(code, lines[i])
				i++
			}
			if i < len(lines) {
				i++ // closing fence
			}
			b.WriteString("<pre><code class=\"language-" + lang + "\">")
			b.WriteString(strings.Join(code, "\n"))
			b.WriteString("</code></pre>\n")
			continue
		}
		prose = append(prose, line)
		i++
	}
	flushProse()

	return b.String()
}

func themeCSS(theme Theme) string {
	bg, fg, accent := "#ffffff", "#1f2328", "#f6f8fa"
	if theme == ThemeDark {
		bg, fg, accent = "#0d1117", "#e6edf3", "#161b22"
	}
	return `body { background: ` + bg + `; color: ` + fg + `; font-family: sans-serif; margin: 0; }
main { max-width: 48rem; margin: 0 auto; padding: 2rem 1rem; }
.message { margin: 1rem 0; padding: 0.75rem 1rem; border-radius: 8px; background: ` + accent + `; }
.message .role { font-weight: bold; margin-bottom: 0.5rem; }
pre { background: ` + accent + `; padding: 0.75rem; border-radius: 6px; overflow-x: auto; }
code { font-family: monospace; }
.meta { opacity: 0.7; }
`
}
