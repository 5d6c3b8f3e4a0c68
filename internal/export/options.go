package export

// FrontmatterFormat selects the serialization of the frontmatter block.
type FrontmatterFormat string

const (
	FrontmatterYAML FrontmatterFormat = "yaml"
	FrontmatterTOML FrontmatterFormat = "toml"
	FrontmatterJSON FrontmatterFormat = "json"
)

// CalloutStyle selects how message bodies are wrapped in markdown output.
type CalloutStyle string

const (
	CalloutAdmonition CalloutStyle = "admonition"
	CalloutBlockquote CalloutStyle = "blockquote"
	CalloutGitHub     CalloutStyle = "github"
	CalloutNone       CalloutStyle = "none"
)

// TrainingFormat selects the JSONL encoding for model fine-tuning exports.
type TrainingFormat string

const (
	TrainingOpenAI   TrainingFormat = "openai"
	TrainingAlpaca   TrainingFormat = "alpaca"
	TrainingShareGPT TrainingFormat = "sharegpt"
)

// Theme selects the HTML document shell colors.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Options is the full set of recognized formatting knobs. It is a value
// type: the WithX setters return updated copies, never mutate in place.
type Options struct {
	Frontmatter       bool
	FrontmatterFormat FrontmatterFormat
	FrontmatterFields []string
	UserHeader        string
	AssistantHeader   string
	// MessageSeparator joins rendered messages. Empty means the format's
	// own default: a markdown rule for markdown, a dash rule for txt.
	MessageSeparator string
	SyntaxHighlight  bool
	CalloutStyle     CalloutStyle
	LineWidth        int // 0 disables wrapping
	IncludeMetadata  bool
	StripFormatting  bool
	Training         TrainingFormat
	SystemPrompt     string
	HTMLTheme        Theme
}

// DefaultOptions returns the global default option bundle.
func DefaultOptions() Options {
	return Options{
		Frontmatter:       false,
		FrontmatterFormat: FrontmatterYAML,
		FrontmatterFields: []string{"title", "id", "date", "messages", "source"},
		UserHeader:        "## User",
		AssistantHeader:   "## Assistant",
		MessageSeparator:  "",
		SyntaxHighlight:   true,
		CalloutStyle:      CalloutNone,
		LineWidth:         0,
		IncludeMetadata:   false,
		StripFormatting:   false,
		Training:          TrainingOpenAI,
		SystemPrompt:      "",
		HTMLTheme:         ThemeLight,
	}
}

// WithFrontmatter enables a frontmatter block in the given serialization.
// Fields, when provided, replace the default ordered field set.
func (o Options) WithFrontmatter(format FrontmatterFormat, fields ...string) Options {
	o.Frontmatter = true
	o.FrontmatterFormat = format
	if len(fields) > 0 {
		o.FrontmatterFields = fields
	}
	return o
}

// WithHeaders overrides the per-role message headers.
func (o Options) WithHeaders(user, assistant string) Options {
	o.UserHeader = user
	o.AssistantHeader = assistant
	return o
}

// WithSeparator overrides the message separator.
func (o Options) WithSeparator(sep string) Options {
	o.MessageSeparator = sep
	return o
}

// WithCodeBlocks toggles code-fence normalization and language tagging.
func (o Options) WithCodeBlocks(enabled bool) Options {
	o.SyntaxHighlight = enabled
	return o
}

// WithCallouts selects the markdown callout style.
func (o Options) WithCallouts(style CalloutStyle) Options {
	o.CalloutStyle = style
	return o
}

// WithLineWidth enables word-wrapping of prose lines at the given width.
func (o Options) WithLineWidth(width int) Options {
	o.LineWidth = width
	return o
}

// WithMetadata toggles export metadata (workspace, timestamp) in the output.
func (o Options) WithMetadata(include bool) Options {
	o.IncludeMetadata = include
	return o
}

// WithStripFormatting toggles removal of markdown emphasis and backticks.
func (o Options) WithStripFormatting(strip bool) Options {
	o.StripFormatting = strip
	return o
}

// WithTraining selects the JSONL training encoding.
func (o Options) WithTraining(format TrainingFormat) Options {
	o.Training = format
	return o
}

// WithSystemPrompt sets the system prompt prepended by training encodings
// that support one.
func (o Options) WithSystemPrompt(prompt string) Options {
	o.SystemPrompt = prompt
	return o
}

// WithTheme selects the HTML document theme.
func (o Options) WithTheme(theme Theme) Options {
	o.HTMLTheme = theme
	return o
}
