package export

import "sort"

// presets is the process-wide table of named, complete option bundles. It is
// initialized once and treated as read-only.
var presets = map[string]Options{
	"default": DefaultOptions(),

	"minimal": DefaultOptions().
		WithHeaders("User:", "Assistant:").
		WithSeparator("\n\n").
		WithCodeBlocks(false),

	"obsidian": DefaultOptions().
		WithFrontmatter(FrontmatterYAML, "title", "id", "date", "messages").
		WithCallouts(CalloutAdmonition),

	"github": DefaultOptions().
		WithCallouts(CalloutGitHub),

	"document": DefaultOptions().
		WithFrontmatter(FrontmatterYAML).
		WithLineWidth(80),

	"plain": DefaultOptions().
		WithHeaders("User:", "Assistant:").
		WithCodeBlocks(false).
		WithStripFormatting(true),

	"training-openai":   DefaultOptions().WithTraining(TrainingOpenAI),
	"training-alpaca":   DefaultOptions().WithTraining(TrainingAlpaca),
	"training-sharegpt": DefaultOptions().WithTraining(TrainingShareGPT),

	"html-dark": DefaultOptions().WithTheme(ThemeDark),
}

// Preset returns the named option bundle and whether it exists.
func Preset(name string) (Options, bool) {
	opts, ok := presets[name]
	return opts, ok
}

// Presets returns all preset names, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromPreset returns the named bundle, falling back to "minimal" when the
// name is unknown. Unknown names are not an error.
func FromPreset(name string) Options {
	if opts, ok := presets[name]; ok {
		return opts
	}
	return presets["minimal"]
}
