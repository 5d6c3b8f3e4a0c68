package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/voxtools/cursor-export/internal"
)

// frontmatterValue resolves one frontmatter field name against a
// conversation. Unknown names and empty optional fields are skipped.
func frontmatterValue(conv *internal.Conversation, field string, now time.Time) (interface{}, bool) {
	switch field {
	case "title":
		return conv.Title, true
	case "id":
		return conv.ID, true
	case "date":
		return now.Format("2006-01-02"), true
	case "messages", "message_count":
		return conv.MessageCount, true
	case "source":
		return conv.Source, true
	case "workspace":
		if conv.Workspace == "" {
			return nil, false
		}
		return conv.Workspace, true
	default:
		return nil, false
	}
}

// renderFrontmatter serializes the selected fields, in order, per the
// configured frontmatter format. The returned block includes its delimiters
// and a trailing blank line.
func renderFrontmatter(conv *internal.Conversation, opts Options, now time.Time) string {
	switch opts.FrontmatterFormat {
	case FrontmatterTOML:
		return tomlFrontmatter(conv, opts, now)
	case FrontmatterJSON:
		return jsonFrontmatter(conv, opts, now)
	default:
		return yamlFrontmatter(conv, opts, now)
	}
}

// yamlFrontmatter emits a ----delimited YAML mapping. Field order follows
// the ordered field set, and string values containing a colon are forced
// into double quotes.
func yamlFrontmatter(conv *internal.Conversation, opts Options, now time.Time) string {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range opts.FrontmatterFields {
		value, ok := frontmatterValue(conv, field, now)
		if !ok {
			continue
		}
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: field}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(value); err != nil {
			continue
		}
		if s, isString := value.(string); isString && strings.Contains(s, ":") {
			valueNode.Style = yaml.DoubleQuotedStyle
		}
		mapping.Content = append(mapping.Content, keyNode, valueNode)
	}

	out, err := yaml.Marshal(mapping)
	if err != nil {
		return ""
	}
	return "---\n" + string(out) + "---\n\n"
}

// tomlFrontmatter emits a +++-delimited TOML block. Fields are marshalled
// one at a time so the ordered field set survives TOML's map sorting.
func tomlFrontmatter(conv *internal.Conversation, opts Options, now time.Time) string {
	var body bytes.Buffer
	for _, field := range opts.FrontmatterFields {
		value, ok := frontmatterValue(conv, field, now)
		if !ok {
			continue
		}
		line, err := toml.Marshal(map[string]interface{}{field: value})
		if err != nil {
			continue
		}
		body.Write(line)
	}
	return "+++\n" + body.String() + "+++\n\n"
}

// jsonFrontmatter emits a pretty-printed JSON object, fields in order.
func jsonFrontmatter(conv *internal.Conversation, opts Options, now time.Time) string {
	var body bytes.Buffer
	body.WriteString("{\n")
	first := true
	for _, field := range opts.FrontmatterFields {
		value, ok := frontmatterValue(conv, field, now)
		if !ok {
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			continue
		}
		if !first {
			body.WriteString(",\n")
		}
		first = false
		key, _ := json.Marshal(field)
		body.Write(key)
		body.WriteString(": ")
		body.Write(encoded)
	}
	body.WriteString("\n}\n\n")
	return body.String()
}
