// Package frontmatter extracts a note's YAML header and compiles its
// pandoc-prefixed directives into a command-line argument list.
package frontmatter

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// delimiter is the line that opens and closes a frontmatter block.
const delimiter = "---"

// Field is one header entry. Fields keep the header's insertion order,
// which the compiler preserves through to argument emission.
type Field struct {
	Key   string
	Value any
}

// Extract splits src into its frontmatter fields and the document body.
// A note without a leading delimiter line has no frontmatter; the whole
// source is the body.
func Extract(src []byte) ([]Field, []byte, error) {
	lines := bytes.SplitAfter(src, []byte("\n"))
	if len(lines) == 0 || !isDelimiter(lines[0]) {
		return nil, src, nil
	}

	for i := 1; i < len(lines); i++ {
		if !isDelimiter(lines[i]) {
			continue
		}
		header := bytes.Join(lines[1:i], nil)
		body := bytes.Join(lines[i+1:], nil)
		fields, err := decodeHeader(header)
		if err != nil {
			return nil, nil, err
		}
		return fields, body, nil
	}

	// Unterminated block: treat the note as having no frontmatter rather
	// than swallowing the whole document into the header.
	return nil, src, nil
}

func isDelimiter(line []byte) bool {
	return string(bytes.TrimRight(line, "\r\n")) == delimiter
}

// decodeHeader parses the header as a YAML mapping, preserving key order.
// yaml.v3's map decoding randomizes order, so the mapping node is walked
// directly.
func decodeHeader(header []byte) ([]Field, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(header, &doc); err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("frontmatter is not a mapping")
	}

	fields := make([]Field, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return nil, fmt.Errorf("decoding frontmatter key at line %d: %w", keyNode.Line, err)
		}
		var val any
		if err := valNode.Decode(&val); err != nil {
			return nil, fmt.Errorf("decoding frontmatter field %q: %w", key, err)
		}
		fields = append(fields, Field{Key: key, Value: val})
	}
	return fields, nil
}
