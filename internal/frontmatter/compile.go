package frontmatter

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/noteport/noteport/internal/pandoc"
	"github.com/noteport/noteport/internal/resolve"
)

// DirectivePrefix marks a header key as a pandoc directive rather than
// passthrough metadata.
const DirectivePrefix = "pandoc-"

// Diagnostic reports one dropped directive. Dropping a directive never
// aborts compilation; every diagnostic is surfaced to the user.
type Diagnostic struct {
	Field   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Field, d.Message)
}

// Compiled is the result of compiling one note's header.
type Compiled struct {
	// Metadata holds the passthrough fields, in header order, with every
	// directive key removed. A scalar title field is promoted to Title
	// instead of appearing here, so the title is emitted exactly once.
	Metadata []Field
	// Args holds the emitted argument tokens, in header order. Each entry
	// is one logical token; values are never re-split on whitespace.
	Args []string
	// Diagnostics lists directives dropped during validation.
	Diagnostics []Diagnostic
	// Title is the note's effective title: the explicit title field if
	// present, otherwise the note's base name.
	Title string
}

// Compiler compiles header fields against an option registry and a path
// resolver.
type Compiler struct {
	Registry pandoc.Registry
	Paths    *resolve.Resolver
}

// Compile partitions fields into passthrough metadata and pandoc directives,
// validates each directive, resolves file-valued ones, and emits argument
// tokens. notePath names the note being compiled; its directory anchors
// relative file references and its base name is the fallback title.
func (c *Compiler) Compile(fields []Field, notePath string) *Compiled {
	docDir := filepath.Dir(notePath)
	out := &Compiled{
		Title: strings.TrimSuffix(filepath.Base(notePath), filepath.Ext(notePath)),
	}

	for _, f := range fields {
		if !strings.HasPrefix(f.Key, DirectivePrefix) {
			if f.Key == "title" {
				if v, err := pandoc.FromYAML(f.Value); err == nil &&
					v.Kind != pandoc.ValueNull && v.Kind != pandoc.ValueList && v.Format() != "" {
					out.Title = v.Format()
					continue
				}
			}
			out.Metadata = append(out.Metadata, f)
			continue
		}

		name := strings.TrimPrefix(f.Key, DirectivePrefix)
		value, err := pandoc.FromYAML(f.Value)
		if err != nil {
			out.Diagnostics = append(out.Diagnostics, Diagnostic{Field: f.Key, Message: err.Error()})
			continue
		}
		c.compileDirective(out, f.Key, name, value, docDir)
	}
	return out
}

// compileDirective validates one directive and appends its tokens. Invalid
// directives are dropped whole; within a list, only the offending elements
// are dropped.
func (c *Compiler) compileDirective(out *Compiled, field, name string, value pandoc.Value, docDir string) {
	// An explicit false or null turns the feature off: nothing is emitted
	// and nothing is reported.
	switch value.Kind {
	case pandoc.ValueNull:
		return
	case pandoc.ValueBool:
		if res := pandoc.Validate(c.Registry, name, value); !res.OK {
			out.Diagnostics = append(out.Diagnostics, Diagnostic{Field: field, Message: res.Diagnostic})
			return
		}
		if !value.Bool {
			return
		}
		if spec, known := c.Registry.Lookup(name); known && spec.FlagOnly {
			out.Args = append(out.Args, "--"+name)
			return
		}
		// Non-flag-only booleans need the explicit value form: to pandoc's
		// own grammar a bare switch means something else.
		out.Args = append(out.Args, "--"+name+"=true")
		return
	case pandoc.ValueList:
		for i, el := range value.List {
			if el.Kind == pandoc.ValueNull {
				continue
			}
			if res := pandoc.Validate(c.Registry, name, el); !res.OK {
				out.Diagnostics = append(out.Diagnostics, Diagnostic{
					Field:   field,
					Message: fmt.Sprintf("element %d: %s", i, res.Diagnostic),
				})
				continue
			}
			out.Args = append(out.Args, c.token(name, el, docDir))
		}
		return
	default:
		if res := pandoc.Validate(c.Registry, name, value); !res.OK {
			out.Diagnostics = append(out.Diagnostics, Diagnostic{Field: field, Message: res.Diagnostic})
			return
		}
		out.Args = append(out.Args, c.token(name, value, docDir))
	}
}

// token renders one --name=value token, resolving file-valued options
// against the search path and normalizing coerced numeric strings first.
func (c *Compiler) token(name string, value pandoc.Value, docDir string) string {
	text := value.Format()
	if spec, known := c.Registry.Lookup(name); known {
		switch {
		case spec.Kind == pandoc.KindFile && c.Paths != nil:
			text = c.Paths.Resolve(text, docDir)
		case spec.Kind == pandoc.KindNumber && value.Kind == pandoc.ValueString:
			// Validation accepted the string as a number; emit the parsed
			// form so pandoc never sees stray padding.
			if n, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
				text = strconv.FormatFloat(n, 'f', -1, 64)
			}
		}
	}
	return "--" + name + "=" + text
}

// MetadataArgs renders passthrough metadata as repeated --metadata tokens so
// pandoc sees it even though the compiled payload is plain HTML. Only scalar
// fields and scalar list elements are representable this way.
func MetadataArgs(metadata []Field) []string {
	var args []string
	for _, f := range metadata {
		switch v := f.Value.(type) {
		case []any:
			for _, el := range v {
				if arg, ok := metadataToken(f.Key, el); ok {
					args = append(args, arg)
				}
			}
		default:
			if arg, ok := metadataToken(f.Key, v); ok {
				args = append(args, arg)
			}
		}
	}
	return args
}

func metadataToken(key string, raw any) (string, bool) {
	v, err := pandoc.FromYAML(raw)
	if err != nil || v.Kind == pandoc.ValueNull || v.Kind == pandoc.ValueList {
		return "", false
	}
	return "--metadata=" + key + ":" + v.Format(), true
}
