// Package export composes frontmatter compilation, content resolution, and
// the pandoc invocation into one export operation.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/noteport/noteport/internal/config"
	"github.com/noteport/noteport/internal/content"
	"github.com/noteport/noteport/internal/frontmatter"
	"github.com/noteport/noteport/internal/pandoc"
	"github.com/noteport/noteport/internal/render"
	"github.com/noteport/noteport/internal/resolve"
)

// Report is the outcome of one export.
type Report struct {
	// OutputPath is the produced artifact.
	OutputPath string
	// Warnings carries pandoc's diagnostics when the artifact was still
	// produced (success-with-warnings, distinct from hard failure).
	Warnings string
	// Diagnostics lists directives dropped during compilation.
	Diagnostics []frontmatter.Diagnostic
}

// Exporter runs export operations. Independent exports may run concurrently;
// each Export call builds its own resolution state.
type Exporter struct {
	Cfg      *config.Configuration
	Registry pandoc.Registry
	Cap      *pandoc.Capability
	Runner   pandoc.Runner
	Renderer render.Renderer
	// Logf receives recoverable resolution failures. Nil discards them.
	Logf func(format string, args ...any)
}

// New builds an Exporter wired with the default registry, renderer, and
// subprocess runner. cap is the pandoc capability detected for this session.
func New(cfg *config.Configuration, cap *pandoc.Capability) *Exporter {
	return &Exporter{
		Cfg:      cfg,
		Registry: pandoc.DefaultRegistry(),
		Cap:      cap,
		Runner:   &pandoc.ExecRunner{Timeout: cfg.Timeout},
		Renderer: render.NewGoldmark(),
	}
}

// Export converts one note into the artifact at outputPath. The final
// argument vector is: configured default arguments, then per-document
// directives (so per-document settings win ties), then the fixed
// input/output arguments.
func (e *Exporter) Export(ctx context.Context, notePath, outputPath string) (report *Report, err error) {
	// A panic anywhere in the pipeline becomes an ordinary error; an
	// export must never take the process down.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("export panicked: %v", r)
		}
	}()

	src, err := os.ReadFile(notePath)
	if err != nil {
		return nil, fmt.Errorf("reading note: %w", err)
	}

	fields, body, err := frontmatter.Extract(src)
	if err != nil {
		return nil, err
	}

	paths := &resolve.Resolver{VaultDir: e.Cfg.VaultDir, CustomDir: e.Cfg.ResolveDir}
	compiler := &frontmatter.Compiler{Registry: e.Registry, Paths: paths}
	compiled := compiler.Compile(fields, notePath)

	policy, _ := content.ParseLinkPolicy(e.Cfg.LinkPolicy)
	resolver := &content.Resolver{
		Vault:       &content.DirVault{Root: e.Cfg.VaultDir},
		Render:      e.Renderer,
		Policy:      policy,
		Extension:   e.Cfg.LinkExtension,
		Kind:        content.KindForPath(outputPath),
		MediaDir:    filepath.Dir(outputPath),
		RasterScale: e.Cfg.RasterScale,
		ResolveMedia: func(ref, docDir string) string {
			return paths.Resolve(ref, docDir)
		},
		Logf: e.Logf,
	}

	doc, err := resolver.ResolveDocument(notePath, body, compiled.Title, nil)
	if err != nil {
		return nil, err
	}
	payload, err := content.Serialize(doc)
	if err != nil {
		return nil, err
	}

	args := e.arguments(compiled, outputPath)

	// Diagnostics travel on the report even when the run fails: a dropped
	// directive is often exactly why pandoc rejected the rest.
	report = &Report{Diagnostics: compiled.Diagnostics}
	result, err := e.Runner.Run(ctx, e.Cap, args, payload, outputPath)
	if err != nil {
		return report, err
	}
	report.OutputPath = result.OutputPath
	report.Warnings = result.Warnings
	return report, nil
}

// arguments assembles the final vector. Pandoc treats repeated flags as
// overriding, so defaults go first and per-document directives append after.
func (e *Exporter) arguments(compiled *frontmatter.Compiled, outputPath string) []string {
	args := make([]string, 0, len(e.Cfg.ExtraArgs)+len(compiled.Args)+8)
	args = append(args, e.Cfg.ExtraArgs...)
	args = append(args, compiled.Args...)
	args = append(args, frontmatter.MetadataArgs(compiled.Metadata)...)
	args = append(args, "--metadata=title:"+compiled.Title)
	args = append(args, "--from=html", "--output="+outputPath)
	return args
}
