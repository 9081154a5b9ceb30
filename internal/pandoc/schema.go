package pandoc

// Kind represents the value kind an option accepts.
type Kind int

const (
	// KindBool is a boolean option.
	KindBool Kind = iota
	// KindString is a free-form string option.
	KindString
	// KindNumber is a numeric option.
	KindNumber
	// KindEnum is an option restricted to a fixed choice set.
	KindEnum
	// KindFile is a string option whose value names a file and is subject
	// to search-path resolution.
	KindFile
)

// OptionSpec describes one recognized pandoc option.
type OptionSpec struct {
	// Name is the long option name without the leading dashes.
	Name string
	// Kind is the value kind the option accepts.
	Kind Kind
	// Choices lists the valid values for KindEnum options.
	Choices []string
	// FlagOnly marks boolean options that are emitted as a bare switch
	// and never take an inline value.
	FlagOnly bool
	// Repeatable marks options that may be given more than once.
	Repeatable bool
}

// Registry maps option names to their specs. Names absent from the registry
// are accepted permissively so that directives stay forward compatible with
// pandoc options the catalogue has not picked up yet.
type Registry map[string]OptionSpec

// Lookup returns the spec for name, if catalogued.
func (r Registry) Lookup(name string) (OptionSpec, bool) {
	spec, ok := r[name]
	return spec, ok
}

func flag(name string) OptionSpec  { return OptionSpec{Name: name, Kind: KindBool, FlagOnly: true} }
func str(name string) OptionSpec   { return OptionSpec{Name: name, Kind: KindString} }
func num(name string) OptionSpec   { return OptionSpec{Name: name, Kind: KindNumber} }
func file(name string) OptionSpec  { return OptionSpec{Name: name, Kind: KindFile} }
func filen(name string) OptionSpec { return OptionSpec{Name: name, Kind: KindFile, Repeatable: true} }
func strn(name string) OptionSpec  { return OptionSpec{Name: name, Kind: KindString, Repeatable: true} }

func enum(name string, choices ...string) OptionSpec {
	return OptionSpec{Name: name, Kind: KindEnum, Choices: choices}
}

// DefaultRegistry returns the catalogue of pandoc options the compiler
// recognizes. The set tracks pandoc's long-option surface; it is deliberately
// not closed (see Registry).
func DefaultRegistry() Registry {
	specs := []OptionSpec{
		// General writer switches.
		flag("standalone"),
		flag("self-contained"),
		flag("embed-resources"),
		flag("sandbox"),
		flag("file-scope"),
		flag("strip-comments"),
		flag("preserve-tabs"),
		flag("no-highlight"),
		flag("ascii"),
		flag("html-q-tags"),
		flag("reference-links"),
		flag("listings"),
		flag("incremental"),
		flag("section-divs"),
		flag("number-sections"),
		flag("citeproc"),
		flag("natbib"),
		flag("biblatex"),
		flag("mathml"),
		flag("gladtex"),
		flag("toc"),
		flag("table-of-contents"),
		flag("fail-if-warnings"),
		flag("verbose"),
		flag("quiet"),
		flag("trace"),
		flag("dump-args"),
		flag("ignore-args"),
		flag("list-tables"),
		flag("epub-title-page"),
		flag("link-citations"),

		// Format selection and content shaping.
		str("from"),
		str("to"),
		str("read"),
		str("write"),
		str("id-prefix"),
		str("title-prefix"),
		str("default-image-extension"),
		str("indented-code-classes"),
		str("number-offset"),
		str("highlight-style"),
		str("pdf-engine-opt"),
		str("request-header"),
		str("resource-path"),
		str("extract-media"),
		str("data-dir"),
		strn("variable"),
		strn("metadata"),

		// Numeric knobs.
		num("toc-depth"),
		num("shift-heading-level-by"),
		num("base-header-level"),
		num("slide-level"),
		num("columns"),
		num("tab-stop"),
		num("dpi"),
		num("epub-chapter-level"),
		num("split-level"),

		// Enumerated choices.
		enum("wrap", "auto", "none", "preserve"),
		enum("eol", "crlf", "lf", "native"),
		enum("track-changes", "accept", "reject", "all"),
		enum("reference-location", "block", "section", "document"),
		enum("top-level-division", "default", "section", "chapter", "part"),
		enum("email-obfuscation", "none", "javascript", "references"),
		enum("ipynb-output", "all", "none", "best"),
		enum("cite-method", "citeproc", "natbib", "biblatex"),
		enum("markdown-headings", "setext", "atx"),
		enum("pdf-engine",
			"pdflatex", "lualatex", "xelatex", "latexmk", "tectonic",
			"wkhtmltopdf", "weasyprint", "pagedjs-cli", "prince",
			"context", "pdfroff", "typst"),

		// File-valued options, resolved against the search path.
		file("template"),
		file("defaults"),
		file("reference-doc"),
		file("reference-odt"),
		file("reference-docx"),
		file("epub-cover-image"),
		file("epub-stylesheet"),
		file("epub-metadata"),
		file("csl"),
		file("citation-abbreviations"),
		file("abbreviations"),
		file("log"),
		file("syntax-definition"),
		filen("css"),
		filen("bibliography"),
		filen("include-in-header"),
		filen("include-before-body"),
		filen("include-after-body"),
		filen("epub-embed-font"),
		filen("lua-filter"),
		filen("filter"),
		filen("metadata-file"),
	}

	reg := make(Registry, len(specs))
	for _, s := range specs {
		reg[s.Name] = s
	}
	return reg
}
