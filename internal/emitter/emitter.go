// Package emitter renders TypeNode trees as source text in one of ten
// target languages. Each language has its own option record and emitter;
// the dispatcher is an exhaustive switch over the closed language set.
package emitter

import (
	"fmt"
	"strings"

	"github.com/polytyper/polytyper/internal/errors"
	"github.com/polytyper/polytyper/internal/models"
	"github.com/polytyper/polytyper/internal/naming"
)

// Language identifies a target language.
type Language string

const (
	LangTypeScript Language = "typescript"
	LangJavaScript Language = "javascript"
	LangGo         Language = "go"
	LangPython     Language = "python"
	LangRust       Language = "rust"
	LangJava       Language = "java"
	LangCSharp     Language = "csharp"
	LangKotlin     Language = "kotlin"
	LangSwift      Language = "swift"
	LangPHP        Language = "php"
)

// Languages returns the supported targets in stable order.
func Languages() []Language {
	return []Language{
		LangTypeScript,
		LangJavaScript,
		LangGo,
		LangPython,
		LangRust,
		LangJava,
		LangCSharp,
		LangKotlin,
		LangSwift,
		LangPHP,
	}
}

// ParseLanguage resolves a user-supplied language tag, accepting the common
// short aliases. Unknown tags are an error, never a silent default.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "typescript", "ts":
		return LangTypeScript, nil
	case "javascript", "js":
		return LangJavaScript, nil
	case "go", "golang":
		return LangGo, nil
	case "python", "py":
		return LangPython, nil
	case "rust", "rs":
		return LangRust, nil
	case "java":
		return LangJava, nil
	case "csharp", "c#", "cs":
		return LangCSharp, nil
	case "kotlin", "kt":
		return LangKotlin, nil
	case "swift":
		return LangSwift, nil
	case "php":
		return LangPHP, nil
	default:
		return "", errors.NewGenerateError(fmt.Sprintf("unsupported target language %q", s), errors.ErrUnknownLanguage)
	}
}

// Options is the closed union of per-language option records. Each record
// is a value type; copies handed out by DefaultOptions are owned by the
// caller.
type Options interface {
	Language() Language
}

// Emitter renders source text for one target language. Generate never
// fails for a well-formed value; it returns an empty string when nothing
// object-shaped is reachable from the root.
type Emitter interface {
	Language() Language
	FileExtension() string
	Generate(value models.Value) string
}

// New constructs the emitter for an option record. The switch is
// exhaustive over the option union; anything else fails loudly.
func New(opts Options) (Emitter, error) {
	switch o := opts.(type) {
	case TypeScriptOptions:
		return &typeScriptEmitter{opts: o}, nil
	case JavaScriptOptions:
		return &javaScriptEmitter{opts: o}, nil
	case GoOptions:
		return &goEmitter{opts: o}, nil
	case PythonOptions:
		return &pythonEmitter{opts: o}, nil
	case RustOptions:
		return &rustEmitter{opts: o}, nil
	case JavaOptions:
		return &javaEmitter{opts: o}, nil
	case CSharpOptions:
		return &cSharpEmitter{opts: o}, nil
	case KotlinOptions:
		return &kotlinEmitter{opts: o}, nil
	case SwiftOptions:
		return &swiftEmitter{opts: o}, nil
	case PHPOptions:
		return &phpEmitter{opts: o}, nil
	default:
		return nil, errors.NewGenerateError(fmt.Sprintf("unsupported options type %T", opts), errors.ErrUnknownLanguage)
	}
}

// Generate renders value with an explicit option record. The language tag
// travels inside the record, so tag and options cannot disagree.
func Generate(value models.Value, opts Options) (string, error) {
	e, err := New(opts)
	if err != nil {
		return "", err
	}
	return e.Generate(value), nil
}

// GenerateDefault renders value with the language's default options.
func GenerateDefault(value models.Value, lang Language) (string, error) {
	opts, err := DefaultOptions(lang)
	if err != nil {
		return "", err
	}
	return Generate(value, opts)
}

// DefaultOptions returns a fresh copy of the canonical defaults for a
// language. The records are plain values, so callers can mutate their copy
// freely.
func DefaultOptions(lang Language) (Options, error) {
	switch lang {
	case LangTypeScript:
		return DefaultTypeScriptOptions(), nil
	case LangJavaScript:
		return DefaultJavaScriptOptions(), nil
	case LangGo:
		return DefaultGoOptions(), nil
	case LangPython:
		return DefaultPythonOptions(), nil
	case LangRust:
		return DefaultRustOptions(), nil
	case LangJava:
		return DefaultJavaOptions(), nil
	case LangCSharp:
		return DefaultCSharpOptions(), nil
	case LangKotlin:
		return DefaultKotlinOptions(), nil
	case LangSwift:
		return DefaultSwiftOptions(), nil
	case LangPHP:
		return DefaultPHPOptions(), nil
	default:
		return nil, errors.NewGenerateError(fmt.Sprintf("unsupported target language %q", lang), errors.ErrUnknownLanguage)
	}
}

// DefaultRootName is used when no root name is configured.
const DefaultRootName = "Root"

// rootTypeName normalizes the configured root name into a type identifier.
func rootTypeName(rootName string) string {
	if strings.TrimSpace(rootName) == "" {
		rootName = DefaultRootName
	}
	return naming.ToPascal(rootName)
}

// assemble joins the header block and the rendered definitions with blank
// lines. An empty definition list produces an empty string, headers
// included.
func assemble(header string, defs []string) string {
	if len(defs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(defs)+1)
	if header != "" {
		parts = append(parts, header)
	}
	parts = append(parts, defs...)
	return strings.Join(parts, "\n\n") + "\n"
}

// fieldName applies a converter to a JSON key with a fallback for keys
// that convert to nothing (purely symbolic keys like "_").
func fieldName(key string, convert func(string) string) string {
	name := convert(key)
	if name == "" {
		// Purely symbolic keys like "_" convert to nothing.
		return convert("field")
	}
	return name
}

// isASCIIIdentifier reports whether s is a plain letter/digit/underscore
// identifier not starting with a digit. Emitters use it for quoted-key and
// rename decisions.
func isASCIIIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
