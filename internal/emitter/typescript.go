package emitter

import (
	"fmt"
	"strings"

	"github.com/polytyper/polytyper/internal/infer"
	"github.com/polytyper/polytyper/internal/models"
)

// TypeScriptStyle selects the declaration form.
type TypeScriptStyle string

const (
	TypeScriptInterface TypeScriptStyle = "interface"
	TypeScriptTypeAlias TypeScriptStyle = "type"
)

// TypeScriptOptions configures the TypeScript emitter. Property names stay
// verbatim; keys that are not valid identifiers are quoted.
type TypeScriptOptions struct {
	RootName       string
	Style          TypeScriptStyle
	Export         bool
	Readonly       bool
	OptionalFields bool
	// Strict maps JSON null to `null` and widens optional properties with
	// `| undefined`; without it null falls back to `any`.
	Strict bool
}

// Language implements Options.
func (TypeScriptOptions) Language() Language { return LangTypeScript }

// DefaultTypeScriptOptions returns the canonical TypeScript defaults.
func DefaultTypeScriptOptions() TypeScriptOptions {
	return TypeScriptOptions{
		RootName: DefaultRootName,
		Style:    TypeScriptInterface,
		Export:   true,
		Strict:   true,
	}
}

type typeScriptEmitter struct {
	opts TypeScriptOptions
}

func (e *typeScriptEmitter) Language() Language    { return LangTypeScript }
func (e *typeScriptEmitter) FileExtension() string { return "ts" }

func (e *typeScriptEmitter) Generate(value models.Value) string {
	root := infer.Infer(value, rootTypeName(e.opts.RootName))
	defs := infer.RenderAll(root, e.renderDefinition)
	return assemble("", defs)
}

func (e *typeScriptEmitter) renderDefinition(node *models.TypeNode) string {
	var b strings.Builder

	if e.opts.Export {
		b.WriteString("export ")
	}
	if e.opts.Style == TypeScriptTypeAlias {
		fmt.Fprintf(&b, "type %s = {\n", node.Name)
	} else {
		fmt.Fprintf(&b, "interface %s {\n", node.Name)
	}

	for _, f := range node.Fields {
		key := f.Key
		if !isTSIdentifier(key) {
			key = fmt.Sprintf("%q", key)
		}
		b.WriteString("  ")
		if e.opts.Readonly {
			b.WriteString("readonly ")
		}
		b.WriteString(key)
		if e.opts.OptionalFields {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(e.typeRef(f.Type))
		if e.opts.OptionalFields && e.opts.Strict {
			b.WriteString(" | undefined")
		}
		b.WriteString(";\n")
	}

	b.WriteString("}")
	if e.opts.Style == TypeScriptTypeAlias {
		b.WriteString(";")
	}
	return b.String()
}

func (e *typeScriptEmitter) typeRef(node *models.TypeNode) string {
	switch node.Kind {
	case models.KindArray:
		elem := e.typeRef(node.Elem)
		if strings.Contains(elem, " ") {
			return "(" + elem + ")[]"
		}
		return elem + "[]"
	case models.KindObject:
		return node.Name
	default:
		switch node.Prim {
		case models.PrimString:
			return "string"
		case models.PrimNumber:
			return "number"
		case models.PrimBoolean:
			return "boolean"
		case models.PrimNull:
			if e.opts.Strict {
				return "null"
			}
			return "any"
		default:
			return "unknown"
		}
	}
}

// isTSIdentifier allows `$` on top of the shared ASCII identifier rule.
func isTSIdentifier(s string) bool {
	return isASCIIIdentifier(strings.ReplaceAll(s, "$", "_"))
}
