package emitter

import (
	"fmt"
	"strings"

	"github.com/polytyper/polytyper/internal/infer"
	"github.com/polytyper/polytyper/internal/models"
	"github.com/polytyper/polytyper/internal/naming"
)

// JavaScriptStyle selects between JSDoc typedef blocks and ES classes.
type JavaScriptStyle string

const (
	JavaScriptJSDoc JavaScriptStyle = "jsdoc"
	JavaScriptClass JavaScriptStyle = "class"
)

// JavaScriptOptions configures the JavaScript emitter. Types are JSDoc
// only; there is no optionality toggle because the language does not
// enforce one.
type JavaScriptOptions struct {
	RootName string
	Style    JavaScriptStyle
	// Factory emits a create<Type> function per type.
	Factory bool
	// Validator emits an is<Type> runtime check per type.
	Validator bool
}

// Language implements Options.
func (JavaScriptOptions) Language() Language { return LangJavaScript }

// DefaultJavaScriptOptions returns the canonical JavaScript defaults.
func DefaultJavaScriptOptions() JavaScriptOptions {
	return JavaScriptOptions{
		RootName: DefaultRootName,
		Style:    JavaScriptJSDoc,
	}
}

type javaScriptEmitter struct {
	opts JavaScriptOptions
}

func (e *javaScriptEmitter) Language() Language    { return LangJavaScript }
func (e *javaScriptEmitter) FileExtension() string { return "js" }

func (e *javaScriptEmitter) Generate(value models.Value) string {
	root := infer.Infer(value, rootTypeName(e.opts.RootName))
	defs := infer.RenderAll(root, e.renderDefinition)
	return assemble("", defs)
}

func (e *javaScriptEmitter) renderDefinition(node *models.TypeNode) string {
	blocks := []string{}
	if e.opts.Style == JavaScriptClass {
		blocks = append(blocks, e.renderClass(node))
	} else {
		blocks = append(blocks, e.renderTypedef(node))
	}
	if e.opts.Factory {
		blocks = append(blocks, e.renderFactory(node))
	}
	if e.opts.Validator {
		blocks = append(blocks, e.renderValidator(node))
	}
	return strings.Join(blocks, "\n\n")
}

func (e *javaScriptEmitter) renderTypedef(node *models.TypeNode) string {
	var b strings.Builder
	b.WriteString("/**\n")
	fmt.Fprintf(&b, " * @typedef {Object} %s\n", node.Name)
	for _, f := range node.Fields {
		name := fieldName(f.Key, naming.ToCamel)
		if name != f.Key {
			// Keep the original key visible; there is no runtime rename.
			fmt.Fprintf(&b, " * @property {%s} %s - maps to %q\n", e.typeRef(f.Type), name, f.Key)
		} else {
			fmt.Fprintf(&b, " * @property {%s} %s\n", e.typeRef(f.Type), name)
		}
	}
	b.WriteString(" */")
	return b.String()
}

func (e *javaScriptEmitter) renderClass(node *models.TypeNode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export class %s {\n", node.Name)
	b.WriteString("  constructor(data = {}) {\n")
	for _, f := range node.Fields {
		fmt.Fprintf(&b, "    this.%s = data[%q];\n", fieldName(f.Key, naming.ToCamel), f.Key)
	}
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}

func (e *javaScriptEmitter) renderFactory(node *models.TypeNode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export function create%s(data = {}) {\n", node.Name)
	if e.opts.Style == JavaScriptClass {
		fmt.Fprintf(&b, "  return new %s(data);\n", node.Name)
	} else {
		b.WriteString("  return {\n")
		for _, f := range node.Fields {
			fmt.Fprintf(&b, "    %s: data[%q],\n", fieldName(f.Key, naming.ToCamel), f.Key)
		}
		b.WriteString("  };\n")
	}
	b.WriteString("}")
	return b.String()
}

func (e *javaScriptEmitter) renderValidator(node *models.TypeNode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export function is%s(value) {\n", node.Name)
	b.WriteString("  return (\n")
	b.WriteString("    typeof value === \"object\" &&\n    value !== null")
	for _, f := range node.Fields {
		if check := e.fieldCheck(f); check != "" {
			b.WriteString(" &&\n    " + check)
		}
	}
	b.WriteString("\n  );\n")
	b.WriteString("}")
	return b.String()
}

func (e *javaScriptEmitter) fieldCheck(f models.Field) string {
	access := fmt.Sprintf("value[%q]", f.Key)
	switch f.Type.Kind {
	case models.KindArray:
		return fmt.Sprintf("Array.isArray(%s)", access)
	case models.KindObject:
		return fmt.Sprintf("typeof %s === \"object\"", access)
	default:
		switch f.Type.Prim {
		case models.PrimString:
			return fmt.Sprintf("typeof %s === \"string\"", access)
		case models.PrimNumber:
			return fmt.Sprintf("typeof %s === \"number\"", access)
		case models.PrimBoolean:
			return fmt.Sprintf("typeof %s === \"boolean\"", access)
		case models.PrimNull:
			return fmt.Sprintf("%s === null", access)
		default:
			// Nothing to check for untyped values.
			return ""
		}
	}
}

func (e *javaScriptEmitter) typeRef(node *models.TypeNode) string {
	switch node.Kind {
	case models.KindArray:
		return fmt.Sprintf("Array<%s>", e.typeRef(node.Elem))
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
			return "null"
		default:
			return "*"
		}
	}
}
