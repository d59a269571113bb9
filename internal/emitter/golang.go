package emitter

import (
	"fmt"
	"strings"

	"github.com/polytyper/polytyper/internal/infer"
	"github.com/polytyper/polytyper/internal/models"
	"github.com/polytyper/polytyper/internal/naming"
)

// GoOptions configures the Go emitter. There is no optional wrapper in the
// language; OmitEmpty is the closest idiom and doubles as the optionality
// toggle.
type GoOptions struct {
	RootName string
	// Package emits a package clause when non-empty.
	Package string
	// JSONTags controls struct tag emission.
	JSONTags bool
	// OmitEmpty appends ",omitempty" to every tag.
	OmitEmpty bool
	// PointerObjects renders object-typed fields as pointers.
	PointerObjects bool
}

// Language implements Options.
func (GoOptions) Language() Language { return LangGo }

// DefaultGoOptions returns the canonical Go defaults.
func DefaultGoOptions() GoOptions {
	return GoOptions{
		RootName: DefaultRootName,
		Package:  "main",
		JSONTags: true,
	}
}

type goEmitter struct {
	opts GoOptions
}

func (e *goEmitter) Language() Language    { return LangGo }
func (e *goEmitter) FileExtension() string { return "go" }

func (e *goEmitter) Generate(value models.Value) string {
	root := infer.Infer(value, rootTypeName(e.opts.RootName))
	defs := infer.RenderAll(root, e.renderDefinition)

	header := ""
	if e.opts.Package != "" {
		header = fmt.Sprintf("package %s", e.opts.Package)
	}
	return assemble(header, defs)
}

func (e *goEmitter) renderDefinition(node *models.TypeNode) string {
	type fieldLine struct {
		name    string
		typeStr string
		tag     string
	}

	lines := make([]fieldLine, 0, len(node.Fields))
	maxNameWidth := 0
	maxTypeWidth := 0
	for _, f := range node.Fields {
		line := fieldLine{
			name:    fieldName(f.Key, naming.ToPascal),
			typeStr: e.fieldTypeRef(f.Type),
		}
		if e.opts.JSONTags {
			omit := ""
			if e.opts.OmitEmpty {
				omit = ",omitempty"
			}
			line.tag = fmt.Sprintf("`json:%q`", f.Key+omit)
		}
		if len(line.name) > maxNameWidth {
			maxNameWidth = len(line.name)
		}
		if len(line.typeStr) > maxTypeWidth {
			maxTypeWidth = len(line.typeStr)
		}
		lines = append(lines, line)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "type %s struct {\n", node.Name)
	for _, line := range lines {
		if line.tag == "" {
			fmt.Fprintf(&b, "\t%-*s %s\n", maxNameWidth, line.name, line.typeStr)
			continue
		}
		fmt.Fprintf(&b, "\t%-*s %-*s %s\n", maxNameWidth, line.name, maxTypeWidth, line.typeStr, line.tag)
	}
	b.WriteString("}")
	return b.String()
}

// fieldTypeRef applies the pointer-for-objects toggle at the field site.
func (e *goEmitter) fieldTypeRef(node *models.TypeNode) string {
	if e.opts.PointerObjects && node.Kind == models.KindObject {
		return "*" + node.Name
	}
	return e.typeRef(node)
}

func (e *goEmitter) typeRef(node *models.TypeNode) string {
	switch node.Kind {
	case models.KindArray:
		return "[]" + e.typeRef(node.Elem)
	case models.KindObject:
		return node.Name
	default:
		switch node.Prim {
		case models.PrimString:
			return "string"
		case models.PrimNumber:
			return "float64"
		case models.PrimBoolean:
			return "bool"
		default:
			return "interface{}"
		}
	}
}
