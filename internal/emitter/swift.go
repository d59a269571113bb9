package emitter

import (
	"fmt"
	"strings"

	"github.com/polytyper/polytyper/internal/infer"
	"github.com/polytyper/polytyper/internal/models"
	"github.com/polytyper/polytyper/internal/naming"
)

// SwiftStyle selects between structs and classes.
type SwiftStyle string

const (
	SwiftStruct SwiftStyle = "struct"
	SwiftClass  SwiftStyle = "class"
)

// SwiftOptions configures the Swift emitter. A CodingKeys enum is emitted
// only when at least one property name differs from its JSON key.
type SwiftOptions struct {
	RootName       string
	Style          SwiftStyle
	OptionalFields bool
}

// Language implements Options.
func (SwiftOptions) Language() Language { return LangSwift }

// DefaultSwiftOptions returns the canonical Swift defaults.
func DefaultSwiftOptions() SwiftOptions {
	return SwiftOptions{
		RootName: DefaultRootName,
		Style:    SwiftStruct,
	}
}

type swiftEmitter struct {
	opts SwiftOptions
}

func (e *swiftEmitter) Language() Language    { return LangSwift }
func (e *swiftEmitter) FileExtension() string { return "swift" }

func (e *swiftEmitter) Generate(value models.Value) string {
	root := infer.Infer(value, rootTypeName(e.opts.RootName))
	defs := infer.RenderAll(root, e.renderDefinition)
	return assemble("", defs)
}

func (e *swiftEmitter) renderDefinition(node *models.TypeNode) string {
	var b strings.Builder
	keyword := "struct"
	binding := "let"
	if e.opts.Style == SwiftClass {
		keyword = "final class"
		binding = "var"
	}
	fmt.Fprintf(&b, "%s %s: Codable {\n", keyword, node.Name)

	anyRename := false
	for _, f := range node.Fields {
		name := fieldName(f.Key, naming.ToCamel)
		if name != f.Key {
			anyRename = true
		}
		typeStr := e.typeRef(f.Type)
		if e.opts.OptionalFields && !strings.HasSuffix(typeStr, "?") {
			typeStr += "?"
		}
		fmt.Fprintf(&b, "    %s %s: %s\n", binding, name, typeStr)
	}

	if anyRename {
		b.WriteString("\n    enum CodingKeys: String, CodingKey {\n")
		for _, f := range node.Fields {
			name := fieldName(f.Key, naming.ToCamel)
			if name != f.Key {
				fmt.Fprintf(&b, "        case %s = %q\n", name, f.Key)
			} else {
				fmt.Fprintf(&b, "        case %s\n", name)
			}
		}
		b.WriteString("    }\n")
	}

	b.WriteString("}")
	return b.String()
}

func (e *swiftEmitter) typeRef(node *models.TypeNode) string {
	switch node.Kind {
	case models.KindArray:
		return "[" + e.typeRef(node.Elem) + "]"
	case models.KindObject:
		return node.Name
	default:
		switch node.Prim {
		case models.PrimString:
			return "String"
		case models.PrimNumber:
			return "Double"
		case models.PrimBoolean:
			return "Bool"
		case models.PrimNull:
			return "Any?"
		default:
			return "Any"
		}
	}
}
