package emitter

import (
	"fmt"
	"strings"

	"github.com/polytyper/polytyper/internal/infer"
	"github.com/polytyper/polytyper/internal/models"
	"github.com/polytyper/polytyper/internal/naming"
)

// CSharpStyle selects the type form.
type CSharpStyle string

const (
	CSharpRecord CSharpStyle = "record"
	CSharpClass  CSharpStyle = "class"
)

// CSharpSerializer selects the attribute dialect.
type CSharpSerializer string

const (
	CSharpSystemTextJson CSharpSerializer = "systemtextjson"
	CSharpNewtonsoft     CSharpSerializer = "newtonsoft"
	CSharpDataContract   CSharpSerializer = "datacontract"
)

// CSharpOptions configures the C# emitter. Properties are PascalCase; a
// rename attribute is emitted whenever the converted name differs from the
// JSON key.
type CSharpOptions struct {
	RootName       string
	Style          CSharpStyle
	Serializer     CSharpSerializer
	Namespace      string
	OptionalFields bool
}

// Language implements Options.
func (CSharpOptions) Language() Language { return LangCSharp }

// DefaultCSharpOptions returns the canonical C# defaults.
func DefaultCSharpOptions() CSharpOptions {
	return CSharpOptions{
		RootName:   DefaultRootName,
		Style:      CSharpClass,
		Serializer: CSharpSystemTextJson,
	}
}

type cSharpEmitter struct {
	opts CSharpOptions
}

func (e *cSharpEmitter) Language() Language    { return LangCSharp }
func (e *cSharpEmitter) FileExtension() string { return "cs" }

func (e *cSharpEmitter) Generate(value models.Value) string {
	root := infer.Infer(value, rootTypeName(e.opts.RootName))
	nodes := infer.CollectObjects(root)
	if len(nodes) == 0 {
		return ""
	}

	defs := make([]string, 0, len(nodes))
	for _, node := range nodes {
		defs = append(defs, e.renderDefinition(node))
	}
	return assemble(e.header(nodes), defs)
}

func (e *cSharpEmitter) header(nodes []*models.TypeNode) string {
	var usings []string

	anyList := false
	anyRename := false
	for _, node := range nodes {
		for _, f := range node.Fields {
			if f.Type.Kind == models.KindArray {
				anyList = true
			}
			if fieldName(f.Key, naming.ToPascal) != f.Key {
				anyRename = true
			}
		}
	}

	if anyList {
		usings = append(usings, "using System.Collections.Generic;")
	}
	switch e.opts.Serializer {
	case CSharpSystemTextJson:
		if anyRename {
			usings = append(usings, "using System.Text.Json.Serialization;")
		}
	case CSharpNewtonsoft:
		if anyRename {
			usings = append(usings, "using Newtonsoft.Json;")
		}
	case CSharpDataContract:
		usings = append(usings, "using System.Runtime.Serialization;")
	}

	var blocks []string
	if len(usings) > 0 {
		blocks = append(blocks, strings.Join(usings, "\n"))
	}
	if e.opts.Namespace != "" {
		blocks = append(blocks, fmt.Sprintf("namespace %s;", e.opts.Namespace))
	}
	return strings.Join(blocks, "\n\n")
}

func (e *cSharpEmitter) renderDefinition(node *models.TypeNode) string {
	if e.opts.Style == CSharpRecord {
		return e.renderRecord(node)
	}
	return e.renderClass(node)
}

func (e *cSharpEmitter) renderRecord(node *models.TypeNode) string {
	var b strings.Builder
	if e.opts.Serializer == CSharpDataContract {
		b.WriteString("[DataContract]\n")
	}
	fmt.Fprintf(&b, "public record %s(\n", node.Name)
	for i, f := range node.Fields {
		name := fieldName(f.Key, naming.ToPascal)
		b.WriteString("    ")
		if attr := e.attribute(f.Key, name); attr != "" {
			fmt.Fprintf(&b, "[property: %s] ", attr)
		}
		fmt.Fprintf(&b, "%s %s", e.fieldType(f.Type), name)
		if i < len(node.Fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(");")
	return b.String()
}

func (e *cSharpEmitter) renderClass(node *models.TypeNode) string {
	var b strings.Builder
	if e.opts.Serializer == CSharpDataContract {
		b.WriteString("[DataContract]\n")
	}
	fmt.Fprintf(&b, "public class %s\n{\n", node.Name)
	for i, f := range node.Fields {
		name := fieldName(f.Key, naming.ToPascal)
		if attr := e.attribute(f.Key, name); attr != "" {
			fmt.Fprintf(&b, "    [%s]\n", attr)
		}
		fmt.Fprintf(&b, "    public %s %s { get; set; }\n", e.fieldType(f.Type), name)
		if i < len(node.Fields)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("}")
	return b.String()
}

// attribute returns the member rename attribute, or "" when none applies.
// DataContract members are always attributed; the JSON dialects only
// attribute renamed properties.
func (e *cSharpEmitter) attribute(key, name string) string {
	switch e.opts.Serializer {
	case CSharpDataContract:
		return fmt.Sprintf("DataMember(Name = %q)", key)
	case CSharpNewtonsoft:
		if name != key {
			return fmt.Sprintf("JsonProperty(%q)", key)
		}
	case CSharpSystemTextJson:
		if name != key {
			return fmt.Sprintf("JsonPropertyName(%q)", key)
		}
	}
	return ""
}

func (e *cSharpEmitter) fieldType(node *models.TypeNode) string {
	typeStr := e.typeRef(node)
	if e.opts.OptionalFields {
		return typeStr + "?"
	}
	return typeStr
}

func (e *cSharpEmitter) typeRef(node *models.TypeNode) string {
	switch node.Kind {
	case models.KindArray:
		return "List<" + e.typeRef(node.Elem) + ">"
	case models.KindObject:
		return node.Name
	default:
		switch node.Prim {
		case models.PrimString:
			return "string"
		case models.PrimNumber:
			return "double"
		case models.PrimBoolean:
			return "bool"
		default:
			return "object"
		}
	}
}
