package emitter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/polytyper/polytyper/internal/infer"
	"github.com/polytyper/polytyper/internal/models"
	"github.com/polytyper/polytyper/internal/naming"
)

// PythonStyle selects between dataclasses and TypedDicts.
type PythonStyle string

const (
	PythonDataclass PythonStyle = "dataclass"
	PythonTypedDict PythonStyle = "typeddict"
)

// PythonOptions configures the Python emitter. Dataclass fields are
// snake_case with a field(metadata=...) rename record when the name
// changes; TypedDicts keep keys verbatim, switching to the functional form
// when a key is not a valid identifier.
type PythonOptions struct {
	RootName       string
	Style          PythonStyle
	OptionalFields bool
	// Dataclass decorator knobs.
	Frozen bool
	Slots  bool
	KwOnly bool
}

// Language implements Options.
func (PythonOptions) Language() Language { return LangPython }

// DefaultPythonOptions returns the canonical Python defaults.
func DefaultPythonOptions() PythonOptions {
	return PythonOptions{
		RootName: DefaultRootName,
		Style:    PythonDataclass,
	}
}

type pythonEmitter struct {
	opts PythonOptions
}

func (e *pythonEmitter) Language() Language    { return LangPython }
func (e *pythonEmitter) FileExtension() string { return "py" }

func (e *pythonEmitter) Generate(value models.Value) string {
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

// header computes the import block from what the definitions actually use.
func (e *pythonEmitter) header(nodes []*models.TypeNode) string {
	typingNames := map[string]bool{}
	needsField := false

	for _, node := range nodes {
		for _, f := range node.Fields {
			if usesAny(f.Type) {
				typingNames["Any"] = true
			}
			if e.opts.Style == PythonDataclass && fieldName(f.Key, naming.ToSnake) != f.Key {
				needsField = true
			}
			if e.opts.Style == PythonTypedDict && e.opts.OptionalFields {
				typingNames["NotRequired"] = true
			}
		}
	}

	var lines []string
	if e.opts.Style == PythonDataclass {
		if needsField {
			lines = append(lines, "from dataclasses import dataclass, field")
		} else {
			lines = append(lines, "from dataclasses import dataclass")
		}
	} else {
		typingNames["TypedDict"] = true
	}
	if len(typingNames) > 0 {
		names := make([]string, 0, len(typingNames))
		for name := range typingNames {
			names = append(names, name)
		}
		sort.Strings(names)
		lines = append(lines, "from typing import "+strings.Join(names, ", "))
	}
	return strings.Join(lines, "\n")
}

func usesAny(node *models.TypeNode) bool {
	switch node.Kind {
	case models.KindArray:
		return usesAny(node.Elem)
	case models.KindPrimitive:
		return node.Prim == models.PrimAny
	default:
		return false
	}
}

func (e *pythonEmitter) renderDefinition(node *models.TypeNode) string {
	if e.opts.Style == PythonTypedDict {
		return e.renderTypedDict(node)
	}
	return e.renderDataclass(node)
}

func (e *pythonEmitter) renderDataclass(node *models.TypeNode) string {
	var b strings.Builder
	b.WriteString(e.decorator())
	b.WriteString("\n")
	fmt.Fprintf(&b, "class %s:\n", node.Name)
	if len(node.Fields) == 0 {
		b.WriteString("    pass")
		return b.String()
	}

	for i, f := range node.Fields {
		name := fieldName(f.Key, naming.ToSnake)
		typeStr := e.typeRef(f.Type)
		if e.opts.OptionalFields {
			typeStr += " | None"
		}
		fmt.Fprintf(&b, "    %s: %s", name, typeStr)

		renamed := name != f.Key
		switch {
		case renamed && e.opts.OptionalFields:
			fmt.Fprintf(&b, " = field(default=None, metadata={\"json\": %q})", f.Key)
		case renamed:
			fmt.Fprintf(&b, " = field(metadata={\"json\": %q})", f.Key)
		case e.opts.OptionalFields:
			b.WriteString(" = None")
		}
		if i < len(node.Fields)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (e *pythonEmitter) decorator() string {
	var args []string
	if e.opts.Frozen {
		args = append(args, "frozen=True")
	}
	if e.opts.Slots {
		args = append(args, "slots=True")
	}
	if e.opts.KwOnly {
		args = append(args, "kw_only=True")
	}
	if len(args) == 0 {
		return "@dataclass"
	}
	return "@dataclass(" + strings.Join(args, ", ") + ")"
}

func (e *pythonEmitter) renderTypedDict(node *models.TypeNode) string {
	functional := false
	for _, f := range node.Fields {
		if !isASCIIIdentifier(f.Key) {
			functional = true
			break
		}
	}

	var b strings.Builder
	if functional {
		// Keys that are not identifiers force the functional syntax.
		fmt.Fprintf(&b, "%s = TypedDict(%q, {\n", node.Name, node.Name)
		for _, f := range node.Fields {
			fmt.Fprintf(&b, "    %q: %s,\n", f.Key, e.typedDictValue(f.Type))
		}
		b.WriteString("})")
		return b.String()
	}

	fmt.Fprintf(&b, "class %s(TypedDict):\n", node.Name)
	if len(node.Fields) == 0 {
		b.WriteString("    pass")
		return b.String()
	}
	for i, f := range node.Fields {
		fmt.Fprintf(&b, "    %s: %s", f.Key, e.typedDictValue(f.Type))
		if i < len(node.Fields)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (e *pythonEmitter) typedDictValue(node *models.TypeNode) string {
	typeStr := e.typeRef(node)
	if e.opts.OptionalFields {
		return "NotRequired[" + typeStr + "]"
	}
	return typeStr
}

func (e *pythonEmitter) typeRef(node *models.TypeNode) string {
	switch node.Kind {
	case models.KindArray:
		return "list[" + e.typeRef(node.Elem) + "]"
	case models.KindObject:
		return node.Name
	default:
		switch node.Prim {
		case models.PrimString:
			return "str"
		case models.PrimNumber:
			return "float"
		case models.PrimBoolean:
			return "bool"
		case models.PrimNull:
			return "None"
		default:
			return "Any"
		}
	}
}
