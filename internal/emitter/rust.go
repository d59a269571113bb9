package emitter

import (
	"fmt"
	"strings"

	"github.com/polytyper/polytyper/internal/infer"
	"github.com/polytyper/polytyper/internal/models"
	"github.com/polytyper/polytyper/internal/naming"
)

// RustOptions configures the Rust emitter. Fields are snake_case with a
// #[serde(rename)] attribute whenever the converted name differs from the
// original key.
type RustOptions struct {
	RootName string
	// Derives is the derive list applied to every struct.
	Derives        []string
	OptionalFields bool
	// BoxObjects wraps object-typed fields in Box.
	BoxObjects bool
}

// Language implements Options.
func (RustOptions) Language() Language { return LangRust }

// DefaultRustOptions returns the canonical Rust defaults. The Derives
// slice is freshly allocated per call so callers cannot share backing
// arrays.
func DefaultRustOptions() RustOptions {
	return RustOptions{
		RootName: DefaultRootName,
		Derives:  []string{"Debug", "Clone", "Serialize", "Deserialize"},
	}
}

type rustEmitter struct {
	opts RustOptions
}

func (e *rustEmitter) Language() Language    { return LangRust }
func (e *rustEmitter) FileExtension() string { return "rs" }

func (e *rustEmitter) Generate(value models.Value) string {
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

func (e *rustEmitter) header(nodes []*models.TypeNode) string {
	var serde []string
	if e.hasDerive("Deserialize") {
		serde = append(serde, "Deserialize")
	}
	if e.hasDerive("Serialize") {
		serde = append(serde, "Serialize")
	}
	if len(serde) == 0 {
		return ""
	}
	return fmt.Sprintf("use serde::{%s};", strings.Join(serde, ", "))
}

func (e *rustEmitter) hasDerive(name string) bool {
	for _, d := range e.opts.Derives {
		if d == name {
			return true
		}
	}
	return false
}

func (e *rustEmitter) renderDefinition(node *models.TypeNode) string {
	var b strings.Builder
	if len(e.opts.Derives) > 0 {
		fmt.Fprintf(&b, "#[derive(%s)]\n", strings.Join(e.opts.Derives, ", "))
	}
	fmt.Fprintf(&b, "pub struct %s {\n", node.Name)
	for _, f := range node.Fields {
		name := fieldName(f.Key, naming.ToSnake)
		if name != f.Key {
			fmt.Fprintf(&b, "    #[serde(rename = %q)]\n", f.Key)
		}
		typeStr := e.fieldTypeRef(f.Type)
		if e.opts.OptionalFields {
			typeStr = "Option<" + typeStr + ">"
		}
		fmt.Fprintf(&b, "    pub %s: %s,\n", name, typeStr)
	}
	b.WriteString("}")
	return b.String()
}

func (e *rustEmitter) fieldTypeRef(node *models.TypeNode) string {
	if e.opts.BoxObjects && node.Kind == models.KindObject {
		return "Box<" + node.Name + ">"
	}
	return e.typeRef(node)
}

func (e *rustEmitter) typeRef(node *models.TypeNode) string {
	switch node.Kind {
	case models.KindArray:
		return "Vec<" + e.typeRef(node.Elem) + ">"
	case models.KindObject:
		return node.Name
	default:
		switch node.Prim {
		case models.PrimString:
			return "String"
		case models.PrimNumber:
			return "f64"
		case models.PrimBoolean:
			return "bool"
		case models.PrimNull:
			return "Option<()>"
		default:
			return "serde_json::Value"
		}
	}
}
