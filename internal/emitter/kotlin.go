package emitter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/polytyper/polytyper/internal/infer"
	"github.com/polytyper/polytyper/internal/models"
	"github.com/polytyper/polytyper/internal/naming"
)

// KotlinAnnotations selects the serialization annotation dialect.
type KotlinAnnotations string

const (
	KotlinKotlinx KotlinAnnotations = "kotlinx"
	KotlinGson    KotlinAnnotations = "gson"
	KotlinMoshi   KotlinAnnotations = "moshi"
	KotlinJackson KotlinAnnotations = "jackson"
	KotlinNone    KotlinAnnotations = "none"
)

// KotlinOptions configures the Kotlin emitter.
type KotlinOptions struct {
	RootName       string
	DataClass      bool
	Annotations    KotlinAnnotations
	OptionalFields bool
	// DefaultValues initializes non-optional properties with type defaults.
	DefaultValues bool
}

// Language implements Options.
func (KotlinOptions) Language() Language { return LangKotlin }

// DefaultKotlinOptions returns the canonical Kotlin defaults.
func DefaultKotlinOptions() KotlinOptions {
	return KotlinOptions{
		RootName:    DefaultRootName,
		DataClass:   true,
		Annotations: KotlinKotlinx,
	}
}

type kotlinEmitter struct {
	opts KotlinOptions
}

func (e *kotlinEmitter) Language() Language    { return LangKotlin }
func (e *kotlinEmitter) FileExtension() string { return "kt" }

func (e *kotlinEmitter) Generate(value models.Value) string {
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

func (e *kotlinEmitter) header(nodes []*models.TypeNode) string {
	imports := map[string]bool{}

	anyRename := false
	for _, node := range nodes {
		for _, f := range node.Fields {
			if fieldName(f.Key, naming.ToCamel) != f.Key {
				anyRename = true
			}
		}
	}

	switch e.opts.Annotations {
	case KotlinKotlinx:
		imports["kotlinx.serialization.Serializable"] = true
		if anyRename {
			imports["kotlinx.serialization.SerialName"] = true
		}
	case KotlinGson:
		if anyRename {
			imports["com.google.gson.annotations.SerializedName"] = true
		}
	case KotlinMoshi:
		if anyRename {
			imports["com.squareup.moshi.Json"] = true
		}
	case KotlinJackson:
		if anyRename {
			imports["com.fasterxml.jackson.annotation.JsonProperty"] = true
		}
	}

	if len(imports) == 0 {
		return ""
	}
	paths := make([]string, 0, len(imports))
	for p := range imports {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	lines := make([]string, len(paths))
	for i, p := range paths {
		lines[i] = "import " + p
	}
	return strings.Join(lines, "\n")
}

func (e *kotlinEmitter) renderDefinition(node *models.TypeNode) string {
	var b strings.Builder
	if e.opts.Annotations == KotlinKotlinx {
		b.WriteString("@Serializable\n")
	}
	keyword := "class"
	if e.opts.DataClass {
		keyword = "data class"
	}
	fmt.Fprintf(&b, "%s %s(\n", keyword, node.Name)
	for i, f := range node.Fields {
		name := fieldName(f.Key, naming.ToCamel)
		b.WriteString("    ")
		if ann := e.annotation(f.Key, name); ann != "" {
			b.WriteString(ann + " ")
		}
		typeStr := e.typeRef(f.Type)
		if e.opts.OptionalFields {
			if !strings.HasSuffix(typeStr, "?") {
				typeStr += "?"
			}
			fmt.Fprintf(&b, "val %s: %s = null", name, typeStr)
		} else if e.opts.DefaultValues {
			if def, ok := e.defaultValue(f.Type); ok {
				fmt.Fprintf(&b, "val %s: %s = %s", name, typeStr, def)
			} else {
				fmt.Fprintf(&b, "val %s: %s", name, typeStr)
			}
		} else {
			fmt.Fprintf(&b, "val %s: %s", name, typeStr)
		}
		if i < len(node.Fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(")")
	return b.String()
}

func (e *kotlinEmitter) annotation(key, name string) string {
	if name == key {
		return ""
	}
	switch e.opts.Annotations {
	case KotlinKotlinx:
		return fmt.Sprintf("@SerialName(%q)", key)
	case KotlinGson:
		return fmt.Sprintf("@SerializedName(%q)", key)
	case KotlinMoshi:
		return fmt.Sprintf("@Json(name = %q)", key)
	case KotlinJackson:
		return fmt.Sprintf("@JsonProperty(%q)", key)
	default:
		return ""
	}
}

// defaultValue returns a literal initializer for a type, when one exists.
func (e *kotlinEmitter) defaultValue(node *models.TypeNode) (string, bool) {
	switch node.Kind {
	case models.KindArray:
		return "emptyList()", true
	case models.KindObject:
		return "", false
	default:
		switch node.Prim {
		case models.PrimString:
			return `""`, true
		case models.PrimNumber:
			return "0.0", true
		case models.PrimBoolean:
			return "false", true
		case models.PrimNull:
			return "null", true
		default:
			return "", false
		}
	}
}

func (e *kotlinEmitter) typeRef(node *models.TypeNode) string {
	switch node.Kind {
	case models.KindArray:
		return "List<" + e.typeRef(node.Elem) + ">"
	case models.KindObject:
		return node.Name
	default:
		switch node.Prim {
		case models.PrimString:
			return "String"
		case models.PrimNumber:
			return "Double"
		case models.PrimBoolean:
			return "Boolean"
		case models.PrimNull:
			return "Any?"
		default:
			return "Any"
		}
	}
}
