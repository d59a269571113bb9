package emitter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/polytyper/polytyper/internal/infer"
	"github.com/polytyper/polytyper/internal/models"
	"github.com/polytyper/polytyper/internal/naming"
)

// JavaStyle selects the class form.
type JavaStyle string

const (
	JavaRecord JavaStyle = "record"
	JavaPOJO   JavaStyle = "pojo"
	JavaLombok JavaStyle = "lombok"
)

// JavaAnnotations selects the serialization annotation dialect.
type JavaAnnotations string

const (
	JavaJackson JavaAnnotations = "jackson"
	JavaGson    JavaAnnotations = "gson"
	JavaMoshi   JavaAnnotations = "moshi"
	JavaNone    JavaAnnotations = "none"
)

// JavaOptions configures the Java emitter.
type JavaOptions struct {
	RootName       string
	Style          JavaStyle
	Annotations    JavaAnnotations
	OptionalFields bool
	// EqualsHashCode generates equals/hashCode for the pojo style; records
	// and Lombok already provide them.
	EqualsHashCode bool
}

// Language implements Options.
func (JavaOptions) Language() Language { return LangJava }

// DefaultJavaOptions returns the canonical Java defaults.
func DefaultJavaOptions() JavaOptions {
	return JavaOptions{
		RootName:    DefaultRootName,
		Style:       JavaRecord,
		Annotations: JavaJackson,
	}
}

type javaEmitter struct {
	opts JavaOptions
}

func (e *javaEmitter) Language() Language    { return LangJava }
func (e *javaEmitter) FileExtension() string { return "java" }

func (e *javaEmitter) Generate(value models.Value) string {
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

func (e *javaEmitter) header(nodes []*models.TypeNode) string {
	imports := map[string]bool{}

	anyRename := false
	anyList := false
	for _, node := range nodes {
		for _, f := range node.Fields {
			if fieldName(f.Key, naming.ToCamel) != f.Key {
				anyRename = true
			}
			if f.Type.Kind == models.KindArray {
				anyList = true
			}
		}
	}

	if anyRename {
		switch e.opts.Annotations {
		case JavaJackson:
			imports["com.fasterxml.jackson.annotation.JsonProperty"] = true
		case JavaGson:
			imports["com.google.gson.annotations.SerializedName"] = true
		case JavaMoshi:
			imports["com.squareup.moshi.Json"] = true
		}
	}
	if anyList {
		imports["java.util.List"] = true
	}
	if e.opts.OptionalFields {
		imports["java.util.Optional"] = true
	}
	if e.opts.Style == JavaPOJO && e.opts.EqualsHashCode {
		imports["java.util.Objects"] = true
	}
	if e.opts.Style == JavaLombok {
		imports["lombok.Data"] = true
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
		lines[i] = "import " + p + ";"
	}
	return strings.Join(lines, "\n")
}

func (e *javaEmitter) renderDefinition(node *models.TypeNode) string {
	if e.opts.Style == JavaRecord {
		return e.renderRecord(node)
	}
	return e.renderClass(node)
}

func (e *javaEmitter) renderRecord(node *models.TypeNode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "public record %s(\n", node.Name)
	for i, f := range node.Fields {
		name := fieldName(f.Key, naming.ToCamel)
		b.WriteString("    ")
		if ann := e.annotation(f.Key, name); ann != "" {
			b.WriteString(ann + " ")
		}
		fmt.Fprintf(&b, "%s %s", e.fieldType(f.Type), name)
		if i < len(node.Fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(") {}")
	return b.String()
}

func (e *javaEmitter) renderClass(node *models.TypeNode) string {
	var b strings.Builder
	if e.opts.Style == JavaLombok {
		b.WriteString("@Data\n")
	}
	fmt.Fprintf(&b, "public class %s {\n", node.Name)

	for _, f := range node.Fields {
		name := fieldName(f.Key, naming.ToCamel)
		if ann := e.annotation(f.Key, name); ann != "" {
			b.WriteString("    " + ann + "\n")
		}
		fmt.Fprintf(&b, "    private %s %s;\n", e.fieldType(f.Type), name)
	}

	if e.opts.Style == JavaPOJO {
		for _, f := range node.Fields {
			name := fieldName(f.Key, naming.ToCamel)
			typeStr := e.fieldType(f.Type)
			fmt.Fprintf(&b, "\n    public %s get%s() {\n        return %s;\n    }\n", typeStr, naming.ToPascal(name), name)
			fmt.Fprintf(&b, "\n    public void set%s(%s %s) {\n        this.%s = %s;\n    }\n", naming.ToPascal(name), typeStr, name, name, name)
		}
		if e.opts.EqualsHashCode {
			b.WriteString(e.equalsHashCode(node))
		}
	}

	b.WriteString("}")
	return b.String()
}

func (e *javaEmitter) equalsHashCode(node *models.TypeNode) string {
	names := make([]string, 0, len(node.Fields))
	for _, f := range node.Fields {
		names = append(names, fieldName(f.Key, naming.ToCamel))
	}

	var b strings.Builder
	b.WriteString("\n    @Override\n    public boolean equals(Object o) {\n")
	b.WriteString("        if (this == o) {\n            return true;\n        }\n")
	fmt.Fprintf(&b, "        if (!(o instanceof %s)) {\n            return false;\n        }\n", node.Name)
	fmt.Fprintf(&b, "        %s other = (%s) o;\n", node.Name, node.Name)
	b.WriteString("        return ")
	for i, name := range names {
		if i > 0 {
			b.WriteString("\n            && ")
		}
		fmt.Fprintf(&b, "Objects.equals(%s, other.%s)", name, name)
	}
	if len(names) == 0 {
		b.WriteString("true")
	}
	b.WriteString(";\n    }\n")

	b.WriteString("\n    @Override\n    public int hashCode() {\n")
	fmt.Fprintf(&b, "        return Objects.hash(%s);\n    }\n", strings.Join(names, ", "))
	return b.String()
}

// annotation returns the rename annotation for a field, or "" when the
// camelCase name already matches the key or annotations are disabled.
func (e *javaEmitter) annotation(key, name string) string {
	if name == key {
		return ""
	}
	switch e.opts.Annotations {
	case JavaJackson:
		return fmt.Sprintf("@JsonProperty(%q)", key)
	case JavaGson:
		return fmt.Sprintf("@SerializedName(%q)", key)
	case JavaMoshi:
		return fmt.Sprintf("@Json(name = %q)", key)
	default:
		return ""
	}
}

// fieldType is the declared type of a field, applying the Optional
// wrapper. Optional forces boxed primitives.
func (e *javaEmitter) fieldType(node *models.TypeNode) string {
	if e.opts.OptionalFields {
		return "Optional<" + e.typeRef(node, true) + ">"
	}
	return e.typeRef(node, false)
}

func (e *javaEmitter) typeRef(node *models.TypeNode, boxed bool) string {
	switch node.Kind {
	case models.KindArray:
		return "List<" + e.typeRef(node.Elem, true) + ">"
	case models.KindObject:
		return node.Name
	default:
		switch node.Prim {
		case models.PrimString:
			return "String"
		case models.PrimNumber:
			if boxed {
				return "Double"
			}
			return "double"
		case models.PrimBoolean:
			if boxed {
				return "Boolean"
			}
			return "boolean"
		default:
			return "Object"
		}
	}
}
