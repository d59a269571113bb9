package emitter

import (
	"fmt"
	"strings"

	"github.com/polytyper/polytyper/internal/infer"
	"github.com/polytyper/polytyper/internal/models"
	"github.com/polytyper/polytyper/internal/naming"
)

// PHPStyle selects between constructor property promotion and classic
// declared-properties classes.
type PHPStyle string

const (
	PHPPromotion PHPStyle = "promotion"
	PHPClassic   PHPStyle = "classic"
)

// PHPOptions configures the PHP emitter. Every class carries a fromArray
// factory so the original JSON keys appear verbatim in the output.
type PHPOptions struct {
	RootName       string
	Style          PHPStyle
	Readonly       bool
	OptionalFields bool
	StrictTypes    bool
	Namespace      string
}

// Language implements Options.
func (PHPOptions) Language() Language { return LangPHP }

// DefaultPHPOptions returns the canonical PHP defaults.
func DefaultPHPOptions() PHPOptions {
	return PHPOptions{
		RootName:    DefaultRootName,
		Style:       PHPPromotion,
		StrictTypes: true,
	}
}

type phpEmitter struct {
	opts PHPOptions
}

func (e *phpEmitter) Language() Language    { return LangPHP }
func (e *phpEmitter) FileExtension() string { return "php" }

func (e *phpEmitter) Generate(value models.Value) string {
	root := infer.Infer(value, rootTypeName(e.opts.RootName))
	defs := infer.RenderAll(root, e.renderDefinition)
	return assemble(e.header(), defs)
}

func (e *phpEmitter) header() string {
	lines := []string{"<?php"}
	if e.opts.StrictTypes {
		lines = append(lines, "", "declare(strict_types=1);")
	}
	if e.opts.Namespace != "" {
		lines = append(lines, "", fmt.Sprintf("namespace %s;", e.opts.Namespace))
	}
	return strings.Join(lines, "\n")
}

func (e *phpEmitter) renderDefinition(node *models.TypeNode) string {
	if e.opts.Style == PHPClassic {
		return e.renderClassic(node)
	}
	return e.renderPromotion(node)
}

func (e *phpEmitter) renderPromotion(node *models.TypeNode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "class %s\n{\n", node.Name)
	b.WriteString("    public function __construct(\n")
	for _, f := range node.Fields {
		fmt.Fprintf(&b, "        %s %s $%s,\n", e.visibility(), e.fieldType(f.Type), fieldName(f.Key, naming.ToCamel))
	}
	b.WriteString("    ) {\n    }\n")
	b.WriteString(e.renderFromArray(node))
	b.WriteString("}")
	return b.String()
}

func (e *phpEmitter) renderClassic(node *models.TypeNode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "class %s\n{\n", node.Name)
	for _, f := range node.Fields {
		fmt.Fprintf(&b, "    %s %s $%s;\n", e.visibility(), e.fieldType(f.Type), fieldName(f.Key, naming.ToCamel))
	}

	b.WriteString("\n    public function __construct(")
	params := make([]string, 0, len(node.Fields))
	for _, f := range node.Fields {
		params = append(params, fmt.Sprintf("%s $%s", e.fieldType(f.Type), fieldName(f.Key, naming.ToCamel)))
	}
	b.WriteString(strings.Join(params, ", "))
	b.WriteString(")\n    {\n")
	for _, f := range node.Fields {
		name := fieldName(f.Key, naming.ToCamel)
		fmt.Fprintf(&b, "        $this->%s = $%s;\n", name, name)
	}
	b.WriteString("    }\n")
	b.WriteString(e.renderFromArray(node))
	b.WriteString("}")
	return b.String()
}

// renderFromArray maps the original JSON keys onto constructor arguments.
func (e *phpEmitter) renderFromArray(node *models.TypeNode) string {
	var b strings.Builder
	b.WriteString("\n    public static function fromArray(array $data): self\n    {\n")
	b.WriteString("        return new self(\n")
	for _, f := range node.Fields {
		fmt.Fprintf(&b, "            %s,\n", e.fromArrayExpr(f))
	}
	b.WriteString("        );\n    }\n")
	return b.String()
}

func (e *phpEmitter) fromArrayExpr(f models.Field) string {
	access := fmt.Sprintf("$data['%s']", strings.ReplaceAll(f.Key, "'", "\\'"))
	if f.Type.Kind == models.KindObject {
		if e.opts.OptionalFields {
			return fmt.Sprintf("isset(%s) ? %s::fromArray(%s) : null", access, f.Type.Name, access)
		}
		return fmt.Sprintf("%s::fromArray(%s)", f.Type.Name, access)
	}
	if e.opts.OptionalFields {
		return access + " ?? null"
	}
	return access
}

func (e *phpEmitter) visibility() string {
	if e.opts.Readonly {
		return "public readonly"
	}
	return "public"
}

// fieldType applies the nullable prefix. mixed already covers null and
// cannot be marked nullable.
func (e *phpEmitter) fieldType(node *models.TypeNode) string {
	typeStr := e.typeRef(node)
	if e.opts.OptionalFields && typeStr != "mixed" {
		return "?" + typeStr
	}
	return typeStr
}

func (e *phpEmitter) typeRef(node *models.TypeNode) string {
	switch node.Kind {
	case models.KindArray:
		return "array"
	case models.KindObject:
		return node.Name
	default:
		switch node.Prim {
		case models.PrimString:
			return "string"
		case models.PrimNumber:
			return "float"
		case models.PrimBoolean:
			return "bool"
		default:
			return "mixed"
		}
	}
}
