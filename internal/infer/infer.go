// Package infer walks a parsed JSON value and produces the TypeNode tree
// consumed by the language emitters, plus the flattening pass that orders
// nested object types for emission.
package infer

import (
	"github.com/goccy/go-json"

	"github.com/polytyper/polytyper/internal/models"
	"github.com/polytyper/polytyper/internal/naming"
)

// Infer derives the type of value. name is the structural name assigned if
// the value turns out to be an object (or names its array element type).
//
// The walk is total: null maps to a null primitive, an empty array gets an
// "any" element placeholder, array element types come from the first
// element only, and anything unrecognized degrades to "any". Object fields
// recurse in member order with PascalCase-converted names.
func Infer(value models.Value, name string) *models.TypeNode {
	switch v := value.(type) {
	case nil:
		return &models.TypeNode{Kind: models.KindPrimitive, Prim: models.PrimNull}
	case bool:
		return &models.TypeNode{Kind: models.KindPrimitive, Prim: models.PrimBoolean}
	case string:
		return &models.TypeNode{Kind: models.KindPrimitive, Prim: models.PrimString}
	case json.Number, float64, float32, int, int32, int64:
		return &models.TypeNode{Kind: models.KindPrimitive, Prim: models.PrimNumber}
	case models.Array:
		return inferArray(v, name)
	case *models.Object:
		return inferObject(v, name)
	default:
		return &models.TypeNode{Kind: models.KindPrimitive, Prim: models.PrimAny}
	}
}

func inferArray(arr models.Array, name string) *models.TypeNode {
	if len(arr) == 0 {
		// Empty arrays carry no element evidence; the placeholder renders
		// as each language's untyped equivalent.
		return &models.TypeNode{
			Name: name,
			Kind: models.KindArray,
			Elem: &models.TypeNode{Kind: models.KindPrimitive, Prim: models.PrimAny},
		}
	}
	// First element wins; sibling elements are not unified.
	return &models.TypeNode{
		Name: name,
		Kind: models.KindArray,
		Elem: Infer(arr[0], name+"Item"),
	}
}

func inferObject(obj *models.Object, name string) *models.TypeNode {
	node := &models.TypeNode{
		Name:   name,
		Kind:   models.KindObject,
		Fields: make([]models.Field, 0, len(obj.Members)),
	}
	for _, m := range obj.Members {
		node.Fields = append(node.Fields, models.Field{
			Key:  m.Key,
			Type: Infer(m.Value, naming.ToPascal(m.Key)),
		})
	}
	return node
}

// CollectObjects returns every distinct object type reachable from root in
// emission order: depth-first with children before their parents, the root
// itself last when it is an object. Deduplication is by structural name,
// keeping the first occurrence; two differently shaped objects that derive
// the same name collapse into the first one's definition. The returned
// order is stable, so repeated calls over the same tree emit identical
// output.
func CollectObjects(root *models.TypeNode) []*models.TypeNode {
	var ordered []*models.TypeNode
	seen := make(map[string]bool)

	var walk func(node *models.TypeNode)
	walk = func(node *models.TypeNode) {
		if node == nil {
			return
		}
		switch node.Kind {
		case models.KindArray:
			walk(node.Elem)
		case models.KindObject:
			for _, f := range node.Fields {
				walk(f.Type)
			}
			if !seen[node.Name] {
				seen[node.Name] = true
				ordered = append(ordered, node)
			}
		}
	}

	walk(root)
	return ordered
}

// RenderAll applies render to each object type in emission order and
// returns the non-empty results.
func RenderAll(root *models.TypeNode, render func(*models.TypeNode) string) []string {
	nodes := CollectObjects(root)
	out := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if s := render(node); s != "" {
			out = append(out, s)
		}
	}
	return out
}
