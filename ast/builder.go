package ast

import (
	"fmt"
	"strings"

	"ccparse/token"
)

// Builder allocates the fresh unique ids that stamp every node as it is
// constructed, and hosts the handful of combinators that are not simple
// node factories: attribute lifting, top-level declarator annotation, and
// string-literal concatenation. Node factories elsewhere in this package
// take already-built children and do not mutate; Builder is the one piece
// of construction-time state threaded through them (mirroring how the
// parser monad's fresh-name counter is the one piece of state the grammar
// actions share).
type Builder struct {
	nextID uint64
}

// NewBuilder starts the unique-id counter at startID, so a caller composing
// multiple parses into one namespace can chain them.
func NewBuilder(startID uint64) *Builder {
	return &Builder{nextID: startID}
}

// Stamp produces the (position, fresh-id) pair every node embeds, in
// construction order.
func (b *Builder) Stamp(pos token.Position) Attrs {
	id := b.nextID
	b.nextID++
	return Attrs{Pos: pos, ID: id}
}

// NextID reports the id the next Stamp call will assign, without consuming
// it; used by callers that need to know the running counter (tests
// checking monotonicity) without allocating a node.
func (b *Builder) NextID() uint64 { return b.nextID }

// ConcatStringLiterals merges a run of adjacent string-literal tokens
// (already decoded) into the single literal a primary expression's string
// concatenation rule produces.
func (b *Builder) ConcatStringLiterals(decoded []string) string {
	var sb strings.Builder
	for _, s := range decoded {
		sb.WriteString(s)
	}
	return sb.String()
}

// LiftSpecifierAttributes converts a run of attributes gathered while
// scanning a declaration-specifier list into attribute-as-qualifier
// DeclSpec entries and splices them into specs at the position they were
// encountered. This is the "attribute lifting" of §4.4: attributes in a
// specifier context become qualifier-shaped specifier items rather than a
// separate channel.
func (b *Builder) LiftSpecifierAttributes(specs []DeclSpec, attrs []Attribute, pos token.Position) []DeclSpec {
	if len(attrs) == 0 {
		return specs
	}
	out := make([]DeclSpec, len(specs), len(specs)+1)
	copy(out, specs)
	out = append(out, DeclSpec{
		Kind: TypeQualifierSpec,
		Qualifier: TypeQualifier{
			Kind:       AttributeQualifier,
			Attributes: attrs,
		},
		Attrs: b.Stamp(pos),
	})
	return out
}

// AnnotateTopLevelDeclarator distributes an optional assembler name and a
// list of trailing attributes, both syntactically attached to a top-level
// declarator, down to the innermost variable-declarator they actually
// qualify (§4.4 "top-level declarator annotation"). It rebuilds the chain
// rather than mutating d in place, consistent with "node factories ...
// do not mutate".
//
// Combining an asm name with an already-present one on the innermost
// declarator is a semantic-action error (asm name overwrite is not
// allowed); combining empty with present, in either direction, keeps the
// present one.
func (b *Builder) AnnotateTopLevelDeclarator(d *Declarator, asmName string, hasAsmName bool, attrs []Attribute) (*Declarator, error) {
	if d == nil {
		if hasAsmName || len(attrs) > 0 {
			return nil, fmt.Errorf("cannot attach asm name or attributes: declarator is absent")
		}
		return nil, nil
	}
	return annotateChain(d, asmName, hasAsmName, attrs)
}

func annotateChain(d *Declarator, asmName string, hasAsmName bool, attrs []Attribute) (*Declarator, error) {
	if d.Kind == VariableDeclaratorKind {
		next := *d
		if hasAsmName {
			if next.HasAsmName && next.AsmName != "" {
				return nil, fmt.Errorf("asm name overwrite: declarator for %q already carries asm name %q, cannot also attach %q", next.Name.Name, next.AsmName, asmName)
			}
			next.AsmName = asmName
			next.HasAsmName = true
		}
		if len(attrs) > 0 {
			next.Attributes = append(append([]Attribute(nil), next.Attributes...), attrs...)
		}
		return &next, nil
	}
	inner, err := annotateChain(d.Inner, asmName, hasAsmName, attrs)
	if err != nil {
		return nil, err
	}
	next := *d
	next.Inner = inner
	return &next, nil
}
