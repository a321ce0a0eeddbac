package ast

// StorageClass enumerates the storage-class specifiers.
type StorageClass int

const (
	Typedef StorageClass = iota
	Extern
	Static
	Auto
	Register
	ThreadLocal
)

// TypeQualifierKind enumerates the type-qualifier family, including the
// GNU attribute-as-qualifier representational choice (see §9 glossary):
// an __attribute__ appearing in a specifier context rides along as a
// qualifier so it need not invent a separate channel in the specifier list.
type TypeQualifierKind int

const (
	Const TypeQualifierKind = iota
	Volatile
	Restrict
	Inline
	AttributeQualifier
)

// TypeQualifier is one qualifier in a specifier or declarator qualifier
// list. Attributes is only populated when Kind == AttributeQualifier.
type TypeQualifier struct {
	Kind       TypeQualifierKind
	Attributes []Attribute
}

// BasicTypeKind enumerates the primitive type-specifier keywords.
type BasicTypeKind int

const (
	Void BasicTypeKind = iota
	Char
	Short
	Int
	Long
	LongLong
	Float
	Double
	Signed
	Unsigned
	Bool
	Complex
)

// DeclSpecKind tags which alternative a DeclSpec holds.
type DeclSpecKind int

const (
	StorageClassSpec DeclSpecKind = iota
	TypeQualifierSpec
	BasicTypeSpec
	StructOrUnionSpec
	EnumSpecKind
	TypedefNameSpec
	TypeofExprSpec
	TypeofTypeSpec
)

// DeclSpec is one element of a declaration-specifier list. Exactly one of
// the payload fields is meaningful, selected by Kind.
type DeclSpec struct {
	Kind DeclSpecKind

	Storage       StorageClass
	Qualifier     TypeQualifier
	Basic         BasicTypeKind
	StructOrUnion *StructOrUnionSpecifier
	Enum          *EnumSpecifier
	TypedefName   Identifier
	TypeofExpr    Expr
	TypeofType    *TypeName

	Attrs
}

// StructOrUnionTag distinguishes `struct` from `union`.
type StructOrUnionTag int

const (
	StructTag StructOrUnionTag = iota
	UnionTag
)

// FieldDeclarator is one declarator entry in a struct/union field
// declaration: an optional declarator and/or an optional bit-field width.
// An unnamed bit field (`: N;`) has Declarator == nil and BitWidth set.
type FieldDeclarator struct {
	Declarator *Declarator
	BitWidth   Expr
	// Attributes holds the __attribute__ annotations written before this
	// field entry's declarator and after it (or after its bit-width). Stored here rather than on Declarator because an unnamed
	// bit-field (Declarator == nil) still needs somewhere to carry them —
	// see DESIGN.md's Open Question decision on unnamed-field attributes.
	Attributes []Attribute
}

// FieldDeclaration is one `specifier-qualifier-list declarator-list;` line
// inside a struct/union body.
type FieldDeclaration struct {
	Specifiers  []DeclSpec
	Declarators []FieldDeclarator
	Attrs
}

// StructOrUnionSpecifier is a struct/union specifier. HasFields is false
// for a forward reference and true for a definition, named or anonymous;
// an empty body (`{}`) is a definition with HasFields set and Fields nil.
type StructOrUnionSpecifier struct {
	Tag        StructOrUnionTag
	Name       Identifier
	HasName    bool
	Fields     []FieldDeclaration
	HasFields  bool
	Attributes []Attribute
	Attrs
}

func (s *StructOrUnionSpecifier) GetAttributes() []Attribute { return s.Attributes }

// Enumerator is one `name` or `name = expr` member of an enum specifier.
type Enumerator struct {
	Name  Identifier
	Value Expr
}

// EnumSpecifier is an enum specifier; Members == nil denotes a forward
// reference, analogous to StructOrUnionSpecifier's Fields.
type EnumSpecifier struct {
	Name       Identifier
	HasName    bool
	Members    []Enumerator
	HasMembers bool
	Attributes []Attribute
	Attrs
}

func (e *EnumSpecifier) GetAttributes() []Attribute { return e.Attributes }

// TypeName is a type-name as used in casts, sizeof, alignof, and
// compound-literal type positions: a specifier-qualifier list plus an
// optional abstract declarator.
type TypeName struct {
	Specifiers []DeclSpec
	Declarator *Declarator // nil, or an abstract declarator (no identifier)
	Attrs
}

// DeclaratorKind tags which declarator-chain layer a Declarator node is.
type DeclaratorKind int

const (
	VariableDeclaratorKind DeclaratorKind = iota
	PointerDeclaratorKind
	ArrayDeclaratorKind
	FunctionDeclaratorKind
)

// ParameterDeclaration is one entry of a prototype parameter-type-list:
// specifiers plus either a concrete or abstract declarator (abstract, or
// entirely absent, for an unnamed parameter).
type ParameterDeclaration struct {
	Specifiers []DeclSpec
	Declarator *Declarator // may be nil (unnamed parameter with no declarator at all)
	Attrs
}

// Parameters is a function-declarator's parameter form: either an
// old-style (K&R) identifier list, or a prototype parameter-declaration
// list with a variadic flag.
type Parameters struct {
	OldStyle     bool
	Identifiers  []Identifier // meaningful iff OldStyle
	Declarations []ParameterDeclaration
	Variadic     bool
}

// Declarator is the recursive declarator-chain structure described in §3:
// a variable-declarator at the core, wrapped by zero or more pointer,
// array, or function layers. Exactly the fields matching Kind are
// meaningful.
type Declarator struct {
	Kind DeclaratorKind

	// VariableDeclaratorKind
	Name       Identifier
	HasName    bool
	AsmName    string
	HasAsmName bool
	Attributes []Attribute

	// PointerDeclaratorKind / ArrayDeclaratorKind share Inner + Qualifiers
	Inner      *Declarator
	Qualifiers []TypeQualifier

	// ArrayDeclaratorKind
	Size    Expr // nil if unsized ("[]")
	HasSize bool

	// FunctionDeclaratorKind
	Params *Parameters

	Attrs
}

func (d *Declarator) GetAttributes() []Attribute {
	if d.Kind == VariableDeclaratorKind {
		return d.Attributes
	}
	return nil
}

// Innermost walks the declarator chain to the core variable-declarator,
// per §3's invariant that every chain bottoms out at exactly one.
func (d *Declarator) Innermost() *Declarator {
	cur := d
	for cur.Kind != VariableDeclaratorKind {
		cur = cur.Inner
	}
	return cur
}

// DirectWrapper returns the declarator layer that directly wraps d's
// innermost variable-declarator, e.g. for `*f(void)` (a function returning
// a pointer) this is the function layer, not the outer pointer layer. This
// is the layer that decides whether a declarator denotes a function at all:
// `f(void)` is a function declarator this way, but `(*fp)(void)` is not —
// fp's direct wrapper is a pointer layer, even though a function layer
// appears further out in the chain. Returns d itself when d already is the
// variable-declarator.
func (d *Declarator) DirectWrapper() *Declarator {
	cur := d
	for cur.Inner != nil && cur.Inner.Kind != VariableDeclaratorKind {
		cur = cur.Inner
	}
	return cur
}

// SpliceAtInnermost rebuilds d with its innermost variable-declarator
// replaced by wrap(innermost). Every layer above the innermost one is
// copied; d itself is not modified.
func SpliceAtInnermost(d *Declarator, wrap func(*Declarator) *Declarator) *Declarator {
	if d.Kind == VariableDeclaratorKind {
		return wrap(d)
	}
	next := *d
	next.Inner = SpliceAtInnermost(d.Inner, wrap)
	return &next
}

// Designator is one element of a designated-initializer's designator list.
type DesignatorKind int

const (
	IndexDesignator DesignatorKind = iota
	MemberDesignator
	RangeDesignator // GNU `[lo ... hi]`
)

type Designator struct {
	Kind DesignatorKind

	Index      Expr       // IndexDesignator
	Member     Identifier // MemberDesignator
	RangeLow   Expr       // RangeDesignator
	RangeHigh  Expr       // RangeDesignator
	Attrs
}

// Initializer is either a single expression or a brace-enclosed list of
// (designator-list, initializer) entries.
type InitializerEntry struct {
	Designators []Designator
	Value       *Initializer
}

type Initializer struct {
	Expr     Expr // non-nil iff this is a scalar initializer
	Entries  []InitializerEntry // the brace-enclosed list's entries; nil when Expr is set, and also for an empty `{}`
	Attrs
}

// InitDeclarator is one comma-separated entry of a Declaration's
// declarator list: the declarator itself, an optional initializer, and
// (struct-field-only in practice, but modeled uniformly per §3) an
// optional bit-field width.
type InitDeclarator struct {
	Declarator  *Declarator
	Initializer *Initializer
	BitWidth    Expr
}

// Declaration is a full declaration: a specifier list plus zero or more
// init-declarators, e.g. `typedef int T, *PT;`.
type Declaration struct {
	Specifiers  []DeclSpec
	Declarators []InitDeclarator
	Attrs
}
