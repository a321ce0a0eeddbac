// Package scope implements the typedef-name environment described in the
// parser monad: a stack of scopes the grammar actions push and pop as block
// structure is entered and left, consulted by the lexer on every identifier
// token to decide whether it names a typedef or an ordinary identifier.
package scope

import "ccparse/util"

// binding records whether an identifier is a typedef name (true) or has been
// explicitly shadowed as an ordinary identifier (false) in one frame.
type binding bool

const (
	isTypedef    binding = true
	isNotTypedef binding = false
)

type frame map[string]binding

// Env is the scoped typedef-name environment threaded through the parse.
// The zero value is not usable; construct with New.
type Env struct {
	frames *util.Stack[frame]
}

// New returns an environment seeded with a single global frame containing
// builtinTypedefNames (e.g. "__builtin_va_list") bound as typedef names.
func New(builtinTypedefNames []string) *Env {
	e := &Env{frames: util.NewStack[frame]()}
	e.frames.Push(make(frame))
	for _, name := range builtinTypedefNames {
		e.AddTypedef(name)
	}
	return e
}

// EnterScope pushes a fresh, empty frame.
func (e *Env) EnterScope() {
	e.frames.Push(make(frame))
}

// LeaveScope pops and discards the innermost frame. It is a programming
// error to call LeaveScope without a matching prior EnterScope; callers in
// this package's sole client (the parser) always pair the two, so this
// asserts rather than returning an error.
func (e *Env) LeaveScope() {
	if e.frames.Size() <= 1 {
		panic("scope: LeaveScope called without a matching EnterScope")
	}
	e.frames.Pop()
}

// Depth reports the number of currently open frames, including the global
// one. Used by tests to verify scope-discipline (enter/leave balance).
func (e *Env) Depth() int {
	return e.frames.Size()
}

// AddTypedef binds ident as a typedef name in the innermost frame.
func (e *Env) AddTypedef(ident string) {
	e.frames.Peek()[ident] = isTypedef
}

// ShadowTypedef marks ident as explicitly not a typedef name in the
// innermost frame, hiding any outer typedef binding until that frame exits.
func (e *Env) ShadowTypedef(ident string) {
	e.frames.Peek()[ident] = isNotTypedef
}

// IsTypedef reports whether ident currently resolves to a typedef binding,
// walking from the innermost frame outward and stopping at the first frame
// that mentions ident at all (a shadow marker stops the walk just as a
// typedef binding does).
func (e *Env) IsTypedef(ident string) bool {
	for i := 0; i < e.frames.Size(); i++ {
		if b, ok := e.frames.PeekN(i)[ident]; ok {
			return bool(b)
		}
	}
	return false
}
