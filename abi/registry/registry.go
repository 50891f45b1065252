// Package registry deduplicates and composes per-signature codec routines
// for one compilation unit.
//
// Code generation asks for encode and decode routines wherever a function,
// event or storage access needs one; many call sites share a shape (for
// example dozens of functions taking (address,u256)). The registry hands
// back exactly one routine handle per distinct canonical type signature and
// remembers the order in which signatures were first requested, so All()
// enumerates routines deterministically and generated output is
// reproducible across identical compilations.
//
// A Registry is owned by a single compilation unit and passed explicitly;
// it is never shared across concurrently compiled units, so it performs no
// locking. Population happens in one sequential pass.
package registry

import (
	"strconv"
	"strings"

	"github.com/WilfredTA/fe/abi"
	"github.com/WilfredTA/fe/format"
	"github.com/WilfredTA/fe/internal/hash"
)

// Registry caches one encode and one decode routine per distinct canonical
// type signature for the lifetime of a compilation unit.
type Registry struct {
	routines []*Routine
	index    map[string]*Routine
	names    map[string]int
}

// DecodeRequest names one decode routine: an ordered type list plus the
// buffer location the generated routine will read from.
type DecodeRequest struct {
	Types    []abi.Type
	Location abi.Location
}

// Routine is a handle to one generated codec routine. Handles returned for
// the same signature are pointer-identical, so code generation can compare
// and reference them directly.
type Routine struct {
	kind  format.RoutineKind
	types []abi.Type
	loc   abi.Location // decode routines only
	name  string
	id    uint64
}

// New creates an empty registry for one compilation unit.
func New() *Registry {
	return &Registry{
		index: make(map[string]*Routine),
		names: make(map[string]int),
	}
}

// BatchEncode returns one encode routine handle per requested type list,
// generating a routine on first request of a signature and reusing the
// cached one afterwards. Results are positionally aligned with the input.
func (g *Registry) BatchEncode(lists [][]abi.Type) []*Routine {
	out := make([]*Routine, 0, len(lists))
	for _, types := range lists {
		out = append(out, g.encodeRoutine(types))
	}

	return out
}

// BatchDecode returns one decode routine handle per request. Requests with
// the same type list but different locations are distinct routines: the
// location fixes the generated routine's bounds policy.
func (g *Registry) BatchDecode(reqs []DecodeRequest) []*Routine {
	out := make([]*Routine, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, g.decodeRoutine(req.Types, req.Location))
	}

	return out
}

// All returns every distinct routine generated so far, in first-requested
// order. The returned slice is a copy; the handles are shared.
func (g *Registry) All() []*Routine {
	out := make([]*Routine, len(g.routines))
	copy(out, g.routines)

	return out
}

// Len returns the number of distinct routines generated so far.
func (g *Registry) Len() int {
	return len(g.routines)
}

func (g *Registry) encodeRoutine(types []abi.Type) *Routine {
	key := "encode:" + abi.Tuple(types...).Signature()
	if r, ok := g.index[key]; ok {
		return r
	}
	r := &Routine{
		kind:  format.RoutineEncode,
		types: copyTypes(types),
		name:  g.uniqueName("abi_encode" + mangleTypes(types)),
		id:    hash.ID(key),
	}
	g.index[key] = r
	g.routines = append(g.routines, r)

	return r
}

func (g *Registry) decodeRoutine(types []abi.Type, loc abi.Location) *Routine {
	key := "decode:" + loc.String() + ":" + abi.Tuple(types...).Signature()
	if r, ok := g.index[key]; ok {
		return r
	}
	r := &Routine{
		kind:  format.RoutineDecode,
		types: copyTypes(types),
		loc:   loc,
		name:  g.uniqueName("abi_decode" + mangleTypes(types) + "_" + loc.String()),
		id:    hash.ID(key),
	}
	g.index[key] = r
	g.routines = append(g.routines, r)

	return r
}

// uniqueName disambiguates generated names that collide across distinct
// signatures (two structs with the same declared name but different
// layouts). The first user keeps the plain name.
func (g *Registry) uniqueName(name string) string {
	n := g.names[name]
	g.names[name]++
	if n == 0 {
		return name
	}

	return name + "_" + strconv.Itoa(n)
}

// Kind reports whether the routine encodes or decodes.
func (r *Routine) Kind() format.RoutineKind { return r.kind }

// Name returns the generated function name for this routine, stable across
// identical compilations.
func (r *Routine) Name() string { return r.name }

// ID returns the stable 64-bit identifier derived from the routine's
// canonical key.
func (r *Routine) ID() uint64 { return r.id }

// Types returns a copy of the ordered type list the routine covers.
func (r *Routine) Types() []abi.Type {
	return copyTypes(r.types)
}

// Location returns the buffer location a decode routine reads from. It is
// zero for encode routines.
func (r *Routine) Location() abi.Location { return r.loc }

// Signature returns the canonical signature of the routine's type list.
func (r *Routine) Signature() string {
	return abi.Tuple(r.types...).Signature()
}

// Encode runs the routine's encode path over an ordered value list.
func (r *Routine) Encode(values []abi.Value) ([]byte, error) {
	return abi.Encode(r.types, values)
}

// Decode runs the routine's decode path over a source buffer, applying the
// bounds policy of the routine's location.
func (r *Routine) Decode(data []byte) ([]abi.Value, error) {
	return abi.Decode(data, r.types, r.loc)
}

func copyTypes(types []abi.Type) []abi.Type {
	ts := make([]abi.Type, len(types))
	copy(ts, types)

	return ts
}

// mangleTypes renders a type list as a generated-function name suffix,
// one "_"-joined component per type.
func mangleTypes(types []abi.Type) string {
	var sb strings.Builder
	for _, t := range types {
		sb.WriteByte('_')
		sb.WriteString(mangle(t))
	}

	return sb.String()
}

func mangle(t abi.Type) string {
	switch t.Kind() {
	case abi.KindUint, abi.KindInt, abi.KindBool, abi.KindAddress:
		return t.Signature()
	case abi.KindString:
		return "string" + strconv.Itoa(t.MaxLen())
	case abi.KindArray:
		return "arr_" + mangle(t.Elem()) + "_" + strconv.Itoa(t.Len())
	case abi.KindStruct:
		return t.Name()
	case abi.KindTuple:
		parts := make([]string, 0, t.NumFields())
		for _, f := range t.Fields() {
			parts = append(parts, mangle(f.Type))
		}

		return "tuple_" + strings.Join(parts, "_")
	default:
		return "invalid"
	}
}
