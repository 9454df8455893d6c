package uargs

import "fmt"

type shapeKind int

const (
	shapeRequired shapeKind = iota
	shapeOptional
	shapeMany0
	shapeMany1
)

// Shape is one slot of a positional signature. Construct with Required,
// Optional, Many0 or Many1 and combine with NewSignature.
type Shape struct {
	kind     shapeKind
	name     string
	inner    []Shape
	compiled *Signature // inner sequence of an Optional, set during validation
}

// Required declares a slot that takes exactly one operand.
func Required(name string) Shape {
	return Shape{kind: shapeRequired, name: name}
}

// Optional declares a group that is either absent or consumes the whole
// remainder, distributing it across its inner sequence.
func Optional(inner ...Shape) Shape {
	return Shape{kind: shapeOptional, inner: inner}
}

// Many0 declares a slot taking zero or more operands.
func Many0(name string) Shape {
	return Shape{kind: shapeMany0, name: name}
}

// Many1 declares a slot taking one or more operands.
func Many1(name string) Shape {
	return Shape{kind: shapeMany1, name: name}
}

// Signature is a validated sequence of positional shapes: a run of leading
// fixed slots, at most one optional or unbounded shape, and at most one
// trailing fixed slot anchored to the true end of the operand list. Illegal
// compositions are rejected by NewSignature, never discovered during a parse.
type Signature struct {
	shapes   []Shape
	front    []Shape
	variadic *Shape
	back     *Shape
}

// NewSignature validates shapes into a Signature. Slot names must be unique
// across the whole sequence, including nested Optional groups, because unpack
// results are keyed by name.
func NewSignature(shapes ...Shape) (*Signature, error) {
	sig, err := newSignature(shapes)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	if err := collectNames(shapes, seen); err != nil {
		return nil, err
	}
	return sig, nil
}

// newSignature checks the sequence structure without the name checks, so
// nested Optional groups reuse it.
func newSignature(shapes []Shape) (*Signature, error) {
	sig := &Signature{shapes: shapes}
	for _, s := range shapes {
		switch s.kind {
		case shapeRequired:
			switch {
			case sig.back != nil:
				return nil, fmt.Errorf("positional shape %q: only one fixed shape may follow the variadic shape", s.name)
			case sig.variadic != nil:
				back := s
				sig.back = &back
			default:
				sig.front = append(sig.front, s)
			}
		case shapeOptional, shapeMany0, shapeMany1:
			if sig.variadic != nil || sig.back != nil {
				return nil, fmt.Errorf("only one optional or unbounded shape is allowed per sequence")
			}
			variadic := s
			if s.kind == shapeOptional {
				if len(s.inner) == 0 {
					return nil, fmt.Errorf("optional shape must contain at least one inner shape")
				}
				inner, err := newSignature(s.inner)
				if err != nil {
					return nil, err
				}
				variadic.compiled = inner
			}
			sig.variadic = &variadic
		}
	}
	return sig, nil
}

func collectNames(shapes []Shape, seen map[string]bool) error {
	for _, s := range shapes {
		if s.kind == shapeOptional {
			if err := collectNames(s.inner, seen); err != nil {
				return err
			}
			continue
		}
		if s.name == "" {
			return fmt.Errorf("positional slot name cannot be empty")
		}
		if seen[s.name] {
			return fmt.Errorf("duplicate positional slot name %q", s.name)
		}
		seen[s.name] = true
	}
	return nil
}

// Unpacked holds the operands distributed over a signature, keyed by slot
// name.
type Unpacked struct {
	values map[string][]string
}

// Get returns the first value of a slot, or "" if the slot got nothing.
func (u *Unpacked) Get(name string) string {
	v, _ := u.Lookup(name)
	return v
}

// Lookup returns the first value of a slot and whether the slot got anything.
func (u *Unpacked) Lookup(name string) (string, bool) {
	vs := u.values[name]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// All returns every value of a slot in operand order.
func (u *Unpacked) All(name string) []string {
	return u.values[name]
}

// Unpack distributes operands over the signature. It is a pure function:
// for a fixed signature and operand list the assignment is always identical,
// with no search and no backtracking. The first unsatisfied required slot
// fails MissingPositionalsError naming it and every still-unsatisfied slot
// after it; a surplus operand fails UnexpectedArgumentError naming the first
// one.
func (s *Signature) Unpack(operands []string) (*Unpacked, error) {
	u := &Unpacked{values: make(map[string][]string)}
	if err := s.unpackInto(u, operands); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Signature) unpackInto(u *Unpacked, operands []string) error {
	for i, shape := range s.front {
		if len(operands) == 0 {
			return &MissingPositionalsError{Names: s.unsatisfiedFrom(i)}
		}
		u.values[shape.name] = append(u.values[shape.name], operands[0])
		operands = operands[1:]
	}

	if s.back != nil {
		if len(operands) == 0 {
			return &MissingPositionalsError{Names: []string{s.back.name}}
		}
		last := operands[len(operands)-1]
		operands = operands[:len(operands)-1]
		u.values[s.back.name] = append(u.values[s.back.name], last)
	}

	if s.variadic == nil {
		if len(operands) > 0 {
			return &UnexpectedArgumentError{Value: operands[0]}
		}
		return nil
	}

	switch s.variadic.kind {
	case shapeMany1:
		if len(operands) == 0 {
			return &MissingPositionalsError{Names: []string{s.variadic.name}}
		}
		fallthrough
	case shapeMany0:
		u.values[s.variadic.name] = append(u.values[s.variadic.name], operands...)
		return nil
	default: // shapeOptional: absent, or consumes the whole remainder
		if len(operands) == 0 {
			return nil
		}
		return s.variadic.compiled.unpackInto(u, operands)
	}
}

// unsatisfiedFrom lists, in signature order, every slot from front index i on
// that still needs at least one operand.
func (s *Signature) unsatisfiedFrom(i int) []string {
	var names []string
	for _, shape := range s.front[i:] {
		names = append(names, shape.name)
	}
	if s.variadic != nil && s.variadic.kind == shapeMany1 {
		names = append(names, s.variadic.name)
	}
	if s.back != nil {
		names = append(names, s.back.name)
	}
	return names
}

// SlotInfo describes one named slot for renderers and completion.
type SlotInfo struct {
	Name    string
	Repeats bool // Many0 or Many1: the slot accepts several operands
	Needed  bool // the parse fails when the slot gets nothing
}

// Slots enumerates the signature's named slots in declaration order. Slots
// nested in an Optional group are never Needed.
func (s *Signature) Slots() []SlotInfo {
	return appendSlots(nil, s.shapes, true)
}

func appendSlots(out []SlotInfo, shapes []Shape, needed bool) []SlotInfo {
	for _, sh := range shapes {
		switch sh.kind {
		case shapeRequired:
			out = append(out, SlotInfo{Name: sh.name, Needed: needed})
		case shapeMany0:
			out = append(out, SlotInfo{Name: sh.name, Repeats: true})
		case shapeMany1:
			out = append(out, SlotInfo{Name: sh.name, Repeats: true, Needed: needed})
		case shapeOptional:
			out = appendSlots(out, sh.inner, false)
		}
	}
	return out
}

// synopsis renders the signature for a usage line, e.g.
// "NEWROOT [COMMAND [ARG...]]".
func (s *Signature) synopsis() string {
	return shapesSynopsis(s.shapes)
}

func shapesSynopsis(shapes []Shape) string {
	out := ""
	for _, sh := range shapes {
		part := ""
		switch sh.kind {
		case shapeRequired:
			part = sh.name
		case shapeMany0:
			part = "[" + sh.name + "...]"
		case shapeMany1:
			part = sh.name + "..."
		case shapeOptional:
			part = "[" + shapesSynopsis(sh.inner) + "]"
		}
		if out != "" && part != "" {
			out += " "
		}
		out += part
	}
	return out
}
