package decorate

// Slots are struct-member-declarable callables bound to an owning instance.
// A slot keeps a non-owning pointer to its owner and forwards it as the
// first argument of the stored callable, so an assigned decorator chain
// built over owner-first callables (method expressions) sees the instance
// it belongs to.
//
// The owner pointer must stay valid for the slot's lifetime; the slot never
// outlives nor owns the instance. Copying a struct that contains a slot
// copies the owner pointer verbatim, which leaves the copy's slot pointing
// at the original instance. The copy must call Rebind with its own address
// before use; there is deliberately no self-healing.
//
// Assignment is type-checked at compile time against the slot's declared
// signature. Calling a slot before a callable was assigned panics, the
// same way calling a nil func would.

// Slot0 is a callable slot taking no arguments beyond the owner.
type Slot0[O, R any] struct {
	owner *O
	fn    func(*O) R
}

// NewSlot0 binds a fresh, unassigned slot to owner.
func NewSlot0[O, R any](owner *O) Slot0[O, R] {
	return Slot0[O, R]{owner: owner}
}

// Assign replaces the stored callable.
func (s *Slot0[O, R]) Assign(fn func(*O) R) {
	s.fn = fn
}

// Rebind re-points the slot at a new owner, repairing the back-reference
// after the owning struct was copied.
func (s *Slot0[O, R]) Rebind(owner *O) {
	s.owner = owner
}

// IsAssigned reports whether a callable has been assigned.
func (s Slot0[O, R]) IsAssigned() bool {
	return s.fn != nil
}

// Call invokes the stored callable with the bound owner.
func (s Slot0[O, R]) Call() R {
	s.mustBeAssigned()
	return s.fn(s.owner)
}

func (s Slot0[O, R]) mustBeAssigned() {
	if s.fn == nil {
		panic("decorate: slot invoked before a callable was assigned")
	}
}

// Slot1 is a callable slot taking one argument.
type Slot1[O, A1, R any] struct {
	owner *O
	fn    func(*O, A1) R
}

// NewSlot1 binds a fresh, unassigned slot to owner.
func NewSlot1[O, A1, R any](owner *O) Slot1[O, A1, R] {
	return Slot1[O, A1, R]{owner: owner}
}

// Assign replaces the stored callable.
func (s *Slot1[O, A1, R]) Assign(fn func(*O, A1) R) {
	s.fn = fn
}

// Rebind re-points the slot at a new owner.
func (s *Slot1[O, A1, R]) Rebind(owner *O) {
	s.owner = owner
}

// IsAssigned reports whether a callable has been assigned.
func (s Slot1[O, A1, R]) IsAssigned() bool {
	return s.fn != nil
}

// Call invokes the stored callable with the bound owner and a1.
func (s Slot1[O, A1, R]) Call(a1 A1) R {
	s.mustBeAssigned()
	return s.fn(s.owner, a1)
}

func (s Slot1[O, A1, R]) mustBeAssigned() {
	if s.fn == nil {
		panic("decorate: slot invoked before a callable was assigned")
	}
}

// Slot2 is a callable slot taking two arguments.
type Slot2[O, A1, A2, R any] struct {
	owner *O
	fn    func(*O, A1, A2) R
}

// NewSlot2 binds a fresh, unassigned slot to owner.
func NewSlot2[O, A1, A2, R any](owner *O) Slot2[O, A1, A2, R] {
	return Slot2[O, A1, A2, R]{owner: owner}
}

// Assign replaces the stored callable.
func (s *Slot2[O, A1, A2, R]) Assign(fn func(*O, A1, A2) R) {
	s.fn = fn
}

// Rebind re-points the slot at a new owner.
func (s *Slot2[O, A1, A2, R]) Rebind(owner *O) {
	s.owner = owner
}

// IsAssigned reports whether a callable has been assigned.
func (s Slot2[O, A1, A2, R]) IsAssigned() bool {
	return s.fn != nil
}

// Call invokes the stored callable with the bound owner, a1 and a2.
func (s Slot2[O, A1, A2, R]) Call(a1 A1, a2 A2) R {
	s.mustBeAssigned()
	return s.fn(s.owner, a1, a2)
}

func (s Slot2[O, A1, A2, R]) mustBeAssigned() {
	if s.fn == nil {
		panic("decorate: slot invoked before a callable was assigned")
	}
}

// Slot3 is a callable slot taking three arguments.
type Slot3[O, A1, A2, A3, R any] struct {
	owner *O
	fn    func(*O, A1, A2, A3) R
}

// NewSlot3 binds a fresh, unassigned slot to owner.
func NewSlot3[O, A1, A2, A3, R any](owner *O) Slot3[O, A1, A2, A3, R] {
	return Slot3[O, A1, A2, A3, R]{owner: owner}
}

// Assign replaces the stored callable.
func (s *Slot3[O, A1, A2, A3, R]) Assign(fn func(*O, A1, A2, A3) R) {
	s.fn = fn
}

// Rebind re-points the slot at a new owner.
func (s *Slot3[O, A1, A2, A3, R]) Rebind(owner *O) {
	s.owner = owner
}

// IsAssigned reports whether a callable has been assigned.
func (s Slot3[O, A1, A2, A3, R]) IsAssigned() bool {
	return s.fn != nil
}

// Call invokes the stored callable with the bound owner and all arguments.
func (s Slot3[O, A1, A2, A3, R]) Call(a1 A1, a2 A2, a3 A3) R {
	s.mustBeAssigned()
	return s.fn(s.owner, a1, a2, a3)
}

func (s Slot3[O, A1, A2, A3, R]) mustBeAssigned() {
	if s.fn == nil {
		panic("decorate: slot invoked before a callable was assigned")
	}
}
