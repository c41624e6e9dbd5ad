package interfaces

// Text is an optional string carried by a DocSpec field. It distinguishes a
// field that was never supplied from one explicitly set to the empty string:
// absent fields suppress their documentation section entirely, while an
// explicit empty value still renders the section with empty content.
type Text struct {
	Value string
	Set   bool
}

// NewText returns a Text marked as explicitly set.
func NewText(value string) Text {
	return Text{Value: value, Set: true}
}

// IsSet reports whether the field was supplied in the directive arguments.
func (t Text) IsSet() bool { return t.Set }

// String returns the raw value, empty when the field is absent.
func (t Text) String() string { return t.Value }

// Param documents a single function parameter. Names are kept in the order
// they were written and are not deduplicated.
type Param struct {
	Name        string
	Description string
}

// DocSpec is the structured, immutable result of interpreting a document
// directive's arguments. Consumers (assembler, renderer) only ever read it;
// nothing persists across functions or runs.
type DocSpec struct {
	Summary         Text
	Returns         Text
	Params          []Param
	Deprecated      Text
	DeprecatedSince Text
	Since           Text
	Example         Text
	Panics          Text
	Safety          Text
	SeeAlso         Text
	Invariants      Text
	Note            Text

	Unimplemented       bool
	UnimplementedReason Text
}

// IsZero reports whether no field was supplied at all. A zero DocSpec
// assembles to an empty documentation block.
func (s DocSpec) IsZero() bool {
	return !s.Summary.Set &&
		!s.Returns.Set &&
		len(s.Params) == 0 &&
		!s.Deprecated.Set &&
		!s.DeprecatedSince.Set &&
		!s.Since.Set &&
		!s.Example.Set &&
		!s.Panics.Set &&
		!s.Safety.Set &&
		!s.SeeAlso.Set &&
		!s.Invariants.Set &&
		!s.Note.Set &&
		!s.Unimplemented &&
		!s.UnimplementedReason.Set
}
