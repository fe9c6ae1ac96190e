package fc

// Kind indicates the active variant of a [Value].
type Kind int

const (
	// KindString is a text value.
	KindString Kind = iota

	// KindNumber is a 64-bit floating point value. No integer/float
	// distinction is preserved.
	KindNumber

	// KindBool is a boolean value.
	KindBool

	// KindNull is the null value; it carries no payload.
	KindNull

	// KindObject is an ordered collection of named fields.
	KindObject

	// KindArray is an ordered collection of values.
	KindArray
)

// String returns a string representation of the value kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindBool:
		return "Bool"
	case KindNull:
		return "Null"
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	default:
		return "Unknown"
	}
}

// Value is one element of the closed value model. Exactly one variant is
// active, selected by Kind; the payload fields of inactive variants are
// zero.
type Value struct {
	Kind   Kind
	Str    string
	Num    float64
	Bool   bool
	Object *Struct
	Array  *ListValue
}

// NewString creates a string [Value].
func NewString(s string) *Value {
	return &Value{Kind: KindString, Str: s}
}

// NewNumber creates a number [Value].
func NewNumber(f float64) *Value {
	return &Value{Kind: KindNumber, Num: f}
}

// NewBool creates a boolean [Value].
func NewBool(b bool) *Value {
	return &Value{Kind: KindBool, Bool: b}
}

// NewNull creates a null [Value].
func NewNull() *Value {
	return &Value{Kind: KindNull}
}

// NewObject creates an object [Value].
func NewObject(s *Struct) *Value {
	return &Value{Kind: KindObject, Object: s}
}

// NewArray creates an array [Value].
func NewArray(l *ListValue) *Value {
	return &Value{Kind: KindArray, Array: l}
}

// Field is one named member of a [Struct].
type Field struct {
	Name  string
	Value *Value
}

// Struct is an ordered sequence of uniquely named fields. Insertion order
// reflects source order. Key uniqueness is enforced by the value builder,
// not by the type itself.
type Struct struct {
	Fields []Field
}

// Len returns the number of fields.
func (s *Struct) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Fields)
}

// Get returns the value of the named field.
// Returns (nil, false) if the field is not present.
func (s *Struct) Get(name string) (*Value, bool) {
	if s == nil {
		return nil, false
	}

	for _, f := range s.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}

	return nil, false
}

// ListValue is an ordered sequence of values, in source order.
type ListValue struct {
	Values []*Value
}

// Len returns the number of elements.
func (l *ListValue) Len() int {
	if l == nil {
		return 0
	}

	return len(l.Values)
}

// ToolCall is one requested invocation of a named external function.
// Name may be empty when the source omitted it. Arguments is nil when the
// call carried no argument list.
type ToolCall struct {
	Name      string
	Arguments *Struct
}

// ToolCalls is the ordered sequence of calls collected from one
// expression, in source order.
type ToolCalls struct {
	Calls []*ToolCall
}

// Len returns the number of collected calls.
func (tc *ToolCalls) Len() int {
	if tc == nil {
		return 0
	}

	return len(tc.Calls)
}
