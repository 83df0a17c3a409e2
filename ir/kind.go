package ir

import "fmt"

// Kind is the type tag of a Value.
type Kind int

const (
	BoolKind Kind = iota
	IntKind
	LongKind
	FloatKind
	DoubleKind
	StringKind
	ListKind
	BranchListKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		BoolKind:       "Bool",
		IntKind:        "Int",
		LongKind:       "Long",
		FloatKind:      "Float",
		DoubleKind:     "Double",
		StringKind:     "String",
		ListKind:       "List",
		BranchListKind: "BranchList",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Bool":       BoolKind,
		"Int":        IntKind,
		"Long":       LongKind,
		"Float":      FloatKind,
		"Double":     DoubleKind,
		"String":     StringKind,
		"List":       ListKind,
		"BranchList": BranchListKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		BoolKind,
		IntKind,
		LongKind,
		FloatKind,
		DoubleKind,
		StringKind,
		ListKind,
		BranchListKind,
	}
}

// IsInteger reports whether k is one of the two integer kinds.
func (k Kind) IsInteger() bool {
	return k == IntKind || k == LongKind
}

// IsFloat reports whether k is one of the two floating point kinds.
func (k Kind) IsFloat() bool {
	return k == FloatKind || k == DoubleKind
}

// IsScalar reports whether k is a single value rather than a collection.
func (k Kind) IsScalar() bool {
	switch k {
	case ListKind, BranchListKind:
		return false
	default:
		return true
	}
}

// CommentKind is the attachment point of a Comment.
type CommentKind int

const (
	// CommentLine is a standalone comment occupying its own line.
	CommentLine CommentKind = iota
	// CommentInline trails a value on the same line.
	CommentInline
	// CommentStart trails a branch opening delimiter.
	CommentStart
	// CommentEnd trails a branch closing delimiter.
	CommentEnd
)

func (k CommentKind) String() string {
	s, ok := map[CommentKind]string{
		CommentLine:   "Line",
		CommentInline: "Inline",
		CommentStart:  "Start",
		CommentEnd:    "End",
	}[k]
	if ok {
		return s
	}
	return "<unknown comment kind>"
}

// Style is the comment prefix glyph.
type Style int

const (
	SlashStyle Style = iota
	HashStyle
)

func (s Style) Prefix() string {
	if s == HashStyle {
		return "#"
	}
	return "//"
}

func (s Style) String() string {
	if s == HashStyle {
		return "hash"
	}
	return "slash"
}

// EntryKind is the variant tag of an order Entry.
type EntryKind int

const (
	ValueEntry EntryKind = iota
	BranchEntry
	CommentEntry
	EmptyLineEntry
)

func (k EntryKind) String() string {
	s, ok := map[EntryKind]string{
		ValueEntry:     "Value",
		BranchEntry:    "Branch",
		CommentEntry:   "Comment",
		EmptyLineEntry: "EmptyLine",
	}[k]
	if ok {
		return s
	}
	return "<unknown entry kind>"
}
