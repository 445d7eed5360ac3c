package token

// Kind is the tag-only projection of a Token: it names a token category and
// carries no payload.
type Kind uint8

const (
	// Invalid marks bytes no token pattern accepts.
	Invalid Kind = iota
	// EOF marks the end of input; Lexer.Next keeps returning it.
	EOF

	// LAngle is '<'.
	LAngle
	// RAngle is '>'.
	RAngle
	// Equals is '='.
	Equals
	// Slash is '/'.
	Slash
	// Number is [1-9][0-9]*.
	Number
	// Identifier is [^\s"'<>=/]+.
	Identifier
	// Value is a double-quoted string, quotes included: "[^"]*".
	Value

	kindCount
)

type kindInfo struct {
	name     string
	terminal byte // 0 для не-терминалов
}

// kinds is the single declaration of the kind set. Order matters: the lexer
// breaks ties between equally long matches in favour of the earlier entry.
var kinds = [kindCount]kindInfo{
	Invalid:    {name: "Invalid"},
	EOF:        {name: "EOF"},
	LAngle:     {name: "LAngle", terminal: '<'},
	RAngle:     {name: "RAngle", terminal: '>'},
	Equals:     {name: "Equals", terminal: '='},
	Slash:      {name: "Slash", terminal: '/'},
	Number:     {name: "Number"},
	Identifier: {name: "Identifier"},
	Value:      {name: "Value"},
}

// Kinds returns the grammar kinds in declaration order, without the Invalid
// and EOF markers.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-LAngle)
	for k := LAngle; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) String() string {
	if k >= kindCount {
		return "Kind(?)"
	}
	return kinds[k].name
}

// Terminal returns the literal byte of a single-character kind.
func (k Kind) Terminal() (byte, bool) {
	if k >= kindCount || kinds[k].terminal == 0 {
		return 0, false
	}
	return kinds[k].terminal, true
}

// LookupTerminal maps a byte to the terminal kind it spells, if any.
func LookupTerminal(b byte) (Kind, bool) {
	for k := LAngle; k < kindCount; k++ {
		if kinds[k].terminal != 0 && kinds[k].terminal == b {
			return k, true
		}
	}
	return Invalid, false
}

// ParseKind is the inverse of String.
func ParseKind(name string) (Kind, bool) {
	for k := Kind(0); k < kindCount; k++ {
		if kinds[k].name == name {
			return k, true
		}
	}
	return Invalid, false
}

// Matches reports whether t has kind k. Only the tag is compared.
func (k Kind) Matches(t Token) bool {
	return t.Kind == k
}
