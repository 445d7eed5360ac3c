package trace

import "time"

// Kind — тип события.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope — гранулярность события. Меньшее значение — более крупный уровень.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // команда CLI целиком
	ScopePass                    // load, lex, parse
	ScopeFile                    // один файл в ParseFiles
	ScopeNode                    // отдельные узлы и комбинаторы
)

func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeFile:
		return "file"
	case ScopeNode:
		return "node"
	default:
		return "unknown"
	}
}

// Event — одно событие трассы.
type Event struct {
	Time     time.Time
	Seq      uint64 // монотонный номер, выставляет трейсер
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 для корня
	Name     string // "parse", "file:page.ang"
	Detail   string
	Extra    map[string]string
}
