package source

import "fmt"

// FileID uniquely identifies a source file within a FileSet. IDs start at 0.
type FileID uint32

// FileFlags records how the content was obtained and normalised.
type FileFlags uint8

const (
	FileVirtual        FileFlags = 1 << iota // добавлен через AddVirtual, не с диска
	FileHadBOM                               // UTF-8 BOM снят при загрузке
	FileNormalizedCRLF                       // \r\n заменены на \n
)

// Has reports whether every bit of flag is set.
func (f FileFlags) Has(flag FileFlags) bool { return f&flag == flag }

// File — загруженный файл; Content уже без BOM и с нормализованными переводами строк.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // смещения '\n'
	Hash    [32]byte // SHA-256 Content, ключ кэша токенов
	Flags   FileFlags
}

// LineCol is a 1-based line and 1-based byte column.
type LineCol struct {
	Line uint32
	Col  uint32
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Col) }

// FormatRange renders "line:col-line:col".
func FormatRange(start, end LineCol) string { return start.String() + "-" + end.String() }
