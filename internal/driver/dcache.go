package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"angle/internal/source"
	"angle/internal/token"
)

// Current schema version - increment when cachedTokens format changes
const tokenCacheSchemaVersion uint16 = 1

// TokenCache хранит результаты лексера на диске, ключ — SHA-256 содержимого файла.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedTrivia struct {
	Kind  uint8  `msgpack:"k"`
	Start uint32 `msgpack:"s"`
	End   uint32 `msgpack:"e"`
	Text  string `msgpack:"t"`
}

type cachedToken struct {
	Kind    uint8          `msgpack:"k"`
	Start   uint32         `msgpack:"s"`
	End     uint32         `msgpack:"e"`
	Text    string         `msgpack:"t"`
	Leading []cachedTrivia `msgpack:"l,omitempty"`
}

type cachedTokens struct {
	Schema uint16        `msgpack:"schema"`
	Tokens []cachedToken `msgpack:"tokens"`
}

// OpenTokenCache открывает кэш в $XDG_CACHE_HOME/<app>/tokens (или ~/.cache).
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewTokenCache(filepath.Join(base, app, "tokens"))
}

// NewTokenCache открывает кэш в произвольном каталоге.
func NewTokenCache(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *TokenCache) pathFor(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".mp")
}

// Store сериализует токены файла. Запись атомарна: temp + rename.
func (c *TokenCache) Store(file *source.File, tokens []token.Token) (err error) {
	if c == nil || file == nil {
		return nil
	}
	payload := cachedTokens{Schema: tokenCacheSchemaVersion, Tokens: make([]cachedToken, len(tokens))}
	for i, tok := range tokens {
		ct := cachedToken{Kind: uint8(tok.Kind), Start: tok.Span.Start, End: tok.Span.End, Text: tok.Text}
		for _, tr := range tok.Leading {
			ct.Leading = append(ct.Leading, cachedTrivia{Kind: uint8(tr.Kind), Start: tr.Span.Start, End: tr.Span.End, Text: tr.Text})
		}
		payload.Tokens[i] = ct
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(file.Hash)
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Load возвращает токены из кэша с File, подставленным из file.
// Повреждённая запись или другая схема считаются промахом.
func (c *TokenCache) Load(file *source.File) ([]token.Token, bool) {
	if c == nil || file == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(file.Hash))
	if err != nil {
		return nil, false
	}
	var payload cachedTokens
	if err := msgpack.Unmarshal(data, &payload); err != nil || payload.Schema != tokenCacheSchemaVersion {
		return nil, false
	}

	tokens := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		tok := token.Token{
			Kind: token.Kind(ct.Kind),
			Span: source.Span{File: file.ID, Start: ct.Start, End: ct.End},
			Text: ct.Text,
		}
		for _, tr := range ct.Leading {
			tok.Leading = append(tok.Leading, token.Trivia{
				Kind: token.TriviaKind(tr.Kind),
				Span: source.Span{File: file.ID, Start: tr.Start, End: tr.End},
				Text: tr.Text,
			})
		}
		tokens[i] = tok
	}
	return tokens, true
}

// DropAll invalidates the cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return os.MkdirAll(c.dir, 0o755)
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
