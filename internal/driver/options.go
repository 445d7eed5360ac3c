package driver

// Options общие для Tokenize, Parse и ParseFiles.
type Options struct {
	MaxDiagnostics int
	Jobs           int          // 0 = GOMAXPROCS
	Cache          *TokenCache  // nil: без кэша
	Timings        bool         // добавить OBS6001 с фазами в Bag
	Progress       ProgressSink // nil: без событий
}
