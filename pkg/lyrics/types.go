package lyrics

// Lyric document formats served by the upstream lyric-data service.
const (
	// FormatLRC is the synchronized LRC format with [mm:ss.xx] cues.
	FormatLRC = "lrc"

	// FormatSRT is the SubRip subtitle format.
	FormatSRT = "srt"

	// FormatTXT is unsynchronized plain text, probed only when the caller
	// opts into fallback.
	FormatTXT = "txt"
)

// searchFormats is the probe order for search. FormatTXT is appended only
// when the fallback option is truthy.
var searchFormats = []string{FormatLRC, FormatSRT}

// knownFormats is every format the metadata lookup probes, in the order
// availableFormats is reported.
var knownFormats = []string{FormatLRC, FormatSRT, FormatTXT}

// SearchOptions carries the optional search parameters. Both values are the
// raw query-string strings; no coercion happens before the provider
// evaluates them.
type SearchOptions struct {
	// FixedVersion pins the upstream document revision (?v= query).
	FixedVersion string

	// Fallback enables the plain-text format probe when truthy
	// (1, true, yes, on; case-insensitive).
	Fallback string
}

// Result is the search outcome. When Found is false, StatusCode (default
// 404) and Error drive the HTTP response; when Found is true the full
// payload is returned to the client unchanged.
type Result struct {
	Found       bool   `json:"found"`
	ID          string `json:"id,omitempty"`
	Format      string `json:"format,omitempty"`
	Source      string `json:"source,omitempty"`
	Lyrics      string `json:"lyrics,omitempty"`
	Translation string `json:"translation,omitempty"`
	Romaji      string `json:"romaji,omitempty"`
	Language    string `json:"language,omitempty"`
	Lines       int    `json:"lines,omitempty"`
	DurationMS  int64  `json:"durationMs,omitempty"`
	StatusCode  int    `json:"statusCode,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Metadata is the metadata lookup outcome, with the same found/not-found
// duality as Result.
type Metadata struct {
	Found            bool     `json:"found"`
	ID               string   `json:"id,omitempty"`
	AvailableFormats []string `json:"availableFormats,omitempty"`
	StatusCode       int      `json:"statusCode,omitempty"`
	Error            string   `json:"error,omitempty"`
}
