package lyrics

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// document is the parse outcome used to enrich a Result. Only the fields
// the search envelope surfaces are extracted.
type document struct {
	language   string
	lines      int
	durationMS int64
}

var (
	// [mm:ss], [mm:ss.xx], [mm:ss:xx]; fraction is tenths, hundredths,
	// or milliseconds depending on digit count
	lrcCueRe = regexp.MustCompile(`\[(\d{1,3}):(\d{2})(?:[.:](\d{1,3}))?\]`)

	// header tags like [ti:...], [ar:...], [la:...]; keys are alphabetic,
	// so cue timestamps never match
	lrcTagRe = regexp.MustCompile(`^\[([a-zA-Z]+):(.+)\]\s*$`)

	srtTimeRe = regexp.MustCompile(`(\d{1,2}):(\d{2}):(\d{2})[,.](\d{1,3})\s*-->\s*(\d{1,2}):(\d{2}):(\d{2})[,.](\d{1,3})`)
)

// parseDocument extracts cue count, duration, and language from a lyric
// document body in the given format.
func parseDocument(format, body string) document {
	switch format {
	case FormatLRC:
		return parseLRC(body)
	case FormatSRT:
		return parseSRT(body)
	default:
		return parsePlain(body)
	}
}

// isSyncedFormat reports whether the format carries timing cues. A synced
// document that parses to zero cues is treated as absent so the format
// probe can continue.
func isSyncedFormat(format string) bool {
	return format == FormatLRC || format == FormatSRT
}

func parseLRC(body string) document {
	var doc document

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := lrcTagRe.FindStringSubmatch(line); m != nil {
			if strings.EqualFold(m[1], "la") {
				doc.language = canonicalLanguage(m[2])
			}
			// remaining header tags (ti, ar, al, by, offset) carry
			// nothing the envelope surfaces
			continue
		}

		stamps := lrcCueRe.FindAllStringSubmatch(line, -1)
		if len(stamps) == 0 {
			continue
		}

		// repeated timestamps on one line are distinct cues
		doc.lines += len(stamps)
		for _, s := range stamps {
			if ms := lrcCueMillis(s); ms > doc.durationMS {
				doc.durationMS = ms
			}
		}
	}

	return doc
}

func lrcCueMillis(m []string) int64 {
	mins, _ := strconv.Atoi(m[1])
	secs, _ := strconv.Atoi(m[2])

	var ms int
	if m[3] != "" {
		frac, _ := strconv.Atoi(m[3])
		switch len(m[3]) {
		case 1:
			ms = frac * 100
		case 2:
			ms = frac * 10
		default:
			ms = frac
		}
	}

	return int64(mins)*60_000 + int64(secs)*1_000 + int64(ms)
}

func parseSRT(body string) document {
	var doc document

	for _, m := range srtTimeRe.FindAllStringSubmatch(body, -1) {
		doc.lines++
		if end := srtMillis(m[5], m[6], m[7], m[8]); end > doc.durationMS {
			doc.durationMS = end
		}
	}

	return doc
}

func srtMillis(hh, mm, ss, frac string) int64 {
	hours, _ := strconv.Atoi(hh)
	mins, _ := strconv.Atoi(mm)
	secs, _ := strconv.Atoi(ss)

	ms, _ := strconv.Atoi(frac)
	switch len(frac) {
	case 1:
		ms *= 100
	case 2:
		ms *= 10
	}

	return int64(hours)*3_600_000 + int64(mins)*60_000 + int64(secs)*1_000 + int64(ms)
}

func parsePlain(body string) document {
	var doc document
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) != "" {
			doc.lines++
		}
	}
	return doc
}

// canonicalLanguage normalizes a raw [la:] tag value to a canonical BCP-47
// tag. Unparseable values yield the empty string rather than an error; a
// bad language tag should never fail an otherwise good document.
func canonicalLanguage(raw string) string {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "_", "-"))
	if raw == "" {
		return ""
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return ""
	}
	return tag.String()
}
