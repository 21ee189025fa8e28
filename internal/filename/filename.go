// Package filename derives default output names from URLs.
package filename

import "strings"

// DefaultName is used when a URL has no final path segment.
const DefaultName = "index.html"

// FromURL returns the name curl should write the URL's content to.
//
// The scheme, query string and fragment are ignored and the last path segment
// is used. When decode is true the segment is passed through Decode.
//
// Examples:
//
//	FromURL("https://example.com/path/file.txt?x=1", true) // "file.txt"
//	FromURL("https://example.com/", true)                  // "index.html"
func FromURL(url string, decode bool) string {
	rest := url
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+len("://"):]
	}
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}

	name := ""
	if i := strings.LastIndexByte(rest, '/'); i >= 0 {
		name = rest[i+1:]
	}
	if name == "" {
		return DefaultName
	}

	if decode {
		return Decode(name)
	}
	return name
}

// Decode percent-decodes s, leaving escapes that are unsafe in a filename
// untouched.
//
// %2F, %5C and anything below 0x20 stay encoded. A "%" followed by two
// characters that are not hex digits is copied together with them, so they
// never start another escape; a "%" near the end copies the rest verbatim.
//
// Decoded values are written as raw bytes. Multi-byte UTF-8 escapes such as
// %C3%A9 come back as the original character, but a lone high byte (%E9)
// leaves an invalid UTF-8 byte in the result.
func Decode(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+2 >= len(s) {
			b.WriteString(s[i:])
			break
		}

		hi, okHi := unhex(s[i+1])
		lo, okLo := unhex(s[i+2])
		if !okHi || !okLo {
			b.WriteString(s[i : i+3])
			i += 2
			continue
		}

		v := hi<<4 | lo
		if v < 0x20 || v == '/' || v == '\\' {
			b.WriteString(s[i : i+3])
		} else {
			b.WriteByte(v)
		}
		i += 2
	}

	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
