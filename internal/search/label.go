package search

import (
	"strings"
	"unicode"
)

// Synonyms maps a normalized label to the spellings that mean the same
// skill.
var Synonyms = map[string][]string{
	"go":          {"golang"},
	"javascript":  {"js", "ecmascript"},
	"typescript":  {"ts"},
	"postgresql":  {"postgres", "psql"},
	"kubernetes":  {"k8s", "kube"},
	"aws":         {"amazon web services"},
	"gcp":         {"google cloud", "google cloud platform"},
	"c sharp":     {"c#", "csharp"},
	"c plus plus": {"c++", "cpp"},
}

var canonical = func() map[string]string {
	out := make(map[string]string, len(Synonyms)*2)
	for k, syns := range Synonyms {
		out[k] = k
		out[strings.ReplaceAll(k, " ", "")] = k
		for _, s := range syns {
			out[s] = k
			out[NormalizeLabel(s)] = k
		}
	}
	return out
}()

// NormalizeLabel lowercases s, collapses whitespace and drops punctuation
// other than '#' and '+'.
func NormalizeLabel(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)

	b := strings.Builder{}
	b.Grow(len(s))
	lastWasSpace := false

	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '#' || r == '+':
			b.WriteRune(r)
			lastWasSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// CanonicalLabel returns the key two labels share when they name the same
// skill, e.g. "Golang" and "go".
func CanonicalLabel(s string) string {
	n := NormalizeLabel(s)
	if n == "" {
		return ""
	}
	if k, ok := canonical[n]; ok {
		return k
	}
	if k, ok := canonical[strings.ReplaceAll(n, " ", "")]; ok {
		return k
	}
	return n
}

func GetSynonyms(label string) []string {
	k := CanonicalLabel(label)
	if k == "" {
		return []string{}
	}
	v := Synonyms[k]
	out := make([]string, 0, len(v))
	out = append(out, v...)
	return out
}
