package gomorse

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// isCombining reports whether r has a non-zero canonical combining class.
func isCombining(r rune) bool {
	return norm.NFD.PropertiesString(string(r)).CCC() != 0
}

func newAccentStripper() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(isCombining)), norm.NFC)
}

// StripAccents removes diacritical marks, e.g. "Café" -> "Cafe".
func StripAccents(s string) string {
	ret, _, err := transform.String(newAccentStripper(), s)
	if err != nil {
		return s
	}
	return ret
}

// DefaultInputTextPlugin strips accents rune by rune so that every
// replacement keeps its offset into the original text.
type DefaultInputTextPlugin struct{}

func NewDefaultInputTextPlugin() *DefaultInputTextPlugin {
	return &DefaultInputTextPlugin{}
}

func (p *DefaultInputTextPlugin) SetUp() error {
	return nil
}

func (p *DefaultInputTextPlugin) Rewrite(builder *InputTextBuilder) {
	t := newAccentStripper()
	text := builder.GetText()

	offset := 0
	for i, original := range text {
		s, _, err := transform.String(t, string(original))
		if err != nil {
			continue
		}
		replace := []rune(s)
		if len(replace) == 1 && replace[0] == original {
			continue
		}
		builder.Replace(i+offset, i+1+offset, replace)
		offset += len(replace) - 1
	}
}
