package gomorse

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UpperCaseInputTextPlugin applies full case mapping, so "ß" becomes "SS".
type UpperCaseInputTextPlugin struct{}

func NewUpperCaseInputTextPlugin() *UpperCaseInputTextPlugin {
	return &UpperCaseInputTextPlugin{}
}

func (p *UpperCaseInputTextPlugin) SetUp() error {
	return nil
}

func (p *UpperCaseInputTextPlugin) Rewrite(builder *InputTextBuilder) {
	caser := cases.Upper(language.Und)
	text := builder.GetText()

	offset := 0
	for i, original := range text {
		replace := []rune(caser.String(string(original)))
		if len(replace) == 1 && replace[0] == original {
			continue
		}
		builder.Replace(i+offset, i+1+offset, replace)
		offset += len(replace) - 1
	}
}
