package gomorse

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/msnoigrs/gomorse/table"
)

// wordSeparator splits morse words. TextToMorse emits three spaces between
// words (join space, separator, join space), which this also accepts.
var wordSeparator = regexp.MustCompile(`  +`)

type MorseConverter struct {
	table            *table.SymbolTable
	inputTextPlugins []InputTextPlugin

	DumpOutput io.Writer
}

func NewMorseConverter(symbols *table.SymbolTable, inputTextPlugins []InputTextPlugin) *MorseConverter {
	return &MorseConverter{
		table:            symbols,
		inputTextPlugins: inputTextPlugins,
	}
}

func (c *MorseConverter) TextToMorse(text string) string {
	inputTextBuilder := NewInputTextBuilder(text)
	for _, plugin := range c.inputTextPlugins {
		plugin.Rewrite(inputTextBuilder)
	}
	input := inputTextBuilder.Build()

	if c.DumpOutput != nil {
		fmt.Fprintln(c.DumpOutput, "=== Input dump")
		fmt.Fprintln(c.DumpOutput, input.GetText())
		fmt.Fprintln(c.DumpOutput, "=== Lookup dump")
	}

	runes := []rune(input.GetText())
	var originalRunes []rune
	if c.DumpOutput != nil {
		originalRunes = []rune(input.OriginalText)
	}
	patterns := make([]string, len(runes))
	for i, r := range runes {
		pattern, ok := c.table.Pattern(r)
		if !ok {
			pattern = table.Unknown
		}
		patterns[i] = pattern
		if c.DumpOutput != nil {
			original := originalRunes[input.GetOriginalIndex(i)]
			fmt.Fprintf(c.DumpOutput, "%q\t", original)
			c.dumpLookup(string(r), pattern, ok)
		}
	}

	if c.DumpOutput != nil {
		fmt.Fprintln(c.DumpOutput, "===")
	}
	return strings.Join(patterns, " ")
}

func (c *MorseConverter) MorseToText(text string) string {
	if c.DumpOutput != nil {
		fmt.Fprintln(c.DumpOutput, "=== Input dump")
		fmt.Fprintln(c.DumpOutput, text)
		fmt.Fprintln(c.DumpOutput, "=== Lookup dump")
	}

	words := wordSeparator.Split(text, -1)
	decoded := make([]string, len(words))
	for i, word := range words {
		var b strings.Builder
		for _, token := range strings.Fields(word) {
			r, ok := c.table.Char(token)
			if ok {
				b.WriteRune(r)
			} else {
				b.WriteString(table.Unknown)
			}
			if c.DumpOutput != nil {
				c.dumpLookup(token, string(r), ok)
			}
		}
		decoded[i] = b.String()
	}

	if c.DumpOutput != nil {
		fmt.Fprintln(c.DumpOutput, "===")
	}
	return strings.Join(decoded, " ")
}

func (c *MorseConverter) dumpLookup(from string, to string, found bool) {
	if found {
		fmt.Fprintf(c.DumpOutput, "%q\t%s\n", from, to)
	} else {
		fmt.Fprintf(c.DumpOutput, "%q\t%s\t(unknown)\n", from, table.Unknown)
	}
}
