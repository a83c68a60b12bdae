package gomorse

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/msnoigrs/gomorse/table"
)

func TestTextToMorse(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"SOS", "... --- ..."},
		{"sos", "... --- ..."},
		{"Café", "-.-. .- ..-. ."},
		{"A#B", ".- ? -..."},
		{"A B", ".-   -..."},
		{" ", " "},
		{"", ""},
		{"?", "..--.."},
		{"1+1=2", ".---- .-.-. .---- -...- ..---"},
		{"के", "? ?"},
		{"กั", "? ?"},
		{"A\U0001D165", ".-"},
	}
	for _, tt := range tests {
		if got := TextToMorse(tt.text); got != tt.want {
			t.Errorf("invalid result for %q. want = %q, got = %q", tt.text, tt.want, got)
		}
	}
}

func TestMorseToText(t *testing.T) {
	tests := []struct {
		morse string
		want  string
	}{
		{"... --- ...", "SOS"},
		{".-   -...", "A B"},
		{".-  -...", "A B"},
		{".-       -...", "A B"},
		{"  ", " "},
		{"", ""},
		{"...---...", "?"},
		{".- ? -...", "A?B"},
		{"..--..", "?"},
	}
	for _, tt := range tests {
		if got := MorseToText(tt.morse); got != tt.want {
			t.Errorf("invalid result for %q. want = %q, got = %q", tt.morse, tt.want, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("HELLO WORLD", func(t *testing.T) {
		got := MorseToText(TextToMorse("HELLO WORLD"))
		if got != "HELLO WORLD" {
			t.Errorf("invalid result. want = HELLO WORLD, got = %s", got)
		}
	})
	t.Run("every symbol", func(t *testing.T) {
		table.Default().Each(func(c rune, pattern string) {
			if c == table.Separator {
				return
			}
			encoded := TextToMorse(string(c))
			if encoded != pattern {
				t.Errorf("invalid encoding for %q. want = %s, got = %s", c, pattern, encoded)
			}
			if got := MorseToText(encoded); got != string(c) {
				t.Errorf("invalid decoding for %q. want = %q, got = %q", pattern, string(c), got)
			}
		})
	})
	t.Run("lower case and accents", func(t *testing.T) {
		for _, s := range []string{"é", "ç", "a", "z", "à la carte"} {
			want := strings.ToUpper(StripAccents(s))
			if got := MorseToText(TextToMorse(s)); got != want {
				t.Errorf("invalid result for %q. want = %s, got = %s", s, want, got)
			}
		}
	})
}

func TestUnknownSymbols(t *testing.T) {
	for _, s := range []string{"#", "*", "%", "\t", "€", "日"} {
		if got := TextToMorse(s); got != "?" {
			t.Errorf("invalid result for %q. want = ?, got = %s", s, got)
		}
	}
	for _, s := range []string{"........", "-----.", ".-.-.-.-", "x"} {
		if got := MorseToText(s); got != "?" {
			t.Errorf("invalid result for %q. want = ?, got = %s", s, got)
		}
	}
}

func TestMorseConverter_DumpOutput(t *testing.T) {
	dict, err := NewDefaultMorseDictionary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	converter := dict.Create()
	var buf bytes.Buffer
	converter.DumpOutput = &buf

	if got := converter.TextToMorse("é#ß"); got != ". ? ... ..." {
		t.Errorf("invalid result. want = %q, got = %q", ". ? ... ...", got)
	}
	dump := buf.String()
	for _, want := range []string{
		"=== Input dump\nE#SS\n",
		"'é'\t\"E\"\t.\n",
		"'#'\t\"#\"\t?\t(unknown)\n",
		"'ß'\t\"S\"\t...\n'ß'\t\"S\"\t...\n",
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump does not contain %q:\n%s", want, dump)
		}
	}

	buf.Reset()
	if got := converter.MorseToText("... x"); got != "S?" {
		t.Errorf("invalid result. want = S?, got = %s", got)
	}
	dump = buf.String()
	for _, want := range []string{"\"...\"\tS\n", "\"x\"\t?\t(unknown)\n"} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump does not contain %q:\n%s", want, dump)
		}
	}
}

type failingPlugin struct{}

func (p *failingPlugin) SetUp() error {
	return errInvalidPlugin
}

func (p *failingPlugin) Rewrite(builder *InputTextBuilder) {}

var errInvalidPlugin = errors.New("not configured")

func TestNewMorseDictionary(t *testing.T) {
	_, err := NewMorseDictionary(nil, []InputTextPlugin{&failingPlugin{}})
	if err == nil {
		t.Errorf("expected an error")
	}

	symbols, err := table.NewSymbolTable([]table.Entry{{Char: ' ', Pattern: " "}, {Char: 'a', Pattern: ".-"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dict, err := NewMorseDictionary(symbols, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dict.Table() != symbols {
		t.Errorf("table is not kept")
	}
	converter := dict.Create()
	if got := converter.TextToMorse("a A"); got != ".-   ?" {
		t.Errorf("invalid result. want = %q, got = %q", ".-   ?", got)
	}
	if got := converter.MorseToText(".-   .-"); got != "a a" {
		t.Errorf("invalid result. want = %q, got = %q", "a a", got)
	}
}
