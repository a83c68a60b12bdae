package gomorse

var defaultConverter *MorseConverter

func init() {
	dict, err := NewDefaultMorseDictionary()
	if err != nil {
		panic(err)
	}
	defaultConverter = dict.Create()
}

// TextToMorse converts text with the default table and input text plugins.
// Characters missing from the table become "?".
func TextToMorse(text string) string {
	return defaultConverter.TextToMorse(text)
}

// MorseToText decodes morse whose words are separated by two or more spaces.
// Unknown codes become "?".
func MorseToText(text string) string {
	return defaultConverter.MorseToText(text)
}
