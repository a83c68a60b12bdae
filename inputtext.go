package gomorse

type InputText struct {
	OriginalText string
	ModifiedText string
	offsets      []int
}

func (t *InputText) GetText() string {
	return t.ModifiedText
}

// GetOriginalIndex returns the rune index in OriginalText that produced the
// index-th rune of ModifiedText.
func (t *InputText) GetOriginalIndex(index int) int {
	return t.offsets[index]
}

type InputTextBuilder struct {
	OriginalText  string
	modifiedRunes []rune
	textOffsets   []int
}

func NewInputTextBuilder(text string) *InputTextBuilder {
	modifiedRunes := []rune(text)
	offsetslen := len(modifiedRunes) + 1
	textOffsets := make([]int, offsetslen, offsetslen)
	for i := 0; i < offsetslen; i++ {
		textOffsets[i] = i
	}
	return &InputTextBuilder{
		OriginalText:  text,
		modifiedRunes: modifiedRunes,
		textOffsets:   textOffsets,
	}
}

func (builder *InputTextBuilder) GetText() []rune {
	ret := make([]rune, len(builder.modifiedRunes))
	copy(ret, builder.modifiedRunes)
	return ret
}

func (builder *InputTextBuilder) Replace(begin int, end int, runes []rune) {
	rl := len(runes)
	tlen := end - begin

	offset := builder.textOffsets[begin]

	if rl < tlen {
		ol := len(builder.modifiedRunes)
		copy(builder.modifiedRunes[begin+rl:], builder.modifiedRunes[end:])
		copy(builder.modifiedRunes[begin:], runes)
		builder.modifiedRunes = builder.modifiedRunes[:ol-tlen+rl]

		tolen := len(builder.textOffsets)
		copy(builder.textOffsets[begin+rl:], builder.textOffsets[end:])
		builder.textOffsets = builder.textOffsets[:tolen-tlen+rl]
	} else if rl == tlen {
		copy(builder.modifiedRunes[begin:], runes)
	} else {
		ol := len(builder.modifiedRunes)
		builder.modifiedRunes = append(builder.modifiedRunes, make([]rune, rl-tlen)...)
		copy(builder.modifiedRunes[begin+rl:], builder.modifiedRunes[end:ol])
		copy(builder.modifiedRunes[begin:], runes)

		tolen := len(builder.textOffsets)
		builder.textOffsets = append(builder.textOffsets, make([]int, rl-tlen)...)
		copy(builder.textOffsets[begin+rl:], builder.textOffsets[end:tolen])
	}

	for i := 0; i < rl; i++ {
		builder.textOffsets[begin+i] = offset
	}
}

func (builder *InputTextBuilder) Build() *InputText {
	offsets := make([]int, len(builder.textOffsets))
	copy(offsets, builder.textOffsets)
	return &InputText{
		OriginalText: builder.OriginalText,
		ModifiedText: string(builder.modifiedRunes),
		offsets:      offsets,
	}
}
