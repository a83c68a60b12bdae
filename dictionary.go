package gomorse

import (
	"fmt"

	"github.com/msnoigrs/gomorse/table"
)

type MorseDictionary struct {
	table            *table.SymbolTable
	inputTextPlugins []InputTextPlugin
}

func NewMorseDictionary(symbols *table.SymbolTable, inputTextPlugins []InputTextPlugin) (*MorseDictionary, error) {
	if symbols == nil {
		symbols = table.Default()
	}
	for _, plugin := range inputTextPlugins {
		err := plugin.SetUp()
		if err != nil {
			return nil, fmt.Errorf("fail to set up an InputTextPlugin: %s", err)
		}
	}
	return &MorseDictionary{
		table:            symbols,
		inputTextPlugins: inputTextPlugins,
	}, nil
}

var DefaultInputTextPlugins = []string{
	"DefaultInputTextPlugin",
	"UpperCaseInputTextPlugin",
}

func NewDefaultMorseDictionary() (*MorseDictionary, error) {
	inputTextPlugins, err := MakeInputTextPlugins(DefaultInputTextPlugins)
	if err != nil {
		return nil, err
	}
	return NewMorseDictionary(nil, inputTextPlugins)
}

func (d *MorseDictionary) Table() *table.SymbolTable {
	return d.table
}

func (d *MorseDictionary) Create() *MorseConverter {
	return NewMorseConverter(d.table, d.inputTextPlugins)
}
