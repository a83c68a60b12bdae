package gomorse

import (
	"fmt"
)

type InputTextPlugin interface {
	SetUp() error
	Rewrite(builder *InputTextBuilder)
}

func DefMakeInputTextPlugin(k string) InputTextPlugin {
	switch k {
	case "DefaultInputTextPlugin":
		return NewDefaultInputTextPlugin()
	case "UpperCaseInputTextPlugin":
		return NewUpperCaseInputTextPlugin()
	}
	return nil
}

// MakeInputTextPlugins resolves names with DefMakeInputTextPlugin.
func MakeInputTextPlugins(names []string) ([]InputTextPlugin, error) {
	plugins := make([]InputTextPlugin, 0, len(names))
	for _, n := range names {
		plugin := DefMakeInputTextPlugin(n)
		if plugin == nil {
			return nil, fmt.Errorf("unknown InputTextPlugin: %s", n)
		}
		plugins = append(plugins, plugin)
	}
	return plugins, nil
}
