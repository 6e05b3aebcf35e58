package ui

import (
	"github.com/macropower/shelf/pkg/keys"
)

type KeyBinds struct {
	Quit    *keys.KeyBind `json:"quit,omitempty"    jsonschema:"title=Quit"`
	Help    *keys.KeyBind `json:"help,omitempty"    jsonschema:"title=Toggle Help"`
	Escape  *keys.KeyBind `json:"escape,omitempty"  jsonschema:"title=Go Back"`
	Add     *keys.KeyBind `json:"add,omitempty"     jsonschema:"title=Add Record"`
	Sort    *keys.KeyBind `json:"sort,omitempty"    jsonschema:"title=Next Sort Key"`
	Reverse *keys.KeyBind `json:"reverse,omitempty" jsonschema:"title=Reverse Order"`
	Save    *keys.KeyBind `json:"save,omitempty"    jsonschema:"title=Save"`
	Copy    *keys.KeyBind `json:"copy,omitempty"    jsonschema:"title=Copy"`
	Filter  *keys.KeyBind `json:"filter,omitempty"  jsonschema:"title=Filter"`
}

func (kb *KeyBinds) EnsureDefaults() {
	keys.SetDefaultBind(&kb.Quit, keys.NewBind("quit", keys.New("q")))
	// Always ensure that ctrl+c is bound to quit.
	kb.Quit.AddKey(keys.New("ctrl+c", keys.WithAlias("⌃c"), keys.Hidden()))

	keys.SetDefaultBind(&kb.Help,
		keys.NewBind("toggle help",
			keys.New("?"),
		))
	keys.SetDefaultBind(&kb.Escape,
		keys.NewBind("go back",
			keys.New("esc"),
		))
	keys.SetDefaultBind(&kb.Add,
		keys.NewBind("add record",
			keys.New("a"),
		))
	keys.SetDefaultBind(&kb.Sort,
		keys.NewBind("next sort key",
			keys.New("s"),
		))
	keys.SetDefaultBind(&kb.Reverse,
		keys.NewBind("reverse order",
			keys.New("r"),
		))
	keys.SetDefaultBind(&kb.Save,
		keys.NewBind("save to file",
			keys.New("w"),
			keys.New("ctrl+s", keys.WithAlias("⌃s"), keys.Hidden()),
		))
	keys.SetDefaultBind(&kb.Copy,
		keys.NewBind("copy to clipboard",
			keys.New("c"),
		))
	keys.SetDefaultBind(&kb.Filter,
		keys.NewBind("filter",
			keys.New("/"),
		))
}

func (kb *KeyBinds) GetKeyBinds() []keys.KeyBind {
	return []keys.KeyBind{
		*kb.Add,
		*kb.Sort,
		*kb.Reverse,
		*kb.Filter,
		*kb.Save,
		*kb.Copy,
		*kb.Escape,
		*kb.Help,
		*kb.Quit,
	}
}
