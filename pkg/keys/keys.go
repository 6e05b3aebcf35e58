// Package keys describes configurable key bindings for the shelf TUI.
package keys

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// Key is a single key, identified by the code Bubble Tea reports for it
// (e.g. "ctrl+s").
type Key struct {
	Code string `json:"code" jsonschema:"title=Code"`
	// Alias replaces Code in help text.
	Alias string `json:"alias,omitempty" jsonschema:"title=Alias"`
	// Hidden keys still trigger their binding but are left out of help.
	Hidden bool `json:"hidden,omitempty" jsonschema:"title=Hidden"`
}

type KeyOpt func(k *Key)

func New(code string, opts ...KeyOpt) Key {
	k := Key{Code: code}
	for _, opt := range opts {
		opt(&k)
	}

	return k
}

func WithAlias(alias string) KeyOpt { return func(k *Key) { k.Alias = alias } }

func Hidden() KeyOpt { return func(k *Key) { k.Hidden = true } }

// String returns the name shown in help.
func (k Key) String() string {
	return cmp.Or(k.Alias, k.Code)
}

// KeyBind is an action together with the keys that trigger it.
type KeyBind struct {
	// Description is the action name shown in help.
	Description string `json:"description" jsonschema:"title=Description"`
	Keys        []Key  `json:"keys" jsonschema:"title=Keys"`
}

func NewBind(description string, keys ...Key) KeyBind {
	return KeyBind{Description: description, Keys: keys}
}

// String joins all visible keys with "/".
func (kb *KeyBind) String() string {
	visible := make([]string, 0, len(kb.Keys))
	for _, k := range kb.Keys {
		if !k.Hidden {
			visible = append(visible, k.String())
		}
	}

	return strings.Join(visible, "/")
}

// Match reports whether key triggers kb. A nil binding matches nothing.
func (kb *KeyBind) Match(key string) bool {
	if kb == nil {
		return false
	}

	return slices.ContainsFunc(kb.Keys, func(k Key) bool { return k.Code == key })
}

// AddKey appends key unless a key with the same code is already bound.
func (kb *KeyBind) AddKey(key Key) {
	if kb == nil || kb.Match(key.Code) {
		return
	}

	kb.Keys = append(kb.Keys, key)
}

// SetDefaultBind fills a nil or partially configured binding from defaultKb.
func SetDefaultBind(kb **KeyBind, defaultKb KeyBind) {
	if *kb == nil {
		*kb = &defaultKb

		return
	}

	if len((*kb).Keys) == 0 {
		(*kb).Keys = defaultKb.Keys
	}

	if (*kb).Description == "" {
		(*kb).Description = defaultKb.Description
	}
}

// ValidateBinds reports every key code bound more than once.
func ValidateBinds(kbs ...KeyBind) error {
	var errs []error

	seen := make(map[string]string)
	for _, kb := range kbs {
		for _, key := range kb.Keys {
			if other, ok := seen[key.Code]; ok {
				errs = append(errs, fmt.Errorf("duplicate key binding %q: %q and %q", key.Code, other, kb.Description))

				continue
			}

			seen[key.Code] = kb.Description
		}
	}

	return errors.Join(errs...)
}

// RenderHelp lays out bindings in rows of "keys  description", splitting them
// evenly over the given number of columns within width.
func RenderHelp(width, columns int, kbs ...KeyBind) string {
	visible := make([]KeyBind, 0, len(kbs))
	for _, kb := range kbs {
		if kb.String() != "" {
			visible = append(visible, kb)
		}
	}

	if len(visible) == 0 {
		return ""
	}

	columns = max(1, min(columns, len(visible)))
	colWidth := max(6, width/columns-2)
	perCol := (len(visible) + columns - 1) / columns

	keyWidth := 0
	for _, kb := range visible {
		keyWidth = max(keyWidth, ansi.PrintableRuneWidth(kb.String()))
	}

	rows := make([]string, perCol)
	for i, kb := range visible {
		cell := renderRow(kb, keyWidth, colWidth)
		rows[i%perCol] += " " + cell + " "
	}

	for i := range rows {
		rows[i] = strings.TrimRight(rows[i], " ")
	}

	return strings.Join(rows, "\n")
}

func renderRow(kb KeyBind, keyWidth, width int) string {
	k := kb.String()
	keyPad := strings.Repeat(" ", max(0, keyWidth-ansi.PrintableRuneWidth(k)))

	descWidth := max(0, width-keyWidth-2)
	desc := kb.Description
	if ansi.PrintableRuneWidth(desc) > descWidth {
		//nolint:gosec // G115: descWidth is never negative.
		desc = truncate.StringWithTail(desc, uint(descWidth), ellipsis)
	}

	descPad := strings.Repeat(" ", max(0, descWidth-ansi.PrintableRuneWidth(desc)))

	return k + keyPad + "  " + desc + descPad
}
