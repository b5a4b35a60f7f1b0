// Package combobox is a renderer-agnostic state machine for an accessible
// autocomplete input. It owns the text value, the filtered option list, the
// open/active state, and the derived ARIA attributes; the rendering layer
// feeds it key, mouse, and focus events and reads state back.
package combobox

import (
	"fmt"
	"strings"
)

// Option is one selectable entry.
type Option struct {
	Value string
	Label string
}

// FilterFunc decides whether an option matches the current query.
type FilterFunc func(query string, opt Option) bool

// DefaultFilter matches case-insensitively on a label substring.
func DefaultFilter(query string, opt Option) bool {
	return strings.Contains(strings.ToLower(opt.Label), strings.ToLower(query))
}

// Key is a keyboard event the machine understands.
type Key int

const (
	KeyArrowDown Key = iota
	KeyArrowUp
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyTab
)

// Combobox holds the interaction state. Zero active index is valid, so the
// no-active-option state is activeIndex == -1.
type Combobox struct {
	id      string
	options []Option
	filter  FilterFunc

	query       string
	open        bool
	activeIndex int

	// deferred blur handling: an option mousedown suppresses the close that
	// the input's blur would otherwise schedule, so click-to-select wins.
	blurPending  bool
	suppressBlur bool

	onSelect func(Option)
}

// New builds a machine. id namespaces the ARIA element ids.
func New(id string, options []Option) *Combobox {
	return &Combobox{
		id:          id,
		options:     options,
		filter:      DefaultFilter,
		activeIndex: -1,
	}
}

// WithFilter replaces the default substring filter.
func (c *Combobox) WithFilter(f FilterFunc) *Combobox {
	c.filter = f
	return c
}

// OnSelect registers the selection callback invoked on commit.
func (c *Combobox) OnSelect(fn func(Option)) *Combobox {
	c.onSelect = fn
	return c
}

// SetOptions swaps the option set, re-clamping the active index.
func (c *Combobox) SetOptions(options []Option) {
	c.options = options
	if c.activeIndex >= len(c.Filtered()) {
		c.activeIndex = -1
	}
}

// Query returns the current text value.
func (c *Combobox) Query() string { return c.query }

// IsOpen reports whether the listbox is showing.
func (c *Combobox) IsOpen() bool { return c.open }

// ActiveIndex returns the active option's index in the filtered list, or -1.
func (c *Combobox) ActiveIndex() int { return c.activeIndex }

// Filtered returns the options matching the current query.
func (c *Combobox) Filtered() []Option {
	out := make([]Option, 0, len(c.options))
	for _, opt := range c.options {
		if c.filter(c.query, opt) {
			out = append(out, opt)
		}
	}
	return out
}

// SetQuery updates the text value, opens the listbox, and resets the active
// option (typing invalidates the previous highlight).
func (c *Combobox) SetQuery(q string) {
	c.query = q
	c.open = true
	c.activeIndex = -1
}

// HandleKey applies one keyboard event and returns the committed option, if
// the event committed one.
func (c *Combobox) HandleKey(k Key) (Option, bool) {
	n := len(c.Filtered())

	switch k {
	case KeyArrowDown:
		if !c.open {
			c.open = true
			if n > 0 {
				c.activeIndex = 0
			}
			return Option{}, false
		}
		if n > 0 {
			c.activeIndex = (c.activeIndex + 1) % n
		}
	case KeyArrowUp:
		if !c.open {
			c.open = true
			if n > 0 {
				c.activeIndex = n - 1
			}
			return Option{}, false
		}
		if n > 0 {
			if c.activeIndex < 0 {
				c.activeIndex = n - 1
			} else {
				c.activeIndex = (c.activeIndex - 1 + n) % n
			}
		}
	case KeyHome:
		if c.open && n > 0 {
			c.activeIndex = 0
		}
	case KeyEnd:
		if c.open && n > 0 {
			c.activeIndex = n - 1
		}
	case KeyEnter:
		if c.open && c.activeIndex >= 0 && c.activeIndex < n {
			return c.commit(c.activeIndex), true
		}
	case KeyEscape:
		c.close()
	case KeyTab:
		// commits like Enter when an option is active, but never blocks the
		// default focus movement, so the listbox closes either way
		if c.open && c.activeIndex >= 0 && c.activeIndex < n {
			return c.commit(c.activeIndex), true
		}
		c.close()
	}
	return Option{}, false
}

// HoverOption sets the active option from a pointer hover.
func (c *Combobox) HoverOption(i int) {
	if c.open && i >= 0 && i < len(c.Filtered()) {
		c.activeIndex = i
	}
}

// ClickOption commits the clicked option.
func (c *Combobox) ClickOption(i int) (Option, bool) {
	if !c.open || i < 0 || i >= len(c.Filtered()) {
		return Option{}, false
	}
	return c.commit(i), true
}

// OptionMouseDown must be called on mousedown over an option, before the
// input's blur fires, so the pending blur does not close the listbox out
// from under the click.
func (c *Combobox) OptionMouseDown() {
	c.suppressBlur = true
}

// Blur schedules a close. The decision is deferred: the renderer calls
// ResolveBlur on the next tick with whether focus stayed inside the
// component's root.
func (c *Combobox) Blur() {
	c.blurPending = true
}

// ResolveBlur completes a deferred blur check.
func (c *Combobox) ResolveBlur(focusInsideRoot bool) {
	if !c.blurPending {
		return
	}
	c.blurPending = false
	if c.suppressBlur {
		c.suppressBlur = false
		return
	}
	if !focusInsideRoot {
		c.close()
	}
}

func (c *Combobox) commit(i int) Option {
	opt := c.Filtered()[i]
	c.query = opt.Label
	c.close()
	if c.onSelect != nil {
		c.onSelect(opt)
	}
	return opt
}

func (c *Combobox) close() {
	c.open = false
	c.activeIndex = -1
}

// --- derived ARIA state ---

func (c *Combobox) listboxID() string { return c.id + "-listbox" }

func (c *Combobox) optionID(i int) string { return fmt.Sprintf("%s-option-%d", c.id, i) }

// InputAttrs returns the ARIA attributes for the text input.
func (c *Combobox) InputAttrs() map[string]string {
	attrs := map[string]string{
		"role":          "combobox",
		"aria-expanded": fmt.Sprintf("%t", c.open),
	}
	if c.open {
		attrs["aria-controls"] = c.listboxID()
	}
	if c.open && c.activeIndex >= 0 {
		attrs["aria-activedescendant"] = c.optionID(c.activeIndex)
	}
	return attrs
}

// ListboxAttrs returns the ARIA attributes for the listbox container.
func (c *Combobox) ListboxAttrs() map[string]string {
	return map[string]string{
		"id":   c.listboxID(),
		"role": "listbox",
	}
}

// OptionAttrs returns the ARIA attributes for the i-th filtered option. When
// the filtered list is empty the renderer shows a single placeholder whose
// attributes come from EmptyAttrs.
func (c *Combobox) OptionAttrs(i int) map[string]string {
	attrs := map[string]string{
		"id":   c.optionID(i),
		"role": "option",
	}
	if i == c.activeIndex {
		attrs["aria-selected"] = "true"
	}
	return attrs
}

// EmptyAttrs describes the non-interactive placeholder for an empty result.
func (c *Combobox) EmptyAttrs() map[string]string {
	return map[string]string{
		"role":          "option",
		"aria-disabled": "true",
	}
}
