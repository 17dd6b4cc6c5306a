// Package templates holds the templ components rendered by the handlers.
package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and remembers the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// rawf formats markup. String arguments must already be escaped.
func (h *htmlWriter) rawf(format string, args ...any) {
	h.raw(fmt.Sprintf(format, args...))
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

type inputKind string

const (
	inputText   inputKind = "text"
	inputNumber inputKind = "number"
)

// attr is an extra input attribute. A blank value renders a bare attribute.
type attr struct {
	name, value string
}

var (
	attrRequired = attr{name: "required"}
	attrStepAny  = attr{name: "step", value: "any"}
	attrStepOne  = attr{name: "step", value: "1"}
)

func (a attr) String() string {
	if a.value == "" {
		return " " + templ.EscapeString(a.name)
	}
	return fmt.Sprintf(` %s="%s"`, templ.EscapeString(a.name), templ.EscapeString(a.value))
}

type buttonClass string

const (
	btnSmall       buttonClass = "btn btn-sm"
	btnSmallDanger buttonClass = "btn btn-sm btn-danger"
)

// field renders a labelled input. errMsg is shown under the input when set.
func (h *htmlWriter) field(label string, kind inputKind, name, value, errMsg string, attrs ...attr) {
	h.raw(`<label class="field">`)
	h.rawf(`<span class="field-label">%s</span>`, templ.EscapeString(label))
	h.rawf(`<input type="%s" name="%s" value="%s"`,
		templ.EscapeString(string(kind)), templ.EscapeString(name), templ.EscapeString(value))
	for _, a := range attrs {
		h.raw(a.String())
	}
	h.raw(`>`)
	if errMsg != "" {
		h.rawf(`<span class="field-error">%s</span>`, templ.EscapeString(errMsg))
	}
	h.raw(`</label>`)
}

// selectField renders a labelled select with the current value preselected.
func (h *htmlWriter) selectField(label, name, current string, options []string) {
	h.raw(`<label class="field">`)
	h.rawf(`<span class="field-label">%s</span>`, templ.EscapeString(label))
	h.rawf(`<select name="%s">`, templ.EscapeString(name))
	for _, o := range options {
		selected := ""
		if o == current {
			selected = " selected"
		}
		h.rawf(`<option value="%s"%s>%s</option>`, templ.EscapeString(o), selected, templ.EscapeString(o))
	}
	h.raw(`</select></label>`)
}

// actionButton renders a builder button that posts the surrounding form with
// the given action values.
func (h *htmlWriter) actionButton(label, vals string, class buttonClass) {
	h.rawf(`<button type="button" class="%s" hx-post="/quotation/builder" hx-include="#quotation-form" hx-target="#quotation-builder" hx-swap="outerHTML" hx-vals='%s'>%s</button>`,
		templ.EscapeString(string(class)), templ.EscapeString(vals), templ.EscapeString(label))
}
