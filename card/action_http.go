package card

import (
	"fmt"
	"sort"

	"github.com/c360/cardkit/template"
)

// HTTPHeader is one header on an HTTP action. The value is a template
// string; the name is literal.
type HTTPHeader struct {
	Name  string
	value template.Template

	resolved string
	prepared bool
}

// Value returns the resolved header value once Prepare has run, and the
// template source before that.
func (h *HTTPHeader) Value() string {
	if h.prepared {
		return h.resolved
	}
	return h.value.Source()
}

// HTTPAction describes an HTTP request the host should issue. The url,
// body, and header values are template strings carrying {{id}}
// placeholders resolved against live input values at preparation time.
// The templates retain their originals, so repeated Prepare calls
// re-resolve cleanly instead of compounding.
type HTTPAction struct {
	BaseAction

	Method  string
	Headers []HTTPHeader

	url  template.Template
	body template.Template

	resolvedURL  string
	resolvedBody string
	prepared     bool
}

// TypeName returns "Action.Http".
func (a *HTTPAction) TypeName() string { return TypeHTTPAction }

// httpHeaderWire is the JSON shape of one header entry.
type httpHeaderWire struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Parse fills the action from its JSON node. Headers arrive as an array
// of {name, value} objects; a plain name-to-value object is accepted
// leniently.
func (a *HTTPAction) Parse(p *Parser, raw []byte) error {
	if err := a.parseBase(raw); err != nil {
		return err
	}

	var wire struct {
		Method  string  `json:"method"`
		URL     string  `json:"url"`
		Body    string  `json:"body"`
		Headers jsonRaw `json:"headers"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	a.Method = wire.Method
	a.url = template.New(wire.URL)
	a.body = template.New(wire.Body)

	headers, err := parseHeaders(wire.Headers)
	if err != nil {
		return err
	}
	a.Headers = headers

	return nil
}

// parseHeaders decodes a headers node. The wire form is an array of
// {name, value} objects, keeping declaration order. The object form is
// accepted leniently, ordered by name so parsing stays deterministic.
func parseHeaders(raw jsonRaw) ([]HTTPHeader, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var entries []httpHeaderWire
	if err := jsonCodec.Unmarshal(raw, &entries); err == nil {
		headers := make([]HTTPHeader, 0, len(entries))
		for _, e := range entries {
			headers = append(headers, HTTPHeader{Name: e.Name, value: template.New(e.Value)})
		}
		return headers, nil
	}

	var byName map[string]string
	if err := jsonCodec.Unmarshal(raw, &byName); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := make([]HTTPHeader, 0, len(names))
	for _, name := range names {
		headers = append(headers, HTTPHeader{Name: name, value: template.New(byName[name])})
	}
	return headers, nil
}

// URL returns the resolved URL once Prepare has run, and the template
// source before that.
func (a *HTTPAction) URL() string {
	if a.prepared {
		return a.resolvedURL
	}
	return a.url.Source()
}

// Body returns the resolved body once Prepare has run, and the template
// source before that.
func (a *HTTPAction) Body() string {
	if a.prepared {
		return a.resolvedBody
	}
	return a.body.Source()
}

// SetURL replaces the URL template and resets prepared state.
func (a *HTTPAction) SetURL(url string) {
	a.url = template.New(url)
	a.prepared = false
}

// SetBody replaces the body template and resets prepared state.
func (a *HTTPAction) SetBody(body string) {
	a.body = template.New(body)
	a.prepared = false
}

// Prepare resolves every placeholder in url, body, and header values
// against the supplied inputs' current values.
func (a *HTTPAction) Prepare(inputs []Input) error {
	values := inputValues(inputs)

	a.resolvedURL = a.url.Resolve(values)
	a.resolvedBody = a.body.Resolve(values)
	for i := range a.Headers {
		a.Headers[i].resolved = a.Headers[i].value.Resolve(values)
		a.Headers[i].prepared = true
	}
	a.prepared = true

	return nil
}

// Validate requires a non-empty url template and complete header pairs.
func (a *HTTPAction) Validate(ctx ValidateContext) []ValidationError {
	var errs []ValidationError

	if a.url.IsEmpty() {
		errs = append(errs, ctx.errorf(CodePropertyCantBeNull, "Http action requires a url"))
	}
	for i, h := range a.Headers {
		if h.Name == "" || h.value.IsEmpty() {
			errs = append(errs, ctx.At(fmt.Sprintf("headers[%d]", i)).errorf(
				CodePropertyCantBeNull, "Http header requires both name and value"))
		}
	}

	return errs
}

// MarshalJSON serializes the action with its template sources; resolved
// values are dispatch-time state, not document content.
func (a *HTTPAction) MarshalJSON() ([]byte, error) {
	headers := make([]httpHeaderWire, 0, len(a.Headers))
	for _, h := range a.Headers {
		headers = append(headers, httpHeaderWire{Name: h.Name, Value: h.value.Source()})
	}

	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseActionWire
		Method  string           `json:"method,omitempty"`
		URL     string           `json:"url"`
		Body    string           `json:"body,omitempty"`
		Headers []httpHeaderWire `json:"headers,omitempty"`
	}{
		Type:           TypeHTTPAction,
		baseActionWire: baseActionWire{Title: a.ActionTitle, Speak: a.Speak},
		Method:         a.Method,
		URL:            a.url.Source(),
		Body:           a.body.Source(),
		Headers:        headers,
	})
}

// inputValues snapshots the current value of every input, keyed by id.
// Inputs without a value contribute the empty string.
func inputValues(inputs []Input) map[string]string {
	values := make(map[string]string, len(inputs))
	for _, in := range inputs {
		if in.ID() == "" {
			continue
		}
		values[in.ID()] = in.Value()
	}
	return values
}
