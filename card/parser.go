package card

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/c360/cardkit/errors"
	"github.com/c360/cardkit/registry"
)

// jsonRaw aliases json.RawMessage for wire structs; the jsoniter codec
// honors it the same way encoding/json does.
type jsonRaw = json.RawMessage

// ParseWarning records a non-fatal problem encountered during parsing.
// Warnings never abort the parse: the offending node is dropped and
// sibling parsing continues.
type ParseWarning struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ParseResult bundles the parsed card with every warning accumulated
// along the way.
type ParseResult struct {
	Card     *AdaptiveCard
	Warnings []ParseWarning
}

// ParseErrorHandler is the optional parse-error channel: it is invoked
// synchronously for each unknown type or unparsable node. When unset,
// such events are only recorded in the returned warning list.
type ParseErrorHandler func(warning ParseWarning)

// Parser walks a JSON card document, resolving each node's type tag
// through the element and action registries and recursively parsing
// children. A Parser is not safe for concurrent use; the registries it
// holds are.
type Parser struct {
	elements *registry.Registry[Element]
	actions  *registry.Registry[Action]
	onError  ParseErrorHandler
	logger   *slog.Logger
	warnings []ParseWarning
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithRegistries replaces the default element and action registries.
func WithRegistries(elements *registry.Registry[Element], actions *registry.Registry[Action]) ParserOption {
	return func(p *Parser) {
		p.elements = elements
		p.actions = actions
	}
}

// WithParseErrorHandler installs the parse-error channel callback.
func WithParseErrorHandler(handler ParseErrorHandler) ParserOption {
	return func(p *Parser) {
		p.onError = handler
	}
}

// WithLogger replaces the default slog logger.
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a parser over the standard type registries unless
// overridden by options.
func NewParser(opts ...ParserOption) *Parser {
	elements, actions := DefaultRegistries()
	p := &Parser{
		elements: elements,
		actions:  actions,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse deserializes a complete card document. Malformed JSON syntax is
// the only hard failure; malformed content degrades to warnings. The
// returned warning list is complete regardless of whether a parse-error
// handler is installed.
func (p *Parser) Parse(data []byte) (*ParseResult, error) {
	p.warnings = nil

	if !jsonCodec.Valid(data) {
		return nil, errors.WrapInvalid(errors.ErrMalformedJSON, "Parser", "Parse", "JSON syntax check")
	}

	c := &AdaptiveCard{}
	if err := c.Parse(p, data); err != nil {
		return nil, errors.Wrap(err, "Parser", "Parse", "card parsing")
	}

	result := &ParseResult{
		Card:     c,
		Warnings: p.warnings,
	}

	p.logger.Debug("card parsed",
		"elements", len(c.Items()),
		"actions", len(c.Actions().Items()),
		"warnings", len(p.warnings))

	return result, nil
}

// ParseElement resolves one element node through the registry. The
// second return is false when the node was dropped: unknown type tag or
// a node-local parse failure. Either way a warning is recorded and
// parsing continues.
func (p *Parser) ParseElement(raw []byte) (Element, bool) {
	tag, ok := p.typeTag(raw)
	if !ok {
		return nil, false
	}

	el, ok := p.elements.CreateInstance(tag)
	if !ok {
		p.warnf(CodeUnknownElementType, "unknown element type %q", tag)
		return nil, false
	}

	if err := el.Parse(p, raw); err != nil {
		p.warnf(CodeParseFailed, "element %q dropped: %v", tag, err)
		return nil, false
	}

	return el, true
}

// ParseElements parses a JSON array of element nodes, dropping the bad
// ones and keeping document order for the rest.
func (p *Parser) ParseElements(raws []json.RawMessage) []Element {
	elements := make([]Element, 0, len(raws))
	for _, raw := range raws {
		if el, ok := p.ParseElement(raw); ok {
			elements = append(elements, el)
		}
	}
	return elements
}

// ParseAction resolves one action node through the registry, with the
// same drop-and-continue semantics as ParseElement.
func (p *Parser) ParseAction(raw []byte) (Action, bool) {
	tag, ok := p.typeTag(raw)
	if !ok {
		return nil, false
	}

	a, ok := p.actions.CreateInstance(tag)
	if !ok {
		p.warnf(CodeUnknownActionType, "unknown action type %q", tag)
		return nil, false
	}

	if err := a.Parse(p, raw); err != nil {
		p.warnf(CodeParseFailed, "action %q dropped: %v", tag, err)
		return nil, false
	}

	return a, true
}

// ParseActions parses a JSON array of action nodes, dropping the bad
// ones and keeping document order for the rest.
func (p *Parser) ParseActions(raws []json.RawMessage) []Action {
	actions := make([]Action, 0, len(raws))
	for _, raw := range raws {
		if a, ok := p.ParseAction(raw); ok {
			actions = append(actions, a)
		}
	}
	return actions
}

// typeTag extracts the "type" discriminator from a node.
func (p *Parser) typeTag(raw []byte) (string, bool) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := jsonCodec.Unmarshal(raw, &probe); err != nil {
		p.warnf(CodeParseFailed, "node dropped: %v", err)
		return "", false
	}
	if probe.Type == "" {
		p.warnf(CodeUnknownElementType, "node has no type tag")
		return "", false
	}
	return probe.Type, true
}

// warnf records a warning and notifies the parse-error channel.
func (p *Parser) warnf(code ErrorCode, format string, args ...any) {
	warning := ParseWarning{Code: code, Message: fmt.Sprintf(format, args...)}
	p.warnings = append(p.warnings, warning)

	p.logger.Debug("parse warning", "code", string(code), "message", warning.Message)

	if p.onError != nil {
		p.onError(warning)
	}
}

// Parse is the package-level entry point over the default registries.
func Parse(data []byte) (*ParseResult, error) {
	return NewParser().Parse(data)
}

// DefaultRegistries returns fresh element and action registries with
// every standard type pre-registered. Hosts extend or override these
// before constructing a Parser.
func DefaultRegistries() (*registry.Registry[Element], *registry.Registry[Action]) {
	elements := registry.New[Element]()
	actions := registry.New[Action]()

	register := func(tag string, factory func() Element) {
		// Registration over a fresh registry only fails on nil
		// factories or empty tags, neither possible here.
		_ = elements.Register(&registry.Registration[Element]{Tag: tag, Factory: factory})
	}
	registerAction := func(tag string, factory func() Action) {
		_ = actions.Register(&registry.Registration[Action]{Tag: tag, Factory: factory})
	}

	register(TypeTextBlock, func() Element { return &TextBlock{} })
	register(TypeImage, func() Element { return &Image{} })
	register(TypeImageSet, func() Element { return &ImageSet{} })
	register(TypeFactSet, func() Element { return &FactSet{} })
	register(TypeContainer, func() Element { return &Container{} })
	register(TypeColumnSet, func() Element { return &ColumnSet{} })
	register(TypeColumn, func() Element { return &Column{} })
	register(TypeActionSet, func() Element { return &ActionSet{} })
	register(TypeTextInput, func() Element { return &TextInput{} })
	register(TypeNumberInput, func() Element { return &NumberInput{} })
	register(TypeDateInput, func() Element { return &DateInput{} })
	register(TypeTimeInput, func() Element { return &TimeInput{} })
	register(TypeToggleInput, func() Element { return &ToggleInput{} })
	register(TypeChoiceSetInput, func() Element { return &ChoiceSetInput{} })

	registerAction(TypeOpenURLAction, func() Action { return &OpenURLAction{} })
	registerAction(TypeSubmitAction, func() Action { return &SubmitAction{} })
	registerAction(TypeHTTPAction, func() Action { return &HTTPAction{} })
	registerAction(TypeShowCardAction, func() Action { return &ShowCardAction{} })

	return elements, actions
}
