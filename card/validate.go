package card

import (
	"fmt"

	"github.com/c360/cardkit/hostconfig"
)

// ErrorCode is the machine-readable kind of a validation or parse
// diagnostic. Codes are stable across hosts; messages are not.
type ErrorCode string

const (
	CodeUnknownElementType      ErrorCode = "UnknownElementType"
	CodeUnknownActionType       ErrorCode = "UnknownActionType"
	CodeMissingCardType         ErrorCode = "MissingCardType"
	CodeUnsupportedCardVersion  ErrorCode = "UnsupportedCardVersion"
	CodePropertyCantBeNull      ErrorCode = "PropertyCantBeNull"
	CodeCollectionCantBeEmpty   ErrorCode = "CollectionCantBeEmpty"
	CodeTooManyActions          ErrorCode = "TooManyActions"
	CodeInteractivityNotAllowed ErrorCode = "InteractivityNotAllowed"
	CodeActionTypeNotAllowed    ErrorCode = "ActionTypeNotAllowed"
	CodeElementTypeNotAllowed   ErrorCode = "ElementTypeNotAllowed"
	CodeParseFailed             ErrorCode = "ParseFailed"
)

// ValidationError describes one diagnostic produced by validation.
// Validation never stops at the first failure; the full ordered list is
// always returned so hosts see every problem at once.
type ValidationError struct {
	Path    string    `json:"path"`    // Tree location, e.g. "body[2].items[0]"
	Message string    `json:"message"` // Human-readable description
	Code    ErrorCode `json:"code"`    // Machine-readable error kind
}

func (ve ValidationError) Error() string {
	if ve.Path == "" {
		return fmt.Sprintf("%s: %s", ve.Code, ve.Message)
	}
	return fmt.Sprintf("%s at %s: %s", ve.Code, ve.Path, ve.Message)
}

// ValidateContext carries the host configuration and the current tree
// location through a validation pass. Contexts are values; At derives a
// child context without mutating the parent's.
type ValidateContext struct {
	Config      *hostconfig.Config
	HostVersion Version
	Path        string

	// ForbidShowCard is set inside a ShowCard's revealed card, where
	// nested ShowCard actions are not permitted at any depth.
	ForbidShowCard bool
}

// NewValidateContext builds the root context for a validation pass.
// The host's supported version string is parsed once here; malformed
// strings keep the 1.0 default.
func NewValidateContext(cfg *hostconfig.Config) ValidateContext {
	if cfg == nil {
		cfg = hostconfig.Default()
	}

	hostVersion := DefaultVersion
	if v, ok := ParseVersion(cfg.SupportedVersion); ok {
		hostVersion = v
	}

	return ValidateContext{Config: cfg, HostVersion: hostVersion}
}

// At returns a child context whose path is extended by segment.
func (ctx ValidateContext) At(segment string) ValidateContext {
	child := ctx
	if ctx.Path == "" {
		child.Path = segment
	} else if segment != "" && segment[0] == '[' {
		child.Path = ctx.Path + segment
	} else {
		child.Path = ctx.Path + "." + segment
	}
	return child
}

// errorf builds a ValidationError at the context's current path.
func (ctx ValidateContext) errorf(code ErrorCode, format string, args ...any) ValidationError {
	return ValidationError{
		Path:    ctx.Path,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validate is the validation entry point: a pure pass over a parsed
// tree producing the complete, ordered diagnostic list. It is idempotent
// and callable any number of times.
func Validate(c *AdaptiveCard, cfg *hostconfig.Config) []ValidationError {
	return c.Validate(NewValidateContext(cfg))
}

// validateChildren runs validation over a slice of elements, checking
// each child against the host allow-list and interactivity flag before
// descending. Child diagnostics come first so the returned list reads
// bottom-up in document order.
func validateChildren(ctx ValidateContext, field string, children []Element) []ValidationError {
	var errs []ValidationError

	for i, child := range children {
		childCtx := ctx.At(fmt.Sprintf("%s[%d]", field, i))

		if !ctx.Config.ElementAllowed(child.TypeName()) {
			errs = append(errs, childCtx.errorf(CodeElementTypeNotAllowed,
				"element type %q is not allowed by the host", child.TypeName()))
		}

		if !ctx.Config.SupportsInteractivity && isInteractive(child) {
			errs = append(errs, childCtx.errorf(CodeInteractivityNotAllowed,
				"interactive element %q requires interactivity support", child.TypeName()))
		}

		errs = append(errs, child.Validate(childCtx)...)
	}

	return errs
}

// isInteractive reports whether an element requires host interactivity:
// any input, or any element carrying actions.
func isInteractive(el Element) bool {
	if _, ok := el.(Input); ok {
		return true
	}
	if _, ok := el.(*ActionSet); ok {
		return true
	}
	if c, ok := el.(*Container); ok {
		return len(c.Actions().Items()) > 0
	}
	return false
}
