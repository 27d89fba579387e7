package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/cardkit/hostconfig"
)

func parseSubmitCard(t *testing.T) (*AdaptiveCard, *SubmitAction) {
	t.Helper()
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{"type": "Input.Text", "id": "name", "value": "alice"}],
		"actions": [{
			"type": "Action.Submit",
			"title": "Send",
			"data": {"kind": "signup", "nested": {"keep": true}}
		}]
	}`)

	submit, ok := result.Card.Actions().Items()[0].(*SubmitAction)
	require.True(t, ok)
	return result.Card, submit
}

func TestSubmitPrepareMergesInputs(t *testing.T) {
	c, submit := parseSubmitCard(t)

	require.NoError(t, submit.Prepare(c.GetAllInputs()))

	data := submit.Data()
	assert.Equal(t, "signup", data["kind"])
	assert.Equal(t, "alice", data["name"])
}

func TestSubmitPrepareDoesNotMutateOriginal(t *testing.T) {
	c, submit := parseSubmitCard(t)

	require.NoError(t, submit.Prepare(c.GetAllInputs()))
	prepared := submit.Data()
	prepared["kind"] = "tampered"
	prepared["nested"].(map[string]any)["keep"] = false

	// A fresh Prepare starts from the untouched original.
	require.NoError(t, submit.Prepare(c.GetAllInputs()))
	data := submit.Data()
	assert.Equal(t, "signup", data["kind"])
	assert.Equal(t, true, data["nested"].(map[string]any)["keep"])
}

func TestSubmitPrepareTracksInputEdits(t *testing.T) {
	c, submit := parseSubmitCard(t)
	inputs := c.GetAllInputs()

	require.NoError(t, submit.Prepare(inputs))
	assert.Equal(t, "alice", submit.Data()["name"])

	inputs[0].SetValue("bob")
	require.NoError(t, submit.Prepare(inputs))
	assert.Equal(t, "bob", submit.Data()["name"])
}

func TestSubmitSetDataResetsPreparedState(t *testing.T) {
	c, submit := parseSubmitCard(t)

	require.NoError(t, submit.Prepare(c.GetAllInputs()))
	submit.SetData(map[string]any{"fresh": 1})

	assert.Equal(t, map[string]any{"fresh": 1}, submit.Data())
}

func TestSubmitPrepareWithNilData(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{"type": "Input.Text", "id": "q", "value": "hi"}],
		"actions": [{"type": "Action.Submit"}]
	}`)

	submit := result.Card.Actions().Items()[0].(*SubmitAction)
	assert.Nil(t, submit.Data())

	require.NoError(t, submit.Prepare(result.Card.GetAllInputs()))
	assert.Equal(t, map[string]any{"q": "hi"}, submit.Data())
}

func parseHTTPCard(t *testing.T) (*AdaptiveCard, *HTTPAction) {
	t.Helper()
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{"type": "Input.Text", "id": "user", "value": "alice"}],
		"actions": [{
			"type": "Action.Http",
			"title": "Call",
			"method": "POST",
			"url": "https://api.example.com/users/{{user}}",
			"body": "{\"who\": \"{{user}}\"}",
			"headers": [{"name": "X-User", "value": "{{user}}"}]
		}]
	}`)

	httpAction, ok := result.Card.Actions().Items()[0].(*HTTPAction)
	require.True(t, ok)
	return result.Card, httpAction
}

func TestHTTPPrepareResolvesTemplates(t *testing.T) {
	c, a := parseHTTPCard(t)

	require.NoError(t, a.Prepare(c.GetAllInputs()))

	assert.Equal(t, "https://api.example.com/users/alice", a.URL())
	assert.Equal(t, `{"who": "alice"}`, a.Body())
	require.Len(t, a.Headers, 1)
	assert.Equal(t, "alice", a.Headers[0].Value())
}

func TestHTTPRePrepareNeverCompounds(t *testing.T) {
	c, a := parseHTTPCard(t)
	inputs := c.GetAllInputs()

	require.NoError(t, a.Prepare(inputs))
	assert.Equal(t, "https://api.example.com/users/alice", a.URL())

	// A changed input fully replaces the previous resolution.
	inputs[0].SetValue("bob")
	require.NoError(t, a.Prepare(inputs))
	assert.Equal(t, "https://api.example.com/users/bob", a.URL())
	assert.Equal(t, `{"who": "bob"}`, a.Body())
	assert.Equal(t, "bob", a.Headers[0].Value())
}

func TestHTTPUnpreparedReturnsTemplateSource(t *testing.T) {
	_, a := parseHTTPCard(t)

	assert.Equal(t, "https://api.example.com/users/{{user}}", a.URL())
	assert.Equal(t, "{{user}}", a.Headers[0].Value())
}

func TestHTTPSetURLResetsPreparedState(t *testing.T) {
	c, a := parseHTTPCard(t)

	require.NoError(t, a.Prepare(c.GetAllInputs()))
	a.SetURL("https://other.example.com/{{user}}")

	// Back to source form until the next Prepare.
	assert.Equal(t, "https://other.example.com/{{user}}", a.URL())

	require.NoError(t, a.Prepare(c.GetAllInputs()))
	assert.Equal(t, "https://other.example.com/alice", a.URL())
}

func TestHTTPUnknownPlaceholderLeftLiteral(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"actions": [{"type": "Action.Http", "url": "https://x/{{missing}}"}]
	}`)

	a := result.Card.Actions().Items()[0].(*HTTPAction)
	require.NoError(t, a.Prepare(nil))
	assert.Equal(t, "https://x/{{missing}}", a.URL())
}

func TestHTTPParseHeaderOrder(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"actions": [{
			"type": "Action.Http",
			"url": "https://example.com",
			"headers": [
				{"name": "Z-Last", "value": "z"},
				{"name": "A-First", "value": "a"},
				{"name": "M-Middle", "value": "m"}
			]
		}]
	}`)

	require.Empty(t, result.Warnings)
	a := result.Card.Actions().Items()[0].(*HTTPAction)
	require.Len(t, a.Headers, 3)

	// Declaration order, not name order.
	assert.Equal(t, "Z-Last", a.Headers[0].Name)
	assert.Equal(t, "A-First", a.Headers[1].Name)
	assert.Equal(t, "M-Middle", a.Headers[2].Name)
}

func TestHTTPParseObjectHeaders(t *testing.T) {
	// The name-to-value object form parses leniently, ordered by name.
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"actions": [{
			"type": "Action.Http",
			"url": "https://example.com",
			"headers": {"X-B": "b", "X-A": "a"}
		}]
	}`)

	require.Empty(t, result.Warnings)
	a := result.Card.Actions().Items()[0].(*HTTPAction)
	require.Len(t, a.Headers, 2)
	assert.Equal(t, "X-A", a.Headers[0].Name)
	assert.Equal(t, "X-B", a.Headers[1].Name)
}

func TestHTTPMarshalHeadersRoundTrip(t *testing.T) {
	first := mustParse(t, `{
		"type": "AdaptiveCard",
		"actions": [{
			"type": "Action.Http",
			"url": "https://example.com",
			"headers": [
				{"name": "X-User", "value": "{{user}}"},
				{"name": "X-Trace", "value": "abc"}
			]
		}]
	}`)

	data, err := first.Card.MarshalJSON()
	require.NoError(t, err)

	second, err := Parse(data)
	require.NoError(t, err)
	require.Empty(t, second.Warnings)

	a := second.Card.Actions().Items()[0].(*HTTPAction)
	require.Len(t, a.Headers, 2)
	assert.Equal(t, "X-User", a.Headers[0].Name)
	assert.Equal(t, "{{user}}", a.Headers[0].Value())
	assert.Equal(t, "X-Trace", a.Headers[1].Name)
}

func TestHTTPValidate(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"actions": [{
			"type": "Action.Http",
			"headers": [
				{"name": "", "value": "{{v}}"},
				{"name": "X-Ok", "value": "1"}
			]
		}]
	}`)

	errs := Validate(result.Card, hostconfig.Default())
	require.Len(t, errs, 2)
	assert.Equal(t, CodePropertyCantBeNull, errs[0].Code) // missing url
	assert.Equal(t, CodePropertyCantBeNull, errs[1].Code) // incomplete header
	assert.Equal(t, "actions[0].headers[0]", errs[1].Path)
}

func TestOpenURLValidate(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"actions": [{"type": "Action.OpenUrl", "title": "go"}]
	}`)

	errs := Validate(result.Card, hostconfig.Default())
	require.Len(t, errs, 1)
	assert.Equal(t, CodePropertyCantBeNull, errs[0].Code)
	assert.Equal(t, "actions[0]", errs[0].Path)
}

func TestShowCardValidateRequiresCard(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"actions": [{"type": "Action.ShowCard", "title": "more"}]
	}`)

	errs := Validate(result.Card, hostconfig.Default())
	require.Len(t, errs, 1)
	assert.Equal(t, CodePropertyCantBeNull, errs[0].Code)
}

func TestActionCollectionForbid(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"actions": [{"type": "Action.Submit"}]
	}`)

	result.Card.Actions().Forbid(TypeSubmitAction)

	errs := Validate(result.Card, hostconfig.Default())
	require.Len(t, errs, 1)
	assert.Equal(t, CodeActionTypeNotAllowed, errs[0].Code)
}

func TestActionSetParsesActions(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{
			"type": "ActionSet",
			"actions": [
				{"type": "Action.OpenUrl", "title": "a", "url": "https://x/1"},
				{"type": "Action.Submit", "title": "b"}
			]
		}]
	}`)

	set, ok := result.Card.Items()[0].(*ActionSet)
	require.True(t, ok)
	require.Len(t, set.Actions().Items(), 2)
	assert.Equal(t, "a", set.Actions().Items()[0].Title())
	assert.Same(t, set, set.Actions().Items()[0].Parent())
}
