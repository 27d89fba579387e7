package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/cardkit/errors"
)

func TestSingleAttach(t *testing.T) {
	parent := &Container{}
	other := &Container{}
	child := &TextBlock{Text: "hi"}

	require.NoError(t, parent.AddItem(child))
	assert.Same(t, parent, child.Parent())

	// A second attachment anywhere is a contract violation.
	err := other.AddItem(child)
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))

	err = child.SetParent(parent)
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))

	// The failed attach must not have adopted the child.
	assert.Empty(t, other.Items())
	assert.Same(t, parent, child.Parent())
}

func TestSetParentNil(t *testing.T) {
	child := &TextBlock{}
	err := child.SetParent(nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestHandleStable(t *testing.T) {
	el := &TextBlock{}
	h := el.Handle()
	assert.NotEmpty(t, h)
	assert.Equal(t, h, el.Handle())

	assert.NotEqual(t, h, (&TextBlock{}).Handle())
}

func TestParsedTreeContainment(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{
			"type": "Container",
			"items": [
				{"type": "TextBlock", "text": "nested"},
				{"type": "ColumnSet", "columns": [
					{"size": "auto", "items": [{"type": "Image", "url": "https://x/a.png"}]}
				]}
			]
		}]
	}`)

	// Every node's parent chain terminates at the root.
	var walk func(el Element)
	walk = func(el Element) {
		if el != result.Card {
			require.NotNil(t, el.Parent(), "detached node %s", el.TypeName())
		}
		if container, ok := el.(ContainerElement); ok {
			for _, child := range container.Children() {
				assert.Same(t, el, child.Parent())
				walk(child)
			}
		}
	}
	walk(result.Card)
}

func TestGetAllInputsDocumentOrder(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [
			{"type": "Input.Text", "id": "name"},
			{"type": "Container", "items": [
				{"type": "Input.Number", "id": "age"}
			]},
			{"type": "ColumnSet", "columns": [
				{"items": [{"type": "Input.Toggle", "id": "subscribe"}]}
			]}
		]
	}`)

	inputs := result.Card.GetAllInputs()
	require.Len(t, inputs, 3)

	ids := make([]string, len(inputs))
	for i, in := range inputs {
		ids[i] = in.ID()
	}
	assert.Equal(t, []string{"name", "age", "subscribe"}, ids)
}

func TestGetAllInputsDescendsShowCard(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{"type": "Input.Text", "id": "outer"}],
		"actions": [{
			"type": "Action.ShowCard",
			"card": {
				"type": "AdaptiveCard",
				"body": [{"type": "Input.Text", "id": "inner"}]
			}
		}]
	}`)

	inputs := result.Card.GetAllInputs()
	require.Len(t, inputs, 2)
	assert.Equal(t, "outer", inputs[0].ID())
	assert.Equal(t, "inner", inputs[1].ID())
}

func TestGetAllInputsDescendsActionSet(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{
			"type": "Container",
			"items": [
				{"type": "Input.Text", "id": "first"},
				{"type": "Input.Text", "id": "second"},
				{"type": "ActionSet", "actions": [{
					"type": "Action.ShowCard",
					"card": {
						"type": "AdaptiveCard",
						"body": [{"type": "Input.Text", "id": "third"}]
					}
				}]}
			]
		}]
	}`)

	inputs := result.Card.GetAllInputs()
	require.Len(t, inputs, 3)
	assert.Equal(t, "first", inputs[0].ID())
	assert.Equal(t, "second", inputs[1].ID())
	assert.Equal(t, "third", inputs[2].ID())
}

func TestGetAllInputsEmpty(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{"type": "TextBlock", "text": "no inputs here"}]
	}`)

	assert.Empty(t, result.Card.GetAllInputs())
}

func TestSupportedBy(t *testing.T) {
	c := &AdaptiveCard{MinVersion: Version{Major: 1, Minor: 2}}

	assert.True(t, c.SupportedBy(Version{Major: 1, Minor: 2}))
	assert.True(t, c.SupportedBy(Version{Major: 1, Minor: 5}))
	assert.True(t, c.SupportedBy(Version{Major: 2, Minor: 0}))
	assert.False(t, c.SupportedBy(Version{Major: 1, Minor: 1}))
	assert.False(t, c.SupportedBy(Version{Major: 0, Minor: 9}))
}

func TestChoiceSetDefaultFromSelection(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{
			"type": "Input.ChoiceSet",
			"id": "colors",
			"isMultiSelect": true,
			"choices": [
				{"title": "Red", "value": "r", "isSelected": true},
				{"title": "Green", "value": "g"},
				{"title": "Blue", "value": "b", "isSelected": true}
			]
		}]
	}`)

	cs, ok := result.Card.Items()[0].(*ChoiceSetInput)
	require.True(t, ok)
	assert.Equal(t, "r;b", cs.Value())

	// An explicit default wins over the selection-derived one.
	result = mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{
			"type": "Input.ChoiceSet",
			"id": "colors",
			"value": "g",
			"choices": [{"title": "Red", "value": "r", "isSelected": true}]
		}]
	}`)

	cs, ok = result.Card.Items()[0].(*ChoiceSetInput)
	require.True(t, ok)
	assert.Equal(t, "g", cs.Value())
}

func TestToggleInputDefaults(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{"type": "Input.Toggle", "id": "opt"}]
	}`)

	toggle, ok := result.Card.Items()[0].(*ToggleInput)
	require.True(t, ok)
	assert.Equal(t, "true", toggle.ValueOn)
	assert.Equal(t, "false", toggle.ValueOff)
}

func TestInputValueRoundTrip(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{"type": "Input.Text", "id": "name", "value": "default"}]
	}`)

	in := result.Card.GetAllInputs()[0]
	assert.Equal(t, "default", in.Value())

	in.SetValue("edited")
	assert.Equal(t, "edited", in.Value())
}
