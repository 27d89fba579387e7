package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/cardkit/registry"
)

func mustParse(t *testing.T, doc string) *ParseResult {
	t.Helper()
	result, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.NotNil(t, result.Card)
	return result
}

func TestParseMinimalCard(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"minVersion": "1.0",
		"body": [
			{"type": "TextBlock", "text": "hello", "size": "large", "weight": "bolder"}
		]
	}`)

	assert.Empty(t, result.Warnings)
	require.Len(t, result.Card.Items(), 1)

	tb, ok := result.Card.Items()[0].(*TextBlock)
	require.True(t, ok)
	assert.Equal(t, "hello", tb.Text)
	assert.Equal(t, TextSizeLarge, tb.Size)
	assert.Equal(t, TextWeightBolder, tb.Weight)
	assert.Same(t, result.Card, tb.Parent().(*AdaptiveCard))
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"type": "AdaptiveCard",`))
	assert.Error(t, err)
}

func TestParseFaultIsolation(t *testing.T) {
	// One unknown node drops; siblings parse normally.
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [
			{"type": "TextBlock", "text": "first"},
			{"type": "Hologram", "text": "nope"},
			{"type": "TextBlock", "text": "last"}
		]
	}`)

	require.Len(t, result.Card.Items(), 2)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, CodeUnknownElementType, result.Warnings[0].Code)
	assert.Contains(t, result.Warnings[0].Message, "Hologram")
}

func TestParseUnknownActionType(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"actions": [
			{"type": "Action.Teleport", "title": "go"},
			{"type": "Action.OpenUrl", "title": "open", "url": "https://example.com"}
		]
	}`)

	require.Len(t, result.Card.Actions().Items(), 1)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, CodeUnknownActionType, result.Warnings[0].Code)
}

func TestParseErrorChannel(t *testing.T) {
	var seen []ParseWarning
	p := NewParser(WithParseErrorHandler(func(w ParseWarning) {
		seen = append(seen, w)
	}))

	result, err := p.Parse([]byte(`{
		"type": "AdaptiveCard",
		"body": [{"type": "Mystery"}]
	}`))
	require.NoError(t, err)

	// The callback fires synchronously and the warning list still
	// carries the same event.
	require.Len(t, seen, 1)
	assert.Equal(t, CodeUnknownElementType, seen[0].Code)
	assert.Equal(t, seen, result.Warnings)
}

func TestParseMinVersion(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		want     Version
		warnings int
	}{
		{
			name: "explicit version",
			doc:  `{"type": "AdaptiveCard", "minVersion": "2.3"}`,
			want: Version{Major: 2, Minor: 3},
		},
		{
			name: "omitted version defaults",
			doc:  `{"type": "AdaptiveCard"}`,
			want: DefaultVersion,
		},
		{
			name:     "malformed version keeps default",
			doc:      `{"type": "AdaptiveCard", "minVersion": "banana"}`,
			want:     DefaultVersion,
			warnings: 1,
		},
		{
			name:     "partial version keeps default",
			doc:      `{"type": "AdaptiveCard", "minVersion": "2"}`,
			want:     DefaultVersion,
			warnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mustParse(t, tt.doc)
			assert.Equal(t, tt.want, result.Card.MinVersion)
			assert.Len(t, result.Warnings, tt.warnings)
		})
	}
}

func TestParseUnrecognizedFieldsIgnored(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"futureField": {"nested": true},
		"body": [{"type": "TextBlock", "text": "hi", "futureStyle": 7}]
	}`)

	assert.Empty(t, result.Warnings)
	assert.Len(t, result.Card.Items(), 1)
}

func TestParseColumnWeights(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{
			"type": "ColumnSet",
			"columns": [
				{"size": "auto", "items": []},
				{"size": "stretch", "items": []},
				{"size": "40", "items": []}
			]
		}]
	}`)

	cs, ok := result.Card.Items()[0].(*ColumnSet)
	require.True(t, ok)
	require.Len(t, cs.Columns(), 3)

	assert.Equal(t, WeightAuto, cs.Columns()[0].Weight)
	assert.Equal(t, WeightStretch, cs.Columns()[1].Weight)
	assert.Equal(t, 40, cs.Columns()[2].Weight)
}

func TestParseImageSetSizeInheritance(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{
			"type": "ImageSet",
			"imageSize": "medium",
			"images": [
				{"url": "https://x/a.png"},
				{"url": "https://x/b.png", "size": "large"}
			]
		}]
	}`)

	set, ok := result.Card.Items()[0].(*ImageSet)
	require.True(t, ok)
	require.Len(t, set.Images(), 2)

	assert.Equal(t, SizeMedium, set.Images()[0].Size, "default inherited from set")
	assert.Equal(t, SizeLarge, set.Images()[1].Size, "explicit size kept")
}

func TestParseImageSelectAction(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"body": [{
			"type": "Image",
			"url": "https://x/a.png",
			"selectAction": {"type": "Action.OpenUrl", "url": "https://example.com"}
		}]
	}`)

	img, ok := result.Card.Items()[0].(*Image)
	require.True(t, ok)
	require.NotNil(t, img.SelectAction())

	// The select action is invoked, not owned: no parent assigned.
	assert.Nil(t, img.SelectAction().Parent())
}

func TestParseNestedShowCard(t *testing.T) {
	result := mustParse(t, `{
		"type": "AdaptiveCard",
		"actions": [{
			"type": "Action.ShowCard",
			"title": "more",
			"card": {
				"type": "AdaptiveCard",
				"body": [{"type": "Input.Text", "id": "comment"}]
			}
		}]
	}`)

	show, ok := result.Card.Actions().Items()[0].(*ShowCardAction)
	require.True(t, ok)
	require.NotNil(t, show.Card())
	assert.Len(t, show.Card().Items(), 1)
}

func TestCustomTypeRegistration(t *testing.T) {
	elements, actions := DefaultRegistries()

	type rating struct{ TextBlock }
	require.NoError(t, elements.Register(&registry.Registration[Element]{
		Tag:     "Rating",
		Factory: func() Element { return &rating{} },
	}))

	p := NewParser(WithRegistries(elements, actions))
	result, err := p.Parse([]byte(`{
		"type": "AdaptiveCard",
		"body": [{"type": "Rating", "text": "5 stars"}]
	}`))
	require.NoError(t, err)

	assert.Empty(t, result.Warnings)
	require.Len(t, result.Card.Items(), 1)
	assert.IsType(t, &rating{}, result.Card.Items()[0])
}

func TestParserReusableAcrossDocuments(t *testing.T) {
	p := NewParser()

	first, err := p.Parse([]byte(`{"type": "AdaptiveCard", "body": [{"type": "Ghost"}]}`))
	require.NoError(t, err)
	assert.Len(t, first.Warnings, 1)

	// Warnings reset between Parse calls.
	second, err := p.Parse([]byte(`{"type": "AdaptiveCard"}`))
	require.NoError(t, err)
	assert.Empty(t, second.Warnings)
}

func TestMarshalRoundTrip(t *testing.T) {
	doc := `{
		"type": "AdaptiveCard",
		"minVersion": "1.1",
		"fallbackText": "upgrade please",
		"body": [
			{"type": "TextBlock", "text": "hello"},
			{"type": "FactSet", "facts": [{"title": "k", "value": "v"}]}
		],
		"actions": [{"type": "Action.OpenUrl", "title": "go", "url": "https://example.com"}]
	}`

	first := mustParse(t, doc)
	data, err := first.Card.MarshalJSON()
	require.NoError(t, err)

	second, err := Parse(data)
	require.NoError(t, err)
	assert.Empty(t, second.Warnings)

	assert.Equal(t, first.Card.MinVersion, second.Card.MinVersion)
	assert.Equal(t, first.Card.FallbackText, second.Card.FallbackText)
	require.Len(t, second.Card.Items(), 2)
	require.Len(t, second.Card.Actions().Items(), 1)

	tb, ok := second.Card.Items()[0].(*TextBlock)
	require.True(t, ok)
	assert.Equal(t, "hello", tb.Text)
}
