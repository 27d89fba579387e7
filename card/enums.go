package card

import jsoniter "github.com/json-iterator/go"

// jsonCodec is the package-wide JSON codec, configured for drop-in
// compatibility with encoding/json semantics.
var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// HorizontalAlignment positions an element along the horizontal axis.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

var alignmentNames = map[HorizontalAlignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// ParseHorizontalAlignment maps a JSON string to an alignment.
// Unrecognized values fall back to AlignLeft.
func ParseHorizontalAlignment(s string) HorizontalAlignment {
	switch s {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

func (h HorizontalAlignment) String() string { return alignmentNames[h] }

// SeparationStyle controls the visual gap between an element and its
// predecessor.
type SeparationStyle int

const (
	SeparationDefault SeparationStyle = iota
	SeparationNone
	SeparationStrong
)

var separationNames = map[SeparationStyle]string{
	SeparationDefault: "default",
	SeparationNone:    "none",
	SeparationStrong:  "strong",
}

// ParseSeparationStyle maps a JSON string to a separation style.
// Unrecognized values fall back to SeparationDefault.
func ParseSeparationStyle(s string) SeparationStyle {
	switch s {
	case "none":
		return SeparationNone
	case "strong":
		return SeparationStrong
	default:
		return SeparationDefault
	}
}

func (s SeparationStyle) String() string { return separationNames[s] }

// ImageStyle selects normal or circular-cropped person rendering.
type ImageStyle int

const (
	ImageNormal ImageStyle = iota
	ImagePerson
)

// ParseImageStyle maps a JSON string to an image style.
func ParseImageStyle(s string) ImageStyle {
	if s == "person" {
		return ImagePerson
	}
	return ImageNormal
}

func (s ImageStyle) String() string {
	if s == ImagePerson {
		return "person"
	}
	return "normal"
}

// ImageSize selects the rendered size of an image.
type ImageSize int

const (
	SizeAuto ImageSize = iota
	SizeStretch
	SizeSmall
	SizeMedium
	SizeLarge
)

var imageSizeNames = map[ImageSize]string{
	SizeAuto:    "auto",
	SizeStretch: "stretch",
	SizeSmall:   "small",
	SizeMedium:  "medium",
	SizeLarge:   "large",
}

// ParseImageSize maps a JSON string to an image size.
// Unrecognized values fall back to SizeAuto.
func ParseImageSize(s string) ImageSize {
	switch s {
	case "stretch":
		return SizeStretch
	case "small":
		return SizeSmall
	case "medium":
		return SizeMedium
	case "large":
		return SizeLarge
	default:
		return SizeAuto
	}
}

func (s ImageSize) String() string { return imageSizeNames[s] }

// TextSize selects the rendered size of a text block.
type TextSize int

const (
	TextSizeNormal TextSize = iota
	TextSizeSmall
	TextSizeMedium
	TextSizeLarge
	TextSizeExtraLarge
)

var textSizeNames = map[TextSize]string{
	TextSizeNormal:     "normal",
	TextSizeSmall:      "small",
	TextSizeMedium:     "medium",
	TextSizeLarge:      "large",
	TextSizeExtraLarge: "extraLarge",
}

// ParseTextSize maps a JSON string to a text size.
func ParseTextSize(s string) TextSize {
	switch s {
	case "small":
		return TextSizeSmall
	case "medium":
		return TextSizeMedium
	case "large":
		return TextSizeLarge
	case "extraLarge":
		return TextSizeExtraLarge
	default:
		return TextSizeNormal
	}
}

func (s TextSize) String() string { return textSizeNames[s] }

// TextWeight selects the rendered weight of a text block.
type TextWeight int

const (
	TextWeightNormal TextWeight = iota
	TextWeightLighter
	TextWeightBolder
)

var textWeightNames = map[TextWeight]string{
	TextWeightNormal:  "normal",
	TextWeightLighter: "lighter",
	TextWeightBolder:  "bolder",
}

// ParseTextWeight maps a JSON string to a text weight.
func ParseTextWeight(s string) TextWeight {
	switch s {
	case "lighter":
		return TextWeightLighter
	case "bolder":
		return TextWeightBolder
	default:
		return TextWeightNormal
	}
}

func (w TextWeight) String() string { return textWeightNames[w] }

// TextColor selects a semantic text color resolved by the host theme.
type TextColor int

const (
	ColorDefault TextColor = iota
	ColorDark
	ColorLight
	ColorAccent
	ColorGood
	ColorWarning
	ColorAttention
)

var textColorNames = map[TextColor]string{
	ColorDefault:   "default",
	ColorDark:      "dark",
	ColorLight:     "light",
	ColorAccent:    "accent",
	ColorGood:      "good",
	ColorWarning:   "warning",
	ColorAttention: "attention",
}

// ParseTextColor maps a JSON string to a text color.
func ParseTextColor(s string) TextColor {
	switch s {
	case "dark":
		return ColorDark
	case "light":
		return ColorLight
	case "accent":
		return ColorAccent
	case "good":
		return ColorGood
	case "warning":
		return ColorWarning
	case "attention":
		return ColorAttention
	default:
		return ColorDefault
	}
}

func (c TextColor) String() string { return textColorNames[c] }

// TextInputStyle hints the host keyboard/control type for a text input.
type TextInputStyle int

const (
	InputStyleText TextInputStyle = iota
	InputStyleTel
	InputStyleURL
	InputStyleEmail
)

// ParseTextInputStyle maps a JSON string to a text input style.
func ParseTextInputStyle(s string) TextInputStyle {
	switch s {
	case "tel":
		return InputStyleTel
	case "url":
		return InputStyleURL
	case "email":
		return InputStyleEmail
	default:
		return InputStyleText
	}
}

func (s TextInputStyle) String() string {
	switch s {
	case InputStyleTel:
		return "tel"
	case InputStyleURL:
		return "url"
	case InputStyleEmail:
		return "email"
	default:
		return "text"
	}
}

// ChoiceSetStyle selects compact (dropdown) or expanded (radio/checkbox)
// presentation for a choice set.
type ChoiceSetStyle int

const (
	ChoiceSetCompact ChoiceSetStyle = iota
	ChoiceSetExpanded
)

// ParseChoiceSetStyle maps a JSON string to a choice set style.
func ParseChoiceSetStyle(s string) ChoiceSetStyle {
	if s == "expanded" {
		return ChoiceSetExpanded
	}
	return ChoiceSetCompact
}

func (s ChoiceSetStyle) String() string {
	if s == ChoiceSetExpanded {
		return "expanded"
	}
	return "compact"
}
