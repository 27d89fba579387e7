package card

import "fmt"

// ImageSet renders an ordered gallery of images. Each image inherits
// the set's default size unless it declares its own.
type ImageSet struct {
	BaseElement

	ImageSize ImageSize

	images []*Image
}

// TypeName returns "ImageSet".
func (s *ImageSet) TypeName() string { return TypeImageSet }

// Images returns the owned images in document order.
func (s *ImageSet) Images() []*Image {
	return s.images
}

// AddImage appends an image and attaches it to the set.
func (s *ImageSet) AddImage(img *Image) error {
	if err := img.SetParent(s); err != nil {
		return err
	}
	s.images = append(s.images, img)
	return nil
}

// Children returns the images as elements for tree walks.
func (s *ImageSet) Children() []Element {
	children := make([]Element, len(s.images))
	for i, img := range s.images {
		children[i] = img
	}
	return children
}

// Parse fills the set, parsing each image before attaching it. Images
// that declared no size of their own inherit the set default.
func (s *ImageSet) Parse(p *Parser, raw []byte) error {
	if err := s.parseBase(raw); err != nil {
		return err
	}

	var wire struct {
		ImageSize string    `json:"imageSize"`
		Images    []jsonRaw `json:"images"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	s.ImageSize = ParseImageSize(wire.ImageSize)

	for _, imgRaw := range wire.Images {
		el, ok := p.ParseElement(withDefaultType(imgRaw, TypeImage))
		if !ok {
			continue
		}
		img, ok := el.(*Image)
		if !ok {
			p.warnf(CodeParseFailed, "ImageSet entry is not an Image")
			continue
		}

		if img.Size == SizeAuto {
			img.Size = s.ImageSize
		}
		if err := s.AddImage(img); err != nil {
			return err
		}
	}

	return nil
}

// Validate descends into each image.
func (s *ImageSet) Validate(ctx ValidateContext) []ValidationError {
	var errs []ValidationError
	for i, img := range s.images {
		errs = append(errs, img.Validate(ctx.At(fmt.Sprintf("images[%d]", i)))...)
	}
	return errs
}

// MarshalJSON serializes the set back to its wire form.
func (s *ImageSet) MarshalJSON() ([]byte, error) {
	images := make([]jsonRaw, 0, len(s.images))
	for _, img := range s.images {
		data, err := img.MarshalJSON()
		if err != nil {
			return nil, err
		}
		images = append(images, data)
	}

	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseWire
		ImageSize string    `json:"imageSize"`
		Images    []jsonRaw `json:"images"`
	}{
		Type:      TypeImageSet,
		baseWire:  s.baseFields(),
		ImageSize: s.ImageSize.String(),
		Images:    images,
	})
}

// withDefaultType injects a type tag into a node that lacks one. The
// images array traditionally omits per-entry tags, since every entry is
// an Image.
func withDefaultType(raw jsonRaw, tag string) jsonRaw {
	var probe struct {
		Type string `json:"type"`
	}
	if err := jsonCodec.Unmarshal(raw, &probe); err != nil || probe.Type != "" {
		return raw
	}

	var node map[string]jsonRaw
	if err := jsonCodec.Unmarshal(raw, &node); err != nil {
		return raw
	}
	if node == nil {
		node = make(map[string]jsonRaw, 1)
	}
	node["type"] = jsonRaw(fmt.Sprintf("%q", tag))

	out, err := jsonCodec.Marshal(node)
	if err != nil {
		return raw
	}
	return out
}
