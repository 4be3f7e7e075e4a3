package compose

// CarouselMin is the platform minimum number of carousel images.
const CarouselMin = 2

// rule pairs the fields a post type requires with the optional fields its
// payload includes when present. Order is the order keys are layered into
// the payload.
type rule struct {
	required []Field
	optional []Field
}

// rules is the single source of truth for per-type field requirements and
// payload shapes. No other component may hardcode field rules.
var rules = map[PostType]rule{
	TypeText:         {required: []Field{FieldCaption}},
	TypeArticle:      {required: []Field{FieldCaption, FieldArticleURL}},
	TypeArticleImage: {required: []Field{FieldCaption, FieldImageURL}},
	TypeImage:        {required: []Field{FieldCaption, FieldImageURL}},
	TypeVideo:        {required: []Field{FieldCaption}, optional: []Field{FieldVideoURL}},
	TypeIGImage:      {required: []Field{FieldImageURL, FieldCaption}},
	TypeIGStoryImage: {required: []Field{FieldImageURL}, optional: []Field{FieldCaption}},
	TypeIGStoryVideo: {required: []Field{FieldVideoURL}, optional: []Field{FieldCaption}},
	TypeIGReel:       {required: []Field{FieldVideoURL, FieldCaption}, optional: []Field{FieldCoverImageURL}},
	TypeIGCarousel:   {required: []Field{FieldCaption, FieldCarouselURLs}},
}

// payloadKeys maps state fields to their outbound payload keys.
var payloadKeys = map[Field]string{
	FieldCaption:       "text",
	FieldImageURL:      "image_url",
	FieldVideoURL:      "video_url",
	FieldCoverImageURL: "cover_image_url",
	FieldArticleURL:    "article_url",
	FieldCarouselURLs:  "image_urls",
}

// Rules looks up the required and optional field sets for a post type.
// Pure lookup, no side effects.
func Rules(t PostType) (required, optional []Field, ok bool) {
	r, ok := rules[t]
	if !ok {
		return nil, nil, false
	}
	return r.required, r.optional, true
}

// PostTypes returns every known post type tag.
func PostTypes() []PostType {
	out := make([]PostType, 0, len(rules))
	for t := range rules {
		out = append(out, t)
	}
	return out
}
