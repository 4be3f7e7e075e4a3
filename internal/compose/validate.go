package compose

import "strings"

// Missing returns the required fields the state does not yet satisfy for its
// current post type. String fields count when non-empty after trimming;
// the carousel counts when it holds at least CarouselMin non-empty entries.
// The result is computed fresh on every call so switching post types never
// reuses a stale verdict.
func Missing(s *PostState) ([]Field, error) {
	required, _, ok := Rules(s.Type)
	if !ok {
		return nil, UnknownTypeError{Type: s.Type}
	}

	var missing []Field
	for _, f := range required {
		if !satisfied(s, f) {
			missing = append(missing, f)
		}
	}
	return missing, nil
}

// CanSubmit reports whether the state is submit-eligible. Unknown post types
// are never eligible.
func CanSubmit(s *PostState) bool {
	missing, err := Missing(s)
	return err == nil && len(missing) == 0
}

func satisfied(s *PostState, f Field) bool {
	if f == FieldCarouselURLs {
		return len(carouselEntries(s)) >= CarouselMin
	}
	return strings.TrimSpace(stringField(s, f)) != ""
}

func stringField(s *PostState, f Field) string {
	switch f {
	case FieldCaption:
		return s.Caption
	case FieldImageURL:
		return s.ImageURL
	case FieldVideoURL:
		return s.VideoURL
	case FieldCoverImageURL:
		return s.CoverImageURL
	case FieldArticleURL:
		return s.ArticleURL
	}
	return ""
}

// carouselEntries returns the carousel URLs with blank entries dropped,
// preserving order.
func carouselEntries(s *PostState) []string {
	out := make([]string, 0, len(s.CarouselURLs))
	for _, u := range s.CarouselURLs {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}
