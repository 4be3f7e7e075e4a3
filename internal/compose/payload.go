package compose

import "strings"

// Build produces the outbound payload for the state's current post type.
// The base object always carries the node_type/post_type discriminator pair,
// the target node id, and a text key, which may be empty when the caption is
// optional for the type. Type-specific keys are layered in per the registry's
// shape rules; a field that is neither required nor optional for the current
// type never reaches the payload, even when it still holds a value from a
// prior type selection.
func Build(s *PostState, nodeID string) (Payload, error) {
	required, optional, ok := Rules(s.Type)
	if !ok {
		return nil, UnknownTypeError{Type: s.Type}
	}

	p := Payload{
		"node_type": string(s.Type.Platform()),
		"post_type": s.Type.Kind(),
		"node_id":   nodeID,
		"text":      strings.TrimSpace(s.Caption),
	}

	for _, f := range append(append([]Field{}, required...), optional...) {
		switch f {
		case FieldCaption:
			// already part of the base object
		case FieldCarouselURLs:
			if entries := carouselEntries(s); len(entries) > 0 {
				p[payloadKeys[f]] = entries
			}
		default:
			if v := strings.TrimSpace(stringField(s, f)); v != "" {
				p[payloadKeys[f]] = v
			}
		}
	}

	return p, nil
}
