package compose

import (
	"context"
	"fmt"
	"strings"
)

// Platform identifies the automation node family a post targets.
type Platform string

const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
)

// PostType selects which fields a post requires and which payload shape is
// emitted. Tags are platform-qualified so the two "image" variants stay
// distinct.
type PostType string

const (
	TypeText         PostType = "linkedin/text"
	TypeArticle      PostType = "linkedin/article"
	TypeArticleImage PostType = "linkedin/article-image"
	TypeImage        PostType = "linkedin/image"
	TypeVideo        PostType = "linkedin/video"
	TypeIGImage      PostType = "instagram/image"
	TypeIGStoryImage PostType = "instagram/story_image"
	TypeIGStoryVideo PostType = "instagram/story_video"
	TypeIGReel       PostType = "instagram/reel"
	TypeIGCarousel   PostType = "instagram/carousel"
)

// DefaultType is the post type a fresh composition session starts with.
const DefaultType = TypeText

// Platform returns the node family half of the tag.
func (t PostType) Platform() Platform {
	tag, _, _ := strings.Cut(string(t), "/")
	return Platform(tag)
}

// Kind returns the per-platform post kind half of the tag.
func (t PostType) Kind() string {
	_, kind, _ := strings.Cut(string(t), "/")
	return kind
}

// ParsePostType resolves a platform and kind pair to a known post type.
func ParsePostType(platform, kind string) (PostType, error) {
	platform = strings.TrimSpace(strings.ToLower(platform))
	kind = strings.TrimSpace(strings.ToLower(kind))
	t := PostType(platform + "/" + kind)
	if _, ok := rules[t]; !ok {
		return "", fmt.Errorf("unsupported post type %q for platform %q", kind, platform)
	}
	return t, nil
}

// Field names a slot of a PostState that the registry can require or include.
type Field string

const (
	FieldCaption       Field = "caption"
	FieldImageURL      Field = "image_url"
	FieldVideoURL      Field = "video_url"
	FieldCoverImageURL Field = "cover_image_url"
	FieldArticleURL    Field = "article_url"
	FieldCarouselURLs  Field = "carousel_urls"
)

// PostState is the mutable aggregate owned by a composition session. A state
// is submit-eligible when every field the registry requires for its current
// type is satisfied.
type PostState struct {
	Type          PostType
	Caption       string
	ImageURL      string
	VideoURL      string
	CoverImageURL string
	ArticleURL    string
	CarouselURLs  []string
}

// NewPostState returns an empty session state at the default post type.
func NewPostState() *PostState {
	return &PostState{Type: DefaultType}
}

// Reset clears every field and reverts the post type to the default.
func (s *PostState) Reset() {
	*s = PostState{Type: DefaultType}
}

// Payload is the JSON object dispatched to the automation webhook. It is
// built fresh per submission attempt and never retained after dispatch.
type Payload map[string]any

// Dispatcher delivers a built payload to the automation endpoint.
type Dispatcher interface {
	Name() string
	Dispatch(ctx context.Context, requestID string, payload Payload) error
}
