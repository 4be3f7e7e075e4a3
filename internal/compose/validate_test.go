package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeState returns a state with every field populated so tests can
// clear exactly the field under scrutiny.
func completeState(t PostType) *PostState {
	return &PostState{
		Type:          t,
		Caption:       "a fine caption",
		ImageURL:      "https://cdn.example.com/a.jpg",
		VideoURL:      "https://cdn.example.com/a.mp4",
		CoverImageURL: "https://cdn.example.com/cover.jpg",
		ArticleURL:    "https://blog.example.com/post",
		CarouselURLs:  []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"},
	}
}

func TestCanSubmitPerType(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PostState)
		want   bool
	}{
		{"linkedin/text ready", func(s *PostState) { s.Type = TypeText }, true},
		{"linkedin/text missing caption", func(s *PostState) { s.Type = TypeText; s.Caption = "" }, false},
		{"linkedin/text whitespace caption", func(s *PostState) { s.Type = TypeText; s.Caption = "   " }, false},

		{"linkedin/article ready", func(s *PostState) { s.Type = TypeArticle }, true},
		{"linkedin/article missing url", func(s *PostState) { s.Type = TypeArticle; s.ArticleURL = "" }, false},
		{"linkedin/article missing caption", func(s *PostState) { s.Type = TypeArticle; s.Caption = "" }, false},

		{"linkedin/article-image ready", func(s *PostState) { s.Type = TypeArticleImage }, true},
		{"linkedin/article-image missing image", func(s *PostState) { s.Type = TypeArticleImage; s.ImageURL = "" }, false},

		{"linkedin/image ready", func(s *PostState) { s.Type = TypeImage }, true},
		{"linkedin/image missing image", func(s *PostState) { s.Type = TypeImage; s.ImageURL = "" }, false},

		{"linkedin/video ready without video url", func(s *PostState) { s.Type = TypeVideo; s.VideoURL = "" }, true},
		{"linkedin/video missing caption", func(s *PostState) { s.Type = TypeVideo; s.Caption = "" }, false},

		{"instagram/image ready", func(s *PostState) { s.Type = TypeIGImage }, true},
		{"instagram/image missing image", func(s *PostState) { s.Type = TypeIGImage; s.ImageURL = "" }, false},
		{"instagram/image missing caption", func(s *PostState) { s.Type = TypeIGImage; s.Caption = "" }, false},

		{"instagram/story_image ready without caption", func(s *PostState) { s.Type = TypeIGStoryImage; s.Caption = "" }, true},
		{"instagram/story_image missing image", func(s *PostState) { s.Type = TypeIGStoryImage; s.ImageURL = "" }, false},

		{"instagram/story_video ready without caption", func(s *PostState) { s.Type = TypeIGStoryVideo; s.Caption = "" }, true},
		{"instagram/story_video missing video", func(s *PostState) { s.Type = TypeIGStoryVideo; s.VideoURL = "" }, false},

		{"instagram/reel ready without cover", func(s *PostState) { s.Type = TypeIGReel; s.CoverImageURL = "" }, true},
		{"instagram/reel missing video", func(s *PostState) { s.Type = TypeIGReel; s.VideoURL = "" }, false},
		{"instagram/reel missing caption", func(s *PostState) { s.Type = TypeIGReel; s.Caption = "" }, false},

		{"instagram/carousel ready", func(s *PostState) { s.Type = TypeIGCarousel }, true},
		{"instagram/carousel missing caption", func(s *PostState) { s.Type = TypeIGCarousel; s.Caption = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := completeState(TypeText)
			tt.mutate(state)
			assert.Equal(t, tt.want, CanSubmit(state))
		})
	}
}

func TestCanSubmitCarouselMinimum(t *testing.T) {
	urls := []string{
		"https://cdn.example.com/1.jpg",
		"https://cdn.example.com/2.jpg",
		"https://cdn.example.com/3.jpg",
	}

	for count := 0; count <= len(urls); count++ {
		state := &PostState{
			Type:         TypeIGCarousel,
			Caption:      "launch week",
			CarouselURLs: urls[:count],
		}
		assert.Equal(t, count >= CarouselMin, CanSubmit(state), "with %d images", count)
	}
}

func TestCanSubmitCarouselIgnoresBlankEntries(t *testing.T) {
	state := &PostState{
		Type:         TypeIGCarousel,
		Caption:      "launch week",
		CarouselURLs: []string{"https://cdn.example.com/1.jpg", "  ", ""},
	}
	assert.False(t, CanSubmit(state))
}

func TestMissingReportsEveryAbsentField(t *testing.T) {
	missing, err := Missing(&PostState{Type: TypeIGReel})
	require.NoError(t, err)
	assert.Equal(t, []Field{FieldVideoURL, FieldCaption}, missing)
}

func TestMissingUnknownType(t *testing.T) {
	_, err := Missing(&PostState{Type: PostType("linkedin/poll")})

	var unknownErr UnknownTypeError
	require.ErrorAs(t, err, &unknownErr)
	assert.False(t, CanSubmit(&PostState{Type: PostType("linkedin/poll")}))
}

func TestValidityIsNotCachedAcrossTypeSwitches(t *testing.T) {
	state := &PostState{Type: TypeText, Caption: "hello"}
	require.True(t, CanSubmit(state))

	state.Type = TypeImage
	assert.False(t, CanSubmit(state), "switching type must invalidate prior verdict")

	state.ImageURL = "https://cdn.example.com/a.jpg"
	assert.True(t, CanSubmit(state))
}
