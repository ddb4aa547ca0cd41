package postprocess

import (
	"testing"
)

func TestFixImageURLs_Enabled(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "revision_path_and_query",
			input: `![x](https://static.wikia.nocookie.net/site/images/a/ab/Foo.png/revision/latest?cb=123)`,
			want:  `![x](https://static.wikia.nocookie.net/site/images/a/ab/Foo.png)`,
		},
		{
			name:  "scaled_variant_with_title",
			input: `![Map](https://static.wikia.nocookie.net/w/images/0/0f/Map.jpg/revision/latest/scale-to-width-down/300?cb=456&path-prefix=en "Map title")`,
			want:  `![Map](https://static.wikia.nocookie.net/w/images/0/0f/Map.jpg)`,
		},
		{
			name:  "jpeg_extension",
			input: `![p](https://static.wikia.nocookie.net/x/Photo.jpeg/revision/latest)`,
			want:  `![p](https://static.wikia.nocookie.net/x/Photo.jpeg)`,
		},
		{
			name:  "webp_extension",
			input: `![w](https://static.wikia.nocookie.net/x/Anim.webp/revision/latest?cb=1)`,
			want:  `![w](https://static.wikia.nocookie.net/x/Anim.webp)`,
		},
		{
			name:  "already_clean_url",
			input: `![x](https://static.wikia.nocookie.net/site/images/a/ab/Foo.png)`,
			want:  `![x](https://static.wikia.nocookie.net/site/images/a/ab/Foo.png)`,
		},
		{
			name:  "other_host_untouched",
			input: `![x](https://upload.wikimedia.org/wikipedia/commons/a/ab/Foo.png/revision/latest?cb=123)`,
			want:  `![x](https://upload.wikimedia.org/wikipedia/commons/a/ab/Foo.png/revision/latest?cb=123)`,
		},
		{
			name:  "uppercase_extension_untouched",
			input: `![x](https://static.wikia.nocookie.net/site/Foo.PNG/revision/latest)`,
			want:  `![x](https://static.wikia.nocookie.net/site/Foo.PNG/revision/latest)`,
		},
		{
			name:  "plain_link_not_an_image",
			input: `[x](https://static.wikia.nocookie.net/site/Foo.png/revision/latest)`,
			want:  `[x](https://static.wikia.nocookie.net/site/Foo.png/revision/latest)`,
		},
		{
			name: "multiple_images",
			input: `![a](https://static.wikia.nocookie.net/s/A.png/revision/latest?cb=1) text ` +
				`![b](https://static.wikia.nocookie.net/s/B.gif/revision/latest?cb=2)`,
			want: `![a](https://static.wikia.nocookie.net/s/A.png) text ` +
				`![b](https://static.wikia.nocookie.net/s/B.gif)`,
		},
		{
			name:  "alt_text_preserved",
			input: `![The [sic] map](https://example.com/x.png) ![alt kept](https://static.wikia.nocookie.net/s/C.jpg/revision/latest)`,
			want:  `![The [sic] map](https://example.com/x.png) ![alt kept](https://static.wikia.nocookie.net/s/C.jpg)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FixImageURLs(tt.input, true)
			if got != tt.want {
				t.Errorf("FixImageURLs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFixImageURLs_Disabled(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		`![x](https://static.wikia.nocookie.net/site/images/a/ab/Foo.png/revision/latest?cb=123)`,
		"   surrounding whitespace kept   ",
	}

	for _, input := range inputs {
		if got := FixImageURLs(input, false); got != input {
			t.Errorf("FixImageURLs(disabled) = %q, want input unchanged %q", got, input)
		}
	}
}
