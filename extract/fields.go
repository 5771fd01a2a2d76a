package extract

// Field is a descriptor slot: the placeholders a mapping uses for it, in priority
// order, and the key names searched when the mapping finds nothing.
type Field struct {
	Name         string
	Placeholders []string
	Keys         []string
}

var addressPlaceholders = []string{"${videoUrl}", "${url}", "${address}", "${imageUrls}"}

var (
	Title = Field{
		Name:         "title",
		Placeholders: []string{"${title}", "${tag}"},
		Keys:         []string{"title", "name", "tag"},
	}
	Author = Field{
		Name:         "author",
		Placeholders: []string{"${author}", "${name}"},
		Keys:         []string{"author", "uploader", "nickname", "creator", "name"},
	}
	Cover = Field{
		Name:         "cover",
		Placeholders: []string{"${cover}", "${thumbnail}"},
		Keys:         []string{"cover", "coverUrl", "thumb", "thumbnail", "poster"},
	}
	Description = Field{
		Name:         "description",
		Placeholders: []string{"${description}", "${desc}"},
		Keys:         []string{"description", "desc", "content", "summary"},
	}
	Duration = Field{
		Name:         "duration",
		Placeholders: []string{"${duration}", "${length}"},
		Keys:         []string{"duration", "length", "time"},
	}
	MediaURL = Field{
		Name:         "url",
		Placeholders: addressPlaceholders,
		Keys:         []string{"url", "video", "play", "playUrl", "audio", "src"},
	}
	Images = Field{
		Name:         "images",
		Placeholders: addressPlaceholders,
		Keys:         []string{"images", "image", "pics", "photos", "urls", "url", "src"},
	}
)

// Fields lists every slot, mostly for display.
var Fields = []Field{Title, Author, Cover, Description, Duration, MediaURL, Images}
