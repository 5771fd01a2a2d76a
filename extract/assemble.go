package extract

import (
	"time"

	"github.com/appecho/alpha/jsontree"
	"github.com/appecho/alpha/media"
	"github.com/appecho/alpha/resolver"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Assembler builds descriptors. Now and NewID stamp each result.
type Assembler struct {
	Now   func() time.Time
	NewID func() string
}

// DefaultAssembler stamps descriptors with the wall clock and random UUIDs.
var DefaultAssembler = Assembler{Now: time.Now, NewID: uuid.NewString}

// Assemble extracts a descriptor with DefaultAssembler.
func Assemble(config *resolver.Config, subject string, root *jsontree.Node) mo.Option[*media.Descriptor] {
	return DefaultAssembler.Assemble(config, subject, root)
}

// Assemble extracts a descriptor from a resolver response.
// The result is absent unless title, author and a usable media URL
// (or, for galleries, at least one image) were found.
func (a Assembler) Assemble(config *resolver.Config, subject string, root *jsontree.Node) mo.Option[*media.Descriptor] {
	x := extraction{root: root, index: CompileMapping(config.Mapping)}

	descriptor := &media.Descriptor{
		Title:       x.text(Title),
		Author:      x.text(Author),
		Cover:       x.url(Cover),
		Description: x.text(Description),
		Duration:    x.text(Duration),
		Type:        media.NormalizeType(config.Type),
		Subject:     subject,
		Resolver:    config.Name,
	}

	if descriptor.Title == "" || descriptor.Author == "" {
		return mo.None[*media.Descriptor]()
	}

	switch descriptor.Type {
	case media.Gallery:
		images := x.urls(Images)
		if len(images) == 0 {
			return mo.None[*media.Descriptor]()
		}

		descriptor.Images = images
		descriptor.URL = images[0]
		if descriptor.Cover == "" {
			descriptor.Cover = images[0]
		}
	default:
		descriptor.URL = x.url(MediaURL)
		if descriptor.URL == "" {
			return mo.None[*media.Descriptor]()
		}
	}

	descriptor.ID = a.id()
	descriptor.Timestamp = a.now().UnixMilli()
	return mo.Some(descriptor)
}

func (a Assembler) id() string {
	if a.NewID == nil {
		return uuid.NewString()
	}
	return a.NewID()
}

func (a Assembler) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// extraction is one response paired with its compiled mapping.
type extraction struct {
	root  *jsontree.Node
	index Index
}

func (x extraction) mapped(f Field) []string {
	return lo.FlatMap(x.index.Paths(f.Placeholders...), func(path string, _ int) []string {
		return Resolve(x.root, path)
	})
}

func (x extraction) fallback(f Field) []string {
	return FindKeys(x.root, f.Keys...)
}

// text is the first non-blank mapped value, else the first non-blank fallback value.
func (x extraction) text(f Field) string {
	if v, ok := FirstNonBlank(x.mapped(f)); ok {
		return v
	}
	v, _ := FirstNonBlank(x.fallback(f))
	return v
}

// url is the first usable mapped URL, else the first usable fallback URL.
func (x extraction) url(f Field) string {
	if urls := UsableURLs(x.mapped(f)); len(urls) > 0 {
		return urls[0]
	}
	return lo.FirstOrEmpty(UsableURLs(x.fallback(f)))
}

// urls keeps every usable URL, mapped ones first.
func (x extraction) urls(f Field) []string {
	return UsableURLs(append(x.mapped(f), x.fallback(f)...))
}
