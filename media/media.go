// Package media defines the descriptor produced by a successful analysis.
package media

import (
	"fmt"
	"strings"
	"time"

	"github.com/appecho/alpha/util"
	"golang.org/x/text/cases"
)

// Type is the normalized content type of a descriptor.
type Type string

const (
	Video   Type = "video"
	Audio   Type = "audio"
	Gallery Type = "gallery"
)

var synonyms = map[string]Type{
	"video":   Video,
	"视频":      Video,
	"audio":   Audio,
	"music":   Audio,
	"音频":      Audio,
	"音乐":      Audio,
	"image":   Gallery,
	"gallery": Gallery,
	"图像":      Gallery,
	"图集":      Gallery,
}

// NormalizeType maps a declared resolver type onto Video, Audio or Gallery.
// Unrecognized values pass through trimmed.
func NormalizeType(declared string) Type {
	trimmed := strings.TrimSpace(declared)

	// a Caser is stateful, so each call gets its own
	if t, ok := synonyms[cases.Fold().String(trimmed)]; ok {
		return t
	}

	return Type(trimmed)
}

// Known reports whether t is one of the three normalized types.
func (t Type) Known() bool {
	return t == Video || t == Audio || t == Gallery
}

// Descriptor is the normalized result of analysing a subject URL with one resolver.
type Descriptor struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	Cover       string   `json:"cover"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Images      []string `json:"images"`
	Type        Type     `json:"type"`
	Timestamp   int64    `json:"timestamp"`
	Subject     string   `json:"subject"`
	Resolver    string   `json:"resolver"`
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s - %s", d.Title, d.Author)
}

// Created is the creation time encoded in Timestamp.
func (d *Descriptor) Created() time.Time {
	return time.UnixMilli(d.Timestamp)
}

// Filename is a filesystem safe base name for downloads of this descriptor.
func (d *Descriptor) Filename() string {
	name := util.SanitizeFilename(d.String())
	if name == "" {
		return d.ID
	}
	return name
}

// Downloadables lists the remote files behind the descriptor: every image of a gallery,
// the media URL otherwise.
func (d *Descriptor) Downloadables() []string {
	if d.Type == Gallery && len(d.Images) > 0 {
		return d.Images
	}
	if d.URL == "" {
		return nil
	}
	return []string{d.URL}
}
