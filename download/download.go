// Package download saves the media behind a descriptor to disk.
package download

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/key"
	"github.com/appecho/alpha/log"
	"github.com/appecho/alpha/media"
	"github.com/appecho/alpha/network"
	"github.com/appecho/alpha/where"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/viper"
)

// Options configure a download.
type Options struct {
	// Dir is the root directory. Files go to a subdirectory per kind of content.
	Dir        string
	AudioCover bool
	// Progress receives a progress bar per file. Nil disables it.
	Progress io.Writer
	Network  network.Options

	// flat writes straight into Dir
	flat bool
}

// OptionsFromConfig reads the downloads.* settings.
func OptionsFromConfig(progress io.Writer) Options {
	return Options{
		Dir:        where.Downloads(),
		AudioCover: viper.GetBool(key.DownloadsAudioCover),
		Progress:   progress,
		Network:    network.OptionsFromConfig(),
	}
}

// Descriptor downloads every file of d and returns the written paths.
// A failed cover download is logged and does not fail the audio download.
func Descriptor(ctx context.Context, d *media.Descriptor, opts Options) ([]string, error) {
	sources := d.Downloadables()
	if len(sources) == 0 {
		return nil, fmt.Errorf("%s: nothing to download", d)
	}

	var paths []string
	for i, source := range sources {
		name := d.Filename()
		if len(sources) > 1 {
			name = fmt.Sprintf("%s_%02d", name, i+1)
		}

		p, err := file(ctx, source, name, d.Type, opts)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}

	if d.Type == media.Audio && opts.AudioCover && d.Cover != "" {
		cover, err := file(ctx, d.Cover, d.Filename(), media.Gallery, Options{Dir: filepath.Dir(paths[0]), Network: opts.Network, flat: true})
		if err != nil {
			log.With(log.Fields{"id": d.ID, "cover": d.Cover}).WithError(err).Warn("cover download failed")
		} else {
			paths = append(paths, cover)
		}
	}

	return paths, nil
}

func file(ctx context.Context, source, name string, kind media.Type, opts Options) (string, error) {
	resp, err := network.Get(ctx, source, nil, opts.Network)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	dir := opts.Dir
	if !opts.flat {
		dir = filepath.Join(dir, Category(contentType, kind))
	}
	target := filepath.Join(dir, name+Extension(source, contentType))

	var body io.Reader = resp.Body
	if opts.Progress != nil {
		bar := progressbar.NewOptions64(
			resp.ContentLength,
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription(filepath.Base(target)),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Finish() }()
		body = io.TeeReader(resp.Body, bar)
	}

	written, err := filesystem.WriteAtomic(target, body)
	if err != nil {
		return "", err
	}

	log.With(log.Fields{"path": target, "bytes": written}).Info("downloaded")
	return target, nil
}

// Category names the subdirectory for a file from its content type,
// falling back to the descriptor type.
func Category(contentType string, kind media.Type) string {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	switch {
	case strings.HasPrefix(mediaType, "video/"):
		return "Video"
	case strings.HasPrefix(mediaType, "audio/"):
		return "Audio"
	case strings.HasPrefix(mediaType, "image/"):
		return "Image"
	}

	switch kind {
	case media.Video:
		return "Video"
	case media.Audio:
		return "Audio"
	case media.Gallery:
		return "Image"
	default:
		return "Other"
	}
}

var extensions = map[string]string{
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"video/quicktime": ".mov",
	"audio/mpeg":      ".mp3",
	"audio/mp4":       ".m4a",
	"audio/aac":       ".aac",
	"audio/ogg":       ".ogg",
	"audio/wav":       ".wav",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
}

// Extension picks a file extension from the URL path, then from the content type.
func Extension(source, contentType string) string {
	if u, err := url.Parse(source); err == nil {
		ext := strings.ToLower(path.Ext(u.Path))
		if len(ext) > 1 && len(ext) <= 5 {
			return ext
		}
	}

	mediaType, _, _ := mime.ParseMediaType(contentType)
	if ext, ok := extensions[mediaType]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return ".bin"
}
