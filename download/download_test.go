package download

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/media"
	"github.com/appecho/alpha/network"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCategoryAndExtension(t *testing.T) {
	Convey("Category should prefer the content type", t, func() {
		So(Category("video/mp4", media.Audio), ShouldEqual, "Video")
		So(Category("audio/mpeg; charset=binary", media.Video), ShouldEqual, "Audio")
		So(Category("image/png", media.Video), ShouldEqual, "Image")
		So(Category("application/octet-stream", media.Gallery), ShouldEqual, "Image")
		So(Category("", media.Type("General")), ShouldEqual, "Other")
	})

	Convey("Extension should prefer the URL path", t, func() {
		So(Extension("https://cdn/a/clip.MP4?sig=1", "video/webm"), ShouldEqual, ".mp4")
		So(Extension("https://cdn/play", "video/webm"), ShouldEqual, ".webm")
		So(Extension("https://cdn/play", "image/jpeg"), ShouldEqual, ".jpg")
		So(Extension("https://cdn/play", ""), ShouldEqual, ".bin")
	})
}

func TestDescriptor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/song":
			w.Header().Set("Content-Type", "audio/mpeg")
			_, _ = w.Write([]byte("mp3 bytes"))
		case "/cover":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("png bytes"))
		case "/img/1.jpg", "/img/2.jpg":
			_, _ = w.Write([]byte(r.URL.Path))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	opts := Options{
		Dir:     "/downloads",
		Network: network.Options{ConnectTimeout: time.Second, ReadTimeout: time.Second},
	}

	Convey("Given an audio descriptor with a cover", t, func() {
		d := &media.Descriptor{ID: "1", Title: "Song", Author: "Band", Type: media.Audio, URL: server.URL + "/song", Cover: server.URL + "/cover"}

		Convey("The audio and its cover should be saved side by side", func() {
			opts.AudioCover = true
			var progress bytes.Buffer
			opts.Progress = &progress

			paths, err := Descriptor(context.Background(), d, opts)
			So(err, ShouldBeNil)
			So(paths, ShouldResemble, []string{
				filepath.Join("/downloads", "Audio", "Song_-_Band.mp3"),
				filepath.Join("/downloads", "Audio", "Song_-_Band.png"),
			})

			data, err := filesystem.API().ReadFile(paths[0])
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "mp3 bytes")
		})

		Convey("A failing cover should not fail the download", func() {
			opts.AudioCover = true
			d.Cover = server.URL + "/missing"
			paths, err := Descriptor(context.Background(), d, opts)
			So(err, ShouldBeNil)
			So(len(paths), ShouldEqual, 1)
		})
	})

	Convey("Given a gallery descriptor", t, func() {
		d := &media.Descriptor{ID: "2", Title: "Pics", Author: "Me", Type: media.Gallery,
			Images: []string{server.URL + "/img/1.jpg", server.URL + "/img/2.jpg"}}

		Convey("Every image should be numbered", func() {
			paths, err := Descriptor(context.Background(), d, opts)
			So(err, ShouldBeNil)
			So(paths, ShouldResemble, []string{
				filepath.Join("/downloads", "Image", "Pics_-_Me_01.jpg"),
				filepath.Join("/downloads", "Image", "Pics_-_Me_02.jpg"),
			})
		})
	})

	Convey("A missing file should fail", t, func() {
		d := &media.Descriptor{ID: "3", Title: "X", Author: "Y", Type: media.Video, URL: server.URL + "/gone"}
		_, err := Descriptor(context.Background(), d, opts)
		So(err, ShouldNotBeNil)
	})
}

func TestSweep(t *testing.T) {
	Convey("Given a downloads directory with partial files", t, func() {
		fs := filesystem.API()
		dir := "/sweep"
		now := time.Now()

		for name, age := range map[string]time.Duration{
			"Video/old.mp4.part":   48 * time.Hour,
			"Video/fresh.mp4.part": time.Minute,
			"Audio/old.mp3":        48 * time.Hour,
		} {
			p := filepath.Join(dir, name)
			So(fs.WriteFile(p, []byte("x"), 0o644), ShouldBeNil)
			So(fs.Chtimes(p, now.Add(-age), now.Add(-age)), ShouldBeNil)
		}

		Convey("Only stale partial files should be removed", func() {
			So(sweep(dir, now), ShouldEqual, 1)
			So(lo.Must(fs.Exists(filepath.Join(dir, "Video/old.mp4.part"))), ShouldBeFalse)
			So(lo.Must(fs.Exists(filepath.Join(dir, "Video/fresh.mp4.part"))), ShouldBeTrue)
			So(lo.Must(fs.Exists(filepath.Join(dir, "Audio/old.mp3"))), ShouldBeTrue)
		})
	})
}
