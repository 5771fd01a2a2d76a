package download

import (
	"os"
	"strings"
	"time"

	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/log"
	"github.com/appecho/alpha/where"
)

// PartialTTL is how long an unfinished download may stay on disk.
const PartialTTL = 24 * time.Hour

// CollectGarbage removes partial downloads older than PartialTTL
// left behind by interrupted runs.
func CollectGarbage() {
	dir := where.Downloads()
	removed := sweep(dir, time.Now())
	if removed > 0 {
		log.Infof("removed %d partial downloads from %s", removed, dir)
	}
}

func sweep(dir string, now time.Time) (removed int) {
	fs := filesystem.API()
	_ = fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, ".part") {
			return nil
		}
		if now.Sub(info.ModTime()) > PartialTTL && fs.Remove(path) == nil {
			removed++
		}
		return nil
	})
	return removed
}
