// Package report renders extraction run artifacts: the plain-text episode
// listing and the HTML summary page.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/anilink-cli/anilink/filesystem"
	"github.com/anilink-cli/anilink/source"
	"github.com/anilink-cli/anilink/where"
	"github.com/spf13/afero"
)

// ListingPath returns the destination of the plain-text listing for a title.
func ListingPath(id int) string {
	return filepath.Join(where.Output(), fmt.Sprintf("anilink_%d_videos.txt", id))
}

// WriteListing renders the discovered stream URLs as one line per episode
// and writes them under the output directory, replacing any previous listing
// for the same title. Episodes without a discovered stream are omitted.
func WriteListing(r *source.Report) (string, error) {
	var sb strings.Builder
	for _, result := range r.Found() {
		fmt.Fprintf(&sb, "Episode %d: %s\n", result.Episode, result.URL)
	}

	path := ListingPath(r.Title.ID)
	if err := afero.WriteFile(filesystem.API(), path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("write listing: %w", err)
	}
	return path, nil
}
