package report

import (
	"testing"

	"github.com/anilink-cli/anilink/filesystem"
	"github.com/anilink-cli/anilink/source"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/samber/mo"
	"github.com/spf13/afero"
)

func testReport() *source.Report {
	return &source.Report{
		Title: source.Title{
			ID:    21,
			Name:  "One Piece",
			Cover: "https://img.example/one-piece.jpg",
			Score: mo.Some(86),
		},
		Results: []source.StreamResult{
			{Episode: 1, URL: "https://cdn.example/ep1/master.m3u8", Attempts: 3},
			{Episode: 2, URL: "", Attempts: 25},
			{Episode: 3, URL: "https://cdn.example/ep3/master.m3u8", Attempts: 5},
		},
	}
}

func TestWriteListing(t *testing.T) {
	Convey("WriteListing", t, func() {
		filesystem.SetMemMapFs()

		Convey("Should write one line per discovered episode", func() {
			path, err := WriteListing(testReport())
			So(err, ShouldBeNil)
			So(path, ShouldEndWith, "anilink_21_videos.txt")

			raw, err := afero.ReadFile(filesystem.API(), path)
			So(err, ShouldBeNil)
			So(string(raw), ShouldEqual,
				"Episode 1: https://cdn.example/ep1/master.m3u8\n"+
					"Episode 3: https://cdn.example/ep3/master.m3u8\n")
		})

		Convey("Should replace a previous listing for the same title", func() {
			r := testReport()
			_, err := WriteListing(r)
			So(err, ShouldBeNil)

			r.Results = r.Results[:1]
			path, err := WriteListing(r)
			So(err, ShouldBeNil)

			raw, err := afero.ReadFile(filesystem.API(), path)
			So(err, ShouldBeNil)
			So(string(raw), ShouldEqual, "Episode 1: https://cdn.example/ep1/master.m3u8\n")
		})
	})
}

func TestRenderHTML(t *testing.T) {
	Convey("RenderHTML", t, func() {
		filesystem.SetMemMapFs()

		Convey("Should render the title, cover and per-episode links", func() {
			path, err := RenderHTML(testReport())
			So(err, ShouldBeNil)
			So(path, ShouldEndWith, "One_Piece.html")

			raw, err := afero.ReadFile(filesystem.API(), path)
			So(err, ShouldBeNil)

			page := string(raw)
			So(page, ShouldContainSubstring, "<h1>One Piece</h1>")
			So(page, ShouldContainSubstring, "https://img.example/one-piece.jpg")
			So(page, ShouldContainSubstring, "Average score: 86/100")
			So(page, ShouldContainSubstring, `<a href="https://cdn.example/ep1/master.m3u8">Episode 1</a>`)
			So(page, ShouldContainSubstring, "Episode 2 (no stream found)")
			So(page, ShouldContainSubstring, "2 of 3 episodes resolved.")
			So(page, ShouldNotContainSubstring, "stopped early")
		})

		Convey("Should flag a truncated run", func() {
			r := testReport()
			r.Truncated = true

			path, err := RenderHTML(r)
			So(err, ShouldBeNil)

			raw, err := afero.ReadFile(filesystem.API(), path)
			So(err, ShouldBeNil)
			So(string(raw), ShouldContainSubstring, "stopped early")
		})

		Convey("Should omit the score block when no score is known", func() {
			r := testReport()
			r.Title.Score = mo.None[int]()

			path, err := RenderHTML(r)
			So(err, ShouldBeNil)

			raw, err := afero.ReadFile(filesystem.API(), path)
			So(err, ShouldBeNil)
			So(string(raw), ShouldNotContainSubstring, "Average score")
		})
	})
}
