package source

import (
	"testing"

	"github.com/anilink-cli/anilink/anilist"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTitleFromAnilist(t *testing.T) {
	Convey("TitleFromAnilist", t, func() {
		Convey("Should carry over known fields", func() {
			anime := &anilist.Anime{ID: 21, Episodes: 24, AverageScore: 88}
			anime.Title.Romaji = "One Piece"
			anime.CoverImage.ExtraLarge = "https://img.example/cover.png"

			title := TitleFromAnilist(anime)
			So(title.ID, ShouldEqual, 21)
			So(title.Name, ShouldEqual, "One Piece")
			So(title.Cover, ShouldEqual, "https://img.example/cover.png")
			So(title.Episodes.MustGet(), ShouldEqual, 24)
			So(title.Score.MustGet(), ShouldEqual, 88)
		})

		Convey("Should leave unknown counts and scores absent", func() {
			title := TitleFromAnilist(&anilist.Anime{ID: 5})
			So(title.Episodes.IsAbsent(), ShouldBeTrue)
			So(title.Score.IsAbsent(), ShouldBeTrue)
			So(title.Name, ShouldEqual, "Anime 5")
		})
	})
}

func TestNewEpisodeTarget(t *testing.T) {
	Convey("NewEpisodeTarget", t, func() {
		target := NewEpisodeTarget("https://www.miruro.to/watch", 21, 3)
		So(target.Index, ShouldEqual, 3)
		So(target.WatchURL, ShouldEqual, "https://www.miruro.to/watch/21/episode-3")
		So(target.String(), ShouldEqual, "Episode 3")
	})
}

func TestReportFound(t *testing.T) {
	Convey("Report.Found", t, func() {
		report := &Report{
			Results: []StreamResult{
				{Episode: 1, URL: "https://cdn.example/1.m3u8", Attempts: 3},
				{Episode: 2, URL: "", Attempts: 25},
				{Episode: 3, URL: "https://cdn.example/3.mp4", Attempts: 1},
			},
		}

		found := report.Found()
		So(found, ShouldHaveLength, 2)
		So(found[0].Episode, ShouldEqual, 1)
		So(found[1].Episode, ShouldEqual, 3)
	})
}
