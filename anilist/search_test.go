package anilist

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anilink-cli/anilink/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGetByID(t *testing.T) {
	Convey("GetByID", t, func() {
		viper.Set(key.MetadataCacheEnable, false)

		Convey("Should decode a well-formed Media response", func(c C) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.Method, ShouldEqual, http.MethodPost)
				c.So(r.Header.Get("Content-Type"), ShouldEqual, "application/json")
				w.Write([]byte(`{"data":{"Media":{"id":21,"title":{"romaji":"One Piece","english":"One Piece","native":"ワンピース"},"episodes":24,"coverImage":{"extraLarge":"https://img.example/cover.png"},"averageScore":88}}}`))
			}))
			defer server.Close()
			Endpoint = server.URL

			anime, err := GetByID(21)
			So(err, ShouldBeNil)
			So(anime.ID, ShouldEqual, 21)
			So(anime.Episodes, ShouldEqual, 24)
			So(anime.AverageScore, ShouldEqual, 88)
			So(anime.CoverImage.ExtraLarge, ShouldEqual, "https://img.example/cover.png")
			So(anime.Name(), ShouldEqual, "One Piece")
		})

		Convey("Should report a missing Media record as an error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":{"Media":null}}`))
			}))
			defer server.Close()
			Endpoint = server.URL

			anime, err := GetByID(404)
			So(err, ShouldNotBeNil)
			So(anime, ShouldBeNil)
		})

		Convey("Should report a non-success status as an error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			}))
			defer server.Close()
			Endpoint = server.URL

			_, err := GetByID(21)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestAnimeName(t *testing.T) {
	Convey("Anime.Name", t, func() {
		Convey("Should prefer the romaji title", func() {
			a := &Anime{}
			a.Title.Romaji = "Shingeki no Kyojin"
			a.Title.English = "Attack on Titan"
			So(a.Name(), ShouldEqual, "Shingeki no Kyojin")
		})

		Convey("Should fall back to the english title", func() {
			a := &Anime{}
			a.Title.English = "Attack on Titan"
			So(a.Name(), ShouldEqual, "Attack on Titan")
		})

		Convey("Should synthesize a placeholder when no title exists", func() {
			a := &Anime{ID: 16498}
			So(a.Name(), ShouldEqual, "Anime 16498")
		})
	})
}
