package extractor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anilink-cli/anilink/source"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestPoller(clock Clock) *Poller {
	return &Poller{
		MaxAttempts:    25,
		SettleInterval: 1200 * time.Millisecond,
		LoadTimeout:    5 * time.Second,
		Clock:          clock,
	}
}

func TestFirstStreamURL(t *testing.T) {
	Convey("FirstStreamURL", t, func() {
		Convey("Should recognize HLS playlists", func() {
			url, ok := FirstStreamURL(`<script>play("https://cdn.example/master.m3u8")</script>`)
			So(ok, ShouldBeTrue)
			So(url, ShouldEqual, "https://cdn.example/master.m3u8")
		})

		Convey("Should recognize MP4 files", func() {
			url, ok := FirstStreamURL(`<video src="https://cdn.example/ep1.mp4">`)
			So(ok, ShouldBeTrue)
			So(url, ShouldEqual, "https://cdn.example/ep1.mp4")
		})

		Convey("Should prefer HLS when both formats appear in one scan", func() {
			content := `<video src="https://cdn.example/ep1.mp4"></video>
				<script>hls.load("https://cdn.example/master.m3u8")</script>`
			url, ok := FirstStreamURL(content)
			So(ok, ShouldBeTrue)
			So(url, ShouldEqual, "https://cdn.example/master.m3u8")
		})

		Convey("Should report nothing on a bare page", func() {
			_, ok := FirstStreamURL("<html><body>loading</body></html>")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestPollerPoll(t *testing.T) {
	Convey("Poller.Poll", t, func() {
		clock := newFakeClock()
		poller := newTestPoller(clock)
		target := source.NewEpisodeTarget("https://www.miruro.to/watch", 21, 1)

		Convey("Should find the stream URL and record the attempt number", func() {
			browser := newFakeBrowser()
			browser.foundOn[target.WatchURL] = 3
			browser.payload[target.WatchURL] = "https://cdn.example/ep1/master.m3u8"

			result := poller.Poll(context.Background(), browser, target)
			So(result.Found(), ShouldBeTrue)
			So(result.URL, ShouldEqual, "https://cdn.example/ep1/master.m3u8")
			So(result.Attempts, ShouldEqual, 3)
		})

		Convey("Should exhaust all attempts when no URL ever appears", func() {
			browser := newFakeBrowser()

			result := poller.Poll(context.Background(), browser, target)
			So(result.Found(), ShouldBeFalse)
			So(result.Attempts, ShouldEqual, poller.MaxAttempts)
		})

		Convey("Should mark the episode not found on navigation failure without polling", func() {
			browser := newFakeBrowser()
			browser.navErr[target.WatchURL] = errors.New("net::ERR_CONNECTION_RESET")

			result := poller.Poll(context.Background(), browser, target)
			So(result.Found(), ShouldBeFalse)
			So(result.Attempts, ShouldEqual, 0)
		})

		Convey("Should swallow gesture failures and keep polling", func() {
			browser := newFakeBrowser()
			browser.gestureErr = errors.New("element not interactable")
			browser.foundOn[target.WatchURL] = 2
			browser.payload[target.WatchURL] = "https://cdn.example/ep1.mp4"

			result := poller.Poll(context.Background(), browser, target)
			So(result.Found(), ShouldBeTrue)
			So(result.Attempts, ShouldEqual, 2)
		})

		Convey("Should contain content-read failures to the attempt", func() {
			browser := newFakeBrowser()
			browser.contentErr = errors.New("target crashed")

			result := poller.Poll(context.Background(), browser, target)
			So(result.Found(), ShouldBeFalse)
			So(result.Attempts, ShouldEqual, poller.MaxAttempts)
		})

		Convey("Should sleep the settle interval once per attempt", func() {
			browser := newFakeBrowser()
			browser.foundOn[target.WatchURL] = 5
			browser.payload[target.WatchURL] = "https://cdn.example/ep1.mp4"

			before := clock.Now()
			poller.Poll(context.Background(), browser, target)
			So(clock.Now().Sub(before), ShouldEqual, 5*poller.SettleInterval)
		})
	})
}
