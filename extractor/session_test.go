package extractor

import (
	"testing"
	"time"

	"github.com/anilink-cli/anilink/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestSessionRelease(t *testing.T) {
	Convey("Session.Release", t, func() {
		filesystem.SetMemMapFs()

		profileDir := "/tmp/anilink/profile-test"
		So(filesystem.API().MkdirAll(profileDir, 0o755), ShouldBeNil)
		So(afero.WriteFile(filesystem.API(), profileDir+"/Preferences", []byte("{}"), 0o644), ShouldBeNil)

		var taskCancels, allocCancels int
		session := &Session{
			taskCancel:  func() { taskCancels++ },
			allocCancel: func() { allocCancels++ },
			profileDir:  profileDir,
			started:     time.Now(),
		}

		Convey("Should cancel both contexts and remove the profile directory", func() {
			session.Release()

			So(taskCancels, ShouldEqual, 1)
			So(allocCancels, ShouldEqual, 1)

			exists, err := afero.DirExists(filesystem.API(), profileDir)
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("Should tear down exactly once across repeated calls", func() {
			session.Release()
			session.Release()
			session.Release()

			So(taskCancels, ShouldEqual, 1)
			So(allocCancels, ShouldEqual, 1)
		})
	})
}
