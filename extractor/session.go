package extractor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/anilink-cli/anilink/constant"
	"github.com/anilink-cli/anilink/filesystem"
	"github.com/anilink-cli/anilink/key"
	"github.com/anilink-cli/anilink/log"
	"github.com/anilink-cli/anilink/where"
	cdpbrowser "github.com/chromedp/cdproto/browser"
	"github.com/chromedp/chromedp"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Options configures the browser-automation session.
type Options struct {
	// Headless runs the browser without a display surface.
	Headless bool
	// Bin is the browser binary path; empty uses the system default.
	Bin string
	// Width and Height fix the viewport dimensions.
	Width, Height int
}

// OptionsFromConfig builds session Options from the global configuration.
func OptionsFromConfig() Options {
	return Options{
		Headless: viper.GetBool(key.BrowserHeadless),
		Bin:      viper.GetString(key.BrowserBin),
		Width:    viper.GetInt(key.BrowserWidth),
		Height:   viper.GetInt(key.BrowserHeight),
	}
}

// Session owns one browser-automation handle and its ephemeral profile
// directory for the duration of a run. It is exclusively held by the active
// coordinator invocation and torn down exactly once on every exit path.
type Session struct {
	taskCtx     context.Context
	taskCancel  context.CancelFunc
	allocCancel context.CancelFunc
	profileDir  string
	started     time.Time
	release     sync.Once
}

// Acquire launches an isolated browser backed by a fresh ephemeral profile.
func Acquire(parent context.Context, opts Options) (*Session, error) {
	profileDir, err := afero.TempDir(filesystem.API(), where.Temp(), "profile-")
	if err != nil {
		return nil, fmt.Errorf("create browser profile: %w", err)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.WindowSize(opts.Width, opts.Height),
		chromedp.UserDataDir(profileDir),
		chromedp.UserAgent(constant.UserAgent),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if !opts.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}
	if opts.Bin != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.Bin))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, allocOpts...)
	taskCtx, taskCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so acquisition failures surface here, and
	// refuse downloads for the lifetime of the session.
	err = chromedp.Run(taskCtx,
		cdpbrowser.SetDownloadBehavior(cdpbrowser.SetDownloadBehaviorBehaviorDeny),
	)
	if err != nil {
		taskCancel()
		allocCancel()
		if rmErr := filesystem.API().RemoveAll(profileDir); rmErr != nil {
			log.Warnf("remove browser profile %s: %v", profileDir, rmErr)
		}
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	log.Infof("browser session acquired, profile %s", profileDir)
	return &Session{
		taskCtx:     taskCtx,
		taskCancel:  taskCancel,
		allocCancel: allocCancel,
		profileDir:  profileDir,
		started:     time.Now(),
	}, nil
}

// run executes actions on the task context while honoring the caller's
// deadline. Canceling a child of the chromedp task context breaks the target
// in chromedp v0.14, so the bound comes from a select instead.
func (s *Session) run(ctx context.Context, actions ...chromedp.Action) error {
	done := make(chan error, 1)
	go func() {
		done <- chromedp.Run(s.taskCtx, actions...)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Navigate loads the given address, bounded by ctx.
func (s *Session) Navigate(ctx context.Context, url string) error {
	return s.run(ctx, chromedp.Navigate(url))
}

// SimulateGesture clicks the page body and presses the play hotkey.
func (s *Session) SimulateGesture(ctx context.Context) error {
	return s.run(ctx,
		chromedp.Click("body", chromedp.ByQuery),
		chromedp.KeyEvent("k"),
	)
}

// Content returns the currently rendered page markup.
func (s *Session) Content(ctx context.Context) (string, error) {
	var html string
	err := s.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery))
	return html, err
}

// ElementCount counts the elements matching a CSS selector on the current page.
func (s *Session) ElementCount(ctx context.Context, selector string) (int, error) {
	var count int
	expr := fmt.Sprintf("document.querySelectorAll(%q).length", selector)
	err := s.run(ctx, chromedp.Evaluate(expr, &count))
	return count, err
}

// Started returns the session acquisition timestamp.
func (s *Session) Started() time.Time {
	return s.started
}

// Release terminates the browser and removes the ephemeral profile directory.
// It is safe to call on every exit path; the teardown runs exactly once.
func (s *Session) Release() {
	s.release.Do(func() {
		s.taskCancel()
		s.allocCancel()
		if err := filesystem.API().RemoveAll(s.profileDir); err != nil {
			log.Warnf("remove browser profile %s: %v", s.profileDir, err)
		}
		log.Infof("browser session released after %s", time.Since(s.started))
	})
}
