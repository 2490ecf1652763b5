package extractor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/anilink-cli/anilink/anilist"
	"github.com/anilink-cli/anilink/constant"
	"github.com/anilink-cli/anilink/key"
	"github.com/anilink-cli/anilink/log"
	"github.com/anilink-cli/anilink/notify"
	"github.com/anilink-cli/anilink/source"
	"github.com/anilink-cli/anilink/util"
	"github.com/spf13/viper"
)

// ErrMetadataUnavailable indicates the upstream metadata lookup failed.
// No browser session is opened when this is returned.
var ErrMetadataUnavailable = errors.New("title metadata unavailable")

// EpisodeListSelector matches the per-episode buttons on a watch page,
// used to probe the site's own episode count.
const EpisodeListSelector = "#episodes-list-container button"

// Config captures the tunables governing one extraction run.
type Config struct {
	// WatchBase is the episode page URL prefix.
	WatchBase string
	// EpisodeCap is the hard cap on episodes attempted, independent of source counts.
	EpisodeCap int
	// FallbackCount substitutes for an absent authoritative episode count.
	FallbackCount int
	// RunTimeout is the global wall-clock budget, checked between episodes.
	RunTimeout time.Duration
	// DetectTimeout bounds the site episode-count probe.
	DetectTimeout time.Duration
	// EpisodeCooldown is the pause between consecutive episodes.
	EpisodeCooldown time.Duration
}

// ConfigFromViper builds a run Config from the global configuration.
func ConfigFromViper() Config {
	return Config{
		WatchBase:       constant.WatchBase,
		EpisodeCap:      viper.GetInt(key.ExtractorEpisodeCap),
		FallbackCount:   viper.GetInt(key.ExtractorFallbackCount),
		RunTimeout:      viper.GetDuration(key.ExtractorRunTimeout),
		DetectTimeout:   viper.GetDuration(key.ExtractorDetectTimeout),
		EpisodeCooldown: viper.GetDuration(key.ExtractorEpisodeCooldown),
	}
}

// Lookup resolves title metadata for an identifier.
type Lookup func(id int) (*anilist.Anime, error)

// SessionFactory opens a browser session and returns its release routine.
// Tests substitute fixtures; production uses ChromeSessionFactory.
type SessionFactory func(ctx context.Context) (Browser, func(), error)

// ChromeSessionFactory adapts Acquire/Release to the SessionFactory contract.
func ChromeSessionFactory(opts Options) SessionFactory {
	return func(ctx context.Context) (Browser, func(), error) {
		session, err := Acquire(ctx, opts)
		if err != nil {
			return nil, nil, err
		}
		return session, session.Release, nil
	}
}

// Deps bundles the collaborators of a Coordinator. Nil fields receive
// production defaults.
type Deps struct {
	Config   Config
	Lookup   Lookup
	Sessions SessionFactory
	Poller   *Poller
	Clock    Clock
	Notifier notify.Service
}

// Coordinator serializes extraction runs, enforces the global run budget, and
// aggregates per-episode outcomes into a report.
type Coordinator struct {
	// mu is the process-wide extraction lock: at most one run at a time.
	mu sync.Mutex

	cfg      Config
	lookup   Lookup
	sessions SessionFactory
	poller   *Poller
	clock    Clock
	notifier notify.Service
}

// NewCoordinator builds a Coordinator, substituting production defaults for
// absent dependencies.
func NewCoordinator(deps Deps) *Coordinator {
	if deps.Lookup == nil {
		deps.Lookup = anilist.GetByID
	}
	if deps.Sessions == nil {
		deps.Sessions = ChromeSessionFactory(OptionsFromConfig())
	}
	if deps.Poller == nil {
		deps.Poller = PollerFromConfig()
	}
	if deps.Clock == nil {
		deps.Clock = SystemClock{}
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.NewService()
	}

	return &Coordinator{
		cfg:      deps.Config,
		lookup:   deps.Lookup,
		sessions: deps.Sessions,
		poller:   deps.Poller,
		clock:    deps.Clock,
		notifier: deps.Notifier,
	}
}

// Run extracts stream URLs for every reachable episode of the identified
// title and aggregates the outcomes into a report.
//
// The whole body executes under the process-wide extraction lock; concurrent
// callers queue. The global budget is consulted only between episodes, so a
// run can overshoot the deadline by at most one episode's worst-case polling
// duration before the report is marked truncated.
func (c *Coordinator) Run(ctx context.Context, id int) (*source.Report, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := c.clock.Now()

	anime, err := c.lookup(id)
	if err != nil || anime == nil {
		log.Errorf("metadata lookup for %d failed: %v", id, err)
		c.notifier.RunFailed(id, ErrMetadataUnavailable)
		return nil, ErrMetadataUnavailable
	}

	title := source.TitleFromAnilist(anime)
	report := &source.Report{Title: title}

	browser, release, err := c.sessions(ctx)
	if err != nil {
		c.notifier.RunFailed(id, err)
		return nil, fmt.Errorf("acquire session: %w", err)
	}
	defer release()

	probed := c.detectEpisodeCount(ctx, browser, id)
	effective := EffectiveCount(c.cfg.EpisodeCap, c.cfg.FallbackCount, title.Episodes, probed)

	log.Infof("extracting %s: %s", title.Name, util.Quantify(effective, "episode", "episodes"))
	c.notifier.RunStarted(title.Name, effective)

	for index := 1; index <= effective; index++ {
		if c.clock.Now().Sub(start) > c.cfg.RunTimeout {
			log.Warnf("run budget %s exceeded, stopping before episode %d", c.cfg.RunTimeout, index)
			report.Truncated = true
			break
		}

		if index > 1 && c.cfg.EpisodeCooldown > 0 {
			c.clock.Sleep(c.cfg.EpisodeCooldown)
		}

		target := source.NewEpisodeTarget(c.cfg.WatchBase, id, index)
		result := c.poller.Poll(ctx, browser, target)
		report.Results = append(report.Results, result)

		if result.Found() {
			log.Infof("episode %d resolved on attempt %d", result.Episode, result.Attempts)
			c.notifier.EpisodeResolved(result.Episode, result.URL)
		} else {
			log.Warnf("episode %d not found after %d attempts", result.Episode, result.Attempts)
			c.notifier.EpisodeMissed(result.Episode)
		}
	}

	c.notifier.RunCompleted(title.Name, len(report.Found()))
	return report, nil
}

// detectEpisodeCount probes the site's own episode count against the first
// episode page. Failure is non-fatal and reported as zero.
func (c *Coordinator) detectEpisodeCount(ctx context.Context, browser Browser, id int) int {
	target := source.NewEpisodeTarget(c.cfg.WatchBase, id, 1)

	detectCtx, cancel := context.WithTimeout(ctx, c.cfg.DetectTimeout)
	defer cancel()

	if err := browser.Navigate(detectCtx, target.WatchURL); err != nil {
		log.Warnf("episode count probe failed: %v", err)
		return 0
	}

	count, err := browser.ElementCount(detectCtx, EpisodeListSelector)
	if err != nil {
		log.Warnf("episode count probe failed: %v", err)
		return 0
	}

	log.Infof("site reports %s", util.Quantify(count, "episode", "episodes"))
	return count
}
