package extractor

import (
	"github.com/anilink-cli/anilink/util"
	"github.com/samber/mo"
)

// EffectiveCount reconciles the authoritative episode count with the
// site-probed one to decide how many episodes a run will attempt.
//
// The authoritative count falls back to the configured default when absent,
// and a failed probe (zero) defers to the authoritative count. The result
// never exceeds hardCap and is never negative.
func EffectiveCount(hardCap, fallback int, authoritative mo.Option[int], probed int) int {
	a := authoritative.OrElse(fallback)
	if a <= 0 {
		a = fallback
	}

	s := probed
	if s <= 0 {
		s = a
	}

	return util.Max(0, util.Min(hardCap, a, s))
}
