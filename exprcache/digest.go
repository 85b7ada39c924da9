package exprcache

import (
	"fmt"
	"hash/fnv"

	"github.com/axobase/egde/envstate"
)

// genomeHashPrefixLen and envDigestLen are the two halves of a cache key
// : (genomeHash16 || envDigest8).
const (
	genomeHashPrefixLen = 16
	envDigestLen        = 8
)

// Key derives the cache key for genomeHash and env. It truncates rather than
// rehashes the genome hash (the genome hash is already a SHA-256 digest) and
// hashes the coarse environment digest down to envDigestLen hex characters.
func Key(genomeHash string, env envstate.State) string {
	prefix := genomeHash
	if len(prefix) > genomeHashPrefixLen {
		prefix = prefix[:genomeHashPrefixLen]
	}
	return prefix + envDigest(env)
}

// envDigest quantises env into coarse buckets so
// that two environments bucketing the same way are contractually
// interchangeable for expression: balance to 10-unit buckets, starvation
// days to 2-day buckets, thriving days to 7-day buckets, stress into
// {low, med, high}, plus the mode word and a deceived/trusted/neutral flag.
func envDigest(env envstate.State) string {
	bucketed := fmt.Sprintf("%d|%d|%d|%s|%s|%s",
		bucket(env.Balance, 10),
		bucket(env.DaysStarving, 2),
		bucket(env.DaysThriving, 7),
		stressBucket(env.StressLevel),
		env.Mode,
		trustFlag(env),
	)
	h := fnv.New32a()
	_, _ = h.Write([]byte(bucketed))
	return fmt.Sprintf("%0*x", envDigestLen, h.Sum32())[:envDigestLen]
}

func bucket(v float64, size float64) int64 {
	return int64(v/size) * int64(size)
}

func stressBucket(stress float64) string {
	switch {
	case stress < 0.33:
		return "low"
	case stress < 0.66:
		return "med"
	default:
		return "high"
	}
}

func trustFlag(env envstate.State) string {
	if env.RecentDeceptionCount > 0 {
		return "deceived"
	}
	if env.CooperationCount > 0 {
		return "trusted"
	}
	return "neutral"
}
