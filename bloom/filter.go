package bloom

import (
	"math"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-sieve/hashpair"
)

// filter holds the parameters and counters common to every filter type.
type filter struct {
	size   uint64
	k      uint8
	added  uint64
	hasher hashpair.Hasher
	log    logger.Logger

	// saturated latches on the first saturation event.
	saturated bool
}

func newFilter(size uint64, k uint8, o Options) filter {
	return filter{size: size, k: k, hasher: o.Hasher, log: o.Log}
}

// Size returns the configured size in bits.
func (f *filter) Size() uint64 { return f.size }

// K returns the number of probes per key.
func (f *filter) K() uint8 { return f.k }

// Added returns the number of insertions, duplicates included.
func (f *filter) Added() uint64 { return f.added }

func (f *filter) debugf(format string, args ...any) {
	if f.log == nil {
		return
	}
	f.log.Debugf(format, args...)
}

// noteSaturated logs the first time any counter reaches its maximum. From
// then on Lookup may under-report for keys sharing that bucket.
func (f *filter) noteSaturated(kind string, bucket uint64, limit uint8) {
	if f.saturated {
		return
	}
	f.saturated = true
	if f.log == nil {
		return
	}
	f.log.Infof("%s: bucket %d saturated at %d after %d insertions", kind, bucket, limit, f.added)
}

// collisionProbability estimates (1 - e^(-k*n/m))^k. It overestimates as the
// filter fills with repeated keys, since n counts duplicates.
func collisionProbability(k uint8, n, m uint64) float64 {
	if m == 0 {
		return 1
	}
	kf := float64(k)
	return math.Pow(1-math.Exp(-kf*float64(n)/float64(m)), kf)
}
