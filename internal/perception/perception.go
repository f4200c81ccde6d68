// Package perception implements the agent's perception contract: a pure
// function from (pose, scene, range) to a discovered PointSet. The
// interface is normative for a GPU-backed implementation (spec.md §4.8);
// this package ships the CPU hash-based fallback ported from
// original_source/crates/sim_agent/src/perception.rs, behind the same
// Perceiver contract, satisfying the "identical functional contract"
// requirement spec.md places on any retained CPU implementation.
package perception

import (
	"hash/maphash"
	"math"
	"math/rand"

	"github.com/holographic-c2/simulation/internal/pointset"
)

// Pose is an agent's position in the ECEF frame, meters.
type Pose struct {
	X, Y, Z float64
}

// Perceiver is the perception contract: pure with respect to (pose, range)
// for a fixed scene, aside from the noise model's own randomness.
type Perceiver interface {
	Perceive(pose Pose, rangeM float64) (*pointset.PointSet, error)
}

// GridPerceiver is the CPU hash-based fallback: a grid-based simulated scan
// around pose, with a distance-weighted detection probability and a noise
// term, mirroring perception.rs's discover_points exactly in shape.
type GridPerceiver struct {
	scanResolution uint32
	noiseLevel     float64
	rng            *rand.Rand
	seed           maphash.Seed
}

// NewGridPerceiver builds a GridPerceiver with the given scan grid
// resolution (cells per axis) and noise level in [0,1].
func NewGridPerceiver(scanResolution uint32, noiseLevel float64) *GridPerceiver {
	return &GridPerceiver{
		scanResolution: scanResolution,
		noiseLevel:     noiseLevel,
		rng:            rand.New(rand.NewSource(1)),
		seed:           maphash.MakeSeed(),
	}
}

// Perceive scans a cubic grid of scanResolution^3 candidate points centered
// on pose out to rangeM, including each with a probability that decreases
// with distance and is perturbed by the configured noise level.
func (g *GridPerceiver) Perceive(pose Pose, rangeM float64) (*pointset.PointSet, error) {
	discovered := pointset.New()
	if g.scanResolution == 0 || rangeM <= 0 {
		return discovered, nil
	}

	gridSize := rangeM / float64(g.scanResolution)
	half := float64(g.scanResolution) / 2.0

	for i := uint32(0); i < g.scanResolution; i++ {
		for j := uint32(0); j < g.scanResolution; j++ {
			for k := uint32(0); k < g.scanResolution; k++ {
				ox := (float64(i) - half) * gridSize
				oy := (float64(j) - half) * gridSize
				oz := (float64(k) - half) * gridSize

				distance := euclideanNorm(ox, oy, oz)
				if distance > rangeM {
					continue
				}

				detectionProbability := (rangeM - distance) / rangeM
				noiseFactor := 1.0 - g.noiseLevel*g.rng.Float64()

				if detectionProbability*noiseFactor > 0.5 {
					px, py, pz := pose.X+ox, pose.Y+oy, pose.Z+oz
					discovered.Add(hashPoint(g.seed, px, py, pz))
				}
			}
		}
	}

	return discovered, nil
}

func euclideanNorm(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

// hashPoint discretizes coordinates to millimeters to avoid floating-point
// precision issues, then hashes to a consistent point id mod 1,000,000 --
// the same discretization and range perception.rs uses.
func hashPoint(seed maphash.Seed, x, y, z float64) uint32 {
	var h maphash.Hash
	h.SetSeed(seed)

	dx := int64(x * 1000.0)
	dy := int64(y * 1000.0)
	dz := int64(z * 1000.0)

	var buf [24]byte
	putInt64(buf[0:8], dx)
	putInt64(buf[8:16], dy)
	putInt64(buf[16:24], dz)
	_, _ = h.Write(buf[:])

	return uint32(h.Sum64() % 1_000_000)
}

func putInt64(b []byte, v int64) {
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(u >> (8 * i))
	}
}

// DecodeKernelBuffer reads a GPU-kernel output buffer laid out per
// spec.md §4.8: one 32-bit atomic counter at offset 0, followed by up to N
// u32 indices. The read length is the counter value, not the buffer's
// capacity, defending against the transient over-writes the source observed
// from the GPU device; a counter larger than the number of indices the
// buffer holds is cut down to that number.
func DecodeKernelBuffer(buf []byte) []uint32 {
	if len(buf) < 4 {
		return nil
	}
	count := le32(buf[0:4])
	maxIndices := uint32(len(buf)-4) / 4
	if count > maxIndices {
		count = maxIndices
	}

	out := make([]uint32, 0, count)
	for i := uint32(0); i < count; i++ {
		off := 4 + i*4
		out = append(out, le32(buf[off:off+4]))
	}
	return out
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
