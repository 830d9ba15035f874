package problem

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// minGeneratedSize, maxGeneratedSize bound the board sizes Generate will
// produce, per spec §6's random-generator contract.
const (
	minGeneratedSize = 4
	maxGeneratedSize = 24
)

// generateConfig aggregates Generate's knobs. Defaults are deterministic
// except for the clock-seeded fallback, mirroring builder.builderConfig's
// "single source of truth, options applied in order" shape.
type generateConfig struct {
	seed     int64
	hasSeed  bool
	startsAt int
}

// GenerateOption customizes Generate by mutating a generateConfig before
// the document is built.
type GenerateOption func(*generateConfig)

// WithSeed fixes the 64-bit seed driving the label shuffle. Without it,
// Generate seeds from a clock sample, matching spec §6's "optional 64-bit
// seed" contract.
func WithSeed(seed int64) GenerateOption {
	return func(c *generateConfig) {
		c.seed = seed
		c.hasSeed = true
	}
}

// WithStartsAt overrides the document's "startsAt" field (default 0).
func WithStartsAt(n int) GenerateOption {
	return func(c *generateConfig) {
		c.startsAt = n
	}
}

func newGenerateConfig(opts ...GenerateOption) generateConfig {
	cfg := generateConfig{startsAt: 0}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Generate produces a new random problem document of the given size: size
// must be even and in [4, 24]. Labels 0..size²/2-1 are each placed twice
// and permuted by a seeded Fisher-Yates shuffle; the document is wrapped in
// the "startsAt"/"problem.field.size"/"problem.field.entities" shape the
// original generator tool emits. Calling Generate twice with WithSeed(s)
// for the same size and s produces byte-identical output.
func Generate(size int, opts ...GenerateOption) ([]byte, error) {
	if size%2 != 0 || size < minGeneratedSize || size > maxGeneratedSize {
		return nil, fmt.Errorf("problem.Generate: size=%d must be even and in [%d,%d]: %w", size, minGeneratedSize, maxGeneratedSize, ErrInvalidInput)
	}

	cfg := newGenerateConfig(opts...)
	seed := cfg.seed
	if !cfg.hasSeed {
		seed = time.Now().UnixNano()
	}

	values := shuffledLabels(size, seed)
	return renderDocument(cfg.startsAt, size, values), nil
}

// shuffledLabels builds the size*size label array (each of 0..size²/2-1
// placed twice) and Fisher-Yates shuffles it under a seeded RNG.
func shuffledLabels(size int, seed int64) []int {
	cellCount := size * size
	values := make([]int, cellCount)
	for v := 0; v < cellCount/2; v++ {
		values[2*v] = v
		values[2*v+1] = v
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	return values
}

// renderDocument formats values (row-major, size x size) into the
// generator's fixed document shape.
func renderDocument(startsAt, size int, values []int) []byte {
	var sb strings.Builder
	sb.WriteString("{\n")
	fmt.Fprintf(&sb, "  \"startsAt\": %d,\n", startsAt)
	sb.WriteString("  \"problem\": {\n")
	sb.WriteString("    \"field\": {\n")
	fmt.Fprintf(&sb, "      \"size\": %d,\n", size)
	sb.WriteString("      \"entities\": [\n")
	for y := 0; y < size; y++ {
		sb.WriteString("        [")
		for x := 0; x < size; x++ {
			if x > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", values[y*size+x])
		}
		sb.WriteString("]")
		if y != size-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("      ]\n")
	sb.WriteString("    }\n")
	sb.WriteString("  }\n")
	sb.WriteString("}\n")
	return []byte(sb.String())
}
