// SPDX-License-Identifier: MIT
// Stochastic shapes. A probability of exactly 0 or 1 needs no RNG; anything
// strictly between requires one (ErrNeedRandSource). Each pair is one trial
// and an edge appears iff rng.Float64() < p, so a seed fixes the graph.

package builder

import "fmt"

// coin validates p ∈ [0, 1] and reports whether trials with it consume
// randomness.
func coin(method string, p float64) (random bool, err error) {
	if !(p >= 0 && p <= 1) {
		return false, fmt.Errorf("%s: p=%.6f outside [0,1]: %w", method, p, ErrInvalidProbability)
	}

	return p > 0 && p < 1, nil
}

// hit runs one Bernoulli(p) trial.
func (c builderConfig) hit(p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	}

	return c.rng.Float64() < p
}

// RandomSparse appends one Erdős–Rényi G(n, p) block, n ≥ 1. Trials visit
// pairs (i, j), i < j, in lexicographic order.
func RandomSparse(n int, p float64) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if err := atLeast("RandomSparse", n, 1); err != nil {
			return err
		}
		random, err := coin("RandomSparse", p)
		if err != nil {
			return err
		}
		if random && cfg.rng == nil {
			return fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrNeedRandSource)
		}

		return acc.sample("RandomSparse", cfg, acc.addBlock(n), n, p)
	}
}

// PlantedPartition appends a stochastic block model: one block per entry of
// sizes, so Graph.Blocks is the planted ground truth. Pairs inside a
// community connect with pIn, pairs across communities with pOut.
//
// Trial order: every community's internal pairs (community by community),
// then all cross pairs (i, j), i < j, over the whole model.
func PlantedPartition(sizes []int, pIn, pOut float64) Constructor {
	const method = "PlantedPartition"

	return func(acc *Accumulator, cfg builderConfig) error {
		if len(sizes) == 0 {
			return fmt.Errorf("%s: no communities: %w", method, ErrTooFewVertices)
		}
		for c, s := range sizes {
			if s < 1 {
				return fmt.Errorf("%s: community %d has size %d: %w", method, c, s, ErrTooFewVertices)
			}
		}
		randIn, err := coin(method, pIn)
		if err != nil {
			return err
		}
		randOut, err := coin(method, pOut)
		if err != nil {
			return err
		}
		if (randIn || randOut) && cfg.rng == nil {
			return fmt.Errorf("%s: pIn=%.6f pOut=%.6f: %w", method, pIn, pOut, ErrNeedRandSource)
		}

		bases := make([]int, len(sizes))
		for c, s := range sizes {
			bases[c] = acc.addBlock(s)
		}
		for c, s := range sizes {
			if err = acc.sample(method, cfg, bases[c], s, pIn); err != nil {
				return err
			}
		}
		if pOut == 0 {
			return nil
		}
		for i := bases[0]; i < acc.n; i++ {
			for j := i + 1; j < acc.n; j++ {
				if acc.blocks[i] == acc.blocks[j] || !cfg.hit(pOut) {
					continue
				}
				if err = acc.link(method, i, j, cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// sample runs one trial per pair inside [base, base+n).
func (a *Accumulator) sample(method string, cfg builderConfig, base, n int, p float64) error {
	if p == 0 {
		return nil
	}
	for i := base; i < base+n; i++ {
		for j := i + 1; j < base+n; j++ {
			if !cfg.hit(p) {
				continue
			}
			if err := a.link(method, i, j, cfg); err != nil {
				return err
			}
		}
	}

	return nil
}
