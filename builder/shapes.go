// SPDX-License-Identifier: MIT
// Deterministic shapes. Each appends one new block and draws one weight per
// edge, in the edge order documented on the constructor, so seeded weight
// policies stay reproducible.

package builder

import "fmt"

// atLeast rejects sizes below floor with ErrTooFewVertices.
func atLeast(method string, n, floor int) error {
	if n < floor {
		return fmt.Errorf("%s: n=%d, need at least %d: %w", method, n, floor, ErrTooFewVertices)
	}

	return nil
}

// link adds {u, v} with the next configured weight.
func (a *Accumulator) link(method string, u, v int, cfg builderConfig) error {
	if err := a.addEdge(u, v, cfg.weight()); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// Complete appends K_n (n ≥ 1). Pairs (i, j), i < j, in lexicographic order.
func Complete(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if err := atLeast("Complete", n, 1); err != nil {
			return err
		}
		base := acc.addBlock(n)
		for i := base; i < base+n; i++ {
			for j := i + 1; j < base+n; j++ {
				if err := acc.link("Complete", i, j, cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Cycle appends C_n (n ≥ 3): edges i→i+1, closed by n-1→0.
func Cycle(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if err := atLeast("Cycle", n, 3); err != nil {
			return err
		}
		base := acc.addBlock(n)
		for off := 0; off < n; off++ {
			if err := acc.link("Cycle", base+off, base+(off+1)%n, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path appends P_n (n ≥ 2): edges i→i+1.
func Path(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if err := atLeast("Path", n, 2); err != nil {
			return err
		}
		base := acc.addBlock(n)
		for v := base + 1; v < base+n; v++ {
			if err := acc.link("Path", v-1, v, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star appends a hub (the block's first vertex) joined to n-1 leaves, n ≥ 2.
func Star(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if err := atLeast("Star", n, 2); err != nil {
			return err
		}
		hub := acc.addBlock(n)
		for leaf := hub + 1; leaf < hub+n; leaf++ {
			if err := acc.link("Star", hub, leaf, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid appends a rows×cols 4-neighbour lattice numbered row-major. Every cell
// emits its right edge before its down edge. At least two cells are required.
func Grid(rows, cols int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if rows < 1 || cols < 1 || rows*cols < 2 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		base := acc.addBlock(rows * cols)
		for cell := 0; cell < rows*cols; cell++ {
			v := base + cell
			if (cell+1)%cols != 0 {
				if err := acc.link("Grid", v, v+1, cfg); err != nil {
					return err
				}
			}
			if cell+cols < rows*cols {
				if err := acc.link("Grid", v, v+cols, cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Isolated appends n vertices with no edges (n ≥ 1).
func Isolated(n int) Constructor {
	return func(acc *Accumulator, _ builderConfig) error {
		if err := atLeast("Isolated", n, 1); err != nil {
			return err
		}
		acc.addBlock(n)

		return nil
	}
}

// Bridge links two vertices added by earlier constructors (u ≠ v). It adds
// no vertex and no block; ErrUnknownVertex reports a reference past the end.
func Bridge(u, v int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if u < 0 || u >= acc.n || v < 0 || v >= acc.n {
			return fmt.Errorf("Bridge: (%d,%d) with %d vertices: %w", u, v, acc.n, ErrUnknownVertex)
		}
		if u == v {
			return fmt.Errorf("Bridge: self bridge at %d: %w", u, ErrConstructFailed)
		}
		return acc.link("Bridge", u, v, cfg)
	}
}
