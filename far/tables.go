// SPDX-License-Identifier: MIT

package far

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/endcap/stencil"
)

// WeightingPolicy selects which stencil of a control point a table is built
// from. The type set is closed, so createStencilTable is instantiated per
// policy and the selection compiles to a direct call.
type WeightingPolicy interface {
	VertexWeighting | VaryingWeighting
	pick(s slotStencils) stencil.Stencil
	name() string
}

// VertexWeighting selects the full Gregory weights (positions).
type VertexWeighting struct{}

func (VertexWeighting) pick(s slotStencils) stencil.Stencil { return s.vertex }
func (VertexWeighting) name() string                        { return "Vertex" }

// VaryingWeighting selects the corner-vertex weights (varying data).
type VaryingWeighting struct{}

func (VaryingWeighting) pick(s slotStencils) stencil.Stencil { return s.varying }
func (VaryingWeighting) name() string                        { return "Varying" }

// CreateVertexStencilTable returns the vertex stencils of every slot,
// factorized down to the control vertices of base.
//
// With appendBase the result is a copy of base followed by the new entries;
// otherwise it holds only the new entries over the same control vertices.
// A nil base means the level vertices (after the level offset) are the
// control vertices themselves. With perm, entries are emitted per patch in
// permuted order, which requires that no points were shared.
//
// base is never modified; the result belongs to the caller.
//
// Errors: ErrNilBase, ErrBadPermutation, ErrPermuteShared,
// ErrAllocationFailure, stencil errors for stencils reaching past base.
func (f *EndCapFactory) CreateVertexStencilTable(base *stencil.Table, appendBase bool, perm *Permutation) (*stencil.Table, error) {
	return createStencilTable[VertexWeighting](f, base, appendBase, perm)
}

// CreateVaryingStencilTable is CreateVertexStencilTable for varying stencils.
func (f *EndCapFactory) CreateVaryingStencilTable(base *stencil.Table, appendBase bool, perm *Permutation) (*stencil.Table, error) {
	return createStencilTable[VaryingWeighting](f, base, appendBase, perm)
}

func createStencilTable[W WeightingPolicy](f *EndCapFactory, base *stencil.Table, appendBase bool, perm *Permutation) (*stencil.Table, error) {
	var policy W
	method := "Create" + policy.name() + "StencilTable"
	if appendBase && base == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilBase)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	order, err := f.slotOrder(perm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	nc := f.opts.levelOffset + f.level.NumVertices()
	if base != nil {
		nc = base.NumControlVertices()
	}
	fz, err := stencil.NewFactorizer(nc, base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	var out *stencil.Table
	if appendBase {
		out = base.Clone()
	} else if out, err = stencil.NewTable(nc); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	for _, slot := range order {
		s, err := fz.Resolve(policy.pick(f.slots[slot]))
		if err != nil {
			return nil, fmt.Errorf("%s: slot %d: %w", method, slot, err)
		}
		if err = out.Append(s); err != nil {
			if errors.Is(err, stencil.ErrTableFull) {
				return nil, fmt.Errorf("%s: %w: %w", method, ErrAllocationFailure, err)
			}
			return nil, fmt.Errorf("%s: slot %d: %w", method, slot, err)
		}
	}

	Logger().Info("stencil table created",
		zap.String("weighting", policy.name()),
		zap.Int("entries", out.NumStencils()),
		zap.Int("new", len(order)),
		zap.Bool("appended", appendBase))

	return out, nil
}

// slotOrder lists the slots to emit: all slots in allocation order, or per
// patch in permuted order. Callers hold f.mu.
func (f *EndCapFactory) slotOrder(perm *Permutation) ([]int, error) {
	if perm == nil {
		order := make([]int, len(f.slots))
		for i := range order {
			order[i] = i
		}
		return order, nil
	}
	if err := perm.Validate(); err != nil {
		return nil, err
	}
	if len(f.slots) != NumControlPoints*len(f.patches) {
		return nil, fmt.Errorf("%d slots for %d patches: %w", len(f.slots), len(f.patches), ErrPermuteShared)
	}

	order := make([]int, 0, len(f.slots))
	for p := range f.patches {
		for _, i := range perm {
			order = append(order, f.patches[p].slots[i])
		}
	}

	return order, nil
}
