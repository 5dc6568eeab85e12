// SPDX-License-Identifier: MIT

package far

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/endcap/stencil"
)

// slotStencils is one emitted control point.
type slotStencils struct {
	vertex, varying stencil.Stencil
}

// patchRecord is the committed state of one patch.
type patchRecord struct {
	face  int
	tag   PatchFaceTag
	slots [NumControlPoints]int
	isNew [4][numPointKinds]bool
}

// EndCapFactory accumulates Gregory basis patches over the irregular faces
// of one level and turns their control points into stencil tables.
//
// Bases are computed without holding the factory lock; slot allocation and
// the shared-point map are guarded by a mutex, so an EndCapFactory is safe
// for concurrent use. Concurrent AddPatch calls for faces sharing a vertex
// resolve each shared point to a single slot.
type EndCapFactory struct {
	level Level
	opts  options

	mu          sync.Mutex
	shared      *sharedVertexMap
	slots       []slotStencils
	patches     []patchRecord
	patchOfFace map[int]int
	maxSlots    int
}

// NewEndCapFactory returns an empty factory over level.
//
// Options: WithShareBoundaryVertices, WithLevelVertexOffset, WithWorkers,
// WithEpsilon, WithFVarChannel.
func NewEndCapFactory(level Level, opts ...Option) (*EndCapFactory, error) {
	if level == nil {
		return nil, fmt.Errorf("NewEndCapFactory: %w", ErrNilLevel)
	}
	o := newOptions(opts...)

	return &EndCapFactory{
		level:       level,
		opts:        o,
		shared:      newSharedVertexMap(o.share),
		patchOfFace: make(map[int]int),
		maxSlots:    stencil.MaxEntries,
	}, nil
}

// Level returns the level the factory was built on.
func (f *EndCapFactory) Level() Level { return f.level }

// MaxValence returns MaxValence().
func (f *EndCapFactory) MaxValence() int { return maxValence }

// AddPatch builds the basis of face and commits it, returning the new patch
// index. On error nothing is committed.
//
// Errors: ErrInvalidFace, ErrValenceExceeded, ErrTagMismatch,
// ErrInconsistentSharedVertex, ErrAllocationFailure.
func (f *EndCapFactory) AddPatch(face int, tag PatchFaceTag) (int, error) {
	b, err := buildBasis(f.level, face, tag, f.opts.levelOffset)
	if err != nil {
		return -1, fmt.Errorf("AddPatch(%d): %w", face, err)
	}
	b.FVarChannel = f.opts.fvarChannel

	f.mu.Lock()
	defer f.mu.Unlock()
	patch, err := f.commit(b, tag)
	if err != nil {
		return -1, fmt.Errorf("AddPatch(%d): %w", face, err)
	}

	return patch, nil
}

// AddPatches adds one patch per face. Bases are computed on WithWorkers
// goroutines; commits happen in input order, so slot numbering does not
// depend on scheduling.
//
// Failed faces are reported as *FaceError values joined with errors.Join;
// the other faces are still committed. ErrInconsistentSharedVertex and
// ErrAllocationFailure stop the batch at the failing face.
func (f *EndCapFactory) AddPatches(faces []int, tags []PatchFaceTag) error {
	if len(faces) != len(tags) {
		return fmt.Errorf("AddPatches: %d faces, %d tags: %w", len(faces), len(tags), ErrTagMismatch)
	}

	bases := make([]*GregoryBasis, len(faces))
	errs := make([]error, len(faces))
	runParallel(f.opts.workers, len(faces), func(i int) {
		bases[i], errs[i] = buildBasis(f.level, faces[i], tags[i], f.opts.levelOffset)
	})

	f.mu.Lock()
	defer f.mu.Unlock()

	var failed []error
	for i, face := range faces {
		err := errs[i]
		if err == nil {
			bases[i].FVarChannel = f.opts.fvarChannel
			_, err = f.commit(bases[i], tags[i])
		}
		if err == nil {
			continue
		}
		Logger().Warn("face rejected", zap.Int("face", face), zap.Error(err))
		failed = append(failed, &FaceError{Face: face, Err: err})
		if isFatal(err) {
			break
		}
	}

	return errors.Join(failed...)
}

// commit verifies b against the shared points emitted so far, then
// allocates its slots. Callers hold f.mu.
func (f *EndCapFactory) commit(b *GregoryBasis, tag PatchFaceTag) (int, error) {
	if p, dup := f.patchOfFace[b.Face]; dup {
		return -1, fmt.Errorf("face %d already has patch %d: %w", b.Face, p, ErrInvalidFace)
	}
	mask, err := f.newVerticesMask(b)
	if err != nil {
		return -1, err
	}

	return f.addPatchBasis(b, tag, mask), nil
}

// newVerticesMask reports, per corner and point kind, whether the point
// needs a new slot. Reused points must match the stencils already stored.
func (f *EndCapFactory) newVerticesMask(b *GregoryBasis) ([4][numPointKinds]bool, error) {
	var mask [4][numPointKinds]bool
	fresh := 0
	for i := range b.Vertex {
		if key, ok := pointKey(b.corners, i); ok {
			if slot, found := f.shared.lookup(key); found {
				s := f.slots[slot]
				if !s.vertex.ApproxEqual(b.Vertex[i], f.opts.eps) || !s.varying.ApproxEqual(b.Varying[i], f.opts.eps) {
					return mask, fmt.Errorf("face %d point %d: slot %d holds %v, computed %v: %w",
						b.Face, i, slot, s.vertex, b.Vertex[i], ErrInconsistentSharedVertex)
				}
				continue
			}
		}
		mask[i/numPointKinds][i%numPointKinds] = true
		fresh++
	}
	if len(f.slots)+fresh > f.maxSlots {
		return mask, fmt.Errorf("%d slots + %d: %w", len(f.slots), fresh, ErrAllocationFailure)
	}

	return mask, nil
}

// addPatchBasis commits b: points flagged in mask get new slots, the rest
// resolve to the slots of their shared keys.
func (f *EndCapFactory) addPatchBasis(b *GregoryBasis, tag PatchFaceTag, mask [4][numPointKinds]bool) int {
	rec := patchRecord{face: b.Face, tag: tag, isNew: mask}
	for i := range b.Vertex {
		key, shareable := pointKey(b.corners, i)
		if !mask[i/numPointKinds][i%numPointKinds] {
			rec.slots[i], _ = f.shared.lookup(key)
			continue
		}
		slot := len(f.slots)
		f.slots = append(f.slots, slotStencils{vertex: b.Vertex[i], varying: b.Varying[i]})
		if shareable {
			slot, _ = f.shared.resolveSlot(key, slot)
		}
		rec.slots[i] = slot
	}

	patch := len(f.patches)
	f.patches = append(f.patches, rec)
	f.patchOfFace[b.Face] = patch

	Logger().Debug("patch committed",
		zap.Int("face", b.Face),
		zap.Int("patch", patch),
		zap.Int("slots", len(f.slots)),
		zap.Int("sharedKeys", f.shared.len()))

	return patch
}

// NumPatches returns the number of committed patches.
func (f *EndCapFactory) NumPatches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.patches)
}

// NumVertices returns the number of distinct control point slots.
func (f *EndCapFactory) NumVertices() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.slots)
}

// FaceIndex returns the face patch was built for.
func (f *EndCapFactory) FaceIndex(patch int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if patch < 0 || patch >= len(f.patches) {
		return -1, fmt.Errorf("FaceIndex(%d): %w", patch, ErrUnknownPatch)
	}
	return f.patches[patch].face, nil
}

// PatchIndex returns the patch built for face.
func (f *EndCapFactory) PatchIndex(face int) (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.patchOfFace[face]
	return p, ok
}

// Topology returns the slots of the patch of face in canonical order, each
// offset by vertOffset. tag must equal the tag the patch was added with.
//
// Errors: ErrUnknownPatch, ErrTagMismatch.
func (f *EndCapFactory) Topology(face int, tag PatchFaceTag, vertOffset int) ([NumControlPoints]int, error) {
	var out [NumControlPoints]int
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.patchOfFace[face]
	if !ok {
		return out, fmt.Errorf("Topology(%d): %w", face, ErrUnknownPatch)
	}
	rec := &f.patches[p]
	if rec.tag != tag {
		return out, fmt.Errorf("Topology(%d): tag %+v, patch built with %+v: %w", face, tag, rec.tag, ErrTagMismatch)
	}
	for i, slot := range rec.slots {
		out[i] = slot + vertOffset
	}

	return out, nil
}

// NewVertices reports which control points of patch were allocated by it
// rather than reused from an earlier patch.
func (f *EndCapFactory) NewVertices(patch int) ([4][numPointKinds]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if patch < 0 || patch >= len(f.patches) {
		return [4][numPointKinds]bool{}, fmt.Errorf("NewVertices(%d): %w", patch, ErrUnknownPatch)
	}
	return f.patches[patch].isNew, nil
}

// PatchType returns the descriptor of the patch generated for a face with
// tag: always a Gregory basis, its variant chosen by the tag's masks.
func (f *EndCapFactory) PatchType(tag PatchFaceTag) PatchDescriptor {
	return PatchDescriptor{Type: PatchGregoryBasis, Variant: variantOf(tag)}
}
