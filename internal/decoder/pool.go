package decoder

import "fmt"

// DefaultPoolSize is the number of surfaces allocated at session init,
// per spec.md §4.6.
const DefaultPoolSize = 3

// Surface is one decode target: an accelerator surface handle plus the
// DMA-BUF file descriptors (one per plane, up to four) exported for the
// presenter.
type Surface struct {
	Handle SurfaceHandle
	Index  int

	// DMABUFFds holds one fd per plane in composed-layers, read-only
	// mode, owned by the Surface until Pool.Close.
	DMABUFFds []int

	locked bool
}

// Pool is the ordered set of decode-target surfaces handed to the
// presenter once at session init so it can build per-surface wrapped
// buffers and thereafter refer to surfaces only by index — this package
// never calls back into the presenter.
type Pool struct {
	accel    Accelerator
	surfaces []Surface
}

// NewPool creates N surfaces of format NV12 4:2:0 at width x height and
// exports each to a composed-layers, read-only DMA-BUF.
func NewPool(accel Accelerator, cfg ConfigHandle, width, height, n int) (*Pool, error) {
	handles, err := accel.CreateSurfaces(cfg, n)
	if err != nil {
		return nil, fmt.Errorf("decoder: create surfaces: %w", err)
	}

	p := &Pool{accel: accel, surfaces: make([]Surface, len(handles))}
	for i, h := range handles {
		fds, err := accel.ExportDMABUF(h)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("decoder: export dmabuf for surface %d: %w", i, err)
		}
		p.surfaces[i] = Surface{Handle: h, Index: i, DMABUFFds: fds}
	}
	return p, nil
}

// Size returns the number of surfaces in the pool.
func (p *Pool) Size() int { return len(p.surfaces) }

// Surface returns the surface at idx.
func (p *Pool) Surface(idx int) *Surface { return &p.surfaces[idx] }

// Lock marks the surface at idx as busy, per the spec's busy/free
// reference-tracking discipline: on a decode submission the current
// surface is locked before the accelerator call.
func (p *Pool) Lock(idx int) { p.surfaces[idx].locked = true }

// UnlockAllExcept unlocks every surface except idx, called once the
// decoder reports the decoded-surface memory id — at that point every
// other surface is known free to be reused as a future decode target.
func (p *Pool) UnlockAllExcept(idx int) {
	for i := range p.surfaces {
		if i != idx {
			p.surfaces[i].locked = false
		}
	}
}

// Referenceable returns the index of the first surface still marked
// locked — the one the presenter should show — and whether any surface
// is locked at all.
func (p *Pool) Referenceable() (int, bool) {
	for i := range p.surfaces {
		if p.surfaces[i].locked {
			return i, true
		}
	}
	return 0, false
}

// Close releases every surface's DMA-BUF file descriptors. Safe to call
// on a partially-initialised pool.
func (p *Pool) Close() error {
	var firstErr error
	for i := range p.surfaces {
		for _, fd := range p.surfaces[i].DMABUFFds {
			if err := closeFd(fd); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("decoder: close dmabuf fd for surface %d: %w", i, err)
			}
		}
		p.surfaces[i].DMABUFFds = nil
	}
	return firstErr
}
