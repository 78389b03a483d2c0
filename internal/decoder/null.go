package decoder

import "errors"

// ErrNoAccelerator is returned by every NullAccelerator method. It marks
// the point where a real hardware video acceleration backend — the
// explicitly out-of-scope collaborator from spec.md §1 — must be plugged
// in behind the Accelerator interface before this package can decode
// anything.
var ErrNoAccelerator = errors.New("decoder: no hardware accelerator configured")

// NullAccelerator is the in-repo test double named in this repository's
// ambient stack: it satisfies Accelerator so the rest of the client can
// be wired and exercised without real hardware, failing clearly instead
// of silently doing nothing.
type NullAccelerator struct{}

func (NullAccelerator) CreateConfig(width, height int) (ConfigHandle, error) { return 0, ErrNoAccelerator }
func (NullAccelerator) CreateSurfaces(cfg ConfigHandle, n int) ([]SurfaceHandle, error) {
	return nil, ErrNoAccelerator
}
func (NullAccelerator) CreateContext(cfg ConfigHandle, surfaces []SurfaceHandle) (ContextHandle, error) {
	return 0, ErrNoAccelerator
}
func (NullAccelerator) UploadPictureParams(p PictureParams) (BufferHandle, error) {
	return 0, ErrNoAccelerator
}
func (NullAccelerator) UploadSliceParams(p SliceParams) (BufferHandle, error) {
	return 0, ErrNoAccelerator
}
func (NullAccelerator) UploadSliceData(data []byte) (BufferHandle, error) {
	return 0, ErrNoAccelerator
}
func (NullAccelerator) BeginPicture(ctx ContextHandle, surface SurfaceHandle) error {
	return ErrNoAccelerator
}
func (NullAccelerator) RenderPicture(ctx ContextHandle, buffers []BufferHandle) error {
	return ErrNoAccelerator
}
func (NullAccelerator) EndPicture(ctx ContextHandle) error        { return ErrNoAccelerator }
func (NullAccelerator) DestroyBuffer(b BufferHandle) error        { return ErrNoAccelerator }
func (NullAccelerator) SyncSurface(s SurfaceHandle) error         { return ErrNoAccelerator }
func (NullAccelerator) ExportDMABUF(s SurfaceHandle) ([]int, error) {
	return nil, ErrNoAccelerator
}
