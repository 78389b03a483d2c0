// Package decoder drives the out-of-scope hardware video acceleration
// backend through a narrow Accelerator collaborator interface, executing
// the picture-decode sequence spec.md §4.5 describes and managing the
// reference-frame surface pool from §4.6.
package decoder

// ConfigHandle, ContextHandle, SurfaceHandle and BufferHandle are opaque
// accelerator-side resource identifiers. This package never interprets
// their values; it only threads them back into further Accelerator
// calls and logs them.
type (
	ConfigHandle  uint64
	ContextHandle uint64
	SurfaceHandle uint64
	BufferHandle  uint64
)

// PictureParams mirrors the subset of the acceleration API's picture
// parameter buffer this decoder populates: the current surface, its
// presentation-order count, reference-list entries, and the picture-type
// flags spec.md §4.5 lists.
type PictureParams struct {
	CurrPicSurfaceID SurfaceHandle
	PicOrderCnt      int

	NoPicReorderingFlag bool
	NoBiPredFlag        bool
	RapPicFlag          bool
	IdrPicFlag          bool
	IntraPicFlag        bool

	// RefFrames holds up to 16 reference-frame entries; unused entries
	// carry SurfaceID == 0xff (invalid).
	RefFrames [16]ReferenceFrame

	CodingBlockSizeLog2   int
	TransformBlockSizeLog2 int
	ChromaFormatIDC       int
	BitDepthLumaMinus8    int
	BitDepthChromaMinus8  int
}

// ReferenceFrame is one entry of a picture parameter buffer's reference
// list.
type ReferenceFrame struct {
	SurfaceID     uint32 // 0xff when unused
	PicOrderCnt   int
	IsLongTerm    bool
}

// SliceParams mirrors the acceleration API's slice parameter buffer: byte
// ranges into the uploaded slice-data buffer plus the per-slice fields
// the accelerator needs to decode it, and the two reference-picture
// lists (only list 0 slot 0 is ever populated by this subset — no
// B slices, P slices reference at most the immediately preceding
// picture).
type SliceParams struct {
	SliceDataByteOffset int
	SliceDataByteLength int
	EPBCount            int

	SliceQPDelta int

	RefPicList0 [16]uint8 // 0xff = unused
	RefPicList1 [16]uint8

	CollocatedFromL0 bool
	CollocatedRefIdx int
}

// Accelerator is the hardware video acceleration backend collaborator.
// internal/decoder never talks to the driver directly. This repository
// ships no driver-backed implementation: cmd/prismclient wires
// NullAccelerator, and tests use the gomock-generated MockAccelerator.
type Accelerator interface {
	CreateConfig(width, height int) (ConfigHandle, error)
	CreateSurfaces(cfg ConfigHandle, n int) ([]SurfaceHandle, error)
	CreateContext(cfg ConfigHandle, surfaces []SurfaceHandle) (ContextHandle, error)

	UploadPictureParams(p PictureParams) (BufferHandle, error)
	UploadSliceParams(p SliceParams) (BufferHandle, error)
	UploadSliceData(data []byte) (BufferHandle, error)

	BeginPicture(ctx ContextHandle, surface SurfaceHandle) error
	RenderPicture(ctx ContextHandle, buffers []BufferHandle) error
	EndPicture(ctx ContextHandle) error

	DestroyBuffer(b BufferHandle) error
	SyncSurface(s SurfaceHandle) error

	// ExportDMABUF exports the surface as a composed-layers, read-only
	// DMA-BUF, returning one file descriptor per plane.
	ExportDMABUF(s SurfaceHandle) ([]int, error)
}
