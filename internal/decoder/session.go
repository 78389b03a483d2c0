package decoder

import (
	"fmt"

	"github.com/zsiec/prismclient/internal/hevc"
)

// State is the decoder session's lifecycle stage.
type State int

const (
	StateUninitialised State = iota
	StateHeaderSeen
	StateRunning
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialised:
		return "uninitialised"
	case StateHeaderSeen:
		return "header-seen"
	case StateRunning:
		return "running"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Output is published once per successfully decoded picture: the
// presentation surface index and the crop rectangle to display it with.
type Output struct {
	SurfaceIndex int
	CropX, CropY, CropW, CropH int
}

// Session holds an accelerator config and context and drives the
// picture-decode sequence from spec.md §4.5. It owns its *Pool by strong
// ownership; the pool never holds a back-pointer to the session (the
// cyclic-allocator-graph decomposition from the Design Notes).
type Session struct {
	accel Accelerator

	state State
	cfg   ConfigHandle
	ctx   ContextHandle
	pool  *Pool

	globalCounter int
	localCounter  int

	prevSurfaceIdx int
	havePrev       bool
}

// NewSession creates an uninitialised session bound to accel. Call
// Init once both an SPS and a PPS have been parsed.
func NewSession(accel Accelerator) *Session {
	return &Session{accel: accel, state: StateUninitialised}
}

// State returns the session's current lifecycle stage.
func (s *Session) State() State { return s.state }

// Init creates the accelerator config, the default-size surface pool,
// and the decode context, transitioning uninitialised -> header-seen.
// It is a programming error to call Init more than once.
func (s *Session) Init(width, height int) error {
	if s.state != StateUninitialised {
		return fmt.Errorf("decoder: Init called in state %s", s.state)
	}

	cfg, err := s.accel.CreateConfig(width, height)
	if err != nil {
		s.state = StateFailed
		return fmt.Errorf("decoder: create config: %w", err)
	}

	pool, err := NewPool(s.accel, cfg, width, height, DefaultPoolSize)
	if err != nil {
		s.state = StateFailed
		return err
	}

	handles := make([]SurfaceHandle, pool.Size())
	for i := 0; i < pool.Size(); i++ {
		handles[i] = pool.Surface(i).Handle
	}
	ctx, err := s.accel.CreateContext(cfg, handles)
	if err != nil {
		pool.Close()
		s.state = StateFailed
		return fmt.Errorf("decoder: create context: %w", err)
	}

	s.cfg, s.ctx, s.pool = cfg, ctx, pool
	s.state = StateHeaderSeen
	return nil
}

// Pool returns the session's surface pool, handed to the presenter once
// at init so it can build its own per-surface wrapped buffers.
func (s *Session) Pool() *Pool { return s.pool }

// DecodePicture executes the full decode sequence for one coded picture:
// pick the current surface, populate picture/slice parameter buffers,
// upload them plus the slice data, begin/render/end the picture, and on
// success publish the decoded surface as the presentation output.
//
// nalType selects IDR/IRAP picture-type flags; sh is the already-parsed
// slice header; nalData is the raw NAL unit bytes (slice data begins at
// sh.SliceDataByteOffset+sh.EPBCount into it).
func (s *Session) DecodePicture(nalType byte, sps *hevc.SPS, sh *hevc.SliceHeader, nalData []byte) (Output, error) {
	if s.state != StateHeaderSeen && s.state != StateRunning {
		return Output{}, fmt.Errorf("decoder: DecodePicture called in state %s", s.state)
	}

	if hevc.IsIDR(nalType) {
		s.localCounter = 0
	}

	curIdx := s.globalCounter % s.pool.Size()
	current := s.pool.Surface(curIdx)
	s.pool.Lock(curIdx)

	pp := PictureParams{
		CurrPicSurfaceID:    current.Handle,
		PicOrderCnt:         s.localCounter,
		NoPicReorderingFlag: true,
		NoBiPredFlag:        true,
		RapPicFlag:          hevc.IsKeyframe(nalType),
		IdrPicFlag:          hevc.IsIDR(nalType),
		IntraPicFlag:        hevc.IsKeyframe(nalType),

		CodingBlockSizeLog2:    sps.Log2MinLumaCodingBlockSize + sps.Log2DiffMaxMinLumaCodingSize,
		TransformBlockSizeLog2: sps.Log2MinTransformBlockSize + sps.Log2DiffMaxMinTransformSize,
		ChromaFormatIDC:        sps.ChromaFormatIDC,
		BitDepthLumaMinus8:     sps.BitDepthLuma - 8,
		BitDepthChromaMinus8:   sps.BitDepthChroma - 8,
	}
	for i := range pp.RefFrames {
		pp.RefFrames[i] = ReferenceFrame{SurfaceID: hevc.RefPicListInvalid}
	}

	sp := SliceParams{
		SliceDataByteOffset: sh.SliceDataByteOffset,
		SliceDataByteLength: len(nalData) - sh.SliceDataByteOffset - sh.EPBCount,
		EPBCount:            sh.EPBCount,
		SliceQPDelta:        sh.SliceQPDelta,
		CollocatedFromL0:    sh.CollocatedFromL0,
		CollocatedRefIdx:    sh.CollocatedRefIdx,
	}
	for i := range sp.RefPicList0 {
		sp.RefPicList0[i] = hevc.RefPicListInvalid
		sp.RefPicList1[i] = hevc.RefPicListInvalid
	}

	if s.localCounter > 0 && s.havePrev {
		prev := s.pool.Surface(s.prevSurfaceIdx)
		pp.RefFrames[0] = ReferenceFrame{
			SurfaceID:   uint32(prev.Handle),
			PicOrderCnt: s.localCounter - 1,
		}
		sp.RefPicList0[0] = 0
	}

	var uploaded []BufferHandle
	rollback := func() {
		for _, b := range uploaded {
			s.accel.DestroyBuffer(b)
		}
	}

	picBuf, err := s.accel.UploadPictureParams(pp)
	if err != nil {
		return Output{}, s.fail(fmt.Errorf("decoder: upload picture params: %w", err))
	}
	uploaded = append(uploaded, picBuf)

	sliceBuf, err := s.accel.UploadSliceParams(sp)
	if err != nil {
		rollback()
		return Output{}, s.fail(fmt.Errorf("decoder: upload slice params: %w", err))
	}
	uploaded = append(uploaded, sliceBuf)

	dataBuf, err := s.accel.UploadSliceData(nalData[sh.SliceDataByteOffset+sh.EPBCount:])
	if err != nil {
		rollback()
		return Output{}, s.fail(fmt.Errorf("decoder: upload slice data: %w", err))
	}
	uploaded = append(uploaded, dataBuf)

	if err := s.accel.BeginPicture(s.ctx, current.Handle); err != nil {
		rollback()
		return Output{}, s.fail(fmt.Errorf("decoder: begin picture: %w", err))
	}
	if err := s.accel.RenderPicture(s.ctx, uploaded); err != nil {
		rollback()
		return Output{}, s.fail(fmt.Errorf("decoder: render picture: %w", err))
	}
	if err := s.accel.EndPicture(s.ctx); err != nil {
		rollback()
		return Output{}, s.fail(fmt.Errorf("decoder: end picture: %w", err))
	}
	rollback()

	if err := s.accel.SyncSurface(current.Handle); err != nil {
		return Output{}, s.fail(fmt.Errorf("decoder: sync surface: %w", err))
	}

	s.pool.UnlockAllExcept(curIdx)
	s.prevSurfaceIdx = curIdx
	s.havePrev = true

	s.globalCounter++
	s.localCounter++
	s.state = StateRunning

	x, y, w, h := sps.CropRect()
	return Output{SurfaceIndex: curIdx, CropX: x, CropY: y, CropW: w, CropH: h}, nil
}

func (s *Session) fail(err error) error {
	s.state = StateFailed
	return err
}

// Close releases the session's surface pool. The accelerator config and
// context are left for the accelerator implementation's own teardown
// (out of scope: this package only owns the pool's DMA-BUF fds).
func (s *Session) Close() error {
	if s.pool == nil {
		return nil
	}
	return s.pool.Close()
}
