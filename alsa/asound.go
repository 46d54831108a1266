// SPDX-License-Identifier: EPL-2.0

//go:build linux && (amd64 || arm64)

package alsa

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Compile-time struct size assertions against the 64-bit kernel ABI.
var (
	_ [376]byte  = [unsafe.Sizeof(sndCtlCardInfo{})]byte{}
	_ [64]byte   = [unsafe.Sizeof(sndCtlElemID{})]byte{}
	_ [80]byte   = [unsafe.Sizeof(sndCtlElemList{})]byte{}
	_ [272]byte  = [unsafe.Sizeof(sndCtlElemInfo{})]byte{}
	_ [1224]byte = [unsafe.Sizeof(sndCtlElemValue{})]byte{}
	_ [288]byte  = [unsafe.Sizeof(sndPCMInfo{})]byte{}
	_ [32]byte   = [unsafe.Sizeof(sndMask{})]byte{}
	_ [12]byte   = [unsafe.Sizeof(sndInterval{})]byte{}
	_ [608]byte  = [unsafe.Sizeof(sndPCMHwParams{})]byte{}
	_ [24]byte   = [unsafe.Sizeof(sndXferI{})]byte{}
)

// ioctl request numbers for 64-bit architectures.
const (
	sndrvCtlIoctlCardInfo  = 0x81785501
	sndrvCtlIoctlElemList  = 0xc0505510
	sndrvCtlIoctlElemInfo  = 0xc1105511
	sndrvCtlIoctlElemRead  = 0xc4c85512
	sndrvCtlIoctlElemWrite = 0xc4c85513

	sndrvPCMIoctlInfo         = 0x81204101
	sndrvPCMIoctlHwRefine     = 0xc2604110
	sndrvPCMIoctlHwParams     = 0xc2604111
	sndrvPCMIoctlPrepare      = 0x00004140
	sndrvPCMIoctlWriteiFrames = 0x40184150
)

// Control element value types, SNDRV_CTL_ELEM_TYPE_*.
const (
	sndCtlElemTypeBoolean    = 1
	sndCtlElemTypeInteger    = 2
	sndCtlElemTypeEnumerated = 3
)

// Hardware parameter indices, SNDRV_PCM_HW_PARAM_*.
const (
	sndrvPCMHwParamAccess        = 0
	sndrvPCMHwParamFormat        = 1
	sndrvPCMHwParamSubformat     = 2
	sndrvPCMHwParamFirstMask     = 0
	sndrvPCMHwParamLastMask      = 2
	sndrvPCMHwParamSampleBits    = 8
	sndrvPCMHwParamFrameBits     = 9
	sndrvPCMHwParamChannels      = 10
	sndrvPCMHwParamRate          = 11
	sndrvPCMHwParamPeriodSize    = 13
	sndrvPCMHwParamPeriods       = 15
	sndrvPCMHwParamFirstInterval = 8
	sndrvPCMHwParamLastInterval  = 19

	sndrvMaskMax = 256

	sndrvPCMAccessRwInterleaved = 3
	sndrvPCMFormatS16LE         = 2

	sndrvPCMIntervalInteger = 1 << 2
)

// sndCtlCardInfo has size 376 bytes.
type sndCtlCardInfo struct {
	card       int32
	_          [4]byte
	id         [16]byte
	driver     [16]byte
	name       [32]byte
	longname   [80]byte
	reserved   [16]byte
	mixername  [80]byte
	components [128]byte
}

// sndCtlElemID has size 64 bytes.
type sndCtlElemID struct {
	numid     uint32
	iface     uint32
	device    uint32
	subdevice uint32
	name      [44]byte
	index     uint32
}

// sndCtlElemList has size 80 bytes. pids points at a caller-owned
// sndCtlElemID array of space entries.
type sndCtlElemList struct {
	offset   uint32
	space    uint32
	used     uint32
	count    uint32
	pids     uint64
	reserved [50]byte
	_        [6]byte
}

// sndCtlElemInfo has size 272 bytes. value overlays a C union; the
// accessors below read the integer and enumerated members.
type sndCtlElemInfo struct {
	id       sndCtlElemID
	typ      uint32
	access   uint32
	count    uint32
	owner    int32
	value    [128]byte
	reserved [64]byte
}

// Enumerated member layout: items(4) item(4) name[64] names_ptr(8)
// names_length(4).
func (i *sndCtlElemInfo) enumItems() uint32 { return binary.LittleEndian.Uint32(i.value[0:4]) }

func (i *sndCtlElemInfo) setEnumItem(item uint32) {
	binary.LittleEndian.PutUint32(i.value[4:8], item)
}

func (i *sndCtlElemInfo) enumName() string { return cstr(i.value[8:72]) }

// sndCtlElemValue has size 1224 bytes. value overlays a C union:
// boolean and integer slots are longs (8 bytes each on 64-bit),
// enumerated slots are unsigned ints (4 bytes each).
type sndCtlElemValue struct {
	id       sndCtlElemID
	indirect uint32
	_        uint32
	value    [1024]byte
	reserved [128]byte
}

func (v *sndCtlElemValue) long(slot int) int64 {
	return int64(binary.LittleEndian.Uint64(v.value[slot*8:]))
}

func (v *sndCtlElemValue) setLong(slot int, val int64) {
	binary.LittleEndian.PutUint64(v.value[slot*8:], uint64(val))
}

func (v *sndCtlElemValue) enum(slot int) uint32 {
	return binary.LittleEndian.Uint32(v.value[slot*4:])
}

func (v *sndCtlElemValue) setEnum(slot int, item uint32) {
	binary.LittleEndian.PutUint32(v.value[slot*4:], item)
}

// sndPCMInfo has size 288 bytes.
type sndPCMInfo struct {
	device          uint32
	subdevice       uint32
	stream          int32
	card            int32
	id              [64]byte
	name            [80]byte
	subname         [32]byte
	devClass        int32
	devSubclass     int32
	subdevicesCount uint32
	subdevicesAvail uint32
	sync            [16]byte
	reserved        [64]byte
}

// sndMask has size 32 bytes.
type sndMask struct {
	bits [(sndrvMaskMax + 31) / 32]uint32
}

// sndInterval has size 12 bytes.
type sndInterval struct {
	minVal uint32
	maxVal uint32
	flags  uint32
}

// sndPCMHwParams has size 608 bytes.
type sndPCMHwParams struct {
	flags     uint32
	masks     [sndrvPCMHwParamLastMask - sndrvPCMHwParamFirstMask + 1]sndMask
	mres      [5]sndMask
	intervals [sndrvPCMHwParamLastInterval - sndrvPCMHwParamFirstInterval + 1]sndInterval
	ires      [9]sndInterval
	rmask     uint32
	cmask     uint32
	info      uint32
	msbits    uint32
	rateNum   uint32
	rateDen   uint32
	fifoSize  uint64
	reserved  [64]byte
}

// init opens every parameter to its full range, the state the kernel
// expects before refinement.
func (p *sndPCMHwParams) init() {
	for i := range p.masks {
		p.masks[i].bits[0] = 0xFFFFFFFF
		p.masks[i].bits[1] = 0xFFFFFFFF
	}
	for i := range p.intervals {
		p.intervals[i].maxVal = 0xFFFFFFFF
	}
	p.rmask = 0xFFFFFFFF
	p.cmask = 0
	p.info = 0xFFFFFFFF
}

func (p *sndPCMHwParams) setMask(param, val uint32) {
	p.masks[param].bits[0] = 0
	p.masks[param].bits[1] = 0
	p.masks[param].bits[val>>5] = 1 << (val & 0x1F)
}

func (p *sndPCMHwParams) setInterval(param, val uint32) {
	idx := param - sndrvPCMHwParamFirstInterval
	p.intervals[idx] = sndInterval{minVal: val, maxVal: val, flags: sndrvPCMIntervalInteger}
}

func (p *sndPCMHwParams) getInterval(param uint32) (minVal, maxVal uint32) {
	idx := param - sndrvPCMHwParamFirstInterval
	return p.intervals[idx].minVal, p.intervals[idx].maxVal
}

// sndXferI has size 24 bytes.
type sndXferI struct {
	result int64
	buf    uint64
	frames uint64
}

func ioctl(fd int, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// cstr returns the bytes before the first NUL as a string.
func cstr(b []byte) string {
	n := 0
	for n < len(b) && b[n] != 0 {
		n++
	}
	return string(b[:n])
}
