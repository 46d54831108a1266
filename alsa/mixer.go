// SPDX-License-Identifier: EPL-2.0

//go:build linux && (amd64 || arm64)

package alsa

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// CtlType tags the value type of a mixer control.
type CtlType int

const (
	CtlTypeUnknown CtlType = iota
	CtlTypeBool
	CtlTypeInt
	CtlTypeEnum
)

func (t CtlType) String() string {
	switch t {
	case CtlTypeBool:
		return "bool"
	case CtlTypeInt:
		return "int"
	case CtlTypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Mixer is an open control device of one card. It enumerates the card's
// control elements once at open time; hot-added elements are not seen.
type Mixer struct {
	fd   int
	card uint
	name string
	ctls []Ctl
}

// OpenMixer opens /dev/snd/controlC<card> and reads its element list.
func OpenMixer(card uint) (*Mixer, error) {
	path := fmt.Sprintf("/dev/snd/controlC%d", card)
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	m := &Mixer{fd: fd, card: card}
	var info sndCtlCardInfo
	if err := ioctl(fd, sndrvCtlIoctlCardInfo, unsafe.Pointer(&info)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("reading card info: %w", err)
	}
	m.name = cstr(info.name[:])

	if err := m.loadElems(); err != nil {
		unix.Close(fd)
		return nil, err
	}
	return m, nil
}

// loadElems performs the two-call element listing: the first ioctl
// yields the count, the second fills a caller-sized id array. The info
// of every element is fetched up front so type and slot queries need no
// further I/O.
func (m *Mixer) loadElems() error {
	var list sndCtlElemList
	if err := ioctl(m.fd, sndrvCtlIoctlElemList, unsafe.Pointer(&list)); err != nil {
		return fmt.Errorf("counting mixer elements: %w", err)
	}
	if list.count == 0 {
		return nil
	}

	ids := make([]sndCtlElemID, list.count)
	list = sndCtlElemList{
		space: list.count,
		pids:  uint64(uintptr(unsafe.Pointer(&ids[0]))),
	}
	if err := ioctl(m.fd, sndrvCtlIoctlElemList, unsafe.Pointer(&list)); err != nil {
		return fmt.Errorf("listing mixer elements: %w", err)
	}

	m.ctls = make([]Ctl, 0, list.used)
	for _, id := range ids[:list.used] {
		var info sndCtlElemInfo
		info.id = id
		if err := ioctl(m.fd, sndrvCtlIoctlElemInfo, unsafe.Pointer(&info)); err != nil {
			return fmt.Errorf("reading info of %q: %w", cstr(id.name[:]), err)
		}
		m.ctls = append(m.ctls, Ctl{m: m, id: id, info: info})
	}
	return nil
}

// CardName returns the short card name from the card info block.
func (m *Mixer) CardName() string { return m.name }

// NumCtls returns the number of control elements on the card.
func (m *Mixer) NumCtls() int { return len(m.ctls) }

// Ctl returns the i'th control element. The pointer stays valid for the
// lifetime of the mixer.
func (m *Mixer) Ctl(i int) *Ctl { return &m.ctls[i] }

// CtlByName returns the first control with the given element name.
func (m *Mixer) CtlByName(name string) (*Ctl, bool) {
	for i := range m.ctls {
		if m.ctls[i].Name() == name {
			return &m.ctls[i], true
		}
	}
	return nil, false
}

// Close releases the control device.
func (m *Mixer) Close() error { return unix.Close(m.fd) }

// Ctl is one control element of an open mixer.
type Ctl struct {
	m    *Mixer
	id   sndCtlElemID
	info sndCtlElemInfo
}

// Name returns the element name.
func (c *Ctl) Name() string { return cstr(c.id.name[:]) }

// Type maps the kernel element type onto the supported tags; byte,
// IEC958 and 64-bit integer elements come back as CtlTypeUnknown.
func (c *Ctl) Type() CtlType {
	switch c.info.typ {
	case sndCtlElemTypeBoolean:
		return CtlTypeBool
	case sndCtlElemTypeInteger:
		return CtlTypeInt
	case sndCtlElemTypeEnumerated:
		return CtlTypeEnum
	default:
		return CtlTypeUnknown
	}
}

// NumValues returns the element's per-channel slot count.
func (c *Ctl) NumValues() int { return int(c.info.count) }

// NumEnums returns the number of enum items, zero for non-enum elements.
func (c *Ctl) NumEnums() int {
	if c.info.typ != sndCtlElemTypeEnumerated {
		return 0
	}
	return int(c.info.enumItems())
}

// EnumName resolves the i'th enum item label with a per-item info query.
func (c *Ctl) EnumName(i int) (string, error) {
	if c.info.typ != sndCtlElemTypeEnumerated {
		return "", ErrNotEnum
	}
	if i < 0 || i >= int(c.info.enumItems()) {
		return "", fmt.Errorf("%w: %d", ErrBadEnumItem, i)
	}
	var info sndCtlElemInfo
	info.id = c.id
	info.setEnumItem(uint32(i))
	if err := ioctl(c.m.fd, sndrvCtlIoctlElemInfo, unsafe.Pointer(&info)); err != nil {
		return "", fmt.Errorf("reading enum item %d of %q: %w", i, c.Name(), err)
	}
	return info.enumName(), nil
}

// Value reads the element and returns the given slot. Enum slots come
// back as the item index.
func (c *Ctl) Value(slot int) (int, error) {
	if slot < 0 || slot >= int(c.info.count) {
		return 0, fmt.Errorf("%w: %d", ErrBadSlot, slot)
	}
	v, err := c.read()
	if err != nil {
		return 0, err
	}
	if c.info.typ == sndCtlElemTypeEnumerated {
		return int(v.enum(slot)), nil
	}
	return int(v.long(slot)), nil
}

// SetValue writes val to one slot, leaving the other slots untouched by
// reading the element first.
func (c *Ctl) SetValue(slot, val int) error {
	if slot < 0 || slot >= int(c.info.count) {
		return fmt.Errorf("%w: %d", ErrBadSlot, slot)
	}
	v, err := c.read()
	if err != nil {
		return err
	}
	if c.info.typ == sndCtlElemTypeEnumerated {
		v.setEnum(slot, uint32(val))
	} else {
		v.setLong(slot, int64(val))
	}
	return c.write(v)
}

// SetEnum resolves the label and writes its item index to every slot in
// one element write.
func (c *Ctl) SetEnum(label string) error {
	if c.info.typ != sndCtlElemTypeEnumerated {
		return ErrNotEnum
	}
	items := int(c.info.enumItems())
	item := -1
	for i := 0; i < items; i++ {
		name, err := c.EnumName(i)
		if err != nil {
			return err
		}
		if name == label {
			item = i
			break
		}
	}
	if item < 0 {
		return fmt.Errorf("%w: %q", ErrBadEnumItem, label)
	}

	var v sndCtlElemValue
	v.id = c.id
	for slot := 0; slot < int(c.info.count); slot++ {
		v.setEnum(slot, uint32(item))
	}
	return c.write(&v)
}

func (c *Ctl) read() (*sndCtlElemValue, error) {
	v := &sndCtlElemValue{id: c.id}
	if err := ioctl(c.m.fd, sndrvCtlIoctlElemRead, unsafe.Pointer(v)); err != nil {
		return nil, fmt.Errorf("reading %q: %w", c.Name(), err)
	}
	return v, nil
}

func (c *Ctl) write(v *sndCtlElemValue) error {
	if err := ioctl(c.m.fd, sndrvCtlIoctlElemWrite, unsafe.Pointer(v)); err != nil {
		return fmt.Errorf("writing %q: %w", c.Name(), err)
	}
	return nil
}
