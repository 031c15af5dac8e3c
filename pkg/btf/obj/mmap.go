package obj

import (
	"bytes"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/jtang613/btfgo/pkg/btf/btferrs"
	"github.com/jtang613/btfgo/pkg/btf/endian"
	"github.com/jtang613/btfgo/pkg/btf/types"
	"github.com/jtang613/btfgo/pkg/btf/wire"
)

// Mmap is a backend over a memory-mapped BTF file. Construction only
// indexes each type's byte offset and name (a cheap single pass over
// common headers); the full Type value for a given id is decoded on
// every ResolveTypeByID call, never cached. Only usable as a base
// object built from a file path: it cannot be built from an in-memory
// byte slice, and a split BTF can never use it as its own backend.
type Mmap struct {
	data        []byte
	header      wire.Header
	end         endian.Endianness
	typeOffsets []uint32
	nameIndex   map[string][]uint32
	unmap       func() error
}

// NewMmap memory-maps the file at path and builds the Mmap backend over
// it. The mapping is released by Close.
func NewMmap(path string) (*Mmap, error) {
	data, unmap, err := mmapFile(path)
	if err != nil {
		return nil, err
	}

	m, err := newMmapFromData(data, unmap)
	if err != nil {
		unmap()
		return nil, err
	}
	return m, nil
}

// NewMmapFromBytes always fails: the Mmap backend requires a real file
// mapping and cannot be built from an in-memory byte slice.
func NewMmapFromBytes([]byte) (*Mmap, error) {
	return nil, btferrs.OpNotSupportedf("mmap backend requires a file, not a byte slice")
}

// NewMmapSplit always fails: split BTF objects are never mmap-backed.
func NewMmapSplit(string, Backend) (*Mmap, error) {
	return nil, btferrs.OpNotSupportedf("mmap backend cannot be used for a split BTF")
}

func newMmapFromData(data []byte, unmap func() error) (*Mmap, error) {
	header, end, err := wire.ReadHeader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if header.Version != 1 {
		return nil, btferrs.Formatf("unsupported BTF version: %d", header.Version)
	}

	typeStart := int(header.HdrLen) + int(header.TypeOff)
	typeEnd := typeStart + int(header.TypeLen)
	if typeEnd > len(data) {
		return nil, btferrs.Formatf("type section exceeds file size")
	}

	_, estTypes := header.Estimates()
	typeOffsets := make([]uint32, 1, estTypes+1) // index 0 reserved for Void
	nameIndex := make(map[string][]uint32, estTypes)

	strStart := int(header.HdrLen) + int(header.StrOff)

	pos := typeStart
	id := uint32(1)
	for pos < typeEnd {
		if pos+12 > typeEnd {
			return nil, btferrs.Formatf("invalid type section")
		}
		ch, err := wire.ReadCommonHeader(bytes.NewReader(data[pos:pos+12]), end)
		if err != nil {
			return nil, err
		}
		kind, err := ch.Kind()
		if err != nil {
			return nil, err
		}

		typeOffsets = append(typeOffsets, uint32(pos))

		if nameOff, ok := ch.NameOffset(); ok {
			name, ok := readCString(data, strStart, int(nameOff))
			if !ok {
				return nil, &btferrs.InvalidStringError{Offset: nameOff}
			}
			if !utf8.ValidString(name) {
				return nil, btferrs.Formatf("invalid UTF-8 in string table at offset %d", nameOff)
			}
			nameIndex[name] = append(nameIndex[name], id)
		}

		pos += int(kind.Size(int(ch.Vlen())))
		id++
	}
	if pos != typeEnd {
		return nil, btferrs.Formatf("invalid type section")
	}

	return &Mmap{
		data:        data,
		header:      header,
		end:         end,
		typeOffsets: typeOffsets,
		nameIndex:   nameIndex,
		unmap:       unmap,
	}, nil
}

// readCString reads a NUL-terminated string at sectionStart+offset. It
// reports existence only; callers that need to enforce the string
// table's UTF-8 invariant check the returned bytes themselves, since
// "not found" and "malformed" are distinct error conditions here.
func readCString(data []byte, sectionStart, offset int) (string, bool) {
	start := sectionStart + offset
	if start < 0 || start >= len(data) {
		return "", false
	}
	end := bytes.IndexByte(data[start:], 0)
	if end < 0 {
		return "", false
	}
	return string(data[start : start+end]), true
}

func (m *Mmap) Header() wire.Header { return m.header }
func (m *Mmap) TypeCount() int      { return len(m.typeOffsets) }

func (m *Mmap) ResolveIDsByName(name string) []uint32 {
	ids := m.nameIndex[name]
	if len(ids) == 0 {
		return nil
	}
	out := make([]uint32, len(ids))
	copy(out, ids)
	return out
}

func (m *Mmap) ResolveTypeByID(id uint32) (types.Type, bool) {
	if id == 0 {
		return types.Void{}, true
	}
	if int(id) >= len(m.typeOffsets) {
		return nil, false
	}
	off := int(m.typeOffsets[id])
	r := bytes.NewReader(m.data[off:])
	ch, err := wire.ReadCommonHeader(r, m.end)
	if err != nil {
		return nil, false
	}
	t, err := types.FromReader(r, m.end, ch)
	if err != nil {
		return nil, false
	}
	return t, true
}

func (m *Mmap) ResolveNameByOffset(offset uint32) (string, bool) {
	strStart := int(m.header.HdrLen) + int(m.header.StrOff)
	name, ok := readCString(m.data, strStart, int(offset))
	if !ok || !utf8.ValidString(name) {
		return "", false
	}
	return name, true
}

func (m *Mmap) ResolveIDsByRegex(re *regexp.Regexp) []uint32 {
	var ids []uint32
	for name, list := range m.nameIndex {
		if re.MatchString(name) {
			ids = append(ids, list...)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *Mmap) Close() error {
	if m.unmap == nil {
		return nil
	}
	unmap := m.unmap
	m.unmap = nil
	return unmap()
}
