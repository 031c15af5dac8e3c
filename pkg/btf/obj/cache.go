package obj

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/jtang613/btfgo/pkg/btf/btferrs"
	"github.com/jtang613/btfgo/pkg/btf/types"
	"github.com/jtang613/btfgo/pkg/btf/wire"
)

// Cache is a backend that decodes the entire BTF object into memory up
// front, trading slower construction and higher memory use for fast
// map-backed queries afterward.
type Cache struct {
	header    wire.Header
	strCache  map[uint32]string
	nameIndex map[string][]uint32
	typesByID map[uint32]types.Type
	count     int
}

// NewCache parses a base BTF object from r into a Cache backend.
func NewCache(r io.ReadSeeker) (*Cache, error) {
	return newCache(r, nil)
}

// NewCacheSplit parses a split BTF object layered over base into a Cache
// backend. The split's ids and string offsets continue where base's
// leave off, per the split-BTF composition rules.
func NewCacheSplit(r io.ReadSeeker, base Backend) (*Cache, error) {
	if base == nil {
		return nil, btferrs.OpNotSupportedf("split BTF requires a base object")
	}
	return newCache(r, base)
}

// countingReader tracks how many bytes have been consumed from the
// underlying reader, since the stdlib offers no direct way to query an
// io.Reader's position without also being a Seeker.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func newCache(r io.ReadSeeker, base Backend) (*Cache, error) {
	header, end, err := wire.ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if header.Version != 1 {
		return nil, btferrs.Formatf("unsupported BTF version: %d", header.Version)
	}

	estStrings, estTypes := header.Estimates()

	strOffset := int64(header.HdrLen) + int64(header.StrOff)
	if _, err := r.Seek(strOffset, io.SeekStart); err != nil {
		return nil, btferrs.WrapIO(err)
	}

	var startStrOff uint32
	var nextID uint32
	if base == nil {
		nextID = 1
		startStrOff = 0
	} else {
		nextID = uint32(base.TypeCount())
		startStrOff = base.Header().StrLen
	}

	strCache := make(map[uint32]string, estStrings)
	br := bufio.NewReader(io.LimitReader(r, int64(header.StrLen)))
	var soff uint32
	for soff < header.StrLen {
		raw, err := br.ReadBytes(0)
		if err != nil {
			return nil, btferrs.WrapIO(err)
		}
		s := raw[:len(raw)-1]
		if !utf8.Valid(s) {
			return nil, btferrs.Formatf("invalid UTF-8 in string table at offset %d", startStrOff+soff)
		}
		strCache[startStrOff+soff] = string(s)
		soff += uint32(len(raw))
	}

	typeOffset := int64(header.HdrLen) + int64(header.TypeOff)
	if _, err := r.Seek(typeOffset, io.SeekStart); err != nil {
		return nil, btferrs.WrapIO(err)
	}

	nameIndex := make(map[string][]uint32, estTypes)
	typesByID := make(map[uint32]types.Type, estTypes)
	if base == nil {
		typesByID[0] = types.Void{}
	}

	cr := &countingReader{r: r}
	id := nextID
	for cr.n < int64(header.TypeLen) {
		ch, err := wire.ReadCommonHeader(cr, end)
		if err != nil {
			return nil, err
		}
		t, err := types.FromReader(cr, end, ch)
		if err != nil {
			return nil, err
		}

		if nameOff, ok := ch.NameOffset(); ok {
			name, found := strCache[nameOff]
			if !found && base != nil {
				name, found = base.ResolveNameByOffset(nameOff)
			}
			if !found {
				return nil, &btferrs.InvalidStringError{Offset: nameOff}
			}
			nameIndex[name] = append(nameIndex[name], id)
		}

		typesByID[id] = t
		id++
	}

	if cr.n != int64(header.TypeLen) {
		return nil, btferrs.Formatf("invalid type section")
	}

	return &Cache{
		header:    header,
		strCache:  strCache,
		nameIndex: nameIndex,
		typesByID: typesByID,
		count:     len(typesByID),
	}, nil
}

func (c *Cache) Header() wire.Header { return c.header }
func (c *Cache) TypeCount() int      { return c.count }

func (c *Cache) ResolveIDsByName(name string) []uint32 {
	ids := c.nameIndex[name]
	if len(ids) == 0 {
		return nil
	}
	out := make([]uint32, len(ids))
	copy(out, ids)
	return out
}

func (c *Cache) ResolveTypeByID(id uint32) (types.Type, bool) {
	t, ok := c.typesByID[id]
	return t, ok
}

func (c *Cache) ResolveNameByOffset(offset uint32) (string, bool) {
	s, ok := c.strCache[offset]
	return s, ok
}

func (c *Cache) ResolveIDsByRegex(re *regexp.Regexp) []uint32 {
	var ids []uint32
	for name, list := range c.nameIndex {
		if re.MatchString(name) {
			ids = append(ids, list...)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (c *Cache) Close() error { return nil }
