package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	hstl "github.com/hschendel/stl"

	"github.com/printwise/meshcost/pkg/geometry"
)

const (
	headerSize = 80
	countSize  = 4
	// 12-byte normal, three 12-byte vertices, 2 attribute bytes
	recordSize = 50

	// DefaultTriangleLimit caps how many triangles a single analysis
	// decodes. Quoting only needs aggregate geometry, and hostile
	// uploads can declare billions of triangles.
	DefaultTriangleLimit = 5000
)

var (
	// ErrTruncated reports a buffer too short to hold the binary STL
	// header and triangle count.
	ErrTruncated = errors.New("stl: truncated file")

	// ErrUnsupportedFormat reports input recognized as something other
	// than binary STL (ASCII STL, OBJ, 3MF). Those are routed to other
	// paths by the upload handler; this reader fails closed.
	ErrUnsupportedFormat = errors.New("stl: unsupported format")
)

// ReaderOptions tunes ReadTriangles. The zero value uses defaults.
type ReaderOptions struct {
	// TriangleLimit overrides DefaultTriangleLimit when positive.
	TriangleLimit int
}

// TriangleSource yields decoded triangles one at a time. It is a
// single forward pass over one buffer; it cannot be restarted.
type TriangleSource struct {
	declared uint32
	count    int // triangles that will actually be decoded

	// library path: triangles already decoded by the stl package
	parsed []geometry.Triangle

	// fallback path: raw records decoded on demand
	buf    []byte
	offset int

	read int
}

// ReadTriangles validates buf as binary STL and returns a triangle
// source over its facets.
//
// Well-formed buffers within the triangle limit are decoded with the
// hschendel/stl library. Buffers whose declared count exceeds the
// limit, or whose payload is shorter than the declared count requires,
// fall back to a bounded manual decode of as many complete 50-byte
// records as the buffer holds.
func ReadTriangles(buf []byte, opts ...ReaderOptions) (*TriangleSource, error) {
	limit := DefaultTriangleLimit
	if len(opts) > 0 && opts[0].TriangleLimit > 0 {
		limit = opts[0].TriangleLimit
	}

	if len(buf) < headerSize+countSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, len(buf), headerSize+countSize)
	}
	if format := sniffForeignFormat(buf); format != "" {
		return nil, fmt.Errorf("%s input: %w", format, ErrUnsupportedFormat)
	}

	declared := binary.LittleEndian.Uint32(buf[headerSize:])
	src := &TriangleSource{declared: declared}

	expected := int64(headerSize+countSize) + int64(declared)*recordSize
	if int(declared) <= limit && int64(len(buf)) >= expected {
		if solid, err := hstl.ReadAll(bytes.NewReader(buf)); err == nil {
			src.parsed = convertSolid(solid)
			src.count = len(src.parsed)
			return src, nil
		}
		// The library rejected the buffer; decode what we can manually.
	}

	available := (len(buf) - headerSize - countSize) / recordSize
	count := available
	if int(declared) < count {
		count = int(declared)
	}
	if limit < count {
		count = limit
	}

	src.buf = buf
	src.offset = headerSize + countSize
	src.count = count
	return src, nil
}

// Next returns the next triangle, or false once the source is
// exhausted.
func (s *TriangleSource) Next() (geometry.Triangle, bool) {
	if s.read >= s.count {
		return geometry.Triangle{}, false
	}
	if s.parsed != nil {
		t := s.parsed[s.read]
		s.read++
		return t, true
	}
	t := decodeRecord(s.buf[s.offset:])
	s.offset += recordSize
	s.read++
	return t, true
}

// DeclaredCount returns the triangle count stored in the file header.
func (s *TriangleSource) DeclaredCount() uint32 {
	return s.declared
}

// ParsedCount returns the number of triangles this source decodes,
// which is at most min(DeclaredCount, limit) and may be lower for
// buffers with incomplete trailing records.
func (s *TriangleSource) ParsedCount() int {
	return s.count
}

// Capped reports whether fewer triangles are decoded than the file
// declares, either because of the triangle limit or a short buffer.
// Aggregate totals computed from a capped source should be
// extrapolated by DeclaredCount/ParsedCount.
func (s *TriangleSource) Capped() bool {
	return s.count < int(s.declared)
}

// decodeRecord reads the nine little-endian float32 vertex coordinates
// of one 50-byte record, skipping the normal and attribute bytes.
func decodeRecord(rec []byte) geometry.Triangle {
	var c [9]float64
	for i := range c {
		bits := binary.LittleEndian.Uint32(rec[12+4*i:])
		c[i] = float64(math.Float32frombits(bits))
	}
	return geometry.NewTriangle(
		geometry.NewVector3(c[0], c[1], c[2]),
		geometry.NewVector3(c[3], c[4], c[5]),
		geometry.NewVector3(c[6], c[7], c[8]),
	)
}

func convertSolid(solid *hstl.Solid) []geometry.Triangle {
	triangles := make([]geometry.Triangle, 0, len(solid.Triangles))
	for _, t := range solid.Triangles {
		triangles = append(triangles, geometry.NewTriangle(
			toVector3(t.Vertices[0]),
			toVector3(t.Vertices[1]),
			toVector3(t.Vertices[2]),
		))
	}
	return triangles
}

func toVector3(v hstl.Vec3) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}

// sniffForeignFormat returns a short format name if buf is
// recognizably not binary STL, or "" otherwise.
func sniffForeignFormat(buf []byte) string {
	head := buf
	if len(head) > 512 {
		head = head[:512]
	}
	trimmed := bytes.TrimLeft(head, " \t\r\n")

	switch {
	case bytes.HasPrefix(buf, []byte("PK\x03\x04")):
		// 3MF is a zip container
		return "3MF"
	case bytes.HasPrefix(trimmed, []byte("solid")) && bytes.Contains(head, []byte("facet")):
		// Binary files may also start with "solid" in the comment
		// header, so require a facet token before calling it ASCII.
		return "ASCII STL"
	case looksLikeOBJ(trimmed):
		return "OBJ"
	}
	return ""
}

func looksLikeOBJ(head []byte) bool {
	var hasVertex, hasFace bool
	for _, line := range bytes.Split(head, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		switch {
		case bytes.HasPrefix(line, []byte("v ")):
			hasVertex = true
		case bytes.HasPrefix(line, []byte("f ")):
			hasFace = true
		}
	}
	return hasVertex && hasFace
}
