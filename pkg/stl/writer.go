package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/printwise/meshcost/pkg/geometry"
)

// Encode writes triangles to w as binary STL. The name is stored in
// the 80-byte comment header, truncated if necessary. Facet normals
// are recomputed from the vertex winding.
func Encode(w io.Writer, name string, triangles []geometry.Triangle) error {
	var header [headerSize]byte
	copy(header[:], name)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	var count [countSize]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(triangles)))
	if _, err := w.Write(count[:]); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	record := make([]byte, recordSize)
	for i, t := range triangles {
		putVector(record[0:], t.Normal())
		putVector(record[12:], t.V1)
		putVector(record[24:], t.V2)
		putVector(record[36:], t.V3)
		record[48] = 0
		record[49] = 0
		if _, err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	return nil
}

func putVector(b []byte, v geometry.Vector3) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}
