package stl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"vecx/model"
	vm "vecx/vector_math"
)

const (
	headerSize = 80
	// normal, 3 vertices, 2 byte attribute count
	triangleStride = 50
)

func ReadStlFile(path string) (*model.Mesh, error) {
	log.Printf("Reading stl file %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadStl(f)
}

// ReadStl decodes a binary STL stream. Every triangle contributes three
// vertices coloured by the facet normal.
func ReadStl(r io.Reader) (*model.Mesh, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(b) < headerSize+4 {
		return nil, fmt.Errorf("stl: file too short for header, %d bytes", len(b))
	}
	header := bytes.TrimRight(b[:headerSize], "\x00 ")
	tCnt := binary.LittleEndian.Uint32(b[headerSize : headerSize+4])
	body := b[headerSize+4:]
	if want := uint64(tCnt) * triangleStride; uint64(len(body)) < want {
		return nil, fmt.Errorf("stl: %d triangles need %d bytes, got %d", tCnt, want, len(body))
	}
	log.Printf("Successfully read stl file, Header: '%s', Triangle Count: %d, Triangle memory size: %d KiB",
		header, tCnt, len(body)/1024)
	return toMesh(body, tCnt), nil
}

func toMesh(b []byte, triangleCnt uint32) *model.Mesh {
	v := make([]model.Vertex, 0, triangleCnt*3)
	id := make([]uint32, 0, triangleCnt*3)

	for t := 0; t < int(triangleCnt); t++ {
		i := t * triangleStride
		normal := toVec3(b[i : i+12])
		for k := 0; k < 3; k++ {
			off := i + 12 + k*12
			id = append(id, uint32(len(v)))
			v = append(v, model.Vertex{
				Pos:   toVec3(b[off : off+12]),
				Color: normal,
			})
		}
	}

	return model.NewMesh(v, id)
}

func toVec3(b []byte) vm.Vec3 {
	return vm.Vec3{
		X: toFloat(b[:4]),
		Y: toFloat(b[4:8]),
		Z: toFloat(b[8:12]),
	}
}

func toFloat(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}
