package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGeometry(t *testing.T) {
	triangle := []float32{
		-1, -1, 0,
		1, -1, 0,
		0, 1, 0,
	}
	pyramid := []float32{
		-1, -1, 0,
		0, -1, 1,
		1, -1, 0,
		0, 1, 0,
	}

	cases := []struct {
		name     string
		vertices []float32
		indices  []uint32
		ok       bool
	}{
		{"triangle", triangle, nil, true},
		{"pyramid", pyramid, []uint32{0, 3, 1, 1, 3, 2, 2, 3, 0, 0, 1, 2}, true},
		{"empty", nil, nil, false},
		{"ragged floats", []float32{0, 1}, nil, false},
		{"partial triangle", pyramid, nil, false},
		{"partial index triple", pyramid, []uint32{0, 1}, false},
		{"index out of range", pyramid, []uint32{0, 1, 4}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateGeometry(tc.vertices, tc.indices)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUploadMeshRejectsBadInputBeforeGL(t *testing.T) {
	// no context exists here; validation must fail first
	m, err := UploadMesh([]float32{1, 2}, nil)
	assert.Error(t, err)
	assert.Nil(t, m)
}
