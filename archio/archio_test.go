package archio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcompiler/telesabre/arch"
	"github.com/qcompiler/telesabre/archio"
)

const twoCoreLineJSON = `{
	"name": "2x1C 4x1Q line",
	"num_qubits": 8,
	"num_cores": 2,
	"qubit_to_core": [0, 0, 0, 0, 1, 1, 1, 1],
	"intra_core_edges": [[0,1],[1,2],[2,3],[4,5],[5,6],[6,7]],
	"inter_core_edges": [[3,4]],
	"node_positions": [[0,0],[1,0],[2,0],[3,0],[4,0],[5,0],[6,0],[7,0]]
}`

func TestDecode_ParsesDocumentedFields(t *testing.T) {
	spec, err := archio.Decode(strings.NewReader(twoCoreLineJSON))
	require.NoError(t, err)
	assert.Equal(t, "2x1C 4x1Q line", spec.Name)
	assert.Equal(t, 8, spec.NumQubits)
	assert.Equal(t, 2, spec.NumCores)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1}, spec.QubitToCore)
	assert.Len(t, spec.IntraCoreEdges, 6)
	assert.Len(t, spec.InterCoreEdges, 1)
	assert.Equal(t, arch.Edge{P1: 3, P2: 4}, spec.InterCoreEdges[0])
	assert.Len(t, spec.NodePositions, 8)
}

func TestDecode_BuildsAValidArchitecture(t *testing.T) {
	spec, err := archio.Decode(strings.NewReader(twoCoreLineJSON))
	require.NoError(t, err)
	a, err := arch.New(spec)
	require.NoError(t, err)
	assert.True(t, a.IsCommQubit(3))
	assert.True(t, a.IsCommQubit(4))
}

func TestDecode_RejectsMalformedJSON(t *testing.T) {
	_, err := archio.Decode(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestEncodeDecode_RoundTrips(t *testing.T) {
	spec, err := archio.Decode(strings.NewReader(twoCoreLineJSON))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, archio.Encode(&buf, spec))

	spec2, err := archio.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, spec.Name, spec2.Name)
	assert.Equal(t, spec.NumQubits, spec2.NumQubits)
	assert.Equal(t, spec.IntraCoreEdges, spec2.IntraCoreEdges)
	assert.Equal(t, spec.InterCoreEdges, spec2.InterCoreEdges)
}
