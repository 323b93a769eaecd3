package circuitio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcompiler/telesabre/circuitio"
)

const chainJSON = `{
	"num_qubits": 4,
	"gates": [
		{"op": "cx", "targets": [0, 1]},
		{"op": "cx", "targets": [2, 3]},
		{"op": "h", "targets": [0]}
	]
}`

func TestDecode_ParsesGatesInOrder(t *testing.T) {
	c, err := circuitio.Decode(strings.NewReader(chainJSON))
	require.NoError(t, err)
	require.Len(t, c.Gates, 3)
	assert.Equal(t, "cx", c.Gates[0].Op)
	assert.Equal(t, []int{0, 1}, c.Gates[0].Targets)
	assert.Equal(t, "h", c.Gates[2].Op)
	assert.True(t, c.Gates[2].IsTwoQubit() == false)
}

func TestFromGates_RejectsOutOfRangeTarget(t *testing.T) {
	_, err := circuitio.FromGates(2, []circuitio.GateSpec{{Op: "cx", Targets: []int{0, 5}}})
	assert.Error(t, err)
}

func TestEncodeDecode_RoundTrips(t *testing.T) {
	c, err := circuitio.Decode(strings.NewReader(chainJSON))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, circuitio.Encode(&buf, c))

	c2, err := circuitio.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.NumQubits, c2.NumQubits)
	assert.Equal(t, c.Gates, c2.Gates)
}
