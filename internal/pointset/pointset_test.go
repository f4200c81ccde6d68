package pointset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionCommutativeAndIdempotent(t *testing.T) {
	a := FromIDs(1, 2, 3)
	b := FromIDs(3, 4, 5)

	ab := a.Clone()
	ab.UnionInPlace(b)

	ba := b.Clone()
	ba.UnionInPlace(a)

	assert.ElementsMatch(t, ab.ToSlice(), ba.ToSlice())

	aa := a.Clone()
	aa.UnionInPlace(a)
	assert.ElementsMatch(t, aa.ToSlice(), a.ToSlice())
}

func TestSerializeRoundTrip(t *testing.T) {
	original := FromIDs(7, 42, 1000)

	bytes, err := original.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(bytes)
	require.NoError(t, err)

	assert.Equal(t, original.Len(), restored.Len())
	assert.ElementsMatch(t, original.ToSlice(), restored.ToSlice())
}

func TestDeserializeRejectsEmptyInput(t *testing.T) {
	_, err := Deserialize(nil)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestDeserializeRejectsUnknownVersion(t *testing.T) {
	_, err := Deserialize([]byte{0xFF, 0x00})
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestDeserializeRejectsTruncatedInput(t *testing.T) {
	original := FromIDs(1, 2, 3, 4, 5, 100000)
	data, err := original.Serialize()
	require.NoError(t, err)

	_, err = Deserialize(data[:len(data)/2])
	require.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	a := FromIDs(1, 2, 3)
	b := a.Clone()
	b.Add(99)

	assert.False(t, a.Contains(99))
	assert.True(t, b.Contains(99))
}
