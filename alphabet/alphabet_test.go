package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignsDenseIndicesInOrder(t *testing.T) {
	a, err := New([]byte{'x', 'a', 'm'})
	require.NoError(t, err)

	assert.Equal(t, 4, a.Size())
	assert.Equal(t, 0, a.IndexOf(Terminal))
	assert.Equal(t, 1, a.IndexOf('x'))
	assert.Equal(t, 2, a.IndexOf('a'))
	assert.Equal(t, 3, a.IndexOf('m'))
	assert.Equal(t, -1, a.IndexOf('z'))
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]byte{'a', 'b', 'a'})
	require.ErrorIs(t, err, ErrDuplicateLetter)
}

func TestNewRejectsExplicitTerminal(t *testing.T) {
	_, err := New([]byte{'a', Terminal, 'b'})
	require.ErrorIs(t, err, ErrTerminalLetter)
}

func TestContainsAll(t *testing.T) {
	a, err := New([]byte{'a', 'b'})
	require.NoError(t, err)

	assert.True(t, a.ContainsAll([]byte("abba")))
	assert.True(t, a.ContainsAll([]byte{'a', Terminal, 'b'}))
	assert.True(t, a.ContainsAll(nil))
	assert.False(t, a.ContainsAll([]byte("abc")))
}

func TestZeroValueHasNoMembers(t *testing.T) {
	var a Alphabet

	assert.Equal(t, 0, a.Size())
	assert.False(t, a.Contains(Terminal))
	assert.Equal(t, -1, a.IndexOf('a'))
}

func TestLowercaseEnglish(t *testing.T) {
	a := LowercaseEnglish()

	assert.Equal(t, 27, a.Size())
	assert.Equal(t, 0, a.IndexOf(Terminal))
	assert.Equal(t, 1, a.IndexOf('a'))
	assert.Equal(t, 26, a.IndexOf('z'))
	assert.False(t, a.Contains('A'))
	assert.False(t, a.Contains(' '))
}

func TestPrintable(t *testing.T) {
	a := Printable()

	assert.Equal(t, 96, a.Size())
	assert.Equal(t, 0, a.IndexOf(Terminal))
	assert.Equal(t, 1, a.IndexOf(' '))
	assert.Equal(t, 95, a.IndexOf('~'))
	assert.False(t, a.Contains('\n'))
	assert.False(t, a.Contains(0x7F))
}
