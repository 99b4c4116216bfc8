package machine_test

import (
	"bytes"
	"math"
	"testing"

	nr "github.com/db47h/nandram"
	"github.com/db47h/nandram/machine"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMachine(t *testing.T) (*machine.Machine, *test.Hook) {
	t.Helper()
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	cfg := machine.DefaultConfig()
	cfg.Logger = l
	m, err := machine.New(cfg)
	require.NoError(t, err)
	return m, hook
}

func TestNew(t *testing.T) {
	m, _ := newMachine(t)
	assert.Equal(t, 8, m.AddressWidth())
	assert.Equal(t, 8, m.DataWidth())
	assert.Equal(t, 256, m.Size())

	_, err := machine.New(machine.Config{AddressWidth: 0, DataWidth: 8})
	assert.True(t, errors.Is(err, nr.ErrInvalidAddressWidth), "%v", err)
	_, err = machine.New(machine.Config{AddressWidth: 4, DataWidth: 0})
	assert.True(t, errors.Is(err, nr.ErrInvalidWidth), "%v", err)

	// nil logger falls back to the standard logger
	m, err = machine.New(machine.Config{AddressWidth: 2, DataWidth: 3})
	require.NoError(t, err)
	assert.NoError(t, m.WriteUint(3, 5))
}

func TestMachine_writeRead(t *testing.T) {
	m, hook := newMachine(t)
	h, e := nr.WordOf('H', 8), nr.WordOf('e', 8)
	a0, a1 := nr.AddressOf(0, 8), nr.AddressOf(1, 8)

	require.NoError(t, m.Write(a0, h))
	require.NoError(t, m.Write(a1, e))
	assert.Equal(t, a1, m.AddressRegister())

	out, err := m.Read(a1)
	require.NoError(t, err)
	assert.Equal(t, e, out)
	out, err = m.Read(a0)
	require.NoError(t, err)
	assert.Equal(t, h, out)

	require.Len(t, hook.AllEntries(), 4)
	last := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, last.Level)
	assert.Equal(t, "ram read", last.Message)
	assert.Equal(t, "00000000", last.Data["addr"])
	assert.Equal(t, "01001000", last.Data["out"])
}

func TestMachine_uint(t *testing.T) {
	m, _ := newMachine(t)
	require.NoError(t, m.WriteUint(0x2e, 0x1ff))
	v, err := m.ReadUint(0x2e)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xff), v)

	assert.True(t, errors.Is(m.WriteUint(256, 1), machine.ErrAddressRange))
	_, err = m.ReadUint(1000)
	assert.True(t, errors.Is(err, machine.ErrAddressRange))
}

func TestMachine_widthMismatch(t *testing.T) {
	m, _ := newMachine(t)
	require.NoError(t, m.Write(nr.AddressOf(7, 8), nr.WordOf(7, 8)))

	err := m.Write(nr.AddressOf(1, 7), nr.WordOf(1, 8))
	assert.True(t, errors.Is(err, nr.ErrWidthMismatch), "%v", err)
	err = m.Write(nr.AddressOf(1, 8), nr.WordOf(1, 9))
	assert.True(t, errors.Is(err, nr.ErrWidthMismatch), "%v", err)
	_, err = m.Read(nr.AddressOf(1, 9))
	assert.True(t, errors.Is(err, nr.ErrWidthMismatch), "%v", err)

	// failed calls do not touch the address register
	assert.Equal(t, nr.AddressOf(7, 8), m.AddressRegister())
}

func TestMachine_string(t *testing.T) {
	m, _ := newMachine(t)
	const at = 0x2e
	require.NoError(t, m.WriteString(at, "Hello world"))
	s, err := m.ReadString(at, 11)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", s)

	s, err = m.ReadString(at, 5)
	require.NoError(t, err)
	assert.Equal(t, "Hello", s)

	err = m.WriteString(250, "Hello world")
	assert.True(t, errors.Is(err, machine.ErrAddressRange), "%v", err)
	_, err = m.ReadString(250, 11)
	assert.True(t, errors.Is(err, machine.ErrAddressRange), "%v", err)

	// at+len wraps around
	err = m.WriteString(math.MaxUint64, "H")
	assert.True(t, errors.Is(err, machine.ErrAddressRange), "%v", err)
	_, err = m.ReadString(math.MaxUint64, 1)
	assert.True(t, errors.Is(err, machine.ErrAddressRange), "%v", err)
	err = m.WriteString(256, "")
	assert.True(t, errors.Is(err, machine.ErrAddressRange), "%v", err)
	_, err = m.ReadString(0, -1)
	assert.True(t, errors.Is(err, machine.ErrAddressRange), "%v", err)
	v, err := m.ReadUint(0xff)
	require.NoError(t, err)
	assert.Zero(t, v)
	// a string may end on the last word
	require.NoError(t, m.WriteString(0xfe, "ok"))
	s, err = m.ReadString(0xfe, 2)
	require.NoError(t, err)
	assert.Equal(t, "ok", s)

	err = m.WriteString(0, "héllo")
	assert.True(t, errors.Is(err, machine.ErrUnmappable), "%v", err)
	// nothing written
	v, err = m.ReadUint(0)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestMachine_stringNonASCII(t *testing.T) {
	m, _ := newMachine(t)
	require.NoError(t, m.WriteString(0x10, "HH"))
	require.NoError(t, m.WriteUint(0x11, 0xc8))
	_, err := m.ReadString(0x10, 2)
	assert.True(t, errors.Is(err, machine.ErrUnmappable), "%v", err)
	s, err := m.ReadString(0x10, 1)
	require.NoError(t, err)
	assert.Equal(t, "H", s)
}

func TestCharBits(t *testing.T) {
	w, err := machine.CharBits('H', 8)
	require.NoError(t, err)
	assert.Equal(t, nr.Word{0, 1, 0, 0, 1, 0, 0, 0}, w)
	assert.Equal(t, 'H', machine.BitsChar(w))

	_, err = machine.CharBits('H', 6)
	assert.True(t, errors.Is(err, machine.ErrUnmappable))
	_, err = machine.CharBits('?', 6)
	assert.NoError(t, err)
}

func TestMachine_Dump(t *testing.T) {
	m, _ := newMachine(t)
	require.NoError(t, m.WriteString(0, "He"))
	require.NoError(t, m.WriteUint(0x10, 0x80))

	var b bytes.Buffer
	require.NoError(t, m.Dump(&b, 2))
	assert.Equal(t, "00: 01001000 (48 'H')  01: 01100101 (65 'e')\n10: 10000000 (80 '.')\n", b.String())

	b.Reset()
	require.NoError(t, m.Dump(&b, 0))
	assert.Equal(t, "00: 01001000 (48 'H')\n01: 01100101 (65 'e')\n10: 10000000 (80 '.')\n", b.String())
}
