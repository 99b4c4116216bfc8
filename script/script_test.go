package script_test

import (
	"bytes"
	"testing"

	"github.com/db47h/nandram/machine"
	"github.com/db47h/nandram/script"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMachine(t *testing.T) *machine.Machine {
	t.Helper()
	l, _ := test.NewNullLogger()
	cfg := machine.DefaultConfig()
	cfg.Logger = l
	m, err := machine.New(cfg)
	require.NoError(t, err)
	return m
}

func TestRun(t *testing.T) {
	m := newMachine(t)
	var out bytes.Buffer
	src := `
write(0, 0x48)
write(addr=1, data=0x65)
print(read(1), read(0))
write_string(0x2e, "Hello world")
print(read_string(0x2e, 11))
print(address_width, data_width)
`
	require.NoError(t, script.Run(m, "test.star", src, &out))
	assert.Equal(t, "101 72\nHello world\n8 8\n", out.String())

	s, err := m.ReadString(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "He", s)
}

func TestRun_errors(t *testing.T) {
	td := []struct {
		name string
		src  string
		err  string
	}{
		{"range", "write(256, 1)", "address out of range"},
		{"negative", "read(-1)", "negative address"},
		{"unmappable", `write_string(0, "é")`, "unmappable character"},
		{"args", "read()", "missing argument for addr"},
		{"syntax", "write(", "test.star"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			var out bytes.Buffer
			err := script.Run(newMachine(t), "test.star", d.src, &out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), d.err)
		})
	}
}
