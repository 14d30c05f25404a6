package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vm16/cpu"
	"github.com/ezrec/vm16/memory"
)

func runApp(t *testing.T, input string, args ...string) (output string, err error) {
	t.Helper()

	buf := &bytes.Buffer{}
	app := newApp()
	app.Writer = buf
	app.Reader = strings.NewReader(input)

	err = app.Run(append([]string{"vm16"}, args...))
	output = buf.String()
	return
}

func TestParseSize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		size int
		ok   bool
	}){
		{"256", 256, true},
		{"1Ki", 1024, true},
		{"64Ki", 0x10000, true},
		{"2", 2, true},
		{"1", 0, false},
		{"65Ki", 0, false},
		{"1.5", 0, false},
		{"many", 0, false},
	}

	for _, entry := range table {
		size, err := parseSize(entry.text)
		if entry.ok {
			assert.NoError(err, entry.text)
			assert.Equal(entry.size, size, entry.text)
		} else {
			assert.ErrorIs(err, memory.ErrMemorySize, entry.text)
		}
	}
}

func TestParseAddress(t *testing.T) {
	assert := assert.New(t)

	addr, err := parseAddress("0x40")
	assert.NoError(err)
	assert.Equal(uint16(0x40), addr)

	addr, err = parseAddress("64")
	assert.NoError(err)
	assert.Equal(uint16(64), addr)

	_, err = parseAddress("0x10000")
	assert.Error(err)
}

func TestRun_Batch(t *testing.T) {
	assert := assert.New(t)

	output, err := runApp(t, "", "-p", "add")
	assert.NoError(err)
	assert.Contains(output, "acc: 0xbe01")
	assert.Contains(output, "4 steps")
}

func TestRun_Until(t *testing.T) {
	assert := assert.New(t)

	output, err := runApp(t, "", "-p", "loop", "-u", "acc == 2")
	assert.NoError(err)
	assert.Contains(output, "acc: 0x0002")
	assert.Contains(output, "7 steps")
}

func TestRun_Break(t *testing.T) {
	assert := assert.New(t)

	output, err := runApp(t, "", "-p", "call", "--break", "0x40")
	assert.NoError(err)
	assert.Contains(output, "ip: 0x0040")
	assert.Contains(output, "4 steps")
}

func TestRun_Steps(t *testing.T) {
	assert := assert.New(t)

	output, err := runApp(t, "", "-p", "loop", "-n", "3")
	assert.NoError(err)
	assert.Contains(output, "3 steps")
}

func TestRun_Lines(t *testing.T) {
	assert := assert.New(t)

	output, err := runApp(t, "\n\n", "-p", "add", "--step")
	assert.NoError(err)
	assert.Equal(3, strings.Count(output, "acc:"))
	assert.Contains(output, "r1: 0x1234")
	assert.Contains(output, "r2: 0xabcd")
}

func TestRun_List(t *testing.T) {
	assert := assert.New(t)

	output, err := runApp(t, "", "--list")
	assert.NoError(err)
	assert.Equal("add\nargs\ncall\nloop\n", output)
}

func TestRun_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := runApp(t, "", "-p", "missing")
	assert.ErrorIs(err, ErrProgramUnknown)

	_, err = runApp(t, "", "-m", "1")
	assert.ErrorIs(err, memory.ErrMemorySize)

	_, err = runApp(t, "", "-m", "16", "-p", "add")
	assert.ErrorIs(err, memory.ErrMemoryBounds)

	_, err = runApp(t, "", "-u", "acc ==")
	assert.Error(err)
}

func TestRun_Binary(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "image.bin")
	image := []byte{
		0x42,                   // unknown
		0x10, 0x00, 0x07, 0x02, // MOV_LIT_REG 0x0007, r1
	}
	assert.NoError(os.WriteFile(path, image, 0o644))

	output, err := runApp(t, "", "-b", path, "--origin", "0x10", "-n", "2")
	assert.NoError(err)
	assert.Contains(output, "r1: 0x0007")

	_, err = runApp(t, "", "-b", path, "--origin", "0x10", "-n", "2", "--strict")
	assert.ErrorIs(err, cpu.ErrOpcodeUnknown)
}
