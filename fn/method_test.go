package fn_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/roster/fn"
)

type dog struct{ Name string }

func (d dog) Hello() string { return "bark, bark, " + d.Name }

type musician struct{ Name string }

func (m *musician) Hello() string { return "Hi, I'm " + m.Name }

type machine struct{ Name string }

type checker struct{ fail bool }

func (c checker) Check() error {
	if c.fail {
		return errors.New("check failed")
	}
	return nil
}

func (checker) Value() any { return nil }

func (m machine) Hello() string      { return `PRINT "` + m.Name + ` here"` }
func (m machine) Rename(string) bool { return false }
func (m machine) Specs() (int, int)  { return 48, 16 }
func (m machine) Bits() int          { return 8 }

func TestMethod(t *testing.T) {
	hello := fn.Method[string]("Hello")

	got, err := hello(dog{Name: "Fluffy"})
	require.NoError(t, err)
	assert.Equal(t, "bark, bark, Fluffy", got)

	got, err = hello(&musician{Name: "John Lennon"})
	require.NoError(t, err)
	assert.Equal(t, "Hi, I'm John Lennon", got)

	got, err = hello(machine{Name: "ZX Spectrum"})
	require.NoError(t, err)
	assert.Equal(t, `PRINT "ZX Spectrum here"`, got)
}

func TestMethodInterfaceResults(t *testing.T) {
	check := fn.Method[error]("Check")

	checkErr, err := check(checker{})
	require.NoError(t, err)
	assert.NoError(t, checkErr)

	checkErr, err = check(checker{fail: true})
	require.NoError(t, err)
	assert.EqualError(t, checkErr, "check failed")

	v, err := fn.Method[any]("Value")(checker{})
	require.NoError(t, err)
	assert.Nil(t, v)

	bits, err := fn.Method[any]("Bits")(machine{})
	require.NoError(t, err)
	assert.Equal(t, 8, bits)
}

func TestMethodFailures(t *testing.T) {
	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{"missing method", func() error { _, err := fn.Method[string]("Goodbye")(dog{}); return err }, fn.ErrMethodNotFound},
		{"nil subject", func() error { _, err := fn.Method[string]("Hello")(nil); return err }, fn.ErrMethodNotFound},
		{"pointer method on value", func() error { _, err := fn.Method[string]("Hello")(musician{}); return err }, fn.ErrMethodNotFound},
		{"needs arguments", func() error { _, err := fn.Method[bool]("Rename")(machine{}); return err }, fn.ErrNotCallable},
		{"two results", func() error { _, err := fn.Method[int]("Specs")(machine{}); return err }, fn.ErrResultType},
		{"wrong result type", func() error { _, err := fn.Method[string]("Bits")(machine{}); return err }, fn.ErrResultType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), tt.wantErr)
		})
	}
}

func TestMustMethodPanics(t *testing.T) {
	assert.Equal(t, 8, fn.MustMethod[int]("Bits")(machine{}))
	assert.Panics(t, func() { fn.MustMethod[string]("Goodbye")(dog{}) })
}

func TestMethodTable(t *testing.T) {
	table := fn.NewMethodTable[dog, string]().
		Register("hello", func(d dog) string { return "bark, bark, " + d.Name })

	hello := table.Lookup("hello")
	got, err := hello(dog{Name: "Fluffy"})
	require.NoError(t, err)
	assert.Equal(t, "bark, bark, Fluffy", got)

	wag := table.Lookup("wag")
	_, err = wag(dog{})
	assert.ErrorIs(t, err, fn.ErrMethodNotFound)

	table.Register("wag", func(d dog) string { return d.Name + " wags" })
	assert.True(t, table.Has("wag"))
	got, err = wag(dog{Name: "Rex"})
	require.NoError(t, err)
	assert.Equal(t, "Rex wags", got)
}
