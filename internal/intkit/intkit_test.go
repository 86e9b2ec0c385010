package intkit_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/KlasafGeijerstam/ati/internal/intkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

type MyInt int16

type MyUint uint8

func TestIsSigned(t *testing.T) {
	assert.True(t, intkit.IsSigned[int]())
	assert.True(t, intkit.IsSigned[int8]())
	assert.True(t, intkit.IsSigned[int16]())
	assert.True(t, intkit.IsSigned[int32]())
	assert.True(t, intkit.IsSigned[int64]())
	assert.True(t, intkit.IsSigned[MyInt]())

	assert.False(t, intkit.IsSigned[uint]())
	assert.False(t, intkit.IsSigned[uint8]())
	assert.False(t, intkit.IsSigned[uint16]())
	assert.False(t, intkit.IsSigned[uint32]())
	assert.False(t, intkit.IsSigned[uint64]())
	assert.False(t, intkit.IsSigned[uintptr]())
	assert.False(t, intkit.IsSigned[MyUint]())
}

func TestToInt(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("smoke", func(t *testcase.T) {
		n, ok := intkit.ToInt[int8](-42)
		assert.True(t, ok)
		assert.Equal(t, -42, n)

		n, ok = intkit.ToInt[uint16](42)
		assert.True(t, ok)
		assert.Equal(t, 42, n)

		n, ok = intkit.ToInt[MyInt](-7)
		assert.True(t, ok)
		assert.Equal(t, -7, n)
	})

	s.Test("positive", func(t *testcase.T) {
		val := t.Random.IntBetween(0, math.MaxInt8)

		for _, got := range []func() (int, bool){
			func() (int, bool) { return intkit.ToInt(int8(val)) },
			func() (int, bool) { return intkit.ToInt(int16(val)) },
			func() (int, bool) { return intkit.ToInt(int32(val)) },
			func() (int, bool) { return intkit.ToInt(int64(val)) },
			func() (int, bool) { return intkit.ToInt(uint8(val)) },
			func() (int, bool) { return intkit.ToInt(uint16(val)) },
			func() (int, bool) { return intkit.ToInt(uint32(val)) },
			func() (int, bool) { return intkit.ToInt(uint64(val)) },
			func() (int, bool) { return intkit.ToInt(uintptr(val)) },
		} {
			n, ok := got()
			assert.True(t, ok)
			assert.Equal(t, val, n)
		}
	})

	s.Test("negative", func(t *testcase.T) {
		val := t.Random.IntBetween(math.MinInt8, -1)

		n, ok := intkit.ToInt(int8(val))
		assert.True(t, ok)
		assert.Equal(t, val, n)

		n, ok = intkit.ToInt(int64(val))
		assert.True(t, ok)
		assert.Equal(t, val, n)
	})

	s.Test("boundaries", func(t *testcase.T) {
		n, ok := intkit.ToInt(uint(math.MaxInt))
		assert.True(t, ok)
		assert.Equal(t, math.MaxInt, n)

		n, ok = intkit.ToInt(int(math.MinInt))
		assert.True(t, ok)
		assert.Equal(t, math.MinInt, n)
	})

	s.Test("unsigned value beyond int", func(t *testcase.T) {
		_, ok := intkit.ToInt(uint(math.MaxInt) + 1)
		assert.False(t, ok)

		_, ok = intkit.ToInt(uint64(math.MaxUint64))
		assert.False(t, ok)
	})

	s.Test("int64 on a 32-bit platform", func(t *testcase.T) {
		if strconv.IntSize != 32 {
			t.Skip("int is wider than 32 bits")
		}
		_, ok := intkit.ToInt(int64(math.MaxInt32) + 1)
		assert.False(t, ok)
		_, ok = intkit.ToInt(int64(math.MinInt32) - 1)
		assert.False(t, ok)
	})
}
