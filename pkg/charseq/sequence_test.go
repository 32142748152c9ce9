package charseq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/charseq/pkg/charseq"
)

func TestSequenceImplementations(t *testing.T) {
	t.Parallel()

	for kind, seq := range sequences("hello") {
		t.Run(kind, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, 5, seq.Len())
			assert.Equal(t, 'h', seq.At(0))
			assert.Equal(t, 'o', seq.At(4))
			assert.Equal(t, "hello", seq.String())

			sub := seq.Slice(1, 4)
			assert.Equal(t, 3, sub.Len())
			assert.Equal(t, "ell", sub.String())
			assert.Equal(t, 'e', sub.At(0))

			assert.Equal(t, 0, seq.Slice(5, 5).Len())

			assert.Panics(t, func() { seq.At(5) })
			assert.Panics(t, func() { seq.At(-1) })
			assert.Panics(t, func() { seq.Slice(2, 1) })
			assert.Panics(t, func() { seq.Slice(0, 6) })
		})
	}
}

func TestSliceSharesStorage(t *testing.T) {
	t.Parallel()

	buf := []byte("abcdef")
	sub := charseq.Bytes(buf).Slice(2, 4)
	buf[2] = 'X'
	assert.Equal(t, 'X', sub.At(0))
}

func TestUTF16String(t *testing.T) {
	t.Parallel()

	// U+1F4A9 as a surrogate pair, then a lone high surrogate
	seq := charseq.UTF16{'a', 0xD83D, 0xDCA9, 0xD800}
	assert.Equal(t, 4, seq.Len())
	assert.Equal(t, rune(0xD83D), seq.At(1))
	assert.Equal(t, "a\U0001F4A9\uFFFD", seq.String())
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	for _, seq := range []charseq.Sequence{charseq.Empty, charseq.String(""), charseq.Of("")} {
		assert.Equal(t, 0, seq.Len())
		assert.Equal(t, "", seq.String())
		assert.Equal(t, 0, seq.Slice(0, 0).Len())
		assert.Panics(t, func() { seq.Slice(0, 1) })
		assert.Panics(t, func() { seq.Slice(1, 0) })
	}

	assert.Equal(t, charseq.Empty, charseq.Empty.Slice(0, 0))
	assert.Equal(t, charseq.Empty, charseq.Of(""))
}

func TestEmptyAtMessage(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, charseq.ErrIndexOutOfRange)

		var idxErr *charseq.IndexError
		require.ErrorAs(t, err, &idxErr)
		assert.Equal(t, 0, idxErr.Length)
		assert.Regexp(t, `index out of range: 0$`, err.Error())
	}()
	charseq.Empty.At(0)
}
