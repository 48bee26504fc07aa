package result

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	t.Parallel()
	onFail := func(e Error) string { return "fail:" + e.Kind.String() }
	onOk := func(v int) string { return "ok:" + strconv.Itoa(v) }

	assert.Equal(t, "ok:3", Fold(Ok(3), onFail, onOk))
	assert.Equal(t, "fail:NotEnoughInput", Fold(Fail[int](ErrNotEnoughInput()), onFail, onOk))
}

func TestMapLaws(t *testing.T) {
	t.Parallel()
	identity := func(v int) int { return v }
	double := func(v int) int { return v * 2 }
	inc := func(v int) int { return v + 1 }

	tests := []struct {
		name string
		r    Result[int]
	}{
		{name: "ok", r: Ok(21)},
		{name: "fail", r: Fail[int](ErrUnexpectedInput("x"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.r, Map(tt.r, identity))

			composed := Map(tt.r, func(v int) int { return inc(double(v)) })
			assert.Equal(t, composed, Map(Map(tt.r, double), inc))
		})
	}
}

func TestMapDoesNotTouchFailure(t *testing.T) {
	t.Parallel()
	called := false
	r := Map(Fail[int](ErrNotANumber("abc")), func(v int) string {
		called = true
		return strconv.Itoa(v)
	})

	assert.False(t, called)
	e, ok := r.Failure()
	require.True(t, ok)
	assert.Equal(t, ErrNotANumber("abc"), e)
}

func TestBindAssociativity(t *testing.T) {
	t.Parallel()
	half := func(v int) Result[int] {
		if v%2 != 0 {
			return Fail[int](ErrInvalidOperation(strconv.Itoa(v)))
		}
		return Ok(v / 2)
	}
	show := func(v int) Result[string] { return Ok(strconv.Itoa(v)) }

	inputs := []Result[int]{
		Ok(8),
		Ok(3),
		Fail[int](ErrNotEnoughInput()),
	}

	for _, r := range inputs {
		left := Bind(Bind(r, half), show)
		right := Bind(r, func(v int) Result[string] { return Bind(half(v), show) })
		assert.Equal(t, left, right)
	}
}

func TestBindShortCircuits(t *testing.T) {
	t.Parallel()
	called := false
	r := Bind(Fail[int](ErrNotEnoughInput()), func(v int) Result[int] {
		called = true
		return Ok(v)
	})

	assert.False(t, called)
	assert.False(t, r.IsOk())
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()
	calls := 0
	def := func() int {
		calls++
		return -1
	}

	assert.Equal(t, 5, Ok(5).GetOrElse(def))
	assert.Equal(t, 0, calls, "default must not be evaluated on Ok")

	assert.Equal(t, -1, Fail[int](ErrNotEnoughInput()).GetOrElse(def))
	assert.Equal(t, 1, calls)
}

func TestOrElse(t *testing.T) {
	t.Parallel()
	first := ErrUnexpectedInput("a")
	second := ErrUnexpectedInput("b")

	tests := []struct {
		name     string
		r        Result[int]
		alt      Result[int]
		expected Result[int]
		altCalls int
	}{
		{
			name:     "ok keeps self",
			r:        Ok(1),
			alt:      Ok(2),
			expected: Ok(1),
			altCalls: 0,
		},
		{
			name:     "fail falls back to ok alternative",
			r:        Fail[int](first),
			alt:      Ok(2),
			expected: Ok(2),
			altCalls: 1,
		},
		{
			name:     "both fail keeps first error",
			r:        Fail[int](first),
			alt:      Fail[int](second),
			expected: Fail[int](first),
			altCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			calls := 0
			got := tt.r.OrElse(func() Result[int] {
				calls++
				return tt.alt
			})
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.altCalls, calls)
		})
	}
}

func TestSequence(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    []Result[string]
		expected Result[[]string]
	}{
		{
			name:     "empty",
			input:    nil,
			expected: Ok([]string{}),
		},
		{
			name:     "all ok keeps order",
			input:    []Result[string]{Ok("a"), Ok("b"), Ok("c")},
			expected: Ok([]string{"a", "b", "c"}),
		},
		{
			name: "leftmost failure wins",
			input: []Result[string]{
				Ok("a"),
				Fail[string](ErrUnexpectedInput("first")),
				Fail[string](ErrUnexpectedInput("second")),
			},
			expected: Fail[[]string](ErrUnexpectedInput("first")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Sequence(tt.input))
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()
	v, err := Ok("x").Get()
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	_, err = Fail[string](ErrNotANumber("1x")).Get()
	require.Error(t, err)

	var target Error
	require.True(t, errors.As(err, &target))
	assert.Equal(t, NotANumber, target.Kind)
	assert.True(t, errors.Is(err, ErrNotANumber("1x")))
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Ok(7)", Ok(7).String())
	assert.Equal(t, `Fail(UnexpectedInput("h"))`, Fail[int](ErrUnexpectedInput("h")).String())
	assert.Equal(t, "Fail(NotEnoughInput)", Fail[int](ErrNotEnoughInput()).String())
	assert.Equal(t, "not enough input", ErrNotEnoughInput().Error())
}

func TestErrorJSON(t *testing.T) {
	t.Parallel()
	d, err := json.Marshal(ErrUnexpectedInput("x"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"UnexpectedInput","text":"x"}`, string(d))

	d, err = json.Marshal(ErrNotEnoughInput())
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"NotEnoughInput"}`, string(d))

	var decoded Error
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"NotANumber","text":"1x"}`), &decoded))
	assert.Equal(t, ErrNotANumber("1x"), decoded)

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"Bogus"}`), &decoded))
}
