package errnotify

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFunction(t *testing.T) {
	t.Parallel()

	var nilFunc func(error)
	var nilSubscriber SubscriberFunc

	cases := []struct {
		name string
		v    any
		want bool
	}{
		{"named func", errorSubscriber, true},
		{"anonymous func", func() {}, true},
		{"method value", (&structSubscriber{}).NotifyError, true},
		{"nil", nil, false},
		{"typed nil func", nilFunc, false},
		{"typed nil SubscriberFunc", nilSubscriber, false},
		{"typed nil ErrorSubscriber", (*structSubscriber)(nil), false},
		{"map", map[string]any{}, false},
		{"slice", []any{errorSubscriber}, false},
		{"struct", structSubscriber{}, false},
		{"string", "function", false},
		{"int", 7, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, isFunction(tc.v))
		})
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var nilMap map[string]any
	var nilErr error

	assert.True(t, isNil(nil))
	assert.True(t, isNil((*structSubscriber)(nil)))
	assert.True(t, isNil((*fieldNamedSubscriber)(nil)))
	assert.True(t, isNil(SubscriberFunc(nil)))
	assert.True(t, isNil(nilMap))
	assert.True(t, isNil(nilErr))

	assert.False(t, isNil(&structSubscriber{}))
	assert.False(t, isNil(anonymousSubscriber{}))
	assert.False(t, isNil(errorSubscriber))
	assert.False(t, isNil(0))
}

func TestArgumentTypes(t *testing.T) {
	t.Parallel()

	assert.Empty(t, argumentTypes(bad))
	assert.Empty(t, argumentTypes(nil))
	assert.Empty(t, argumentTypes(42))

	got := argumentTypes(wrongFirst)
	require.Len(t, got, 2)
	assert.Equal(t, reflect.TypeOf(""), got[0])
	assert.Equal(t, errorType, got[1])

	got = argumentTypes(func(err error, rest ...int) {})
	require.Len(t, got, 2)
	assert.Equal(t, errorType, got[0])
	assert.Equal(t, reflect.TypeOf([]int(nil)), got[1])
}

func TestFuncName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "errorSubscriber", funcName(errorSubscriber))
	assert.Equal(t, "(*structSubscriber).NotifyError-fm", funcName((&structSubscriber{}).NotifyError))
	assert.Contains(t, funcName(func(error) {}), "TestFuncName.func")
}

func TestAdaptFunc(t *testing.T) {
	t.Parallel()

	var gotErr error
	var gotOpts any
	var gotFb bool

	shapes := []any{
		func(err error) { gotErr = err },
		func(err error, opts any) { gotErr, gotOpts = err, opts },
		handlerFunc(func(err error, opts any) { gotErr, gotOpts = err, opts }),
		func(err error, opts any, fb Failback) { gotErr, gotOpts, gotFb = err, opts, fb != nil },
		SubscriberFunc(func(err error, opts any, fb Failback) { gotErr, gotOpts, gotFb = err, opts, fb != nil }),
	}
	for i, s := range shapes {
		fn, ok := adaptFunc(s)
		require.Truef(t, ok, "shape %d", i)

		gotErr, gotOpts, gotFb = nil, nil, false
		wantErr := assert.AnError
		fn(wantErr, "opts", func(error, any) {})
		assert.Equalf(t, wantErr, gotErr, "shape %d", i)
	}
	assert.True(t, gotFb)
	assert.Equal(t, "opts", gotOpts)

	_, ok := adaptFunc(tooMany)
	assert.False(t, ok)
	_, ok = adaptFunc(func(error) error { return nil })
	assert.False(t, ok)
}
