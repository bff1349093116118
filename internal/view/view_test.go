package view

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_States(t *testing.T) {
	l := NewList[string]()
	assert.Equal(t, Loading, l.State())

	assert.True(t, l.Resolve([]string{"a", "b"}, nil))
	assert.Equal(t, Success, l.State())
	assert.Len(t, l.Items(), 2)
	assert.Empty(t, l.Message())
}

func TestList_EmptyIsNotError(t *testing.T) {
	l := LoadList(context.Background(), func(context.Context) ([]int, error) { return nil, nil })
	assert.Equal(t, Empty, l.State())
	assert.NoError(t, l.Err())
	assert.NotNil(t, l.Items())
}

func TestList_ErrorIsNotEmpty(t *testing.T) {
	l := LoadList(context.Background(), func(context.Context) ([]int, error) { return nil, errors.New("boom") })
	assert.Equal(t, Error, l.State())
	assert.Equal(t, DefaultErrorMessage, l.Message())
}

func TestList_ResolvesOnce(t *testing.T) {
	l := NewList[int]()
	require.True(t, l.Resolve(nil, errors.New("first")))
	assert.False(t, l.Resolve([]int{1}, nil))
	assert.Equal(t, Error, l.State())
}

func TestLoadList_CallsFetchOnce(t *testing.T) {
	calls := 0
	LoadList(context.Background(), func(context.Context) ([]int, error) {
		calls++
		return []int{1}, nil
	})
	assert.Equal(t, 1, calls)
}

func TestList_MarshalJSON(t *testing.T) {
	l := NewList[int]()
	l.Resolve(nil, nil)
	b, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"empty","items":[]}`, string(b))

	e := NewList[int]()
	e.Resolve(nil, errors.New("dial tcp: refused"))
	b, err = json.Marshal(e)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "refused")
}

func TestDetail_States(t *testing.T) {
	v := 7
	d := LoadDetail(context.Background(), func(context.Context) (*int, error) { return &v, nil })
	assert.Equal(t, Success, d.State())
	assert.Equal(t, 7, *d.Item())

	missing := LoadDetail(context.Background(), func(context.Context) (*int, error) { return nil, nil })
	assert.Equal(t, Empty, missing.State())

	failed := LoadDetail(context.Background(), func(context.Context) (*int, error) { return nil, errors.New("x") })
	assert.Equal(t, Error, failed.State())
	assert.False(t, failed.Resolve(&v, nil))
}
