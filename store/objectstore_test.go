package store

import (
	"context"
	"errors"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libhistory/hist"
	"github.com/sgostarter/libhistory/interval"
	"github.com/sgostarter/libhistory/store/impls/memkv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectStore(t *testing.T) {
	ctx := context.Background()

	axis, err := interval.New("pt", 4, 0, 4)
	require.NoError(t, err)

	s := NewObjectStore[*hist.H1](memkv.NewMemKV(), hist.H1Codec{}, nil)

	defer func() {
		_ = s.Close()
	}()

	h := hist.NewH1("h_0", ";pt;n", axis)
	h.FillWeight(1.5, 2)
	h.Fill(3.5)

	require.NoError(t, s.Write(ctx, "h_0", h))

	got, err := s.Get(ctx, "h_0")
	require.NoError(t, err)
	assert.Equal(t, "h_0", got.GetName())
	assert.Equal(t, 2., got.BinContent(2))
	assert.Equal(t, 1., got.BinContent(4))

	got.Fill(1.5)
	assert.Equal(t, 2., h.BinContent(2))

	require.NoError(t, s.WriteLabel(ctx, "h", "_1"))

	title, err := s.GetLabel(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, "_1", title)
}

func TestObjectStoreMissing(t *testing.T) {
	ctx := context.Background()
	s := NewObjectStore[*hist.H1](memkv.NewMemKV(), hist.H1Codec{}, nil)

	_, err := s.Get(ctx, "nope")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	_, err = s.GetLabel(ctx, "nope")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	require.NoError(t, s.WriteLabel(ctx, "h", "_2"))

	_, err = s.Get(ctx, "h")
	assert.True(t, errors.Is(err, ErrWrongKind))

	require.NoError(t, s.Delete(ctx, "h"))

	_, err = s.GetLabel(ctx, "h")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
}
