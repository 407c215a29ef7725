package history

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libhistory/hist"
	"github.com/sgostarter/libhistory/store"
	"github.com/sgostarter/libhistory/store/impls/memkv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utStore() *store.ObjectStore[*hist.H1] {
	return store.NewObjectStore[*hist.H1](memkv.NewMemKV(), hist.H1Codec{}, nil)
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	s := utStore()

	h := utHistory(t, "h", 2, 3)
	require.NoError(t, h.Save(ctx, s, "run"))

	desc, err := s.GetLabel(ctx, "run_h")
	require.NoError(t, err)
	assert.Equal(t, "_2_3", desc)

	loaded, err := Load[*hist.H1](ctx, s, "run_h")
	require.NoError(t, err)
	assert.Equal(t, "run_h", loaded.Tag())
	assert.Equal(t, []int64{2, 3}, loaded.Shape())
	assert.Equal(t, contents(h), contents(loaded))
	assert.Equal(t, "run_h_1_2", loaded.AtIndices([]int64{1, 2}).GetName())

	loaded.Scale(2)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, contents(h))
}

func TestSaveLoadNoPrefix(t *testing.T) {
	ctx := context.Background()
	s := utStore()

	h := utHistory(t, "h", 4)
	require.NoError(t, h.Save(ctx, s, ""))

	loaded, err := Load[*hist.H1](ctx, s, "h")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, contents(loaded))
	assert.Equal(t, "h_3", loaded.At(3).GetName())
}

func TestLoadMissing(t *testing.T) {
	ctx := context.Background()
	s := utStore()

	_, err := Load[*hist.H1](ctx, s, "nope")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	require.NoError(t, s.WriteLabel(ctx, "partial", "_2"))
	require.NoError(t, s.Write(ctx, "partial_0", utBooker(t).Book("partial_0", "n")))

	_, err = Load[*hist.H1](ctx, s, "partial")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
	assert.Contains(t, err.Error(), "partial_1")

	require.NoError(t, s.WriteLabel(ctx, "bad", "2x3"))

	_, err = Load[*hist.H1](ctx, s, "bad")
	assert.ErrorIs(t, err, ErrBadLabel)
}

type failingStore struct {
	*store.ObjectStore[*hist.H1]

	failOn string
}

func (s *failingStore) Write(ctx context.Context, name string, obj *hist.H1) error {
	if strings.HasSuffix(name, s.failOn) {
		return errors.New("disk full")
	}

	return s.ObjectStore.Write(ctx, name, obj)
}

func TestSavePartialFailure(t *testing.T) {
	ctx := context.Background()
	s := &failingStore{ObjectStore: utStore(), failOn: "_1_0"}

	h := utHistory(t, "h", 2, 2)

	err := h.Save(ctx, s, "run")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "run_h_1_0")

	_, err = s.GetLabel(ctx, "run_h")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	_, err = s.Get(ctx, "run_h_0_1")
	assert.Nil(t, err)
}

func TestSaveLoadFullyReduced(t *testing.T) {
	ctx := context.Background()
	s := utStore()

	total, err := utHistory(t, "h", 2, 3).Sum(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "h_sum1_sum0", total.At(0).GetName())

	require.NoError(t, total.Save(ctx, s, "run"))

	slot, err := s.Get(ctx, "run_h_sum1_sum0")
	require.NoError(t, err)
	assert.Equal(t, 21., slot.Content())

	desc, err := s.GetLabel(ctx, "run_h_sum1_sum0_shape")
	require.NoError(t, err)
	assert.Equal(t, "", desc)

	loaded, err := Load[*hist.H1](ctx, s, "run_h_sum1_sum0")
	require.NoError(t, err)
	assert.EqualValues(t, 0, loaded.Dims())
	assert.EqualValues(t, 1, loaded.Size())
	assert.Equal(t, 21., loaded.At(0).Content())
	assert.Equal(t, "run_h_sum1_sum0", loaded.At(0).GetName())

	require.NoError(t, total.Save(ctx, s, ""))

	loaded, err = Load[*hist.H1](ctx, s, "h_sum1_sum0")
	require.NoError(t, err)
	assert.Equal(t, 21., loaded.At(0).Content())
}
