package history

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sgostarter/i/l"
)

// scalarLabelSuffix keys the label of a rank-0 History, whose only slot is
// already named after the tag.
const scalarLabelSuffix = "_shape"

func labelKey(prefix, tag string, dims int64) string {
	key := prefixed(prefix, tag)
	if dims == 0 {
		key += scalarLabelSuffix
	}

	return key
}

// Load rebuilds a History saved under tag: the shape comes from the label
// record named tag (tag_shape for a rank-0 History), then every slot is
// fetched by its canonical name.
func Load[T Accumulator[T]](ctx context.Context, store Store[T], tag string, options ...Option) (*History[T], error) {
	logger := optionNew(options...).logger.WithFields(l.StringField("tag", tag))

	desc, err := store.GetLabel(ctx, tag)
	if err != nil {
		if scalar, e := store.GetLabel(ctx, labelKey("", tag, 0)); e == nil && scalar == "" {
			desc, err = scalar, nil
		}
	}

	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("load shape label failed")

		return nil, fmt.Errorf("label %s: %w", tag, err)
	}

	shape, err := ParseShapeLabel(desc)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("parse shape label failed")

		return nil, err
	}

	h, err := newBare[T](tag, "", shape, logger)
	if err != nil {
		return nil, err
	}

	for i := int64(0); i < h.size; i++ {
		name := SlotName(tag, h.IndicesFor(i))

		acc, err := store.Get(ctx, name)
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("name", name)).Error("load accumulator failed")

			return nil, fmt.Errorf("slot %s: %w", name, err)
		}

		acc.SetName(name)
		h.slots[i] = acc
	}

	return h, nil
}

// Save writes every slot as prefix_<slot name> and then the shape label as
// prefix_<tag>, or prefix_<tag>_shape when h has no axes left. The label is
// skipped if any slot failed, so a partial save never loads.
func (h *History[T]) Save(ctx context.Context, store Store[T], prefix string) error {
	var errs *multierror.Error

	for _, slot := range h.slots {
		name := prefixed(prefix, slot.GetName())

		if err := store.Write(ctx, name, slot); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("slot %s: %w", name, err))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		h.logger.WithFields(l.ErrorField(err), l.StringField("tag", h.tag)).Error("save failed")

		return err
	}

	return store.WriteLabel(ctx, labelKey(prefix, h.tag, h.dims), ShapeLabel(h.shape))
}
