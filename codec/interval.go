package codec

import (
	"github.com/iotaledger/hive.go/ds/bitmask"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/intervals"
	"github.com/iotaledger/hive.go/intervals/bounds"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

const (
	leftBoundedBit uint = iota
	rightBoundedBit
)

// IntervalBytes returns a marshaled version of the Interval. Unbounded sides are only recorded in a leading bitmask.
func IntervalBytes[V any](valueCodec ValueCodec[V], interval intervals.Interval[V]) []byte {
	var boundedMask bitmask.BitMask
	if interval.Left().IsBounded() {
		boundedMask = boundedMask.SetBit(leftBoundedBit)
	}
	if interval.Right().IsBounded() {
		boundedMask = boundedMask.SetBit(rightBoundedBit)
	}

	marshalUtil := marshalutil.New()
	marshalUtil.WriteByte(byte(boundedMask))
	if boundedMask.HasBit(leftBoundedBit) {
		writeBound(marshalUtil, valueCodec, interval.Left())
	}
	if boundedMask.HasBit(rightBoundedBit) {
		writeBound(marshalUtil, valueCodec, interval.Right())
	}

	return marshalUtil.Bytes()
}

// IntervalFromBytes unmarshals an Interval from a sequence of bytes. The Bounds are checked with the given Comparator.
func IntervalFromBytes[V any](valueCodec ValueCodec[V], cmp bounds.Comparator[V], intervalBytes []byte) (interval intervals.Interval[V], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(intervalBytes)
	if interval, err = IntervalFromMarshalUtil(marshalUtil, valueCodec, cmp); err != nil {
		return interval, 0, ierrors.Wrap(err, "failed to parse Interval from MarshalUtil")
	}

	return interval, marshalUtil.ReadOffset(), nil
}

// IntervalFromMarshalUtil unmarshals an Interval using a MarshalUtil (for easier unmarshalling).
func IntervalFromMarshalUtil[V any](marshalUtil *marshalutil.MarshalUtil, valueCodec ValueCodec[V], cmp bounds.Comparator[V]) (interval intervals.Interval[V], err error) {
	boundedMaskByte, err := marshalUtil.ReadByte()
	if err != nil {
		return interval, ierrors.Wrapf(ErrParseBytesFailed, "failed to parse bounded mask (%v)", err)
	}

	left, right := bounds.Unbounded[V](), bounds.Unbounded[V]()

	boundedMask := bitmask.BitMask(boundedMaskByte)
	if boundedMask.HasBit(leftBoundedBit) {
		if left, err = BoundFromMarshalUtil(marshalUtil, valueCodec); err != nil {
			return interval, ierrors.Wrap(err, "failed to parse left Bound")
		}
	}
	if boundedMask.HasBit(rightBoundedBit) {
		if right, err = BoundFromMarshalUtil(marshalUtil, valueCodec); err != nil {
			return interval, ierrors.Wrap(err, "failed to parse right Bound")
		}
	}

	return intervals.NewWithComparator(cmp, left, right)
}
