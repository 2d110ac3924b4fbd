package codec

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/intervals/bounds"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// BoundBytes returns a marshaled version of the Bound.
func BoundBytes[V any](valueCodec ValueCodec[V], bound bounds.Bound[V]) []byte {
	marshalUtil := marshalutil.New()
	writeBound(marshalUtil, valueCodec, bound)

	return marshalUtil.Bytes()
}

// BoundFromBytes unmarshals a Bound from a sequence of bytes.
func BoundFromBytes[V any](valueCodec ValueCodec[V], boundBytes []byte) (bound bounds.Bound[V], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(boundBytes)
	if bound, err = BoundFromMarshalUtil(marshalUtil, valueCodec); err != nil {
		return bound, 0, ierrors.Wrap(err, "failed to parse Bound from MarshalUtil")
	}

	return bound, marshalUtil.ReadOffset(), nil
}

// BoundFromMarshalUtil unmarshals a Bound using a MarshalUtil (for easier unmarshalling).
func BoundFromMarshalUtil[V any](marshalUtil *marshalutil.MarshalUtil, valueCodec ValueCodec[V]) (bound bounds.Bound[V], err error) {
	kindByte, err := marshalUtil.ReadByte()
	if err != nil {
		return bound, ierrors.Wrapf(ErrParseBytesFailed, "failed to parse Kind (%v)", err)
	}

	kind, valid := bounds.KindFromByte(kindByte)
	if !valid {
		return bound, ierrors.Wrapf(ErrParseBytesFailed, "unsupported Kind (%X)", kindByte)
	}

	if !kind.CarriesValue() {
		return bounds.Unbounded[V](), nil
	}

	isOpen := kind == bounds.KindOpen
	if kind == bounds.KindOpenOrClosed {
		if isOpen, err = marshalUtil.ReadBool(); err != nil {
			return bound, ierrors.Wrapf(ErrParseBytesFailed, "failed to parse openness (%v)", err)
		}
	}

	value, err := valueCodec.ReadValue(marshalUtil)
	if err != nil {
		return bound, ierrors.Wrapf(ErrParseBytesFailed, "failed to parse value (%v)", err)
	}

	switch kind {
	case bounds.KindOpen:
		return bounds.Open(value), nil
	case bounds.KindClosed:
		return bounds.Closed(value), nil
	default:
		return bounds.OpenOrClosed(isOpen, value), nil
	}
}

// writeBound appends the marshaled Bound to the MarshalUtil.
func writeBound[V any](marshalUtil *marshalutil.MarshalUtil, valueCodec ValueCodec[V], bound bounds.Bound[V]) {
	marshalUtil.WriteByte(byte(bound.Kind()))

	value, exists := bound.Value()
	if !exists {
		return
	}

	if bound.Kind() == bounds.KindOpenOrClosed {
		marshalUtil.WriteBool(bound.IsOpen())
	}

	valueCodec.WriteValue(marshalUtil, value)
}
