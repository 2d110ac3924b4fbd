package codec

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/intervals/bounds"
	"github.com/iotaledger/hive.go/intervals/partitions"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// maxPreallocatedBreakpoints limits the capacity that is reserved for breakpoints before they are parsed.
const maxPreallocatedBreakpoints = 1024

// region Declarative //////////////////////////////////////////////////////////////////////////////////////////////////

// DeclarativeBytes returns a marshaled version of the Declarative partition.
func DeclarativeBytes[V any](valueCodec ValueCodec[V], declarative *partitions.Declarative[V]) []byte {
	breakpoints := declarative.Breakpoints()

	marshalUtil := marshalutil.New()
	marshalUtil.WriteUint32(uint32(len(breakpoints)))
	for _, breakpoint := range breakpoints {
		valueCodec.WriteValue(marshalUtil, breakpoint)
	}

	return marshalUtil.Bytes()
}

// DeclarativeFromBytes unmarshals a Declarative partition from a sequence of bytes.
func DeclarativeFromBytes[V any](valueCodec ValueCodec[V], cmp bounds.Comparator[V], declarativeBytes []byte) (declarative *partitions.Declarative[V], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(declarativeBytes)
	if declarative, err = DeclarativeFromMarshalUtil(marshalUtil, valueCodec, cmp); err != nil {
		return nil, 0, ierrors.Wrap(err, "failed to parse Declarative from MarshalUtil")
	}

	return declarative, marshalUtil.ReadOffset(), nil
}

// DeclarativeFromMarshalUtil unmarshals a Declarative partition using a MarshalUtil (for easier unmarshalling).
func DeclarativeFromMarshalUtil[V any](marshalUtil *marshalutil.MarshalUtil, valueCodec ValueCodec[V], cmp bounds.Comparator[V]) (*partitions.Declarative[V], error) {
	count, err := marshalUtil.ReadUint32()
	if err != nil {
		return nil, ierrors.Wrapf(ErrParseBytesFailed, "failed to parse breakpoint count (%v)", err)
	}

	breakpoints := make([]V, 0, min(int(count), maxPreallocatedBreakpoints))
	for i := 0; i < int(count); i++ {
		breakpoint, err := valueCodec.ReadValue(marshalUtil)
		if err != nil {
			return nil, ierrors.Wrapf(ErrParseBytesFailed, "failed to parse breakpoint %d (%v)", i, err)
		}

		breakpoints = append(breakpoints, breakpoint)
	}

	return partitions.NewDeclarativeWithComparator(cmp, breakpoints...)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Uniform //////////////////////////////////////////////////////////////////////////////////////////////////////

// UniformBytes returns a marshaled version of the Uniform partition.
func UniformBytes[V constraints.Numeric](valueCodec ValueCodec[V], uniform *partitions.Uniform[V]) []byte {
	left, _ := uniform.Interval().Left().Value()
	right, _ := uniform.Interval().Right().Value()

	marshalUtil := marshalutil.New()
	marshalUtil.WriteUint32(uint32(uniform.Len()))
	valueCodec.WriteValue(marshalUtil, left)
	valueCodec.WriteValue(marshalUtil, right)

	return marshalUtil.Bytes()
}

// UniformFromBytes unmarshals a Uniform partition from a sequence of bytes.
func UniformFromBytes[V constraints.Numeric](valueCodec ValueCodec[V], uniformBytes []byte) (uniform *partitions.Uniform[V], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(uniformBytes)
	if uniform, err = UniformFromMarshalUtil(marshalUtil, valueCodec); err != nil {
		return nil, 0, ierrors.Wrap(err, "failed to parse Uniform from MarshalUtil")
	}

	return uniform, marshalUtil.ReadOffset(), nil
}

// UniformFromMarshalUtil unmarshals a Uniform partition using a MarshalUtil (for easier unmarshalling).
func UniformFromMarshalUtil[V constraints.Numeric](marshalUtil *marshalutil.MarshalUtil, valueCodec ValueCodec[V]) (*partitions.Uniform[V], error) {
	count, err := marshalUtil.ReadUint32()
	if err != nil {
		return nil, ierrors.Wrapf(ErrParseBytesFailed, "failed to parse count (%v)", err)
	}

	left, err := valueCodec.ReadValue(marshalUtil)
	if err != nil {
		return nil, ierrors.Wrapf(ErrParseBytesFailed, "failed to parse left edge (%v)", err)
	}

	right, err := valueCodec.ReadValue(marshalUtil)
	if err != nil {
		return nil, ierrors.Wrapf(ErrParseBytesFailed, "failed to parse right edge (%v)", err)
	}

	return partitions.NewUniform(int(count), left, right)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
