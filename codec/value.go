package codec

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// ValueCodec marshals and unmarshals the values of a domain V.
type ValueCodec[V any] interface {
	// WriteValue appends the marshaled value to the MarshalUtil.
	WriteValue(marshalUtil *marshalutil.MarshalUtil, value V)

	// ReadValue unmarshals a value from the MarshalUtil.
	ReadValue(marshalUtil *marshalutil.MarshalUtil) (V, error)
}

var (
	// Float64 is the ValueCodec for float64 values.
	Float64 ValueCodec[float64] = float64Codec{}

	// Int64 is the ValueCodec for int64 values.
	Int64 ValueCodec[int64] = int64Codec{}

	// String is the ValueCodec for string values. Strings are prefixed with their length.
	String ValueCodec[string] = stringCodec{}
)

type float64Codec struct{}

func (float64Codec) WriteValue(marshalUtil *marshalutil.MarshalUtil, value float64) {
	marshalUtil.WriteFloat64(value)
}

func (float64Codec) ReadValue(marshalUtil *marshalutil.MarshalUtil) (float64, error) {
	return marshalUtil.ReadFloat64()
}

type int64Codec struct{}

func (int64Codec) WriteValue(marshalUtil *marshalutil.MarshalUtil, value int64) {
	marshalUtil.WriteInt64(value)
}

func (int64Codec) ReadValue(marshalUtil *marshalutil.MarshalUtil) (int64, error) {
	return marshalUtil.ReadInt64()
}

type stringCodec struct{}

func (stringCodec) WriteValue(marshalUtil *marshalutil.MarshalUtil, value string) {
	marshalUtil.WriteUint32(uint32(len(value)))
	marshalUtil.WriteBytes([]byte(value))
}

func (stringCodec) ReadValue(marshalUtil *marshalutil.MarshalUtil) (string, error) {
	length, err := marshalUtil.ReadUint32()
	if err != nil {
		return "", ierrors.Wrap(err, "failed to parse string length")
	}

	valueBytes, err := marshalUtil.ReadBytes(int(length))
	if err != nil {
		return "", ierrors.Wrapf(err, "failed to parse string of length %d", length)
	}

	return string(valueBytes), nil
}
