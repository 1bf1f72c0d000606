package transport

import "github.com/hashicorp/go-msgpack/v2/codec"

// mpHandle is the shared msgpack codec handle. router.Serialize hides its
// own codec choice behind the necs router; EncodeBatch/DecodeBatch name
// that choice explicitly and let callers exercise the wire format
// (round-trip tests, or a direct-socket path that bypasses the router)
// without needing a live connection.
var mpHandle = &codec.MsgpackHandle{}

// EncodeBatch serializes a PoseBatch for the wire using msgpack.
func EncodeBatch(batch PoseBatch) ([]byte, error) {
	var buf []byte
	enc := codec.NewEncoderBytes(&buf, mpHandle)
	if err := enc.Encode(batch); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodeBatch deserializes a PoseBatch previously produced by EncodeBatch.
func DecodeBatch(data []byte) (PoseBatch, error) {
	var batch PoseBatch
	dec := codec.NewDecoderBytes(data, mpHandle)
	if err := dec.Decode(&batch); err != nil {
		return PoseBatch{}, err
	}
	return batch, nil
}
