package codec

import (
	"fmt"

	"apiresource/resource"

	"github.com/fxamacker/cbor/v2"
)

// encMode sorts map keys canonically so equal dictionaries give equal bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthAllowed,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

type cborCodec struct{}

func CBOR() Codec { return cborCodec{} }

func (cborCodec) Name() string         { return "cbor" }
func (cborCodec) ContentType() string  { return "application/cbor" }
func (cborCodec) Extensions() []string { return []string{".cbor"} }

func (cborCodec) Marshal(d resource.Dictionary) ([]byte, error) {
	return encMode.Marshal(d)
}

func (cborCodec) Unmarshal(data []byte) (resource.Dictionary, error) {
	var v any
	if err := decMode.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("cbor: %w", err)
	}

	return toDictionary(v)
}
