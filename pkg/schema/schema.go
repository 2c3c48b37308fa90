// Package schema defines the Avro wire schemas for the storefront
// client-events stream and the serde over them.
package schema

import "github.com/hamba/avro/v2"

// Serde encodes and decodes one Avro record type.
type Serde interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

type serde struct {
	avroSchema avro.Schema
}

func (s serde) Encode(v any) ([]byte, error) {
	return avro.Marshal(s.avroSchema, v)
}

func (s serde) Decode(data []byte, v any) error {
	return avro.Unmarshal(s.avroSchema, data, v)
}
