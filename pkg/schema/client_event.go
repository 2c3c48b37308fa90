package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const ClientEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "shopmart.events",
	"name": "client_event",
	"fields" : [
		{"name": "event_type", "type": "string"},
		{"name": "session_id", "type": "string"},
		{"name": "product_id", "type": "string"},
		{"name": "quantity", "type": "int"},
		{"name": "value", "type": "double"},
		{"name": "at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type ClientEventV1 struct {
	EventType string    `avro:"event_type"`
	SessionID string    `avro:"session_id"`
	ProductID string    `avro:"product_id"`
	Quantity  int       `avro:"quantity"`
	Value     float64   `avro:"value"`
	At        time.Time `avro:"at"`
}

// ClientEventV1Avro parses the schema text. Panics on invalid schema
// text, which is a develop mistake.
func ClientEventV1Avro() avro.Schema {
	return avro.MustParse(ClientEventSchemaTextV1)
}

// NewClientEventSerdeV1 returns the serde for [ClientEventV1] records.
func NewClientEventSerdeV1() Serde {
	return serde{avroSchema: ClientEventV1Avro()}
}
