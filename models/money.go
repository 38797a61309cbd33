package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Money is an exact decimal amount. It is stored in MongoDB as
// Decimal128 so totals never pick up binary floating-point error.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func MoneyFromInt(v int64) Money {
	return Money{Decimal: decimal.NewFromInt(v)}
}

// MarshalJSON emits money as a bare JSON number; the frontend expects
// prices and totals unquoted.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(m.Decimal.String())
	if err != nil {
		return 0, nil, fmt.Errorf("money %q to decimal128: %w", m.Decimal.String(), err)
	}
	return bson.MarshalValue(d128)
}

func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Decimal128:
		d128, ok := raw.Decimal128OK()
		if !ok {
			return fmt.Errorf("malformed decimal128 money value")
		}
		d, err := decimal.NewFromString(d128.String())
		if err != nil {
			return fmt.Errorf("decimal128 %q: %w", d128.String(), err)
		}
		m.Decimal = d
	case bsontype.Double:
		// documents written before the Decimal128 migration
		m.Decimal = decimal.NewFromFloat(raw.Double())
	case bsontype.Int32:
		m.Decimal = decimal.NewFromInt(int64(raw.Int32()))
	case bsontype.Int64:
		m.Decimal = decimal.NewFromInt(raw.Int64())
	case bsontype.Null:
		m.Decimal = decimal.Zero
	default:
		return fmt.Errorf("cannot decode %s as money", t)
	}
	return nil
}
