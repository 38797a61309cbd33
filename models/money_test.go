package models

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestMoneyMarshalsAsBareNumber(t *testing.T) {
	line := CartLine{Name: "Chocolate Cake", Price: MoneyFromInt(600), Quantity: 1}

	data, err := json.Marshal(line)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Contains(data, []byte(`"price":600`)) {
		t.Errorf("expected unquoted numeric price, got %s", data)
	}
}

func TestMoneyUnmarshalsNumbersAndStrings(t *testing.T) {
	for _, payload := range []string{`{"price":600}`, `{"price":"600"}`} {
		var line CartLine
		if err := json.Unmarshal([]byte(payload), &line); err != nil {
			t.Fatalf("unmarshal %s: %v", payload, err)
		}
		if line.Price.String() != "600" {
			t.Errorf("payload %s: got price %s", payload, line.Price)
		}
	}
}
