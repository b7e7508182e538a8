// Package json wraps json-iterator in its standard library compatible mode.
package json

import (
	jsoniter "github.com/json-iterator/go"
)

func Marshal(input interface{}) ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(input)
}

func MarshalIndent(input interface{}, prefix, indent string) ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(input, prefix, indent)
}

func Unmarshal(input []byte, data interface{}) error {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(input, data)
}
