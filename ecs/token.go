package ecs

import (
	"hash/fnv"
	"reflect"
)

// TypeToken is a stable 64-bit fingerprint of a component value type. Tokens
// gate component registration and system attachment; they are never consulted
// on the per-row hot path.
type TypeToken uint64

// TokenFor returns the type-identity token of T.
func TokenFor[T any]() TypeToken {
	return tokenOf(reflect.TypeFor[T]())
}

func tokenOf(t reflect.Type) TypeToken {
	h := fnv.New64a()
	h.Write([]byte(t.PkgPath()))
	h.Write([]byte{0})
	h.Write([]byte(t.String()))
	return TypeToken(h.Sum64())
}

func typeNameFor[T any]() string {
	return reflect.TypeFor[T]().String()
}
