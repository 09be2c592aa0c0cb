package fuzzer

import (
	"math/rand"

	"github.com/iancoleman/strcase"

	"github.com/binaryArrow/cats/internal/document"
	"github.com/binaryArrow/cats/internal/errors"
	"github.com/binaryArrow/cats/internal/pathing"
)

// PrimitiveReplacement is the scalar injected in place of non-primitive
// nodes.
const PrimitiveReplacement = "cats_primitive_string"

// randomBodyLength is the length of generated random string bodies.
const randomBodyLength = 100

// ReplaceArraysWithPrimitives replaces array-typed fields with a
// primitive string. It only runs for arrays.
type ReplaceArraysWithPrimitives struct{}

func (ReplaceArraysWithPrimitives) Name() string {
	return strcase.ToSnake("ReplaceArraysWithPrimitives")
}

func (ReplaceArraysWithPrimitives) Description() string {
	return "replace array fields with primitive values"
}

func (ReplaceArraysWithPrimitives) Applies(payload, field string) bool {
	return document.IsArray(payload, field)
}

func (s ReplaceArraysWithPrimitives) Apply(payload, field string) (string, error) {
	if !s.Applies(payload, field) {
		return payload, errors.NewInputError("fuzzer only runs for arrays", errors.ErrNotApplicable)
	}
	return replaceField(payload, field, `"`+PrimitiveReplacement+`"`), nil
}

// ReplacePrimitivesWithArrays replaces primitive fields with a small
// array of primitive strings. It only runs for primitives.
type ReplacePrimitivesWithArrays struct{}

func (ReplacePrimitivesWithArrays) Name() string {
	return strcase.ToSnake("ReplacePrimitivesWithArrays")
}

func (ReplacePrimitivesWithArrays) Description() string {
	return "replace primitive fields with arrays"
}

func (ReplacePrimitivesWithArrays) Applies(payload, field string) bool {
	return document.IsPrimitive(payload, field)
}

func (s ReplacePrimitivesWithArrays) Apply(payload, field string) (string, error) {
	if !s.Applies(payload, field) {
		return payload, errors.NewInputError("fuzzer only runs for primitives", errors.ErrNotApplicable)
	}
	return replaceField(payload, field, `["`+PrimitiveReplacement+`", "`+PrimitiveReplacement+`"]`), nil
}

// RandomStringBody discards the payload entirely and sends a random
// string body instead.
type RandomStringBody struct{}

func (RandomStringBody) Name() string {
	return strcase.ToSnake("RandomStringBody")
}

func (RandomStringBody) Description() string {
	return "send a request with a random string body"
}

func (RandomStringBody) Applies(payload, field string) bool {
	return true
}

func (RandomStringBody) Apply(payload, field string) (string, error) {
	return RandomString(randomBodyLength), nil
}

// replaceField rewrites the field with the given raw value, falling back
// to union resolution when the field hides behind a oneOf/anyOf group.
func replaceField(payload, field, rawValue string) string {
	_, final := pathing.SplitParent(pathing.Sanitize(field))
	return document.ResolveUnion(payload, field, final, rawValue, nil)
}

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString returns a random alphanumeric string of length n.
func RandomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[rand.Intn(len(alphanumeric))]
	}
	return string(b)
}
