package main

import (
	"encoding"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
	"github.com/jwebster45206/mythic-editor/pkg/param"
)

var (
	toggleType        = reflect.TypeFor[param.Toggle]()
	chooserType       = reflect.TypeFor[param.Chooser]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	percentageType    = reflect.TypeFor[param.Percentage]()
)

// paramsSchema describes the "params" object a saved draft holds for m.
func paramsSchema(m mechanic.Mechanic) *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true}
	r.Mapper = func(t reflect.Type) *jsonschema.Schema {
		return mapParam(r, t)
	}
	s := r.Reflect(m)
	s.Title = mechanic.Label(m)
	s.Description = mechanic.Description(m)
	return s
}

// mapParam overrides the reflected schema of parameter types whose JSON
// form is not their Go structure. It returns nil to let the reflector
// handle everything else.
func mapParam(r *jsonschema.Reflector, t reflect.Type) *jsonschema.Schema {
	switch {
	case t == percentageType:
		return &jsonschema.Schema{Type: "number", Description: "fraction between 0 and 1"}

	case reflect.PointerTo(t).Implements(toggleType):
		// Optional[T] saves {"value": T}; absent keys are null.
		present := r.ReflectFromType(t.Field(0).Type.Elem())
		present.Version = ""
		present.Definitions = nil
		return &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{{Type: "null"}, present},
		}

	case t.Implements(chooserType):
		choices := reflect.Zero(t).Interface().(param.Chooser).Choices()
		enum := make([]any, len(choices))
		for i, c := range choices {
			enum[i] = c
		}
		return &jsonschema.Schema{Type: "string", Enum: enum}

	case t.Implements(textMarshalerType):
		return &jsonschema.Schema{Type: "string"}
	}
	return nil
}
