package gomap

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/columbus-format/go-columbus/ir"
)

// ToIR converts a Go value to a node tree using reflection.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	if n, ok := v.(*ir.Node); ok {
		return n.Clone(), nil
	}
	return toIRReflect(reflect.ValueOf(v), "")
}

func toIRReflect(val reflect.Value, fieldPath string) (*ir.Node, error) {
	switch val.Kind() {
	case reflect.Invalid:
		return ir.Null(), nil
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromInt(int64(val.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return toIRReflect(val.Elem(), fieldPath)
	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.IsNil() {
			return ir.Null(), nil
		}
		res := &ir.Node{Type: ir.ArrayType}
		for i := 0; i < val.Len(); i++ {
			elt, err := toIRReflect(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i))
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, elt)
		}
		return res, nil
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return nil, &MarshalError{
				Message:   fmt.Sprintf("map key type %s is not string", val.Type().Key()),
				FieldPath: fieldPath,
			}
		}
		res := &ir.Node{Type: ir.ObjectType, Obj: map[string]*ir.Node{}}
		iter := val.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			v, err := toIRReflect(iter.Value(), fieldPath+"."+k)
			if err != nil {
				return nil, err
			}
			res.Obj[k] = v
		}
		return res, nil
	case reflect.Struct:
		return structToIR(val, fieldPath)
	default:
		return nil, &MarshalError{
			Message:   fmt.Sprintf("unsupported kind %s", val.Kind()),
			FieldPath: fieldPath,
		}
	}
}

func structToIR(val reflect.Value, fieldPath string) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType, Obj: map[string]*ir.Node{}}
	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("columbus"); ok {
			name = strings.Split(tag, ",")[0]
			if name == "-" {
				continue
			}
			if name == "" {
				name = field.Name
			}
		}
		v, err := toIRReflect(val.Field(i), fieldPath+"."+name)
		if err != nil {
			return nil, err
		}
		res.Obj[name] = v
	}
	return res, nil
}
