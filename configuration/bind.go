package configuration

import (
	"reflect"
	"strings"
	"unicode"

	flag "github.com/spf13/pflag"
)

// BoundParameter stores the pointer and the type of values that were bound using the BindParameters function.
type BoundParameter struct {
	boundPointer interface{}
	boundType    reflect.Type
}

// BindParameters defines a flag in the FlagSet for every field of the given struct and remembers the field, so that
// UpdateBoundParameters can write the loaded configuration back into it.
//
// The parameter names are determined by the lower camel cased names of the fields but they can be overridden by
// providing a name tag. The default value is the value of the field, the usage information is taken from the usage
// tag. Nested structs translate to nested parameter names (namespace.level1.parameterName).
func (c *Configuration) BindParameters(flagSet *flag.FlagSet, namespace string, pointerToStruct interface{}) {
	val := reflect.ValueOf(pointerToStruct).Elem()
	for i, numField := 0, val.NumField(); i < numField; i++ {
		valueField := val.Field(i)
		typeField := val.Type().Field(i)

		name := namespace + "."
		if tagName, exists := typeField.Tag.Lookup("name"); exists {
			name += tagName
		} else {
			name += lowerCamelCase(typeField.Name)
		}

		usage := typeField.Tag.Get("usage")

		switch defaultValue := valueField.Interface().(type) {
		case bool:
			flagSet.BoolVar(valueField.Addr().Interface().(*bool), name, defaultValue, usage)
		case int:
			flagSet.IntVar(valueField.Addr().Interface().(*int), name, defaultValue, usage)
		case int64:
			flagSet.Int64Var(valueField.Addr().Interface().(*int64), name, defaultValue, usage)
		case float64:
			flagSet.Float64Var(valueField.Addr().Interface().(*float64), name, defaultValue, usage)
		case string:
			flagSet.StringVar(valueField.Addr().Interface().(*string), name, defaultValue, usage)
		case []string:
			flagSet.StringSliceVar(valueField.Addr().Interface().(*[]string), name, defaultValue, usage)
		case []float64:
			flagSet.Float64SliceVar(valueField.Addr().Interface().(*[]float64), name, defaultValue, usage)
		default:
			c.BindParameters(flagSet, name, valueField.Addr().Interface())

			continue
		}

		c.boundParameters[strings.ToLower(name)] = &BoundParameter{
			boundPointer: valueField.Addr().Interface(),
			boundType:    valueField.Type(),
		}
	}
}

// UpdateBoundParameters updates parameters that were bound using the BindParameters method with the current values in
// the configuration.
func (c *Configuration) UpdateBoundParameters() {
	for parameterName, boundParameter := range c.boundParameters {
		if !c.Exists(parameterName) {
			continue
		}

		switch boundPointer := boundParameter.boundPointer.(type) {
		case *bool:
			*boundPointer = c.Bool(parameterName)
		case *int:
			*boundPointer = c.Int(parameterName)
		case *int64:
			*boundPointer = c.Int64(parameterName)
		case *float64:
			*boundPointer = c.Float64(parameterName)
		case *string:
			*boundPointer = c.String(parameterName)
		case *[]string:
			*boundPointer = c.Strings(parameterName)
		case *[]float64:
			*boundPointer = c.Float64s(parameterName)
		default:
			panic("unsupported bound parameter type: " + boundParameter.boundType.String())
		}
	}
}

// lowerCamelCase converts the first word of an upper camel cased identifier to lower case ("HTTPPort" -> "httpPort").
func lowerCamelCase(str string) string {
	runes := []rune(str)
	runeCount := len(runes)

	if runeCount == 0 || unicode.IsLower(runes[0]) {
		return str
	}

	runes[0] = unicode.ToLower(runes[0])
	if runeCount == 1 || unicode.IsLower(runes[1]) {
		return string(runes)
	}

	for i := 1; i < runeCount; i++ {
		if i+1 < runeCount && unicode.IsLower(runes[i+1]) {
			break
		}

		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}
