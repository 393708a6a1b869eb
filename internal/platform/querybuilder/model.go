package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel starts an insert from the db-tagged exported fields of a
// struct. Field errors surface from ToSQL.
func InsertModel(table string, model any) *InsertBuilder {
	b := InsertInto(table)
	b.err = walkColumns(model, func(column string, value reflect.Value) {
		b.Set(column, value.Interface())
	})
	return b
}

// Columns lists the db-tagged columns of a struct in field order.
func Columns(model any) ([]string, error) {
	var out []string
	err := walkColumns(model, func(column string, _ reflect.Value) {
		out = append(out, column)
	})
	return out, err
}

// MustColumns is Columns for package-level column lists.
func MustColumns(model any) []string {
	cols, err := Columns(model)
	if err != nil {
		panic(err)
	}
	return cols
}

func walkColumns(model any, visit func(column string, value reflect.Value)) error {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return fmt.Errorf("model cannot be nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("model must be struct, got %s", v.Kind())
	}

	visited := 0
	for _, field := range reflect.VisibleFields(v.Type()) {
		if !field.IsExported() || field.Anonymous {
			continue
		}
		column, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		column = strings.TrimSpace(column)
		if column == "" || column == "-" {
			continue
		}
		visit(column, v.FieldByIndex(field.Index))
		visited++
	}

	if visited == 0 {
		return fmt.Errorf("model has no db columns")
	}
	return nil
}
