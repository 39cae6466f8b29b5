package reflectutil

import (
	"reflect"
	"slices"
)

// Field describes one exported field of a struct hierarchy, including fields
// promoted from embedded structs.
type Field struct {
	// Name is the field's name as accessed on the outermost struct.
	Name string
	// Type is the field's declared type.
	Type reflect.Type
	// Depth is the number of embeddings between the outermost struct and the
	// field's declaring struct; 0 for directly declared fields.
	Depth int
	// Anonymous marks embedded fields, which both appear as fields and
	// contribute promoted fields of their own.
	Anonymous bool
}

// structType normalizes v to its underlying struct type, dereferencing
// pointers. The second result is false when v is nil or not backed by a
// struct.
func structType(v any) (reflect.Type, bool) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, false
	}
	return t, true
}

// Hierarchy returns v's struct type followed by its embedded struct types in
// breadth-first order, each type listed once. Non-struct inputs yield an
// empty slice.
func Hierarchy(v any) []reflect.Type {
	root, ok := structType(v)
	if !ok {
		return nil
	}

	var (
		order []reflect.Type
		seen  = map[reflect.Type]bool{}
		queue = []reflect.Type{root}
	)
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		if seen[t] {
			continue
		}
		seen[t] = true
		order = append(order, t)

		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.Anonymous {
				continue
			}
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				queue = append(queue, ft)
			}
		}
	}
	return order
}

// Fields returns the exported fields reachable on v's struct type, flattened
// across embedded structs in breadth-first order. A promoted name already
// seen at a shallower depth shadows deeper occurrences, matching Go's field
// promotion rules. Non-struct inputs yield an empty slice.
func Fields(v any) []Field {
	root, ok := structType(v)
	if !ok {
		return nil
	}

	type item struct {
		t     reflect.Type
		depth int
	}
	var (
		out      []Field
		seenName = map[string]bool{}
		seenType = map[reflect.Type]bool{}
		queue    = []item{{t: root}}
	)
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if seenType[it.t] {
			continue
		}
		seenType[it.t] = true

		for i := 0; i < it.t.NumField(); i++ {
			f := it.t.Field(i)
			if f.IsExported() && !seenName[f.Name] {
				seenName[f.Name] = true
				out = append(out, Field{Name: f.Name, Type: f.Type, Depth: it.depth, Anonymous: f.Anonymous})
			}
			// Embedded structs are traversed even when the embedded field
			// itself is unexported: their exported fields still promote.
			if f.Anonymous {
				ft := f.Type
				if ft.Kind() == reflect.Ptr {
					ft = ft.Elem()
				}
				if ft.Kind() == reflect.Struct {
					queue = append(queue, item{t: ft, depth: it.depth + 1})
				}
			}
		}
	}
	return out
}

// Methods returns the sorted exported method names of v's method set. The
// method set is taken from the type as given: pass a pointer to see
// pointer-receiver methods.
func Methods(v any) []string {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}
	names := make([]string, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		names = append(names, t.Method(i).Name)
	}
	slices.Sort(names)
	return names
}

// Implements reports whether v's type satisfies the interface type T. When T
// is not an interface, or v is nil, it returns false.
func Implements[T any](v any) bool {
	iface := reflect.TypeOf((*T)(nil)).Elem()
	if iface.Kind() != reflect.Interface {
		return false
	}
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	return t.Implements(iface)
}
