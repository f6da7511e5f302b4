package format

import (
	"reflect"
	"strings"
	"sync"
)

type fieldInfo struct {
	index    []int
	name     string
	jsonName string
	typ      reflect.Type
}

type structMetadata struct {
	fields           []fieldInfo
	fieldsByName     map[string]*fieldInfo
	fieldsByJSONName map[string]*fieldInfo
}

// metadataCache holds structMetadata per entity type. Formats are immutable
// configuration, so a package-level cache is safe to share.
var metadataCache sync.Map // map[reflect.Type]*structMetadata

func metadataFor(typ reflect.Type) *structMetadata {
	if cached, ok := metadataCache.Load(typ); ok {
		return cached.(*structMetadata)
	}
	fc := countFields(typ)
	meta := &structMetadata{
		fields:           make([]fieldInfo, 0, fc),
		fieldsByName:     make(map[string]*fieldInfo, fc),
		fieldsByJSONName: make(map[string]*fieldInfo, fc),
	}
	buildFieldMetadata(typ, meta, nil)
	for i := range meta.fields {
		fi := &meta.fields[i]
		meta.fieldsByName[fi.name] = fi
		if fi.jsonName != "" {
			meta.fieldsByJSONName[fi.jsonName] = fi
		}
	}
	actual, _ := metadataCache.LoadOrStore(typ, meta)
	return actual.(*structMetadata)
}

func countFields(typ reflect.Type) int {
	c := 0
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.PkgPath != "" {
			continue
		}
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				c += countFields(ft)
				continue
			}
		}
		c++
	}
	return c
}

func buildFieldMetadata(typ reflect.Type, meta *structMetadata, prefix []int) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				buildFieldMetadata(ft, meta, idx)
				continue
			}
		}
		if f.PkgPath != "" {
			continue
		}
		jsonName := ""
		if jt, ok := f.Tag.Lookup("json"); ok {
			for j := 0; j < len(jt); j++ {
				if jt[j] == ',' {
					jt = jt[:j]
					break
				}
			}
			if jt != "-" {
				jsonName = jt
			}
		}
		meta.fields = append(meta.fields, fieldInfo{index: idx, name: f.Name, jsonName: jsonName, typ: f.Type})
	}
}

// lookup resolves a mapper field name against the struct: json tag first,
// then exact field name, then case-insensitive in declaration order so the
// resolved field is stable when names differ only by case.
func (meta *structMetadata) lookup(name string) *fieldInfo {
	if fi, ok := meta.fieldsByJSONName[name]; ok {
		return fi
	}
	if fi, ok := meta.fieldsByName[name]; ok {
		return fi
	}
	for i := range meta.fields {
		if strings.EqualFold(meta.fields[i].name, name) {
			return &meta.fields[i]
		}
	}
	for i := range meta.fields {
		if jn := meta.fields[i].jsonName; jn != "" && strings.EqualFold(jn, name) {
			return &meta.fields[i]
		}
	}
	return nil
}

// fieldByIndexAlloc walks the index path for assignment, materializing nil
// embedded struct pointers along the way instead of panicking on them.
func fieldByIndexAlloc(val reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && val.Kind() == reflect.Ptr {
			if val.IsNil() {
				if !val.CanSet() {
					return reflect.Value{}, false
				}
				val.Set(reflect.New(val.Type().Elem()))
			}
			val = val.Elem()
		}
		val = val.Field(x)
	}
	return val, true
}

func safeFieldByIndex(val reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && val.Kind() == reflect.Ptr {
			if val.IsNil() {
				return reflect.Value{}, false
			}
			val = val.Elem()
		}
		val = val.Field(x)
	}
	return val, true
}

// assignField writes a mapped value into the named entity field. Unknown
// names and incompatible shapes are skipped, not errors; the input only
// approximates the declared mapping.
func assignField(dst reflect.Value, meta *structMetadata, name string, v any) {
	fi := meta.lookup(name)
	if fi == nil {
		return
	}
	field, ok := fieldByIndexAlloc(dst, fi.index)
	if !ok || !field.CanSet() {
		return
	}
	if v == nil {
		field.Set(reflect.Zero(field.Type()))
		return
	}
	if _, ok := v.(nullMarker); ok {
		field.Set(reflect.Zero(field.Type()))
		return
	}
	if cv, ok := coerceValue(v, field.Type()); ok {
		field.Set(cv)
	}
}

// coerceValue adapts a mapped value to the field type: direct assignment,
// numeric conversion, pointer wrapping/unwrapping and element-wise slice
// rebuilds for []any results from ArrayOf.
func coerceValue(v any, ft reflect.Type) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	rt := rv.Type()
	if rt == ft || rt.AssignableTo(ft) {
		return rv, true
	}
	if rt.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Zero(ft), true
		}
		if rt.Elem() == ft || rt.Elem().AssignableTo(ft) {
			return rv.Elem(), true
		}
	}
	if ft.Kind() == reflect.Ptr && (rt == ft.Elem() || rt.AssignableTo(ft.Elem())) {
		ptr := reflect.New(ft.Elem())
		ptr.Elem().Set(rv)
		return ptr, true
	}
	if ft.Kind() == reflect.Slice && rt.Kind() == reflect.Slice {
		out := reflect.MakeSlice(ft, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev := rv.Index(i).Interface()
			if ev == nil {
				out = reflect.Append(out, reflect.Zero(ft.Elem()))
				continue
			}
			cv, ok := coerceValue(ev, ft.Elem())
			if !ok {
				return reflect.Value{}, false
			}
			out = reflect.Append(out, cv)
		}
		return out, true
	}
	if isNumericKind(rt.Kind()) && isNumericKind(ft.Kind()) && rt.ConvertibleTo(ft) {
		return rv.Convert(ft), true
	}
	if rt.Kind() == reflect.String && ft.Kind() == reflect.String {
		return rv.Convert(ft), true
	}
	return reflect.Value{}, false
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// fieldValueByName extracts a named value from a model for the write
// direction and for IdResolver lookups. Maps are indexed directly; structs
// go through the metadata cache. Missing names yield nil.
func fieldValueByName(model any, name string) any {
	if model == nil {
		return nil
	}
	if m, ok := model.(map[string]any); ok {
		return m[name]
	}
	rv := reflect.ValueOf(model)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil
		}
		return mv.Interface()
	case reflect.Struct:
		meta := metadataFor(rv.Type())
		fi := meta.lookup(name)
		if fi == nil {
			return nil
		}
		fv, ok := safeFieldByIndex(rv, fi.index)
		if !ok || !fv.CanInterface() {
			return nil
		}
		return fv.Interface()
	}
	return nil
}
