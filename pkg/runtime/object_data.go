package runtime

import "fmt"

// DataInstance represents an instance of an ADT case (e.g. Ok(5), Err(e)).
type DataInstance struct {
	Name     string
	Fields   []Object
	TypeName string
}

func (d *DataInstance) Type() ObjectType { return DATA_INSTANCE_OBJ }
func (d *DataInstance) Inspect() string {
	if len(d.Fields) == 0 {
		return d.Name
	}
	out := d.Name + "("
	for i, field := range d.Fields {
		if i > 0 {
			out += ", "
		}
		out += field.Inspect()
	}
	out += ")"
	return out
}
func (d *DataInstance) Hash() uint32 {
	h := hashString(d.Name)
	for _, field := range d.Fields {
		h = 31*h + field.Hash()
	}
	return h
}

// Constructor represents a function that creates a DataInstance.
type Constructor struct {
	Name     string
	TypeName string
	Arity    int
}

func (c *Constructor) Type() ObjectType { return CONSTRUCTOR_OBJ }
func (c *Constructor) Inspect() string  { return "constructor " + c.Name }
func (c *Constructor) Hash() uint32     { return hashString(c.Name) }

const resultTypeName = "Result"

// Ok wraps a success value into a Result instance.
func Ok(value Object) *DataInstance {
	return &DataInstance{Name: "Ok", TypeName: resultTypeName, Fields: []Object{value}}
}

// Err wraps a failure value into a Result instance. Any object is a legal
// error value, including raised Exception instances.
func Err(err Object) *DataInstance {
	return &DataInstance{Name: "Err", TypeName: resultTypeName, Fields: []Object{err}}
}

// asResult returns the instance as a well-formed Result, or nil.
func asResult(obj Object) *DataInstance {
	di, ok := obj.(*DataInstance)
	if !ok || di.TypeName != resultTypeName || len(di.Fields) != 1 {
		return nil
	}
	if di.Name != "Ok" && di.Name != "Err" {
		return nil
	}
	return di
}

// IsResult reports whether obj is a well-formed Result instance.
func IsResult(obj Object) bool {
	return asResult(obj) != nil
}

func (d *DataInstance) isOk() bool {
	return d.Name == "Ok"
}

func typeName(obj Object) string {
	switch o := obj.(type) {
	case *DataInstance:
		return o.TypeName
	case *Integer:
		return "Int"
	case *Float:
		return "Float"
	case *Boolean:
		return "Bool"
	case *String:
		return "String"
	case *Nil:
		return "Nil"
	case *Dict:
		return "Dict"
	case *Class:
		return fmt.Sprintf("Class(%s)", o.Name)
	default:
		return string(obj.Type())
	}
}
