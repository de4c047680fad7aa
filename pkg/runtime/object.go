package runtime

import "hash/fnv"

type ObjectType string

const (
	INTEGER_OBJ       = "INTEGER"
	FLOAT_OBJ         = "FLOAT"
	BOOLEAN_OBJ       = "BOOLEAN"
	STRING_OBJ        = "STRING"
	NIL_OBJ           = "NIL"
	DATA_INSTANCE_OBJ = "DATA_INSTANCE"
	CONSTRUCTOR_OBJ   = "CONSTRUCTOR"
	BUILTIN_OBJ       = "BUILTIN"
	HOST_FUNC_OBJ     = "HOST_FUNC"
	COMPOSED_FUNC_OBJ = "COMPOSED_FUNC"
	CLASS_OBJ         = "CLASS"
	EXCEPTION_OBJ     = "EXCEPTION"
	DICT_OBJ          = "DICT"
)

type Object interface {
	Type() ObjectType
	Inspect() string
	Hash() uint32
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
