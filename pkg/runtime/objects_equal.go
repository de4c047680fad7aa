package runtime

// ObjectsEqual reports structural equality of two runtime values. Hashes are
// 32-bit and may collide; every hash-keyed structure must confirm a match
// with this check.
func ObjectsEqual(a, b Object) bool {
	if a.Type() != b.Type() {
		return false
	}

	switch a := a.(type) {
	case *Integer:
		return a.Value == b.(*Integer).Value
	case *Float:
		return a.Value == b.(*Float).Value
	case *Boolean:
		return a.Value == b.(*Boolean).Value
	case *String:
		return a.Value == b.(*String).Value
	case *Nil:
		return true
	case *Class:
		return a == b.(*Class)
	case *DataInstance:
		bData := b.(*DataInstance)
		if a.Name != bData.Name || a.TypeName != bData.TypeName {
			return false
		}
		if len(a.Fields) != len(bData.Fields) {
			return false
		}
		for i, field := range a.Fields {
			if !ObjectsEqual(field, bData.Fields[i]) {
				return false
			}
		}
		return true
	case *Exception:
		bExc := b.(*Exception)
		return a.Class == bExc.Class && a.Message == bExc.Message
	case *Dict:
		bDict := b.(*Dict)
		if a.Len() != bDict.Len() {
			return false
		}
		for _, bucket := range a.Pairs {
			for _, pair := range bucket {
				value, ok := bDict.Get(pair.Key)
				if !ok || !ObjectsEqual(pair.Value, value) {
					return false
				}
			}
		}
		return true
	default:
		// Callables and constructors compare by identity.
		return a == b
	}
}
