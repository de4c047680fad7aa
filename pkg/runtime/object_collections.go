package runtime

import "strings"

// DictPair keeps the original key next to its value: hashes are 32-bit, so
// a bucket can hold several distinct keys and lookups must confirm the
// match with ObjectsEqual.
type DictPair struct {
	Key   Object
	Value Object
}

// Dict is a hash map over object keys. Subscripting a missing key raises
// KeyError, which makes it the canonical failure source for the exception
// bridge (`try data[k] except KeyError`).
type Dict struct {
	Pairs map[uint32][]DictPair
}

func NewDict() *Dict {
	return &Dict{Pairs: make(map[uint32][]DictPair)}
}

func (d *Dict) Type() ObjectType { return DICT_OBJ }
func (d *Dict) Inspect() string {
	items := make([]string, 0, len(d.Pairs))
	for _, bucket := range d.Pairs {
		for _, pair := range bucket {
			items = append(items, pair.Key.Inspect()+": "+pair.Value.Inspect())
		}
	}
	return "{" + strings.Join(items, ", ") + "}"
}
func (d *Dict) Hash() uint32 {
	var h uint32
	for k, bucket := range d.Pairs {
		for _, pair := range bucket {
			h ^= k ^ pair.Value.Hash()
		}
	}
	return h
}

func (d *Dict) Set(key, value Object) {
	h := key.Hash()
	bucket := d.Pairs[h]
	for i, pair := range bucket {
		if ObjectsEqual(pair.Key, key) {
			bucket[i].Value = value
			return
		}
	}
	d.Pairs[h] = append(bucket, DictPair{Key: key, Value: value})
}

func (d *Dict) Get(key Object) (Object, bool) {
	for _, pair := range d.Pairs[key.Hash()] {
		if ObjectsEqual(pair.Key, key) {
			return pair.Value, true
		}
	}
	return nil, false
}

func (d *Dict) Len() int {
	n := 0
	for _, bucket := range d.Pairs {
		n += len(bucket)
	}
	return n
}

// Index is the evaluation of `d[key]`. A missing key raises KeyError.
func (d *Dict) Index(key Object) Object {
	value, ok := d.Get(key)
	if !ok {
		RaiseException(NewException(KeyErrorClass, "%s", key.Inspect()))
	}
	return value
}
