package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// SampleMUS serializes Samples in MUS format. Each string list is written as
// a varint length followed by its elements, then the tag.
//
// Nil and empty lists encode the same way and both decode as nil.
var SampleMUS = sampleMUS{}

type sampleMUS struct{}

func (s sampleMUS) Marshal(v Sample, bs []byte) (n int) {
	n = marshalStrings(v.Data, bs)
	n += marshalStrings(v.Keywords, bs[n:])
	n += marshalStrings(v.Exceptions, bs[n:])
	return n + ord.String.Marshal(v.Tag, bs[n:])
}

func (s sampleMUS) Unmarshal(bs []byte) (v Sample, n int, err error) {
	v.Data, n, err = unmarshalStrings(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Keywords, n1, err = unmarshalStrings(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Exceptions, n1, err = unmarshalStrings(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Tag, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s sampleMUS) Size(v Sample) (size int) {
	size = sizeStrings(v.Data)
	size += sizeStrings(v.Keywords)
	size += sizeStrings(v.Exceptions)
	return size + ord.String.Size(v.Tag)
}

func marshalStrings(v []string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for _, item := range v {
		n += ord.String.Marshal(item, bs[n:])
	}
	return
}

// unmarshalStrings returns nil for an empty list.
func unmarshalStrings(bs []byte) (v []string, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	if length < 0 {
		return nil, n, ErrNegativeLength
	}
	if length == 0 {
		return nil, n, nil
	}
	// Every element takes at least one byte.
	if length > len(bs)-n {
		return nil, n, ErrTruncatedData
	}
	v = make([]string, length)
	var n1 int
	for i := range v {
		v[i], n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

func sizeStrings(v []string) (size int) {
	size = varint.Int.Size(len(v))
	for _, item := range v {
		size += ord.String.Size(item)
	}
	return
}
