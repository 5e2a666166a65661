package adapter

import (
	"bytes"

	"github.com/gowebpki/jcs"
)

// JCS defines an interface for RFC 8785 canonical JSON operations to enable mocking
//
//go:generate mockgen -source=jsc.go -destination=../mocks/jsc.go -package=mocks -mock_names=JCS=MockJCS
type JCS interface {
	Transform(data []byte) ([]byte, error)
	// CanonicalEqual reports whether two JSON documents have the same canonical form
	CanonicalEqual(a, b []byte) (bool, error)
}

// RealJCS implements JCS using the gowebpki/jcs package
type RealJCS struct{}

// NewJCS creates a new real JCS implementation
func NewJCS() JCS {
	return &RealJCS{}
}

func (j *RealJCS) Transform(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}

func (j *RealJCS) CanonicalEqual(a, b []byte) (bool, error) {
	ca, err := jcs.Transform(a)
	if err != nil {
		return false, err
	}
	cb, err := jcs.Transform(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ca, cb), nil
}
