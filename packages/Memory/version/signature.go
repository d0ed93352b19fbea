package version

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
)

const (
	SignatureSize = 64

	// Offset of e_lfanew in the DOS header; it holds the file offset of the PE header.
	peHeaderPointerOffset = 0x3C
)

var (
	ErrUnknownSignature = errors.New("could not determine version from binary signature")
	ErrUnsortedTable    = errors.New("signature table is not strictly sorted")
)

// Signature is the first SignatureSize bytes of a module's PE header, which
// include the link timestamp and image sizes.
type Signature [SignatureSize]byte

func (s Signature) Compare(o Signature) int {
	return bytes.Compare(s[:], o[:])
}

func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}

// Digest is a short stable id of s for logs and listings.
func (s Signature) Digest() string {
	return fmt.Sprintf("%016x", xxhash.Sum64(s[:]))
}

type UnknownSignatureError struct {
	Path      string
	Signature Signature
}

func (e *UnknownSignatureError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnknownSignature, e.Path)
}

func (e *UnknownSignatureError) Unwrap() error {
	return ErrUnknownSignature
}

// ReadSignatureFrom follows the e_lfanew pointer of r and copies the bytes found there.
func ReadSignatureFrom(r io.ReaderAt) (Signature, error) {
	var sig Signature
	var ptr [4]byte
	if _, err := r.ReadAt(ptr[:], peHeaderPointerOffset); err != nil {
		return sig, fmt.Errorf("read PE header pointer: %w", err)
	}
	off := int64(int32(binary.LittleEndian.Uint32(ptr[:])))
	if off < 0 {
		return sig, fmt.Errorf("negative PE header pointer %d", off)
	}
	if _, err := r.ReadAt(sig[:], off); err != nil {
		return sig, fmt.Errorf("read %d signature bytes at %#x: %w", SignatureSize, off, err)
	}
	return sig, nil
}

func ReadSignature(path string) (Signature, error) {
	f, err := os.Open(path)
	if err != nil {
		return Signature{}, err
	}
	defer f.Close()

	sig, err := ReadSignatureFrom(f)
	if err != nil {
		return sig, fmt.Errorf("%s: %w", path, err)
	}
	return sig, nil
}

type Entry struct {
	Signature Signature
	Revision  Revision
}

// Table maps signatures to revisions. Entries are strictly sorted by signature.
type Table struct {
	entries []Entry
}

func checkSorted[T any](items []T, key func(T) Signature) error {
	for i := 1; i < len(items); i++ {
		if c := key(items[i-1]).Compare(key(items[i])); c >= 0 {
			if c == 0 {
				return fmt.Errorf("%w: duplicate signature at index %d", ErrUnsortedTable, i)
			}
			return fmt.Errorf("%w: index %d sorts before index %d", ErrUnsortedTable, i, i-1)
		}
	}
	return nil
}

func NewTable(entries []Entry) (*Table, error) {
	if err := checkSorted(entries, func(e Entry) Signature { return e.Signature }); err != nil {
		return nil, err
	}
	for i, e := range entries {
		if !e.Revision.Valid() {
			return nil, fmt.Errorf("signature table index %d: %w: %d", i, ErrUnknownRevision, int(e.Revision))
		}
	}
	return &Table{entries: slices.Clone(entries)}, nil
}

func mustTable(entries []Entry) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

func (t *Table) Lookup(sig Signature) (Revision, bool) {
	i, found := slices.BinarySearchFunc(t.entries, sig, func(e Entry, s Signature) int {
		return e.Signature.Compare(s)
	})
	if !found {
		return Unknown, false
	}
	return t.entries[i].Revision, true
}

// Identify fingerprints the file at path.
func (t *Table) Identify(path string) (Revision, error) {
	sig, err := ReadSignature(path)
	if err != nil {
		return Unknown, err
	}
	rev, ok := t.Lookup(sig)
	if !ok {
		return Unknown, &UnknownSignatureError{Path: path, Signature: sig}
	}
	return rev, nil
}

// Set is a sorted collection of signatures without associated revisions.
type Set struct {
	sigs []Signature
}

func NewSet(sigs []Signature) (*Set, error) {
	if err := checkSorted(sigs, func(s Signature) Signature { return s }); err != nil {
		return nil, err
	}
	return &Set{sigs: slices.Clone(sigs)}, nil
}

func (s *Set) Contains(sig Signature) bool {
	_, found := slices.BinarySearchFunc(s.sigs, sig, Signature.Compare)
	return found
}

// Identify is a convenience for Default.Identify.
func Identify(path string) (Revision, error) {
	return Default.Identify(path)
}

func mustSet(sigs []Signature) *Set {
	s, err := NewSet(sigs)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Set) Len() int {
	return len(s.sigs)
}

// MatchFile reports whether the signature of the file at path is in s.
func (s *Set) MatchFile(path string) (bool, error) {
	sig, err := ReadSignature(path)
	if err != nil {
		return false, err
	}
	return s.Contains(sig), nil
}

func (t *Table) Contains(sig Signature) bool {
	_, ok := t.Lookup(sig)
	return ok
}
