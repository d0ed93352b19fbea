package memory

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

const scanChunkSize = 0x10000

var ErrPatternNotFound = errors.New("pattern not found")

// Pattern is an array of bytes where wildcard positions ("??") match any byte.
type Pattern struct {
	bytes []byte
	mask  []bool
}

// ParsePattern accepts space separated hex bytes, e.g. "8B 44 24 ?? 85 C0".
func ParsePattern(aob string) (Pattern, error) {
	var p Pattern
	for _, tok := range strings.Fields(aob) {
		if strings.Trim(tok, "?") == "" {
			p.bytes = append(p.bytes, 0x00)
			p.mask = append(p.mask, false)
			continue
		}
		b, err := hex.DecodeString(tok)
		if err != nil || len(b) != 1 {
			return Pattern{}, fmt.Errorf("invalid pattern byte %q in %q", tok, aob)
		}
		p.bytes = append(p.bytes, b[0])
		p.mask = append(p.mask, true)
	}
	if len(p.bytes) == 0 {
		return Pattern{}, fmt.Errorf("empty pattern %q", aob)
	}
	return p, nil
}

func MustParsePattern(aob string) Pattern {
	p, err := ParsePattern(aob)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pattern) Len() int {
	return len(p.bytes)
}

func (p Pattern) String() string {
	parts := make([]string, len(p.bytes))
	for i, b := range p.bytes {
		if p.mask[i] {
			parts[i] = fmt.Sprintf("%02X", b)
		} else {
			parts[i] = "??"
		}
	}
	return strings.Join(parts, " ")
}

func (p Pattern) matchAt(data []byte, i int) bool {
	for j, b := range p.bytes {
		if p.mask[j] && data[i+j] != b {
			return false
		}
	}
	return true
}

// FindAll returns the offsets of every match in data.
func (p Pattern) FindAll(data []byte) []int {
	var results []int
	for i := 0; i <= len(data)-len(p.bytes); i++ {
		if p.matchAt(data, i) {
			results = append(results, i)
		}
	}
	return results
}

func (p Pattern) Find(data []byte) int {
	for i := 0; i <= len(data)-len(p.bytes); i++ {
		if p.matchAt(data, i) {
			return i
		}
	}
	return -1
}

type region struct {
	base Address
	size uintptr
}

// Scan searches [start, start+size) for p. The range is split into chunks that
// overlap by len(p)-1 bytes and every chunk is scanned on its own goroutine.
// Unreadable chunks are skipped; the scan fails only if no chunk could be read.
// A limit above zero stops collecting after that many matches.
func Scan(acc Accessor, start Address, size uintptr, p Pattern, limit int) ([]Address, error) {
	if p.Len() == 0 || size < uintptr(p.Len()) {
		return nil, nil
	}

	var regions []region
	overlap := uintptr(p.Len() - 1)
	for off := uintptr(0); off < size; off += scanChunkSize {
		n := uintptr(scanChunkSize) + overlap
		if off+n > size {
			n = size - off
		}
		if n < uintptr(p.Len()) {
			break
		}
		regions = append(regions, region{base: start + Address(off), size: n})
	}

	resultsCh := make(chan []Address, len(regions))
	errCh := make(chan error, len(regions))

	var wg sync.WaitGroup
	wg.Add(len(regions))

	for _, r := range regions {
		go func(r region) {
			defer wg.Done()
			data := make([]byte, r.size)
			if err := acc.Read(r.base, data); err != nil {
				errCh <- err
				return
			}
			var local []Address
			for _, off := range p.FindAll(data) {
				local = append(local, r.base+Address(off))
			}
			resultsCh <- local
		}(r)
	}

	wg.Wait()
	close(resultsCh)
	close(errCh)

	if len(errCh) == len(regions) {
		return nil, <-errCh
	}

	var results []Address
	for res := range resultsCh {
		results = append(results, res...)
	}
	sort.Slice(results, func(i, j int) bool { return results[i] < results[j] })
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
