package version

import (
	"errors"
	"fmt"
	"strings"
)

// Revision is a released build of the game. Values are ordered by release date.
type Revision int

const (
	Unknown Revision = iota
	Beta1_02
	Beta1_02StressTest
	V1_00
	V1_01
	V1_02
	V1_03
	V1_04B_C
	V1_05
	V1_05B
	V1_06
	V1_06B
	V1_07Beta
	V1_07
	V1_08
	V1_09
	V1_09B
	V1_09D
	V1_10Beta
	V1_10SBeta
	V1_10
	V1_11
	V1_11B
	V1_12A
	V1_13ABeta
	V1_13C
	V1_13D
	Classic1_14A
	LoD1_14A
	Classic1_14B
	LoD1_14B
	Classic1_14C
	LoD1_14C
	Classic1_14D
	LoD1_14D

	First = Beta1_02
	Last  = LoD1_14D
)

var ErrUnknownRevision = errors.New("unknown revision")

var revisionNames = [...]string{
	Unknown:            "Unknown",
	Beta1_02:           "Beta 1.02",
	Beta1_02StressTest: "Beta 1.02 (Stress Test)",
	V1_00:              "1.00",
	V1_01:              "1.01",
	V1_02:              "1.02",
	V1_03:              "1.03",
	V1_04B_C:           "1.04B/C",
	V1_05:              "1.05",
	V1_05B:             "1.05B",
	V1_06:              "1.06",
	V1_06B:             "1.06B",
	V1_07Beta:          "1.07 Beta",
	V1_07:              "1.07",
	V1_08:              "1.08",
	V1_09:              "1.09",
	V1_09B:             "1.09B",
	V1_09D:             "1.09D",
	V1_10Beta:          "1.10 Beta",
	V1_10SBeta:         "1.10S Beta",
	V1_10:              "1.10",
	V1_11:              "1.11",
	V1_11B:             "1.11B",
	V1_12A:             "1.12A",
	V1_13ABeta:         "1.13A Beta",
	V1_13C:             "1.13C",
	V1_13D:             "1.13D",
	Classic1_14A:       "Classic 1.14A",
	LoD1_14A:           "LoD 1.14A",
	Classic1_14B:       "Classic 1.14B",
	LoD1_14B:           "LoD 1.14B",
	Classic1_14C:       "Classic 1.14C",
	LoD1_14C:           "LoD 1.14C",
	Classic1_14D:       "Classic 1.14D",
	LoD1_14D:           "LoD 1.14D",
}

func (r Revision) String() string {
	if r < Unknown || int(r) >= len(revisionNames) {
		return fmt.Sprintf("Revision(%d)", int(r))
	}
	return revisionNames[r]
}

func (r Revision) Valid() bool {
	return r >= First && r <= Last
}

// All returns every known revision in release order.
func All() []Revision {
	out := make([]Revision, 0, Last-First+1)
	for r := First; r <= Last; r++ {
		out = append(out, r)
	}
	return out
}

func canonical(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer(" ", "", "(", "", ")", "", "_", "", "-", "").Replace(s)
	return strings.TrimPrefix(s, "v")
}

// ParseRevision accepts the names printed by String, case and spacing
// insensitive. Launcher-style short forms such as "1.13c" or "1.14d" are
// accepted too; a bare 1.14 revision means the expansion (LoD) build.
func ParseRevision(s string) (Revision, error) {
	want := canonical(s)
	if want == "" {
		return Unknown, fmt.Errorf("%w: empty name", ErrUnknownRevision)
	}
	for _, r := range All() {
		if canonical(r.String()) == want {
			return r, nil
		}
	}
	for _, r := range All() {
		if r.IsAtLeast1_14() && strings.HasPrefix(canonical(r.String()), "lod") &&
			strings.TrimPrefix(canonical(r.String()), "lod") == want {
			return r, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownRevision, s)
}

func (r Revision) IsAtLeast1_14() bool {
	return r >= Classic1_14A
}

// HasFingerprintCheck reports whether the file-version guess for r is ambiguous
// and must be narrowed by a header signature.
func (r Revision) HasFingerprintCheck() bool {
	switch r {
	case Beta1_02, Beta1_02StressTest,
		V1_00, V1_01,
		V1_06, V1_06B,
		V1_07Beta, V1_07,
		Classic1_14A, LoD1_14A,
		Classic1_14B, LoD1_14B,
		Classic1_14C, LoD1_14C,
		Classic1_14D, LoD1_14D:
		return true
	}
	return false
}

// SignatureFile is the file whose header fingerprints r: Storm.dll before 1.14,
// the game executable after the libraries were merged into it.
func (r Revision) SignatureFile() string {
	if r.IsAtLeast1_14() {
		return GameExecutable
	}
	return "Storm.dll"
}

const GameExecutable = "Game.exe"
