package version

import (
	"fmt"
	"strconv"
	"strings"
)

// FileVersion is the four-part version from an executable's VS_FIXEDFILEINFO.
type FileVersion [4]uint16

func (v FileVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v[0], v[1], v[2], v[3])
}

func ParseFileVersion(s string) (FileVersion, error) {
	var v FileVersion
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == ',' || r == ' ' })
	if len(parts) != 4 {
		return v, fmt.Errorf("file version %q: want 4 parts, got %d", s, len(parts))
	}
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return v, fmt.Errorf("file version %q: %w", s, err)
		}
		v[i] = uint16(n)
	}
	return v, nil
}

var exactFileVersions = map[FileVersion]Revision{
	{1, 0, 9, 19}:  V1_09,
	{1, 0, 9, 20}:  V1_09B,
	{1, 0, 9, 22}:  V1_09D,
	{1, 0, 10, 9}:  V1_10Beta,
	{1, 0, 10, 10}: V1_10SBeta,
	{1, 0, 10, 39}: V1_10,
	{1, 0, 11, 45}: V1_11,
	{1, 0, 11, 46}: V1_11B,
	{1, 0, 13, 55}: V1_13ABeta,
	{1, 0, 13, 60}: V1_13C,
	{1, 0, 13, 64}: V1_13D,
}

// GuessFromFileVersion maps a file version to a provisional revision. Builds
// that share a file version resolve to a revision whose HasFingerprintCheck is
// true, so the header signature settles them.
func GuessFromFileVersion(v FileVersion) (Revision, error) {
	if rev, ok := exactFileVersions[v]; ok {
		return rev, nil
	}

	switch {
	case v[0] == 1 && v[1] == 0:
		switch v[2] {
		case 0:
			return V1_00, nil
		case 1:
			return V1_01, nil
		case 2:
			return V1_02, nil
		case 3:
			return V1_03, nil
		case 4:
			return V1_04B_C, nil
		case 5:
			if v[3] >= 1 {
				return V1_05B, nil
			}
			return V1_05, nil
		case 6:
			return V1_06, nil
		case 7:
			return V1_07, nil
		case 8:
			return V1_08, nil
		case 12:
			return V1_12A, nil
		}
	case v[0] == 1 && v[1] == 14:
		switch v[2] {
		case 0:
			return LoD1_14A, nil
		case 1:
			return LoD1_14B, nil
		case 2:
			return LoD1_14C, nil
		case 3:
			return LoD1_14D, nil
		}
	}
	return Unknown, fmt.Errorf("%w: file version %s", ErrUnknownRevision, v)
}

// FileVersionGuesser guesses from the version resource of the game executable.
type FileVersionGuesser struct{}

func (FileVersionGuesser) Guess(executable string) (Revision, error) {
	v, err := readFileVersion(executable)
	if err != nil {
		return Unknown, fmt.Errorf("read file version of %s: %w", executable, err)
	}
	return GuessFromFileVersion(v)
}
