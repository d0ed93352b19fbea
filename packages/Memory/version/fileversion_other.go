//go:build !windows

package version

import "errors"

func readFileVersion(string) (FileVersion, error) {
	return FileVersion{}, errors.New("version resources can only be read on windows")
}
