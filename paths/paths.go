// This file is part of memdisplay.
//
// memdisplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// memdisplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with memdisplay.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path"
)

// base directory in the current working directory
const baseResourcePath = ".memdisplay"

// base directory in the user's config directory
const configDir = "memdisplay"

// ResourcePath returns the path to the resource in the sub-directory. The
// sub-directory is created if it does not exist. Either argument can be empty.
func ResourcePath(subPth string, resource string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return path.Join(base, resource), nil
}

func getBasePath(subPth string) (string, error) {
	var pth string

	if _, err := os.Stat(baseResourcePath); err == nil {
		pth = path.Join(baseResourcePath, subPth)
	} else {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		pth = path.Join(cnf, configDir, subPth)
	}

	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
