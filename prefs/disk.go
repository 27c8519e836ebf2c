// This file is part of ClockDivider.
//
// ClockDivider is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ClockDivider is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ClockDivider.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/reactivesynth/clockdivider/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in the preferences file.
const KeySep = " :: "

// Sentinel errors returned by the Disk type.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	InvalidKey   = "prefs: invalid key (%s)"
	DuplicateKey = "prefs: key already added (%s)"
	LoadError    = "prefs: %s: %v"
)

type entryMap map[string]pref

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries entryMap
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range slices.Sorted(maps.Keys(dsk.entries)) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(entryMap),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file. Keys must not
// contain the KeySep string or any whitespace.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n") || strings.Contains(key, strings.TrimSpace(KeySep)) {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their zero value. Values are not saved.
func (dsk *Disk) Reset() error {
	for _, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// Save current preference values to disk. Keys in the preferences file that
// are not part of this Disk are preserved.
func (dsk *Disk) Save() (rerr error) {
	existing, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	if existing == nil {
		existing = make(map[string]string)
	}
	for k, v := range dsk.entries {
		existing[k] = v.String()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(LoadError, dsk.path, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(LoadError, dsk.path, err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range slices.Sorted(maps.Keys(existing)) {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, existing[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(LoadError, dsk.path, err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack (see
// PushCommandLineStack()) take priority over values in the file.
//
// If saveOnFail is true and the file does not exist then the current values
// are saved to create the file. The NoPrefsFile error is still returned.
func (dsk *Disk) Load(saveOnFail bool) error {
	existing, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		if saveOnFail {
			if serr := dsk.Save(); serr != nil {
				return serr
			}
		}
	}

	for k, p := range dsk.entries {
		if v, ok := existing[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(LoadError, k, err)
			}
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(LoadError, k, err)
			}
		}
	}

	return err
}

// read the preferences file into a map of strings. lines that are not
// key/value pairs are ignored.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(LoadError, dsk.path, err)
	}
	defer f.Close()

	m := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate {
			continue
		}
		k, v, ok := strings.Cut(line, KeySep)
		if !ok {
			continue
		}
		m[strings.TrimSpace(k)] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(LoadError, dsk.path, err)
	}

	return m, nil
}
