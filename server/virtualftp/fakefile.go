package virtualftp

import (
	"os"
	"time"
)

// FakeFile describes one of the in memory snapshot files
type FakeFile struct {
	fakePath string
	size     int64
	modTime  time.Time
}

func NewFakeFile(fakepath string, size int64, modTime time.Time) FakeFile {
	return FakeFile{
		fakePath: fakepath,
		size:     size,
		modTime:  modTime,
	}
}

func (v *FakeFile) Name() string {
	return v.fakePath
}
func (v *FakeFile) Size() int64 {
	return v.size
}
func (v *FakeFile) Mode() os.FileMode {
	return 0444
}
func (v *FakeFile) ModTime() time.Time {
	return v.modTime
}
func (v *FakeFile) IsDir() bool {
	return false
}

func (v *FakeFile) Sys() interface{} {
	return nil
}
