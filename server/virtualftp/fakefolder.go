package virtualftp

import (
	"os"
	"time"
)

type FakeFolder struct {
	fakePath string
	modTime  time.Time
}

func NewFakeFolder(virtualFolder string, modTime time.Time) FakeFolder {
	return FakeFolder{
		fakePath: virtualFolder,
		modTime:  modTime,
	}
}

func (v *FakeFolder) Name() string {
	return v.fakePath
}
func (v *FakeFolder) Size() int64 {
	return 0
}
func (v *FakeFolder) Mode() os.FileMode {
	return os.ModeDir | 0555
}
func (v *FakeFolder) ModTime() time.Time {
	return v.modTime
}
func (v *FakeFolder) IsDir() bool {
	return true
}

func (v *FakeFolder) Sys() interface{} {
	return nil
}
