package temptmp

import "os"

const (
	// DefaultFileMode is applied by Open when Options.Mode is zero
	DefaultFileMode os.FileMode = 0600

	// DefaultDirMode is applied by Mkdir when Options.Mode is zero
	DefaultDirMode os.FileMode = 0700

	// DefaultCreateFlags is applied by Open when Options.Flags is zero
	DefaultCreateFlags = os.O_CREATE | os.O_TRUNC | os.O_RDWR | os.O_EXCL
)

// Options controls where and how a temp path is synthesized and created.
// Zero values select the defaults.
type Options struct {
	Dir    string      // parent directory, defaults to the registry temp dir
	Prefix string      // prepended to the generated name
	Suffix string      // appended to the generated name
	Mode   os.FileMode // permission bits for Open/Mkdir
	Flags  int         // open flags for Open
}

func (o Options) fileMode() os.FileMode {
	if o.Mode == 0 {
		return DefaultFileMode
	}
	return o.Mode
}

func (o Options) dirMode() os.FileMode {
	if o.Mode == 0 {
		return DefaultDirMode
	}
	return o.Mode
}

func (o Options) openFlags() int {
	if o.Flags == 0 {
		return DefaultCreateFlags
	}
	return o.Flags
}
