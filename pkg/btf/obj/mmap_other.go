//go:build !unix

package obj

import "github.com/jtang613/btfgo/pkg/btf/btferrs"

// mmapFile is unsupported on non-unix platforms; use the Cache backend
// there instead.
func mmapFile(path string) ([]byte, func() error, error) {
	return nil, nil, btferrs.OpNotSupportedf("mmap backend is only supported on unix platforms")
}
