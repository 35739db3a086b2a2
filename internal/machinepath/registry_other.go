//go:build !windows

package machinepath

type unsupportedStore struct{}

// NewSystemStore returns a store that fails on every call outside Windows.
func NewSystemStore() Store {
	return unsupportedStore{}
}

func (unsupportedStore) ReadMachinePath() (string, error) {
	return "", ErrUnsupported
}

func (unsupportedStore) WriteMachinePath(string) error {
	return ErrUnsupported
}
