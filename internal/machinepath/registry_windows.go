//go:build windows

package machinepath

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	environmentKey = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`
	pathValueName  = "Path"

	hwndBroadcast   = 0xffff
	wmSettingChange = 0x001A
	smtoAbortIfHung = 0x0002
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

// RegistryStore keeps the machine PATH in HKLM. Writing requires
// administrative rights.
type RegistryStore struct{}

// NewSystemStore returns the registry-backed store.
func NewSystemStore() Store {
	return RegistryStore{}
}

// ReadMachinePath returns the raw (unexpanded) machine PATH.
func (RegistryStore) ReadMachinePath() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, environmentKey, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("open environment key: %w", err)
	}
	defer k.Close()

	value, _, err := k.GetStringValue(pathValueName)
	if errors.Is(err, registry.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read machine PATH: %w", err)
	}
	return value, nil
}

// WriteMachinePath stores value, keeping the existing value type, and notifies
// running applications so new processes pick up the change.
func (RegistryStore) WriteMachinePath(value string) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, environmentKey, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open environment key: %w", err)
	}
	defer k.Close()

	_, valType, err := k.GetStringValue(pathValueName)
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("read machine PATH: %w", err)
	}

	if valType == registry.SZ {
		err = k.SetStringValue(pathValueName, value)
	} else {
		err = k.SetExpandStringValue(pathValueName, value)
	}
	if err != nil {
		return fmt.Errorf("write machine PATH: %w", err)
	}

	broadcastEnvironmentChange()
	return nil
}

// broadcastEnvironmentChange is best effort; Explorer picks the change up on
// its next refresh even if the broadcast times out.
func broadcastEnvironmentChange() {
	param, err := windows.UTF16PtrFromString("Environment")
	if err != nil {
		return
	}
	var result uintptr
	_, _, _ = procSendMessageTimeoutW.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(param)),
		smtoAbortIfHung,
		5000,
		uintptr(unsafe.Pointer(&result)),
	)
}
