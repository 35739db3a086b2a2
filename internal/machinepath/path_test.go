package machinepath

import (
	"errors"
	"strings"
	"testing"

	"github.com/Thunder-Compute/unrar-setup/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const installDir = `C:\Program Files\UnRAR`

func TestContainsIgnoresCase(t *testing.T) {
	assert.True(t, Contains(`C:\Windows;c:\program files\unrar`, installDir))
	assert.True(t, Contains(`C:\PROGRAM FILES\UNRAR\;C:\Windows`, installDir))
	assert.False(t, Contains(`C:\Windows;C:\Program Files\WinRAR`, installDir))
	assert.False(t, Contains(`C:\Windows`, ""))
}

func TestAppend(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `C:\Windows`, want: `C:\Windows;` + installDir},
		{name: "trailingSeparator", in: `C:\Windows;`, want: `C:\Windows;` + installDir},
		{name: "manyTrailingSeparators", in: `C:\Windows;;;`, want: `C:\Windows;` + installDir},
		{name: "empty", in: "", want: installDir},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Append(tc.in, installDir))
		})
	}
}

func TestRemove(t *testing.T) {
	got, removed := Remove(`C:\Windows;c:\program files\unrar\;C:\Tools;C:\Program Files\UnRAR`, installDir)
	assert.True(t, removed)
	assert.Equal(t, `C:\Windows;C:\Tools`, got)

	original := `C:\Windows;C:\Program Files\UnRAR\bin`
	got, removed = Remove(original, installDir)
	assert.False(t, removed)
	assert.Equal(t, original, got)
}

func TestEntries(t *testing.T) {
	assert.Equal(t, []string{`C:\Windows`, `C:\Tools`}, Entries(`C:\Windows;; ;C:\Tools;`))
	assert.Empty(t, Entries(""))
}

func TestRegisterAppendsWhenAbsent(t *testing.T) {
	store := &testutils.MockPathStore{Value: `C:\Windows\system32;C:\Windows;`}

	written, err := Register(store, installDir)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, `C:\Windows\system32;C:\Windows;`+installDir, store.Value)
	assert.Equal(t, 1, strings.Count(strings.ToLower(store.Value), strings.ToLower(installDir)))
}

func TestRegisterLeavesPathUntouchedWhenPresent(t *testing.T) {
	original := `C:\Windows;C:\PROGRAM FILES\UNRAR;`
	store := &testutils.MockPathStore{Value: original}

	written, err := Register(store, installDir)
	require.NoError(t, err)
	assert.False(t, written)
	assert.Empty(t, store.Writes)
	assert.Equal(t, original, store.Value)
}

func TestRegisterIsIdempotent(t *testing.T) {
	store := &testutils.MockPathStore{Value: `C:\Windows`}

	for i := 0; i < 3; i++ {
		_, err := Register(store, installDir)
		require.NoError(t, err)
	}
	assert.Len(t, store.Writes, 1)
	assert.Equal(t, 1, strings.Count(store.Value, installDir))
}

func TestRegisterPropagatesErrors(t *testing.T) {
	readFail := &testutils.MockPathStore{ReadErr: errors.New("access denied")}
	_, err := Register(readFail, installDir)
	assert.EqualError(t, err, "access denied")

	writeFail := &testutils.MockPathStore{Value: `C:\Windows`, WriteErr: errors.New("access denied")}
	written, err := Register(writeFail, installDir)
	assert.Error(t, err)
	assert.False(t, written)
	assert.Equal(t, `C:\Windows`, writeFail.Value)
}

func TestUnregister(t *testing.T) {
	store := &testutils.MockPathStore{Value: `C:\Windows;` + installDir}

	written, err := Unregister(store, installDir)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, `C:\Windows`, store.Value)

	written, err = Unregister(store, installDir)
	require.NoError(t, err)
	assert.False(t, written)
	assert.Len(t, store.Writes, 1)
}
