package packages

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeListingArray(t *testing.T) {
	data := []byte(`[
		{"DisplayName":"Contoso Notes","Description":"Take notes"},
		{"DisplayName":"Photos","Description":null}
	]`)

	listing, err := DecodeListing(data, nil)

	require.NoError(t, err)
	assert.Empty(t, listing.Failures)
	assert.Equal(t, []Package{
		{Name: "Contoso Notes", Description: "Take notes"},
		{Name: "Photos", Description: ""},
	}, listing.Packages)
}

func TestDecodeListingSingleObject(t *testing.T) {
	listing, err := DecodeListing([]byte(`{"DisplayName":"Calculator","Description":"Math"}`), nil)

	require.NoError(t, err)
	assert.Equal(t, []Package{{Name: "Calculator", Description: "Math"}}, listing.Packages)
}

func TestDecodeListingRecordsFieldFailuresAndContinues(t *testing.T) {
	data := []byte(`[
		{"Description":"no name"},
		{"DisplayName":42,"Description":"numeric name"},
		{"DisplayName":"Broken"},
		{"DisplayName":"Good","Description":"fine"}
	]`)

	listing, err := DecodeListing(data, nil)

	require.NoError(t, err)
	assert.Equal(t, []Package{{Name: "Good", Description: "fine"}}, listing.Packages)
	require.Len(t, listing.Failures, 3)
	assert.Equal(t, FieldDisplayName, listing.Failures[0].Field)
	assert.Equal(t, FieldDisplayName, listing.Failures[1].Field)
	assert.Equal(t, FieldDescription, listing.Failures[2].Field)
	assert.Equal(t, 2, listing.Failures[2].Index)
	assert.Contains(t, listing.Failures[1].Error(), "DisplayName")
}

func TestDecodeListingRejectsUnresolvedResourceNames(t *testing.T) {
	data := []byte(`[
		{"DisplayName":"ms-resource:AppStoreName","Description":"Calculator"},
		{"DisplayName":"Calculator","Description":"MS-Resource:Description"},
		{"DisplayName":"Calculator","Description":"Math"}
	]`)

	listing, err := DecodeListing(data, nil)

	require.NoError(t, err)
	assert.Equal(t, []Package{{Name: "Calculator", Description: "Math"}}, listing.Packages)
	require.Len(t, listing.Failures, 2)
	assert.Equal(t, FieldDisplayName, listing.Failures[0].Field)
	assert.ErrorIs(t, listing.Failures[0], errUnresolved)
	assert.Equal(t, FieldDescription, listing.Failures[1].Field)
}

func TestListScriptReadsResolvedNames(t *testing.T) {
	assert.Contains(t, listScript, "Windows.Management.Deployment.PackageManager")
	assert.Contains(t, listScript, "FindPackages()")
	assert.Contains(t, listScript, "$_.DisplayName")
	assert.NotContains(t, listScript, "Get-AppxPackageManifest")
}

func TestDecodeListingFilterSkipsDescriptionRead(t *testing.T) {
	data := []byte(`[
		{"DisplayName":"Skipped"},
		{"DisplayName":"Notes","Description":"kept"}
	]`)

	listing, err := DecodeListing(data, func(name string) bool {
		return strings.Contains(strings.ToLower(name), "note")
	})

	require.NoError(t, err)
	assert.Empty(t, listing.Failures)
	assert.Equal(t, []Package{{Name: "Notes", Description: "kept"}}, listing.Packages)
}

func TestDecodeListingRejectsGarbage(t *testing.T) {
	_, err := DecodeListing([]byte(`not json`), nil)
	assert.Error(t, err)

	_, err = DecodeListing([]byte(`"just a string"`), nil)
	assert.Error(t, err)

	listing, err := DecodeListing([]byte("  \n"), nil)
	assert.NoError(t, err)
	assert.Empty(t, listing.Packages)
}

func TestEnumerateRequiresElevation(t *testing.T) {
	called := false
	e := &AppxEnumerator{
		Elevated: func() bool { return false },
		Run: func(string, ...string) ([]byte, error) {
			called = true
			return nil, nil
		},
	}

	_, err := e.Enumerate(nil)

	assert.ErrorIs(t, err, ErrNotElevated)
	assert.False(t, called, "enumeration must not start without rights")
}

func TestEnumerateRunsPowerShell(t *testing.T) {
	var gotName string
	var gotArgs []string
	e := &AppxEnumerator{
		Elevated: func() bool { return true },
		Run: func(name string, args ...string) ([]byte, error) {
			gotName, gotArgs = name, args
			return []byte(`[{"DisplayName":"Paint","Description":"Draw"}]`), nil
		},
	}

	listing, err := e.Enumerate(nil)

	require.NoError(t, err)
	assert.Equal(t, "powershell.exe", gotName)
	assert.Contains(t, gotArgs, "-NoProfile")
	assert.Equal(t, []Package{{Name: "Paint", Description: "Draw"}}, listing.Packages)
}

func TestEnumerateWrapsRunnerFailure(t *testing.T) {
	boom := errors.New("boom")
	e := &AppxEnumerator{
		Elevated: func() bool { return true },
		Run:      func(string, ...string) ([]byte, error) { return nil, boom },
	}

	_, err := e.Enumerate(nil)

	assert.ErrorIs(t, err, boom)
}

func TestProbeReflectsPlatform(t *testing.T) {
	c := Probe()
	assert.Equal(t, registrySupported, c.Supported)
	assert.Equal(t, IsElevated(), c.Elevated)
}
