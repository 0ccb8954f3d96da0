package opener

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UsesEnvironmentBrowser(t *testing.T) {
	t.Setenv("DIFFREPORT_BROWSER", "my-browser")
	t.Setenv("BROWSER", "other-browser")

	var gotName string
	var gotArgs []string
	o := &Opener{start: func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}}

	require.NoError(t, o.Open("http://127.0.0.1:1234/"))
	assert.Equal(t, "my-browser", gotName)
	assert.Equal(t, []string{"http://127.0.0.1:1234/"}, gotArgs)
}

func TestOpen_FallsBackToBROWSER(t *testing.T) {
	t.Setenv("DIFFREPORT_BROWSER", "")
	t.Setenv("BROWSER", "other-browser")

	name, args := findHandler("file.html")

	assert.Equal(t, "other-browser", name)
	assert.Equal(t, []string{"file.html"}, args)
}

func TestOpen_PlatformDefault(t *testing.T) {
	t.Setenv("DIFFREPORT_BROWSER", "")
	t.Setenv("BROWSER", "")

	name, args := findHandler("file.html")

	assert.NotEmpty(t, name)
	assert.Equal(t, "file.html", args[len(args)-1])
}

func TestOpen_Errors(t *testing.T) {
	o := &Opener{start: func(string, ...string) error { return errors.New("boom") }}

	err := o.Open("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no target provided")

	err = o.Open("x.html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
