package activitycmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v2"

	"exusiai.dev/demoapi/internal/app/appconfig"
	"exusiai.dev/demoapi/internal/core/activity"
	"exusiai.dev/demoapi/internal/pkg/apperr"
	"exusiai.dev/demoapi/internal/pkg/codec"
	"exusiai.dev/demoapi/internal/pkg/testentry"
)

func testDeps(t *testing.T) CommandDeps {
	var (
		conf *appconfig.Config
		svc  *activity.Service
	)
	testentry.Populate(t, &conf, &svc)
	// keep expected outputs on a single line
	conf.PrettyJSON = false
	return CommandDeps{Config: conf, ActivityService: svc}
}

func run(t *testing.T, deps CommandDeps, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	app := &cli.App{
		Name:      "demoapi",
		Reader:    strings.NewReader(stdin),
		Writer:    &out,
		ErrWriter: &bytes.Buffer{},

		DisableSliceFlagSeparator: true,
		Commands: []*cli.Command{
			Command(func() CommandDeps { return deps }),
		},
	}
	err := app.Run(append([]string{"demoapi", "activity"}, args...))
	return out.String(), err
}

func TestNew(t *testing.T) {
	deps := testDeps(t)

	out, err := run(t, deps, "", "new", "--id", "5")
	require.NoError(t, err)
	assert.JSONEq(t, `{"activityID":5,"activityKey":null,"activityName":null,"designees":null}`, out)
	assert.True(t, strings.HasSuffix(out, "\n"))

	out, err = run(t, deps, "", "new", "--id", "-3", "--key", "", "--name", "Review", "--no-designees")
	require.NoError(t, err)
	assert.JSONEq(t, `{"activityID":-3,"activityKey":"","activityName":"Review","designees":[]}`, out)

	out, err = run(t, deps, "", "new", "--id", "1", "--designee", `{"id":1,"role":"owner"}`, "--designee", `"user:2"`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"activityID":1,"activityKey":null,"activityName":null,"designees":[{"id":1,"role":"owner"},"user:2"]}`, out)

	_, err = run(t, deps, "", "new", "--id", "1", "--designee", `{broken`)
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))

	_, err = run(t, deps, "", "new")
	assert.Error(t, err, "--id is required")
}

func TestNewWritesFileInFormatFromExtension(t *testing.T) {
	deps := testDeps(t)
	path := filepath.Join(t.TempDir(), "activity.msgpack")

	out, err := run(t, deps, "", "new", "--id", "8", "--key", "k", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := deps.ActivityService.Decode(codec.FormatMsgpack, b)
	require.NoError(t, err)
	require.Len(t, doc.Activities, 1)
	assert.Equal(t, 8, doc.Activities[0].ActivityID)
	assert.Equal(t, "k", doc.Activities[0].ActivityKey.String)
}

func TestConvertRoundTrip(t *testing.T) {
	deps := testDeps(t)
	dir := t.TempDir()
	input := `[{"activityID":1,"activityKey":"a","activityName":null,"designees":[{"id":1}]},{"activityID":2,"activityKey":null,"activityName":"",` +
		`"designees":[]}]`

	packed := filepath.Join(dir, "activities.mp")
	_, err := run(t, deps, input, "convert", "--from", "json", "-o", packed)
	require.NoError(t, err)

	out, err := run(t, deps, "", "convert", "-i", packed, "--to", "json")
	require.NoError(t, err)
	assert.JSONEq(t, input, out)
}

func TestConvertRejectsUnknownFormat(t *testing.T) {
	deps := testDeps(t)

	_, err := run(t, deps, `{"activityID":1}`, "convert", "--to", "yaml")
	assert.True(t, errors.Is(err, apperr.ErrUnsupportedFormat))

	_, err = run(t, deps, `not a document`, "convert")
	assert.True(t, errors.Is(err, apperr.ErrInvalidDocument))
}

func TestInspect(t *testing.T) {
	deps := testDeps(t)

	out, err := run(t, deps, `{"activityID":4,"activityKey":"k","designees":[1,2,3]}`, "inspect")
	require.NoError(t, err)
	r := gjson.Parse(out)
	assert.True(t, r.IsObject())
	assert.Equal(t, int64(4), r.Get("activityID").Int())
	assert.Equal(t, "k", r.Get("activityKey").String())
	assert.Equal(t, gjson.Null, r.Get("activityName").Type)
	assert.Equal(t, int64(3), r.Get("designeeCount").Int())
	assert.True(t, r.Get("hasDesignees").Bool())
	assert.NotEmpty(t, r.Get("fingerprint").String())

	out, err = run(t, deps, `[{"activityID":1},{"activityID":2}]`, "inspect")
	require.NoError(t, err)
	r = gjson.Parse(out)
	assert.True(t, r.IsArray())
	assert.Equal(t, int64(2), r.Get("#").Int())
	assert.False(t, r.Get("0.hasDesignees").Bool())
}

func TestGet(t *testing.T) {
	deps := testDeps(t)

	out, err := run(t, deps, `[{"activityID":1,"activityName":"a","designees":[{"id":9}]},{"activityID":2}]`, "get", "--path", "activityName")
	require.NoError(t, err)
	assert.Equal(t, "\"a\"\nnull\n", out)

	out, err = run(t, deps, `{"activityID":1,"designees":[{"id":9}]}`, "get", "--path", "designees.0.id")
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)

	out, err = run(t, deps, `{"activityID":1}`, "get", "--path", "missing")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)
}

func TestSet(t *testing.T) {
	deps := testDeps(t)

	out, err := run(t, deps, `{"activityID":1,"activityKey":"k"}`, "set", "--path", "activityName", "--value", `"Renamed"`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"activityID":1,"activityKey":"k","activityName":"Renamed","designees":null}`, out)

	out, err = run(t, deps, `[{"activityID":1,"activityKey":"k"},{"activityID":2,"activityKey":"j"}]`, "set", "--path", "activityKey", "--delete")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"activityID":1,"activityKey":null,"activityName":null,"designees":null},`+
		`{"activityID":2,"activityKey":null,"activityName":null,"designees":null}]`, out)

	_, err = run(t, deps, `{"activityID":1}`, "set", "--path", "activityKey")
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))

	_, err = run(t, deps, `{"activityID":1}`, "set", "--path", "activityKey", "--value", `"k"`, "--delete")
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))

	out, err = run(t, deps, `{"activityID":1}`, "set", "--path", "activityNmae", "--value", `"Renamed"`)
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))
	assert.Equal(t, "activityNmae", apperr.Fields(err)["path"])
	assert.Empty(t, out)
}

func TestSetKeepsInputFormat(t *testing.T) {
	deps := testDeps(t)
	path := filepath.Join(t.TempDir(), "activity.msgpack")

	_, err := run(t, deps, "", "new", "--id", "1", "-o", path)
	require.NoError(t, err)

	_, err = run(t, deps, "", "set", "-i", path, "-o", path, "--path", "designees", "--value", `[{"id":1}]`)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := deps.ActivityService.Decode(codec.FormatMsgpack, b)
	require.NoError(t, err)
	require.Len(t, doc.Activities, 1)
	assert.Equal(t, 1, doc.Activities[0].DesigneeCount())
}

func TestResolveFormat(t *testing.T) {
	f, err := resolveFormat("", "a.json", codec.FormatMsgpack)
	require.NoError(t, err)
	assert.Equal(t, codec.FormatJSON, f)

	f, err = resolveFormat("msgpack", "a.json", codec.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, codec.FormatMsgpack, f)

	f, err = resolveFormat("", stdio, codec.FormatMsgpack)
	require.NoError(t, err)
	assert.Equal(t, codec.FormatMsgpack, f)
}
