package progrock_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/ppargo/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_CompileLifecycle(t *testing.T) {
	tape := vprogrock.NewTape()
	recorder := progrock.NewRecorder(tape)
	ctx := context.Background()

	_, compiled := recorder.Record(ctx, "compile src/main.cpp")
	_, err := compiled.Stderr().Write([]byte("main.cpp:3:5: warning: unused variable 'x'\n"))
	require.NoError(t, err)
	compiled.Complete(nil)

	_, reused := recorder.Record(ctx, "compile src/util.cpp")
	reused.Cached()
	reused.Complete(nil)

	_, failed := recorder.Record(ctx, "link target/debug/app")
	_, err = failed.Stdout().Write([]byte("linking\n"))
	require.NoError(t, err)
	failed.Complete(errors.New("undefined reference to main"))

	assert.Equal(t, 3, tape.TotalCount())
	assert.Equal(t, 3, tape.CompletedCount())
	assert.Equal(t, 1, tape.CachedCount())
	assert.Equal(t, 1, tape.ErroredCount())

	require.NoError(t, recorder.Close())
	assert.True(t, tape.Closed())
}

func TestRecorder_RepeatedNames(t *testing.T) {
	tape := vprogrock.NewTape()
	recorder := progrock.NewRecorder(tape)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Go(func() {
			_, v := recorder.Record(context.Background(), "compile src/same.cpp")
			_, _ = fmt.Fprintf(v.Stderr(), "run %d\n", i)
			v.Complete(nil)
		})
	}
	wg.Wait()

	assert.Equal(t, 16, tape.TotalCount())
	require.NoError(t, recorder.Close())
}

type journalUpdate struct {
	Vertexes []struct {
		ID     string  `json:"id"`
		Name   string  `json:"name"`
		Cached bool    `json:"cached"`
		Error  *string `json:"error"`
	} `json:"vertexes"`
	Logs []struct {
		Data []byte `json:"data"`
	} `json:"logs"`
}

func readJournal(t *testing.T, path string) []journalUpdate {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var updates []journalUpdate
	dec := json.NewDecoder(f)
	for dec.More() {
		var u journalUpdate
		require.NoError(t, dec.Decode(&u))
		updates = append(updates, u)
	}
	return updates
}

func TestRecorder_Journal(t *testing.T) {
	recorder := progrock.New()
	path := filepath.Join(t.TempDir(), "build.journal")
	ctx := context.Background()

	_, before := recorder.Record(ctx, "compile src/early.cpp")
	before.Complete(nil)

	journal, err := recorder.Journal(path)
	require.NoError(t, err)

	_, v := recorder.Record(ctx, "compile src/main.cpp")
	_, err = v.Stderr().Write([]byte("main.cpp:1:1: warning: empty file\n"))
	require.NoError(t, err)
	v.Complete(errors.New("exit status 1"))

	require.NoError(t, journal.Close())

	_, after := recorder.Record(ctx, "link app")
	after.Complete(nil)

	var names []string
	var logs string
	var failure string
	for _, u := range readJournal(t, path) {
		for _, vtx := range u.Vertexes {
			names = append(names, vtx.Name)
			if vtx.Error != nil {
				failure = *vtx.Error
			}
		}
		for _, l := range u.Logs {
			logs += string(l.Data)
		}
	}

	assert.NotContains(t, names, "compile src/early.cpp")
	assert.NotContains(t, names, "link app")
	assert.Contains(t, names, "compile src/main.cpp")
	assert.Equal(t, "exit status 1", failure)
	assert.Contains(t, logs, "warning: empty file")

	require.NoError(t, recorder.Close())
}

func TestRecorder_Journal_CreateFails(t *testing.T) {
	recorder := progrock.New()

	_, err := recorder.Journal(filepath.Join(t.TempDir(), "missing", "build.journal"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create build journal")
}

func TestRecorder_CloseClosesOpenJournals(t *testing.T) {
	recorder := progrock.New()
	path := filepath.Join(t.TempDir(), "build.journal")

	journal, err := recorder.Journal(path)
	require.NoError(t, err)

	_, v := recorder.Record(context.Background(), "compile src/main.cpp")
	v.Complete(nil)

	require.NoError(t, recorder.Close())
	require.NoError(t, journal.Close())
	assert.NotEmpty(t, readJournal(t, path))
}

func TestRecorder_CloseIsIdempotent(t *testing.T) {
	recorder := progrock.New()

	require.NoError(t, recorder.Close())
	require.NoError(t, recorder.Close())
}
