package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/peermesh/pkg/errors"
)

func TestRenderCommandDOTToStdout(t *testing.T) {
	var out bytes.Buffer

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", "-i", writeManifest(t), "-f", "dot"})

	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	dot := out.String()
	for _, want := range []string{"graph peermesh {", `"Alice" -- "Bob"`, `"Bob" -- "Charlie"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q\n%s", want, dot)
		}
	}
}

func TestRenderCommandDetailed(t *testing.T) {
	var out bytes.Buffer

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", "-i", writeManifest(t), "-f", "dot", "--detailed"})

	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), `[label="3"]`) {
		t.Errorf("detailed DOT output missing weight label\n%s", out.String())
	}
}

func TestRenderCommandUnknownFormat(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", "-i", writeManifest(t), "-f", "gif"})

	err := root.Execute()
	if !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want code %s", err, apperrors.ErrCodeInvalidFormat)
	}
}
