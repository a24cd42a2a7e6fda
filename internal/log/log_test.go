package log

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"
)

// modes covers every verbose/quiet combination the CLI flags can produce,
// including both set at once, which cobra rejects but New must still handle.
var modes = []struct {
	name    string
	verbose bool
	quiet   bool
}{
	{"default", false, false},
	{"verbose", true, false},
	{"quiet", false, true},
	{"verbose and quiet", true, true},
}

func TestOutputByMode(t *testing.T) {
	t.Parallel()

	// want[i] is the expected output for modes[i].
	tests := []struct {
		name string
		emit func(l *Logger)
		want [4]string
	}{
		{
			name: "Printf",
			emit: func(l *Logger) { l.Printf("Warning: %s %d\n", "bad theme", 2) },
			want: [4]string{"Warning: bad theme 2\n", "Warning: bad theme 2\n", "", ""},
		},
		{
			name: "Println",
			emit: func(l *Logger) { l.Println("hooks", "installed") },
			want: [4]string{"hooks installed\n", "hooks installed\n", "", ""},
		},
		{
			name: "Debug",
			emit: func(l *Logger) { l.Debug("loaded config", "dir", "/p", "hook_manager", "pre-commit") },
			want: [4]string{"", "loaded config dir=/p hook_manager=pre-commit\n", "", ""},
		},
		{
			name: "Command",
			emit: func(l *Logger) { l.Command("/p", "pre-commit", "install")(1500 * time.Microsecond) },
			want: [4]string{"", "[/p] $ pre-commit install (2ms)\n", "", ""},
		},
	}

	for _, tt := range tests {
		for i, m := range modes {
			t.Run(tt.name+"/"+m.name, func(t *testing.T) {
				t.Parallel()
				var buf bytes.Buffer
				tt.emit(New(&buf, m.verbose, m.quiet))
				if got := buf.String(); got != tt.want[i] {
					t.Errorf("output = %q, want %q", got, tt.want[i])
				}
			})
		}
	}
}

func TestCommand_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dir  string
		cmd  string
		args []string
		d    time.Duration
		want string
	}{
		{"with dir", "/tmp/project", "pre-commit", []string{"install", "--install-hooks"}, 2 * time.Second, "[/tmp/project] $ pre-commit install --install-hooks (2s)\n"},
		{"without dir", "", "git", []string{"init"}, 40 * time.Millisecond, "$ git init (40ms)\n"},
		{"no args", "", "lefthook", nil, 0, "$ lefthook (0s)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			New(&buf, true, false).Command(tt.dir, tt.cmd, tt.args...)(tt.d)
			if got := buf.String(); got != tt.want {
				t.Errorf("Command output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand_WritesOnlyWhenDone(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	done := New(&buf, true, false).Command("", "pre-commit", "install")
	if buf.Len() != 0 {
		t.Fatalf("Command wrote %q before the command finished", buf.String())
	}
	done(time.Millisecond)
	if buf.Len() == 0 {
		t.Error("done() wrote nothing")
	}
}

func TestDebug_DropsTrailingKey(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, true, false).Debug("hook manager failed", "exit", 1, "orphan")
	if got, want := buf.String(), "hook manager failed exit=1\n"; got != want {
		t.Errorf("Debug output = %q, want %q", got, want)
	}
}

func TestModePredicates(t *testing.T) {
	t.Parallel()

	wantVerbose := [4]bool{false, true, false, false}
	wantQuiet := [4]bool{false, false, true, true}

	for i, m := range modes {
		t.Run(m.name, func(t *testing.T) {
			t.Parallel()
			l := New(io.Discard, m.verbose, m.quiet)
			if got := l.IsVerbose(); got != wantVerbose[i] {
				t.Errorf("IsVerbose() = %v, want %v", got, wantVerbose[i])
			}
			if got := l.IsQuiet(); got != wantQuiet[i] {
				t.Errorf("IsQuiet() = %v, want %v", got, wantQuiet[i])
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("attached logger", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		if got := FromContext(WithLogger(context.Background(), l)); got != l {
			t.Error("FromContext did not return the attached logger")
		}
		if l.Writer() != &buf {
			t.Error("Writer() did not return the underlying writer")
		}
	})

	t.Run("empty context discards", func(t *testing.T) {
		t.Parallel()
		l := FromContext(context.Background())
		if l.Writer() != io.Discard {
			t.Fatal("fallback logger should write to io.Discard")
		}
		if l.IsVerbose() || l.IsQuiet() {
			t.Error("fallback logger should be in default mode")
		}
		l.Printf("dropped")
		l.Debug("dropped")
	})
}
