package cli

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	cases := []struct {
		desc string
		args []string
		want string
	}{
		{
			desc: "no headers",
			args: []string{"check", "--method", "POST"},
			want: "allow",
		}, {
			desc: "site only",
			args: []string{"check", "--site", "cross-site", "--method", "POST"},
			want: "allow",
		}, {
			desc: "same-origin cors",
			args: []string{"check", "--site", "same-origin", "--mode", "cors"},
			want: "allow",
		}, {
			desc: "cross-site navigate GET",
			args: []string{"check", "--site", "cross-site", "--mode", "navigate"},
			want: "allow",
		}, {
			desc: "cross-site navigate POST",
			args: []string{"check", "--site", "cross-site", "--mode", "navigate", "--method", "POST"},
			want: "block",
		}, {
			desc: "cross-site cors",
			args: []string{"check", "--site", "cross-site", "--mode", "cors"},
			want: "block",
		}, {
			desc: "empty site value",
			args: []string{"check", "--site=", "--mode", "cors"},
			want: "block",
		},
	}
	for _, tc := range cases {
		f := func(t *testing.T) {
			out, err := execute(t, tc.args...)
			if err != nil {
				t.Fatalf("execute %q: %v", tc.args, err)
			}
			if got := strings.TrimSpace(out); got != tc.want {
				t.Errorf("got %q; want %q", got, tc.want)
			}
		}
		t.Run(tc.desc, f)
	}
}

func TestCheckRejectsArgs(t *testing.T) {
	if _, err := execute(t, "check", "extra"); err == nil {
		t.Error("got nil error; want non-nil error")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute version: %v", err)
	}
	if want := "isolationd " + version; strings.TrimSpace(out) != want {
		t.Errorf("got %q; want %q", out, want)
	}
}

func TestServeRejectsMissingConfig(t *testing.T) {
	_, err := execute(t, "serve", "--config", t.TempDir()+"/missing.yaml")
	if err == nil {
		t.Error("got nil error; want non-nil error")
	}
}
