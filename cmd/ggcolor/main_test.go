package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunText(t *testing.T) {
	code, out, _ := runCommand(t, "-compare", "#000", "-precision", "4", "#cd7f32")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	for _, want := range []string{
		"#cd7f32\n",
		"hex8       #cd7f32ff",
		"rgb        rgb(205, 127, 50)",
		"rgba       rgba(205, 127, 50, 1)",
		"luminance  139 (light)",
		"distance",
		"to #000000",
		"precision  #cc7733 (Precision16)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunFormats(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-format", "hex", "rgb(66, 134, 244)", "#fff"}, "#4286f4\n#ffffff\n"},
		{[]string{"-format", "rgb", "#4286f466"}, "rgb(66, 134, 244)\n"},
		{[]string{"-format", "rgba", "#4286f4"}, "rgba(66, 134, 244, 1)\n"},
		{[]string{"-format", "hex", "-precision", "4", "#cd7f32"}, "#cc7733\n"},
		{[]string{"-format", "hex", "-named", "teal"}, "#008080\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			code, out, _ := runCommand(t, tt.args...)
			if code != 0 || out != tt.want {
				t.Errorf("run() = %d %q, want 0 %q", code, out, tt.want)
			}
		})
	}
}

func TestRunParseFailure(t *testing.T) {
	code, out, errOut := runCommand(t, "-format", "hex", "#ggg", "#fff")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if out != "#ffffff\n" {
		t.Errorf("stdout = %q, want the valid color only", out)
	}
	if !strings.Contains(errOut, "not a valid hexadecimal") {
		t.Errorf("stderr = %q, want hex error", errOut)
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := [][]string{
		{},
		{"-format", "hsl", "#fff"},
		{"-precision", "8", "#fff"},
		{"-compare", "#12", "#fff"},
		{"-nosuchflag"},
	}
	for _, args := range tests {
		if code, _, _ := runCommand(t, args...); code != 2 {
			t.Errorf("run(%q) = %d, want 2", args, code)
		}
	}
}

func TestRunConfigOverride(t *testing.T) {
	path := writeConfig(t, "format = \"rgb\"\nnamed = true\n")

	code, out, _ := runCommand(t, "-config", path, "teal")
	if code != 0 || out != "rgb(0, 128, 128)\n" {
		t.Errorf("run() = %d %q, want config format", code, out)
	}

	code, out, _ = runCommand(t, "-config", path, "-format", "hex", "teal")
	if code != 0 || out != "#008080\n" {
		t.Errorf("run() = %d %q, want flag to override config", code, out)
	}
}

func TestRunVerbose(t *testing.T) {
	code, _, errOut := runCommand(t, "-v", "-format", "hex", "rgb(1, 2, 3)")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(errOut, "notation=functional") {
		t.Errorf("stderr = %q, want debug log", errOut)
	}
}
