package languages

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "go_file", path: "/src/main.go", want: "go"},
		{name: "kotlin_file", path: "file:///sdcard/App.kt", want: "kotlin"},
		{name: "uppercase_extension", path: "NOTES.MD", want: "markdown"},
		{name: "header_file", path: "include/list.h", want: "c"},
		{name: "yaml_alias", path: "deploy.yml", want: "yaml"},
		{name: "no_extension", path: "Makefile2", want: PlainText},
		{name: "unknown_extension", path: "data.xyz", want: PlainText},
		{name: "empty_path", path: "", want: PlainText},
		{name: "dotfile", path: ".bashrc", want: PlainText},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Classify(test.path); got != test.want {
				t.Fatalf("Classify(%q) = %q, want %q", test.path, got, test.want)
			}
		})
	}
}
