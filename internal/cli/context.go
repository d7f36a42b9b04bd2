package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/svgmotion/svgmotion/pkg/color"
	"github.com/svgmotion/svgmotion/pkg/fsutil"
)

// stdinName is the argument that reads the document from standard input.
const stdinName = "-"

// readDocument returns the text of the file named by arg, or of stdin for "-".
func readDocument(arg string) (string, error) {
	if arg == stdinName {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", arg, err)
	}
	return string(data), nil
}

// outputTarget says where a rewritten document goes.
type outputTarget struct {
	path    string
	inPlace bool
}

func (t outputTarget) check(src string) error {
	if t.inPlace && src == stdinName {
		return fmt.Errorf("--in-place cannot be used with stdin")
	}
	return nil
}

// rewriteDocument reads src, applies fn and writes the result to target.
func rewriteDocument(src string, target outputTarget, fn func(string) string) error {
	if err := target.check(src); err != nil {
		return err
	}
	text, err := readDocument(src)
	if err != nil {
		return err
	}
	return writeDocument(src, target, fn(text))
}

// writeDocument sends text to stdout, the -o path, or back to src for --in-place.
func writeDocument(src string, target outputTarget, text string) error {
	if err := target.check(src); err != nil {
		return err
	}
	dest := target.path
	if target.inPlace {
		dest = src
	}
	if dest == "" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}

	perm := os.FileMode(0644)
	if info, err := os.Stat(dest); err == nil {
		perm = info.Mode().Perm()
	}
	if err := fsutil.AtomicWrite(dest, []byte(text), perm); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

func fmtErr(format string, args ...any) {
	prefix := "svgmotion: "
	if color.Enabled() {
		prefix = color.Error("svgmotion:") + " "
	}
	fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
}
