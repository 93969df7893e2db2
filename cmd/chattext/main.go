package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	chattext "github.com/reoring/chattext"
	"github.com/reoring/chattext/render"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "print":
		printCmd(os.Args[2:])
	case "convert":
		convertCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "chattext CLI\n\nUsage:\n  chattext print [-locale L] [-plain] [-format json|yaml|cbor] file\n  chattext convert -from json|yaml|cbor -to json|yaml|cbor [-o out] file\n\nNotes:\n  - Pass \"-\" as file to read from stdin.\n  - print auto-detects the format from the file extension when -format is empty.")
}

func printCmd(args []string) {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	var locale string
	var plain bool
	var format string
	fs.StringVar(&locale, "locale", "en", "locale for translatable components")
	fs.BoolVar(&plain, "plain", false, "strip styling from the output")
	fs.StringVar(&format, "format", "", "input format (json, yaml or cbor)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	file := fs.Arg(0)
	if format == "" {
		format = detectFormat(file)
	}

	c := decodeFile(file, format)
	if plain {
		fmt.Println(render.Plain(c, locale))
		return
	}
	r := render.ANSI{Out: os.Stdout, Locale: locale}
	if err := r.Render(c); err != nil {
		fatalf("render: %v", err)
	}
	fmt.Println()
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var from, to, out string
	fs.StringVar(&from, "from", "json", "input format (json, yaml or cbor)")
	fs.StringVar(&to, "to", "json", "output format (json, yaml or cbor)")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	c := decodeFile(fs.Arg(0), from)

	var data []byte
	var err error
	switch to {
	case "json":
		data, err = chattext.ToJSON(c)
		data = append(data, '\n')
	case "yaml":
		data, err = chattext.ToYAML(c)
	case "cbor":
		data, err = chattext.ToCBOR(c)
	default:
		fatalf("unknown output format %q", to)
	}
	if err != nil {
		fatalf("encode: %v", err)
	}

	if out == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			fatalf("writing output: %v", err)
		}
		return
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func decodeFile(file, format string) chattext.Component {
	data := readInput(file)
	var c chattext.Component
	var err error
	switch format {
	case "json":
		c, err = chattext.FromJSON(data)
	case "yaml":
		c, err = chattext.FromYAML(data)
	case "cbor":
		c, err = chattext.FromCBOR(data)
	default:
		fatalf("unknown input format %q", format)
	}
	if err != nil {
		fatalf("decode %s: %v", file, err)
	}
	return c
}

func readInput(file string) []byte {
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("reading stdin: %v", err)
		}
		return data
	}
	data, err := os.ReadFile(file)
	if err != nil {
		fatalf("reading input: %v", err)
	}
	return data
}

func detectFormat(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".cbor":
		return "cbor"
	default:
		return "json"
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
