// btfdump is a CLI tool for inspecting BPF Type Format (BTF) data.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"

	"github.com/jtang613/btfgo/pkg/btf"
	"github.com/jtang613/btfgo/pkg/btf/types"
)

type typeSummary struct {
	ID   uint32 `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name,omitempty"`
}

func summarize(b *btf.Btf, id uint32, t types.Type) typeSummary {
	s := typeSummary{ID: id, Kind: t.Kind().String()}
	if nb, ok := t.(types.NameBearing); ok {
		if name, err := b.ResolveName(nb); err == nil {
			s.Name = name
		}
	}
	return s
}

func main() {
	showInfo := flag.Bool("info", false, "Show BTF header information")
	showTypes := flag.Bool("types", false, "List every type in the object")
	idFlag := flag.Uint("id", 0, "Show the type with this id")
	nameFlag := flag.String("name", "", "Show every type with this name")
	regexFlag := flag.String("regex", "", "Show every type whose name matches this regex")
	splitPath := flag.String("split", "", "Open the given file as a split BTF layered over the base argument")
	prettyPrint := flag.Bool("pretty", false, "Pretty-print JSON output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <btf-file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -info vmlinux.btf\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -name sk_buff vmlinux.btf\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -split module.btf -name my_struct vmlinux.btf\n", os.Args[0])
	}

	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	basePath := flag.Arg(0)
	base, err := btf.Open(basePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening BTF: %v\n", err)
		os.Exit(1)
	}
	defer base.Close()

	b := base
	if *splitPath != "" {
		split, err := btf.OpenSplit(*splitPath, base)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening split BTF: %v\n", err)
			os.Exit(1)
		}
		defer split.Close()
		b = split
	}

	outputJSON := func(v interface{}) {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetEscapeHTML(false)
		if *prettyPrint {
			encoder.SetIndent("", "  ")
		}
		if err := encoder.Encode(v); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
	}

	if *idFlag > 0 {
		t, err := b.ResolveTypeByID(uint32(*idFlag))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving id %d: %v\n", *idFlag, err)
			os.Exit(1)
		}
		outputJSON(summarize(b, uint32(*idFlag), t))
		return
	}

	if *nameFlag != "" {
		ids := b.ResolveIDsByName(*nameFlag)
		out := make([]typeSummary, 0, len(ids))
		for _, id := range ids {
			t, err := b.ResolveTypeByID(id)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error resolving id %d: %v\n", id, err)
				os.Exit(1)
			}
			out = append(out, summarize(b, id, t))
		}
		outputJSON(out)
		return
	}

	if *regexFlag != "" {
		re, err := regexp.Compile(*regexFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error compiling regex: %v\n", err)
			os.Exit(1)
		}
		ids := b.ResolveIDsByRegex(re)
		out := make([]typeSummary, 0, len(ids))
		for _, id := range ids {
			t, err := b.ResolveTypeByID(id)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error resolving id %d: %v\n", id, err)
				os.Exit(1)
			}
			out = append(out, summarize(b, id, t))
		}
		outputJSON(out)
		return
	}

	if !*showInfo && !*showTypes {
		*showInfo = true
	}

	result := make(map[string]interface{})

	if *showInfo {
		result["header"] = b.Header()
		result["type_count"] = b.TypeCount()
	}

	if *showTypes {
		count := b.TypeCount()
		// A split's own ids continue after the base's.
		first := uint32(0)
		if b.IsSplit() {
			first = uint32(base.TypeCount())
		}
		out := make([]typeSummary, 0, count)
		for id := first; id < first+uint32(count); id++ {
			t, err := b.ResolveTypeByID(id)
			if err != nil {
				continue
			}
			out = append(out, summarize(b, id, t))
		}
		result["types"] = out
	}

	outputJSON(result)
}
