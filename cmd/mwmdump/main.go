// Command mwmdump opens an MWM file and prints its tag directory,
// version, and header as indented JSON. It is a thin demonstration of
// the mwm package, not a replacement for a full inspection tool.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mwmreader/mwm"
)

type dump struct {
	Tags    []string    `json:"tags"`
	Version mwm.Version `json:"version"`
	Header  mwm.Header  `json:"header"`
}

func main() {
	typesPath := flag.String("types", "", "path to a mapcss types.txt (optional)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mwmdump [-types path] <file.mwm>")
		os.Exit(2)
	}

	var opts []mwm.Option
	if *typesPath != "" {
		opts = append(opts, mwm.WithTypesPath(*typesPath))
	}

	r, err := mwm.Open(flag.Arg(0), opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	version, err := r.ReadVersion()
	if err != nil {
		log.Fatal(err)
	}

	header, err := r.ReadHeader()
	if err != nil {
		log.Fatal(err)
	}

	out := dump{Tags: r.Tags(), Version: version, Header: header}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}
