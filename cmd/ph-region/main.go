// Command ph-region prints and parses Philippine regions.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-envparse"
	"github.com/phregion/phregion/pkg/regiontool"
	"github.com/spf13/pflag"
)

var opt struct {
	Parse   bool
	IP      bool
	List    bool
	JSON    bool
	Compact bool
	Metrics bool
	EnvFile string
	Help    bool
}

func init() {
	pflag.BoolVarP(&opt.Parse, "parse", "p", false, "Parse each input as a region (default if inputs are provided)")
	pflag.BoolVarP(&opt.IP, "ip", "i", false, "Look up the region of each input IP address (requires PHREGION_IP2LOCATION)")
	pflag.BoolVarP(&opt.List, "list", "l", false, "Show all attributes of every region")
	pflag.BoolVarP(&opt.JSON, "json", "j", false, "Output json (overrides PHREGION_OUTPUT)")
	pflag.BoolVarP(&opt.Compact, "compact", "c", false, "Don't format json")
	pflag.BoolVarP(&opt.Metrics, "metrics", "m", false, "Write parse and lookup metrics to stderr when done")
	pflag.StringVar(&opt.EnvFile, "env-file", "", "Read config from an env file instead of the environment")
	pflag.BoolVarP(&opt.Help, "help", "h", false, "Show this help text")
}

func main() {
	pflag.Parse()

	if opt.Help || (opt.Parse && opt.IP) || ((opt.Parse || opt.IP) && pflag.NArg() == 0) || (opt.List && pflag.NArg() != 0) {
		fmt.Printf("usage: %s [options] [input...]\n\noptions:\n%s\nwith no inputs, the region names and full names are printed by code\n", os.Args[0], pflag.CommandLine.FlagUsages())
		if opt.Help {
			os.Exit(2)
		}
		os.Exit(0)
	}

	var e []string
	if opt.EnvFile == "" {
		e = os.Environ()
	} else {
		if x, err := readEnv(opt.EnvFile); err == nil {
			e = x
		} else {
			fmt.Fprintf(os.Stderr, "error: read env file: %v\n", err)
			os.Exit(1)
		}
	}

	var c regiontool.Config
	if err := c.UnmarshalEnv(e, false); err != nil {
		fmt.Fprintf(os.Stderr, "error: parse config: %v\n", err)
		os.Exit(1)
	}
	if opt.JSON {
		c.Output = "json"
	}
	if opt.Compact {
		c.OutputIndent = false
	}

	t, err := regiontool.NewTool(&c, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: initialize: %v\n", err)
		os.Exit(1)
	}
	defer t.Close()

	switch {
	case opt.List:
		err = t.PrintTable()
	case opt.IP:
		err = t.LookupIP(pflag.Args()...)
	case pflag.NArg() != 0:
		err = t.Parse(pflag.Args()...)
	default:
		err = t.PrintCatalog()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		t.Close()
		os.Exit(1)
	}

	if opt.Metrics {
		t.WriteMetrics(os.Stderr)
	}
}

func readEnv(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := envparse.Parse(f)
	if err != nil {
		return nil, err
	}

	var r []string
	for k, v := range m {
		r = append(r, k+"="+v)
	}
	return r, nil
}
