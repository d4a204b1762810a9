package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	calc "github.com/Sams101/calculator-app"
	"github.com/Sams101/calculator-app/display"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		verb   string
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "", "result formatting string (default calculator display formatting)")
	flag.Parse()

	var exprs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		scan := bufio.NewScanner(f)
		for scan.Scan() {
			if s := strings.TrimSpace(scan.Text()); s != "" {
				exprs = append(exprs, s)
			}
		}
		if err := scan.Err(); err != nil {
			log.Fatal(err)
		}
	}
	exprs = append(exprs, flag.Args()...)

	code := 0
	for _, src := range exprs {
		r, err := calc.Evaluate(display.Normalize(src))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", src, err)
			code = 1
			continue
		}
		if verb != "" {
			fmt.Printf(verb+"\n", r)
		} else {
			fmt.Println(display.Format(r))
		}
	}
	os.Exit(code)
}

func infile(inname string, std bool) (io.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return f, nil
}
