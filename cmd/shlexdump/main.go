// Command shlexdump lexes a shell script and prints its token stream,
// for manual inspection of the lexer's and alias tokenizer's output
// (spec.md has no CLI of its own — §6.3 explicitly places "no CLI, no
// file formats, no wire protocols" out of this module's scope — this
// is a developer-facing dump tool, grounded on cmd/mibdump/main.go's
// flag-parsed-file-path shape).
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/shlexcore/shlex/alias"
	"github.com/shlexcore/shlex/lexer"
	"github.com/shlexcore/shlex/token"
)

func main() {
	log.SetFlags(0)

	scriptPath := flag.String("script", "", "Path to the shell script to lex")
	aliasesFlag := flag.String("aliases", "", "Comma-separated name=value alias definitions to expand before printing")
	flag.Parse()

	if *scriptPath == "" {
		log.Fatal("Error: -script flag is required")
	}

	input, err := os.ReadFile(*scriptPath)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *scriptPath, err)
	}

	lx := lexer.New()
	lx.AppendInput(input)

	var toks []token.Token
	status := lx.Tokenize(&toks)
	if status != lexer.OK {
		if lexErr := lx.GetError(); lexErr != nil {
			log.Fatalf("Error lexing %s: %v", *scriptPath, lexErr)
		}
		log.Fatalf("Error lexing %s: status %s", *scriptPath, status)
	}

	if *aliasesFlag != "" {
		store := parseAliasFlag(*aliasesFlag)
		tz := alias.New(store)
		var expanded []token.Token
		aliasStatus := tz.Process(&toks, &expanded)
		if aliasStatus != lexer.OK {
			if aliasErr := tz.GetError(); aliasErr != nil {
				log.Fatalf("Error expanding aliases in %s: %v", *scriptPath, aliasErr)
			}
			log.Fatalf("Error expanding aliases in %s: status %s", *scriptPath, aliasStatus)
		}
		toks = expanded
	}

	for _, t := range toks {
		repr.Println(t)
	}
}

// parseAliasFlag turns "a=b,c=d" into a Store for -aliases.
func parseAliasFlag(spec string) alias.MapStore {
	store := make(alias.MapStore)
	for _, def := range strings.Split(spec, ",") {
		name, value, ok := strings.Cut(def, "=")
		if !ok {
			log.Fatalf("Error: malformed -aliases entry %q, expected name=value", def)
		}
		store[name] = value
	}
	return store
}
