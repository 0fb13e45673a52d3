package main

/**
 * helatype - A Sinhala transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/helatype/helatype/config"
	"github.com/helatype/helatype/helatype"
	"github.com/helatype/helatype/server"
)

func main() {
	configFlag := flag.String("config", "", "YAML config file")
	debugFlag := flag.Bool("debug", false, "Enable debugging outputs")
	schemeFlag := flag.String("s", "", "Compiled scheme file. Built-in Sinhala mappings if empty")
	ignoreDuplicatesFlag := flag.Bool("ignore-duplicates", false, "Skip duplicate keys when compiling instead of failing")

	compileFlag := flag.Bool("compile", false, "Compile a scheme. 2 Arguments: YAML source & output scheme file")
	searchFlag := flag.Bool("search", false, "Search mappings. 1 Argument: query (empty lists all)")
	saveFlag := flag.Bool("save", false, "Transliterate and save the output to history")
	historyFlag := flag.Bool("history", false, "List saved outputs")
	serveFlag := flag.Bool("serve", false, "Start the HTTP server")

	flag.Parse()

	cfg, err := config.Load(*configFlag, ".env")
	if err != nil {
		log.Fatal(err)
	}
	if *schemeFlag != "" {
		cfg.Scheme = *schemeFlag
	}
	if *ignoreDuplicatesFlag {
		cfg.IgnoreDuplicates = true
	}
	if *debugFlag {
		cfg.Debug = true
	}

	args := flag.Args()

	if *compileFlag {
		if len(args) != 2 {
			log.Fatal("-compile needs a YAML source and an output file")
		}
		compile(cfg, args[0], args[1])
		return
	}

	engine, err := loadEngine(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *searchFlag {
		for _, entry := range engine.Table().Search(strings.Join(args, " ")) {
			fmt.Printf("%s\t%s\t%s\n", entry.Romanized, entry.Glyph, entry.Category)
		}
	} else if *historyFlag {
		history := openHistory(cfg)
		defer history.Close()

		items, err := history.List(context.Background(), cfg.HistoryLimit)
		if err != nil {
			log.Fatal(err)
		}
		for _, item := range items {
			fmt.Println(time.UnixMilli(item.Timestamp).Format(time.DateTime) + " " + item.Text)
		}
	} else if *serveFlag {
		history := openHistory(cfg)
		defer history.Close()

		app := server.New(cfg, engine, history)
		if err := app.Listen(cfg.Listen); err != nil {
			log.Fatal(err)
		}
	} else {
		var inputs []string
		if len(args) > 0 {
			inputs = []string{strings.Join(args, " ")}
		} else {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				inputs = append(inputs, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				log.Fatal(err)
			}
		}

		var history *helatype.History
		if *saveFlag {
			history = openHistory(cfg)
			defer history.Close()
		}

		for _, input := range inputs {
			start := time.Now()
			output := engine.Transliterate(input)
			if cfg.Debug {
				log.Printf("%s took %v\n", "transliteration", time.Since(start))
			}

			fmt.Println(output)

			if history != nil {
				if _, err := history.Save(context.Background(), output); err != nil && !errors.Is(err, helatype.ErrEmptyText) {
					log.Fatal(err)
				}
			}
		}
	}
}

func loadEngine(cfg *config.Config) (*helatype.Engine, error) {
	if cfg.Scheme == "" {
		return helatype.Default(), nil
	}

	scheme, err := helatype.OpenScheme(cfg.Scheme)
	if err != nil {
		return nil, err
	}
	defer scheme.Close()

	table, err := scheme.Table(context.Background())
	if err != nil {
		return nil, err
	}

	if cfg.Debug {
		for _, c := range table.Conflicts() {
			log.Printf("conflicting key %s", c)
		}
	}

	return helatype.New(table), nil
}

func openHistory(cfg *config.Config) *helatype.History {
	history, err := helatype.OpenHistory(cfg.History)
	if err != nil {
		log.Fatal(err)
	}
	return history
}

func compile(cfg *config.Config, source string, out string) {
	sf, err := helatype.LoadSchemeFile(source)
	if err != nil {
		log.Fatal(err)
	}

	scheme, err := sf.Compile(out, cfg.SchemeConfig())
	if err != nil {
		log.Fatal(err)
	}
	defer scheme.Close()

	table, err := scheme.Table(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Compiled %s (%d entries, %d vowel signs) into %s\n", scheme.Details.DisplayName, len(table.Entries()), len(table.VowelSigns()), out)
}
