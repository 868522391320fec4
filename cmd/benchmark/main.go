package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"stopdfa/config"
	"stopdfa/internal/domain"
	"stopdfa/internal/usecase"
)

func main() {
	dir := flag.String("dir", ".", "Directory to load stopdfa.yaml from")
	file := flag.String("f", "", "Text file to classify")
	rounds := flag.Int("n", 100, "Number of classification rounds")
	flag.Parse()

	if *rounds <= 0 {
		*rounds = 1
	}

	if *file == "" {
		fmt.Println("Usage: go run cmd/benchmark/main.go -f corpus.txt [-n 100]")
		fmt.Println("\nMeasures:")
		fmt.Println("  1. Automaton construction time and size")
		fmt.Println("  2. Classification throughput (tokens/s, MB/s)")
		fmt.Println("  3. Raw automaton lookup rate")
		os.Exit(1)
	}

	cfg, err := config.LoadFromDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}
	text := string(data)

	start := time.Now()
	engine, err := usecase.NewEngine(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building automaton: %v\n", err)
		os.Exit(1)
	}
	buildTime := time.Since(start)

	fmt.Println("STOPWORD DFA BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Stopwords:   %d\n", engine.Trie.Len())
	fmt.Printf("States:      %d\n", engine.Trie.StateCount())
	fmt.Printf("Transitions: %d\n", engine.Trie.TransitionCount())
	fmt.Printf("Build time:  %v\n", buildTime)
	fmt.Println(strings.Repeat("-", 70))

	var res domain.Result
	start = time.Now()
	for i := 0; i < *rounds; i++ {
		res = engine.Classifier.Classify(text)
	}
	elapsed := time.Since(start)

	tokens := len(res.Tokens)
	stopwords := 0
	for _, o := range res.Occurrences {
		stopwords += o.Count
	}

	perRound := elapsed / time.Duration(*rounds)
	fmt.Printf("Input:            %d bytes, %d tokens, %d stopwords\n", len(text), tokens, stopwords)
	fmt.Printf("Per round:        %v\n", perRound)
	fmt.Printf("Tokens/s:         %.0f\n", float64(tokens)*float64(*rounds)/elapsed.Seconds())
	fmt.Printf("MB/s:             %.2f\n", float64(len(text))*float64(*rounds)/elapsed.Seconds()/1e6)

	words := engine.Stopwords
	lookups := 0
	start = time.Now()
	for i := 0; i < *rounds; i++ {
		for _, w := range words {
			engine.Trie.IsStopword(w)
			engine.Trie.IsStopword(w + "x")
			lookups += 2
		}
	}
	lookupTime := time.Since(start)
	fmt.Printf("Lookups/s:        %.0f\n", float64(lookups)/lookupTime.Seconds())
	fmt.Println(strings.Repeat("=", 70))
}
