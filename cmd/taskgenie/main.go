// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command taskgenie analyzes task descriptions from the command line.
//
// It runs the same engine as the NLP server, in-process, with no server
// required. Text comes from the arguments, or from stdin when no
// arguments are given.
//
// Usage:
//
//	taskgenie classify "Urgent: send the budget report before tomorrow"
//	taskgenie breakdown "Plan the team offsite"
//	echo "Buy groceries" | taskgenie keywords --top 3
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Akchhya1108/TaskGenie/services/nlp"
)

// topN holds the --top flag value for the keywords command.
var topN int

// lemmatizer holds the --lemmatizer flag value for all commands.
var lemmatizer string

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskgenie",
		Short: "Deterministic task analysis from the command line",
	}
	rootCmd.PersistentFlags().StringVar(&lemmatizer, "lemmatizer", "",
		"Stemmer implementation: rule (default) or snowball")

	classifyCmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Classify a task: category, priority, keywords, due date, suggestions",
		Run:   runClassifyCommand,
	}

	breakdownCmd := &cobra.Command{
		Use:   "breakdown [text]",
		Short: "Break a task into ordered subtask steps",
		Run:   runBreakdownCommand,
	}

	keywordsCmd := &cobra.Command{
		Use:   "keywords [text]",
		Short: "Extract the most frequent keywords from a task",
		Run:   runKeywordsCommand,
	}
	keywordsCmd.Flags().IntVar(&topN, "top", 5, "Number of keywords to return")

	rootCmd.AddCommand(classifyCmd, breakdownCmd, keywordsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runClassifyCommand(_ *cobra.Command, args []string) {
	svc := buildService()
	result, err := svc.Classify(context.Background(), readText(args))
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	printJSON(result)
}

func runBreakdownCommand(_ *cobra.Command, args []string) {
	svc := buildService()
	result, err := svc.Breakdown(context.Background(), readText(args))
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	printJSON(result)
}

func runKeywordsCommand(_ *cobra.Command, args []string) {
	svc := buildService()
	keywords, err := svc.ExtractKeywords(context.Background(), readText(args), topN)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	printJSON(map[string][]string{"keywords": keywords})
}

// buildService constructs the in-process analysis service, honoring the
// --lemmatizer flag and the NLP_LEMMATIZER environment variable.
func buildService() *nlp.Service {
	cfg := nlp.DefaultServiceConfig()
	if env := os.Getenv("NLP_LEMMATIZER"); env != "" {
		cfg.Lemmatizer = env
	}
	if lemmatizer != "" {
		cfg.Lemmatizer = lemmatizer
	}

	svc, err := nlp.NewService(cfg)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return svc
}

// readText joins the positional arguments, or reads stdin when there
// are none.
func readText(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("Error reading stdin: %v", err)
	}
	return string(data)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Println(string(out))
}
