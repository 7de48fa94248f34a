package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrianliechti/briefing/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")
	nameFlag := flag.String("name", "", "document name")
	questionFlag := flag.String("question", "", "question the text answers")

	flag.Parse()

	ctx := context.Background()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: client [flags] <text file> [audio files...]")
		os.Exit(2)
	}

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	path := flag.Arg(0)

	text, err := os.ReadFile(path)

	if err != nil {
		panic(err)
	}

	name := *nameFlag

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	var audio [][]byte

	for _, p := range flag.Args()[1:] {
		data, err := os.ReadFile(p)

		if err != nil {
			panic(err)
		}

		audio = append(audio, data)
	}

	summary, err := c.Summaries.New(ctx, client.SummaryRequest{
		Name:     name,
		Question: *questionFlag,
		Text:     string(text),

		Audio: audio,
	})

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if summary.DocumentURL != nil {
		fmt.Println(*summary.DocumentURL)
	}

	for _, url := range summary.AudioURLs {
		fmt.Println(url)
	}
}
