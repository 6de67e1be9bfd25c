package main

import (
	"context"
	"fmt"

	"github.com/videosummarizer/videosummarizer"
)

type VersionCommand struct {
}

func (c VersionCommand) Run(ctx context.Context) (err error) {
	fmt.Println(videosummarizer.Version)
	return nil
}
