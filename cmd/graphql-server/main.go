package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rollups-offchain/node/internal/bootstrap"
	"github.com/rollups-offchain/node/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	if err := bootstrap.Run(context.Background(), os.Args[1:], bootstrap.Default(buildInfo)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.Version)
	fmt.Printf("Build date: %s\n", buildInfo.Date)
	fmt.Printf("Build commit: %s\n", buildInfo.Commit)
}
